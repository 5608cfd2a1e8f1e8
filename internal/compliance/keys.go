package compliance

import (
	"strings"

	"github.com/abhisek/vigil/internal/violation"
)

// Key describes a key press with its modifier state.
type Key struct {
	Key   string // lowercase key name, e.g. "i", "tab", "f12"
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// String renders the canonical combo form, e.g. "ctrl+shift+i".
func (k Key) String() string {
	var parts []string
	if k.Ctrl {
		parts = append(parts, "ctrl")
	}
	if k.Alt {
		parts = append(parts, "alt")
	}
	if k.Shift {
		parts = append(parts, "shift")
	}
	if k.Meta {
		parts = append(parts, "meta")
	}
	parts = append(parts, strings.ToLower(k.Key))
	return strings.Join(parts, "+")
}

// forbiddenCombos maps intercepted combinations to their severity.
// Developer-tools access is high; task switching is medium.
var forbiddenCombos = map[string]violation.Severity{
	"f12":          violation.SeverityHigh,
	"ctrl+shift+i": violation.SeverityHigh,
	"ctrl+shift+j": violation.SeverityHigh,
	"ctrl+shift+c": violation.SeverityHigh,
	"ctrl+u":       violation.SeverityHigh,
	"meta+alt+i":   violation.SeverityHigh,
	"alt+tab":      violation.SeverityMedium,
	"meta+tab":     violation.SeverityMedium,
	"ctrl+w":       violation.SeverityMedium,
	"ctrl+t":       violation.SeverityMedium,
	"ctrl+n":       violation.SeverityMedium,
	"meta+m":       violation.SeverityMedium,
}

// comboSeverity reports whether the combo is forbidden and its severity.
func comboSeverity(k Key) (violation.Severity, bool) {
	s, ok := forbiddenCombos[k.String()]
	return s, ok
}
