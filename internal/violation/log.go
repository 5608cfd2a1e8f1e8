package violation

// DefaultLogCap bounds the in-memory violation log.
const DefaultLogCap = 50

// Log is a bounded, ordered, append-only violation log. Once the cap is
// reached the oldest entry is evicted; the newest entry is never dropped.
// Mutated only by its owning throttle/session; reads elsewhere must go
// through Snapshot.
type Log struct {
	cap     int
	entries []Violation
}

// NewLog creates a Log with the given capacity. cap <= 0 falls back to
// DefaultLogCap.
func NewLog(cap int) *Log {
	if cap <= 0 {
		cap = DefaultLogCap
	}
	return &Log{cap: cap}
}

// Append adds a violation, evicting the oldest entry if at capacity.
func (l *Log) Append(v Violation) {
	if len(l.entries) >= l.cap {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = v
		return
	}
	l.entries = append(l.entries, v)
}

// Len returns the number of retained violations.
func (l *Log) Len() int { return len(l.entries) }

// Snapshot returns a copy of the retained violations, oldest first.
func (l *Log) Snapshot() []Violation {
	out := make([]Violation, len(l.entries))
	copy(out, l.entries)
	return out
}

// CountBySeverity tallies retained violations per severity.
func (l *Log) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, v := range l.entries {
		counts[v.Severity]++
	}
	return counts
}
