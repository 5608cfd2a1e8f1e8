package compliance

import (
	"testing"
	"time"

	"github.com/abhisek/vigil/internal/violation"
)

// manualScheduler captures scheduled callbacks so tests fire them
// explicitly, including after cancellation to exercise the late-timer
// race.
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

func (s *manualScheduler) schedule(d time.Duration, fn func()) func() {
	task := &manualTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

// fireAll runs every pending task exactly once, honoring cancellation.
func (s *manualScheduler) fireAll() {
	tasks := s.tasks
	s.tasks = nil
	for _, task := range tasks {
		if !task.cancelled {
			task.fn()
		}
	}
}

// fireAllEvenCancelled simulates timers that were already in flight when
// cancel was called.
func (s *manualScheduler) fireAllEvenCancelled() {
	tasks := s.tasks
	s.tasks = nil
	for _, task := range tasks {
		task.fn()
	}
}

type capture struct {
	violations []violation.Violation
}

func (c *capture) listener(v violation.Violation) {
	c.violations = append(c.violations, v)
}

func (c *capture) ofType(t violation.Type) []violation.Violation {
	var out []violation.Violation
	for _, v := range c.violations {
		if v.Type == t {
			out = append(out, v)
		}
	}
	return out
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestMonitor(cfg Config) (*Monitor, *manualScheduler, *capture) {
	sched := &manualScheduler{}
	sink := &capture{}
	m := NewWithScheduler(cfg, sink.listener, fixedNow, sched.schedule)
	return m, sched, sink
}

func TestGraceTimeout_EmitsFullscreenExit(t *testing.T) {
	m, sched, sink := newTestMonitor(DefaultConfig())

	m.SetFullscreen(false)
	st := m.State()
	if !st.GracePeriodActive {
		t.Fatal("grace period not active after fullscreen exit")
	}
	if st.RemainingGraceSeconds != DefaultGracePeriodSeconds {
		t.Errorf("remaining %d, want %d", st.RemainingGraceSeconds, DefaultGracePeriodSeconds)
	}

	sched.fireAll() // grace timer elapses

	got := sink.ofType(violation.TypeFullscreenExit)
	if len(got) != 1 {
		t.Fatalf("got %d fullscreen_exit violations, want 1", len(got))
	}
	if got[0].Severity != violation.SeverityHigh {
		t.Errorf("severity %q, want high", got[0].Severity)
	}

	st = m.State()
	if st.GracePeriodActive {
		t.Error("grace period still active after timeout")
	}
	if st.ViolationCount != 1 {
		t.Errorf("violation count %d, want 1", st.ViolationCount)
	}
}

func TestGraceRace_RestoreBeforeElapse(t *testing.T) {
	m, sched, sink := newTestMonitor(DefaultConfig())

	m.SetFullscreen(false)
	// Compliance restored right before the timer would fire; fire the
	// already-scheduled callbacks anyway to simulate a timer in flight.
	m.SetFullscreen(true)
	sched.fireAllEvenCancelled()

	if got := sink.ofType(violation.TypeFullscreenExit); len(got) != 0 {
		t.Fatalf("got %d fullscreen_exit violations after remediation, want 0", len(got))
	}
	st := m.State()
	if !st.IsCompliant || st.GracePeriodActive {
		t.Errorf("state after restore: %+v", st)
	}
	if st.ViolationCount != 0 {
		t.Errorf("violation count %d, want 0", st.ViolationCount)
	}
}

func TestGraceCountdown_Ticks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GracePeriodSeconds = 3
	m, sched, _ := newTestMonitor(cfg)

	var ticks []int
	m.OnGraceTick(func(remaining int) { ticks = append(ticks, remaining) })

	m.SetFullscreen(false)

	// Fire only countdown tasks (1s delays), leaving the grace timer.
	for i := 0; i < 2; i++ {
		tasks := sched.tasks
		sched.tasks = nil
		for _, task := range tasks {
			if task.delay == time.Second && !task.cancelled {
				task.fn()
			} else {
				sched.tasks = append(sched.tasks, task)
			}
		}
	}

	if len(ticks) != 2 || ticks[0] != 2 || ticks[1] != 1 {
		t.Errorf("ticks = %v, want [2 1]", ticks)
	}
	if st := m.State(); st.RemainingGraceSeconds != 1 {
		t.Errorf("remaining %d, want 1", st.RemainingGraceSeconds)
	}
}

func TestVisibility_ImmediateViolationAndGrace(t *testing.T) {
	m, _, sink := newTestMonitor(DefaultConfig())

	m.SetVisibility(false)

	got := sink.ofType(violation.TypeVisibilityChange)
	if len(got) != 1 {
		t.Fatalf("got %d visibility_change violations, want 1", len(got))
	}
	if got[0].Severity != violation.SeverityMedium {
		t.Errorf("severity %q, want medium", got[0].Severity)
	}
	if !m.State().GracePeriodActive {
		t.Error("grace period not started on tab hide")
	}
}

func TestVisibility_DisabledDetection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableTabSwitchDetection = false
	m, _, sink := newTestMonitor(cfg)

	m.SetVisibility(false)
	if len(sink.violations) != 0 {
		t.Errorf("disabled tab detection emitted %d violations", len(sink.violations))
	}
	if !m.State().IsCompliant {
		t.Error("hidden tab affected compliance with detection disabled")
	}
}

func TestWindowBlur_ImmediateViolation(t *testing.T) {
	m, _, sink := newTestMonitor(DefaultConfig())

	m.SetFocus(false)
	got := sink.ofType(violation.TypeWindowBlur)
	if len(got) != 1 {
		t.Fatalf("got %d window_blur violations, want 1", len(got))
	}
	if got[0].Severity != violation.SeverityMedium {
		t.Errorf("severity %q, want medium", got[0].Severity)
	}
}

func TestKeyPressed_DevToolsCombo(t *testing.T) {
	m, _, sink := newTestMonitor(DefaultConfig())

	suppress := m.KeyPressed(Key{Key: "i", Ctrl: true, Shift: true})
	if !suppress {
		t.Error("dev-tools combo not suppressed")
	}

	got := sink.ofType(violation.TypeKeyCombination)
	if len(got) != 1 {
		t.Fatalf("got %d key_combination violations, want 1", len(got))
	}
	if got[0].Severity != violation.SeverityHigh {
		t.Errorf("severity %q, want high", got[0].Severity)
	}
	if m.State().GracePeriodActive {
		t.Error("key violation must not start a grace period")
	}
}

func TestKeyPressed_TaskSwitchComboIsMedium(t *testing.T) {
	m, _, sink := newTestMonitor(DefaultConfig())

	if !m.KeyPressed(Key{Key: "tab", Alt: true}) {
		t.Error("alt+tab not suppressed")
	}
	got := sink.ofType(violation.TypeKeyCombination)
	if len(got) != 1 || got[0].Severity != violation.SeverityMedium {
		t.Errorf("alt+tab violations: %+v", got)
	}
}

func TestKeyPressed_AllowedKey(t *testing.T) {
	m, _, sink := newTestMonitor(DefaultConfig())

	if m.KeyPressed(Key{Key: "a"}) {
		t.Error("plain key suppressed")
	}
	if len(sink.violations) != 0 {
		t.Errorf("plain key emitted %d violations", len(sink.violations))
	}
}

func TestMaxViolationsReached_DerivedRead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxViolations = 2
	m, _, _ := newTestMonitor(cfg)

	if m.MaxViolationsReached() {
		t.Fatal("threshold reached with zero violations")
	}
	m.KeyPressed(Key{Key: "f12"})
	m.KeyPressed(Key{Key: "u", Ctrl: true})
	if !m.MaxViolationsReached() {
		t.Error("threshold not reached at max violations")
	}
}

func TestClose_Idempotent_NoLateViolations(t *testing.T) {
	m, sched, sink := newTestMonitor(DefaultConfig())

	m.SetFullscreen(false)
	m.Close()
	m.Close() // second teardown must be safe

	sched.fireAllEvenCancelled()

	if len(sink.ofType(violation.TypeFullscreenExit)) != 0 {
		t.Error("timer fired a violation after teardown")
	}
	if m.KeyPressed(Key{Key: "f12"}); len(sink.ofType(violation.TypeKeyCombination)) != 0 {
		t.Error("closed monitor emitted a key violation")
	}
}

func TestBreachAfterTimeout_StartsNewGrace(t *testing.T) {
	m, sched, sink := newTestMonitor(DefaultConfig())

	// First breach runs to timeout.
	m.SetFullscreen(false)
	sched.fireAll()
	if len(sink.ofType(violation.TypeFullscreenExit)) != 1 {
		t.Fatal("first timeout did not emit")
	}

	// Returning to fullscreen and leaving again starts a fresh grace.
	m.SetFullscreen(true)
	m.SetFullscreen(false)
	if !m.State().GracePeriodActive {
		t.Error("second breach did not start a grace period")
	}
	sched.fireAll()
	if got := sink.ofType(violation.TypeFullscreenExit); len(got) != 2 {
		t.Errorf("got %d fullscreen_exit violations, want 2", len(got))
	}
}

func TestKeyString(t *testing.T) {
	k := Key{Key: "I", Ctrl: true, Shift: true}
	if k.String() != "ctrl+shift+i" {
		t.Errorf("got %q, want ctrl+shift+i", k.String())
	}
}
