// Package compliance tracks fullscreen/tab/focus compliance for one
// session, runs grace-period countdowns on breaches, and emits violations
// on timeout or forbidden key combinations. All timers carry a generation
// counter checked before acting, so a timer firing after cancellation or
// teardown can never emit a late violation.
package compliance

import (
	"sync"
	"time"

	"github.com/abhisek/vigil/internal/violation"
)

// ScheduleFunc schedules fn to run after d and returns a cancel function.
// The default wraps time.AfterFunc; tests inject a manual scheduler.
type ScheduleFunc func(d time.Duration, fn func()) (cancel func())

func afterFuncSchedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Monitor is the compliance state machine for one session. Safe for
// concurrent use: browser-side events and timer callbacks can race.
type Monitor struct {
	cfg      Config
	emit     violation.Listener
	now      func() time.Time
	schedule ScheduleFunc

	// onGraceTick, when set, receives the remaining seconds once per
	// countdown second while a grace period is active.
	onGraceTick func(remaining int)

	mu          sync.Mutex
	fullscreen  bool
	visible     bool
	focused     bool
	graceActive bool
	remaining   int
	gen         int // invalidation token for all outstanding timers
	cancelGrace func()
	cancelTick  func()
	violations  int
	closed      bool
}

// New creates a Monitor using the wall clock. The session starts
// compliant: fullscreen, visible, focused.
func New(cfg Config, emit violation.Listener) *Monitor {
	return NewWithScheduler(cfg, emit, time.Now, afterFuncSchedule)
}

// NewWithScheduler creates a Monitor with injected clock and scheduler.
func NewWithScheduler(cfg Config, emit violation.Listener, now func() time.Time, schedule ScheduleFunc) *Monitor {
	if cfg.GracePeriodSeconds <= 0 {
		cfg.GracePeriodSeconds = DefaultGracePeriodSeconds
	}
	if cfg.MaxViolations <= 0 {
		cfg.MaxViolations = DefaultMaxViolations
	}
	if emit == nil {
		emit = func(violation.Violation) {}
	}
	return &Monitor{
		cfg:        cfg,
		emit:       emit,
		now:        now,
		schedule:   schedule,
		fullscreen: true,
		visible:    true,
		focused:    true,
	}
}

// OnGraceTick registers a per-second countdown callback. Must be called
// before events start flowing.
func (m *Monitor) OnGraceTick(fn func(remaining int)) {
	m.onGraceTick = fn
}

// SetFullscreen records a fullscreen transition. Exiting fullscreen
// starts a grace period; restoring it before the timer elapses cancels
// the pending violation atomically.
func (m *Monitor) SetFullscreen(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := m.fullscreen
	m.fullscreen = active
	if !active && was {
		m.breachLocked()
	} else if active && !was {
		m.maybeRestoreLocked()
	}
}

// SetVisibility records a document visibility transition. Hiding the tab
// emits an immediate visibility_change violation (when tab-switch
// detection is enabled) and starts the grace flow.
func (m *Monitor) SetVisibility(visible bool) {
	if !m.cfg.EnableTabSwitchDetection {
		return
	}
	m.mu.Lock()
	was := m.visible
	m.visible = visible
	var pending *violation.Violation
	if !visible && was {
		pending = m.immediateLocked(violation.TypeVisibilityChange, violation.SeverityMedium,
			"Tab switched or document hidden", nil)
		m.breachLocked()
	} else if visible && !was {
		m.maybeRestoreLocked()
	}
	m.mu.Unlock()
	if pending != nil {
		m.emit(*pending)
	}
}

// SetFocus records a window focus transition. Losing focus emits an
// immediate window_blur violation (when blur detection is enabled) and
// starts the grace flow.
func (m *Monitor) SetFocus(focused bool) {
	if !m.cfg.EnableWindowBlurDetection {
		return
	}
	m.mu.Lock()
	was := m.focused
	m.focused = focused
	var pending *violation.Violation
	if !focused && was {
		pending = m.immediateLocked(violation.TypeWindowBlur, violation.SeverityMedium,
			"Window lost focus", nil)
		m.breachLocked()
	} else if focused && !was {
		m.maybeRestoreLocked()
	}
	m.mu.Unlock()
	if pending != nil {
		m.emit(*pending)
	}
}

// KeyPressed evaluates a key press against the forbidden-combination
// table. Returns true when the caller must suppress the browser default.
// Matches emit an immediate key_combination violation; no grace period
// is involved.
func (m *Monitor) KeyPressed(k Key) bool {
	if !m.cfg.EnableKeyDetection {
		return false
	}
	severity, forbidden := comboSeverity(k)
	if !forbidden {
		return false
	}

	m.mu.Lock()
	pending := m.immediateLocked(violation.TypeKeyCombination, severity,
		"Forbidden key combination: "+k.String(),
		map[string]any{"combination": k.String()})
	m.mu.Unlock()
	if pending != nil {
		m.emit(*pending)
	}
	return true
}

// State returns a snapshot of the current compliance state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		IsCompliant:           m.compliantLocked(),
		GracePeriodActive:     m.graceActive,
		RemainingGraceSeconds: m.remaining,
		ViolationCount:        m.violations,
	}
}

// MaxViolationsReached is a pure derived read; callers decide what to do
// (force-submit, warn). The monitor never terminates the session.
func (m *Monitor) MaxViolationsReached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.violations >= m.cfg.MaxViolations
}

// Close cancels all outstanding timers and stops further emission.
// Idempotent: safe to call twice.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.gen++
	m.cancelTimersLocked()
	m.graceActive = false
	m.remaining = 0
}

func (m *Monitor) compliantLocked() bool {
	if !m.fullscreen {
		return false
	}
	if m.cfg.EnableTabSwitchDetection && !m.visible {
		return false
	}
	if m.cfg.EnableWindowBlurDetection && !m.focused {
		return false
	}
	return true
}

// breachLocked enters the grace period unless one is already running.
func (m *Monitor) breachLocked() {
	if m.closed || m.graceActive {
		return
	}
	m.graceActive = true
	m.remaining = m.cfg.GracePeriodSeconds
	m.gen++
	gen := m.gen

	m.cancelGrace = m.schedule(time.Duration(m.cfg.GracePeriodSeconds)*time.Second, func() {
		m.graceElapsed(gen)
	})
	m.cancelTick = m.schedule(time.Second, func() {
		m.countdownTick(gen)
	})
}

// maybeRestoreLocked cancels the grace flow if compliance is fully
// restored. The generation bump invalidates any timer already in flight.
func (m *Monitor) maybeRestoreLocked() {
	if !m.graceActive || !m.compliantLocked() {
		return
	}
	m.gen++
	m.cancelTimersLocked()
	m.graceActive = false
	m.remaining = 0
}

func (m *Monitor) cancelTimersLocked() {
	if m.cancelGrace != nil {
		m.cancelGrace()
		m.cancelGrace = nil
	}
	if m.cancelTick != nil {
		m.cancelTick()
		m.cancelTick = nil
	}
}

// graceElapsed fires when the grace timer expires. The generation and
// compliance re-checks close the late-timer race: a callback that lost
// its generation, or arrives after remediation, does nothing.
func (m *Monitor) graceElapsed(gen int) {
	m.mu.Lock()
	if m.closed || gen != m.gen || !m.graceActive || m.compliantLocked() {
		m.mu.Unlock()
		return
	}
	m.gen++ // invalidate the countdown ticker
	m.cancelTimersLocked()
	m.graceActive = false
	m.remaining = 0
	m.violations++
	v := violation.New(violation.TypeFullscreenExit, violation.SeverityHigh, 1.0,
		"Fullscreen exited and not restored within the grace period", m.now(),
		map[string]any{
			"fullscreen": m.fullscreen,
			"visible":    m.visible,
			"focused":    m.focused,
		})
	m.mu.Unlock()
	m.emit(v)
}

// countdownTick decrements the remaining grace seconds once per second
// while the grace period stays active.
func (m *Monitor) countdownTick(gen int) {
	m.mu.Lock()
	if m.closed || gen != m.gen || !m.graceActive {
		m.mu.Unlock()
		return
	}
	if m.remaining > 0 {
		m.remaining--
	}
	remaining := m.remaining
	cb := m.onGraceTick
	if remaining > 0 {
		m.cancelTick = m.schedule(time.Second, func() {
			m.countdownTick(gen)
		})
	}
	m.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
}

// immediateLocked builds an immediate violation and counts it. The caller
// emits after releasing the lock.
func (m *Monitor) immediateLocked(vtype violation.Type, severity violation.Severity, msg string, evidence map[string]any) *violation.Violation {
	if m.closed {
		return nil
	}
	m.violations++
	v := violation.New(vtype, severity, 1.0, msg, m.now(), evidence)
	return &v
}
