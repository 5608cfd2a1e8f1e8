package violation

import (
	"time"

	"github.com/abhisek/vigil/internal/classifier"
)

// Default throttle parameters.
const (
	DefaultCooldown        = 3 * time.Second
	DefaultNoFaceDwell     = 3 * time.Second
	DefaultSmoothingWindow = 5
)

// Config tunes the throttle layer.
type Config struct {
	// Cooldown is the minimum interval between violations sharing a
	// throttle key (type plus source face).
	Cooldown time.Duration

	// CooldownByType overrides Cooldown for specific types.
	CooldownByType map[Type]time.Duration

	// NoFaceDwell is how long a no_face condition must persist before
	// its severity escalates from medium to high.
	NoFaceDwell time.Duration

	// SmoothingWindow is the rolling-average window applied to candidate
	// confidences so a single-frame spike cannot inflate a violation's
	// reported confidence.
	SmoothingWindow int

	// LogCap bounds the in-memory violation log.
	LogCap int
}

// DefaultThrottleConfig returns the default throttle configuration.
func DefaultThrottleConfig() Config {
	return Config{
		Cooldown:        DefaultCooldown,
		NoFaceDwell:     DefaultNoFaceDwell,
		SmoothingWindow: DefaultSmoothingWindow,
		LogCap:          DefaultLogCap,
	}
}

// Throttle converts candidate events into rate-limited violations. Owned
// by a single session; not safe for concurrent use.
type Throttle struct {
	cfg         Config
	now         func() time.Time
	lastEmit    map[string]time.Time
	confWindows map[string]*confWindow
	noFaceSince time.Time
	log         *Log
}

// confWindow is the rolling confidence window for one throttle key,
// stamped with the last time the key produced a candidate so idle keys
// can be dropped.
type confWindow struct {
	kind   classifier.Kind
	seen   time.Time
	values []float64
}

// NewThrottle creates a Throttle using the wall clock.
func NewThrottle(cfg Config) *Throttle {
	return NewThrottleWithClock(cfg, time.Now)
}

// NewThrottleWithClock creates a Throttle with an injected clock; tests
// drive time explicitly.
func NewThrottleWithClock(cfg Config, now func() time.Time) *Throttle {
	def := DefaultThrottleConfig()
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	if cfg.NoFaceDwell <= 0 {
		cfg.NoFaceDwell = def.NoFaceDwell
	}
	if cfg.SmoothingWindow <= 0 {
		cfg.SmoothingWindow = def.SmoothingWindow
	}
	return &Throttle{
		cfg:         cfg,
		now:         now,
		lastEmit:    make(map[string]time.Time),
		confWindows: make(map[string]*confWindow),
		log:         NewLog(cfg.LogCap),
	}
}

// Log returns the bounded violation log owned by this throttle.
func (t *Throttle) Log() *Log { return t.log }

// Record evaluates one candidate event against its cooldown key and
// returns a new Violation if it survives, nil otherwise. Different kinds
// firing in the same tick never suppress each other: each kind/face pair
// has its own key.
func (t *Throttle) Record(ev classifier.Event) *Violation {
	now := t.now()
	t.pruneIdle(now)
	key := throttleKey(ev)

	smoothed := t.smooth(ev.Kind, key, ev.Confidence, now)

	sustained := false
	if ev.Kind == classifier.KindNoFace {
		if t.noFaceSince.IsZero() {
			t.noFaceSince = now
		}
		sustained = now.Sub(t.noFaceSince) >= t.cfg.NoFaceDwell
	}

	if last, ok := t.lastEmit[key]; ok && now.Sub(last) < t.cooldownFor(Type(ev.Kind)) {
		return nil
	}
	t.lastEmit[key] = now

	evidence := make(map[string]any, len(ev.Detail)+2)
	for k, v := range ev.Detail {
		evidence[k] = v
	}
	if ev.SourceFaceID != "" {
		evidence["source_face_id"] = ev.SourceFaceID
	}
	evidence["raw_confidence"] = ev.Confidence

	v := New(Type(ev.Kind), severityFor(ev.Kind, sustained), smoothed, messageFor(ev), now, evidence)
	t.log.Append(v)
	return &v
}

// ResetNoFace clears the no-face dwell timer. The session calls this on
// every frame that contains at least one face.
func (t *Throttle) ResetNoFace() {
	t.noFaceSince = time.Time{}
}

// Append adds an already-built violation to the shared log. Direct-path
// violations (compliance monitor) land here without cooldown evaluation.
func (t *Throttle) Append(v Violation) {
	t.log.Append(v)
}

// smooth updates the rolling confidence window for key and returns the
// current average.
func (t *Throttle) smooth(kind classifier.Kind, key string, confidence float64, now time.Time) float64 {
	w := t.confWindows[key]
	if w == nil {
		w = &confWindow{kind: kind}
		t.confWindows[key] = w
	}
	w.seen = now
	w.values = append(w.values, confidence)
	if len(w.values) > t.cfg.SmoothingWindow {
		w.values = w.values[len(w.values)-t.cfg.SmoothingWindow:]
	}

	sum := 0.0
	for _, c := range w.values {
		sum += c
	}
	return sum / float64(len(w.values))
}

// pruneIdle drops windows and emit stamps for keys that have been quiet
// past their cooldown. Without this a long session with face churn keeps
// one window per departed identity forever.
func (t *Throttle) pruneIdle(now time.Time) {
	for key, w := range t.confWindows {
		if now.Sub(w.seen) > t.cooldownFor(Type(w.kind)) {
			delete(t.confWindows, key)
			delete(t.lastEmit, key)
		}
	}
}

func (t *Throttle) cooldownFor(vtype Type) time.Duration {
	if d, ok := t.cfg.CooldownByType[vtype]; ok {
		return d
	}
	return t.cfg.Cooldown
}

// throttleKey derives the cooldown key from type and source face so
// per-person rules throttle independently per tracked identity.
func throttleKey(ev classifier.Event) string {
	if ev.SourceFaceID == "" {
		return string(ev.Kind)
	}
	return string(ev.Kind) + ":" + ev.SourceFaceID
}
