// Package tracker assigns frame-local face detections to persistent
// identities across frames, scores each identity's stability, and elects a
// single primary face with switch hysteresis. Without it, per-person gaze
// and mouth attribution would jump between unrelated faces every frame.
package tracker

import (
	"math"

	"github.com/google/uuid"

	"github.com/abhisek/vigil/internal/geometry"
	"github.com/abhisek/vigil/internal/landmark"
)

// Face is a tracked identity. Mutated only by the owning Tracker on its
// own tick; callers must treat it as read-only.
type Face struct {
	// ID is the opaque identity, stable across frames.
	ID string

	// Landmarks and Box are the last-matched detection's geometry.
	Landmarks []geometry.Point
	Box       geometry.Box

	// Stability is the rolling confidence in [0,1] that this identity
	// still corresponds to the same physical face.
	Stability float64

	// FramesSinceDetection counts consecutive misses. 0 while matched.
	FramesSinceDetection int

	// Primary marks the single face treated as the test-taker.
	Primary bool

	// leadStreak counts consecutive frames this face has outranked the
	// current primary; drives switch hysteresis.
	leadStreak int
}

// Size returns the face's normalized bounding size.
func (f *Face) Size() float64 { return f.Box.Size() }

// Result is the tracker's per-tick output.
type Result struct {
	// Faces are the live tracked identities after this tick.
	Faces []*Face

	// PrimaryID is the elected primary's ID, or "" when none exists.
	PrimaryID string

	// DetectionQuality is the primary's stability score, or 0.
	DetectionQuality float64

	// Assignments maps frame-local detection indices to tracked IDs for
	// detections that survived gating and were matched or spawned.
	Assignments map[int]string
}

// Tracker owns the tracked-face collection for one session. Not safe for
// concurrent use; the session pipeline guarantees one tick at a time.
type Tracker struct {
	cfg   Config
	faces []*Face
	newID func() string
}

// New creates a Tracker. Zero-valued config fields fall back to defaults
// so partially specified configs behave sensibly.
func New(cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.MinFaceSize <= 0 {
		cfg.MinFaceSize = def.MinFaceSize
	}
	if cfg.MaxFaceSize <= 0 {
		cfg.MaxFaceSize = def.MaxFaceSize
	}
	if cfg.MatchDistance <= 0 {
		cfg.MatchDistance = def.MatchDistance
	}
	if cfg.StabilityAlpha <= 0 {
		cfg.StabilityAlpha = def.StabilityAlpha
	}
	if cfg.StabilityFrames <= 0 {
		cfg.StabilityFrames = def.StabilityFrames
	}
	if cfg.EvictionHorizon <= 0 {
		cfg.EvictionHorizon = def.EvictionHorizon
	}
	if cfg.PrimarySelection == "" {
		cfg.PrimarySelection = def.PrimarySelection
	}
	return &Tracker{cfg: cfg, newID: uuid.NewString}
}

// Update processes one frame's detections and returns the stabilized
// result. It never fails on malformed input: ungateable or degenerate
// detections are simply ignored.
func (t *Tracker) Update(detections []landmark.Face) Result {
	assignments := make(map[int]string)
	matched := make(map[*Face]bool)

	for i, det := range detections {
		size := det.Size()
		if size < t.cfg.MinFaceSize || size > t.cfg.MaxFaceSize {
			continue
		}

		if face := t.closestUnmatched(det, matched); face != nil {
			t.applyMatch(face, det)
			matched[face] = true
			assignments[i] = face.ID
			continue
		}

		// Unmatched detection spawns a new identity with zero stability.
		face := &Face{
			ID:        t.newID(),
			Landmarks: det.Points,
			Box:       det.Box,
		}
		t.faces = append(t.faces, face)
		matched[face] = true
		assignments[i] = face.ID
	}

	// Decay and age the misses, then evict beyond the horizon.
	kept := t.faces[:0]
	for _, face := range t.faces {
		if !matched[face] {
			face.FramesSinceDetection++
			face.Stability *= 1 - t.cfg.StabilityAlpha
		}
		if face.FramesSinceDetection > t.cfg.EvictionHorizon {
			continue
		}
		kept = append(kept, face)
	}
	t.faces = kept

	t.electPrimary()

	return t.result(assignments)
}

// Faces returns the live tracked identities.
func (t *Tracker) Faces() []*Face { return t.faces }

// closestUnmatched finds the best existing track for a detection: nearest
// center within MatchDistance, ties broken by larger box overlap.
func (t *Tracker) closestUnmatched(det landmark.Face, matched map[*Face]bool) *Face {
	const tie = 1e-9

	var best *Face
	bestDist := math.Inf(1)
	bestIoU := -1.0

	center := det.Center()
	for _, face := range t.faces {
		if matched[face] {
			continue
		}
		d := geometry.Distance(center, face.Box.Center())
		if d > t.cfg.MatchDistance {
			continue
		}
		iou := geometry.IoU(det.Box, face.Box)
		if d < bestDist-tie || (math.Abs(d-bestDist) <= tie && iou > bestIoU) {
			best = face
			bestDist = d
			bestIoU = iou
		}
	}
	return best
}

func (t *Tracker) applyMatch(face *Face, det landmark.Face) {
	face.Landmarks = det.Points
	face.Box = det.Box
	face.FramesSinceDetection = 0
	face.Stability += t.cfg.StabilityAlpha * (1 - face.Stability)
}

// electPrimary enforces the single-primary invariant and applies switch
// hysteresis: a challenger must outrank the incumbent for StabilityFrames
// consecutive frames before it takes over.
func (t *Tracker) electPrimary() {
	primary := t.currentPrimary()

	if primary == nil {
		if best := t.bestByPolicy(nil); best != nil {
			best.Primary = true
			best.leadStreak = 0
		}
		return
	}

	best := t.bestByPolicy(nil)
	if best == nil || best == primary {
		t.resetStreaks(primary)
		return
	}

	// Strictly-better requirement: equal rank never accrues a streak.
	if t.rank(best) > t.rank(primary) {
		best.leadStreak++
		if best.leadStreak >= t.cfg.StabilityFrames {
			primary.Primary = false
			best.Primary = true
			best.leadStreak = 0
		}
	} else {
		best.leadStreak = 0
	}
	t.resetStreaks(primary, best)
}

// currentPrimary returns the primary face, defensively demoting all but
// the highest-ranked one if the invariant was somehow broken.
func (t *Tracker) currentPrimary() *Face {
	var primary *Face
	for _, face := range t.faces {
		if !face.Primary {
			continue
		}
		if primary == nil {
			primary = face
			continue
		}
		if t.rank(face) > t.rank(primary) {
			primary.Primary = false
			primary = face
		} else {
			face.Primary = false
		}
	}
	return primary
}

// bestByPolicy returns the highest-ranked face, excluding any in skip.
func (t *Tracker) bestByPolicy(skip map[*Face]bool) *Face {
	var best *Face
	for _, face := range t.faces {
		if skip[face] {
			continue
		}
		if best == nil || t.rank(face) > t.rank(best) {
			best = face
		}
	}
	return best
}

// rank scores a face under the configured primary-selection policy.
// Higher is better across all policies.
func (t *Tracker) rank(face *Face) float64 {
	switch t.cfg.PrimarySelection {
	case PolicyLargest:
		return face.Size()
	case PolicyMostCentral:
		return -geometry.Distance(face.Box.Center(), geometry.Point{X: 0.5, Y: 0.5})
	default:
		return face.Stability
	}
}

// resetStreaks clears lead streaks for every face not in keep.
func (t *Tracker) resetStreaks(keep ...*Face) {
	keepSet := make(map[*Face]bool, len(keep))
	for _, f := range keep {
		keepSet[f] = true
	}
	for _, face := range t.faces {
		if !keepSet[face] {
			face.leadStreak = 0
		}
	}
}

func (t *Tracker) result(assignments map[int]string) Result {
	res := Result{
		Faces:       t.faces,
		Assignments: assignments,
	}
	for _, face := range t.faces {
		if face.Primary {
			res.PrimaryID = face.ID
			res.DetectionQuality = face.Stability
			break
		}
	}
	return res
}
