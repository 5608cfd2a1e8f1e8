package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViolationEvent records every integrity violation emitted during a
// proctored session.
type ViolationEvent struct {
	ent.Schema
}

func (ViolationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ViolationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("violation_id").
			NotEmpty().
			Unique().
			Comment("UUID of the violation itself"),
		field.String("violation_type").
			NotEmpty().
			Comment("no_face, multiple_faces, gaze_deviation, mouth_open, device_detected, head_turned, head_tilted, fullscreen_exit, key_combination, visibility_change, window_blur"),
		field.String("severity").
			NotEmpty().
			Comment("low, medium, high, critical"),
		field.Float("confidence").
			Default(0).
			Comment("Smoothed detection confidence in [0,1]"),
		field.String("message").
			Default("").
			Comment("Human-readable description"),
		field.String("face_id").
			Default("").
			Comment("Tracked face UUID for per-face violations, empty for frame-level"),
		field.JSON("evidence", map[string]any{}).
			Optional().
			Comment("Detector-specific measurements backing the violation"),
	}
}

func (ViolationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("violation_type"),
		index.Fields("severity"),
	}
}
