// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/vigil/ent/violationevent"
)

// ViolationEvent is the model entity for the ViolationEvent schema.
type ViolationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// UUID of the violation itself
	ViolationID string `json:"violation_id,omitempty"`
	// no_face, multiple_faces, gaze_deviation, mouth_open, device_detected, head_turned, head_tilted, fullscreen_exit, key_combination, visibility_change, window_blur
	ViolationType string `json:"violation_type,omitempty"`
	// low, medium, high, critical
	Severity string `json:"severity,omitempty"`
	// Smoothed detection confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Human-readable description
	Message string `json:"message,omitempty"`
	// Tracked face UUID for per-face violations, empty for frame-level
	FaceID string `json:"face_id,omitempty"`
	// Detector-specific measurements backing the violation
	Evidence     map[string]interface{} `json:"evidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ViolationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case violationevent.FieldEvidence:
			values[i] = new([]byte)
		case violationevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case violationevent.FieldID, violationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case violationevent.FieldSessionID, violationevent.FieldViolationID, violationevent.FieldViolationType, violationevent.FieldSeverity, violationevent.FieldMessage, violationevent.FieldFaceID:
			values[i] = new(sql.NullString)
		case violationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ViolationEvent fields.
func (_m *ViolationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case violationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case violationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case violationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case violationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case violationevent.FieldViolationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field violation_id", values[i])
			} else if value.Valid {
				_m.ViolationID = value.String
			}
		case violationevent.FieldViolationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field violation_type", values[i])
			} else if value.Valid {
				_m.ViolationType = value.String
			}
		case violationevent.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case violationevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case violationevent.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case violationevent.FieldFaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field face_id", values[i])
			} else if value.Valid {
				_m.FaceID = value.String
			}
		case violationevent.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ViolationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ViolationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ViolationEvent.
// Note that you need to call ViolationEvent.Unwrap() before calling this method if this ViolationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ViolationEvent) Update() *ViolationEventUpdateOne {
	return NewViolationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ViolationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ViolationEvent) Unwrap() *ViolationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ViolationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ViolationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ViolationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("violation_id=")
	builder.WriteString(_m.ViolationID)
	builder.WriteString(", ")
	builder.WriteString("violation_type=")
	builder.WriteString(_m.ViolationType)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("face_id=")
	builder.WriteString(_m.FaceID)
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteByte(')')
	return builder.String()
}

// ViolationEvents is a parsable slice of ViolationEvent.
type ViolationEvents []*ViolationEvent
