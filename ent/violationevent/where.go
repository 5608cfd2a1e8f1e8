// Code generated by ent, DO NOT EDIT.

package violationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/vigil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSessionID, v))
}

// ViolationID applies equality check predicate on the "violation_id" field. It's identical to ViolationIDEQ.
func ViolationID(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldViolationID, v))
}

// ViolationType applies equality check predicate on the "violation_type" field. It's identical to ViolationTypeEQ.
func ViolationType(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldViolationType, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSeverity, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldConfidence, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldMessage, v))
}

// FaceID applies equality check predicate on the "face_id" field. It's identical to FaceIDEQ.
func FaceID(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldFaceID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ViolationIDEQ applies the EQ predicate on the "violation_id" field.
func ViolationIDEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldViolationID, v))
}

// ViolationIDNEQ applies the NEQ predicate on the "violation_id" field.
func ViolationIDNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldViolationID, v))
}

// ViolationIDIn applies the In predicate on the "violation_id" field.
func ViolationIDIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldViolationID, vs...))
}

// ViolationIDNotIn applies the NotIn predicate on the "violation_id" field.
func ViolationIDNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldViolationID, vs...))
}

// ViolationIDGT applies the GT predicate on the "violation_id" field.
func ViolationIDGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldViolationID, v))
}

// ViolationIDGTE applies the GTE predicate on the "violation_id" field.
func ViolationIDGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldViolationID, v))
}

// ViolationIDLT applies the LT predicate on the "violation_id" field.
func ViolationIDLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldViolationID, v))
}

// ViolationIDLTE applies the LTE predicate on the "violation_id" field.
func ViolationIDLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldViolationID, v))
}

// ViolationIDContains applies the Contains predicate on the "violation_id" field.
func ViolationIDContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldViolationID, v))
}

// ViolationIDHasPrefix applies the HasPrefix predicate on the "violation_id" field.
func ViolationIDHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldViolationID, v))
}

// ViolationIDHasSuffix applies the HasSuffix predicate on the "violation_id" field.
func ViolationIDHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldViolationID, v))
}

// ViolationIDEqualFold applies the EqualFold predicate on the "violation_id" field.
func ViolationIDEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldViolationID, v))
}

// ViolationIDContainsFold applies the ContainsFold predicate on the "violation_id" field.
func ViolationIDContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldViolationID, v))
}

// ViolationTypeEQ applies the EQ predicate on the "violation_type" field.
func ViolationTypeEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldViolationType, v))
}

// ViolationTypeNEQ applies the NEQ predicate on the "violation_type" field.
func ViolationTypeNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldViolationType, v))
}

// ViolationTypeIn applies the In predicate on the "violation_type" field.
func ViolationTypeIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldViolationType, vs...))
}

// ViolationTypeNotIn applies the NotIn predicate on the "violation_type" field.
func ViolationTypeNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldViolationType, vs...))
}

// ViolationTypeGT applies the GT predicate on the "violation_type" field.
func ViolationTypeGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldViolationType, v))
}

// ViolationTypeGTE applies the GTE predicate on the "violation_type" field.
func ViolationTypeGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldViolationType, v))
}

// ViolationTypeLT applies the LT predicate on the "violation_type" field.
func ViolationTypeLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldViolationType, v))
}

// ViolationTypeLTE applies the LTE predicate on the "violation_type" field.
func ViolationTypeLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldViolationType, v))
}

// ViolationTypeContains applies the Contains predicate on the "violation_type" field.
func ViolationTypeContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldViolationType, v))
}

// ViolationTypeHasPrefix applies the HasPrefix predicate on the "violation_type" field.
func ViolationTypeHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldViolationType, v))
}

// ViolationTypeHasSuffix applies the HasSuffix predicate on the "violation_type" field.
func ViolationTypeHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldViolationType, v))
}

// ViolationTypeEqualFold applies the EqualFold predicate on the "violation_type" field.
func ViolationTypeEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldViolationType, v))
}

// ViolationTypeContainsFold applies the ContainsFold predicate on the "violation_type" field.
func ViolationTypeContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldViolationType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldSeverity, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldConfidence, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldMessage, v))
}

// FaceIDEQ applies the EQ predicate on the "face_id" field.
func FaceIDEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldFaceID, v))
}

// FaceIDNEQ applies the NEQ predicate on the "face_id" field.
func FaceIDNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldFaceID, v))
}

// FaceIDIn applies the In predicate on the "face_id" field.
func FaceIDIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldFaceID, vs...))
}

// FaceIDNotIn applies the NotIn predicate on the "face_id" field.
func FaceIDNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldFaceID, vs...))
}

// FaceIDGT applies the GT predicate on the "face_id" field.
func FaceIDGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldFaceID, v))
}

// FaceIDGTE applies the GTE predicate on the "face_id" field.
func FaceIDGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldFaceID, v))
}

// FaceIDLT applies the LT predicate on the "face_id" field.
func FaceIDLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldFaceID, v))
}

// FaceIDLTE applies the LTE predicate on the "face_id" field.
func FaceIDLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldFaceID, v))
}

// FaceIDContains applies the Contains predicate on the "face_id" field.
func FaceIDContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldFaceID, v))
}

// FaceIDHasPrefix applies the HasPrefix predicate on the "face_id" field.
func FaceIDHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldFaceID, v))
}

// FaceIDHasSuffix applies the HasSuffix predicate on the "face_id" field.
func FaceIDHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldFaceID, v))
}

// FaceIDEqualFold applies the EqualFold predicate on the "face_id" field.
func FaceIDEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldFaceID, v))
}

// FaceIDContainsFold applies the ContainsFold predicate on the "face_id" field.
func FaceIDContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldFaceID, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotNull(FieldEvidence))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.NotPredicates(p))
}
