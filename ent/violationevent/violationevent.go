// Code generated by ent, DO NOT EDIT.

package violationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the violationevent type in the database.
	Label = "violation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldViolationID holds the string denoting the violation_id field in the database.
	FieldViolationID = "violation_id"
	// FieldViolationType holds the string denoting the violation_type field in the database.
	FieldViolationType = "violation_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldFaceID holds the string denoting the face_id field in the database.
	FieldFaceID = "face_id"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// Table holds the table name of the violationevent in the database.
	Table = "violation_events"
)

// Columns holds all SQL columns for violationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldViolationID,
	FieldViolationType,
	FieldSeverity,
	FieldConfidence,
	FieldMessage,
	FieldFaceID,
	FieldEvidence,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ViolationIDValidator is a validator for the "violation_id" field. It is called by the builders before save.
	ViolationIDValidator func(string) error
	// ViolationTypeValidator is a validator for the "violation_type" field. It is called by the builders before save.
	ViolationTypeValidator func(string) error
	// SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	SeverityValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultMessage holds the default value on creation for the "message" field.
	DefaultMessage string
	// DefaultFaceID holds the default value on creation for the "face_id" field.
	DefaultFaceID string
)

// OrderOption defines the ordering options for the ViolationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByViolationID orders the results by the violation_id field.
func ByViolationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViolationID, opts...).ToFunc()
}

// ByViolationType orders the results by the violation_type field.
func ByViolationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViolationType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByFaceID orders the results by the face_id field.
func ByFaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFaceID, opts...).ToFunc()
}
