// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/vigil/ent/llmrequestevent"
	"github.com/abhisek/vigil/ent/schema"
	"github.com/abhisek/vigil/ent/sessionevent"
	"github.com/abhisek/vigil/ent/snapshot"
	"github.com/abhisek/vigil/ent/violationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescFramesProcessed is the schema descriptor for frames_processed field.
	sessioneventDescFramesProcessed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultFramesProcessed holds the default value on creation for the frames_processed field.
	sessionevent.DefaultFramesProcessed = sessioneventDescFramesProcessed.Default.(int)
	// sessioneventDescViolationCount is the schema descriptor for violation_count field.
	sessioneventDescViolationCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultViolationCount holds the default value on creation for the violation_count field.
	sessionevent.DefaultViolationCount = sessioneventDescViolationCount.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshotDescSessionID is the schema descriptor for session_id field.
	snapshotDescSessionID := snapshotFields[2].Descriptor()
	// snapshot.DefaultSessionID holds the default value on creation for the session_id field.
	snapshot.DefaultSessionID = snapshotDescSessionID.Default.(string)
	violationeventMixin := schema.ViolationEvent{}.Mixin()
	violationeventMixinFields0 := violationeventMixin[0].Fields()
	_ = violationeventMixinFields0
	violationeventFields := schema.ViolationEvent{}.Fields()
	_ = violationeventFields
	// violationeventDescTimestamp is the schema descriptor for timestamp field.
	violationeventDescTimestamp := violationeventMixinFields0[1].Descriptor()
	// violationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	violationevent.DefaultTimestamp = violationeventDescTimestamp.Default.(func() time.Time)
	// violationeventDescSessionID is the schema descriptor for session_id field.
	violationeventDescSessionID := violationeventFields[0].Descriptor()
	// violationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	violationevent.SessionIDValidator = violationeventDescSessionID.Validators[0].(func(string) error)
	// violationeventDescViolationID is the schema descriptor for violation_id field.
	violationeventDescViolationID := violationeventFields[1].Descriptor()
	// violationevent.ViolationIDValidator is a validator for the "violation_id" field. It is called by the builders before save.
	violationevent.ViolationIDValidator = violationeventDescViolationID.Validators[0].(func(string) error)
	// violationeventDescViolationType is the schema descriptor for violation_type field.
	violationeventDescViolationType := violationeventFields[2].Descriptor()
	// violationevent.ViolationTypeValidator is a validator for the "violation_type" field. It is called by the builders before save.
	violationevent.ViolationTypeValidator = violationeventDescViolationType.Validators[0].(func(string) error)
	// violationeventDescSeverity is the schema descriptor for severity field.
	violationeventDescSeverity := violationeventFields[3].Descriptor()
	// violationevent.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	violationevent.SeverityValidator = violationeventDescSeverity.Validators[0].(func(string) error)
	// violationeventDescConfidence is the schema descriptor for confidence field.
	violationeventDescConfidence := violationeventFields[4].Descriptor()
	// violationevent.DefaultConfidence holds the default value on creation for the confidence field.
	violationevent.DefaultConfidence = violationeventDescConfidence.Default.(float64)
	// violationeventDescMessage is the schema descriptor for message field.
	violationeventDescMessage := violationeventFields[5].Descriptor()
	// violationevent.DefaultMessage holds the default value on creation for the message field.
	violationevent.DefaultMessage = violationeventDescMessage.Default.(string)
	// violationeventDescFaceID is the schema descriptor for face_id field.
	violationeventDescFaceID := violationeventFields[6].Descriptor()
	// violationevent.DefaultFaceID holds the default value on creation for the face_id field.
	violationevent.DefaultFaceID = violationeventDescFaceID.Default.(string)
}
