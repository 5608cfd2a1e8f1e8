// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vigil/ent/predicate"
	"github.com/abhisek/vigil/ent/violationevent"
)

// ViolationEventUpdate is the builder for updating ViolationEvent entities.
type ViolationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ViolationEventMutation
}

// Where appends a list predicates to the ViolationEventUpdate builder.
func (_u *ViolationEventUpdate) Where(ps ...predicate.ViolationEvent) *ViolationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ViolationEventUpdate) SetSessionID(v string) *ViolationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableSessionID(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetViolationID sets the "violation_id" field.
func (_u *ViolationEventUpdate) SetViolationID(v string) *ViolationEventUpdate {
	_u.mutation.SetViolationID(v)
	return _u
}

// SetNillableViolationID sets the "violation_id" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableViolationID(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetViolationID(*v)
	}
	return _u
}

// SetViolationType sets the "violation_type" field.
func (_u *ViolationEventUpdate) SetViolationType(v string) *ViolationEventUpdate {
	_u.mutation.SetViolationType(v)
	return _u
}

// SetNillableViolationType sets the "violation_type" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableViolationType(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetViolationType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ViolationEventUpdate) SetSeverity(v string) *ViolationEventUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableSeverity(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ViolationEventUpdate) SetConfidence(v float64) *ViolationEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableConfidence(v *float64) *ViolationEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ViolationEventUpdate) AddConfidence(v float64) *ViolationEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ViolationEventUpdate) SetMessage(v string) *ViolationEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableMessage(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetFaceID sets the "face_id" field.
func (_u *ViolationEventUpdate) SetFaceID(v string) *ViolationEventUpdate {
	_u.mutation.SetFaceID(v)
	return _u
}

// SetNillableFaceID sets the "face_id" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableFaceID(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetFaceID(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ViolationEventUpdate) SetEvidence(v map[string]interface{}) *ViolationEventUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ViolationEventUpdate) ClearEvidence() *ViolationEventUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_u *ViolationEventUpdate) Mutation() *ViolationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViolationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViolationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := violationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViolationID(); ok {
		if err := violationevent.ViolationIDValidator(v); err != nil {
			return &ValidationError{Name: "violation_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViolationType(); ok {
		if err := violationevent.ViolationTypeValidator(v); err != nil {
			return &ValidationError{Name: "violation_type", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := violationevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ViolationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violationevent.Table, violationevent.Columns, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(violationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViolationID(); ok {
		_spec.SetField(violationevent.FieldViolationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViolationType(); ok {
		_spec.SetField(violationevent.FieldViolationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(violationevent.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(violationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(violationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(violationevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaceID(); ok {
		_spec.SetField(violationevent.FieldFaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(violationevent.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(violationevent.FieldEvidence, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViolationEventUpdateOne is the builder for updating a single ViolationEvent entity.
type ViolationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViolationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ViolationEventUpdateOne) SetSessionID(v string) *ViolationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableSessionID(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetViolationID sets the "violation_id" field.
func (_u *ViolationEventUpdateOne) SetViolationID(v string) *ViolationEventUpdateOne {
	_u.mutation.SetViolationID(v)
	return _u
}

// SetNillableViolationID sets the "violation_id" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableViolationID(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetViolationID(*v)
	}
	return _u
}

// SetViolationType sets the "violation_type" field.
func (_u *ViolationEventUpdateOne) SetViolationType(v string) *ViolationEventUpdateOne {
	_u.mutation.SetViolationType(v)
	return _u
}

// SetNillableViolationType sets the "violation_type" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableViolationType(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetViolationType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ViolationEventUpdateOne) SetSeverity(v string) *ViolationEventUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableSeverity(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ViolationEventUpdateOne) SetConfidence(v float64) *ViolationEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableConfidence(v *float64) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ViolationEventUpdateOne) AddConfidence(v float64) *ViolationEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ViolationEventUpdateOne) SetMessage(v string) *ViolationEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableMessage(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetFaceID sets the "face_id" field.
func (_u *ViolationEventUpdateOne) SetFaceID(v string) *ViolationEventUpdateOne {
	_u.mutation.SetFaceID(v)
	return _u
}

// SetNillableFaceID sets the "face_id" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableFaceID(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetFaceID(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ViolationEventUpdateOne) SetEvidence(v map[string]interface{}) *ViolationEventUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ViolationEventUpdateOne) ClearEvidence() *ViolationEventUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_u *ViolationEventUpdateOne) Mutation() *ViolationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViolationEventUpdate builder.
func (_u *ViolationEventUpdateOne) Where(ps ...predicate.ViolationEvent) *ViolationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViolationEventUpdateOne) Select(field string, fields ...string) *ViolationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ViolationEvent entity.
func (_u *ViolationEventUpdateOne) Save(ctx context.Context) (*ViolationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationEventUpdateOne) SaveX(ctx context.Context) *ViolationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViolationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := violationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViolationID(); ok {
		if err := violationevent.ViolationIDValidator(v); err != nil {
			return &ValidationError{Name: "violation_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViolationType(); ok {
		if err := violationevent.ViolationTypeValidator(v); err != nil {
			return &ValidationError{Name: "violation_type", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := violationevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *ViolationEventUpdateOne) sqlSave(ctx context.Context) (_node *ViolationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violationevent.Table, violationevent.Columns, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViolationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, violationevent.FieldID)
		for _, f := range fields {
			if !violationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != violationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(violationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViolationID(); ok {
		_spec.SetField(violationevent.FieldViolationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViolationType(); ok {
		_spec.SetField(violationevent.FieldViolationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(violationevent.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(violationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(violationevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(violationevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.FaceID(); ok {
		_spec.SetField(violationevent.FieldFaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(violationevent.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(violationevent.FieldEvidence, field.TypeJSON)
	}
	_node = &ViolationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
