// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/upskill-labs/upskill/ent/attemptevent"
	"github.com/upskill-labs/upskill/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AttemptEventUpdate) SetAssessmentID(v string) *AttemptEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAssessmentID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdate) SetAction(v string) *AttemptEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAction(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *AttemptEventUpdate) SetAnsweredCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnsweredCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *AttemptEventUpdate) AddAnsweredCount(v int) *AttemptEventUpdate {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *AttemptEventUpdate) SetRemainingSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRemainingSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *AttemptEventUpdate) AddRemainingSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetForced sets the "forced" field.
func (_u *AttemptEventUpdate) SetForced(v bool) *AttemptEventUpdate {
	_u.mutation.SetForced(v)
	return _u
}

// SetNillableForced sets the "forced" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableForced(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetForced(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AttemptEventUpdate) SetErrorMessage(v string) *AttemptEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableErrorMessage(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AttemptEventUpdate) ClearErrorMessage() *AttemptEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := attemptevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(attemptevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(attemptevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(attemptevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forced(); ok {
		_spec.SetField(attemptevent.FieldForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(attemptevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(attemptevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AttemptEventUpdateOne) SetAssessmentID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAssessmentID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdateOne) SetAction(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAction(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *AttemptEventUpdateOne) SetAnsweredCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnsweredCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *AttemptEventUpdateOne) AddAnsweredCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *AttemptEventUpdateOne) SetRemainingSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRemainingSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *AttemptEventUpdateOne) AddRemainingSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetForced sets the "forced" field.
func (_u *AttemptEventUpdateOne) SetForced(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetForced(v)
	return _u
}

// SetNillableForced sets the "forced" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableForced(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetForced(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AttemptEventUpdateOne) SetErrorMessage(v string) *AttemptEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableErrorMessage(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AttemptEventUpdateOne) ClearErrorMessage() *AttemptEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := attemptevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(attemptevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(attemptevent.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(attemptevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(attemptevent.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Forced(); ok {
		_spec.SetField(attemptevent.FieldForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(attemptevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(attemptevent.FieldErrorMessage, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
