// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/upskill-labs/upskill/ent/predicate"
	"github.com/upskill-labs/upskill/ent/resultrecord"
)

// ResultRecordUpdate is the builder for updating ResultRecord entities.
type ResultRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ResultRecordMutation
}

// Where appends a list predicates to the ResultRecordUpdate builder.
func (_u *ResultRecordUpdate) Where(ps ...predicate.ResultRecord) *ResultRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ResultRecordUpdate) SetAttemptID(v string) *ResultRecordUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableAttemptID(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultRecordUpdate) SetAssessmentID(v string) *ResultRecordUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableAssessmentID(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetAssessmentTitle sets the "assessment_title" field.
func (_u *ResultRecordUpdate) SetAssessmentTitle(v string) *ResultRecordUpdate {
	_u.mutation.SetAssessmentTitle(v)
	return _u
}

// SetNillableAssessmentTitle sets the "assessment_title" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableAssessmentTitle(v *string) *ResultRecordUpdate {
	if v != nil {
		_u.SetAssessmentTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultRecordUpdate) SetScore(v int) *ResultRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableScore(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultRecordUpdate) AddScore(v int) *ResultRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ResultRecordUpdate) SetCorrectAnswers(v int) *ResultRecordUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableCorrectAnswers(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ResultRecordUpdate) AddCorrectAnswers(v int) *ResultRecordUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ResultRecordUpdate) SetTotalQuestions(v int) *ResultRecordUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ResultRecordUpdate) SetNillableTotalQuestions(v *int) *ResultRecordUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ResultRecordUpdate) AddTotalQuestions(v int) *ResultRecordUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetSkillBreakdown sets the "skill_breakdown" field.
func (_u *ResultRecordUpdate) SetSkillBreakdown(v map[string]float64) *ResultRecordUpdate {
	_u.mutation.SetSkillBreakdown(v)
	return _u
}

// ClearSkillBreakdown clears the value of the "skill_breakdown" field.
func (_u *ResultRecordUpdate) ClearSkillBreakdown() *ResultRecordUpdate {
	_u.mutation.ClearSkillBreakdown()
	return _u
}

// SetRecommendedPaths sets the "recommended_paths" field.
func (_u *ResultRecordUpdate) SetRecommendedPaths(v []string) *ResultRecordUpdate {
	_u.mutation.SetRecommendedPaths(v)
	return _u
}

// AppendRecommendedPaths appends value to the "recommended_paths" field.
func (_u *ResultRecordUpdate) AppendRecommendedPaths(v []string) *ResultRecordUpdate {
	_u.mutation.AppendRecommendedPaths(v)
	return _u
}

// ClearRecommendedPaths clears the value of the "recommended_paths" field.
func (_u *ResultRecordUpdate) ClearRecommendedPaths() *ResultRecordUpdate {
	_u.mutation.ClearRecommendedPaths()
	return _u
}

// Mutation returns the ResultRecordMutation object of the builder.
func (_u *ResultRecordUpdate) Mutation() *ResultRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultRecordUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := resultrecord.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultrecord.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentTitle(); ok {
		if err := resultrecord.AssessmentTitleValidator(v); err != nil {
			return &ValidationError{Name: "assessment_title", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.assessment_title": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultrecord.Table, resultrecord.Columns, sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(resultrecord.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultrecord.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentTitle(); ok {
		_spec.SetField(resultrecord.FieldAssessmentTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(resultrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(resultrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillBreakdown(); ok {
		_spec.SetField(resultrecord.FieldSkillBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.SkillBreakdownCleared() {
		_spec.ClearField(resultrecord.FieldSkillBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecommendedPaths(); ok {
		_spec.SetField(resultrecord.FieldRecommendedPaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultrecord.FieldRecommendedPaths, value)
		})
	}
	if _u.mutation.RecommendedPathsCleared() {
		_spec.ClearField(resultrecord.FieldRecommendedPaths, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultRecordUpdateOne is the builder for updating a single ResultRecord entity.
type ResultRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultRecordMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ResultRecordUpdateOne) SetAttemptID(v string) *ResultRecordUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableAttemptID(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultRecordUpdateOne) SetAssessmentID(v string) *ResultRecordUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableAssessmentID(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetAssessmentTitle sets the "assessment_title" field.
func (_u *ResultRecordUpdateOne) SetAssessmentTitle(v string) *ResultRecordUpdateOne {
	_u.mutation.SetAssessmentTitle(v)
	return _u
}

// SetNillableAssessmentTitle sets the "assessment_title" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableAssessmentTitle(v *string) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetAssessmentTitle(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultRecordUpdateOne) SetScore(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableScore(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultRecordUpdateOne) AddScore(v int) *ResultRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ResultRecordUpdateOne) SetCorrectAnswers(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableCorrectAnswers(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ResultRecordUpdateOne) AddCorrectAnswers(v int) *ResultRecordUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ResultRecordUpdateOne) SetTotalQuestions(v int) *ResultRecordUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ResultRecordUpdateOne) SetNillableTotalQuestions(v *int) *ResultRecordUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ResultRecordUpdateOne) AddTotalQuestions(v int) *ResultRecordUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetSkillBreakdown sets the "skill_breakdown" field.
func (_u *ResultRecordUpdateOne) SetSkillBreakdown(v map[string]float64) *ResultRecordUpdateOne {
	_u.mutation.SetSkillBreakdown(v)
	return _u
}

// ClearSkillBreakdown clears the value of the "skill_breakdown" field.
func (_u *ResultRecordUpdateOne) ClearSkillBreakdown() *ResultRecordUpdateOne {
	_u.mutation.ClearSkillBreakdown()
	return _u
}

// SetRecommendedPaths sets the "recommended_paths" field.
func (_u *ResultRecordUpdateOne) SetRecommendedPaths(v []string) *ResultRecordUpdateOne {
	_u.mutation.SetRecommendedPaths(v)
	return _u
}

// AppendRecommendedPaths appends value to the "recommended_paths" field.
func (_u *ResultRecordUpdateOne) AppendRecommendedPaths(v []string) *ResultRecordUpdateOne {
	_u.mutation.AppendRecommendedPaths(v)
	return _u
}

// ClearRecommendedPaths clears the value of the "recommended_paths" field.
func (_u *ResultRecordUpdateOne) ClearRecommendedPaths() *ResultRecordUpdateOne {
	_u.mutation.ClearRecommendedPaths()
	return _u
}

// Mutation returns the ResultRecordMutation object of the builder.
func (_u *ResultRecordUpdateOne) Mutation() *ResultRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultRecordUpdate builder.
func (_u *ResultRecordUpdateOne) Where(ps ...predicate.ResultRecord) *ResultRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultRecordUpdateOne) Select(field string, fields ...string) *ResultRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultRecord entity.
func (_u *ResultRecordUpdateOne) Save(ctx context.Context) (*ResultRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultRecordUpdateOne) SaveX(ctx context.Context) *ResultRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultRecordUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := resultrecord.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultrecord.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentTitle(); ok {
		if err := resultrecord.AssessmentTitleValidator(v); err != nil {
			return &ValidationError{Name: "assessment_title", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.assessment_title": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultRecordUpdateOne) sqlSave(ctx context.Context) (_node *ResultRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultrecord.Table, resultrecord.Columns, sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultrecord.FieldID)
		for _, f := range fields {
			if !resultrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultrecord.FieldID {
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
		_spec.SetField(resultrecord.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultrecord.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentTitle(); ok {
		_spec.SetField(resultrecord.FieldAssessmentTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(resultrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(resultrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillBreakdown(); ok {
		_spec.SetField(resultrecord.FieldSkillBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.SkillBreakdownCleared() {
		_spec.ClearField(resultrecord.FieldSkillBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.RecommendedPaths(); ok {
		_spec.SetField(resultrecord.FieldRecommendedPaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultrecord.FieldRecommendedPaths, value)
		})
	}
	if _u.mutation.RecommendedPathsCleared() {
		_spec.ClearField(resultrecord.FieldRecommendedPaths, field.TypeJSON)
	}
	_node = &ResultRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
