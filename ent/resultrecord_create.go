// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/upskill-labs/upskill/ent/resultrecord"
)

// ResultRecordCreate is the builder for creating a ResultRecord entity.
type ResultRecordCreate struct {
	config
	mutation *ResultRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResultRecordCreate) SetSequence(v int64) *ResultRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResultRecordCreate) SetTimestamp(v time.Time) *ResultRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableTimestamp(v *time.Time) *ResultRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ResultRecordCreate) SetAttemptID(v string) *ResultRecordCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *ResultRecordCreate) SetAssessmentID(v string) *ResultRecordCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetAssessmentTitle sets the "assessment_title" field.
func (_c *ResultRecordCreate) SetAssessmentTitle(v string) *ResultRecordCreate {
	_c.mutation.SetAssessmentTitle(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ResultRecordCreate) SetScore(v int) *ResultRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ResultRecordCreate) SetCorrectAnswers(v int) *ResultRecordCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableCorrectAnswers(v *int) *ResultRecordCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ResultRecordCreate) SetTotalQuestions(v int) *ResultRecordCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *ResultRecordCreate) SetNillableTotalQuestions(v *int) *ResultRecordCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetSkillBreakdown sets the "skill_breakdown" field.
func (_c *ResultRecordCreate) SetSkillBreakdown(v map[string]float64) *ResultRecordCreate {
	_c.mutation.SetSkillBreakdown(v)
	return _c
}

// SetRecommendedPaths sets the "recommended_paths" field.
func (_c *ResultRecordCreate) SetRecommendedPaths(v []string) *ResultRecordCreate {
	_c.mutation.SetRecommendedPaths(v)
	return _c
}

// Mutation returns the ResultRecordMutation object of the builder.
func (_c *ResultRecordCreate) Mutation() *ResultRecordMutation {
	return _c.mutation
}

// Save creates the ResultRecord in the database.
func (_c *ResultRecordCreate) Save(ctx context.Context) (*ResultRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultRecordCreate) SaveX(ctx context.Context) *ResultRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resultrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := resultrecord.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := resultrecord.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResultRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResultRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ResultRecord.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := resultrecord.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "ResultRecord.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := resultrecord.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentTitle(); !ok {
		return &ValidationError{Name: "assessment_title", err: errors.New(`ent: missing required field "ResultRecord.assessment_title"`)}
	}
	if v, ok := _c.mutation.AssessmentTitle(); ok {
		if err := resultrecord.AssessmentTitleValidator(v); err != nil {
			return &ValidationError{Name: "assessment_title", err: fmt.Errorf(`ent: validator failed for field "ResultRecord.assessment_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ResultRecord.score"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "ResultRecord.correct_answers"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ResultRecord.total_questions"`)}
	}
	return nil
}

func (_c *ResultRecordCreate) sqlSave(ctx context.Context) (*ResultRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultRecordCreate) createSpec() (*ResultRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultrecord.Table, sqlgraph.NewFieldSpec(resultrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resultrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resultrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(resultrecord.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(resultrecord.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.AssessmentTitle(); ok {
		_spec.SetField(resultrecord.FieldAssessmentTitle, field.TypeString, value)
		_node.AssessmentTitle = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(resultrecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(resultrecord.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(resultrecord.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.SkillBreakdown(); ok {
		_spec.SetField(resultrecord.FieldSkillBreakdown, field.TypeJSON, value)
		_node.SkillBreakdown = value
	}
	if value, ok := _c.mutation.RecommendedPaths(); ok {
		_spec.SetField(resultrecord.FieldRecommendedPaths, field.TypeJSON, value)
		_node.RecommendedPaths = value
	}
	return _node, _spec
}

// ResultRecordCreateBulk is the builder for creating many ResultRecord entities in bulk.
type ResultRecordCreateBulk struct {
	config
	err      error
	builders []*ResultRecordCreate
}

// Save creates the ResultRecord entities in the database.
func (_c *ResultRecordCreateBulk) Save(ctx context.Context) ([]*ResultRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultRecordCreateBulk) SaveX(ctx context.Context) []*ResultRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
