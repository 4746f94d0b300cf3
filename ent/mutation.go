// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/upskill-labs/upskill/ent/attemptevent"
	"github.com/upskill-labs/upskill/ent/predicate"
	"github.com/upskill-labs/upskill/ent/resultrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent = "AttemptEvent"
	TypeResultRecord = "ResultRecord"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	attempt_id        *string
	assessment_id     *string
	action            *string
	answered_count    *int
	addanswered_count *int
	remaining_secs    *int
	addremaining_secs *int
	forced            *bool
	error_message     *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AttemptEvent, error)
	predicates        []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AttemptEventMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AttemptEventMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AttemptEventMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetAction sets the "action" field.
func (m *AttemptEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AttemptEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AttemptEventMutation) ResetAction() {
	m.action = nil
}

// SetAnsweredCount sets the "answered_count" field.
func (m *AttemptEventMutation) SetAnsweredCount(i int) {
	m.answered_count = &i
	m.addanswered_count = nil
}

// AnsweredCount returns the value of the "answered_count" field in the mutation.
func (m *AttemptEventMutation) AnsweredCount() (r int, exists bool) {
	v := m.answered_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredCount returns the old "answered_count" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAnsweredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredCount: %w", err)
	}
	return oldValue.AnsweredCount, nil
}

// AddAnsweredCount adds i to the "answered_count" field.
func (m *AttemptEventMutation) AddAnsweredCount(i int) {
	if m.addanswered_count != nil {
		*m.addanswered_count += i
	} else {
		m.addanswered_count = &i
	}
}

// AddedAnsweredCount returns the value that was added to the "answered_count" field in this mutation.
func (m *AttemptEventMutation) AddedAnsweredCount() (r int, exists bool) {
	v := m.addanswered_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnsweredCount resets all changes to the "answered_count" field.
func (m *AttemptEventMutation) ResetAnsweredCount() {
	m.answered_count = nil
	m.addanswered_count = nil
}

// SetRemainingSecs sets the "remaining_secs" field.
func (m *AttemptEventMutation) SetRemainingSecs(i int) {
	m.remaining_secs = &i
	m.addremaining_secs = nil
}

// RemainingSecs returns the value of the "remaining_secs" field in the mutation.
func (m *AttemptEventMutation) RemainingSecs() (r int, exists bool) {
	v := m.remaining_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldRemainingSecs returns the old "remaining_secs" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldRemainingSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemainingSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemainingSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemainingSecs: %w", err)
	}
	return oldValue.RemainingSecs, nil
}

// AddRemainingSecs adds i to the "remaining_secs" field.
func (m *AttemptEventMutation) AddRemainingSecs(i int) {
	if m.addremaining_secs != nil {
		*m.addremaining_secs += i
	} else {
		m.addremaining_secs = &i
	}
}

// AddedRemainingSecs returns the value that was added to the "remaining_secs" field in this mutation.
func (m *AttemptEventMutation) AddedRemainingSecs() (r int, exists bool) {
	v := m.addremaining_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetRemainingSecs resets all changes to the "remaining_secs" field.
func (m *AttemptEventMutation) ResetRemainingSecs() {
	m.remaining_secs = nil
	m.addremaining_secs = nil
}

// SetForced sets the "forced" field.
func (m *AttemptEventMutation) SetForced(b bool) {
	m.forced = &b
}

// Forced returns the value of the "forced" field in the mutation.
func (m *AttemptEventMutation) Forced() (r bool, exists bool) {
	v := m.forced
	if v == nil {
		return
	}
	return *v, true
}

// OldForced returns the old "forced" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldForced(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForced: %w", err)
	}
	return oldValue.Forced, nil
}

// ResetForced resets all changes to the "forced" field.
func (m *AttemptEventMutation) ResetForced() {
	m.forced = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AttemptEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AttemptEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AttemptEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[attemptevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AttemptEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AttemptEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, attemptevent.FieldErrorMessage)
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, attemptevent.FieldAttemptID)
	}
	if m.assessment_id != nil {
		fields = append(fields, attemptevent.FieldAssessmentID)
	}
	if m.action != nil {
		fields = append(fields, attemptevent.FieldAction)
	}
	if m.answered_count != nil {
		fields = append(fields, attemptevent.FieldAnsweredCount)
	}
	if m.remaining_secs != nil {
		fields = append(fields, attemptevent.FieldRemainingSecs)
	}
	if m.forced != nil {
		fields = append(fields, attemptevent.FieldForced)
	}
	if m.error_message != nil {
		fields = append(fields, attemptevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldAttemptID:
		return m.AttemptID()
	case attemptevent.FieldAssessmentID:
		return m.AssessmentID()
	case attemptevent.FieldAction:
		return m.Action()
	case attemptevent.FieldAnsweredCount:
		return m.AnsweredCount()
	case attemptevent.FieldRemainingSecs:
		return m.RemainingSecs()
	case attemptevent.FieldForced:
		return m.Forced()
	case attemptevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attemptevent.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case attemptevent.FieldAction:
		return m.OldAction(ctx)
	case attemptevent.FieldAnsweredCount:
		return m.OldAnsweredCount(ctx)
	case attemptevent.FieldRemainingSecs:
		return m.OldRemainingSecs(ctx)
	case attemptevent.FieldForced:
		return m.OldForced(ctx)
	case attemptevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attemptevent.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case attemptevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case attemptevent.FieldAnsweredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredCount(v)
		return nil
	case attemptevent.FieldRemainingSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemainingSecs(v)
		return nil
	case attemptevent.FieldForced:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForced(v)
		return nil
	case attemptevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addanswered_count != nil {
		fields = append(fields, attemptevent.FieldAnsweredCount)
	}
	if m.addremaining_secs != nil {
		fields = append(fields, attemptevent.FieldRemainingSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldAnsweredCount:
		return m.AddedAnsweredCount()
	case attemptevent.FieldRemainingSecs:
		return m.AddedRemainingSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldAnsweredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnsweredCount(v)
		return nil
	case attemptevent.FieldRemainingSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemainingSecs(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptevent.FieldErrorMessage) {
		fields = append(fields, attemptevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	switch name {
	case attemptevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attemptevent.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case attemptevent.FieldAction:
		m.ResetAction()
		return nil
	case attemptevent.FieldAnsweredCount:
		m.ResetAnsweredCount()
		return nil
	case attemptevent.FieldRemainingSecs:
		m.ResetRemainingSecs()
		return nil
	case attemptevent.FieldForced:
		m.ResetForced()
		return nil
	case attemptevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// ResultRecordMutation represents an operation that mutates the ResultRecord nodes in the graph.
type ResultRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	attempt_id              *string
	assessment_id           *string
	assessment_title        *string
	score                   *int
	addscore                *int
	correct_answers         *int
	addcorrect_answers      *int
	total_questions         *int
	addtotal_questions      *int
	skill_breakdown         *map[string]float64
	recommended_paths       *[]string
	appendrecommended_paths []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ResultRecord, error)
	predicates              []predicate.ResultRecord
}

var _ ent.Mutation = (*ResultRecordMutation)(nil)

// resultrecordOption allows management of the mutation configuration using functional options.
type resultrecordOption func(*ResultRecordMutation)

// newResultRecordMutation creates new mutation for the ResultRecord entity.
func newResultRecordMutation(c config, op Op, opts ...resultrecordOption) *ResultRecordMutation {
	m := &ResultRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeResultRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResultRecordID sets the ID field of the mutation.
func withResultRecordID(id int) resultrecordOption {
	return func(m *ResultRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ResultRecord
		)
		m.oldValue = func(ctx context.Context) (*ResultRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResultRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResultRecord sets the old ResultRecord of the mutation.
func withResultRecord(node *ResultRecord) resultrecordOption {
	return func(m *ResultRecordMutation) {
		m.oldValue = func(context.Context) (*ResultRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResultRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResultRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResultRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResultRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResultRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ResultRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ResultRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ResultRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ResultRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ResultRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ResultRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ResultRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ResultRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *ResultRecordMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *ResultRecordMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *ResultRecordMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *ResultRecordMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *ResultRecordMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *ResultRecordMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetAssessmentTitle sets the "assessment_title" field.
func (m *ResultRecordMutation) SetAssessmentTitle(s string) {
	m.assessment_title = &s
}

// AssessmentTitle returns the value of the "assessment_title" field in the mutation.
func (m *ResultRecordMutation) AssessmentTitle() (r string, exists bool) {
	v := m.assessment_title
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentTitle returns the old "assessment_title" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldAssessmentTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentTitle: %w", err)
	}
	return oldValue.AssessmentTitle, nil
}

// ResetAssessmentTitle resets all changes to the "assessment_title" field.
func (m *ResultRecordMutation) ResetAssessmentTitle() {
	m.assessment_title = nil
}

// SetScore sets the "score" field.
func (m *ResultRecordMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ResultRecordMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ResultRecordMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ResultRecordMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ResultRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *ResultRecordMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *ResultRecordMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *ResultRecordMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *ResultRecordMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *ResultRecordMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *ResultRecordMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *ResultRecordMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *ResultRecordMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *ResultRecordMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *ResultRecordMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetSkillBreakdown sets the "skill_breakdown" field.
func (m *ResultRecordMutation) SetSkillBreakdown(value map[string]float64) {
	m.skill_breakdown = &value
}

// SkillBreakdown returns the value of the "skill_breakdown" field in the mutation.
func (m *ResultRecordMutation) SkillBreakdown() (r map[string]float64, exists bool) {
	v := m.skill_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillBreakdown returns the old "skill_breakdown" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldSkillBreakdown(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillBreakdown: %w", err)
	}
	return oldValue.SkillBreakdown, nil
}

// ClearSkillBreakdown clears the value of the "skill_breakdown" field.
func (m *ResultRecordMutation) ClearSkillBreakdown() {
	m.skill_breakdown = nil
	m.clearedFields[resultrecord.FieldSkillBreakdown] = struct{}{}
}

// SkillBreakdownCleared returns if the "skill_breakdown" field was cleared in this mutation.
func (m *ResultRecordMutation) SkillBreakdownCleared() bool {
	_, ok := m.clearedFields[resultrecord.FieldSkillBreakdown]
	return ok
}

// ResetSkillBreakdown resets all changes to the "skill_breakdown" field.
func (m *ResultRecordMutation) ResetSkillBreakdown() {
	m.skill_breakdown = nil
	delete(m.clearedFields, resultrecord.FieldSkillBreakdown)
}

// SetRecommendedPaths sets the "recommended_paths" field.
func (m *ResultRecordMutation) SetRecommendedPaths(s []string) {
	m.recommended_paths = &s
	m.appendrecommended_paths = nil
}

// RecommendedPaths returns the value of the "recommended_paths" field in the mutation.
func (m *ResultRecordMutation) RecommendedPaths() (r []string, exists bool) {
	v := m.recommended_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedPaths returns the old "recommended_paths" field's value of the ResultRecord entity.
// If the ResultRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultRecordMutation) OldRecommendedPaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedPaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedPaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedPaths: %w", err)
	}
	return oldValue.RecommendedPaths, nil
}

// AppendRecommendedPaths adds s to the "recommended_paths" field.
func (m *ResultRecordMutation) AppendRecommendedPaths(s []string) {
	m.appendrecommended_paths = append(m.appendrecommended_paths, s...)
}

// AppendedRecommendedPaths returns the list of values that were appended to the "recommended_paths" field in this mutation.
func (m *ResultRecordMutation) AppendedRecommendedPaths() ([]string, bool) {
	if len(m.appendrecommended_paths) == 0 {
		return nil, false
	}
	return m.appendrecommended_paths, true
}

// ClearRecommendedPaths clears the value of the "recommended_paths" field.
func (m *ResultRecordMutation) ClearRecommendedPaths() {
	m.recommended_paths = nil
	m.appendrecommended_paths = nil
	m.clearedFields[resultrecord.FieldRecommendedPaths] = struct{}{}
}

// RecommendedPathsCleared returns if the "recommended_paths" field was cleared in this mutation.
func (m *ResultRecordMutation) RecommendedPathsCleared() bool {
	_, ok := m.clearedFields[resultrecord.FieldRecommendedPaths]
	return ok
}

// ResetRecommendedPaths resets all changes to the "recommended_paths" field.
func (m *ResultRecordMutation) ResetRecommendedPaths() {
	m.recommended_paths = nil
	m.appendrecommended_paths = nil
	delete(m.clearedFields, resultrecord.FieldRecommendedPaths)
}

// Where appends a list predicates to the ResultRecordMutation builder.
func (m *ResultRecordMutation) Where(ps ...predicate.ResultRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResultRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResultRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResultRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResultRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResultRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResultRecord).
func (m *ResultRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResultRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, resultrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, resultrecord.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, resultrecord.FieldAttemptID)
	}
	if m.assessment_id != nil {
		fields = append(fields, resultrecord.FieldAssessmentID)
	}
	if m.assessment_title != nil {
		fields = append(fields, resultrecord.FieldAssessmentTitle)
	}
	if m.score != nil {
		fields = append(fields, resultrecord.FieldScore)
	}
	if m.correct_answers != nil {
		fields = append(fields, resultrecord.FieldCorrectAnswers)
	}
	if m.total_questions != nil {
		fields = append(fields, resultrecord.FieldTotalQuestions)
	}
	if m.skill_breakdown != nil {
		fields = append(fields, resultrecord.FieldSkillBreakdown)
	}
	if m.recommended_paths != nil {
		fields = append(fields, resultrecord.FieldRecommendedPaths)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResultRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resultrecord.FieldSequence:
		return m.Sequence()
	case resultrecord.FieldTimestamp:
		return m.Timestamp()
	case resultrecord.FieldAttemptID:
		return m.AttemptID()
	case resultrecord.FieldAssessmentID:
		return m.AssessmentID()
	case resultrecord.FieldAssessmentTitle:
		return m.AssessmentTitle()
	case resultrecord.FieldScore:
		return m.Score()
	case resultrecord.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case resultrecord.FieldTotalQuestions:
		return m.TotalQuestions()
	case resultrecord.FieldSkillBreakdown:
		return m.SkillBreakdown()
	case resultrecord.FieldRecommendedPaths:
		return m.RecommendedPaths()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResultRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resultrecord.FieldSequence:
		return m.OldSequence(ctx)
	case resultrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case resultrecord.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case resultrecord.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case resultrecord.FieldAssessmentTitle:
		return m.OldAssessmentTitle(ctx)
	case resultrecord.FieldScore:
		return m.OldScore(ctx)
	case resultrecord.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case resultrecord.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case resultrecord.FieldSkillBreakdown:
		return m.OldSkillBreakdown(ctx)
	case resultrecord.FieldRecommendedPaths:
		return m.OldRecommendedPaths(ctx)
	}
	return nil, fmt.Errorf("unknown ResultRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resultrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case resultrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case resultrecord.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case resultrecord.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case resultrecord.FieldAssessmentTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentTitle(v)
		return nil
	case resultrecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case resultrecord.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case resultrecord.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case resultrecord.FieldSkillBreakdown:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillBreakdown(v)
		return nil
	case resultrecord.FieldRecommendedPaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedPaths(v)
		return nil
	}
	return fmt.Errorf("unknown ResultRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResultRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, resultrecord.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, resultrecord.FieldScore)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, resultrecord.FieldCorrectAnswers)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, resultrecord.FieldTotalQuestions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResultRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resultrecord.FieldSequence:
		return m.AddedSequence()
	case resultrecord.FieldScore:
		return m.AddedScore()
	case resultrecord.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case resultrecord.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resultrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case resultrecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case resultrecord.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case resultrecord.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	}
	return fmt.Errorf("unknown ResultRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResultRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resultrecord.FieldSkillBreakdown) {
		fields = append(fields, resultrecord.FieldSkillBreakdown)
	}
	if m.FieldCleared(resultrecord.FieldRecommendedPaths) {
		fields = append(fields, resultrecord.FieldRecommendedPaths)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResultRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResultRecordMutation) ClearField(name string) error {
	switch name {
	case resultrecord.FieldSkillBreakdown:
		m.ClearSkillBreakdown()
		return nil
	case resultrecord.FieldRecommendedPaths:
		m.ClearRecommendedPaths()
		return nil
	}
	return fmt.Errorf("unknown ResultRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResultRecordMutation) ResetField(name string) error {
	switch name {
	case resultrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case resultrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case resultrecord.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case resultrecord.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case resultrecord.FieldAssessmentTitle:
		m.ResetAssessmentTitle()
		return nil
	case resultrecord.FieldScore:
		m.ResetScore()
		return nil
	case resultrecord.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case resultrecord.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case resultrecord.FieldSkillBreakdown:
		m.ResetSkillBreakdown()
		return nil
	case resultrecord.FieldRecommendedPaths:
		m.ResetRecommendedPaths()
		return nil
	}
	return fmt.Errorf("unknown ResultRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResultRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResultRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResultRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResultRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResultRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResultRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResultRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResultRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResultRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResultRecord edge %s", name)
}
