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
	"github.com/szymonw/studylog/ent/predicate"
	"github.com/szymonw/studylog/ent/studysession"
	"github.com/szymonw/studylog/ent/studytask"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeStudySession = "StudySession"
	TypeStudyTask    = "StudyTask"
)

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	recorded_at            *time.Time
	session_id             *string
	subject                *string
	location               *string
	notes                  *string
	start_time             *time.Time
	end_time               *time.Time
	duration_minutes       *int
	addduration_minutes    *int
	total_tasks            *int
	addtotal_tasks         *int
	correct_tasks          *int
	addcorrect_tasks       *int
	accuracy_percentage    *int
	addaccuracy_percentage *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*StudySession, error)
	predicates             []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StudySessionMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StudySessionMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *StudySessionMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StudySessionMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StudySessionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *StudySessionMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *StudySessionMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *StudySessionMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *StudySessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StudySessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StudySessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSubject sets the "subject" field.
func (m *StudySessionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *StudySessionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *StudySessionMutation) ResetSubject() {
	m.subject = nil
}

// SetLocation sets the "location" field.
func (m *StudySessionMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *StudySessionMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *StudySessionMutation) ResetLocation() {
	m.location = nil
}

// SetNotes sets the "notes" field.
func (m *StudySessionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *StudySessionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *StudySessionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[studysession.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *StudySessionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[studysession.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *StudySessionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, studysession.FieldNotes)
}

// SetStartTime sets the "start_time" field.
func (m *StudySessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *StudySessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *StudySessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *StudySessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *StudySessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *StudySessionMutation) ResetEndTime() {
	m.end_time = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *StudySessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *StudySessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *StudySessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *StudySessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *StudySessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetTotalTasks sets the "total_tasks" field.
func (m *StudySessionMutation) SetTotalTasks(i int) {
	m.total_tasks = &i
	m.addtotal_tasks = nil
}

// TotalTasks returns the value of the "total_tasks" field in the mutation.
func (m *StudySessionMutation) TotalTasks() (r int, exists bool) {
	v := m.total_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTasks returns the old "total_tasks" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTotalTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTasks: %w", err)
	}
	return oldValue.TotalTasks, nil
}

// AddTotalTasks adds i to the "total_tasks" field.
func (m *StudySessionMutation) AddTotalTasks(i int) {
	if m.addtotal_tasks != nil {
		*m.addtotal_tasks += i
	} else {
		m.addtotal_tasks = &i
	}
}

// AddedTotalTasks returns the value that was added to the "total_tasks" field in this mutation.
func (m *StudySessionMutation) AddedTotalTasks() (r int, exists bool) {
	v := m.addtotal_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTasks resets all changes to the "total_tasks" field.
func (m *StudySessionMutation) ResetTotalTasks() {
	m.total_tasks = nil
	m.addtotal_tasks = nil
}

// SetCorrectTasks sets the "correct_tasks" field.
func (m *StudySessionMutation) SetCorrectTasks(i int) {
	m.correct_tasks = &i
	m.addcorrect_tasks = nil
}

// CorrectTasks returns the value of the "correct_tasks" field in the mutation.
func (m *StudySessionMutation) CorrectTasks() (r int, exists bool) {
	v := m.correct_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectTasks returns the old "correct_tasks" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCorrectTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectTasks: %w", err)
	}
	return oldValue.CorrectTasks, nil
}

// AddCorrectTasks adds i to the "correct_tasks" field.
func (m *StudySessionMutation) AddCorrectTasks(i int) {
	if m.addcorrect_tasks != nil {
		*m.addcorrect_tasks += i
	} else {
		m.addcorrect_tasks = &i
	}
}

// AddedCorrectTasks returns the value that was added to the "correct_tasks" field in this mutation.
func (m *StudySessionMutation) AddedCorrectTasks() (r int, exists bool) {
	v := m.addcorrect_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectTasks resets all changes to the "correct_tasks" field.
func (m *StudySessionMutation) ResetCorrectTasks() {
	m.correct_tasks = nil
	m.addcorrect_tasks = nil
}

// SetAccuracyPercentage sets the "accuracy_percentage" field.
func (m *StudySessionMutation) SetAccuracyPercentage(i int) {
	m.accuracy_percentage = &i
	m.addaccuracy_percentage = nil
}

// AccuracyPercentage returns the value of the "accuracy_percentage" field in the mutation.
func (m *StudySessionMutation) AccuracyPercentage() (r int, exists bool) {
	v := m.accuracy_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyPercentage returns the old "accuracy_percentage" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldAccuracyPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyPercentage: %w", err)
	}
	return oldValue.AccuracyPercentage, nil
}

// AddAccuracyPercentage adds i to the "accuracy_percentage" field.
func (m *StudySessionMutation) AddAccuracyPercentage(i int) {
	if m.addaccuracy_percentage != nil {
		*m.addaccuracy_percentage += i
	} else {
		m.addaccuracy_percentage = &i
	}
}

// AddedAccuracyPercentage returns the value that was added to the "accuracy_percentage" field in this mutation.
func (m *StudySessionMutation) AddedAccuracyPercentage() (r int, exists bool) {
	v := m.addaccuracy_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyPercentage resets all changes to the "accuracy_percentage" field.
func (m *StudySessionMutation) ResetAccuracyPercentage() {
	m.accuracy_percentage = nil
	m.addaccuracy_percentage = nil
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, studysession.FieldSequence)
	}
	if m.recorded_at != nil {
		fields = append(fields, studysession.FieldRecordedAt)
	}
	if m.session_id != nil {
		fields = append(fields, studysession.FieldSessionID)
	}
	if m.subject != nil {
		fields = append(fields, studysession.FieldSubject)
	}
	if m.location != nil {
		fields = append(fields, studysession.FieldLocation)
	}
	if m.notes != nil {
		fields = append(fields, studysession.FieldNotes)
	}
	if m.start_time != nil {
		fields = append(fields, studysession.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, studysession.FieldEndTime)
	}
	if m.duration_minutes != nil {
		fields = append(fields, studysession.FieldDurationMinutes)
	}
	if m.total_tasks != nil {
		fields = append(fields, studysession.FieldTotalTasks)
	}
	if m.correct_tasks != nil {
		fields = append(fields, studysession.FieldCorrectTasks)
	}
	if m.accuracy_percentage != nil {
		fields = append(fields, studysession.FieldAccuracyPercentage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSequence:
		return m.Sequence()
	case studysession.FieldRecordedAt:
		return m.RecordedAt()
	case studysession.FieldSessionID:
		return m.SessionID()
	case studysession.FieldSubject:
		return m.Subject()
	case studysession.FieldLocation:
		return m.Location()
	case studysession.FieldNotes:
		return m.Notes()
	case studysession.FieldStartTime:
		return m.StartTime()
	case studysession.FieldEndTime:
		return m.EndTime()
	case studysession.FieldDurationMinutes:
		return m.DurationMinutes()
	case studysession.FieldTotalTasks:
		return m.TotalTasks()
	case studysession.FieldCorrectTasks:
		return m.CorrectTasks()
	case studysession.FieldAccuracyPercentage:
		return m.AccuracyPercentage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldSequence:
		return m.OldSequence(ctx)
	case studysession.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case studysession.FieldSessionID:
		return m.OldSessionID(ctx)
	case studysession.FieldSubject:
		return m.OldSubject(ctx)
	case studysession.FieldLocation:
		return m.OldLocation(ctx)
	case studysession.FieldNotes:
		return m.OldNotes(ctx)
	case studysession.FieldStartTime:
		return m.OldStartTime(ctx)
	case studysession.FieldEndTime:
		return m.OldEndTime(ctx)
	case studysession.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case studysession.FieldTotalTasks:
		return m.OldTotalTasks(ctx)
	case studysession.FieldCorrectTasks:
		return m.OldCorrectTasks(ctx)
	case studysession.FieldAccuracyPercentage:
		return m.OldAccuracyPercentage(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case studysession.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case studysession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case studysession.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case studysession.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case studysession.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case studysession.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case studysession.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case studysession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case studysession.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTasks(v)
		return nil
	case studysession.FieldCorrectTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectTasks(v)
		return nil
	case studysession.FieldAccuracyPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, studysession.FieldSequence)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, studysession.FieldDurationMinutes)
	}
	if m.addtotal_tasks != nil {
		fields = append(fields, studysession.FieldTotalTasks)
	}
	if m.addcorrect_tasks != nil {
		fields = append(fields, studysession.FieldCorrectTasks)
	}
	if m.addaccuracy_percentage != nil {
		fields = append(fields, studysession.FieldAccuracyPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSequence:
		return m.AddedSequence()
	case studysession.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case studysession.FieldTotalTasks:
		return m.AddedTotalTasks()
	case studysession.FieldCorrectTasks:
		return m.AddedCorrectTasks()
	case studysession.FieldAccuracyPercentage:
		return m.AddedAccuracyPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case studysession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case studysession.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTasks(v)
		return nil
	case studysession.FieldCorrectTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectTasks(v)
		return nil
	case studysession.FieldAccuracyPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldNotes) {
		fields = append(fields, studysession.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldSequence:
		m.ResetSequence()
		return nil
	case studysession.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case studysession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case studysession.FieldSubject:
		m.ResetSubject()
		return nil
	case studysession.FieldLocation:
		m.ResetLocation()
		return nil
	case studysession.FieldNotes:
		m.ResetNotes()
		return nil
	case studysession.FieldStartTime:
		m.ResetStartTime()
		return nil
	case studysession.FieldEndTime:
		m.ResetEndTime()
		return nil
	case studysession.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case studysession.FieldTotalTasks:
		m.ResetTotalTasks()
		return nil
	case studysession.FieldCorrectTasks:
		m.ResetCorrectTasks()
		return nil
	case studysession.FieldAccuracyPercentage:
		m.ResetAccuracyPercentage()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudySession edge %s", name)
}

// StudyTaskMutation represents an operation that mutates the StudyTask nodes in the graph.
type StudyTaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	recorded_at         *time.Time
	task_id             *string
	session_id          *string
	task_name           *string
	description         *string
	categories          *[]string
	appendcategories    []string
	correctly_completed *bool
	task_order          *int
	addtask_order       *int
	subject             *string
	location            *string
	start_time          *time.Time
	end_time            *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StudyTask, error)
	predicates          []predicate.StudyTask
}

var _ ent.Mutation = (*StudyTaskMutation)(nil)

// studytaskOption allows management of the mutation configuration using functional options.
type studytaskOption func(*StudyTaskMutation)

// newStudyTaskMutation creates new mutation for the StudyTask entity.
func newStudyTaskMutation(c config, op Op, opts ...studytaskOption) *StudyTaskMutation {
	m := &StudyTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyTaskID sets the ID field of the mutation.
func withStudyTaskID(id int) studytaskOption {
	return func(m *StudyTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyTask
		)
		m.oldValue = func(ctx context.Context) (*StudyTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyTask sets the old StudyTask of the mutation.
func withStudyTask(node *StudyTask) studytaskOption {
	return func(m *StudyTaskMutation) {
		m.oldValue = func(context.Context) (*StudyTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyTaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyTaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StudyTaskMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StudyTaskMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *StudyTaskMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StudyTaskMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StudyTaskMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *StudyTaskMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *StudyTaskMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *StudyTaskMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetTaskID sets the "task_id" field.
func (m *StudyTaskMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *StudyTaskMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *StudyTaskMutation) ResetTaskID() {
	m.task_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *StudyTaskMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StudyTaskMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StudyTaskMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTaskName sets the "task_name" field.
func (m *StudyTaskMutation) SetTaskName(s string) {
	m.task_name = &s
}

// TaskName returns the value of the "task_name" field in the mutation.
func (m *StudyTaskMutation) TaskName() (r string, exists bool) {
	v := m.task_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskName returns the old "task_name" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldTaskName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskName: %w", err)
	}
	return oldValue.TaskName, nil
}

// ResetTaskName resets all changes to the "task_name" field.
func (m *StudyTaskMutation) ResetTaskName() {
	m.task_name = nil
}

// SetDescription sets the "description" field.
func (m *StudyTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StudyTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StudyTaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[studytask.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StudyTaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[studytask.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StudyTaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, studytask.FieldDescription)
}

// SetCategories sets the "categories" field.
func (m *StudyTaskMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *StudyTaskMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *StudyTaskMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *StudyTaskMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ResetCategories resets all changes to the "categories" field.
func (m *StudyTaskMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
}

// SetCorrectlyCompleted sets the "correctly_completed" field.
func (m *StudyTaskMutation) SetCorrectlyCompleted(b bool) {
	m.correctly_completed = &b
}

// CorrectlyCompleted returns the value of the "correctly_completed" field in the mutation.
func (m *StudyTaskMutation) CorrectlyCompleted() (r bool, exists bool) {
	v := m.correctly_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectlyCompleted returns the old "correctly_completed" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldCorrectlyCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectlyCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectlyCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectlyCompleted: %w", err)
	}
	return oldValue.CorrectlyCompleted, nil
}

// ResetCorrectlyCompleted resets all changes to the "correctly_completed" field.
func (m *StudyTaskMutation) ResetCorrectlyCompleted() {
	m.correctly_completed = nil
}

// SetTaskOrder sets the "task_order" field.
func (m *StudyTaskMutation) SetTaskOrder(i int) {
	m.task_order = &i
	m.addtask_order = nil
}

// TaskOrder returns the value of the "task_order" field in the mutation.
func (m *StudyTaskMutation) TaskOrder() (r int, exists bool) {
	v := m.task_order
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskOrder returns the old "task_order" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldTaskOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskOrder: %w", err)
	}
	return oldValue.TaskOrder, nil
}

// AddTaskOrder adds i to the "task_order" field.
func (m *StudyTaskMutation) AddTaskOrder(i int) {
	if m.addtask_order != nil {
		*m.addtask_order += i
	} else {
		m.addtask_order = &i
	}
}

// AddedTaskOrder returns the value that was added to the "task_order" field in this mutation.
func (m *StudyTaskMutation) AddedTaskOrder() (r int, exists bool) {
	v := m.addtask_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskOrder resets all changes to the "task_order" field.
func (m *StudyTaskMutation) ResetTaskOrder() {
	m.task_order = nil
	m.addtask_order = nil
}

// SetSubject sets the "subject" field.
func (m *StudyTaskMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *StudyTaskMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *StudyTaskMutation) ResetSubject() {
	m.subject = nil
}

// SetLocation sets the "location" field.
func (m *StudyTaskMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *StudyTaskMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *StudyTaskMutation) ResetLocation() {
	m.location = nil
}

// SetStartTime sets the "start_time" field.
func (m *StudyTaskMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *StudyTaskMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *StudyTaskMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *StudyTaskMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *StudyTaskMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the StudyTask entity.
// If the StudyTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyTaskMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *StudyTaskMutation) ResetEndTime() {
	m.end_time = nil
}

// Where appends a list predicates to the StudyTaskMutation builder.
func (m *StudyTaskMutation) Where(ps ...predicate.StudyTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyTask).
func (m *StudyTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyTaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, studytask.FieldSequence)
	}
	if m.recorded_at != nil {
		fields = append(fields, studytask.FieldRecordedAt)
	}
	if m.task_id != nil {
		fields = append(fields, studytask.FieldTaskID)
	}
	if m.session_id != nil {
		fields = append(fields, studytask.FieldSessionID)
	}
	if m.task_name != nil {
		fields = append(fields, studytask.FieldTaskName)
	}
	if m.description != nil {
		fields = append(fields, studytask.FieldDescription)
	}
	if m.categories != nil {
		fields = append(fields, studytask.FieldCategories)
	}
	if m.correctly_completed != nil {
		fields = append(fields, studytask.FieldCorrectlyCompleted)
	}
	if m.task_order != nil {
		fields = append(fields, studytask.FieldTaskOrder)
	}
	if m.subject != nil {
		fields = append(fields, studytask.FieldSubject)
	}
	if m.location != nil {
		fields = append(fields, studytask.FieldLocation)
	}
	if m.start_time != nil {
		fields = append(fields, studytask.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, studytask.FieldEndTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studytask.FieldSequence:
		return m.Sequence()
	case studytask.FieldRecordedAt:
		return m.RecordedAt()
	case studytask.FieldTaskID:
		return m.TaskID()
	case studytask.FieldSessionID:
		return m.SessionID()
	case studytask.FieldTaskName:
		return m.TaskName()
	case studytask.FieldDescription:
		return m.Description()
	case studytask.FieldCategories:
		return m.Categories()
	case studytask.FieldCorrectlyCompleted:
		return m.CorrectlyCompleted()
	case studytask.FieldTaskOrder:
		return m.TaskOrder()
	case studytask.FieldSubject:
		return m.Subject()
	case studytask.FieldLocation:
		return m.Location()
	case studytask.FieldStartTime:
		return m.StartTime()
	case studytask.FieldEndTime:
		return m.EndTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studytask.FieldSequence:
		return m.OldSequence(ctx)
	case studytask.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case studytask.FieldTaskID:
		return m.OldTaskID(ctx)
	case studytask.FieldSessionID:
		return m.OldSessionID(ctx)
	case studytask.FieldTaskName:
		return m.OldTaskName(ctx)
	case studytask.FieldDescription:
		return m.OldDescription(ctx)
	case studytask.FieldCategories:
		return m.OldCategories(ctx)
	case studytask.FieldCorrectlyCompleted:
		return m.OldCorrectlyCompleted(ctx)
	case studytask.FieldTaskOrder:
		return m.OldTaskOrder(ctx)
	case studytask.FieldSubject:
		return m.OldSubject(ctx)
	case studytask.FieldLocation:
		return m.OldLocation(ctx)
	case studytask.FieldStartTime:
		return m.OldStartTime(ctx)
	case studytask.FieldEndTime:
		return m.OldEndTime(ctx)
	}
	return nil, fmt.Errorf("unknown StudyTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studytask.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case studytask.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case studytask.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case studytask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case studytask.FieldTaskName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskName(v)
		return nil
	case studytask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case studytask.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case studytask.FieldCorrectlyCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectlyCompleted(v)
		return nil
	case studytask.FieldTaskOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskOrder(v)
		return nil
	case studytask.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case studytask.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case studytask.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case studytask.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	}
	return fmt.Errorf("unknown StudyTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyTaskMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, studytask.FieldSequence)
	}
	if m.addtask_order != nil {
		fields = append(fields, studytask.FieldTaskOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studytask.FieldSequence:
		return m.AddedSequence()
	case studytask.FieldTaskOrder:
		return m.AddedTaskOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studytask.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case studytask.FieldTaskOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskOrder(v)
		return nil
	}
	return fmt.Errorf("unknown StudyTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studytask.FieldDescription) {
		fields = append(fields, studytask.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyTaskMutation) ClearField(name string) error {
	switch name {
	case studytask.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown StudyTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyTaskMutation) ResetField(name string) error {
	switch name {
	case studytask.FieldSequence:
		m.ResetSequence()
		return nil
	case studytask.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case studytask.FieldTaskID:
		m.ResetTaskID()
		return nil
	case studytask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case studytask.FieldTaskName:
		m.ResetTaskName()
		return nil
	case studytask.FieldDescription:
		m.ResetDescription()
		return nil
	case studytask.FieldCategories:
		m.ResetCategories()
		return nil
	case studytask.FieldCorrectlyCompleted:
		m.ResetCorrectlyCompleted()
		return nil
	case studytask.FieldTaskOrder:
		m.ResetTaskOrder()
		return nil
	case studytask.FieldSubject:
		m.ResetSubject()
		return nil
	case studytask.FieldLocation:
		m.ResetLocation()
		return nil
	case studytask.FieldStartTime:
		m.ResetStartTime()
		return nil
	case studytask.FieldEndTime:
		m.ResetEndTime()
		return nil
	}
	return fmt.Errorf("unknown StudyTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyTask edge %s", name)
}
