// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/szymonw/studylog/ent/predicate"
	"github.com/szymonw/studylog/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdate) SetSessionID(v string) *StudySessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSessionID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudySessionUpdate) SetSubject(v string) *StudySessionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSubject(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *StudySessionUpdate) SetLocation(v string) *StudySessionUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableLocation(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StudySessionUpdate) SetNotes(v string) *StudySessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableNotes(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StudySessionUpdate) ClearNotes() *StudySessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *StudySessionUpdate) SetStartTime(v time.Time) *StudySessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStartTime(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *StudySessionUpdate) SetEndTime(v time.Time) *StudySessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableEndTime(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudySessionUpdate) SetDurationMinutes(v int) *StudySessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDurationMinutes(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudySessionUpdate) AddDurationMinutes(v int) *StudySessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *StudySessionUpdate) SetTotalTasks(v int) *StudySessionUpdate {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableTotalTasks(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *StudySessionUpdate) AddTotalTasks(v int) *StudySessionUpdate {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCorrectTasks sets the "correct_tasks" field.
func (_u *StudySessionUpdate) SetCorrectTasks(v int) *StudySessionUpdate {
	_u.mutation.ResetCorrectTasks()
	_u.mutation.SetCorrectTasks(v)
	return _u
}

// SetNillableCorrectTasks sets the "correct_tasks" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCorrectTasks(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetCorrectTasks(*v)
	}
	return _u
}

// AddCorrectTasks adds value to the "correct_tasks" field.
func (_u *StudySessionUpdate) AddCorrectTasks(v int) *StudySessionUpdate {
	_u.mutation.AddCorrectTasks(v)
	return _u
}

// SetAccuracyPercentage sets the "accuracy_percentage" field.
func (_u *StudySessionUpdate) SetAccuracyPercentage(v int) *StudySessionUpdate {
	_u.mutation.ResetAccuracyPercentage()
	_u.mutation.SetAccuracyPercentage(v)
	return _u
}

// SetNillableAccuracyPercentage sets the "accuracy_percentage" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableAccuracyPercentage(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetAccuracyPercentage(*v)
	}
	return _u
}

// AddAccuracyPercentage adds value to the "accuracy_percentage" field.
func (_u *StudySessionUpdate) AddAccuracyPercentage(v int) *StudySessionUpdate {
	_u.mutation.AddAccuracyPercentage(v)
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := studysession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudySession.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := studysession.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "StudySession.location": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studysession.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(studysession.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(studysession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(studysession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(studysession.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(studysession.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(studysession.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectTasks(); ok {
		_spec.SetField(studysession.FieldCorrectTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectTasks(); ok {
		_spec.AddField(studysession.FieldCorrectTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPercentage(); ok {
		_spec.SetField(studysession.FieldAccuracyPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPercentage(); ok {
		_spec.AddField(studysession.FieldAccuracyPercentage, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdateOne) SetSessionID(v string) *StudySessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSessionID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudySessionUpdateOne) SetSubject(v string) *StudySessionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSubject(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *StudySessionUpdateOne) SetLocation(v string) *StudySessionUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableLocation(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *StudySessionUpdateOne) SetNotes(v string) *StudySessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableNotes(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *StudySessionUpdateOne) ClearNotes() *StudySessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *StudySessionUpdateOne) SetStartTime(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStartTime(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *StudySessionUpdateOne) SetEndTime(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableEndTime(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudySessionUpdateOne) SetDurationMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDurationMinutes(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudySessionUpdateOne) AddDurationMinutes(v int) *StudySessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *StudySessionUpdateOne) SetTotalTasks(v int) *StudySessionUpdateOne {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableTotalTasks(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *StudySessionUpdateOne) AddTotalTasks(v int) *StudySessionUpdateOne {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCorrectTasks sets the "correct_tasks" field.
func (_u *StudySessionUpdateOne) SetCorrectTasks(v int) *StudySessionUpdateOne {
	_u.mutation.ResetCorrectTasks()
	_u.mutation.SetCorrectTasks(v)
	return _u
}

// SetNillableCorrectTasks sets the "correct_tasks" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCorrectTasks(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCorrectTasks(*v)
	}
	return _u
}

// AddCorrectTasks adds value to the "correct_tasks" field.
func (_u *StudySessionUpdateOne) AddCorrectTasks(v int) *StudySessionUpdateOne {
	_u.mutation.AddCorrectTasks(v)
	return _u
}

// SetAccuracyPercentage sets the "accuracy_percentage" field.
func (_u *StudySessionUpdateOne) SetAccuracyPercentage(v int) *StudySessionUpdateOne {
	_u.mutation.ResetAccuracyPercentage()
	_u.mutation.SetAccuracyPercentage(v)
	return _u
}

// SetNillableAccuracyPercentage sets the "accuracy_percentage" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableAccuracyPercentage(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetAccuracyPercentage(*v)
	}
	return _u
}

// AddAccuracyPercentage adds value to the "accuracy_percentage" field.
func (_u *StudySessionUpdateOne) AddAccuracyPercentage(v int) *StudySessionUpdateOne {
	_u.mutation.AddAccuracyPercentage(v)
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := studysession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudySession.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := studysession.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "StudySession.location": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studysession.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(studysession.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(studysession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(studysession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(studysession.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studysession.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(studysession.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(studysession.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectTasks(); ok {
		_spec.SetField(studysession.FieldCorrectTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectTasks(); ok {
		_spec.AddField(studysession.FieldCorrectTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyPercentage(); ok {
		_spec.SetField(studysession.FieldAccuracyPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracyPercentage(); ok {
		_spec.AddField(studysession.FieldAccuracyPercentage, field.TypeInt, value)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
