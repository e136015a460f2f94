// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/szymonw/studylog/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StudySessionCreate) SetSequence(v int64) *StudySessionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *StudySessionCreate) SetRecordedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableRecordedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StudySessionCreate) SetSessionID(v string) *StudySessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *StudySessionCreate) SetSubject(v string) *StudySessionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *StudySessionCreate) SetLocation(v string) *StudySessionCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *StudySessionCreate) SetNotes(v string) *StudySessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableNotes(v *string) *StudySessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *StudySessionCreate) SetStartTime(v time.Time) *StudySessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *StudySessionCreate) SetEndTime(v time.Time) *StudySessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *StudySessionCreate) SetDurationMinutes(v int) *StudySessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *StudySessionCreate) SetTotalTasks(v int) *StudySessionCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableTotalTasks(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetCorrectTasks sets the "correct_tasks" field.
func (_c *StudySessionCreate) SetCorrectTasks(v int) *StudySessionCreate {
	_c.mutation.SetCorrectTasks(v)
	return _c
}

// SetNillableCorrectTasks sets the "correct_tasks" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCorrectTasks(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetCorrectTasks(*v)
	}
	return _c
}

// SetAccuracyPercentage sets the "accuracy_percentage" field.
func (_c *StudySessionCreate) SetAccuracyPercentage(v int) *StudySessionCreate {
	_c.mutation.SetAccuracyPercentage(v)
	return _c
}

// SetNillableAccuracyPercentage sets the "accuracy_percentage" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableAccuracyPercentage(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetAccuracyPercentage(*v)
	}
	return _c
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := studysession.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := studysession.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.CorrectTasks(); !ok {
		v := studysession.DefaultCorrectTasks
		_c.mutation.SetCorrectTasks(v)
	}
	if _, ok := _c.mutation.AccuracyPercentage(); !ok {
		v := studysession.DefaultAccuracyPercentage
		_c.mutation.SetAccuracyPercentage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StudySession.sequence"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "StudySession.recorded_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StudySession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "StudySession.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := studysession.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudySession.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "StudySession.location"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := studysession.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "StudySession.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "StudySession.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "StudySession.end_time"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "StudySession.duration_minutes"`)}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "StudySession.total_tasks"`)}
	}
	if _, ok := _c.mutation.CorrectTasks(); !ok {
		return &ValidationError{Name: "correct_tasks", err: errors.New(`ent: missing required field "StudySession.correct_tasks"`)}
	}
	if _, ok := _c.mutation.AccuracyPercentage(); !ok {
		return &ValidationError{Name: "accuracy_percentage", err: errors.New(`ent: missing required field "StudySession.accuracy_percentage"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(studysession.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(studysession.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(studysession.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(studysession.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(studysession.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(studysession.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(studysession.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(studysession.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(studysession.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.CorrectTasks(); ok {
		_spec.SetField(studysession.FieldCorrectTasks, field.TypeInt, value)
		_node.CorrectTasks = value
	}
	if value, ok := _c.mutation.AccuracyPercentage(); ok {
		_spec.SetField(studysession.FieldAccuracyPercentage, field.TypeInt, value)
		_node.AccuracyPercentage = value
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
