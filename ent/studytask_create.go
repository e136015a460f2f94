// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/szymonw/studylog/ent/studytask"
)

// StudyTaskCreate is the builder for creating a StudyTask entity.
type StudyTaskCreate struct {
	config
	mutation *StudyTaskMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StudyTaskCreate) SetSequence(v int64) *StudyTaskCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *StudyTaskCreate) SetRecordedAt(v time.Time) *StudyTaskCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableRecordedAt(v *time.Time) *StudyTaskCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *StudyTaskCreate) SetTaskID(v string) *StudyTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *StudyTaskCreate) SetSessionID(v string) *StudyTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTaskName sets the "task_name" field.
func (_c *StudyTaskCreate) SetTaskName(v string) *StudyTaskCreate {
	_c.mutation.SetTaskName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StudyTaskCreate) SetDescription(v string) *StudyTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StudyTaskCreate) SetNillableDescription(v *string) *StudyTaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *StudyTaskCreate) SetCategories(v []string) *StudyTaskCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetCorrectlyCompleted sets the "correctly_completed" field.
func (_c *StudyTaskCreate) SetCorrectlyCompleted(v bool) *StudyTaskCreate {
	_c.mutation.SetCorrectlyCompleted(v)
	return _c
}

// SetTaskOrder sets the "task_order" field.
func (_c *StudyTaskCreate) SetTaskOrder(v int) *StudyTaskCreate {
	_c.mutation.SetTaskOrder(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *StudyTaskCreate) SetSubject(v string) *StudyTaskCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *StudyTaskCreate) SetLocation(v string) *StudyTaskCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *StudyTaskCreate) SetStartTime(v time.Time) *StudyTaskCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *StudyTaskCreate) SetEndTime(v time.Time) *StudyTaskCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// Mutation returns the StudyTaskMutation object of the builder.
func (_c *StudyTaskCreate) Mutation() *StudyTaskMutation {
	return _c.mutation
}

// Save creates the StudyTask in the database.
func (_c *StudyTaskCreate) Save(ctx context.Context) (*StudyTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyTaskCreate) SaveX(ctx context.Context) *StudyTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyTaskCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := studytask.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyTaskCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StudyTask.sequence"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "StudyTask.recorded_at"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "StudyTask.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := studytask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StudyTask.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := studytask.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskName(); !ok {
		return &ValidationError{Name: "task_name", err: errors.New(`ent: missing required field "StudyTask.task_name"`)}
	}
	if v, ok := _c.mutation.TaskName(); ok {
		if err := studytask.TaskNameValidator(v); err != nil {
			return &ValidationError{Name: "task_name", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Categories(); !ok {
		return &ValidationError{Name: "categories", err: errors.New(`ent: missing required field "StudyTask.categories"`)}
	}
	if _, ok := _c.mutation.CorrectlyCompleted(); !ok {
		return &ValidationError{Name: "correctly_completed", err: errors.New(`ent: missing required field "StudyTask.correctly_completed"`)}
	}
	if _, ok := _c.mutation.TaskOrder(); !ok {
		return &ValidationError{Name: "task_order", err: errors.New(`ent: missing required field "StudyTask.task_order"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "StudyTask.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := studytask.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyTask.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "StudyTask.location"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := studytask.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "StudyTask.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "StudyTask.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`ent: missing required field "StudyTask.end_time"`)}
	}
	return nil
}

func (_c *StudyTaskCreate) sqlSave(ctx context.Context) (*StudyTask, error) {
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

func (_c *StudyTaskCreate) createSpec() (*StudyTask, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studytask.Table, sqlgraph.NewFieldSpec(studytask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(studytask.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(studytask.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(studytask.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(studytask.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TaskName(); ok {
		_spec.SetField(studytask.FieldTaskName, field.TypeString, value)
		_node.TaskName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(studytask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(studytask.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.CorrectlyCompleted(); ok {
		_spec.SetField(studytask.FieldCorrectlyCompleted, field.TypeBool, value)
		_node.CorrectlyCompleted = value
	}
	if value, ok := _c.mutation.TaskOrder(); ok {
		_spec.SetField(studytask.FieldTaskOrder, field.TypeInt, value)
		_node.TaskOrder = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(studytask.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(studytask.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(studytask.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(studytask.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	return _node, _spec
}

// StudyTaskCreateBulk is the builder for creating many StudyTask entities in bulk.
type StudyTaskCreateBulk struct {
	config
	err      error
	builders []*StudyTaskCreate
}

// Save creates the StudyTask entities in the database.
func (_c *StudyTaskCreateBulk) Save(ctx context.Context) ([]*StudyTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyTaskMutation)
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
func (_c *StudyTaskCreateBulk) SaveX(ctx context.Context) []*StudyTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
