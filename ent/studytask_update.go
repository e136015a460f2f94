// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/szymonw/studylog/ent/predicate"
	"github.com/szymonw/studylog/ent/studytask"
)

// StudyTaskUpdate is the builder for updating StudyTask entities.
type StudyTaskUpdate struct {
	config
	hooks    []Hook
	mutation *StudyTaskMutation
}

// Where appends a list predicates to the StudyTaskUpdate builder.
func (_u *StudyTaskUpdate) Where(ps ...predicate.StudyTask) *StudyTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *StudyTaskUpdate) SetTaskID(v string) *StudyTaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTaskID(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudyTaskUpdate) SetSessionID(v string) *StudyTaskUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableSessionID(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskName sets the "task_name" field.
func (_u *StudyTaskUpdate) SetTaskName(v string) *StudyTaskUpdate {
	_u.mutation.SetTaskName(v)
	return _u
}

// SetNillableTaskName sets the "task_name" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTaskName(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetTaskName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StudyTaskUpdate) SetDescription(v string) *StudyTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableDescription(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StudyTaskUpdate) ClearDescription() *StudyTaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *StudyTaskUpdate) SetCategories(v []string) *StudyTaskUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *StudyTaskUpdate) AppendCategories(v []string) *StudyTaskUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// SetCorrectlyCompleted sets the "correctly_completed" field.
func (_u *StudyTaskUpdate) SetCorrectlyCompleted(v bool) *StudyTaskUpdate {
	_u.mutation.SetCorrectlyCompleted(v)
	return _u
}

// SetNillableCorrectlyCompleted sets the "correctly_completed" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableCorrectlyCompleted(v *bool) *StudyTaskUpdate {
	if v != nil {
		_u.SetCorrectlyCompleted(*v)
	}
	return _u
}

// SetTaskOrder sets the "task_order" field.
func (_u *StudyTaskUpdate) SetTaskOrder(v int) *StudyTaskUpdate {
	_u.mutation.ResetTaskOrder()
	_u.mutation.SetTaskOrder(v)
	return _u
}

// SetNillableTaskOrder sets the "task_order" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableTaskOrder(v *int) *StudyTaskUpdate {
	if v != nil {
		_u.SetTaskOrder(*v)
	}
	return _u
}

// AddTaskOrder adds value to the "task_order" field.
func (_u *StudyTaskUpdate) AddTaskOrder(v int) *StudyTaskUpdate {
	_u.mutation.AddTaskOrder(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudyTaskUpdate) SetSubject(v string) *StudyTaskUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableSubject(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *StudyTaskUpdate) SetLocation(v string) *StudyTaskUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableLocation(v *string) *StudyTaskUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *StudyTaskUpdate) SetStartTime(v time.Time) *StudyTaskUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableStartTime(v *time.Time) *StudyTaskUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *StudyTaskUpdate) SetEndTime(v time.Time) *StudyTaskUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *StudyTaskUpdate) SetNillableEndTime(v *time.Time) *StudyTaskUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// Mutation returns the StudyTaskMutation object of the builder.
func (_u *StudyTaskUpdate) Mutation() *StudyTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := studytask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studytask.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskName(); ok {
		if err := studytask.TaskNameValidator(v); err != nil {
			return &ValidationError{Name: "task_name", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := studytask.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyTask.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := studytask.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "StudyTask.location": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studytask.Table, studytask.Columns, sqlgraph.NewFieldSpec(studytask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(studytask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studytask.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskName(); ok {
		_spec.SetField(studytask.FieldTaskName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(studytask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(studytask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(studytask.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studytask.FieldCategories, value)
		})
	}
	if value, ok := _u.mutation.CorrectlyCompleted(); ok {
		_spec.SetField(studytask.FieldCorrectlyCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaskOrder(); ok {
		_spec.SetField(studytask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskOrder(); ok {
		_spec.AddField(studytask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studytask.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(studytask.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(studytask.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(studytask.FieldEndTime, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studytask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyTaskUpdateOne is the builder for updating a single StudyTask entity.
type StudyTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyTaskMutation
}

// SetTaskID sets the "task_id" field.
func (_u *StudyTaskUpdateOne) SetTaskID(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTaskID(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudyTaskUpdateOne) SetSessionID(v string) *StudyTaskUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableSessionID(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskName sets the "task_name" field.
func (_u *StudyTaskUpdateOne) SetTaskName(v string) *StudyTaskUpdateOne {
	_u.mutation.SetTaskName(v)
	return _u
}

// SetNillableTaskName sets the "task_name" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTaskName(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTaskName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StudyTaskUpdateOne) SetDescription(v string) *StudyTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableDescription(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StudyTaskUpdateOne) ClearDescription() *StudyTaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *StudyTaskUpdateOne) SetCategories(v []string) *StudyTaskUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *StudyTaskUpdateOne) AppendCategories(v []string) *StudyTaskUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// SetCorrectlyCompleted sets the "correctly_completed" field.
func (_u *StudyTaskUpdateOne) SetCorrectlyCompleted(v bool) *StudyTaskUpdateOne {
	_u.mutation.SetCorrectlyCompleted(v)
	return _u
}

// SetNillableCorrectlyCompleted sets the "correctly_completed" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableCorrectlyCompleted(v *bool) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetCorrectlyCompleted(*v)
	}
	return _u
}

// SetTaskOrder sets the "task_order" field.
func (_u *StudyTaskUpdateOne) SetTaskOrder(v int) *StudyTaskUpdateOne {
	_u.mutation.ResetTaskOrder()
	_u.mutation.SetTaskOrder(v)
	return _u
}

// SetNillableTaskOrder sets the "task_order" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableTaskOrder(v *int) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetTaskOrder(*v)
	}
	return _u
}

// AddTaskOrder adds value to the "task_order" field.
func (_u *StudyTaskUpdateOne) AddTaskOrder(v int) *StudyTaskUpdateOne {
	_u.mutation.AddTaskOrder(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudyTaskUpdateOne) SetSubject(v string) *StudyTaskUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableSubject(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *StudyTaskUpdateOne) SetLocation(v string) *StudyTaskUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableLocation(v *string) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *StudyTaskUpdateOne) SetStartTime(v time.Time) *StudyTaskUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableStartTime(v *time.Time) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *StudyTaskUpdateOne) SetEndTime(v time.Time) *StudyTaskUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *StudyTaskUpdateOne) SetNillableEndTime(v *time.Time) *StudyTaskUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// Mutation returns the StudyTaskMutation object of the builder.
func (_u *StudyTaskUpdateOne) Mutation() *StudyTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyTaskUpdate builder.
func (_u *StudyTaskUpdateOne) Where(ps ...predicate.StudyTask) *StudyTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyTaskUpdateOne) Select(field string, fields ...string) *StudyTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyTask entity.
func (_u *StudyTaskUpdateOne) Save(ctx context.Context) (*StudyTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyTaskUpdateOne) SaveX(ctx context.Context) *StudyTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := studytask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studytask.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudyTask.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskName(); ok {
		if err := studytask.TaskNameValidator(v); err != nil {
			return &ValidationError{Name: "task_name", err: fmt.Errorf(`ent: validator failed for field "StudyTask.task_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := studytask.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyTask.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := studytask.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "StudyTask.location": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyTaskUpdateOne) sqlSave(ctx context.Context) (_node *StudyTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studytask.Table, studytask.Columns, sqlgraph.NewFieldSpec(studytask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studytask.FieldID)
		for _, f := range fields {
			if !studytask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studytask.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(studytask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studytask.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskName(); ok {
		_spec.SetField(studytask.FieldTaskName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(studytask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(studytask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(studytask.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studytask.FieldCategories, value)
		})
	}
	if value, ok := _u.mutation.CorrectlyCompleted(); ok {
		_spec.SetField(studytask.FieldCorrectlyCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TaskOrder(); ok {
		_spec.SetField(studytask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskOrder(); ok {
		_spec.AddField(studytask.FieldTaskOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studytask.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(studytask.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(studytask.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(studytask.FieldEndTime, field.TypeTime, value)
	}
	_node = &StudyTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studytask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
