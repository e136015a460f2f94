// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/szymonw/studylog/ent/studytask"
)

// StudyTask is the model entity for the StudyTask schema.
type StudyTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the record was written
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// UUID of the task
	TaskID string `json:"task_id,omitempty"`
	// UUID of the owning session
	SessionID string `json:"session_id,omitempty"`
	// TaskName holds the value of the "task_name" field.
	TaskName string `json:"task_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category names, at least one
	Categories []string `json:"categories,omitempty"`
	// CorrectlyCompleted holds the value of the "correctly_completed" field.
	CorrectlyCompleted bool `json:"correctly_completed,omitempty"`
	// 1-based position within the session
	TaskOrder int `json:"task_order,omitempty"`
	// Inherited from the session
	Subject string `json:"subject,omitempty"`
	// Inherited from the session
	Location string `json:"location,omitempty"`
	// When work on the task began
	StartTime time.Time `json:"start_time,omitempty"`
	// When the task was marked correct/incorrect
	EndTime      time.Time `json:"end_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studytask.FieldCategories:
			values[i] = new([]byte)
		case studytask.FieldCorrectlyCompleted:
			values[i] = new(sql.NullBool)
		case studytask.FieldID, studytask.FieldSequence, studytask.FieldTaskOrder:
			values[i] = new(sql.NullInt64)
		case studytask.FieldTaskID, studytask.FieldSessionID, studytask.FieldTaskName, studytask.FieldDescription, studytask.FieldSubject, studytask.FieldLocation:
			values[i] = new(sql.NullString)
		case studytask.FieldRecordedAt, studytask.FieldStartTime, studytask.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyTask fields.
func (_m *StudyTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studytask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studytask.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case studytask.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case studytask.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case studytask.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case studytask.FieldTaskName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_name", values[i])
			} else if value.Valid {
				_m.TaskName = value.String
			}
		case studytask.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case studytask.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case studytask.FieldCorrectlyCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correctly_completed", values[i])
			} else if value.Valid {
				_m.CorrectlyCompleted = value.Bool
			}
		case studytask.FieldTaskOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_order", values[i])
			} else if value.Valid {
				_m.TaskOrder = int(value.Int64)
			}
		case studytask.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case studytask.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case studytask.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case studytask.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyTask.
// This includes values selected through modifiers, order, etc.
func (_m *StudyTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudyTask.
// Note that you need to call StudyTask.Unwrap() before calling this method if this StudyTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyTask) Update() *StudyTaskUpdateOne {
	return NewStudyTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyTask) Unwrap() *StudyTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyTask) String() string {
	var builder strings.Builder
	builder.WriteString("StudyTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("task_name=")
	builder.WriteString(_m.TaskName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("correctly_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectlyCompleted))
	builder.WriteString(", ")
	builder.WriteString("task_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskOrder))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyTasks is a parsable slice of StudyTask.
type StudyTasks []*StudyTask
