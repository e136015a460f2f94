// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/szymonw/studylog/ent/studysession"
)

// StudySession is the model entity for the StudySession schema.
type StudySession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the record was written
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// UUID of the session
	SessionID string `json:"session_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Active study time, paused intervals excluded
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// TotalTasks holds the value of the "total_tasks" field.
	TotalTasks int `json:"total_tasks,omitempty"`
	// CorrectTasks holds the value of the "correct_tasks" field.
	CorrectTasks int `json:"correct_tasks,omitempty"`
	// correct/total rounded to a whole percent
	AccuracyPercentage int `json:"accuracy_percentage,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID, studysession.FieldSequence, studysession.FieldDurationMinutes, studysession.FieldTotalTasks, studysession.FieldCorrectTasks, studysession.FieldAccuracyPercentage:
			values[i] = new(sql.NullInt64)
		case studysession.FieldSessionID, studysession.FieldSubject, studysession.FieldLocation, studysession.FieldNotes:
			values[i] = new(sql.NullString)
		case studysession.FieldRecordedAt, studysession.FieldStartTime, studysession.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySession fields.
func (_m *StudySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studysession.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case studysession.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case studysession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case studysession.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case studysession.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case studysession.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case studysession.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case studysession.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case studysession.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case studysession.FieldTotalTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tasks", values[i])
			} else if value.Valid {
				_m.TotalTasks = int(value.Int64)
			}
		case studysession.FieldCorrectTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_tasks", values[i])
			} else if value.Valid {
				_m.CorrectTasks = int(value.Int64)
			}
		case studysession.FieldAccuracyPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_percentage", values[i])
			} else if value.Valid {
				_m.AccuracyPercentage = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySession.
// This includes values selected through modifiers, order, etc.
func (_m *StudySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudySession.
// Note that you need to call StudySession.Unwrap() before calling this method if this StudySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySession) Update() *StudySessionUpdateOne {
	return NewStudySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySession) Unwrap() *StudySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySession) String() string {
	var builder strings.Builder
	builder.WriteString("StudySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("total_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTasks))
	builder.WriteString(", ")
	builder.WriteString("correct_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectTasks))
	builder.WriteString(", ")
	builder.WriteString("accuracy_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyPercentage))
	builder.WriteByte(')')
	return builder.String()
}

// StudySessions is a parsable slice of StudySession.
type StudySessions []*StudySession
