// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/szymonw/studylog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSequence, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldRecordedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSubject, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldLocation, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldNotes, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldEndTime, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// TotalTasks applies equality check predicate on the "total_tasks" field. It's identical to TotalTasksEQ.
func TotalTasks(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTotalTasks, v))
}

// CorrectTasks applies equality check predicate on the "correct_tasks" field. It's identical to CorrectTasksEQ.
func CorrectTasks(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCorrectTasks, v))
}

// AccuracyPercentage applies equality check predicate on the "accuracy_percentage" field. It's identical to AccuracyPercentageEQ.
func AccuracyPercentage(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldAccuracyPercentage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldSequence, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldRecordedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldSessionID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldSubject, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldLocation, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldNotes, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldEndTime, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDurationMinutes, v))
}

// TotalTasksEQ applies the EQ predicate on the "total_tasks" field.
func TotalTasksEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTotalTasks, v))
}

// TotalTasksNEQ applies the NEQ predicate on the "total_tasks" field.
func TotalTasksNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldTotalTasks, v))
}

// TotalTasksIn applies the In predicate on the "total_tasks" field.
func TotalTasksIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldTotalTasks, vs...))
}

// TotalTasksNotIn applies the NotIn predicate on the "total_tasks" field.
func TotalTasksNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldTotalTasks, vs...))
}

// TotalTasksGT applies the GT predicate on the "total_tasks" field.
func TotalTasksGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldTotalTasks, v))
}

// TotalTasksGTE applies the GTE predicate on the "total_tasks" field.
func TotalTasksGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldTotalTasks, v))
}

// TotalTasksLT applies the LT predicate on the "total_tasks" field.
func TotalTasksLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldTotalTasks, v))
}

// TotalTasksLTE applies the LTE predicate on the "total_tasks" field.
func TotalTasksLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldTotalTasks, v))
}

// CorrectTasksEQ applies the EQ predicate on the "correct_tasks" field.
func CorrectTasksEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCorrectTasks, v))
}

// CorrectTasksNEQ applies the NEQ predicate on the "correct_tasks" field.
func CorrectTasksNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCorrectTasks, v))
}

// CorrectTasksIn applies the In predicate on the "correct_tasks" field.
func CorrectTasksIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCorrectTasks, vs...))
}

// CorrectTasksNotIn applies the NotIn predicate on the "correct_tasks" field.
func CorrectTasksNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCorrectTasks, vs...))
}

// CorrectTasksGT applies the GT predicate on the "correct_tasks" field.
func CorrectTasksGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldCorrectTasks, v))
}

// CorrectTasksGTE applies the GTE predicate on the "correct_tasks" field.
func CorrectTasksGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldCorrectTasks, v))
}

// CorrectTasksLT applies the LT predicate on the "correct_tasks" field.
func CorrectTasksLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldCorrectTasks, v))
}

// CorrectTasksLTE applies the LTE predicate on the "correct_tasks" field.
func CorrectTasksLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldCorrectTasks, v))
}

// AccuracyPercentageEQ applies the EQ predicate on the "accuracy_percentage" field.
func AccuracyPercentageEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldAccuracyPercentage, v))
}

// AccuracyPercentageNEQ applies the NEQ predicate on the "accuracy_percentage" field.
func AccuracyPercentageNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldAccuracyPercentage, v))
}

// AccuracyPercentageIn applies the In predicate on the "accuracy_percentage" field.
func AccuracyPercentageIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldAccuracyPercentage, vs...))
}

// AccuracyPercentageNotIn applies the NotIn predicate on the "accuracy_percentage" field.
func AccuracyPercentageNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldAccuracyPercentage, vs...))
}

// AccuracyPercentageGT applies the GT predicate on the "accuracy_percentage" field.
func AccuracyPercentageGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldAccuracyPercentage, v))
}

// AccuracyPercentageGTE applies the GTE predicate on the "accuracy_percentage" field.
func AccuracyPercentageGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldAccuracyPercentage, v))
}

// AccuracyPercentageLT applies the LT predicate on the "accuracy_percentage" field.
func AccuracyPercentageLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldAccuracyPercentage, v))
}

// AccuracyPercentageLTE applies the LTE predicate on the "accuracy_percentage" field.
func AccuracyPercentageLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldAccuracyPercentage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
