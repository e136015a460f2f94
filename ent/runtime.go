// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/szymonw/studylog/ent/schema"
	"github.com/szymonw/studylog/ent/studysession"
	"github.com/szymonw/studylog/ent/studytask"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	studysessionMixin := schema.StudySession{}.Mixin()
	studysessionMixinFields0 := studysessionMixin[0].Fields()
	_ = studysessionMixinFields0
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescRecordedAt is the schema descriptor for recorded_at field.
	studysessionDescRecordedAt := studysessionMixinFields0[1].Descriptor()
	// studysession.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	studysession.DefaultRecordedAt = studysessionDescRecordedAt.Default.(func() time.Time)
	// studysessionDescSessionID is the schema descriptor for session_id field.
	studysessionDescSessionID := studysessionFields[0].Descriptor()
	// studysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysession.SessionIDValidator = studysessionDescSessionID.Validators[0].(func(string) error)
	// studysessionDescSubject is the schema descriptor for subject field.
	studysessionDescSubject := studysessionFields[1].Descriptor()
	// studysession.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	studysession.SubjectValidator = studysessionDescSubject.Validators[0].(func(string) error)
	// studysessionDescLocation is the schema descriptor for location field.
	studysessionDescLocation := studysessionFields[2].Descriptor()
	// studysession.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	studysession.LocationValidator = studysessionDescLocation.Validators[0].(func(string) error)
	// studysessionDescTotalTasks is the schema descriptor for total_tasks field.
	studysessionDescTotalTasks := studysessionFields[7].Descriptor()
	// studysession.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	studysession.DefaultTotalTasks = studysessionDescTotalTasks.Default.(int)
	// studysessionDescCorrectTasks is the schema descriptor for correct_tasks field.
	studysessionDescCorrectTasks := studysessionFields[8].Descriptor()
	// studysession.DefaultCorrectTasks holds the default value on creation for the correct_tasks field.
	studysession.DefaultCorrectTasks = studysessionDescCorrectTasks.Default.(int)
	// studysessionDescAccuracyPercentage is the schema descriptor for accuracy_percentage field.
	studysessionDescAccuracyPercentage := studysessionFields[9].Descriptor()
	// studysession.DefaultAccuracyPercentage holds the default value on creation for the accuracy_percentage field.
	studysession.DefaultAccuracyPercentage = studysessionDescAccuracyPercentage.Default.(int)
	studytaskMixin := schema.StudyTask{}.Mixin()
	studytaskMixinFields0 := studytaskMixin[0].Fields()
	_ = studytaskMixinFields0
	studytaskFields := schema.StudyTask{}.Fields()
	_ = studytaskFields
	// studytaskDescRecordedAt is the schema descriptor for recorded_at field.
	studytaskDescRecordedAt := studytaskMixinFields0[1].Descriptor()
	// studytask.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	studytask.DefaultRecordedAt = studytaskDescRecordedAt.Default.(func() time.Time)
	// studytaskDescTaskID is the schema descriptor for task_id field.
	studytaskDescTaskID := studytaskFields[0].Descriptor()
	// studytask.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	studytask.TaskIDValidator = studytaskDescTaskID.Validators[0].(func(string) error)
	// studytaskDescSessionID is the schema descriptor for session_id field.
	studytaskDescSessionID := studytaskFields[1].Descriptor()
	// studytask.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studytask.SessionIDValidator = studytaskDescSessionID.Validators[0].(func(string) error)
	// studytaskDescTaskName is the schema descriptor for task_name field.
	studytaskDescTaskName := studytaskFields[2].Descriptor()
	// studytask.TaskNameValidator is a validator for the "task_name" field. It is called by the builders before save.
	studytask.TaskNameValidator = studytaskDescTaskName.Validators[0].(func(string) error)
	// studytaskDescSubject is the schema descriptor for subject field.
	studytaskDescSubject := studytaskFields[7].Descriptor()
	// studytask.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	studytask.SubjectValidator = studytaskDescSubject.Validators[0].(func(string) error)
	// studytaskDescLocation is the schema descriptor for location field.
	studytaskDescLocation := studytaskFields[8].Descriptor()
	// studytask.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	studytask.LocationValidator = studytaskDescLocation.Validators[0].(func(string) error)
}
