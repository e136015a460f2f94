// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "location", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "total_tasks", Type: field.TypeInt, Default: 0},
		{Name: "correct_tasks", Type: field.TypeInt, Default: 0},
		{Name: "accuracy_percentage", Type: field.TypeInt, Default: 0},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_sequence",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[2]},
			},
			{
				Name:    "studysession_subject",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[4]},
			},
			{
				Name:    "studysession_start_time",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[7]},
			},
		},
	}
	// StudyTasksColumns holds the columns for the "study_tasks" table.
	StudyTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "task_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "categories", Type: field.TypeJSON},
		{Name: "correctly_completed", Type: field.TypeBool},
		{Name: "task_order", Type: field.TypeInt},
		{Name: "subject", Type: field.TypeString},
		{Name: "location", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
	}
	// StudyTasksTable holds the schema information for the "study_tasks" table.
	StudyTasksTable = &schema.Table{
		Name:       "study_tasks",
		Columns:    StudyTasksColumns,
		PrimaryKey: []*schema.Column{StudyTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studytask_sequence",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[1]},
			},
			{
				Name:    "studytask_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[2]},
			},
			{
				Name:    "studytask_session_id",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[4]},
			},
			{
				Name:    "studytask_subject",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[10]},
			},
			{
				Name:    "studytask_correctly_completed",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		StudySessionsTable,
		StudyTasksTable,
	}
)

func init() {
}
