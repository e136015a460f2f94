package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyTask is one recorded practice task within a study session.
type StudyTask struct {
	ent.Schema
}

func (StudyTask) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (StudyTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			NotEmpty().
			Unique().
			Comment("UUID of the task"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning session"),
		field.String("task_name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.JSON("categories", []string{}).
			Comment("Category names, at least one"),
		field.Bool("correctly_completed"),
		field.Int("task_order").
			Comment("1-based position within the session"),
		field.String("subject").
			NotEmpty().
			Comment("Inherited from the session"),
		field.String("location").
			NotEmpty().
			Comment("Inherited from the session"),
		field.Time("start_time").
			Comment("When work on the task began"),
		field.Time("end_time").
			Comment("When the task was marked correct/incorrect"),
	}
}

func (StudyTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject"),
		index.Fields("correctly_completed"),
	}
}
