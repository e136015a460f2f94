package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is the roll-up record of one finished study session.
// It is written once, after the session's tasks.
type StudySession struct {
	ent.Schema
}

func (StudySession) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID of the session"),
		field.String("subject").
			NotEmpty(),
		field.String("location").
			NotEmpty(),
		field.String("notes").
			Optional(),
		field.Time("start_time"),
		field.Time("end_time"),
		field.Int("duration_minutes").
			Comment("Active study time, paused intervals excluded"),
		field.Int("total_tasks").
			Default(0),
		field.Int("correct_tasks").
			Default(0),
		field.Int("accuracy_percentage").
			Default(0).
			Comment("correct/total rounded to a whole percent"),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("start_time"),
	}
}
