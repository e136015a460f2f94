package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// RecordMixin provides the base fields shared by all ledger record types.
// The ledger is append-only: records carry a global sequence number and an
// immutable timestamp, and are never updated or reordered.
type RecordMixin struct {
	mixin.Schema
}

func (RecordMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the record was written"),
	}
}

func (RecordMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("recorded_at"),
	}
}
