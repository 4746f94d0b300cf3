package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records assessment attempt lifecycle events
// (start/submit/retry/abandon).
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events in one attempt"),
		field.String("assessment_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, submit, retry or abandon"),
		field.Int("answered_count").
			Default(0).
			Comment("Questions answered at the time of the event"),
		field.Int("remaining_secs").
			Default(0).
			Comment("Clock remaining at the time of the event"),
		field.Bool("forced").
			Default(false).
			Comment("True when a submit was triggered by clock expiry"),
		field.String("error_message").
			Optional().
			Comment("Gateway error on a failed submit"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("assessment_id"),
		index.Fields("action"),
	}
}
