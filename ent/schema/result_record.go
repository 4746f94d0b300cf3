package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultRecord stores a completed assessment result for the history view
// and downstream certificate hand-off.
type ResultRecord struct {
	ent.Schema
}

func (ResultRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("One result per attempt"),
		field.String("assessment_id").
			NotEmpty(),
		field.String("assessment_title").
			NotEmpty(),
		field.Int("score").
			Comment("Overall score, 0-100"),
		field.Int("correct_answers").
			Default(0),
		field.Int("total_questions").
			Default(0),
		field.JSON("skill_breakdown", map[string]float64{}).
			Optional().
			Comment("Per-skill percentage scores"),
		field.JSON("recommended_paths", []string{}).
			Optional().
			Comment("Learning path ids suggested from weak skills"),
	}
}

func (ResultRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
	}
}
