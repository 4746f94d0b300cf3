// Code generated by ent, DO NOT EDIT.

package resultrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/upskill-labs/upskill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAttemptID, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentTitle applies equality check predicate on the "assessment_title" field. It's identical to AssessmentTitleEQ.
func AssessmentTitle(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAssessmentTitle, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldScore, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldCorrectAnswers, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTotalQuestions, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldAttemptID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldAssessmentID, v))
}

// AssessmentTitleEQ applies the EQ predicate on the "assessment_title" field.
func AssessmentTitleEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldAssessmentTitle, v))
}

// AssessmentTitleNEQ applies the NEQ predicate on the "assessment_title" field.
func AssessmentTitleNEQ(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldAssessmentTitle, v))
}

// AssessmentTitleIn applies the In predicate on the "assessment_title" field.
func AssessmentTitleIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldAssessmentTitle, vs...))
}

// AssessmentTitleNotIn applies the NotIn predicate on the "assessment_title" field.
func AssessmentTitleNotIn(vs ...string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldAssessmentTitle, vs...))
}

// AssessmentTitleGT applies the GT predicate on the "assessment_title" field.
func AssessmentTitleGT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldAssessmentTitle, v))
}

// AssessmentTitleGTE applies the GTE predicate on the "assessment_title" field.
func AssessmentTitleGTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldAssessmentTitle, v))
}

// AssessmentTitleLT applies the LT predicate on the "assessment_title" field.
func AssessmentTitleLT(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldAssessmentTitle, v))
}

// AssessmentTitleLTE applies the LTE predicate on the "assessment_title" field.
func AssessmentTitleLTE(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldAssessmentTitle, v))
}

// AssessmentTitleContains applies the Contains predicate on the "assessment_title" field.
func AssessmentTitleContains(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContains(FieldAssessmentTitle, v))
}

// AssessmentTitleHasPrefix applies the HasPrefix predicate on the "assessment_title" field.
func AssessmentTitleHasPrefix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasPrefix(FieldAssessmentTitle, v))
}

// AssessmentTitleHasSuffix applies the HasSuffix predicate on the "assessment_title" field.
func AssessmentTitleHasSuffix(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldHasSuffix(FieldAssessmentTitle, v))
}

// AssessmentTitleEqualFold applies the EqualFold predicate on the "assessment_title" field.
func AssessmentTitleEqualFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEqualFold(FieldAssessmentTitle, v))
}

// AssessmentTitleContainsFold applies the ContainsFold predicate on the "assessment_title" field.
func AssessmentTitleContainsFold(v string) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldContainsFold(FieldAssessmentTitle, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldScore, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldCorrectAnswers, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldLTE(FieldTotalQuestions, v))
}

// SkillBreakdownIsNil applies the IsNil predicate on the "skill_breakdown" field.
func SkillBreakdownIsNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIsNull(FieldSkillBreakdown))
}

// SkillBreakdownNotNil applies the NotNil predicate on the "skill_breakdown" field.
func SkillBreakdownNotNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotNull(FieldSkillBreakdown))
}

// RecommendedPathsIsNil applies the IsNil predicate on the "recommended_paths" field.
func RecommendedPathsIsNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldIsNull(FieldRecommendedPaths))
}

// RecommendedPathsNotNil applies the NotNil predicate on the "recommended_paths" field.
func RecommendedPathsNotNil() predicate.ResultRecord {
	return predicate.ResultRecord(sql.FieldNotNull(FieldRecommendedPaths))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultRecord) predicate.ResultRecord {
	return predicate.ResultRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultRecord) predicate.ResultRecord {
	return predicate.ResultRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultRecord) predicate.ResultRecord {
	return predicate.ResultRecord(sql.NotPredicates(p))
}
