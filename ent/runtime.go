// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/upskill-labs/upskill/ent/attemptevent"
	"github.com/upskill-labs/upskill/ent/resultrecord"
	"github.com/upskill-labs/upskill/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescAssessmentID is the schema descriptor for assessment_id field.
	attempteventDescAssessmentID := attempteventFields[1].Descriptor()
	// attemptevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	attemptevent.AssessmentIDValidator = attempteventDescAssessmentID.Validators[0].(func(string) error)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[2].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescAnsweredCount is the schema descriptor for answered_count field.
	attempteventDescAnsweredCount := attempteventFields[3].Descriptor()
	// attemptevent.DefaultAnsweredCount holds the default value on creation for the answered_count field.
	attemptevent.DefaultAnsweredCount = attempteventDescAnsweredCount.Default.(int)
	// attempteventDescRemainingSecs is the schema descriptor for remaining_secs field.
	attempteventDescRemainingSecs := attempteventFields[4].Descriptor()
	// attemptevent.DefaultRemainingSecs holds the default value on creation for the remaining_secs field.
	attemptevent.DefaultRemainingSecs = attempteventDescRemainingSecs.Default.(int)
	// attempteventDescForced is the schema descriptor for forced field.
	attempteventDescForced := attempteventFields[5].Descriptor()
	// attemptevent.DefaultForced holds the default value on creation for the forced field.
	attemptevent.DefaultForced = attempteventDescForced.Default.(bool)
	resultrecordMixin := schema.ResultRecord{}.Mixin()
	resultrecordMixinFields0 := resultrecordMixin[0].Fields()
	_ = resultrecordMixinFields0
	resultrecordFields := schema.ResultRecord{}.Fields()
	_ = resultrecordFields
	// resultrecordDescTimestamp is the schema descriptor for timestamp field.
	resultrecordDescTimestamp := resultrecordMixinFields0[1].Descriptor()
	// resultrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultrecord.DefaultTimestamp = resultrecordDescTimestamp.Default.(func() time.Time)
	// resultrecordDescAttemptID is the schema descriptor for attempt_id field.
	resultrecordDescAttemptID := resultrecordFields[0].Descriptor()
	// resultrecord.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	resultrecord.AttemptIDValidator = resultrecordDescAttemptID.Validators[0].(func(string) error)
	// resultrecordDescAssessmentID is the schema descriptor for assessment_id field.
	resultrecordDescAssessmentID := resultrecordFields[1].Descriptor()
	// resultrecord.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	resultrecord.AssessmentIDValidator = resultrecordDescAssessmentID.Validators[0].(func(string) error)
	// resultrecordDescAssessmentTitle is the schema descriptor for assessment_title field.
	resultrecordDescAssessmentTitle := resultrecordFields[2].Descriptor()
	// resultrecord.AssessmentTitleValidator is a validator for the "assessment_title" field. It is called by the builders before save.
	resultrecord.AssessmentTitleValidator = resultrecordDescAssessmentTitle.Validators[0].(func(string) error)
	// resultrecordDescCorrectAnswers is the schema descriptor for correct_answers field.
	resultrecordDescCorrectAnswers := resultrecordFields[4].Descriptor()
	// resultrecord.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	resultrecord.DefaultCorrectAnswers = resultrecordDescCorrectAnswers.Default.(int)
	// resultrecordDescTotalQuestions is the schema descriptor for total_questions field.
	resultrecordDescTotalQuestions := resultrecordFields[5].Descriptor()
	// resultrecord.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	resultrecord.DefaultTotalQuestions = resultrecordDescTotalQuestions.Default.(int)
}
