// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/upskill-labs/upskill/ent/resultrecord"
)

// ResultRecord is the model entity for the ResultRecord schema.
type ResultRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// One result per attempt
	AttemptID string `json:"attempt_id,omitempty"`
	// AssessmentID holds the value of the "assessment_id" field.
	AssessmentID string `json:"assessment_id,omitempty"`
	// AssessmentTitle holds the value of the "assessment_title" field.
	AssessmentTitle string `json:"assessment_title,omitempty"`
	// Overall score, 0-100
	Score int `json:"score,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Per-skill percentage scores
	SkillBreakdown map[string]float64 `json:"skill_breakdown,omitempty"`
	// Learning path ids suggested from weak skills
	RecommendedPaths []string `json:"recommended_paths,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultrecord.FieldSkillBreakdown, resultrecord.FieldRecommendedPaths:
			values[i] = new([]byte)
		case resultrecord.FieldID, resultrecord.FieldSequence, resultrecord.FieldScore, resultrecord.FieldCorrectAnswers, resultrecord.FieldTotalQuestions:
			values[i] = new(sql.NullInt64)
		case resultrecord.FieldAttemptID, resultrecord.FieldAssessmentID, resultrecord.FieldAssessmentTitle:
			values[i] = new(sql.NullString)
		case resultrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultRecord fields.
func (_m *ResultRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resultrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case resultrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case resultrecord.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case resultrecord.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case resultrecord.FieldAssessmentTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_title", values[i])
			} else if value.Valid {
				_m.AssessmentTitle = value.String
			}
		case resultrecord.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case resultrecord.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case resultrecord.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case resultrecord.FieldSkillBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillBreakdown); err != nil {
					return fmt.Errorf("unmarshal field skill_breakdown: %w", err)
				}
			}
		case resultrecord.FieldRecommendedPaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecommendedPaths); err != nil {
					return fmt.Errorf("unmarshal field recommended_paths: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ResultRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResultRecord.
// Note that you need to call ResultRecord.Unwrap() before calling this method if this ResultRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultRecord) Update() *ResultRecordUpdateOne {
	return NewResultRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultRecord) Unwrap() *ResultRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ResultRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("assessment_title=")
	builder.WriteString(_m.AssessmentTitle)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("skill_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillBreakdown))
	builder.WriteString(", ")
	builder.WriteString("recommended_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedPaths))
	builder.WriteByte(')')
	return builder.String()
}

// ResultRecords is a parsable slice of ResultRecord.
type ResultRecords []*ResultRecord
