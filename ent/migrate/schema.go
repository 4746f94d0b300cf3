// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "answered_count", Type: field.TypeInt, Default: 0},
		{Name: "remaining_secs", Type: field.TypeInt, Default: 0},
		{Name: "forced", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_action",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
		},
	}
	// ResultRecordsColumns holds the columns for the "result_records" table.
	ResultRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "assessment_title", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "skill_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "recommended_paths", Type: field.TypeJSON, Nullable: true},
	}
	// ResultRecordsTable holds the schema information for the "result_records" table.
	ResultRecordsTable = &schema.Table{
		Name:       "result_records",
		Columns:    ResultRecordsColumns,
		PrimaryKey: []*schema.Column{ResultRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResultRecordsColumns[1]},
			},
			{
				Name:    "resultrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultRecordsColumns[2]},
			},
			{
				Name:    "resultrecord_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{ResultRecordsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ResultRecordsTable,
	}
)

func init() {
}
