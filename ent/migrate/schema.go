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
		{Name: "run_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "level", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "prompt_tr", Type: field.TypeString},
		{Name: "masked_en", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "similarity", Type: field.TypeFloat64},
		{Name: "feedback", Type: field.TypeString},
		{Name: "voice_input", Type: field.TypeBool, Default: false},
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
				Name:    "attemptevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[11]},
			},
		},
	}
	// DictationEventsColumns holds the columns for the "dictation_events" table.
	DictationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
	}
	// DictationEventsTable holds the schema information for the "dictation_events" table.
	DictationEventsTable = &schema.Table{
		Name:       "dictation_events",
		Columns:    DictationEventsColumns,
		PrimaryKey: []*schema.Column{DictationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dictationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DictationEventsColumns[1]},
			},
			{
				Name:    "dictationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DictationEventsColumns[2]},
			},
			{
				Name:    "dictationevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{DictationEventsColumns[3]},
			},
		},
	}
	// RevealEventsColumns holds the columns for the "reveal_events" table.
	RevealEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "hint_index", Type: field.TypeInt},
		{Name: "word", Type: field.TypeString},
	}
	// RevealEventsTable holds the schema information for the "reveal_events" table.
	RevealEventsTable = &schema.Table{
		Name:       "reveal_events",
		Columns:    RevealEventsColumns,
		PrimaryKey: []*schema.Column{RevealEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "revealevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RevealEventsColumns[1]},
			},
			{
				Name:    "revealevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RevealEventsColumns[2]},
			},
			{
				Name:    "revealevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{RevealEventsColumns[3]},
			},
			{
				Name:    "revealevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{RevealEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		DictationEventsTable,
		RevealEventsTable,
	}
)

func init() {
}
