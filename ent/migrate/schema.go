// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChordPreferencesColumns holds the columns for the "chord_preferences" table.
	ChordPreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "time_limit", Type: field.TypeInt, Default: 10},
		{Name: "enabled_types", Type: field.TypeJSON},
	}
	// ChordPreferencesTable holds the schema information for the "chord_preferences" table.
	ChordPreferencesTable = &schema.Table{
		Name:       "chord_preferences",
		Columns:    ChordPreferencesColumns,
		PrimaryKey: []*schema.Column{ChordPreferencesColumns[0]},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "time_limit", Type: field.TypeInt},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_started_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1]},
			},
		},
	}
	// ScalePreferencesColumns holds the columns for the "scale_preferences" table.
	ScalePreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "time_limit", Type: field.TypeInt, Default: 10},
		{Name: "enabled_types", Type: field.TypeJSON},
	}
	// ScalePreferencesTable holds the schema information for the "scale_preferences" table.
	ScalePreferencesTable = &schema.Table{
		Name:       "scale_preferences",
		Columns:    ScalePreferencesColumns,
		PrimaryKey: []*schema.Column{ScalePreferencesColumns[0]},
	}
	// ScaleSessionsColumns holds the columns for the "scale_sessions" table.
	ScaleSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "time_limit", Type: field.TypeInt},
	}
	// ScaleSessionsTable holds the schema information for the "scale_sessions" table.
	ScaleSessionsTable = &schema.Table{
		Name:       "scale_sessions",
		Columns:    ScaleSessionsColumns,
		PrimaryKey: []*schema.Column{ScaleSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scalesession_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScaleSessionsColumns[1]},
			},
		},
	}
	// SessionChordsColumns holds the columns for the "session_chords" table.
	SessionChordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "displayed_at", Type: field.TypeTime},
		{Name: "practice_session_chords", Type: field.TypeUUID},
	}
	// SessionChordsTable holds the schema information for the "session_chords" table.
	SessionChordsTable = &schema.Table{
		Name:       "session_chords",
		Columns:    SessionChordsColumns,
		PrimaryKey: []*schema.Column{SessionChordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_chords_practice_sessions_chords",
				Columns:    []*schema.Column{SessionChordsColumns[3]},
				RefColumns: []*schema.Column{PracticeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SessionScalesColumns holds the columns for the "session_scales" table.
	SessionScalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "displayed_at", Type: field.TypeTime},
		{Name: "scale_session_scales", Type: field.TypeUUID},
	}
	// SessionScalesTable holds the schema information for the "session_scales" table.
	SessionScalesTable = &schema.Table{
		Name:       "session_scales",
		Columns:    SessionScalesColumns,
		PrimaryKey: []*schema.Column{SessionScalesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_scales_scale_sessions_scales",
				Columns:    []*schema.Column{SessionScalesColumns[3]},
				RefColumns: []*schema.Column{ScaleSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChordPreferencesTable,
		PracticeSessionsTable,
		ScalePreferencesTable,
		ScaleSessionsTable,
		SessionChordsTable,
		SessionScalesTable,
	}
)

func init() {
	SessionChordsTable.ForeignKeys[0].RefTable = PracticeSessionsTable
	SessionScalesTable.ForeignKeys[0].RefTable = ScaleSessionsTable
}
