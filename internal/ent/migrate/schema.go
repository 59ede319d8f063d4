// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DigestRunsColumns holds the columns for the "digest_runs" table.
	DigestRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "in_progress"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// DigestRunsTable holds the schema information for the "digest_runs" table.
	DigestRunsTable = &schema.Table{
		Name:       "digest_runs",
		Columns:    DigestRunsColumns,
		PrimaryKey: []*schema.Column{DigestRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "digestrun_start_time_end_time",
				Unique:  true,
				Columns: []*schema.Column{DigestRunsColumns[3], DigestRunsColumns[4]},
			},
			{
				Name:    "digestrun_status",
				Unique:  false,
				Columns: []*schema.Column{DigestRunsColumns[5]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "sender_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[6]},
			},
			{
				Name:    "message_sender_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "engine", Type: field.TypeString},
		{Name: "summary_date", Type: field.TypeTime},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summary_conversation_id_summary_date",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[3], SummariesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DigestRunsTable,
		MessagesTable,
		SummariesTable,
	}
)

func init() {
}
