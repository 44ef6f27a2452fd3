// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchSubmissionsColumns holds the columns for the "batch_submissions" table.
	BatchSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "batch_index", Type: field.TypeInt},
		{Name: "provider_batch_id", Type: field.TypeString, Nullable: true},
		{Name: "input_file_id", Type: field.TypeString, Nullable: true},
		{Name: "output_file_id", Type: field.TypeString, Nullable: true},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeString, Default: "CREATED"},
		{Name: "supplementary", Type: field.TypeBool, Default: false},
		{Name: "next_poll_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// BatchSubmissionsTable holds the schema information for the "batch_submissions" table.
	BatchSubmissionsTable = &schema.Table{
		Name:       "batch_submissions",
		Columns:    BatchSubmissionsColumns,
		PrimaryKey: []*schema.Column{BatchSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batch_submissions_conversion_jobs_batches",
				Columns:    []*schema.Column{BatchSubmissionsColumns[11]},
				RefColumns: []*schema.Column{ConversionJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batchsubmission_job_id_batch_index",
				Unique:  true,
				Columns: []*schema.Column{BatchSubmissionsColumns[11], BatchSubmissionsColumns[1]},
			},
		},
	}
	// ConversionJobsColumns holds the columns for the "conversion_jobs" table.
	ConversionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "parent_job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "step", Type: field.TypeString, Default: "PREPROCESSING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "archive_key", Type: field.TypeString},
		{Name: "filtered_archive_key", Type: field.TypeString, Nullable: true},
		{Name: "thumbnail_key", Type: field.TypeString, Nullable: true},
		{Name: "text_doc_key", Type: field.TypeString, Nullable: true},
		{Name: "rich_doc_key", Type: field.TypeString, Nullable: true},
		{Name: "text_doc_size", Type: field.TypeInt64, Default: 0},
		{Name: "rich_doc_size", Type: field.TypeInt64, Default: 0},
		{Name: "total_images", Type: field.TypeInt, Default: 0},
		{Name: "preprocessed_images", Type: field.TypeInt, Default: 0},
		{Name: "submitted_images", Type: field.TypeInt, Default: 0},
		{Name: "total_batches", Type: field.TypeInt, Default: 0},
		{Name: "completed_batches", Type: field.TypeInt, Default: 0},
		{Name: "batch_size", Type: field.TypeInt, Default: 0},
		{Name: "current_batch_id", Type: field.TypeString, Nullable: true},
		{Name: "current_input_file_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ConversionJobsTable holds the schema information for the "conversion_jobs" table.
	ConversionJobsTable = &schema.Table{
		Name:       "conversion_jobs",
		Columns:    ConversionJobsColumns,
		PrimaryKey: []*schema.Column{ConversionJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversion_jobs_profiles_jobs",
				Columns:    []*schema.Column{ConversionJobsColumns[23]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversionjob_profile_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversionJobsColumns[23], ConversionJobsColumns[3], ConversionJobsColumns[21]},
			},
			{
				Name:    "conversionjob_status",
				Unique:  false,
				Columns: []*schema.Column{ConversionJobsColumns[3]},
			},
		},
	}
	// FramesColumns holds the columns for the "frames" table.
	FramesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "base_key", Type: field.TypeString},
		{Name: "frame_index", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// FramesTable holds the schema information for the "frames" table.
	FramesTable = &schema.Table{
		Name:       "frames",
		Columns:    FramesColumns,
		PrimaryKey: []*schema.Column{FramesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "frames_conversion_jobs_frames",
				Columns:    []*schema.Column{FramesColumns[5]},
				RefColumns: []*schema.Column{ConversionJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "frame_job_id_frame_index",
				Unique:  true,
				Columns: []*schema.Column{FramesColumns[5], FramesColumns[3]},
			},
			{
				Name:    "frame_job_id_base_key",
				Unique:  false,
				Columns: []*schema.Column{FramesColumns[5], FramesColumns[2]},
			},
		},
	}
	// PipelineStepsColumns holds the columns for the "pipeline_steps" table.
	PipelineStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// PipelineStepsTable holds the schema information for the "pipeline_steps" table.
	PipelineStepsTable = &schema.Table{
		Name:       "pipeline_steps",
		Columns:    PipelineStepsColumns,
		PrimaryKey: []*schema.Column{PipelineStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_steps_conversion_jobs_steps",
				Columns:    []*schema.Column{PipelineStepsColumns[4]},
				RefColumns: []*schema.Column{ConversionJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinestep_job_id_name",
				Unique:  true,
				Columns: []*schema.Column{PipelineStepsColumns[4], PipelineStepsColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "inference_api_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchSubmissionsTable,
		ConversionJobsTable,
		FramesTable,
		PipelineStepsTable,
		ProfilesTable,
	}
)

func init() {
	BatchSubmissionsTable.ForeignKeys[0].RefTable = ConversionJobsTable
	BatchSubmissionsTable.Annotation = &entsql.Annotation{
		Table: "batch_submissions",
	}
	ConversionJobsTable.ForeignKeys[0].RefTable = ProfilesTable
	ConversionJobsTable.Annotation = &entsql.Annotation{
		Table: "conversion_jobs",
	}
	FramesTable.ForeignKeys[0].RefTable = ConversionJobsTable
	FramesTable.Annotation = &entsql.Annotation{
		Table: "frames",
	}
	PipelineStepsTable.ForeignKeys[0].RefTable = ConversionJobsTable
	PipelineStepsTable.Annotation = &entsql.Annotation{
		Table: "pipeline_steps",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
