package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"framescribe/constants"
	"framescribe/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ConversionJob struct{ ent.Schema }

func (ConversionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "conversion_jobs"},
	}
}

func (ConversionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("parent_job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.JobKinds...)),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("step").Default(string(constants.StepPreprocessing)).
			Validate(utils.EnumValidator(constants.JobSteps...)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		// storage pointers
		field.String("archive_key").NotEmpty(),
		field.String("filtered_archive_key").Optional(),
		field.String("thumbnail_key").Optional(),
		field.String("text_doc_key").Optional(),
		field.String("rich_doc_key").Optional(),
		field.Int64("text_doc_size").Default(0),
		field.Int64("rich_doc_size").Default(0),

		// progress counters
		field.Int("total_images").Default(0).NonNegative(),
		field.Int("preprocessed_images").Default(0).NonNegative(),
		field.Int("submitted_images").Default(0).NonNegative(),
		field.Int("total_batches").Default(0).NonNegative(),
		field.Int("completed_batches").Default(0).NonNegative(),
		// ratcheted batch size; 0 means the configured start size
		field.Int("batch_size").Default(0).NonNegative(),

		// provider-assigned ids of the current/last submitted batch
		field.String("current_batch_id").Optional(),
		field.String("current_input_file_id").Optional(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ConversionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("jobs").
			Field("profile_id").
			Unique().
			Required(),
		edge.To("frames", Frame.Type),
		edge.To("batches", BatchSubmission.Type),
		edge.To("steps", PipelineStep.Type),
	}
}

func (ConversionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "status", "created_at"),
		index.Fields("status"),
	}
}
