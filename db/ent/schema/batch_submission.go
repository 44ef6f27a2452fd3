package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"framescribe/constants"
	"framescribe/db/ent/schema/utils"

	"github.com/google/uuid"
)

// BatchSubmission is one submission to the inference provider. It is the
// durable record that lets a restarted worker find an already-assigned
// provider batch instead of resubmitting billable work.
type BatchSubmission struct{ ent.Schema }

func (BatchSubmission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_submissions"},
	}
}

func (BatchSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		// ordinal within the job; supplementary retry batches continue the sequence
		field.Int("batch_index").NonNegative(),
		field.String("provider_batch_id").Optional(),
		field.String("input_file_id").Optional(),
		field.String("output_file_id").Optional(),
		field.Int("item_count").Default(0).NonNegative(),
		field.String("state").Default(string(constants.BatchRowCreated)).
			Validate(utils.EnumValidator(constants.BatchRowStates...)),
		field.Bool("supplementary").Default(false),
		// durable sleep: the poller no-ops until this instant has passed
		field.Time("next_poll_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BatchSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ConversionJob.Type).
			Ref("batches").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (BatchSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "batch_index").Unique(),
	}
}
