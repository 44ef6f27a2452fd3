package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PipelineStep is the durable memoization ledger: one row per completed
// step name per job, holding the step's JSON result. A stage consults this
// ledger before executing so replays never repeat a finished side effect.
type PipelineStep struct{ ent.Schema }

func (PipelineStep) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pipeline_steps"},
	}
}

func (PipelineStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.Time("completed_at").Default(time.Now),
	}
}

func (PipelineStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ConversionJob.Type).
			Ref("steps").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (PipelineStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "name").Unique(),
	}
}
