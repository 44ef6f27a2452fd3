package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Frame is one persisted OCR result row. Exactly one row per expected work
// item once a job reaches RESULTS_SAVED; rows are replaced wholesale on re-runs.
type Frame struct{ ent.Schema }

func (Frame) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "frames"},
	}
}

func (Frame) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("base_key").NotEmpty(),
		// global ordinal across all work items, defines in-paragraph ordering
		field.Int("frame_index").NonNegative(),
		// empty string means "no text detected", distinct from "not yet processed"
		field.String("text").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Frame) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ConversionJob.Type).
			Ref("frames").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (Frame) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "frame_index").Unique(),
		index.Fields("job_id", "base_key"),
	}
}
