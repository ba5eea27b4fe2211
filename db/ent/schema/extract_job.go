package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK, set once parsing succeeds
		field.UUID("receipt_id", uuid.UUID{}).Optional().Nillable(),
		// file path or "stdin"
		field.String("source").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(enumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").NotEmpty(),
		field.String("error_message").Optional().Nillable(),
		field.Float("extraction_confidence").Optional().Nillable(),
		field.String("extraction_method").Optional().Nillable(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("model_name").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", Receipt.Type).
			Ref("jobs").
			Field("receipt_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("receipt_id"),
	}
}

func enumValidator(allowed ...string) func(string) error {
	return func(s string) error {
		for _, v := range allowed {
			if s == v {
				return nil
			}
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
