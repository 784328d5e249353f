package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/memedex/memedex/internal/ent/mixins"
)

// WatchedDirectory holds the schema definition for the WatchedDirectory entity.
// Each record names one subdirectory under the library root whose image files
// are cataloged, either on demand or on a per-directory scan frequency.
type WatchedDirectory struct {
	ent.Schema
}

// Mixin of the WatchedDirectory.
func (WatchedDirectory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimestampMixin{},
	}
}

// Fields of the WatchedDirectory.
func (WatchedDirectory) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Subdirectory name under the library root"),
		field.Int("scan_frequency_minutes").
			Optional().
			Nillable().
			Comment("Nil disables automatic scanning"),
		field.Time("last_scanned_at").
			Optional().
			Nillable(),
		field.Enum("scan_status").
			Values("idle", "scanning", "failed").
			Default("idle"),
		field.String("last_scan_error").
			Optional().
			Nillable(),
		field.Bool("currently_scanning").
			Default(false).
			Comment("Per-directory scan lock, flipped with a conditional update"),
		field.Int64("last_scan_duration_ms").
			Default(0),
	}
}

// Edges of the WatchedDirectory.
func (WatchedDirectory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", CatalogItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WatchedDirectory.
func (WatchedDirectory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_status"),
	}
}

// Annotations of the WatchedDirectory.
func (WatchedDirectory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "watched_directories"},
	}
}
