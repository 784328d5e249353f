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

// CatalogItem holds the schema definition for the CatalogItem entity.
// One record per image file observed in a watched directory, carrying the
// caption text and the caption-generation status.
type CatalogItem struct {
	ent.Schema
}

// Mixin of the CatalogItem.
func (CatalogItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimestampMixin{},
	}
}

// Fields of the CatalogItem.
func (CatalogItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("directory_id").
			Comment("References WatchedDirectory.ID"),
		field.String("filename").
			NotEmpty(),
		field.String("description").
			Optional().
			Nillable().
			Comment("Caption text delivered by the worker"),
		field.Enum("status").
			Values("not_started", "in_queue", "processing", "done", "failed", "removing").
			Default("not_started"),
	}
}

// Edges of the CatalogItem.
func (CatalogItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("directory", WatchedDirectory.Type).
			Ref("items").
			Unique().
			Required().
			Field("directory_id"),
		edge.To("tags", Tag.Type),
	}
}

// Indexes of the CatalogItem.
func (CatalogItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("directory_id", "filename").
			Unique(),
		index.Fields("status"),
	}
}

// Annotations of the CatalogItem.
func (CatalogItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "catalog_items"},
	}
}
