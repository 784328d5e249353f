// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CatalogItemsColumns holds the columns for the "catalog_items" table.
	CatalogItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "filename", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_started", "in_queue", "processing", "done", "failed", "removing"}, Default: "not_started"},
		{Name: "directory_id", Type: field.TypeInt},
	}
	// CatalogItemsTable holds the schema information for the "catalog_items" table.
	CatalogItemsTable = &schema.Table{
		Name:       "catalog_items",
		Columns:    CatalogItemsColumns,
		PrimaryKey: []*schema.Column{CatalogItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "catalog_items_watched_directories_items",
				Columns:    []*schema.Column{CatalogItemsColumns[6]},
				RefColumns: []*schema.Column{WatchedDirectoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "catalogitem_directory_id_filename",
				Unique:  true,
				Columns: []*schema.Column{CatalogItemsColumns[6], CatalogItemsColumns[3]},
			},
			{
				Name:    "catalogitem_status",
				Unique:  false,
				Columns: []*schema.Column{CatalogItemsColumns[5]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}
	// WatchedDirectoriesColumns holds the columns for the "watched_directories" table.
	WatchedDirectoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "scan_frequency_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "last_scanned_at", Type: field.TypeTime, Nullable: true},
		{Name: "scan_status", Type: field.TypeEnum, Enums: []string{"idle", "scanning", "failed"}, Default: "idle"},
		{Name: "last_scan_error", Type: field.TypeString, Nullable: true},
		{Name: "currently_scanning", Type: field.TypeBool, Default: false},
		{Name: "last_scan_duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// WatchedDirectoriesTable holds the schema information for the "watched_directories" table.
	WatchedDirectoriesTable = &schema.Table{
		Name:       "watched_directories",
		Columns:    WatchedDirectoriesColumns,
		PrimaryKey: []*schema.Column{WatchedDirectoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "watcheddirectory_scan_status",
				Unique:  false,
				Columns: []*schema.Column{WatchedDirectoriesColumns[6]},
			},
		},
	}
	// CatalogItemTagsColumns holds the columns for the "catalog_item_tags" table.
	CatalogItemTagsColumns = []*schema.Column{
		{Name: "catalog_item_id", Type: field.TypeInt},
		{Name: "tag_id", Type: field.TypeInt},
	}
	// CatalogItemTagsTable holds the schema information for the "catalog_item_tags" table.
	CatalogItemTagsTable = &schema.Table{
		Name:       "catalog_item_tags",
		Columns:    CatalogItemTagsColumns,
		PrimaryKey: []*schema.Column{CatalogItemTagsColumns[0], CatalogItemTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "catalog_item_tags_catalog_item_id",
				Columns:    []*schema.Column{CatalogItemTagsColumns[0]},
				RefColumns: []*schema.Column{CatalogItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "catalog_item_tags_tag_id",
				Columns:    []*schema.Column{CatalogItemTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CatalogItemsTable,
		TagsTable,
		WatchedDirectoriesTable,
		CatalogItemTagsTable,
	}
)

func init() {
	CatalogItemsTable.ForeignKeys[0].RefTable = WatchedDirectoriesTable
	CatalogItemsTable.Annotation = &entsql.Annotation{
		Table: "catalog_items",
	}
	TagsTable.Annotation = &entsql.Annotation{
		Table: "tags",
	}
	WatchedDirectoriesTable.Annotation = &entsql.Annotation{
		Table: "watched_directories",
	}
	CatalogItemTagsTable.ForeignKeys[0].RefTable = CatalogItemsTable
	CatalogItemTagsTable.ForeignKeys[1].RefTable = TagsTable
}
