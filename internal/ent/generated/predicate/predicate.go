// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CatalogItem is the predicate function for catalogitem builders.
type CatalogItem func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// WatchedDirectory is the predicate function for watcheddirectory builders.
type WatchedDirectory func(*sql.Selector)
