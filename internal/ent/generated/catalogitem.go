// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// CatalogItem is the model entity for the CatalogItem schema.
type CatalogItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// References WatchedDirectory.ID
	DirectoryID int `json:"directory_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Caption text delivered by the worker
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status catalogitem.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CatalogItemQuery when eager-loading is set.
	Edges        CatalogItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CatalogItemEdges holds the relations/edges for other nodes in the graph.
type CatalogItemEdges struct {
	// Directory holds the value of the directory edge.
	Directory *WatchedDirectory `json:"directory,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*Tag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DirectoryOrErr returns the Directory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CatalogItemEdges) DirectoryOrErr() (*WatchedDirectory, error) {
	if e.Directory != nil {
		return e.Directory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: watcheddirectory.Label}
	}
	return nil, &NotLoadedError{edge: "directory"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e CatalogItemEdges) TagsOrErr() ([]*Tag, error) {
	if e.loadedTypes[1] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogitem.FieldID, catalogitem.FieldDirectoryID:
			values[i] = new(sql.NullInt64)
		case catalogitem.FieldFilename, catalogitem.FieldDescription, catalogitem.FieldStatus:
			values[i] = new(sql.NullString)
		case catalogitem.FieldCreatedAt, catalogitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogItem fields.
func (_m *CatalogItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case catalogitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case catalogitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case catalogitem.FieldDirectoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field directory_id", values[i])
			} else if value.Valid {
				_m.DirectoryID = int(value.Int64)
			}
		case catalogitem.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case catalogitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case catalogitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = catalogitem.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogItem.
// This includes values selected through modifiers, order, etc.
func (_m *CatalogItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDirectory queries the "directory" edge of the CatalogItem entity.
func (_m *CatalogItem) QueryDirectory() *WatchedDirectoryQuery {
	return NewCatalogItemClient(_m.config).QueryDirectory(_m)
}

// QueryTags queries the "tags" edge of the CatalogItem entity.
func (_m *CatalogItem) QueryTags() *TagQuery {
	return NewCatalogItemClient(_m.config).QueryTags(_m)
}

// Update returns a builder for updating this CatalogItem.
// Note that you need to call CatalogItem.Unwrap() before calling this method if this CatalogItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CatalogItem) Update() *CatalogItemUpdateOne {
	return NewCatalogItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CatalogItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CatalogItem) Unwrap() *CatalogItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: CatalogItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CatalogItem) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("directory_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DirectoryID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// CatalogItems is a parsable slice of CatalogItem.
type CatalogItems []*CatalogItem
