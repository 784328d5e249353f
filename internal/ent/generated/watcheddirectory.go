// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
)

// WatchedDirectory is the model entity for the WatchedDirectory schema.
type WatchedDirectory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Subdirectory name under the library root
	Name string `json:"name,omitempty"`
	// Nil disables automatic scanning
	ScanFrequencyMinutes *int `json:"scan_frequency_minutes,omitempty"`
	// LastScannedAt holds the value of the "last_scanned_at" field.
	LastScannedAt *time.Time `json:"last_scanned_at,omitempty"`
	// ScanStatus holds the value of the "scan_status" field.
	ScanStatus watcheddirectory.ScanStatus `json:"scan_status,omitempty"`
	// LastScanError holds the value of the "last_scan_error" field.
	LastScanError *string `json:"last_scan_error,omitempty"`
	// Per-directory scan lock, flipped with a conditional update
	CurrentlyScanning bool `json:"currently_scanning,omitempty"`
	// LastScanDurationMs holds the value of the "last_scan_duration_ms" field.
	LastScanDurationMs int64 `json:"last_scan_duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WatchedDirectoryQuery when eager-loading is set.
	Edges        WatchedDirectoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WatchedDirectoryEdges holds the relations/edges for other nodes in the graph.
type WatchedDirectoryEdges struct {
	// Items holds the value of the items edge.
	Items []*CatalogItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e WatchedDirectoryEdges) ItemsOrErr() ([]*CatalogItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WatchedDirectory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case watcheddirectory.FieldCurrentlyScanning:
			values[i] = new(sql.NullBool)
		case watcheddirectory.FieldID, watcheddirectory.FieldScanFrequencyMinutes, watcheddirectory.FieldLastScanDurationMs:
			values[i] = new(sql.NullInt64)
		case watcheddirectory.FieldName, watcheddirectory.FieldScanStatus, watcheddirectory.FieldLastScanError:
			values[i] = new(sql.NullString)
		case watcheddirectory.FieldCreatedAt, watcheddirectory.FieldUpdatedAt, watcheddirectory.FieldLastScannedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WatchedDirectory fields.
func (_m *WatchedDirectory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case watcheddirectory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case watcheddirectory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case watcheddirectory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case watcheddirectory.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case watcheddirectory.FieldScanFrequencyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scan_frequency_minutes", values[i])
			} else if value.Valid {
				_m.ScanFrequencyMinutes = new(int)
				*_m.ScanFrequencyMinutes = int(value.Int64)
			}
		case watcheddirectory.FieldLastScannedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_scanned_at", values[i])
			} else if value.Valid {
				_m.LastScannedAt = new(time.Time)
				*_m.LastScannedAt = value.Time
			}
		case watcheddirectory.FieldScanStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_status", values[i])
			} else if value.Valid {
				_m.ScanStatus = watcheddirectory.ScanStatus(value.String)
			}
		case watcheddirectory.FieldLastScanError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_scan_error", values[i])
			} else if value.Valid {
				_m.LastScanError = new(string)
				*_m.LastScanError = value.String
			}
		case watcheddirectory.FieldCurrentlyScanning:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field currently_scanning", values[i])
			} else if value.Valid {
				_m.CurrentlyScanning = value.Bool
			}
		case watcheddirectory.FieldLastScanDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_scan_duration_ms", values[i])
			} else if value.Valid {
				_m.LastScanDurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WatchedDirectory.
// This includes values selected through modifiers, order, etc.
func (_m *WatchedDirectory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the WatchedDirectory entity.
func (_m *WatchedDirectory) QueryItems() *CatalogItemQuery {
	return NewWatchedDirectoryClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this WatchedDirectory.
// Note that you need to call WatchedDirectory.Unwrap() before calling this method if this WatchedDirectory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WatchedDirectory) Update() *WatchedDirectoryUpdateOne {
	return NewWatchedDirectoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WatchedDirectory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WatchedDirectory) Unwrap() *WatchedDirectory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: WatchedDirectory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WatchedDirectory) String() string {
	var builder strings.Builder
	builder.WriteString("WatchedDirectory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.ScanFrequencyMinutes; v != nil {
		builder.WriteString("scan_frequency_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastScannedAt; v != nil {
		builder.WriteString("last_scanned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("scan_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScanStatus))
	builder.WriteString(", ")
	if v := _m.LastScanError; v != nil {
		builder.WriteString("last_scan_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("currently_scanning=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentlyScanning))
	builder.WriteString(", ")
	builder.WriteString("last_scan_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastScanDurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// WatchedDirectories is a parsable slice of WatchedDirectory.
type WatchedDirectories []*WatchedDirectory
