// Code generated by ent, DO NOT EDIT.

package watcheddirectory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the watcheddirectory type in the database.
	Label = "watched_directory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldScanFrequencyMinutes holds the string denoting the scan_frequency_minutes field in the database.
	FieldScanFrequencyMinutes = "scan_frequency_minutes"
	// FieldLastScannedAt holds the string denoting the last_scanned_at field in the database.
	FieldLastScannedAt = "last_scanned_at"
	// FieldScanStatus holds the string denoting the scan_status field in the database.
	FieldScanStatus = "scan_status"
	// FieldLastScanError holds the string denoting the last_scan_error field in the database.
	FieldLastScanError = "last_scan_error"
	// FieldCurrentlyScanning holds the string denoting the currently_scanning field in the database.
	FieldCurrentlyScanning = "currently_scanning"
	// FieldLastScanDurationMs holds the string denoting the last_scan_duration_ms field in the database.
	FieldLastScanDurationMs = "last_scan_duration_ms"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the watcheddirectory in the database.
	Table = "watched_directories"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "catalog_items"
	// ItemsInverseTable is the table name for the CatalogItem entity.
	// It exists in this package in order to avoid circular dependency with the "catalogitem" package.
	ItemsInverseTable = "catalog_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "directory_id"
)

// Columns holds all SQL columns for watcheddirectory fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldScanFrequencyMinutes,
	FieldLastScannedAt,
	FieldScanStatus,
	FieldLastScanError,
	FieldCurrentlyScanning,
	FieldLastScanDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCurrentlyScanning holds the default value on creation for the "currently_scanning" field.
	DefaultCurrentlyScanning bool
	// DefaultLastScanDurationMs holds the default value on creation for the "last_scan_duration_ms" field.
	DefaultLastScanDurationMs int64
)

// ScanStatus defines the type for the "scan_status" enum field.
type ScanStatus string

// ScanStatusIdle is the default value of the ScanStatus enum.
const DefaultScanStatus = ScanStatusIdle

// ScanStatus values.
const (
	ScanStatusIdle     ScanStatus = "idle"
	ScanStatusScanning ScanStatus = "scanning"
	ScanStatusFailed   ScanStatus = "failed"
)

func (ss ScanStatus) String() string {
	return string(ss)
}

// ScanStatusValidator is a validator for the "scan_status" field enum values. It is called by the builders before save.
func ScanStatusValidator(ss ScanStatus) error {
	switch ss {
	case ScanStatusIdle, ScanStatusScanning, ScanStatusFailed:
		return nil
	default:
		return fmt.Errorf("watcheddirectory: invalid enum value for scan_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the WatchedDirectory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByScanFrequencyMinutes orders the results by the scan_frequency_minutes field.
func ByScanFrequencyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanFrequencyMinutes, opts...).ToFunc()
}

// ByLastScannedAt orders the results by the last_scanned_at field.
func ByLastScannedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScannedAt, opts...).ToFunc()
}

// ByScanStatus orders the results by the scan_status field.
func ByScanStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanStatus, opts...).ToFunc()
}

// ByLastScanError orders the results by the last_scan_error field.
func ByLastScanError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScanError, opts...).ToFunc()
}

// ByCurrentlyScanning orders the results by the currently_scanning field.
func ByCurrentlyScanning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentlyScanning, opts...).ToFunc()
}

// ByLastScanDurationMs orders the results by the last_scan_duration_ms field.
func ByLastScanDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScanDurationMs, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
