// Code generated by ent, DO NOT EDIT.

package watcheddirectory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/memedex/memedex/internal/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldName, v))
}

// ScanFrequencyMinutes applies equality check predicate on the "scan_frequency_minutes" field. It's identical to ScanFrequencyMinutesEQ.
func ScanFrequencyMinutes(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldScanFrequencyMinutes, v))
}

// LastScannedAt applies equality check predicate on the "last_scanned_at" field. It's identical to LastScannedAtEQ.
func LastScannedAt(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldLastScannedAt, v))
}

// LastScanError applies equality check predicate on the "last_scan_error" field. It's identical to LastScanErrorEQ.
func LastScanError(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldLastScanError, v))
}

// CurrentlyScanning applies equality check predicate on the "currently_scanning" field. It's identical to CurrentlyScanningEQ.
func CurrentlyScanning(v bool) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldCurrentlyScanning, v))
}

// LastScanDurationMs applies equality check predicate on the "last_scan_duration_ms" field. It's identical to LastScanDurationMsEQ.
func LastScanDurationMs(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldLastScanDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldContainsFold(FieldName, v))
}

// ScanFrequencyMinutesEQ applies the EQ predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesEQ(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldScanFrequencyMinutes, v))
}

// ScanFrequencyMinutesNEQ applies the NEQ predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesNEQ(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldScanFrequencyMinutes, v))
}

// ScanFrequencyMinutesIn applies the In predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesIn(vs ...int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldScanFrequencyMinutes, vs...))
}

// ScanFrequencyMinutesNotIn applies the NotIn predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesNotIn(vs ...int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldScanFrequencyMinutes, vs...))
}

// ScanFrequencyMinutesGT applies the GT predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesGT(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldScanFrequencyMinutes, v))
}

// ScanFrequencyMinutesGTE applies the GTE predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesGTE(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldScanFrequencyMinutes, v))
}

// ScanFrequencyMinutesLT applies the LT predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesLT(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldScanFrequencyMinutes, v))
}

// ScanFrequencyMinutesLTE applies the LTE predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesLTE(v int) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldScanFrequencyMinutes, v))
}

// ScanFrequencyMinutesIsNil applies the IsNil predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesIsNil() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIsNull(FieldScanFrequencyMinutes))
}

// ScanFrequencyMinutesNotNil applies the NotNil predicate on the "scan_frequency_minutes" field.
func ScanFrequencyMinutesNotNil() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotNull(FieldScanFrequencyMinutes))
}

// LastScannedAtEQ applies the EQ predicate on the "last_scanned_at" field.
func LastScannedAtEQ(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldLastScannedAt, v))
}

// LastScannedAtNEQ applies the NEQ predicate on the "last_scanned_at" field.
func LastScannedAtNEQ(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldLastScannedAt, v))
}

// LastScannedAtIn applies the In predicate on the "last_scanned_at" field.
func LastScannedAtIn(vs ...time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldLastScannedAt, vs...))
}

// LastScannedAtNotIn applies the NotIn predicate on the "last_scanned_at" field.
func LastScannedAtNotIn(vs ...time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldLastScannedAt, vs...))
}

// LastScannedAtGT applies the GT predicate on the "last_scanned_at" field.
func LastScannedAtGT(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldLastScannedAt, v))
}

// LastScannedAtGTE applies the GTE predicate on the "last_scanned_at" field.
func LastScannedAtGTE(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldLastScannedAt, v))
}

// LastScannedAtLT applies the LT predicate on the "last_scanned_at" field.
func LastScannedAtLT(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldLastScannedAt, v))
}

// LastScannedAtLTE applies the LTE predicate on the "last_scanned_at" field.
func LastScannedAtLTE(v time.Time) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldLastScannedAt, v))
}

// LastScannedAtIsNil applies the IsNil predicate on the "last_scanned_at" field.
func LastScannedAtIsNil() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIsNull(FieldLastScannedAt))
}

// LastScannedAtNotNil applies the NotNil predicate on the "last_scanned_at" field.
func LastScannedAtNotNil() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotNull(FieldLastScannedAt))
}

// ScanStatusEQ applies the EQ predicate on the "scan_status" field.
func ScanStatusEQ(v ScanStatus) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldScanStatus, v))
}

// ScanStatusNEQ applies the NEQ predicate on the "scan_status" field.
func ScanStatusNEQ(v ScanStatus) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldScanStatus, v))
}

// ScanStatusIn applies the In predicate on the "scan_status" field.
func ScanStatusIn(vs ...ScanStatus) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldScanStatus, vs...))
}

// ScanStatusNotIn applies the NotIn predicate on the "scan_status" field.
func ScanStatusNotIn(vs ...ScanStatus) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldScanStatus, vs...))
}

// LastScanErrorEQ applies the EQ predicate on the "last_scan_error" field.
func LastScanErrorEQ(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldLastScanError, v))
}

// LastScanErrorNEQ applies the NEQ predicate on the "last_scan_error" field.
func LastScanErrorNEQ(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldLastScanError, v))
}

// LastScanErrorIn applies the In predicate on the "last_scan_error" field.
func LastScanErrorIn(vs ...string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldLastScanError, vs...))
}

// LastScanErrorNotIn applies the NotIn predicate on the "last_scan_error" field.
func LastScanErrorNotIn(vs ...string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldLastScanError, vs...))
}

// LastScanErrorGT applies the GT predicate on the "last_scan_error" field.
func LastScanErrorGT(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldLastScanError, v))
}

// LastScanErrorGTE applies the GTE predicate on the "last_scan_error" field.
func LastScanErrorGTE(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldLastScanError, v))
}

// LastScanErrorLT applies the LT predicate on the "last_scan_error" field.
func LastScanErrorLT(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldLastScanError, v))
}

// LastScanErrorLTE applies the LTE predicate on the "last_scan_error" field.
func LastScanErrorLTE(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldLastScanError, v))
}

// LastScanErrorContains applies the Contains predicate on the "last_scan_error" field.
func LastScanErrorContains(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldContains(FieldLastScanError, v))
}

// LastScanErrorHasPrefix applies the HasPrefix predicate on the "last_scan_error" field.
func LastScanErrorHasPrefix(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldHasPrefix(FieldLastScanError, v))
}

// LastScanErrorHasSuffix applies the HasSuffix predicate on the "last_scan_error" field.
func LastScanErrorHasSuffix(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldHasSuffix(FieldLastScanError, v))
}

// LastScanErrorIsNil applies the IsNil predicate on the "last_scan_error" field.
func LastScanErrorIsNil() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIsNull(FieldLastScanError))
}

// LastScanErrorNotNil applies the NotNil predicate on the "last_scan_error" field.
func LastScanErrorNotNil() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotNull(FieldLastScanError))
}

// LastScanErrorEqualFold applies the EqualFold predicate on the "last_scan_error" field.
func LastScanErrorEqualFold(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEqualFold(FieldLastScanError, v))
}

// LastScanErrorContainsFold applies the ContainsFold predicate on the "last_scan_error" field.
func LastScanErrorContainsFold(v string) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldContainsFold(FieldLastScanError, v))
}

// CurrentlyScanningEQ applies the EQ predicate on the "currently_scanning" field.
func CurrentlyScanningEQ(v bool) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldCurrentlyScanning, v))
}

// CurrentlyScanningNEQ applies the NEQ predicate on the "currently_scanning" field.
func CurrentlyScanningNEQ(v bool) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldCurrentlyScanning, v))
}

// LastScanDurationMsEQ applies the EQ predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsEQ(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldEQ(FieldLastScanDurationMs, v))
}

// LastScanDurationMsNEQ applies the NEQ predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsNEQ(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNEQ(FieldLastScanDurationMs, v))
}

// LastScanDurationMsIn applies the In predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsIn(vs ...int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldIn(FieldLastScanDurationMs, vs...))
}

// LastScanDurationMsNotIn applies the NotIn predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsNotIn(vs ...int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldNotIn(FieldLastScanDurationMs, vs...))
}

// LastScanDurationMsGT applies the GT predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsGT(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGT(FieldLastScanDurationMs, v))
}

// LastScanDurationMsGTE applies the GTE predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsGTE(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldGTE(FieldLastScanDurationMs, v))
}

// LastScanDurationMsLT applies the LT predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsLT(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLT(FieldLastScanDurationMs, v))
}

// LastScanDurationMsLTE applies the LTE predicate on the "last_scan_duration_ms" field.
func LastScanDurationMsLTE(v int64) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.FieldLTE(FieldLastScanDurationMs, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.WatchedDirectory {
	return predicate.WatchedDirectory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.CatalogItem) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WatchedDirectory) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WatchedDirectory) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WatchedDirectory) predicate.WatchedDirectory {
	return predicate.WatchedDirectory(sql.NotPredicates(p))
}
