// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/ent/generated/watcheddirectory"
	"github.com/memedex/memedex/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	catalogitemMixin := schema.CatalogItem{}.Mixin()
	catalogitemMixinFields0 := catalogitemMixin[0].Fields()
	_ = catalogitemMixinFields0
	catalogitemFields := schema.CatalogItem{}.Fields()
	_ = catalogitemFields
	// catalogitemDescCreatedAt is the schema descriptor for created_at field.
	catalogitemDescCreatedAt := catalogitemMixinFields0[0].Descriptor()
	// catalogitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	catalogitem.DefaultCreatedAt = catalogitemDescCreatedAt.Default.(func() time.Time)
	// catalogitemDescUpdatedAt is the schema descriptor for updated_at field.
	catalogitemDescUpdatedAt := catalogitemMixinFields0[1].Descriptor()
	// catalogitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	catalogitem.DefaultUpdatedAt = catalogitemDescUpdatedAt.Default.(func() time.Time)
	// catalogitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	catalogitem.UpdateDefaultUpdatedAt = catalogitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// catalogitemDescFilename is the schema descriptor for filename field.
	catalogitemDescFilename := catalogitemFields[1].Descriptor()
	// catalogitem.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	catalogitem.FilenameValidator = catalogitemDescFilename.Validators[0].(func(string) error)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[0].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	watcheddirectoryMixin := schema.WatchedDirectory{}.Mixin()
	watcheddirectoryMixinFields0 := watcheddirectoryMixin[0].Fields()
	_ = watcheddirectoryMixinFields0
	watcheddirectoryFields := schema.WatchedDirectory{}.Fields()
	_ = watcheddirectoryFields
	// watcheddirectoryDescCreatedAt is the schema descriptor for created_at field.
	watcheddirectoryDescCreatedAt := watcheddirectoryMixinFields0[0].Descriptor()
	// watcheddirectory.DefaultCreatedAt holds the default value on creation for the created_at field.
	watcheddirectory.DefaultCreatedAt = watcheddirectoryDescCreatedAt.Default.(func() time.Time)
	// watcheddirectoryDescUpdatedAt is the schema descriptor for updated_at field.
	watcheddirectoryDescUpdatedAt := watcheddirectoryMixinFields0[1].Descriptor()
	// watcheddirectory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	watcheddirectory.DefaultUpdatedAt = watcheddirectoryDescUpdatedAt.Default.(func() time.Time)
	// watcheddirectory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	watcheddirectory.UpdateDefaultUpdatedAt = watcheddirectoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// watcheddirectoryDescName is the schema descriptor for name field.
	watcheddirectoryDescName := watcheddirectoryFields[0].Descriptor()
	// watcheddirectory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	watcheddirectory.NameValidator = watcheddirectoryDescName.Validators[0].(func(string) error)
	// watcheddirectoryDescCurrentlyScanning is the schema descriptor for currently_scanning field.
	watcheddirectoryDescCurrentlyScanning := watcheddirectoryFields[5].Descriptor()
	// watcheddirectory.DefaultCurrentlyScanning holds the default value on creation for the currently_scanning field.
	watcheddirectory.DefaultCurrentlyScanning = watcheddirectoryDescCurrentlyScanning.Default.(bool)
	// watcheddirectoryDescLastScanDurationMs is the schema descriptor for last_scan_duration_ms field.
	watcheddirectoryDescLastScanDurationMs := watcheddirectoryFields[6].Descriptor()
	// watcheddirectory.DefaultLastScanDurationMs holds the default value on creation for the last_scan_duration_ms field.
	watcheddirectory.DefaultLastScanDurationMs = watcheddirectoryDescLastScanDurationMs.Default.(int64)
}
