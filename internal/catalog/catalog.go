// Package catalog keeps the image catalog in step with the filesystem.
// Each watched directory is a subdirectory of the library root; a scan
// diffs its files against the stored catalog items and reconciles both
// sides. Scans are serialized per directory through a database lock.
package catalog

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/events"
)

// Image file extensions recognized by the scanner, lowercase.
//
//nolint:gochecknoglobals // extension lookup table
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// IsImage reports whether the filename has a recognized image extension.
// The check is case-insensitive.
func IsImage(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Service synchronizes watched directories with the catalog.
type Service struct {
	db          *generated.Client
	libraryRoot string
	bus         *events.Bus
	logger      zerolog.Logger
}

// Option is a functional option for configuring the service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEventBus sets the event bus for publishing scan and item events.
func WithEventBus(bus *events.Bus) Option {
	return func(s *Service) {
		s.bus = bus
	}
}

// New creates a new catalog service.
func New(db *generated.Client, libraryRoot string, opts ...Option) *Service {
	s := &Service{
		db:          db,
		libraryRoot: libraryRoot,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) publish(event events.Event) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

func itemEvent(eventType events.Type, dir *generated.WatchedDirectory, item *generated.CatalogItem) events.Event {
	return events.Event{
		Type:    eventType,
		Subject: item,
		Data: map[string]any{
			"directory": dir.Name,
			"filename":  item.Filename,
		},
	}
}
