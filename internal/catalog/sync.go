package catalog

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/events"
	"github.com/memedex/memedex/internal/fileutil"
)

// Result summarizes a completed directory sync.
type Result struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Sync reconciles a watched directory with its catalog items. Files on disk
// with a recognized image extension that are missing from the catalog are
// created; catalog items whose file no longer exists are deleted. A missing
// directory is skipped without touching its items, so an unmounted library
// does not wipe the catalog.
//
// Sync is idempotent: running it twice against an unchanged directory makes
// no changes the second time.
func (s *Service) Sync(ctx context.Context, dir *generated.WatchedDirectory) (Result, error) {
	path, err := fileutil.SafeJoin(s.libraryRoot, dir.Name)
	if err != nil {
		return Result{}, err
	}

	onDisk, err := listImages(path)
	if err != nil {
		// A missing or unreadable directory is not a scan failure.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			s.logger.Warn().
				Err(err).
				Str("directory", dir.Name).
				Str("path", path).
				Msg("watched directory unavailable, skipping")
			return Result{}, nil
		}
		return Result{}, err
	}

	existing, err := s.db.CatalogItem.Query().
		Where(catalogitem.DirectoryID(dir.ID)).
		All(ctx)
	if err != nil {
		return Result{}, err
	}

	inCatalog := make(map[string]*generated.CatalogItem, len(existing))
	for _, item := range existing {
		inCatalog[item.Filename] = item
	}

	var result Result

	for _, name := range sortedKeys(onDisk) {
		if _, ok := inCatalog[name]; ok {
			continue
		}

		item, err := s.db.CatalogItem.Create().
			SetDirectoryID(dir.ID).
			SetFilename(name).
			Save(ctx)
		if err != nil {
			return result, err
		}

		result.Added++
		s.logger.Debug().
			Str("directory", dir.Name).
			Str("filename", name).
			Msg("cataloged new image")
		s.publish(itemEvent(events.ItemCreated, dir, item))
	}

	for _, item := range existing {
		if onDisk[item.Filename] {
			continue
		}

		if err := s.db.CatalogItem.DeleteOne(item).Exec(ctx); err != nil {
			return result, err
		}

		result.Removed++
		s.logger.Debug().
			Str("directory", dir.Name).
			Str("filename", item.Filename).
			Msg("removed vanished image from catalog")
		s.publish(itemEvent(events.ItemRemoved, dir, item))
	}

	return result, nil
}

// listImages returns the image filenames directly under path.
// Subdirectories are not descended into.
func listImages(path string) (map[string]bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsImage(entry.Name()) {
			continue
		}
		names[entry.Name()] = true
	}

	return names, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
