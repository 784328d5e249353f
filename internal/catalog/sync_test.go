package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/events"
	testutil "github.com/memedex/memedex/internal/testing"
)

// harness bundles the pieces a catalog test needs.
type harness struct {
	db      *generated.Client
	root    string
	bus     *events.Bus
	service *catalog.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := testutil.NewTestDB(t)
	root := t.TempDir()
	bus := events.New()
	t.Cleanup(bus.Close)

	return &harness{
		db:      db,
		root:    root,
		bus:     bus,
		service: catalog.New(db, root, catalog.WithEventBus(bus)),
	}
}

// newDirectoryOnDisk creates a watched directory record and its backing
// directory under the library root.
func (h *harness) newDirectoryOnDisk(t *testing.T) *generated.WatchedDirectory {
	t.Helper()

	dir := testutil.NewDirectory(t, h.db)
	require.NoError(t, os.Mkdir(filepath.Join(h.root, dir.Name), 0755))
	return dir
}

func (h *harness) writeFile(t *testing.T, dir *generated.WatchedDirectory, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.root, dir.Name, name), []byte("x"), 0644))
}

func (h *harness) filenames(t *testing.T, dir *generated.WatchedDirectory) []string {
	t.Helper()

	names, err := h.db.CatalogItem.Query().
		Where(catalogitem.DirectoryID(dir.ID)).
		Order(generated.Asc(catalogitem.FieldFilename)).
		Select(catalogitem.FieldFilename).
		Strings(context.Background())
	require.NoError(t, err)
	return names
}

func TestIsImage(t *testing.T) {
	assert.True(t, catalog.IsImage("cat.jpg"))
	assert.True(t, catalog.IsImage("cat.jpeg"))
	assert.True(t, catalog.IsImage("cat.png"))
	assert.True(t, catalog.IsImage("cat.webp"))
	assert.True(t, catalog.IsImage("CAT.JPG"))
	assert.True(t, catalog.IsImage("cat.PnG"))

	assert.False(t, catalog.IsImage("cat.gif"))
	assert.False(t, catalog.IsImage("cat.txt"))
	assert.False(t, catalog.IsImage("cat"))
	assert.False(t, catalog.IsImage(""))
}

func TestSync(t *testing.T) {
	t.Run("AddsNewImages", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")
		h.writeFile(t, dir, "dog.png")

		result, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, catalog.Result{Added: 2, Removed: 0}, result)
		assert.Equal(t, []string{"cat.jpg", "dog.png"}, h.filenames(t, dir))
	})

	t.Run("NewItemsStartNotStarted", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")

		_, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)

		item, err := h.db.CatalogItem.Query().
			Where(catalogitem.DirectoryID(dir.ID)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalogitem.StatusNotStarted, item.Status)
	})

	t.Run("RemovesVanishedItems", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")

		_, err := h.db.CatalogItem.Create().
			SetDirectoryID(dir.ID).
			SetFilename("old.jpg").
			Save(context.Background())
		require.NoError(t, err)

		result, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, catalog.Result{Added: 1, Removed: 1}, result)
		assert.Equal(t, []string{"cat.jpg"}, h.filenames(t, dir))
	})

	t.Run("IgnoresNonImagesAndSubdirectories", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")
		h.writeFile(t, dir, "notes.txt")
		require.NoError(t, os.Mkdir(filepath.Join(h.root, dir.Name, "nested"), 0755))

		result, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, catalog.Result{Added: 1}, result)
	})

	t.Run("CaseInsensitiveExtensions", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "SHOUTING.JPG")
		h.writeFile(t, dir, "mixed.WebP")

		result, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Added)
	})

	t.Run("Idempotent", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")

		first, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, catalog.Result{Added: 1}, first)

		second, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, catalog.Result{}, second)
	})

	t.Run("MissingDirectoryIsSoftNoOp", func(t *testing.T) {
		h := newHarness(t)
		dir := testutil.NewDirectory(t, h.db) // no directory on disk

		item, err := h.db.CatalogItem.Create().
			SetDirectoryID(dir.ID).
			SetFilename("keep.jpg").
			Save(context.Background())
		require.NoError(t, err)

		result, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, catalog.Result{}, result)

		// Existing items survive a missing mount.
		_, err = h.db.CatalogItem.Get(context.Background(), item.ID)
		assert.NoError(t, err)
	})

	t.Run("PublishesItemEvents", func(t *testing.T) {
		h := newHarness(t)
		dir := h.newDirectoryOnDisk(t)
		h.writeFile(t, dir, "cat.jpg")

		sub := h.bus.Subscribe(events.ItemCreated)

		_, err := h.service.Sync(context.Background(), dir)
		require.NoError(t, err)

		select {
		case event := <-sub:
			assert.Equal(t, events.ItemCreated, event.Type)
			assert.Equal(t, "cat.jpg", event.Data["filename"])
		default:
			t.Fatal("expected item.created event")
		}
	})
}
