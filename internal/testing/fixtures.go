package testing

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
)

// NewDirectory creates a watched directory with a random unique name.
func NewDirectory(t *testing.T, db *generated.Client) *generated.WatchedDirectory {
	t.Helper()

	name := fmt.Sprintf("%s-%d", gofakeit.Word(), gofakeit.Number(1000, 9999))
	dir, err := db.WatchedDirectory.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return dir
}

// NewItem creates a catalog item in the given directory with a random
// image filename and the given caption status.
func NewItem(t *testing.T, db *generated.Client, dir *generated.WatchedDirectory, status catalogitem.Status) *generated.CatalogItem {
	t.Helper()

	name := fmt.Sprintf("%s-%d.jpg", gofakeit.Word(), gofakeit.Number(1000, 9999))
	item, err := db.CatalogItem.Create().
		SetDirectoryID(dir.ID).
		SetFilename(name).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return item
}
