package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mangaapi/db/migrations"
	"mangaapi/internal/platform/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSQLiteRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(db.DB, migrations.SQLite))
	return NewSQLiteRepo(db, 5*time.Second)
}

func TestSQLiteRepo_ItemRoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	updated := time.Date(2024, 5, 1, 12, 30, 0, 123, time.UTC)
	stored, err := repo.UpsertItem(ctx, Item{
		Title:           "Sample Title",
		Reading:         "さんぷる",
		PositiveReviews: []string{"good one"},
		SourceURLs:      []string{"https://example.com"},
		OwnerID:         "user-1",
		UpdatedAt:       updated,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, []string{"good one"}, stored.PositiveReviews)
	assert.Equal(t, []string{}, stored.NegativeReviews)
	assert.True(t, updated.Equal(stored.UpdatedAt))

	got, err := repo.GetItem(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	stored.Summary = "updated"
	again, err := repo.UpsertItem(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, again.ID)
	assert.Equal(t, "updated", again.Summary)

	all, err := repo.ListItems(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteRepo_GetItem_NotFound(t *testing.T) {
	repo := newSQLiteRepo(t)

	_, err := repo.GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteItem(context.Background(), "missing"), ErrNotFound)
}

func TestSQLiteRepo_ListItems_OrderAndFilter(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, owner := range []string{"a", "b", "a"} {
		_, err := repo.UpsertItem(ctx, Item{
			ID:        string(rune('x' + i)),
			Title:     "t",
			OwnerID:   owner,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := repo.ListItems(ctx, ListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"z", "y", "x"}, []string{all[0].ID, all[1].ID, all[2].ID})

	owned, err := repo.ListItems(ctx, ListQuery{OwnerID: "a"})
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	limited, err := repo.ListItems(ctx, ListQuery{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "z", limited[0].ID)
}

func TestSQLiteRepo_CreateEntity_ExistingNameResolves(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	first, err := repo.CreateEntity(ctx, KindAuthor, "Author A")
	require.NoError(t, err)
	second, err := repo.CreateEntity(ctx, KindAuthor, "Author A")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	venue, err := repo.CreateEntity(ctx, KindVenue, "Author A")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, venue.ID)

	_, err = repo.CreateEntity(ctx, EntityKind("studio"), "x")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSQLiteRepo_Reconcile_IdempotentAndAppendOnly(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	rec := NewReconciler(repo, zap.NewNop())

	item, err := repo.UpsertItem(ctx, Item{Title: "t", UpdatedAt: time.Now()})
	require.NoError(t, err)

	_, err = rec.Reconcile(ctx, KindAuthor, item.ID, []string{"A", "B"})
	require.NoError(t, err)
	_, err = rec.Reconcile(ctx, KindAuthor, item.ID, []string{"A", "B"})
	require.NoError(t, err)

	n, err := repo.CountLinks(ctx, KindAuthor, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Dropping a name from the list keeps its link.
	_, err = rec.Reconcile(ctx, KindAuthor, item.ID, []string{"A"})
	require.NoError(t, err)
	linked, err := repo.ListLinked(ctx, KindAuthor, item.ID)
	require.NoError(t, err)
	require.Len(t, linked, 2)
	assert.Equal(t, "A", linked[0].Name)
	assert.Equal(t, "B", linked[1].Name)
}

func TestSQLiteRepo_DeleteCascadesLinks(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	rec := NewReconciler(repo, zap.NewNop())

	item, err := repo.UpsertItem(ctx, Item{Title: "t", UpdatedAt: time.Now()})
	require.NoError(t, err)
	_, err = rec.Reconcile(ctx, KindVenue, item.ID, []string{"Weekly X"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItem(ctx, item.ID))

	n, err := repo.CountLinks(ctx, KindVenue, item.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// The entity itself survives.
	_, err = repo.FindEntity(ctx, KindVenue, "Weekly X")
	assert.NoError(t, err)
}

func TestSQLiteRepo_ServiceSave(t *testing.T) {
	repo := newSQLiteRepo(t)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	res, err := svc.Save(ctx, Actor{UserID: "u1"}, Draft{
		Item:    Item{Title: " Sample Title ", PositiveReviews: []string{"x", " ", ""}},
		Authors: []string{"A", " a ", "A", "B"},
		Venues:  []string{"Weekly X", "", "weekly x", "Weekly X"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sample Title", res.Item.Title)
	assert.Equal(t, []string{"x"}, res.Item.PositiveReviews)
	assert.Len(t, res.Authors, 3)
	assert.Len(t, res.Venues, 2)

	detail, err := svc.Get(ctx, res.Item.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Authors, 3)
	assert.Len(t, detail.Venues, 2)
}
