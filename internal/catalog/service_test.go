package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *MockRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_Save_RequiresTitle(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Save(context.Background(), Actor{UserID: "u1"}, Draft{Item: Item{Title: "   "}})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestService_Save_NewItem(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, it Item) (Item, error) {
		assert.Equal(t, "Sample Title", it.Title)
		assert.Equal(t, "u1", it.OwnerID)
		assert.Equal(t, []string{"great"}, it.PositiveReviews)
		assert.Equal(t, svc.now(), it.UpdatedAt)
		it.ID = "m1"
		return it, nil
	})
	repo.EXPECT().FindEntity(ctx, KindAuthor, "Author A").Return(Entity{}, ErrNotFound)
	repo.EXPECT().CreateEntity(ctx, KindAuthor, "Author A").Return(Entity{ID: "a1", Kind: KindAuthor, Name: "Author A"}, nil)
	repo.EXPECT().LinkEntity(ctx, KindAuthor, "m1", "a1").Return(nil)

	res, err := svc.Save(ctx, Actor{UserID: "u1"}, Draft{
		Item:    Item{Title: "Sample Title", PositiveReviews: []string{"great", "", "  "}},
		Authors: []string{"Author A"},
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", res.Item.ID)
	assert.Len(t, res.Authors, 1)
	assert.Empty(t, res.Venues)
}

func TestService_Save_ForbiddenForOtherOwner(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetItem(ctx, "m1").Return(Item{ID: "m1", OwnerID: "someone-else"}, nil)

	_, err := svc.Save(ctx, Actor{UserID: "u1"}, Draft{Item: Item{ID: "m1", Title: "t"}})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Save_AdminMayEditAnyItem(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetItem(ctx, "m1").Return(Item{ID: "m1", OwnerID: "someone-else"}, nil)
	repo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, it Item) (Item, error) {
		return it, nil
	})

	res, err := svc.Save(ctx, Actor{UserID: "admin", Admin: true}, Draft{Item: Item{ID: "m1", Title: "t"}})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Item.OwnerID)
}

func TestService_Save_UpsertFailureStoresNothing(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(Item{}, errors.New("db down"))

	_, err := svc.Save(ctx, Actor{UserID: "u1"}, Draft{Item: Item{Title: "t"}, Authors: []string{"A"}})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrPartialPersistence))
}

func TestService_Save_PartialPersistence(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, it Item) (Item, error) {
		it.ID = "m1"
		return it, nil
	})
	repo.EXPECT().FindEntity(ctx, KindAuthor, "A").Return(Entity{ID: "a1", Kind: KindAuthor, Name: "A"}, nil)
	repo.EXPECT().LinkEntity(ctx, KindAuthor, "m1", "a1").Return(nil)
	repo.EXPECT().FindEntity(ctx, KindVenue, "Weekly X").Return(Entity{}, ErrNotFound)
	repo.EXPECT().CreateEntity(ctx, KindVenue, "Weekly X").Return(Entity{}, errors.New("disk full"))

	res, err := svc.Save(ctx, Actor{UserID: "u1"}, Draft{
		Item:    Item{Title: "t"},
		Authors: []string{"A"},
		Venues:  []string{"Weekly X"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialPersistence)

	var perr *PartialPersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "m1", perr.ItemID)
	assert.Equal(t, KindVenue, perr.Kind)
	assert.Equal(t, "Weekly X", perr.Name)

	assert.Equal(t, "m1", res.Item.ID)
	assert.Len(t, res.Authors, 1)
	assert.Empty(t, res.Venues)
}

func TestService_List_CapsLimit(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListItems(ctx, ListQuery{Limit: PublicListLimit}).Return([]Item{}, nil).Times(2)

	_, err := svc.List(ctx, 0)
	require.NoError(t, err)
	_, err = svc.List(ctx, 5000)
	require.NoError(t, err)
}

func TestService_ListForActor(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListItems(ctx, ListQuery{}).Return([]Item{{ID: "a"}, {ID: "b"}}, nil)
	repo.EXPECT().ListItems(ctx, ListQuery{OwnerID: "u1"}).Return([]Item{{ID: "a"}}, nil)

	all, err := svc.ListForActor(ctx, Actor{UserID: "admin", Admin: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListForActor(ctx, Actor{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestService_Delete(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		svc, repo := newTestService(t)
		ctx := context.Background()
		repo.EXPECT().GetItem(ctx, "m1").Return(Item{ID: "m1", OwnerID: "u1"}, nil)
		repo.EXPECT().DeleteItem(ctx, "m1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, Actor{UserID: "u1"}, "m1"))
	})

	t.Run("other owner", func(t *testing.T) {
		svc, repo := newTestService(t)
		ctx := context.Background()
		repo.EXPECT().GetItem(ctx, "m1").Return(Item{ID: "m1", OwnerID: "u2"}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, Actor{UserID: "u1"}, "m1"), ErrForbidden)
	})

	t.Run("admin skips ownership check", func(t *testing.T) {
		svc, repo := newTestService(t)
		ctx := context.Background()
		repo.EXPECT().DeleteItem(ctx, "m1").Return(ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, Actor{UserID: "admin", Admin: true}, "m1"), ErrNotFound)
	})
}

func TestService_Get(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().GetItem(ctx, "m1").Return(Item{ID: "m1", Title: "t"}, nil)
	repo.EXPECT().ListLinked(ctx, KindAuthor, "m1").Return([]Entity{{ID: "a1", Kind: KindAuthor, Name: "A"}}, nil)
	repo.EXPECT().ListLinked(ctx, KindVenue, "m1").Return([]Entity{}, nil)

	d, err := svc.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "t", d.Item.Title)
	assert.Len(t, d.Authors, 1)
	assert.Empty(t, d.Venues)
}
