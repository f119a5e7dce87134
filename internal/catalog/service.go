package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// PublicListLimit caps the public listing, matching the home page grid.
const PublicListLimit = 100

// SaveResult is what a save persisted, complete or not.
type SaveResult struct {
	Item    Item     `json:"item" yaml:"item"`
	Authors []Entity `json:"authors" yaml:"authors"`
	Venues  []Entity `json:"venues" yaml:"venues"`
}

type Service struct {
	repo       Repository
	reconciler *Reconciler
	log        *zap.Logger
	now        func() time.Time
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		reconciler: NewReconciler(repo, log),
		log:        log,
		now:        time.Now,
	}
}

// Save upserts the draft's item and links its author and venue names.
//
// The writes are independent statements. When the item upsert fails nothing
// was stored and the error is returned as is. When a later entity or link
// write fails the returned SaveResult holds everything that was stored and
// the error is a *PartialPersistenceError.
func (s *Service) Save(ctx context.Context, actor Actor, d Draft) (SaveResult, error) {
	item := d.Item.Normalize()
	if item.Title == "" {
		return SaveResult{}, fmt.Errorf("%w: title is required", ErrInvalidItem)
	}

	if item.ID != "" {
		existing, err := s.repo.GetItem(ctx, item.ID)
		switch {
		case err == nil:
			if !actor.Admin && existing.OwnerID != "" && existing.OwnerID != actor.UserID {
				return SaveResult{}, ErrForbidden
			}
		case !errors.Is(err, ErrNotFound):
			return SaveResult{}, fmt.Errorf("load item: %w", err)
		}
	}

	item.OwnerID = actor.UserID
	item.UpdatedAt = s.now().UTC()

	stored, err := s.repo.UpsertItem(ctx, item)
	if err != nil {
		saveTotal.WithLabelValues("failed").Inc()
		return SaveResult{}, fmt.Errorf("upsert item: %w", err)
	}
	res := SaveResult{Item: stored, Authors: []Entity{}, Venues: []Entity{}}

	res.Authors, err = s.reconciler.Reconcile(ctx, KindAuthor, stored.ID, d.Authors)
	if err != nil {
		return res, s.partial(stored.ID, err)
	}
	res.Venues, err = s.reconciler.Reconcile(ctx, KindVenue, stored.ID, d.Venues)
	if err != nil {
		return res, s.partial(stored.ID, err)
	}

	saveTotal.WithLabelValues("ok").Inc()
	s.log.Info("saved item",
		zap.String("item_id", stored.ID),
		zap.String("user_id", actor.UserID),
		zap.Int("authors", len(res.Authors)),
		zap.Int("venues", len(res.Venues)),
	)
	return res, nil
}

func (s *Service) partial(itemID string, err error) error {
	saveTotal.WithLabelValues("partial").Inc()
	perr := &PartialPersistenceError{ItemID: itemID, Err: err}
	var rerr *ReconcileError
	if errors.As(err, &rerr) {
		perr.Kind = rerr.Kind
		perr.Name = rerr.Name
	}
	s.log.Error("partial save", zap.String("item_id", itemID), zap.Error(err))
	return perr
}

// Get returns the item with its linked authors and venues.
func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	authors, err := s.repo.ListLinked(ctx, KindAuthor, id)
	if err != nil {
		return Detail{}, fmt.Errorf("list authors: %w", err)
	}
	venues, err := s.repo.ListLinked(ctx, KindVenue, id)
	if err != nil {
		return Detail{}, fmt.Errorf("list venues: %w", err)
	}
	return Detail{Item: item, Authors: authors, Venues: venues}, nil
}

// List returns the newest items across all owners.
func (s *Service) List(ctx context.Context, limit int) ([]Item, error) {
	if limit <= 0 || limit > PublicListLimit {
		limit = PublicListLimit
	}
	return s.repo.ListItems(ctx, ListQuery{Limit: limit})
}

// ListForActor returns every item to an admin and only owned items otherwise.
func (s *Service) ListForActor(ctx context.Context, actor Actor) ([]Item, error) {
	q := ListQuery{}
	if !actor.Admin {
		q.OwnerID = actor.UserID
	}
	return s.repo.ListItems(ctx, q)
}

// Delete removes an item. Non-admin actors may only delete their own items.
func (s *Service) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.Admin {
		item, err := s.repo.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if item.OwnerID != actor.UserID {
			return ErrForbidden
		}
	}
	return s.repo.DeleteItem(ctx, id)
}
