package catalog

import (
	"context"
)

//go:generate mockgen -destination=mock_repository.go -package=catalog mangaapi/internal/catalog Repository

// ItemStore persists catalog items.
type ItemStore interface {
	// GetItem returns ErrNotFound when no item has the id.
	GetItem(ctx context.Context, id string) (Item, error)
	// UpsertItem inserts or replaces the item by id and returns the stored
	// record. An empty id is assigned by the store.
	UpsertItem(ctx context.Context, item Item) (Item, error)
	// ListItems returns items ordered by UpdatedAt, newest first.
	ListItems(ctx context.Context, q ListQuery) ([]Item, error)
	// DeleteItem returns ErrNotFound when nothing was deleted.
	DeleteItem(ctx context.Context, id string) error
}

// EntityStore persists authors, venues and their links to items.
type EntityStore interface {
	// FindEntity matches name exactly and returns ErrNotFound when absent.
	FindEntity(ctx context.Context, kind EntityKind, name string) (Entity, error)
	// CreateEntity inserts a new entity. A name that already exists resolves
	// to the existing row.
	CreateEntity(ctx context.Context, kind EntityKind, name string) (Entity, error)
	// LinkEntity is idempotent on (itemID, entityID).
	LinkEntity(ctx context.Context, kind EntityKind, itemID, entityID string) error
	// ListLinked returns the entities linked to itemID ordered by name.
	ListLinked(ctx context.Context, kind EntityKind, itemID string) ([]Entity, error)
}

// Repository is the full store capability used by the service.
type Repository interface {
	ItemStore
	EntityStore
}
