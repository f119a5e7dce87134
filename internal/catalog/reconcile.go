package catalog

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// NormalizeNames trims names, drops empty ones and removes exact duplicates,
// keeping first-seen order. Matching is case-sensitive.
func NormalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Reconciler resolves free-text entity names to canonical entities and links
// them to an item.
type Reconciler struct {
	store EntityStore
	log   *zap.Logger
}

func NewReconciler(store EntityStore, log *zap.Logger) *Reconciler {
	return &Reconciler{store: store, log: log}
}

// Reconcile links every normalized name in names to itemID. Names are
// processed sequentially; the first failing name stops the run and the
// entities linked so far are returned alongside a *ReconcileError.
//
// Lookup-then-create is not atomic across callers. Links are keyed by
// (itemID, entityID) so a repeated call never adds rows, and links to names
// absent from names are left in place.
func (r *Reconciler) Reconcile(ctx context.Context, kind EntityKind, itemID string, names []string) ([]Entity, error) {
	normalized := NormalizeNames(names)
	linked := make([]Entity, 0, len(normalized))

	for _, name := range normalized {
		ent, err := r.resolve(ctx, kind, name)
		if err != nil {
			return linked, err
		}
		if err := r.store.LinkEntity(ctx, kind, itemID, ent.ID); err != nil {
			return linked, &ReconcileError{Kind: kind, Name: name, Step: "link", Err: err}
		}
		linked = append(linked, ent)
	}

	r.log.Debug("reconciled entities",
		zap.String("kind", string(kind)),
		zap.String("item_id", itemID),
		zap.Int("count", len(linked)),
	)
	return linked, nil
}

func (r *Reconciler) resolve(ctx context.Context, kind EntityKind, name string) (Entity, error) {
	ent, err := r.store.FindEntity(ctx, kind, name)
	if err == nil {
		return ent, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Entity{}, &ReconcileError{Kind: kind, Name: name, Step: "lookup", Err: err}
	}

	ent, err = r.store.CreateEntity(ctx, kind, name)
	if err != nil {
		return Entity{}, &ReconcileError{Kind: kind, Name: name, Step: "create", Err: err}
	}
	r.log.Info("created entity",
		zap.String("kind", string(kind)),
		zap.String("name", name),
		zap.String("entity_id", ent.ID),
	)
	return ent, nil
}
