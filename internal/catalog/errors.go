package catalog

import (
	"errors"
	"fmt"
)

// ErrPartialPersistence matches a save whose item row committed but whose
// entity or link writes did not all complete.
var ErrPartialPersistence = errors.New("partial persistence")

// PartialPersistenceError reports the step that failed after the item upsert.
type PartialPersistenceError struct {
	ItemID string
	Kind   EntityKind
	Name   string
	Err    error
}

func (e *PartialPersistenceError) Error() string {
	return fmt.Sprintf("item %s saved but %s %q failed: %v", e.ItemID, e.Kind, e.Name, e.Err)
}

func (e *PartialPersistenceError) Is(target error) bool {
	return target == ErrPartialPersistence
}

func (e *PartialPersistenceError) Unwrap() error {
	return e.Err
}

// ReconcileError names the entity that stopped a reconciliation.
type ReconcileError struct {
	Kind EntityKind
	Name string
	Step string // lookup, create, link
	Err  error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Step, e.Kind, e.Name, e.Err)
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}
