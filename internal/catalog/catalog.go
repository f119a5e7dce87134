package catalog

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when an item or entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the actor may not modify an item.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidItem is returned when an item fails basic checks on save.
	ErrInvalidItem = errors.New("invalid item")
	// ErrUnknownKind is returned for an entity kind without a backing table.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// Item is one manga title in the catalog.
type Item struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Reading         string    `json:"reading,omitempty" yaml:"reading,omitempty"`
	CoverURL        string    `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`
	Summary         string    `json:"summary,omitempty" yaml:"summary,omitempty"`
	PositiveReviews []string  `json:"good_reviews" yaml:"good_reviews"`
	NegativeReviews []string  `json:"bad_reviews" yaml:"bad_reviews"`
	AmazonLink      string    `json:"amazon_link,omitempty" yaml:"amazon_link,omitempty"`
	WikipediaLink   string    `json:"wikipedia_link,omitempty" yaml:"wikipedia_link,omitempty"`
	OfficialLink    string    `json:"official_link,omitempty" yaml:"official_link,omitempty"`
	SourceURLs      []string  `json:"source_urls" yaml:"source_urls"`
	OwnerID         string    `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
}

// Normalize trims scalar fields and drops empty entries from list fields.
func (it Item) Normalize() Item {
	it.ID = strings.TrimSpace(it.ID)
	it.Title = strings.TrimSpace(it.Title)
	it.Reading = strings.TrimSpace(it.Reading)
	it.CoverURL = strings.TrimSpace(it.CoverURL)
	it.Summary = strings.TrimSpace(it.Summary)
	it.AmazonLink = strings.TrimSpace(it.AmazonLink)
	it.WikipediaLink = strings.TrimSpace(it.WikipediaLink)
	it.OfficialLink = strings.TrimSpace(it.OfficialLink)
	it.PositiveReviews = CleanList(it.PositiveReviews)
	it.NegativeReviews = CleanList(it.NegativeReviews)
	it.SourceURLs = CleanList(it.SourceURLs)
	return it
}

// EntityKind selects one of the disjoint entity sets.
type EntityKind string

const (
	KindAuthor EntityKind = "author"
	KindVenue  EntityKind = "venue"
)

// Entity is a named party (author or publication venue) linkable to items.
type Entity struct {
	ID   string     `json:"id" yaml:"id"`
	Kind EntityKind `json:"kind" yaml:"kind"`
	Name string     `json:"name" yaml:"name"`
}

// Link associates an item with an entity. (ItemID, EntityID) is unique.
type Link struct {
	ItemID   string     `json:"item_id" yaml:"item_id"`
	EntityID string     `json:"entity_id" yaml:"entity_id"`
	Kind     EntityKind `json:"kind" yaml:"kind"`
}

// Draft is an in-progress edit: the item plus the free-text name lists
// that are reconciled into author and venue links on save.
type Draft struct {
	Item    Item     `json:"item" yaml:"item"`
	Authors []string `json:"authors" yaml:"authors"`
	Venues  []string `json:"venues" yaml:"venues"`
}

// Detail is an item together with its linked entities.
type Detail struct {
	Item    Item     `json:"item" yaml:"item"`
	Authors []Entity `json:"authors" yaml:"authors"`
	Venues  []Entity `json:"venues" yaml:"venues"`
}

// ListQuery filters an ordered scan of items. An empty OwnerID lists all owners.
type ListQuery struct {
	OwnerID string
	Limit   int
}

// Actor is the authenticated caller of an editor operation.
type Actor struct {
	UserID string
	Admin  bool
}

// CleanList trims every entry and drops the empty ones, keeping order.
func CleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitList parses a comma separated form value into a cleaned list.
func SplitList(s string) []string {
	return CleanList(strings.Split(s, ","))
}
