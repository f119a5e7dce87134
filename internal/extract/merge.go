package extract

import (
	"slices"

	"mangaapi/internal/catalog"
)

// Merge applies r onto base field by field. A field of r replaces the base
// value only when it is a non-empty string or list, so merging the same
// result twice changes nothing the second time.
func Merge(base catalog.Draft, r Result) catalog.Draft {
	out := base
	it := &out.Item

	setString(&it.Reading, r.Reading)
	setString(&it.Summary, r.Summary)
	setString(&it.AmazonLink, r.AmazonLink)
	setString(&it.WikipediaLink, r.WikipediaLink)
	setString(&it.OfficialLink, r.OfficialLink)
	setList(&it.PositiveReviews, r.PositiveReviews)
	setList(&it.NegativeReviews, r.NegativeReviews)
	setList(&it.SourceURLs, r.Sources)
	setList(&out.Authors, r.Authors)
	setList(&out.Venues, r.Venues)
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setList(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = slices.Clone(v)
	}
}
