package extract

import (
	"net/url"
	"strings"

	"mangaapi/internal/catalog"
)

// MaxReviews caps each review list taken from a reply.
const MaxReviews = 5

// Result is the typed view of a reply payload. It is never stored; callers
// apply it to a draft with Merge.
type Result struct {
	Reading         string   `json:"reading,omitempty" yaml:"reading,omitempty"`
	Summary         string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	PositiveReviews []string `json:"good_reviews" yaml:"good_reviews"`
	NegativeReviews []string `json:"bad_reviews" yaml:"bad_reviews"`
	Authors         []string `json:"authors" yaml:"authors"`
	Venues          []string `json:"venues" yaml:"venues"`
	AmazonLink      string   `json:"amazon_link,omitempty" yaml:"amazon_link,omitempty"`
	WikipediaLink   string   `json:"wikipedia_link,omitempty" yaml:"wikipedia_link,omitempty"`
	OfficialLink    string   `json:"official_link,omitempty" yaml:"official_link,omitempty"`
	Sources         []string `json:"sources" yaml:"sources"`
}

// DecodeResult reads the recognized keys of p. Values of the wrong type are
// treated as absent and unknown keys are ignored.
func DecodeResult(p Payload) Result {
	r := Result{
		Reading:         stringField(p, "reading"),
		Summary:         stringField(p, "summary"),
		PositiveReviews: capList(listField(p, "good_reviews", false), MaxReviews),
		NegativeReviews: capList(listField(p, "bad_reviews", false), MaxReviews),
		Authors:         catalog.NormalizeNames(listField(p, "authors", true)),
		Venues:          catalog.NormalizeNames(listField(p, "venues", true)),
		AmazonLink:      linkField(p, "amazon_link"),
		WikipediaLink:   linkField(p, "wikipedia_link"),
		OfficialLink:    linkField(p, "official_link"),
		Sources:         listField(p, "sources", false),
	}
	return r
}

func stringField(p Payload, key string) string {
	s, _ := p[key].(string)
	return strings.TrimSpace(s)
}

// listField accepts a JSON array of strings. A bare string counts as one
// entry, or as a comma separated list when split is set.
func listField(p Payload, key string, split bool) []string {
	switch v := p[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return catalog.CleanList(out)
	case string:
		if split {
			return catalog.SplitList(v)
		}
		return catalog.CleanList([]string{v})
	default:
		return []string{}
	}
}

func linkField(p Payload, key string) string {
	s := stringField(p, key)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return s
}

func capList(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
