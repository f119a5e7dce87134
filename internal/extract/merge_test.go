package extract

import (
	"testing"

	"mangaapi/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult(t *testing.T) {
	p, err := ParseReply(`{
		"reading": " さんぷる ",
		"summary": "S",
		"good_reviews": ["1", "", "2", "3", "4", "5", "6"],
		"bad_reviews": "only one",
		"authors": "A, B ,, A",
		"venues": ["Weekly X", 7, " weekly x "],
		"amazon_link": "https://www.amazon.co.jp/dp/1",
		"wikipedia_link": "not a link",
		"official_link": 42,
		"sources": ["https://example.com"],
		"extra": "ignored"
	}`)
	require.NoError(t, err)

	r := DecodeResult(p)

	assert.Equal(t, "さんぷる", r.Reading)
	assert.Equal(t, "S", r.Summary)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, r.PositiveReviews)
	assert.Equal(t, []string{"only one"}, r.NegativeReviews)
	assert.Equal(t, []string{"A", "B"}, r.Authors)
	assert.Equal(t, []string{"Weekly X", "weekly x"}, r.Venues)
	assert.Equal(t, "https://www.amazon.co.jp/dp/1", r.AmazonLink)
	assert.Empty(t, r.WikipediaLink)
	assert.Empty(t, r.OfficialLink)
	assert.Equal(t, []string{"https://example.com"}, r.Sources)
}

func TestDecodeResult_MissingKeys(t *testing.T) {
	r := DecodeResult(Payload{})
	assert.Empty(t, r.Summary)
	assert.Empty(t, r.PositiveReviews)
	assert.NotNil(t, r.PositiveReviews)
}

func baseDraft() catalog.Draft {
	return catalog.Draft{
		Item: catalog.Item{
			ID:              "m1",
			Title:           "Sample Title",
			Summary:         "old summary",
			PositiveReviews: []string{"old good"},
			OfficialLink:    "https://official.example",
		},
		Authors: []string{"Old Author"},
	}
}

func TestMerge_OnlyNonEmptyFieldsWin(t *testing.T) {
	got := Merge(baseDraft(), Result{
		Summary:         "",
		PositiveReviews: []string{},
		NegativeReviews: []string{"bad"},
		Venues:          []string{"Weekly X"},
		Reading:         "さんぷる",
	})

	assert.Equal(t, "old summary", got.Item.Summary)
	assert.Equal(t, []string{"old good"}, got.Item.PositiveReviews)
	assert.Equal(t, []string{"bad"}, got.Item.NegativeReviews)
	assert.Equal(t, "https://official.example", got.Item.OfficialLink)
	assert.Equal(t, "さんぷる", got.Item.Reading)
	assert.Equal(t, []string{"Old Author"}, got.Authors)
	assert.Equal(t, []string{"Weekly X"}, got.Venues)
	assert.Equal(t, "m1", got.Item.ID)
	assert.Equal(t, "Sample Title", got.Item.Title)
}

func TestMerge_Idempotent(t *testing.T) {
	candidates := []Result{
		{},
		{Summary: "S", PositiveReviews: []string{"a", "b"}},
		{Authors: []string{"X"}, Sources: []string{"https://s.example"}, AmazonLink: "https://amazon.example"},
	}
	for _, c := range candidates {
		once := Merge(baseDraft(), c)
		twice := Merge(once, c)
		assert.Equal(t, once, twice)
	}
}

func TestMerge_DoesNotAliasCandidate(t *testing.T) {
	r := Result{PositiveReviews: []string{"a"}}
	got := Merge(baseDraft(), r)
	r.PositiveReviews[0] = "changed"
	assert.Equal(t, []string{"a"}, got.Item.PositiveReviews)
}

// Reply from a chat model wrapped in prose and a code fence.
func TestParseAndMerge_FencedReply(t *testing.T) {
	reply := "Here you go:\n```json\n{\"summary\":\"S\",\"good_reviews\":[\"a\",\"b\"]}\n```\nEnjoy!"

	p, err := ParseReply(reply)
	require.NoError(t, err)
	assert.Equal(t, Payload{"summary": "S", "good_reviews": []any{"a", "b"}}, p)

	got := Merge(catalog.Draft{Item: catalog.Item{Title: "Sample Title"}}, DecodeResult(p))
	assert.Equal(t, "S", got.Item.Summary)
	assert.Equal(t, []string{"a", "b"}, got.Item.PositiveReviews)
}
