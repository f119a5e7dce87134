package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var droppedTags = []string{
	"script", "style", "noscript", "iframe", "object", "embed",
	"video", "audio", "svg", "canvas", "picture", "img",
	"nav", "header", "footer", "aside", "form",
}

// Substrings of class or id values that mark ad, share and chrome regions.
var boilerplateMarkers = []string{"ad-", "ads", "banner", "sns", "share", "footer", "header", "nav"}

// StripBoilerplate removes non-content elements from markup and returns the
// remaining body text with whitespace collapsed. It is a heuristic: matching
// is by substring so unrelated class names can be caught too.
func StripBoilerplate(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	doc.Find(strings.Join(droppedTags, ", ")).Remove()
	doc.Find("body *").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return isBoilerplate(s)
	}).Remove()

	var parts []string
	for _, n := range doc.Find("body").Nodes {
		collectText(n, &parts)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func isBoilerplate(s *goquery.Selection) bool {
	for _, attr := range []string{"class", "id"} {
		v, ok := s.Attr(attr)
		if !ok {
			continue
		}
		v = strings.ToLower(v)
		for _, m := range boilerplateMarkers {
			if strings.Contains(v, m) {
				return true
			}
		}
	}
	if role, ok := s.Attr("role"); ok && strings.EqualFold(strings.TrimSpace(role), "navigation") {
		return true
	}
	if label, ok := s.Attr("aria-label"); ok && strings.Contains(strings.ToLower(label), "breadcrumb") {
		return true
	}
	return false
}

// collectText appends every text node under n. Adjacent block elements are
// kept apart by joining the parts with spaces.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
