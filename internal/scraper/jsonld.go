package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const jobPostingType = "JobPosting"

// FindJobPosting scans the document's ld+json script blocks and returns the
// first object typed as a JobPosting. Blocks that fail to decode are skipped.
// Arrays and @graph containers are unwrapped so a posting anywhere inside
// them is found. First match wins; later blocks are not examined.
func FindJobPosting(doc *goquery.Document) (map[string]any, bool) {
	var posting map[string]any
	found := false

	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}
		data, err := decodeJSONLD(raw)
		if err != nil {
			return true
		}
		if p, ok := firstJobPosting(data); ok {
			posting = p
			found = true
			return false
		}
		return true
	})

	return posting, found
}

func decodeJSONLD(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "<!--")
	raw = strings.TrimSuffix(raw, "-->")
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, " ", "")

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func firstJobPosting(data any) (map[string]any, bool) {
	switch value := data.(type) {
	case []any:
		for _, item := range value {
			if p, ok := firstJobPosting(item); ok {
				return p, true
			}
		}
	case map[string]any:
		if typ, _ := value["@type"].(string); strings.EqualFold(typ, jobPostingType) {
			return value, true
		}
		if graph, ok := value["@graph"]; ok {
			return firstJobPosting(graph)
		}
	}
	return nil, false
}
