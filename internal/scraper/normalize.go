package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hackabby/interviewbot-backend/internal/models"
)

// NormalizeJobPosting maps a raw JobPosting object onto the fixed record
// shape. Values that are not strings are stringified; anything missing or
// null becomes an empty string. The three LLM-derived fields stay empty for
// the enrichment step.
func NormalizeJobPosting(data map[string]any) models.JobRecord {
	address := addressOf(data["jobLocation"])

	location := stringValue(address["addressLocality"])
	if location == "" {
		location = stringValue(address["addressRegion"])
	}

	return models.JobRecord{
		Title:          stringValue(data["title"]),
		Company:        companyName(data["hiringOrganization"]),
		Location:       location,
		Country:        stringValue(address["addressCountry"]),
		EmploymentType: stringValue(data["employmentType"]),
		DatePosted:     stringValue(data["datePosted"]),
		ValidThrough:   stringValue(data["validThrough"]),
		Description:    stringValue(data["description"]),
	}
}

// companyName reads hiringOrganization.name, falling back to the raw value
// when the organization is given as a bare string. Any other shape yields "".
func companyName(value any) string {
	switch v := value.(type) {
	case map[string]any:
		return stringValue(v["name"])
	case string:
		return strings.TrimSpace(v)
	}
	return ""
}

// addressOf unwraps jobLocation (object or list of places) down to its
// address object. Some sites skip the Place wrapper and inline the address.
func addressOf(value any) map[string]any {
	switch v := value.(type) {
	case []any:
		if len(v) > 0 {
			return addressOf(v[0])
		}
	case map[string]any:
		if addr, ok := v["address"].(map[string]any); ok {
			return addr
		}
		return v
	}
	return nil
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	case bool:
		return fmt.Sprintf("%t", v)
	case json.Number:
		return v.String()
	case map[string]any:
		// e.g. addressCountry given as {"@type": "Country", "name": "US"}
		return stringValue(v["name"])
	}
	return ""
}
