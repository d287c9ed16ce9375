package scraper

import "testing"

func TestNormalizeJobPosting_FullRecord(t *testing.T) {
	data := map[string]any{
		"@type":          "JobPosting",
		"title":          "Engineer",
		"hiringOrganization": map[string]any{"name": "Acme"},
		"jobLocation": map[string]any{
			"address": map[string]any{
				"addressLocality": "Remote",
				"addressCountry":  "US",
			},
		},
		"employmentType": "FULL_TIME",
		"datePosted":     "2025-01-15",
		"validThrough":   "2025-03-15",
		"description":    "We build things.",
	}

	record := NormalizeJobPosting(data)

	if record.Title != "Engineer" {
		t.Fatalf("unexpected title: %q", record.Title)
	}
	if record.Company != "Acme" {
		t.Fatalf("unexpected company: %q", record.Company)
	}
	if record.Location != "Remote" {
		t.Fatalf("unexpected location: %q", record.Location)
	}
	if record.Country != "US" {
		t.Fatalf("unexpected country: %q", record.Country)
	}
	if record.EmploymentType != "FULL_TIME" {
		t.Fatalf("unexpected employment type: %q", record.EmploymentType)
	}
	if record.DatePosted != "2025-01-15" {
		t.Fatalf("unexpected date posted: %q", record.DatePosted)
	}
	if record.ValidThrough != "2025-03-15" {
		t.Fatalf("unexpected valid through: %q", record.ValidThrough)
	}
	if record.Description != "We build things." {
		t.Fatalf("unexpected description: %q", record.Description)
	}
	if record.AboutCompany != "" || record.Responsibility != "" || record.Requirement != "" {
		t.Fatal("LLM-derived fields must stay empty after normalization")
	}
}

func TestNormalizeJobPosting_MissingFieldsBecomeEmpty(t *testing.T) {
	record := NormalizeJobPosting(map[string]any{"@type": "JobPosting"})

	for name, got := range map[string]string{
		"title":           record.Title,
		"company":         record.Company,
		"location":        record.Location,
		"country":         record.Country,
		"employment_type": record.EmploymentType,
		"date_posted":     record.DatePosted,
		"valid_through":   record.ValidThrough,
		"description":     record.Description,
	} {
		if got != "" {
			t.Fatalf("expected empty %s, got %q", name, got)
		}
	}
}

func TestNormalizeJobPosting_CompanyShapes(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"object with name", map[string]any{"name": "Acme"}, "Acme"},
		{"bare string", "Acme Corp", "Acme Corp"},
		{"number", float64(42), ""},
		{"list", []any{"Acme"}, ""},
		{"null", nil, ""},
	}

	for _, tc := range cases {
		record := NormalizeJobPosting(map[string]any{"hiringOrganization": tc.value})
		if record.Company != tc.want {
			t.Fatalf("%s: company = %q, want %q", tc.name, record.Company, tc.want)
		}
	}
}

func TestNormalizeJobPosting_LocationFallsBackToRegion(t *testing.T) {
	data := map[string]any{
		"jobLocation": map[string]any{
			"address": map[string]any{"addressRegion": "Bavaria", "addressCountry": "DE"},
		},
	}

	record := NormalizeJobPosting(data)
	if record.Location != "Bavaria" {
		t.Fatalf("unexpected location: %q", record.Location)
	}
	if record.Country != "DE" {
		t.Fatalf("unexpected country: %q", record.Country)
	}
}

func TestNormalizeJobPosting_LocationList(t *testing.T) {
	data := map[string]any{
		"jobLocation": []any{
			map[string]any{"address": map[string]any{"addressLocality": "Austin"}},
			map[string]any{"address": map[string]any{"addressLocality": "Berlin"}},
		},
	}

	record := NormalizeJobPosting(data)
	if record.Location != "Austin" {
		t.Fatalf("unexpected location: %q", record.Location)
	}
}

func TestNormalizeJobPosting_CountryAsObject(t *testing.T) {
	data := map[string]any{
		"jobLocation": map[string]any{
			"address": map[string]any{
				"addressCountry": map[string]any{"@type": "Country", "name": "US"},
			},
		},
	}

	record := NormalizeJobPosting(data)
	if record.Country != "US" {
		t.Fatalf("unexpected country: %q", record.Country)
	}
}

func TestNormalizeJobPosting_NumericValueIsStringified(t *testing.T) {
	record := NormalizeJobPosting(map[string]any{"title": float64(12345)})
	if record.Title != "12345" {
		t.Fatalf("unexpected title: %q", record.Title)
	}
}
