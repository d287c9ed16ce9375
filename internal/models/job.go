package models

// JobRecord is the fixed output shape for a parsed job posting. Every field
// is always present in the JSON response; unknown values are empty strings,
// never null.
type JobRecord struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Country        string `json:"country"`
	EmploymentType string `json:"employment_type"`
	DatePosted     string `json:"date_posted"`
	ValidThrough   string `json:"valid_through"`
	Description    string `json:"description"`
	AboutCompany   string `json:"about_company"`
	Responsibility string `json:"responsibility"`
	Requirement    string `json:"requirement"`
}
