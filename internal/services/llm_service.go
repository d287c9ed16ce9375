package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/hackabby/interviewbot-backend/internal/models"
)

// llmTimeout bounds every completion call; the provider default is too
// open-ended for a synchronous request path.
const llmTimeout = 30 * time.Second

// ErrNoJSON means the model response contained nothing decodable as a JSON
// object, even after lenient recovery.
var ErrNoJSON = errors.New("no JSON object in model response")

type LLMService struct {
	Client llms.Model
}

// NewLLMService builds the Gemini client once at startup. The handle is
// injected into the pipeline services instead of living at package scope.
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

// schemaField describes one key the model must emit.
type schemaField struct {
	Name string
	Desc string
}

// extractionSchema drives a strict-JSON extraction prompt. The whole-page
// fallback and the description decomposition share one strategy and differ
// only in their field sets.
type extractionSchema struct {
	Task   string
	Fields []schemaField
}

var jobRecordSchema = extractionSchema{
	Task: "You are an expert job data extraction agent. Analyze the provided text from a job posting page and extract the fields below. Ignore navigation menus, footers, similar-jobs lists and advertisements.",
	Fields: []schemaField{
		{"title", "Job title (e.g. Senior Backend Engineer)"},
		{"company", "Name of the hiring company"},
		{"location", "City of the job, or 'Remote'"},
		{"country", "Country of the job location"},
		{"employment_type", "e.g. FULL_TIME, PART_TIME, CONTRACT"},
		{"date_posted", "Date the job was posted, as written"},
		{"valid_through", "Application deadline, as written"},
		{"description", "A clean summary of the job with HTML tags removed"},
		{"about_company", "What the company does, from the posting text"},
		{"responsibility", "The role's responsibilities"},
		{"requirement", "The qualifications and skills required"},
	},
}

var descriptionSchema = extractionSchema{
	Task: "You are an expert job data extraction agent. Analyze the provided job description and extract the fields below.",
	Fields: []schemaField{
		{"about_company", "What the company does, from the description"},
		{"responsibility", "The role's responsibilities"},
		{"requirement", "The qualifications and skills required"},
	},
}

func buildExtractionPrompt(schema extractionSchema, text string) string {
	var sb strings.Builder
	sb.WriteString(schema.Task)
	sb.WriteString("\n\nReturn ONLY a valid JSON object with exactly these string fields. Do not wrap the output in markdown code blocks.\n{\n")
	for i, field := range schema.Fields {
		fmt.Fprintf(&sb, "  %q: %q", field.Name, field.Desc)
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\nIf a piece of information is missing, use an empty string. Do not hallucinate or guess.\n\nText:\n")
	sb.WriteString(text)
	return sb.String()
}

// extract runs one completion call and returns a value for every schema
// field; fields the model omitted come back as empty strings.
func (s *LLMService) extract(ctx context.Context, schema extractionSchema, text string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, buildExtractionPrompt(schema, text))
	if err != nil {
		return nil, fmt.Errorf("llm completion: %w", err)
	}

	parsed, err := DecodeLooseJSON(resp)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(schema.Fields))
	for _, field := range schema.Fields {
		out[field.Name] = fieldString(parsed[field.Name])
	}
	return out, nil
}

// ExtractJobFields populates the full record from a page's visible text.
// Used when no structured block yields a JobPosting.
func (s *LLMService) ExtractJobFields(ctx context.Context, pageText string) (models.JobRecord, error) {
	fields, err := s.extract(ctx, jobRecordSchema, pageText)
	if err != nil {
		return models.JobRecord{}, err
	}
	return models.JobRecord{
		Title:          fields["title"],
		Company:        fields["company"],
		Location:       fields["location"],
		Country:        fields["country"],
		EmploymentType: fields["employment_type"],
		DatePosted:     fields["date_posted"],
		ValidThrough:   fields["valid_through"],
		Description:    fields["description"],
		AboutCompany:   fields["about_company"],
		Responsibility: fields["responsibility"],
		Requirement:    fields["requirement"],
	}, nil
}

// DecomposeDescription splits a posting's description into the three
// LLM-derived fields. A blank description short-circuits without a model
// call.
func (s *LLMService) DecomposeDescription(ctx context.Context, description string) (about, responsibility, requirement string, err error) {
	if strings.TrimSpace(description) == "" {
		return "", "", "", nil
	}
	fields, err := s.extract(ctx, descriptionSchema, description)
	if err != nil {
		return "", "", "", err
	}
	return fields["about_company"], fields["responsibility"], fields["requirement"], nil
}

const resumeExtractionPrompt = `Extract resume details and return JSON strictly matching this schema. Do not wrap the output in markdown code blocks.
{
  "name": "string",
  "email": "string",
  "phone": "string",
  "summary": "string",
  "experience": [
    {
      "company": "string",
      "position": "string",
      "duration": "string",
      "description": "string"
    }
  ],
  "education": [
    {
      "institution": "string",
      "degree": "string",
      "year": "string",
      "field": "string"
    }
  ],
  "skills": ["string"],
  "projects": [
    {
      "name": "string",
      "description": "string",
      "technologies": ["string"],
      "duration": "string"
    }
  ]
}
Resume text:
%s`

// ExtractResume parses resume text into the structured resume schema. Unlike
// the job pipeline there is no safe empty value here, so failures are
// returned to the caller.
func (s *LLMService) ExtractResume(ctx context.Context, text string) (*models.ParsedResume, error) {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(resumeExtractionPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("llm completion: %w", err)
	}

	raw, err := looseJSONBytes(resp)
	if err != nil {
		return nil, err
	}
	var resume models.ParsedResume
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("parsing resume JSON: %w", err)
	}
	return &resume, nil
}

// DecodeLooseJSON decodes a model response that should be a JSON object but
// may arrive wrapped in markdown fences or surrounding prose. It tries a
// strict decode first, then falls back to the first balanced brace span.
// The leniency is deliberate.
func DecodeLooseJSON(raw string) (map[string]any, error) {
	data, err := looseJSONBytes(raw)
	if err != nil {
		return nil, err
	}
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing model JSON: %w", err)
	}
	return parsed, nil
}

func looseJSONBytes(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}
	text = stripCodeFences(text)
	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}
	if span := firstBraceSpan(text); span != "" && json.Valid([]byte(span)) {
		return []byte(span), nil
	}
	return nil, ErrNoJSON
}

func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx != -1 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// firstBraceSpan returns the first balanced {...} substring, tracking string
// literals so braces inside values do not skew the depth count.
func firstBraceSpan(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// fieldString coerces a decoded JSON value to the string the record expects.
// The prompt asks for strings, but models occasionally emit numbers.
func fieldString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
