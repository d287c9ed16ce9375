package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/hackabby/interviewbot-backend/internal/models"
	"github.com/hackabby/interviewbot-backend/internal/scraper"
)

// ErrJobNotFound signals that nothing could be fetched for the URL; the
// handler maps it to a 404.
var ErrJobNotFound = errors.New("job description not found")

type JobService struct {
	Fetcher *scraper.Fetcher
	LLM     *LLMService
}

func NewJobService(fetcher *scraper.Fetcher, llm *LLMService) *JobService {
	return &JobService{
		Fetcher: fetcher,
		LLM:     llm,
	}
}

// ParseJobDescription runs the extraction pipeline: fetch the page, locate a
// JobPosting ld+json block, normalize it, and decompose its description via
// the LLM. When no structured block exists, the page's visible text goes
// through the LLM instead. LLM failures degrade to empty fields, never to an
// error; only a failed fetch aborts the request.
func (s *JobService) ParseJobDescription(ctx context.Context, url string) (*models.JobRecord, error) {
	doc, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("fetch failed")
		return nil, ErrJobNotFound
	}

	posting, ok := scraper.FindJobPosting(doc)
	if !ok {
		record, err := s.LLM.ExtractJobFields(ctx, scraper.VisibleText(doc))
		if err != nil {
			log.Warn().Err(err).Str("url", url).Msg("whole-page extraction failed")
			return &models.JobRecord{}, nil
		}
		return &record, nil
	}

	record := scraper.NormalizeJobPosting(posting)

	about, responsibility, requirement, err := s.LLM.DecomposeDescription(ctx, record.Description)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("description decomposition failed")
	}
	record.AboutCompany = about
	record.Responsibility = responsibility
	record.Requirement = requirement

	return &record, nil
}
