package dtos

import "github.com/hackabby/interviewbot-backend/internal/models"

type ParseResumeResponse struct {
	Success      bool                 `json:"success"`
	ParsedResume *models.ParsedResume `json:"parsedResume"`
}
