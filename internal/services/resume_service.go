package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hackabby/interviewbot-backend/internal/models"
	"github.com/hackabby/interviewbot-backend/internal/pdftext"
)

var (
	ErrUnsupportedFileType = errors.New("file type not allowed")
	ErrEmptyResumeText     = errors.New("failed to extract text from resume")
)

type ResumeService struct {
	LLM       *LLMService
	Extractor pdftext.TextExtractor
	UploadDir string
}

func NewResumeService(llm *LLMService, extractor pdftext.TextExtractor, uploadDir string) *ResumeService {
	return &ResumeService{
		LLM:       llm,
		Extractor: extractor,
		UploadDir: uploadDir,
	}
}

// ParseResume validates and stores the upload, extracts its text and asks
// the LLM for the structured resume. There is no safe empty fallback on this
// path, so every failure propagates to the handler.
func (s *ResumeService) ParseResume(ctx context.Context, file *multipart.FileHeader) (*models.ParsedResume, error) {
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return nil, ErrUnsupportedFileType
	}

	path, err := s.saveUpload(file)
	if err != nil {
		return nil, err
	}

	text, err := s.Extractor.ExtractText(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResumeText
	}

	return s.LLM.ExtractResume(ctx, text)
}

// saveUpload writes the upload under a fresh name so concurrent requests and
// hostile filenames cannot collide.
func (s *ResumeService) saveUpload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.UploadDir, uuid.New().String()+".pdf")
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	return path, nil
}
