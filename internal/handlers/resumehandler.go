package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackabby/interviewbot-backend/internal/dtos"
	"github.com/hackabby/interviewbot-backend/internal/services"
)

type ResumeHandler struct {
	ResumeService *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{ResumeService: resumes}
}

// ParseResume is the POST /api/resumes/parse-resume endpoint. It expects a
// multipart upload under the "file" field. Pipeline failures surface as 500
// with the reason; there is no partial result on this path.
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing file upload: " + err.Error()})
		return
	}

	resume, err := h.ResumeService.ParseResume(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.ParseResumeResponse{Success: true, ParsedResume: resume})
}
