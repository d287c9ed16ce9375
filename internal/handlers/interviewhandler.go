package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackabby/interviewbot-backend/internal/dtos"
)

type InterviewHandler struct{}

func NewInterviewHandler() *InterviewHandler {
	return &InterviewHandler{}
}

// StartInterview is the POST /api/interviews/start endpoint. The
// conversational flow is not implemented yet; this acknowledges the request
// so the frontend can be built against the route.
func (h *InterviewHandler) StartInterview(c *gin.Context) {
	var req dtos.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interview started (stub)", "role": req.Role})
}
