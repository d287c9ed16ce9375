package dtos

type StartInterviewRequest struct {
	Role    string `json:"role" binding:"required"`
	Profile string `json:"profile"`
}
