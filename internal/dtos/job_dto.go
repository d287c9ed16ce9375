package dtos

type ParseJobRequest struct {
	URL string `json:"url" binding:"required"`
}
