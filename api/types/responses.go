package types

import "github.com/markpoint/annotate-api/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// AnnotationsResponse for annotation lists scoped to a media file
type AnnotationsResponse struct {
	MediaID     string              `json:"media_id"`
	Count       int                 `json:"count"`
	Annotations []models.Annotation `json:"annotations"`
}

// AtTimeResponse for playback-time queries
type AtTimeResponse struct {
	TimeMS      int64               `json:"time_ms"`
	Annotations []models.Annotation `json:"annotations"`
}

// ImportResponse reports the outcome of a JSON import
type ImportResponse struct {
	BaseResponse
	Imported int `json:"imported"`
}

// MediaInfoResponse describes a resolved media file
type MediaInfoResponse struct {
	MediaID string `json:"media_id"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	ModTime string `json:"mod_time"`
}
