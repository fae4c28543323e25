package annotations

import (
	"context"

	"github.com/markpoint/annotate-api/internal/models"
)

// Filter narrows GetByMedia results. Nil fields match everything.
type Filter struct {
	Status   *models.Status
	Category *models.Category
}

// Repository defines the interface for annotation data access
type Repository interface {
	// Upsert inserts or replaces an annotation by ID, refreshing UpdatedAt
	Upsert(ctx context.Context, annotation *models.Annotation) error

	// GetByID retrieves an annotation, or ErrAnnotationNotFound
	GetByID(ctx context.Context, id string) (*models.Annotation, error)

	// GetByMedia retrieves all annotations for a media file, ordered by
	// ascending start time
	GetByMedia(ctx context.Context, mediaID string, filter Filter) ([]models.Annotation, error)

	// Delete removes an annotation, reporting whether a row was removed
	Delete(ctx context.Context, id string) (bool, error)
}

// Service defines the interface for annotation business logic
type Service interface {
	// Create builds a new annotation from params and persists it
	Create(ctx context.Context, params models.NewAnnotationParams) (*models.Annotation, error)

	// Save upserts an annotation and invalidates the time index for its media
	Save(ctx context.Context, annotation *models.Annotation) (*models.Annotation, error)

	// GetByID retrieves an annotation, or ErrAnnotationNotFound
	GetByID(ctx context.Context, id string) (*models.Annotation, error)

	// GetByMedia retrieves annotations for a media file ordered by start time
	GetByMedia(ctx context.Context, mediaID string, filter Filter) ([]models.Annotation, error)

	// GetAtTime retrieves the annotations visible at a playback time
	GetAtTime(ctx context.Context, mediaID string, timeMS int64) ([]models.Annotation, error)

	// Delete removes an annotation, reporting whether it existed
	Delete(ctx context.Context, id string) (bool, error)
}
