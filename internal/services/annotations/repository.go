package annotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/markpoint/annotate-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Upsert inserts or replaces an annotation by its ID
func (r *RepositoryImpl) Upsert(ctx context.Context, annotation *models.Annotation) error {
	annotation.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(annotation).Error; err != nil {
		return fmt.Errorf("saving annotation: %w", err)
	}
	return nil
}

// GetByID retrieves an annotation by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id string) (*models.Annotation, error) {
	var annotation models.Annotation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&annotation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnotationNotFound
		}
		return nil, fmt.Errorf("getting annotation: %w", err)
	}
	return &annotation, nil
}

// GetByMedia retrieves all annotations for a media file with optional
// status/category filters. Ascending start_ms ordering is a contract that
// playback UIs and exporters rely on.
func (r *RepositoryImpl) GetByMedia(ctx context.Context, mediaID string, filter Filter) ([]models.Annotation, error) {
	query := r.db.WithContext(ctx).Where("media_id = ?", mediaID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var annotations []models.Annotation
	if err := query.Order("start_ms ASC").Find(&annotations).Error; err != nil {
		return nil, fmt.Errorf("getting annotations for media: %w", err)
	}
	return annotations, nil
}

// Delete removes an annotation by ID, reporting whether a row was removed
func (r *RepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Annotation{})
	if result.Error != nil {
		return false, fmt.Errorf("deleting annotation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
