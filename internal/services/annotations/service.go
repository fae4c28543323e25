package annotations

import (
	"context"
	"errors"
	"sort"

	"github.com/markpoint/annotate-api/internal/models"
)

// ServiceImpl implements the Service interface. It owns the second-bucket
// time index; all cache lifecycle is tied to this instance, so fresh
// services start with a cold index.
type ServiceImpl struct {
	repository Repository
	buckets    *bucketIndex
}

// NewService creates a new annotation service
func NewService(repository Repository) Service {
	return &ServiceImpl{
		repository: repository,
		buckets:    newBucketIndex(),
	}
}

// Create builds a new annotation from params and persists it
func (s *ServiceImpl) Create(ctx context.Context, params models.NewAnnotationParams) (*models.Annotation, error) {
	return s.Save(ctx, models.NewAnnotation(params))
}

// Save upserts an annotation and invalidates the time index for its media
func (s *ServiceImpl) Save(ctx context.Context, annotation *models.Annotation) (*models.Annotation, error) {
	if err := s.repository.Upsert(ctx, annotation); err != nil {
		return nil, err
	}
	s.buckets.invalidate(annotation.MediaID)
	return annotation, nil
}

// GetByID retrieves an annotation by its ID
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (*models.Annotation, error) {
	return s.repository.GetByID(ctx, id)
}

// GetByMedia retrieves annotations for a media file ordered by start time
func (s *ServiceImpl) GetByMedia(ctx context.Context, mediaID string, filter Filter) ([]models.Annotation, error) {
	return s.repository.GetByMedia(ctx, mediaID, filter)
}

// GetAtTime retrieves the annotations visible at a playback time.
//
// The bucket index is only a coarse pre-filter: every candidate is
// re-fetched from the store and kept only if it actually contains the
// queried time. A concurrently deleted annotation therefore drops out even
// when a stale index still lists its ID.
func (s *ServiceImpl) GetAtTime(ctx context.Context, mediaID string, timeMS int64) ([]models.Annotation, error) {
	second := timeMS / 1000

	ids, ok := s.buckets.candidates(mediaID, second)
	if !ok {
		anns, err := s.repository.GetByMedia(ctx, mediaID, Filter{})
		if err != nil {
			return nil, err
		}
		s.buckets.rebuild(mediaID, anns)
		ids, _ = s.buckets.candidates(mediaID, second)
	}

	result := make([]models.Annotation, 0, len(ids))
	for _, id := range ids {
		annotation, err := s.repository.GetByID(ctx, id)
		if errors.Is(err, ErrAnnotationNotFound) {
			continue // stale index entry
		}
		if err != nil {
			return nil, err
		}
		if annotation.ContainsTime(timeMS) {
			result = append(result, *annotation)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartMS < result[j].StartMS
	})
	return result, nil
}

// Delete removes an annotation and invalidates the time index for its
// media. The media ID is looked up before deletion so the right index entry
// can be dropped.
func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	annotation, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrAnnotationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.buckets.invalidate(annotation.MediaID)
	}
	return deleted, nil
}
