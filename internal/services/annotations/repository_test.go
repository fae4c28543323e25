package annotations

import (
	"context"
	"testing"
	"time"

	"github.com/markpoint/annotate-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(&models.Annotation{}), "Failed to migrate test database")
	return db
}

func int64Ptr(v int64) *int64 { return &v }

func newTestAnnotation(mediaID string, startMS int64, text string) *models.Annotation {
	return models.NewAnnotation(models.NewAnnotationParams{
		MediaID: mediaID,
		StartMS: startMS,
		Text:    text,
	})
}

func TestRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	annotation := newTestAnnotation("media-1", 5000, "first pass")
	require.NoError(t, repo.Upsert(ctx, annotation))

	t.Run("inserts new records", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, annotation.ID)
		require.NoError(t, err)
		assert.Equal(t, "first pass", stored.Text)
	})

	t.Run("replaces by id and refreshes updated_at", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, annotation.ID)
		require.NoError(t, err)
		firstUpdate := stored.UpdatedAt

		time.Sleep(10 * time.Millisecond)

		stored.Text = "second pass"
		stored.Status = models.StatusResolved
		require.NoError(t, repo.Upsert(ctx, stored))

		replaced, err := repo.GetByID(ctx, annotation.ID)
		require.NoError(t, err)
		assert.Equal(t, "second pass", replaced.Text)
		assert.Equal(t, models.StatusResolved, replaced.Status)
		assert.True(t, replaced.UpdatedAt.After(firstUpdate))

		all, err := repo.GetByMedia(ctx, "media-1", Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 1, "upsert must not create a second row")
	})
}

func TestRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	t.Run("unknown id yields sentinel error", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrAnnotationNotFound)
	})
}

func TestRepositoryGetByMedia(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	// Insert out of order; retrieval must sort by start time
	for _, startMS := range []int64{30000, 5000, 75000, 12000} {
		require.NoError(t, repo.Upsert(ctx, newTestAnnotation("media-1", startMS, "note")))
	}

	resolved := newTestAnnotation("media-1", 60000, "fixed already")
	resolved.Status = models.StatusResolved
	resolved.Category = models.CategoryPacing
	require.NoError(t, repo.Upsert(ctx, resolved))

	require.NoError(t, repo.Upsert(ctx, newTestAnnotation("media-2", 1000, "other file")))

	t.Run("orders by ascending start_ms", func(t *testing.T) {
		anns, err := repo.GetByMedia(ctx, "media-1", Filter{})
		require.NoError(t, err)
		require.Len(t, anns, 5)

		for i := 1; i < len(anns); i++ {
			assert.LessOrEqual(t, anns[i-1].StartMS, anns[i].StartMS)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		status := models.StatusResolved
		anns, err := repo.GetByMedia(ctx, "media-1", Filter{Status: &status})
		require.NoError(t, err)
		require.Len(t, anns, 1)
		assert.Equal(t, "fixed already", anns[0].Text)
	})

	t.Run("filters by category", func(t *testing.T) {
		category := models.CategoryPacing
		anns, err := repo.GetByMedia(ctx, "media-1", Filter{Category: &category})
		require.NoError(t, err)
		require.Len(t, anns, 1)
	})

	t.Run("combines filters", func(t *testing.T) {
		status := models.StatusOpen
		category := models.CategoryPacing
		anns, err := repo.GetByMedia(ctx, "media-1", Filter{Status: &status, Category: &category})
		require.NoError(t, err)
		assert.Empty(t, anns)
	})

	t.Run("unknown media yields empty slice, not error", func(t *testing.T) {
		anns, err := repo.GetByMedia(ctx, "media-unknown", Filter{})
		require.NoError(t, err)
		assert.Empty(t, anns)
	})
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	annotation := newTestAnnotation("media-1", 1000, "remove me")
	require.NoError(t, repo.Upsert(ctx, annotation))

	t.Run("reports removal", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, annotation.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, annotation.ID)
		assert.ErrorIs(t, err, ErrAnnotationNotFound)
	})

	t.Run("reports absence", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, annotation.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepositoryPersistsOptionalFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	parent := newTestAnnotation("media-1", 1000, "parent")
	require.NoError(t, repo.Upsert(ctx, parent))

	reply := models.NewAnnotation(models.NewAnnotationParams{
		MediaID:  "media-1",
		StartMS:  1000,
		EndMS:    int64Ptr(4000),
		Text:     "reply with overlay",
		Shape:    &models.Shape{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5},
		ParentID: &parent.ID,
		Metadata: map[string]string{"source": "review-session"},
	})
	require.NoError(t, repo.Upsert(ctx, reply))

	stored, err := repo.GetByID(ctx, reply.ID)
	require.NoError(t, err)

	require.NotNil(t, stored.EndMS)
	assert.Equal(t, int64(4000), *stored.EndMS)
	require.NotNil(t, stored.Shape)
	assert.Equal(t, 0.5, stored.Shape.Width)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, parent.ID, *stored.ParentID)
	assert.Equal(t, "review-session", stored.Metadata["source"])
}
