package annotations_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/annotations"
	"github.com/markpoint/annotate-api/api/types"
	"github.com/markpoint/annotate-api/internal/database"
	"github.com/markpoint/annotate-api/internal/models"
	annotationsService "github.com/markpoint/annotate-api/internal/services/annotations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type AnnotationTestSuite struct {
	t      *testing.T
	deps   *types.Dependencies
	router *gin.Engine
}

func setupAnnotationTestSuite(t *testing.T) *AnnotationTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Annotation{})
	require.NoError(t, err, "Failed to migrate test database")

	deps := &types.Dependencies{
		DB:                &database.DB{DB: db},
		AnnotationService: annotationsService.NewService(annotationsService.NewRepository(db)),
	}

	router := gin.New()
	media := router.Group("/api/v1/media")
	annotations.RegisterMediaRoutes(media, deps)
	annotations.RegisterPlaybackRoutes(media, deps)
	direct := router.Group("/api/v1/annotations")
	annotations.RegisterRoutes(direct, deps)

	return &AnnotationTestSuite{t: t, deps: deps, router: router}
}

func (suite *AnnotationTestSuite) do(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(suite.t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AnnotationTestSuite) createAnnotation(mediaID string, payload map[string]any) models.Annotation {
	w := suite.do(http.MethodPost, "/api/v1/media/"+mediaID+"/annotations", payload)
	require.Equal(suite.t, http.StatusCreated, w.Code, "create failed: %s", w.Body.String())

	var annotation models.Annotation
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &annotation))
	return annotation
}

func TestCreateAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)

	t.Run("successful creation", func(t *testing.T) {
		w := suite.do(http.MethodPost, "/api/v1/media/media-1/annotations", map[string]any{
			"start_ms": 5000,
			"text":     "check pacing",
			"category": "pacing",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var annotation models.Annotation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &annotation))
		assert.NotEmpty(t, annotation.ID)
		assert.Equal(t, "media-1", annotation.MediaID)
		assert.Equal(t, int64(5000), annotation.StartMS)
		assert.Equal(t, models.CategoryPacing, annotation.Category)
		assert.Equal(t, models.StatusOpen, annotation.Status)
		assert.Equal(t, "anonymous", annotation.Author)
	})

	t.Run("missing text", func(t *testing.T) {
		w := suite.do(http.MethodPost, "/api/v1/media/media-1/annotations", map[string]any{
			"start_ms": 5000,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := suite.do(http.MethodPost, "/api/v1/media/media-1/annotations", map[string]any{
			"start_ms": 5000,
			"text":     "note",
			"category": "bogus",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListAnnotations(t *testing.T) {
	suite := setupAnnotationTestSuite(t)

	// Create out of order; the listing must sort by start time
	suite.createAnnotation("media-1", map[string]any{"start_ms": 30000, "text": "later"})
	suite.createAnnotation("media-1", map[string]any{"start_ms": 5000, "text": "earlier"})
	suite.createAnnotation("media-2", map[string]any{"start_ms": 1000, "text": "other media"})

	t.Run("lists a media file's annotations in order", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response types.AnnotationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "media-1", response.MediaID)
		require.Equal(t, 2, response.Count)
		assert.Equal(t, "earlier", response.Annotations[0].Text)
		assert.Equal(t, "later", response.Annotations[1].Text)
	})

	t.Run("filters by status", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations?status=resolved", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response types.AnnotationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Zero(t, response.Count)
	})

	t.Run("rejects unknown filter values", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown media yields an empty list", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/nope/annotations", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response types.AnnotationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Zero(t, response.Count)
	})
}

func TestGetAtTime(t *testing.T) {
	suite := setupAnnotationTestSuite(t)

	created := suite.createAnnotation("media-1", map[string]any{
		"start_ms": 5000,
		"end_ms":   7000,
		"text":     "range",
	})

	t.Run("returns annotations covering the time", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations/at/6000", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response types.AtTimeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(6000), response.TimeMS)
		require.Len(t, response.Annotations, 1)
		assert.Equal(t, created.ID, response.Annotations[0].ID)
	})

	t.Run("excludes annotations outside the time", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations/at/8000", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response types.AtTimeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Empty(t, response.Annotations)
	})

	t.Run("rejects non-numeric times", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations/at/soon", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	created := suite.createAnnotation("media-1", map[string]any{"start_ms": 1000, "text": "note"})

	t.Run("returns the annotation", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/annotations/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var annotation models.Annotation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &annotation))
		assert.Equal(t, created.ID, annotation.ID)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/api/v1/annotations/unknown", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	created := suite.createAnnotation("media-1", map[string]any{
		"start_ms": 1000,
		"text":     "original",
	})

	t.Run("applies partial updates", func(t *testing.T) {
		w := suite.do(http.MethodPut, "/api/v1/annotations/"+created.ID, map[string]any{
			"text":   "updated",
			"status": "resolved",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var annotation models.Annotation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &annotation))
		assert.Equal(t, "updated", annotation.Text)
		assert.Equal(t, models.StatusResolved, annotation.Status)
		// Untouched fields survive
		assert.Equal(t, int64(1000), annotation.StartMS)
		assert.Equal(t, created.ID, annotation.ID)
		assert.Equal(t, created.MediaID, annotation.MediaID)
	})

	t.Run("rejects unknown enum values", func(t *testing.T) {
		w := suite.do(http.MethodPut, "/api/v1/annotations/"+created.ID, map[string]any{
			"status": "bogus",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := suite.do(http.MethodPut, "/api/v1/annotations/unknown", map[string]any{
			"text": "nope",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	created := suite.createAnnotation("media-1", map[string]any{"start_ms": 1000, "text": "bye"})

	t.Run("deletes and reports success", func(t *testing.T) {
		w := suite.do(http.MethodDelete, "/api/v1/annotations/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// Gone afterwards
		w = suite.do(http.MethodGet, "/api/v1/annotations/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("second delete yields 404", func(t *testing.T) {
		w := suite.do(http.MethodDelete, "/api/v1/annotations/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteInvalidatesPlaybackQueries(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	created := suite.createAnnotation("media-1", map[string]any{
		"start_ms": 5000,
		"end_ms":   7000,
		"text":     "visible then gone",
	})

	// Warm the playback index
	w := suite.do(http.MethodGet, "/api/v1/media/media-1/annotations/at/6000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/annotations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/media/media-1/annotations/at/6000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response types.AtTimeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Annotations, fmt.Sprintf("deleted annotation still visible: %s", w.Body.String()))
}
