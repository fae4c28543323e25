package annotations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/types"
	"github.com/markpoint/annotate-api/internal/models"
	"github.com/markpoint/annotate-api/internal/services/annotations"
)

// createAnnotationRequest is the POST body for new annotations
type createAnnotationRequest struct {
	StartMS  int64             `json:"start_ms"`
	EndMS    *int64            `json:"end_ms"`
	Text     string            `json:"text" binding:"required"`
	Category models.Category   `json:"category"`
	Author   string            `json:"author"`
	Shape    *models.Shape     `json:"shape"`
	ParentID *string           `json:"parent_id"`
	Metadata map[string]string `json:"metadata"`
}

// updateAnnotationRequest is the PUT body. Only fields present in the
// request are applied; identity fields (id, media_id, created_at) are never
// touched.
type updateAnnotationRequest struct {
	Text     *string            `json:"text"`
	StartMS  *int64             `json:"start_ms"`
	EndMS    *int64             `json:"end_ms"`
	Category *models.Category   `json:"category"`
	Status   *models.Status     `json:"status"`
	Author   *string            `json:"author"`
	Shape    *models.Shape      `json:"shape"`
	Metadata *map[string]string `json:"metadata"`
}

// ListAnnotations lists annotations for a media file
// @Summary      List annotations for a media file
// @Description  Retrieve all annotations for a media file ordered by start time, optionally filtered by status and category
// @Tags         annotations
// @Produce      json
// @Param        mediaID path string true "Media ID"
// @Param        status query string false "Filter by status (open, in_progress, resolved, wont_fix)"
// @Param        category query string false "Filter by category (general, pacing, pronunciation, audio_quality, timing, content, technical)"
// @Success      200 {object} types.AnnotationsResponse "Annotations for the media file"
// @Failure      400 {object} types.ErrorResponse "Invalid filter value"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/media/{mediaID}/annotations [get]
func ListAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaID")

		var filter annotations.Filter
		if raw, present := c.GetQuery("status"); present {
			status, err := models.ParseStatus(raw)
			if err != nil {
				types.SendBadRequest(c, err.Error())
				return
			}
			filter.Status = &status
		}
		if raw, present := c.GetQuery("category"); present {
			category, err := models.ParseCategory(raw)
			if err != nil {
				types.SendBadRequest(c, err.Error())
				return
			}
			filter.Category = &category
		}

		anns, err := deps.AnnotationService.GetByMedia(c.Request.Context(), mediaID, filter)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}

		c.JSON(http.StatusOK, types.AnnotationsResponse{
			MediaID:     mediaID,
			Count:       len(anns),
			Annotations: anns,
		})
	}
}

// CreateAnnotation creates a new annotation for a media file
// @Summary      Create annotation
// @Description  Create a new point or range annotation on a media file
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        mediaID path string true "Media ID"
// @Param        annotation body createAnnotationRequest true "Annotation data"
// @Success      201 {object} models.Annotation "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/media/{mediaID}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaID")

		var req createAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		annotation, err := deps.AnnotationService.Create(c.Request.Context(), models.NewAnnotationParams{
			MediaID:  mediaID,
			StartMS:  req.StartMS,
			EndMS:    req.EndMS,
			Text:     req.Text,
			Category: req.Category,
			Author:   req.Author,
			Shape:    req.Shape,
			ParentID: req.ParentID,
			Metadata: req.Metadata,
		})
		if err != nil {
			types.SendInternalError(c, "Failed to create annotation")
			return
		}

		types.SendCreated(c, annotation)
	}
}

// GetAtTime retrieves the annotations visible at a playback time
// @Summary      Get annotations at a playback time
// @Description  Retrieve the annotations visible at a specific time, optimized for per-frame queries during playback
// @Tags         annotations
// @Produce      json
// @Param        mediaID path string true "Media ID"
// @Param        time path int true "Playback time in milliseconds"
// @Success      200 {object} types.AtTimeResponse "Visible annotations"
// @Failure      400 {object} types.ErrorResponse "Invalid time"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/media/{mediaID}/annotations/at/{time} [get]
func GetAtTime(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaID")

		timeMS, ok := types.ParseInt64Param(c, "time")
		if !ok {
			return
		}

		anns, err := deps.AnnotationService.GetAtTime(c.Request.Context(), mediaID, timeMS)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}

		c.JSON(http.StatusOK, types.AtTimeResponse{
			TimeMS:      timeMS,
			Annotations: anns,
		})
	}
}

// GetAnnotation retrieves a single annotation
// @Summary      Get annotation
// @Description  Retrieve a single annotation by ID
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Success      200 {object} models.Annotation "Annotation"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations/{id} [get]
func GetAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotation, err := deps.AnnotationService.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, annotations.ErrAnnotationNotFound) {
				types.SendNotFound(c, "Annotation not found")
			} else {
				types.SendInternalError(c, "Failed to retrieve annotation")
			}
			return
		}

		c.JSON(http.StatusOK, annotation)
	}
}

// UpdateAnnotation updates an existing annotation
// @Summary      Update annotation
// @Description  Apply a partial update to an annotation's mutable fields
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Param        annotation body updateAnnotationRequest true "Fields to update"
// @Success      200 {object} models.Annotation "Updated annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations/{id} [put]
func UpdateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		annotation, err := deps.AnnotationService.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, annotations.ErrAnnotationNotFound) {
				types.SendNotFound(c, "Annotation not found")
			} else {
				types.SendInternalError(c, "Failed to retrieve annotation")
			}
			return
		}

		var req updateAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if req.Text != nil {
			annotation.Text = *req.Text
		}
		if req.StartMS != nil {
			annotation.StartMS = *req.StartMS
		}
		if req.EndMS != nil {
			annotation.EndMS = req.EndMS
		}
		if req.Category != nil {
			annotation.Category = *req.Category
		}
		if req.Status != nil {
			annotation.Status = *req.Status
		}
		if req.Author != nil {
			annotation.Author = *req.Author
		}
		if req.Shape != nil {
			annotation.Shape = req.Shape
		}
		if req.Metadata != nil {
			annotation.Metadata = *req.Metadata
		}

		updated, err := deps.AnnotationService.Save(c.Request.Context(), annotation)
		if err != nil {
			types.SendInternalError(c, "Failed to update annotation")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DeleteAnnotation deletes an annotation
// @Summary      Delete annotation
// @Description  Delete an existing annotation by ID
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Success      200 {object} types.BaseResponse "Annotation deleted"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/annotations/{id} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := deps.AnnotationService.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendInternalError(c, "Failed to delete annotation")
			return
		}
		if !deleted {
			types.SendNotFound(c, "Annotation not found")
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Annotation deleted",
		})
	}
}
