package export

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/types"
	"github.com/markpoint/annotate-api/internal/services/annotations"
	"github.com/markpoint/annotate-api/internal/services/export"
)

// ExportAnnotations exports a media file's annotations in the requested format
// @Summary      Export annotations
// @Description  Export all annotations for a media file as WebVTT, SRT or JSON
// @Tags         export
// @Produce      plain
// @Param        mediaID path string true "Media ID"
// @Param        format path string true "Export format (vtt, srt, json)"
// @Param        metadata query bool false "Include category/status markers in cue text"
// @Success      200 {string} string "Exported file"
// @Failure      400 {object} types.ErrorResponse "Unknown format"
// @Failure      404 {object} types.ErrorResponse "No annotations to export"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/media/{mediaID}/export/{format} [get]
func ExportAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID := c.Param("mediaID")
		format := c.Param("format")

		includeMetadata := deps.IncludeMetadata
		if raw, present := c.GetQuery("metadata"); present {
			includeMetadata = raw == "true"
		}

		anns, err := deps.AnnotationService.GetByMedia(c.Request.Context(), mediaID, annotations.Filter{})
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}
		if len(anns) == 0 {
			types.SendNotFound(c, "No annotations to export")
			return
		}

		filename := fmt.Sprintf("%s_annotations.%s", mediaID, format)

		switch format {
		case "vtt":
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			c.Data(http.StatusOK, "text/vtt; charset=utf-8", []byte(export.ToWebVTT(anns, includeMetadata)))
		case "srt":
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.ToSRT(anns, includeMetadata)))
		case "json":
			data, err := export.ToJSON(anns)
			if err != nil {
				types.SendInternalError(c, "Failed to encode annotations")
				return
			}
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		default:
			types.SendBadRequest(c, fmt.Sprintf("Unknown format: %s", format))
		}
	}
}

// ImportAnnotations imports a JSON export envelope into the store
// @Summary      Import annotations
// @Description  Import annotations from a JSON export envelope. Import is not atomic; records before the first malformed one stay persisted.
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        mediaID path string true "Media ID (informational; records carry their own media_id)"
// @Param        envelope body export.Envelope true "Export envelope"
// @Success      200 {object} types.ImportResponse "Import result"
// @Failure      400 {object} types.ErrorResponse "Malformed envelope or record"
// @Router       /api/v1/media/{mediaID}/import [post]
func ImportAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			types.SendBadRequest(c, "Failed to read request body")
			return
		}

		imported, err := export.ImportJSON(c.Request.Context(), data, deps.AnnotationService)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Error:   err.Error(),
				Details: gin.H{"imported": len(imported)},
			})
			return
		}

		c.JSON(http.StatusOK, types.ImportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Imported:     len(imported),
		})
	}
}
