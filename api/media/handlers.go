package media

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/types"
	"github.com/markpoint/annotate-api/pkg/mediaid"
)

// resolveRequest asks for the media identity of a local file
type resolveRequest struct {
	Path string `json:"path" binding:"required"`
}

// Resolve computes the media identity for a local file
// @Summary      Resolve media identity
// @Description  Compute the stable media ID for a local file from its name, size and modification time
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        request body resolveRequest true "File path"
// @Success      200 {object} types.MediaInfoResponse "Resolved media identity"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "File not found"
// @Router       /api/v1/media/resolve [post]
func Resolve(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resolveRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		info, err := os.Stat(req.Path)
		if err != nil {
			types.SendNotFound(c, "Media file not found")
			return
		}

		name := filepath.Base(req.Path)
		c.JSON(http.StatusOK, types.MediaInfoResponse{
			MediaID: mediaid.FromInfo(name, info),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime().UTC().Format(time.RFC3339),
		})
	}
}
