package export

import (
	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/types"
)

// RegisterMediaRoutes registers export/import endpoints on the media group
func RegisterMediaRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:mediaID/export/:format", ExportAnnotations(deps))
	router.POST("/:mediaID/import", ImportAnnotations(deps))
}
