package annotations

import (
	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/types"
)

// RegisterMediaRoutes registers the media-scoped annotation endpoints
func RegisterMediaRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:mediaID/annotations", ListAnnotations(deps))
	router.POST("/:mediaID/annotations", CreateAnnotation(deps))
}

// RegisterPlaybackRoutes registers the per-frame playback query separately
// so it can carry its own rate limit budget
func RegisterPlaybackRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:mediaID/annotations/at/:time", GetAtTime(deps))
}

// RegisterRoutes registers the direct annotation endpoints
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", GetAnnotation(deps))
	router.PUT("/:id", UpdateAnnotation(deps))
	router.DELETE("/:id", DeleteAnnotation(deps))
}
