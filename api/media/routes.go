package media

import (
	"github.com/gin-gonic/gin"
	"github.com/markpoint/annotate-api/api/types"
)

// RegisterRoutes registers media identity routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/resolve", Resolve(deps))
}
