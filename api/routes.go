package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/markpoint/annotate-api/api/annotations"
	"github.com/markpoint/annotate-api/api/export"
	"github.com/markpoint/annotate-api/api/health"
	"github.com/markpoint/annotate-api/api/media"
	"github.com/markpoint/annotate-api/api/types"
	"github.com/markpoint/annotate-api/api/version"
	_ "github.com/markpoint/annotate-api/docs/swagger"
	annotationsService "github.com/markpoint/annotate-api/internal/services/annotations"
	"github.com/markpoint/annotate-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	deps.IncludeMetadata = cfg.Export.IncludeMetadata

	if deps.AnnotationService == nil && deps.DB != nil && deps.DB.DB != nil {
		repo := annotationsService.NewRepository(deps.DB.DB)
		deps.AnnotationService = annotationsService.NewService(repo)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	limit := func(rps, burst int) gin.HandlerFunc {
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	rl := cfg.RateLimiting

	// Media identity resolution
	mediaGroup := v1.Group("/media")
	if rl.Enabled {
		mediaGroup.Use(limit(rl.RequestsPerSecond, rl.Burst))
	}
	media.RegisterRoutes(mediaGroup, deps)
	annotations.RegisterMediaRoutes(mediaGroup, deps)
	export.RegisterMediaRoutes(mediaGroup, deps)

	// Playback-time queries fire on every rendered frame; give them their
	// own, much higher budget
	playbackGroup := v1.Group("/media")
	if rl.Enabled {
		playbackGroup.Use(limit(rl.PlaybackRequestsPerSecond, rl.PlaybackBurst))
	}
	annotations.RegisterPlaybackRoutes(playbackGroup, deps)

	// Direct annotation endpoints
	annotationGroup := v1.Group("/annotations")
	if rl.Enabled {
		annotationGroup.Use(limit(rl.RequestsPerSecond, rl.Burst))
	}
	annotations.RegisterRoutes(annotationGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
