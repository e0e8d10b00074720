// Package httpapi serves the raster kernels over HTTP with gin.
//
// Routes:
//
//	GET  /health             liveness and version
//	GET  /version            build information
//	GET  /api/v1/operations  kernel descriptors
//	POST /api/v1/process     run a kernel on a base64 plane
//
// The process endpoint mirrors the MCP kernel_process tool but returns the
// kernel Result unchanged, with the HTTP status carrying the outcome.
package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ironsheep/raster-kernels-mcp/internal/config"
)

// Options configures NewRouter.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	// Cache may be nil, which disables result caching.
	Cache ResultCache
	Build BuildInfo
}

// NewRouter builds the gin engine. It does not change gin's global mode; the
// caller sets that from config before calling.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	h := &Handler{
		log:       logger,
		cache:     opts.Cache,
		maxPixels: opts.Config.Kernels.MaxPixels,
		build:     opts.Build,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Logger(logger))

	r.GET("/health", h.Health)
	r.GET("/version", h.Version)

	api := r.Group("/api/v1")
	{
		api.GET("/operations", h.Operations)
		api.POST("/process", BodyLimit(opts.Config.HTTP.MaxBodyBytes), h.Process)
	}

	return r
}
