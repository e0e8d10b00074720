package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ironsheep/raster-kernels-mcp/internal/kernels"
)

// ProcessRequest is the body of POST /api/v1/process. Pixels is base64 in
// JSON.
type ProcessRequest struct {
	Operation string    `json:"operation" binding:"required"`
	Pixels    []byte    `json:"pixels"`
	Width     uint32    `json:"width"`
	Height    uint32    `json:"height"`
	Params    []float32 `json:"params"`
}

// ErrorResponse is returned for requests rejected before any kernel runs.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// BuildInfo is reported by /health and /version.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// Handler serves the kernel HTTP endpoints.
type Handler struct {
	log       *zap.Logger
	cache     ResultCache
	maxPixels int
	build     BuildInfo
}

// Process runs one kernel.
//
// Responds 200 with the Result on success, 422 with the Result when the
// kernel rejects its input, 400 for bodies that do not decode and 413 when the
// body or the plane is over the configured limit. Successful results are
// cached when a cache is configured; cache errors are logged and ignored.
func (h *Handler) Process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pixels := uint64(req.Width) * uint64(req.Height)
	if h.maxPixels > 0 && pixels > uint64(h.maxPixels) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("plane %dx%d exceeds the %d pixel limit", req.Width, req.Height, h.maxPixels),
		})
		return
	}

	ctx := c.Request.Context()
	var key string
	if h.cache != nil {
		key = CacheKey(req.Operation, req.Width, req.Height, req.Params, req.Pixels)
		cached, err := h.cache.Get(ctx, key)
		if err != nil {
			h.log.Warn("failed to get cache", zap.Error(err))
		}
		if cached != nil {
			h.log.Debug("cache hit", zap.String("cache_key", key))
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	res := kernels.Process(req.Operation, req.Pixels, req.Width, req.Height, req.Params)
	if !res.Success {
		h.log.Debug("kernel failed",
			zap.String("operation", req.Operation),
			zap.Stringer("kind", res.Kind),
			zap.String("error", res.Error))
		c.JSON(http.StatusUnprocessableEntity, res)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, &res); err != nil {
			h.log.Warn("failed to set cache", zap.Error(err))
		}
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, res)
}

// Operations lists the kernels and their parameters.
func (h *Handler) Operations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"operations": kernels.Descriptors(),
	})
}

// Health reports liveness and the running version.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.build.Version,
	})
}

// Version reports the build information.
func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, h.build)
}
