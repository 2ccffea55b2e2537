package handlers

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/bulbeats/api/internal/resolver"
)

// DownloadResolver is the resolution engine surface the handler depends on.
type DownloadResolver interface {
	Resolve(ctx context.Context, videoID, title string) resolver.Resolution
}

type DownloadHandlers struct {
	resolver DownloadResolver
	filesDir string
}

// NewDownloadHandlers wires the resolver. filesDir is where the local
// extraction backend drops finished files; empty when that backend is
// disabled.
func NewDownloadHandlers(res DownloadResolver, filesDir string) *DownloadHandlers {
	return &DownloadHandlers{
		resolver: res,
		filesDir: filesDir,
	}
}

// ResolveRequest represents the request body for resolving a download
type ResolveRequest struct {
	VideoID string `json:"video_id" binding:"required"`
	Title   string `json:"title"`
}

// Resolve handles POST /v1/downloads/resolve
// Returns the resolution union: resolved results as 200, terminal failures
// as 502 with the attempt log and any manual fallback hint.
func (h *DownloadHandlers) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id is required"})
		return
	}

	result := h.resolver.Resolve(c.Request.Context(), req.VideoID, req.Title)
	if result.Status == resolver.StatusResolved {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusBadGateway, result)
}

// ServeFile handles GET /v1/downloads/files/:name
// Serves output from the local extraction backend.
func (h *DownloadHandlers) ServeFile(c *gin.Context) {
	if h.filesDir == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Local downloads are not enabled"})
		return
	}

	name := c.Param("name")
	// Sanitized names contain no separators, so anything else is rejected.
	if name == "" || name == "." || name == ".." ||
		name != resolver.SanitizeFilename(name) || name != filepath.Base(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file name"})
		return
	}

	c.FileAttachment(filepath.Join(h.filesDir, name), name)
}
