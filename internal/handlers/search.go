package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bulbeats/api/internal/models"
	"github.com/bulbeats/api/internal/youtube"
)

// SearchClient is the upstream search surface the handler depends on.
type SearchClient interface {
	Search(ctx context.Context, query, pageToken string) (*youtube.SearchResult, error)
}

type SearchHandlers struct {
	client SearchClient
}

func NewSearchHandlers(client SearchClient) *SearchHandlers {
	return &SearchHandlers{
		client: client,
	}
}

// SearchResponse represents one filtered page of beat candidates
type SearchResponse struct {
	Beats         []models.Beat `json:"beats"`
	Channels      []string      `json:"channels"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

// Search handles GET /v1/beats/search
// Query params: q (required), page_token, key, bpm_min, bpm_max, type, channel.
func (h *SearchHandlers) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	result, err := h.client.Search(c.Request.Context(), query, c.Query("page_token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search failed, try again later"})
		return
	}

	beats := result.Beats
	if key := c.Query("key"); key != "" {
		beats = youtube.FilterByKey(beats, key)
	}
	if bpmMin, bpmMax, ok := bpmRange(c); ok {
		beats = youtube.FilterByBPMRange(beats, bpmMin, bpmMax)
	}
	if typeBeat := c.Query("type"); typeBeat != "" {
		beats = youtube.FilterByTypeBeat(beats, typeBeat)
	}
	if channel := c.Query("channel"); channel != "" {
		beats = youtube.FilterByChannel(beats, channel)
	}

	c.JSON(http.StatusOK, SearchResponse{
		Beats:         beats,
		Channels:      youtube.UniqueChannels(result.Beats),
		NextPageToken: result.NextPageToken,
	})
}

func bpmRange(c *gin.Context) (int, int, bool) {
	rawMin, rawMax := c.Query("bpm_min"), c.Query("bpm_max")
	if rawMin == "" && rawMax == "" {
		return 0, 0, false
	}

	min, max := 0, 999
	if rawMin != "" {
		if parsed, err := strconv.Atoi(rawMin); err == nil {
			min = parsed
		}
	}
	if rawMax != "" {
		if parsed, err := strconv.Atoi(rawMax); err == nil {
			max = parsed
		}
	}
	return min, max, true
}
