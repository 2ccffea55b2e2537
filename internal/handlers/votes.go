package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bulbeats/api/internal/models"
	"github.com/bulbeats/api/internal/services"
)

const defaultLeaderboardLimit = 50

type VoteHandlers struct {
	voteService services.VoteServiceInterface
}

func NewVoteHandlers(voteService services.VoteServiceInterface) *VoteHandlers {
	return &VoteHandlers{
		voteService: voteService,
	}
}

// CastVoteRequest represents the request body for voting on a beat
type CastVoteRequest struct {
	Choice       models.VoteChoice `json:"choice" binding:"required"`
	Username     string            `json:"username" binding:"required"`
	Title        string            `json:"title"`
	Thumbnail    string            `json:"thumbnail"`
	ChannelTitle string            `json:"channel_title"`
	BPM          int               `json:"bpm"`
	TypeBeat     string            `json:"type_beat"`
}

// CastVote handles POST /v1/beats/:id/votes
func (h *VoteHandlers) CastVote(c *gin.Context) {
	videoID := c.Param("id")

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	beat := models.Beat{
		VideoID:      videoID,
		Title:        req.Title,
		Thumbnail:    req.Thumbnail,
		ChannelTitle: req.ChannelTitle,
		BPM:          req.BPM,
		TypeBeat:     req.TypeBeat,
	}
	voter := models.User{
		Slug:     services.Slugify(req.Username),
		Username: req.Username,
	}
	if voter.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
		return
	}

	err := h.voteService.CastVote(c.Request.Context(), beat, req.Choice, voter)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidChoice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrVoteConflict):
			// Transient contention, the client should retry.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetRankingsResponse represents the leaderboard response
type GetRankingsResponse struct {
	Beats []models.BeatAggregate `json:"beats"`
}

// GetRankings handles GET /v1/rankings
func (h *VoteHandlers) GetRankings(c *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	beats, err := h.voteService.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rankings"})
		return
	}

	if beats == nil {
		beats = []models.BeatAggregate{}
	}
	c.JSON(http.StatusOK, GetRankingsResponse{Beats: beats})
}
