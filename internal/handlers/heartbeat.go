package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type HeartbeatResponse struct {
	Status    string `json:"status"`
	CommitSHA string `json:"commit_sha"`
}

// Heartbeat handles GET /heartbeat
func Heartbeat(c *gin.Context) {
	commitSHA := os.Getenv("COMMIT_SHA")
	if commitSHA == "" {
		commitSHA = "unknown"
	}

	c.JSON(http.StatusOK, HeartbeatResponse{
		Status:    "ok",
		CommitSHA: commitSHA,
	})
}
