package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/bulbeats/api/internal/resolver"
)

type stubResolver struct {
	result      resolver.Resolution
	lastVideoID string
	lastTitle   string
}

func (s *stubResolver) Resolve(ctx context.Context, videoID, title string) resolver.Resolution {
	s.lastVideoID = videoID
	s.lastTitle = title
	return s.result
}

type DownloadHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	resolver *stubResolver
}

func (suite *DownloadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.resolver = &stubResolver{}
	handlers := NewDownloadHandlers(suite.resolver, "")

	suite.router = gin.New()
	suite.router.POST("/v1/downloads/resolve", handlers.Resolve)
	suite.router.GET("/v1/downloads/files/:name", handlers.ServeFile)
}

func (suite *DownloadHandlerTestSuite) postResolve(body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/downloads/resolve", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DownloadHandlerTestSuite) TestResolveSuccess() {
	suite.resolver.result = resolver.Resolution{
		Status: resolver.StatusResolved,
		Resolved: &resolver.Resolved{
			AudioURL:          "https://audio.example/a.mp3",
			SuggestedFilename: "beat.mp3",
		},
	}

	w := suite.postResolve(ResolveRequest{VideoID: "vid-1", Title: "beat"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "vid-1", suite.resolver.lastVideoID)

	var resp resolver.Resolution
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), resolver.StatusResolved, resp.Status)
	assert.Equal(suite.T(), "https://audio.example/a.mp3", resp.Resolved.AudioURL)
}

func (suite *DownloadHandlerTestSuite) TestResolveExhaustedReturnsBadGatewayWithHint() {
	suite.resolver.result = resolver.Resolution{
		Status: resolver.StatusExhausted,
		Attempts: []resolver.Attempt{
			{Backend: "cobalt-1", Outcome: resolver.OutcomeError, Detail: "upstream broke"},
		},
		ManualHint: &resolver.ManualHint{
			ToolURL:  "https://yt-mp3s.me/button/mp3/vid-1",
			WatchURL: "https://www.youtube.com/watch?v=vid-1",
		},
	}

	w := suite.postResolve(ResolveRequest{VideoID: "vid-1"})

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)

	var resp resolver.Resolution
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), resolver.StatusExhausted, resp.Status)
	assert.NotNil(suite.T(), resp.ManualHint)
	assert.Len(suite.T(), resp.Attempts, 1)
}

func (suite *DownloadHandlerTestSuite) TestResolveTimedOut() {
	suite.resolver.result = resolver.Resolution{Status: resolver.StatusTimedOut}

	w := suite.postResolve(ResolveRequest{VideoID: "vid-1"})
	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *DownloadHandlerTestSuite) TestResolveMissingVideoID() {
	w := suite.postResolve(map[string]string{"title": "no id"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *DownloadHandlerTestSuite) TestServeFileDisabledWithoutLocalBackend() {
	req := httptest.NewRequest(http.MethodGet, "/v1/downloads/files/beat.mp3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestDownloadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DownloadHandlerTestSuite))
}
