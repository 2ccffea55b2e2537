package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/bulbeats/api/internal/models"
	"github.com/bulbeats/api/internal/youtube"
)

type stubSearchClient struct {
	result *youtube.SearchResult
	err    error
}

func (s *stubSearchClient) Search(ctx context.Context, query, pageToken string) (*youtube.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type SearchHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	client *stubSearchClient
}

func (suite *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.client = &stubSearchClient{result: &youtube.SearchResult{
		Beats: []models.Beat{
			{VideoID: "1", Title: "Trap Beat Am", ChannelTitle: "ProdA", BPM: 140},
			{VideoID: "2", Title: "Lofi Beat", ChannelTitle: "ProdB", BPM: 80},
		},
		NextPageToken: "next",
	}}

	suite.router = gin.New()
	suite.router.GET("/v1/beats/search", NewSearchHandlers(suite.client).Search)
}

func (suite *SearchHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SearchHandlerTestSuite) TestSearchRequiresQuery() {
	w := suite.get("/v1/beats/search")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SearchHandlerTestSuite) TestSearchReturnsPageWithChannels() {
	w := suite.get("/v1/beats/search?q=trap")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp SearchResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp.Beats, 2)
	assert.Equal(suite.T(), []string{"ProdA", "ProdB"}, resp.Channels)
	assert.Equal(suite.T(), "next", resp.NextPageToken)
}

func (suite *SearchHandlerTestSuite) TestSearchAppliesBPMFilter() {
	w := suite.get("/v1/beats/search?q=trap&bpm_min=120&bpm_max=150")

	var resp SearchResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp.Beats, 1)
	assert.Equal(suite.T(), "1", resp.Beats[0].VideoID)
	// Channel enumeration still reflects the unfiltered page.
	assert.Len(suite.T(), resp.Channels, 2)
}

func (suite *SearchHandlerTestSuite) TestSearchAppliesChannelFilter() {
	w := suite.get("/v1/beats/search?q=trap&channel=ProdB")

	var resp SearchResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp.Beats, 1)
	assert.Equal(suite.T(), "2", resp.Beats[0].VideoID)
}

func (suite *SearchHandlerTestSuite) TestSearchUpstreamFailure() {
	suite.client.err = errors.New("quota exceeded")

	w := suite.get("/v1/beats/search?q=trap")
	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func TestSearchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}
