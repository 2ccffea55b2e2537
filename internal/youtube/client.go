package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bulbeats/api/internal/models"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3/search"

// Client searches the YouTube Data API v3 for beat candidates, keeping the
// API key server-side.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SearchResult is one page of candidates plus the cursor for the next page.
type SearchResult struct {
	Beats         []models.Beat `json:"beats"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

// Search runs a music-category video search for the given free-text query.
// Queries that do not already mention beats or instrumentals are enriched
// with "type beat instrumental" so genre names alone return usable results.
func (c *Client) Search(ctx context.Context, query, pageToken string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResult{Beats: []models.Beat{}}, nil
	}

	lower := strings.ToLower(query)
	if !strings.Contains(lower, "beat") && !strings.Contains(lower, "instrumental") {
		query = query + " type beat instrumental"
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoCategoryId", "10")
	params.Set("maxResults", "25")
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	beats := make([]models.Beat, 0, len(data.Items))
	for _, item := range data.Items {
		if item.ID.VideoID == "" {
			continue
		}

		title := DecodeTitle(item.Snippet.Title)
		thumbnail := item.Snippet.Thumbnails.High.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Medium.URL
		}

		beat := models.Beat{
			VideoID:      item.ID.VideoID,
			Title:        title,
			Thumbnail:    thumbnail,
			ChannelTitle: DecodeTitle(item.Snippet.ChannelTitle),
		}
		if bpm, ok := ParseBPM(title); ok {
			beat.BPM = bpm
		}
		if artist, ok := ParseTypeBeat(title); ok {
			beat.TypeBeat = artist
		}

		beats = append(beats, beat)
	}

	return &SearchResult{
		Beats:         beats,
		NextPageToken: data.NextPageToken,
	}, nil
}
