package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RelayBackend forwards the extraction request to a server-mediated relay
// that re-issues it from its own network egress. Used when direct calls are
// rate limited or blocked.
type RelayBackend struct {
	relayURL   string
	timeout    time.Duration
	httpClient *http.Client
}

func NewRelayBackend(relayURL string, timeout time.Duration) *RelayBackend {
	return &RelayBackend{
		relayURL:   relayURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

func (b *RelayBackend) Name() string           { return "relay" }
func (b *RelayBackend) Tier() Tier             { return TierProxy }
func (b *RelayBackend) Timeout() time.Duration { return b.timeout }

type relayRequest struct {
	VideoID string `json:"videoId"`
}

type relayResponse struct {
	Status   string `json:"status"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

func (b *RelayBackend) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	body, err := json.Marshal(relayRequest{VideoID: req.VideoID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.relayURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Status == "tunnel" || data.Status == "redirect" {
		return &Resolved{
			AudioURL:          data.URL,
			SuggestedFilename: SanitizeFilename(data.Filename),
		}, nil
	}

	if data.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoResult, data.Error)
	}
	return nil, fmt.Errorf("relay returned status %q (http %d)", data.Status, resp.StatusCode)
}
