package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CobaltBackend calls one cobalt extraction API instance directly. Multiple
// instances are registered as separate backends so each gets its own slot in
// the fallback order.
type CobaltBackend struct {
	name        string
	instanceURL string
	timeout     time.Duration
	httpClient  *http.Client
}

func NewCobaltBackend(name, instanceURL string, timeout time.Duration) *CobaltBackend {
	return &CobaltBackend{
		name:        name,
		instanceURL: instanceURL,
		timeout:     timeout,
		httpClient:  &http.Client{},
	}
}

func (b *CobaltBackend) Name() string           { return b.name }
func (b *CobaltBackend) Tier() Tier             { return TierDirect }
func (b *CobaltBackend) Timeout() time.Duration { return b.timeout }

type cobaltRequest struct {
	URL          string `json:"url"`
	DownloadMode string `json:"downloadMode"`
	AudioFormat  string `json:"audioFormat"`
}

type cobaltResponse struct {
	Status   string      `json:"status"`
	URL      string      `json:"url"`
	Filename string      `json:"filename"`
	Picker   []Candidate `json:"picker"`
	Error    struct {
		Code string `json:"code"`
	} `json:"error"`
}

func (b *CobaltBackend) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	body, err := json.Marshal(cobaltRequest{
		URL:          WatchURL(req.VideoID),
		DownloadMode: "audio",
		AudioFormat:  "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.instanceURL+"/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data cobaltResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch data.Status {
	case "tunnel", "redirect":
		return &Resolved{
			AudioURL:          data.URL,
			SuggestedFilename: SanitizeFilename(data.Filename),
		}, nil
	case "picker":
		best, ok := SelectBestCandidate(data.Picker)
		if !ok {
			return nil, fmt.Errorf("%w: empty picker", ErrNoResult)
		}
		return &Resolved{
			AudioURL:    best.URL,
			BitrateKbps: best.BitrateKbps,
		}, nil
	case "error":
		return nil, fmt.Errorf("%w: %s", ErrNoResult, data.Error.Code)
	default:
		return nil, fmt.Errorf("unexpected status %q (http %d)", data.Status, resp.StatusCode)
	}
}
