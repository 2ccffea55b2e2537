package resolver

import (
	"context"
	"fmt"
	"time"
)

// ManualBackend is the last-resort tier. It has no network dependency and
// never fails, but it also never resolves: it hands the caller a link to a
// human-operated extraction tool plus the canonical watch URL to paste into
// it. The resolution contract stays honest: either a playable URL comes
// back, or the result explicitly says none was produced.
type ManualBackend struct {
	toolURL string
}

func NewManualBackend(toolURL string) *ManualBackend {
	return &ManualBackend{toolURL: toolURL}
}

func (b *ManualBackend) Name() string           { return "manual" }
func (b *ManualBackend) Tier() Tier             { return TierManual }
func (b *ManualBackend) Timeout() time.Duration { return time.Second }

func (b *ManualBackend) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	return nil, ErrNoResult
}

// Hint builds the human-actionable fallback instructions.
func (b *ManualBackend) Hint(videoID string) *ManualHint {
	return &ManualHint{
		ToolURL:  fmt.Sprintf("%s/button/mp3/%s", b.toolURL, videoID),
		WatchURL: WatchURL(videoID),
		Message:  "open the tool and paste the video URL to download manually",
	}
}
