package resolver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Tier is the resolution strategy class a backend belongs to.
type Tier string

const (
	TierDirect Tier = "direct"
	TierProxy  Tier = "proxy"
	TierManual Tier = "manual-fallback"
)

// ErrNoResult signals that a backend answered but had nothing usable; the
// resolution moves on to the next backend.
var ErrNoResult = errors.New("backend returned no result")

// Request identifies the video to resolve. Title is advisory and only used
// to build filename suggestions.
type Request struct {
	VideoID string
	Title   string
}

// Backend turns a video identifier into a downloadable audio resource.
// Resolve must honor context cancellation so an expired per-backend timeout
// releases the in-flight connection.
type Backend interface {
	Name() string
	Tier() Tier
	Timeout() time.Duration
	Resolve(ctx context.Context, req Request) (*Resolved, error)
}

// hintProvider is implemented by backends that cannot resolve a URL
// themselves but can point a human at a tool that will.
type hintProvider interface {
	Hint(videoID string) *ManualHint
}

// Descriptor pairs a backend with its position in the fallback order.
// Lower priority numbers are tried first.
type Descriptor struct {
	Priority int
	Backend  Backend
}

// orderByPriority returns backends sorted ascending by priority, ties kept
// in registration order.
func orderByPriority(descriptors []Descriptor) []Backend {
	sorted := make([]Descriptor, len(descriptors))
	copy(sorted, descriptors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	backends := make([]Backend, len(sorted))
	for i, d := range sorted {
		backends[i] = d.Backend
	}
	return backends
}

// WatchURL builds the canonical source URL for a video identifier.
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}
