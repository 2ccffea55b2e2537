package resolver

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Resolver runs the fallback cascade: backends are tried strictly in
// priority order, the first resolved result wins, and individual backend
// failures are absorbed. Only exhausting every backend is terminal.
type Resolver struct {
	backends []Backend
	logger   *zap.Logger
}

func New(logger *zap.Logger, descriptors ...Descriptor) *Resolver {
	return &Resolver{
		backends: orderByPriority(descriptors),
		logger:   logger,
	}
}

// Backends returns the configured fallback order, for diagnostics.
func (r *Resolver) Backends() []Backend {
	out := make([]Backend, len(r.backends))
	copy(out, r.backends)
	return out
}

// Resolve tries each backend in order until one produces a direct audio URL.
// Exactly one of the three statuses comes back: resolved, timed_out (at
// least one backend hit its deadline and none resolved) or exhausted.
func (r *Resolver) Resolve(ctx context.Context, videoID, title string) Resolution {
	req := Request{VideoID: videoID, Title: title}

	var attempts []Attempt
	var hint *ManualHint
	sawTimeout := false

	for _, backend := range r.backends {
		if provider, ok := backend.(hintProvider); ok {
			hint = provider.Hint(videoID)
			attempts = append(attempts, Attempt{
				Backend: backend.Name(),
				Outcome: OutcomeNoResult,
				Detail:  "manual tool only, no direct URL",
			})
			continue
		}

		backendCtx, cancel := context.WithTimeout(ctx, backend.Timeout())
		resolved, err := backend.Resolve(backendCtx, req)
		cancel()

		if resolved != nil {
			if resolved.SuggestedFilename == "" {
				resolved.SuggestedFilename = SanitizeFilename(title) + ".mp3"
			}
			r.logger.Info("resolved audio url",
				zap.String("video_id", videoID),
				zap.String("backend", backend.Name()),
				zap.Int("attempts", len(attempts)+1))
			return Resolution{
				Status:   StatusResolved,
				Resolved: resolved,
				Attempts: attempts,
			}
		}

		attempt := Attempt{Backend: backend.Name()}
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			attempt.Outcome = OutcomeTimeout
			attempt.Detail = fmt.Sprintf("no response within %s", backend.Timeout())
			sawTimeout = true
		case err == nil, errors.Is(err, ErrNoResult):
			attempt.Outcome = OutcomeNoResult
			if err != nil {
				attempt.Detail = err.Error()
			}
		default:
			attempt.Outcome = OutcomeError
			attempt.Detail = err.Error()
		}

		r.logger.Warn("backend attempt failed",
			zap.String("video_id", videoID),
			zap.String("backend", backend.Name()),
			zap.String("outcome", string(attempt.Outcome)))
		attempts = append(attempts, attempt)
	}

	status := StatusExhausted
	if sawTimeout {
		status = StatusTimedOut
	}

	r.logger.Warn("resolution failed",
		zap.String("video_id", videoID),
		zap.String("status", string(status)),
		zap.Int("attempts", len(attempts)))

	return Resolution{
		Status:     status,
		Attempts:   attempts,
		ManualHint: hint,
	}
}
