package resolver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// YtdlpBackend shells out to yt-dlp to extract and re-encode the audio on
// the server itself. Slowest option, so it sits behind the network backends
// with a long timeout. The produced file is served from OutputDir by the
// downloads handler.
type YtdlpBackend struct {
	path      string
	outputDir string
	servePath string
	timeout   time.Duration
}

func NewYtdlpBackend(path, outputDir, servePath string, timeout time.Duration) *YtdlpBackend {
	return &YtdlpBackend{
		path:      path,
		outputDir: outputDir,
		servePath: strings.TrimSuffix(servePath, "/"),
		timeout:   timeout,
	}
}

func (b *YtdlpBackend) Name() string           { return "yt-dlp" }
func (b *YtdlpBackend) Tier() Tier             { return TierProxy }
func (b *YtdlpBackend) Timeout() time.Duration { return b.timeout }

// OutputDir is where finished files land, for the file-serving handler.
func (b *YtdlpBackend) OutputDir() string { return b.outputDir }

func (b *YtdlpBackend) Resolve(ctx context.Context, req Request) (*Resolved, error) {
	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	safeTitle := SanitizeFilename(req.Title)
	if safeTitle == "" {
		safeTitle = req.VideoID
	}
	outputTemplate := filepath.Join(b.outputDir, safeTitle+".%(ext)s")

	// CommandContext kills the process when the per-backend deadline expires.
	cmd := exec.CommandContext(ctx, b.path,
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"-o", outputTemplate,
		"--no-playlist",
		WatchURL(req.VideoID),
	)

	output, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %s", lastLine(output))
	}

	filename := safeTitle + ".mp3"
	if _, err := os.Stat(filepath.Join(b.outputDir, filename)); err != nil {
		return nil, fmt.Errorf("yt-dlp finished but output missing: %w", err)
	}

	return &Resolved{
		AudioURL:          b.servePath + "/" + filename,
		SuggestedFilename: filename,
	}, nil
}

func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
