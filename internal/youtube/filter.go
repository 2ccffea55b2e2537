package youtube

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bulbeats/api/internal/models"
)

// FilterByKey keeps beats whose title mentions the musical key as a whole
// word (e.g. "Am", "F#m").
func FilterByKey(beats []models.Beat, key string) []models.Beat {
	if key == "" {
		return beats
	}

	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
	if err != nil {
		return beats
	}

	filtered := make([]models.Beat, 0, len(beats))
	for _, beat := range beats {
		if pattern.MatchString(beat.Title) {
			filtered = append(filtered, beat)
		}
	}
	return filtered
}

// FilterByBPMRange keeps beats with a parsed BPM inside [min, max]. Beats
// without a parsed BPM never match a range.
func FilterByBPMRange(beats []models.Beat, min, max int) []models.Beat {
	filtered := make([]models.Beat, 0, len(beats))
	for _, beat := range beats {
		if beat.BPM == 0 {
			continue
		}
		if beat.BPM >= min && beat.BPM <= max {
			filtered = append(filtered, beat)
		}
	}
	return filtered
}

// FilterByTypeBeat keeps beats whose extracted type-beat artist matches,
// case-insensitively.
func FilterByTypeBeat(beats []models.Beat, typeBeat string) []models.Beat {
	if typeBeat == "" {
		return beats
	}

	filtered := make([]models.Beat, 0, len(beats))
	for _, beat := range beats {
		if strings.EqualFold(beat.TypeBeat, typeBeat) {
			filtered = append(filtered, beat)
		}
	}
	return filtered
}

// FilterByChannel keeps beats from the named channel.
func FilterByChannel(beats []models.Beat, channel string) []models.Beat {
	if channel == "" {
		return beats
	}

	filtered := make([]models.Beat, 0, len(beats))
	for _, beat := range beats {
		if beat.ChannelTitle == channel {
			filtered = append(filtered, beat)
		}
	}
	return filtered
}

// UniqueChannels returns the distinct channel titles in sorted order.
func UniqueChannels(beats []models.Beat) []string {
	seen := make(map[string]bool)
	var channels []string
	for _, beat := range beats {
		if !seen[beat.ChannelTitle] {
			seen[beat.ChannelTitle] = true
			channels = append(channels, beat.ChannelTitle)
		}
	}
	sort.Strings(channels)
	return channels
}
