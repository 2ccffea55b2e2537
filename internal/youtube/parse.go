package youtube

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	bpmBefore = regexp.MustCompile(`(?i)(\d{2,3})\s*bpm`)
	bpmAfter  = regexp.MustCompile(`(?i)bpm\s*(\d{2,3})`)

	typeBeatPattern  = regexp.MustCompile(`(?i)\[?\s*(\w+(?:\s+\w+)?)\s+type\s*(?:beat)?\s*\]?`)
	typeBeatInverted = regexp.MustCompile(`(?i)type\s+(\w+(?:\s+\w+)?)\s+beat`)
)

// genericTypeWords are adjectives that commonly precede "type beat" without
// naming an artist.
var genericTypeWords = map[string]bool{
	"free":  true,
	"hard":  true,
	"dark":  true,
	"chill": true,
	"sad":   true,
	"trap":  true,
	"drill": true,
	"boom":  true,
	"bap":   true,
	"lofi":  true,
	"lo-fi": true,
}

// DecodeTitle unescapes HTML entities the search API embeds in titles
// (e.g. &amp; &quot; &#39;).
func DecodeTitle(title string) string {
	return html.UnescapeString(title)
}

// ParseBPM extracts a tempo from a video title, accepting "140 BPM",
// "140bpm" and "BPM 140". Values outside [60,200] are rejected.
func ParseBPM(title string) (int, bool) {
	for _, pattern := range []*regexp.Regexp{bpmBefore, bpmAfter} {
		match := pattern.FindStringSubmatch(title)
		if match == nil {
			continue
		}
		bpm, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if bpm >= 60 && bpm <= 200 {
			return bpm, true
		}
	}
	return 0, false
}

// ParseTypeBeat extracts the artist name from "type beat" titles
// (e.g. "Drake Type Beat", "[Travis Scott Type]"). Generic adjectives and
// single characters are rejected.
func ParseTypeBeat(title string) (string, bool) {
	for _, pattern := range []*regexp.Regexp{typeBeatPattern, typeBeatInverted} {
		match := pattern.FindStringSubmatch(title)
		if match == nil {
			continue
		}
		artist := strings.TrimSpace(match[1])
		if len(artist) > 1 && !genericTypeWords[strings.ToLower(artist)] {
			return artist, true
		}
	}
	return "", false
}
