package resolver

import "sort"

// Candidate is one audio rendition offered by a search-style backend.
type Candidate struct {
	URL         string `json:"url"`
	BitrateKbps int    `json:"bitrate"`
}

// SelectBestCandidate picks the highest-bitrate rendition. The sort is
// stable with ties broken by original list order, so repeated resolution
// against the same backend state yields the same choice.
func SelectBestCandidate(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BitrateKbps > sorted[j].BitrateKbps
	})

	return sorted[0], true
}
