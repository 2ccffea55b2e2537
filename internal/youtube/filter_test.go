package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bulbeats/api/internal/models"
)

func sampleBeats() []models.Beat {
	return []models.Beat{
		{VideoID: "1", Title: "Dark Trap Beat in Am 140 BPM", ChannelTitle: "ProdA", BPM: 140, TypeBeat: "Drake"},
		{VideoID: "2", Title: "Chill lofi instrumental 80bpm", ChannelTitle: "ProdB", BPM: 80},
		{VideoID: "3", Title: "Drill Beat F#m", ChannelTitle: "ProdA", TypeBeat: "Central Cee"},
	}
}

func TestFilterByKey(t *testing.T) {
	beats := sampleBeats()

	filtered := FilterByKey(beats, "Am")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].VideoID)

	assert.Equal(t, beats, FilterByKey(beats, ""))
}

func TestFilterByBPMRange(t *testing.T) {
	beats := sampleBeats()

	fast := FilterByBPMRange(beats, 120, 150)
	assert.Len(t, fast, 1)
	assert.Equal(t, "1", fast[0].VideoID)

	// Beats without a parsed BPM never match a range.
	all := FilterByBPMRange(beats, 0, 999)
	assert.Len(t, all, 2)
}

func TestFilterByTypeBeat(t *testing.T) {
	beats := sampleBeats()

	filtered := FilterByTypeBeat(beats, "drake")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].VideoID)
}

func TestFilterByChannel(t *testing.T) {
	filtered := FilterByChannel(sampleBeats(), "ProdA")
	assert.Len(t, filtered, 2)
}

func TestUniqueChannels(t *testing.T) {
	channels := UniqueChannels(sampleBeats())
	assert.Equal(t, []string{"ProdA", "ProdB"}, channels)
}
