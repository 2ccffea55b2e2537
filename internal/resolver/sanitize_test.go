package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`Dark 140 BPM Type Beat`, `Dark 140 BPM Type Beat`},
		{`a<b>c:d"e/f\g|h?i*j`, `a_b_c_d_e_f_g_h_i_j`},
		{``, ``},
		{`<>:"/\|?*`, `_________`},
		{`ünïcode beat ♪`, `ünïcode beat ♪`},
	}

	for _, test := range tests {
		result := SanitizeFilename(test.input)
		assert.Equal(t, test.expected, result, "input: %q", test.input)
	}
}

func TestSanitizeFilenameIsIdempotent(t *testing.T) {
	inputs := []string{
		`Dark "Trap" Beat / 140bpm`,
		`already_clean`,
		`<>:"/\|?*`,
	}

	for _, input := range inputs {
		once := SanitizeFilename(input)
		assert.Equal(t, once, SanitizeFilename(once))
	}
}

func TestSanitizeFilenameIsTotal(t *testing.T) {
	result := SanitizeFilename(`x<y>z:w"v/u\t|s?r*q`)
	assert.False(t, strings.ContainsAny(result, illegalFilenameChars))
}

func TestSelectBestCandidate(t *testing.T) {
	a := Candidate{URL: "a", BitrateKbps: 128}
	b := Candidate{URL: "b", BitrateKbps: 320}
	c := Candidate{URL: "c", BitrateKbps: 320}

	best, ok := SelectBestCandidate([]Candidate{a, b, c})
	assert.True(t, ok)
	assert.Equal(t, "b", best.URL, "ties break by original list order")

	// Determinism: same input, same choice.
	again, _ := SelectBestCandidate([]Candidate{a, b, c})
	assert.Equal(t, best, again)

	_, ok = SelectBestCandidate(nil)
	assert.False(t, ok)
}
