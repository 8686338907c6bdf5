package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle-solver/solver/word"
)

func TestSelect(t *testing.T) {
	testCases := []struct {
		average    string
		candidates []string
		expected   string
		desc       string
	}{
		{"shger", []string{"tiger", "spoor", "sheer"}, "sheer", "closest to the average word wins"},
		{"could", []string{"sound", "could", "count"}, "could", "exact candidate beats partial ones"},
		{"zzzzz", []string{"sound", "could"}, "sound", "all equal values fall back to the first candidate"},
		{"could", []string{"duloc"}, "duloc", "single candidate"},
	}
	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Select(word.New(tt.average), toWords(tt.candidates...))
			require.NoError(t, err)
			assert.Equal(t, word.New(tt.expected), got)
		})
	}
}

func TestSelect_EmptyCandidates(t *testing.T) {
	_, err := Select(word.New("could"), nil)
	assert.ErrorIs(t, err, ErrEmptyCandidates)
}

func TestScoreValue(t *testing.T) {
	assert.Equal(t, 5.0, scoreValue(word.ScoreWord(word.New("could"), word.New("could"))))
	// sound vs could: three exact letters, nothing else
	assert.Equal(t, 3.0, scoreValue(word.ScoreWord(word.New("sound"), word.New("could"))))
	// occur vs could: three present letters at half value
	assert.Equal(t, 1.5, scoreValue(word.ScoreWord(word.New("occur"), word.New("could"))))
	assert.Equal(t, 0.0, scoreValue(word.ScoreWord(word.New("seize"), word.New("world"))))
}
