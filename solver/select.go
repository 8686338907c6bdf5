package solver

import (
	"errors"

	"github.com/kodekulture/wordle-solver/solver/word"
)

// ErrEmptyCandidates is returned when a guess is requested from an empty
// candidate set. The solver loop guards against it and reports the run as
// exhausted instead of propagating it.
var ErrEmptyCandidates = errors.New("no candidates remaining")

// Per-letter values used to rank candidates against the average word.
const (
	exactValue   = 1.0
	presentValue = 0.5
)

func scoreValue(s word.LetterStatuses) float64 {
	var v float64
	for _, st := range s {
		switch st {
		case word.Exact:
			v += exactValue
		case word.Present:
			v += presentValue
		}
	}
	return v
}

// Select returns the candidate whose score against the average word has
// the strictly greatest cumulative value. The first candidate wins ties,
// which keeps selection deterministic for a fixed candidate order.
func Select(average word.Word, candidates []word.Word) (word.Word, error) {
	if len(candidates) == 0 {
		return word.Word{}, ErrEmptyCandidates
	}
	best := candidates[0]
	bestValue := scoreValue(word.ScoreWord(best, average))
	for _, c := range candidates[1:] {
		if v := scoreValue(word.ScoreWord(c, average)); v > bestValue {
			best, bestValue = c, v
		}
	}
	return best, nil
}
