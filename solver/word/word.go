// Package word implements the letter-matching core of the solver:
// aligning a guess against an answer and scoring the alignment.
package word

import (
	"encoding/json"
	"strings"
)

// LetterStatus is an enum type for the feedback of a single letter in a guess
type (
	LetterStatus   int
	LetterStatuses []LetterStatus
)

const (
	Absent  LetterStatus = iota // The letter matches no unclaimed position of the answer
	Present                     // The letter is in the answer but in another position
	Exact                       // The letter is in the answer at this exact position
)

// Glyphs used when rendering a score for humans.
const (
	exactGlyph   = '█'
	presentGlyph = '▪'
	absentGlyph  = '□'
)

func (s LetterStatuses) Ints() []int {
	ints := make([]int, len(s))
	for i, v := range s {
		ints[i] = int(v)
	}
	return ints
}

// Equal reports whether two scores are elementwise identical.
// Candidate filtering and solved-detection are both defined on this equality.
func (s LetterStatuses) Equal(other LetterStatuses) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if v != other[i] {
			return false
		}
	}
	return true
}

// AllExact reports whether every position of the score is Exact.
func (s LetterStatuses) AllExact() bool {
	if len(s) == 0 {
		return false
	}
	for _, v := range s {
		if v != Exact {
			return false
		}
	}
	return true
}

// Render returns the one-glyph-per-letter representation of the score:
// █ for Exact, ▪ for Present and □ for Absent.
func (s LetterStatuses) Render() string {
	var b strings.Builder
	for _, v := range s {
		switch v {
		case Exact:
			b.WriteRune(exactGlyph)
		case Present:
			b.WriteRune(presentGlyph)
		default:
			b.WriteRune(absentGlyph)
		}
	}
	return b.String()
}

// Word is an immutable dictionary word. Words are lowercased on creation
// so that matching is case-insensitive.
type Word struct {
	Word string
}

func New(word string) Word {
	return Word{strings.ToLower(word)}
}

func (w Word) Runes() []rune {
	return []rune(w.Word)
}

// Len returns the number of letters in the word, not the number of bytes.
func (w Word) Len() int {
	return len(w.Runes())
}

func (w Word) String() string {
	return w.Word
}

func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Word)
}

func (w *Word) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*w = New(s)
	return nil
}

// Correspondence maps every position of a guess to the answer position it
// was matched with: entry i is 0 when the letter matched nothing, otherwise
// the 1-based index of the claimed answer position. An answer position is
// claimed by at most one entry, and exact matches always claim their own
// position (entry i == i+1).
type Correspondence []int

// Align aligns guess against answer in two passes. The first pass claims
// every exact position. The second pass walks the remaining guess letters
// left to right and gives each one the first unclaimed answer position
// holding the same letter. The claiming is greedy: with duplicate letters
// the leftmost guess letter wins, even when a later assignment would have
// matched more letters overall.
//
// The correspondence is sized by the guess itself and answer positions are
// never read past the answer's own length, so words of unequal length
// align without error.
func Align(guess, answer Word) Correspondence {
	g, a := guess.Runes(), answer.Runes()
	corr := make(Correspondence, len(g))
	claimed := make([]bool, len(a))

	for i := range g {
		if i < len(a) && g[i] == a[i] {
			corr[i] = i + 1
			claimed[i] = true
		}
	}

	for i := range g {
		if corr[i] != 0 {
			continue
		}
		for j := range a {
			if j == i || claimed[j] {
				continue
			}
			if g[i] == a[j] {
				corr[i] = j + 1
				claimed[j] = true
				break
			}
		}
	}
	return corr
}

// Score converts the correspondence into per-position feedback: Exact when
// an entry claimed its own position, Present when it claimed any other
// position, Absent when it claimed nothing.
func (c Correspondence) Score() LetterStatuses {
	score := make(LetterStatuses, len(c))
	for i, v := range c {
		switch {
		case v == i+1:
			score[i] = Exact
		case v != 0:
			score[i] = Present
		default:
			score[i] = Absent
		}
	}
	return score
}

// ScoreWord scores guess against answer.
func ScoreWord(guess, answer Word) LetterStatuses {
	return Align(guess, answer).Score()
}

// StillPossible reports whether candidate could still be the answer after
// guess produced score: guessing against the candidate must reproduce the
// identical score vector.
func StillPossible(guess Word, score LetterStatuses, candidate Word) bool {
	return ScoreWord(guess, candidate).Equal(score)
}
