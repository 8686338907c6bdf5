package solver

import (
	"github.com/kodekulture/wordle-solver/solver/word"
)

// positionFreq tallies the letters seen at one position of the candidate
// words. The order slice remembers first-seen order so tie-breaking does
// not depend on map iteration.
type positionFreq struct {
	order  []rune
	counts map[rune]int
}

func (p *positionFreq) add(r rune) {
	if _, ok := p.counts[r]; !ok {
		p.order = append(p.order, r)
	}
	p.counts[r]++
}

// FrequencyTable holds independent letter tallies for every word position.
// It is rebuilt from scratch on every solver iteration so that it always
// reflects the current candidate set.
type FrequencyTable struct {
	positions []positionFreq
}

// BuildTable tallies the letter occupying every position of every word.
// Missing letters count as zero; there is no default entry for letters
// that were never seen.
func BuildTable(words []word.Word) FrequencyTable {
	var t FrequencyTable
	for _, w := range words {
		for i, r := range w.Runes() {
			for len(t.positions) <= i {
				t.positions = append(t.positions, positionFreq{counts: make(map[rune]int)})
			}
			t.positions[i].add(r)
		}
	}
	return t
}

// Count returns the tally of letter r at position i.
func (t FrequencyTable) Count(i int, r rune) int {
	if i < 0 || i >= len(t.positions) {
		return 0
	}
	return t.positions[i].counts[r]
}

// Synthesize assembles the hypothetical average word: for every position
// the letter with the strictly highest tally, first-seen letter winning
// ties. The result usually is not a dictionary word; it only serves as a
// frequency-weighted target for guess selection.
func (t FrequencyTable) Synthesize() word.Word {
	runes := make([]rune, 0, len(t.positions))
	for _, p := range t.positions {
		var best rune
		var bestCount int
		for _, r := range p.order {
			if p.counts[r] > bestCount {
				best, bestCount = r, p.counts[r]
			}
		}
		if bestCount > 0 {
			runes = append(runes, best)
		}
	}
	return word.New(string(runes))
}
