// local.go: the dictionary of candidate words the solver draws from

package word

import (
	"bufio"
	_ "embed"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	//go:embed resources/five_letter_words.txt
	fileContent string

	// Length is the length of the words in the dictionary
	Length = 5
)

// Dictionary is an ordered list of same-length words read from a
// newline-delimited source. Entries whose length differs from Length are
// rejected at this boundary and counted, so the solver core only ever
// sees well-formed words.
type Dictionary struct {
	words   []Word
	index   map[string]struct{}
	skipped int
}

// NewLocalDict loads the dictionary embedded in the binary.
func NewLocalDict() *Dictionary {
	return Load(strings.NewReader(fileContent))
}

// LoadFile loads a dictionary from a newline-delimited file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f), nil
}

// Load reads one word per line, lowercasing entries and skipping the
// malformed ones. The skipped count is reported once per load.
func Load(r io.Reader) *Dictionary {
	d := Dictionary{index: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		w := New(line)
		if w.Len() != Length {
			d.skipped++
			continue
		}
		if _, ok := d.index[w.Word]; ok {
			continue
		}
		d.words = append(d.words, w)
		d.index[w.Word] = struct{}{}
	}
	if d.skipped > 0 {
		log.Warn().Int("skipped", d.skipped).Msg("dictionary entries with wrong length were dropped")
	}
	return &d
}

// FromStrings builds a candidate list out of raw strings, applying the
// same malformed-word policy as Load. It returns the word list and the
// number of rejected entries.
func FromStrings(raw []string) ([]Word, int) {
	words := make([]Word, 0, len(raw))
	var skipped int
	for _, s := range raw {
		w := New(strings.TrimSpace(s))
		if w.Len() != Length {
			skipped++
			continue
		}
		words = append(words, w)
	}
	return words, skipped
}

// Words returns the dictionary words in load order.
func (d *Dictionary) Words() []Word {
	return d.words
}

// Skipped returns the number of malformed entries dropped during load.
func (d *Dictionary) Skipped() int {
	return d.skipped
}

// Validate reports whether the word belongs to the dictionary.
func (d *Dictionary) Validate(guess string) bool {
	_, ok := d.index[strings.ToLower(guess)]
	return ok
}

// Generate returns a random word from the dictionary, used when the
// caller does not supply an answer of their own.
func (d *Dictionary) Generate(length int) string {
	if length != Length {
		panic("only " + strconv.Itoa(Length) + " letter words are supported")
	}
	return d.words[rand.Intn(len(d.words))].Word
}
