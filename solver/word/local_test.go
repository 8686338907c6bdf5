package word

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalDict(t *testing.T) {
	got := NewLocalDict()
	assert.Greater(t, len(got.Words()), 0, "words should be loaded")
	assert.Zero(t, got.Skipped(), "embedded dictionary has no malformed entries")
	for _, w := range got.Words() {
		assert.Equal(t, Length, w.Len(), "word %q", w)
	}
}

func TestLoad(t *testing.T) {
	src := "could\nSOUND\n\nabc\ntoolong\ncould\n"
	d := Load(strings.NewReader(src))

	assert.Equal(t, 2, d.Skipped(), "abc and toolong should be dropped")
	require.Len(t, d.Words(), 2, "duplicates and blanks should be dropped")
	assert.Equal(t, New("could"), d.Words()[0])
	assert.Equal(t, New("sound"), d.Words()[1], "entries are lowercased")
}

func TestFromStrings(t *testing.T) {
	words, skipped := FromStrings([]string{"could", " sound ", "x", "toolong"})
	assert.Equal(t, 2, skipped)
	assert.Equal(t, []Word{New("could"), New("sound")}, words)
}

func TestDictionary_Validate(t *testing.T) {
	d := Load(strings.NewReader("could\nsound\n"))
	assert.True(t, d.Validate("could"))
	assert.True(t, d.Validate("COULD"), "validation is case-insensitive")
	assert.False(t, d.Validate("xyzzy"))
}

func TestDictionary_Generate(t *testing.T) {
	d := NewLocalDict()
	for i := 0; i < 10; i++ {
		w := d.Generate(Length)
		assert.True(t, d.Validate(w), "generated word %q should be in the dictionary", w)
	}
	assert.Panics(t, func() { d.Generate(Length + 1) })
}
