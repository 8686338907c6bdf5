package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle-solver/solver/word"
)

var testDictionary = []string{
	"sound", "could", "count", "bound", "cream",
	"world", "occur", "tiger", "spoor", "sheer",
}

func TestRun_Solve(t *testing.T) {
	dict := toWords(testDictionary...)

	var observed []Observation
	run := New(word.New("could"), dict)
	status := run.Solve(ReporterFunc(func(o Observation) { observed = append(observed, o) }))

	require.Equal(t, Solved, status)
	assert.Equal(t, word.New("could"), run.Guess())
	assert.True(t, run.Score().AllExact())
	assert.LessOrEqual(t, run.Attempts(), len(dict), "bounded by the dictionary size")
	assert.NotNil(t, run.StartedAt)
	assert.NotNil(t, run.EndedAt)

	// one observation per non-terminal attempt, numbered from 1
	assert.Len(t, observed, run.Attempts()-1)
	remaining := len(dict)
	for i, o := range observed {
		assert.Equal(t, i+1, o.Attempt)
		assert.False(t, o.Score.AllExact(), "non-terminal iterations never report all-exact")
		assert.Less(t, o.Remaining, remaining, "candidate set shrinks strictly while running")
		remaining = o.Remaining
	}
	assert.Equal(t, observed, run.History())
}

func TestRun_Exhausted(t *testing.T) {
	run := New(word.New("quill"), toWords("sound", "could", "count"))
	status := run.Solve(nil)

	require.Equal(t, Exhausted, status)
	assert.NotEmpty(t, run.Guess().Word, "exhaustion carries the last guess")
	assert.Zero(t, run.Remaining())
	assert.NotNil(t, run.EndedAt)
}

func TestRun_EmptyDictionary(t *testing.T) {
	run := New(word.New("could"), nil)
	status := run.Solve(nil)

	require.Equal(t, Exhausted, status)
	assert.Empty(t, run.Guess().Word, "nothing was ever guessed")
}

func TestRun_StepIsTerminalAfterFinish(t *testing.T) {
	run := New(word.New("could"), toWords("could"))
	require.Equal(t, Solved, run.Solve(nil))

	attempts := run.Attempts()
	assert.Equal(t, Solved, run.Step(nil), "stepping a finished run does nothing")
	assert.Equal(t, attempts, run.Attempts())
}

func TestRun_Result(t *testing.T) {
	dict := toWords(testDictionary...)

	run := New(word.New("could"), dict)
	res := run.Result()
	assert.Empty(t, res.Answer.Word, "the answer is hidden while running")
	assert.Equal(t, Running.String(), res.Status)

	run.Solve(nil)
	res = run.Result()
	assert.Equal(t, word.New("could"), res.Answer)
	assert.Equal(t, Solved.String(), res.Status)
	assert.Equal(t, run.Attempts(), res.Attempts)
	assert.Len(t, res.History, run.Attempts()-1)
}

// Every solve over the full embedded dictionary must terminate for every
// dictionary answer; spot-check a handful.
func TestRun_SolvesEmbeddedDictionaryAnswers(t *testing.T) {
	dict := word.NewLocalDict().Words()
	for _, answer := range []string{"could", "sound", "world", "sheer", "occur"} {
		t.Run(answer, func(t *testing.T) {
			run := New(word.New(answer), dict)
			require.Equal(t, Solved, run.Solve(nil))
			assert.Equal(t, word.New(answer), run.Guess())
			assert.LessOrEqual(t, run.Attempts(), len(dict))
		})
	}
}
