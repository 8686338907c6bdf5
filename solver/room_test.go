package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle-solver/solver/word"
)

type saverFunc func(context.Context, Result) error

func (f saverFunc) SaveResult(ctx context.Context, r Result) error { return f(ctx, r) }

func TestRoom_SolvesAndSaves(t *testing.T) {
	saved := make(chan Result, 1)
	run := New(word.New("could"), toWords("sound", "could", "count", "bound"))
	room := NewRoom(run, saverFunc(func(_ context.Context, r Result) error {
		saved <- r
		return nil
	}))
	room.interval = 0 // no viewers to pace for

	room.Start()

	select {
	case r := <-saved:
		assert.Equal(t, Solved.String(), r.Status)
		assert.Equal(t, word.New("could"), r.Answer)
	case <-time.After(5 * time.Second):
		t.Fatal("room did not finish in time")
	}
	assert.True(t, room.IsClosed())
	assert.Equal(t, run.ID.String(), room.ID())
}

func TestRoom_ResultWhileRunning(t *testing.T) {
	run := New(word.New("could"), toWords("sound", "could", "count"))
	room := NewRoom(run, nil)

	res := room.Result()
	require.Equal(t, Running.String(), res.Status)
	assert.Empty(t, res.Answer.Word)
	assert.False(t, room.IsClosed())
}
