// Package solver plays the greedy letter-frequency strategy: guess the
// candidate closest to the synthesized average word, score it against the
// answer and keep only the candidates that would reproduce that score.
package solver

import (
	"time"

	"github.com/google/uuid"

	"github.com/kodekulture/wordle-solver/solver/word"
)

type Status int

const (
	Running Status = iota
	Solved
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Observation is what the solver reports after every non-terminal
// iteration: the guess it played, the feedback it received and the size
// of the candidate set that survived the filter.
type Observation struct {
	Attempt   int                 `json:"attempt"`
	Guess     word.Word           `json:"guess"`
	Score     word.LetterStatuses `json:"score"`
	Rendered  string              `json:"rendered"`
	Remaining int                 `json:"remaining"`
}

// Reporter receives observations as the solver makes progress.
type Reporter interface {
	Report(Observation)
}

// ReporterFunc adapts a plain function into a Reporter.
type ReporterFunc func(Observation)

func (f ReporterFunc) Report(o Observation) { f(o) }

// Run is a single solving session for one hidden answer. It is not safe
// for concurrent use; callers that share a Run synchronize around it
// (see Room).
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	StartedAt *time.Time
	EndedAt   *time.Time

	answer     word.Word
	candidates []word.Word
	status     Status
	attempts   int
	lastGuess  word.Word
	lastScore  word.LetterStatuses
	history    []Observation
}

// New creates a run for the given answer over the given dictionary. The
// dictionary is copied: the run replaces its candidate set wholesale on
// every iteration and never mutates the caller's slice.
func New(answer word.Word, dictionary []word.Word) *Run {
	candidates := make([]word.Word, len(dictionary))
	copy(candidates, dictionary)
	return &Run{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		answer:     answer,
		candidates: candidates,
		status:     Running,
		attempts:   1,
	}
}

// Status returns the current state of the run.
func (r *Run) Status() Status { return r.status }

// Attempts returns the number of the current (or final) attempt.
func (r *Run) Attempts() int { return r.attempts }

// Guess returns the most recent guess.
func (r *Run) Guess() word.Word { return r.lastGuess }

// Score returns the feedback of the most recent guess.
func (r *Run) Score() word.LetterStatuses { return r.lastScore }

// Remaining returns the size of the current candidate set.
func (r *Run) Remaining() int { return len(r.candidates) }

// History returns the observations emitted so far, oldest first.
func (r *Run) History() []Observation { return r.history }

// Step performs one guess-score-filter iteration and returns the status
// of the run afterwards. A terminal run is left untouched.
//
// The candidate set only ever shrinks, so a run always terminates within
// at most one iteration per dictionary word.
func (r *Run) Step(rep Reporter) Status {
	if r.status != Running {
		return r.status
	}
	if len(r.candidates) == 0 {
		// The answer is not in the dictionary. Not an error, a reported outcome.
		r.finish(Exhausted)
		return r.status
	}

	average := BuildTable(r.candidates).Synthesize()
	guess, err := Select(average, r.candidates)
	if err != nil {
		r.finish(Exhausted)
		return r.status
	}
	score := word.ScoreWord(guess, r.answer)
	r.lastGuess, r.lastScore = guess, score

	if score.AllExact() {
		r.finish(Solved)
		return r.status
	}

	filtered := r.candidates[:0:0]
	for _, c := range r.candidates {
		if word.StillPossible(guess, score, c) {
			filtered = append(filtered, c)
		}
	}
	r.candidates = filtered

	o := Observation{
		Attempt:   r.attempts,
		Guess:     guess,
		Score:     score,
		Rendered:  score.Render(),
		Remaining: len(filtered),
	}
	r.history = append(r.history, o)
	if rep != nil {
		rep.Report(o)
	}
	r.attempts++
	return r.status
}

// Solve drives the run to a terminal state, reporting every non-terminal
// iteration to rep (which may be nil).
func (r *Run) Solve(rep Reporter) Status {
	now := time.Now()
	r.StartedAt = &now
	for r.Step(rep) == Running {
	}
	return r.status
}

func (r *Run) finish(s Status) {
	r.status = s
	now := time.Now()
	r.EndedAt = &now
}

// Result is an immutable snapshot of a run, used for transport and
// storage.
type Result struct {
	ID        uuid.UUID           `json:"id"`
	Answer    word.Word           `json:"answer"`
	Status    string              `json:"status"`
	Attempts  int                 `json:"attempts"`
	Guess     word.Word           `json:"guess"`
	Score     word.LetterStatuses `json:"score,omitempty"`
	History   []Observation       `json:"history"`
	CreatedAt time.Time           `json:"created_at"`
	StartedAt *time.Time          `json:"started_at,omitempty"`
	EndedAt   *time.Time          `json:"ended_at,omitempty"`
}

// Result snapshots the run. The answer is only revealed once the run has
// ended.
func (r *Run) Result() Result {
	res := Result{
		ID:        r.ID,
		Status:    r.status.String(),
		Attempts:  r.attempts,
		Guess:     r.lastGuess,
		Score:     r.lastScore,
		History:   append([]Observation(nil), r.history...),
		CreatedAt: r.CreatedAt,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
	}
	if r.status != Running {
		res.Answer = r.answer
	}
	return res
}
