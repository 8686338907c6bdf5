package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle-solver/repository"
	"github.com/kodekulture/wordle-solver/solver"
	"github.com/kodekulture/wordle-solver/solver/word"
)

var (
	ErrBadAnswer = errs.B().Code(errs.InvalidArgument).Msg("answer must have the dictionary word length").Err()
)

type Service struct {
	*solveService
	*hub
	br      repository.Backup
	dict    *word.Dictionary
	wordGen word.Generator
}

// New wires the service: restores finished results from the local backup
// and prepares the hub of live rooms. sr and br may be nil; the service
// then keeps results in memory only.
func New(appCtx context.Context, sr repository.Solve, br repository.Backup, dict *word.Dictionary) (*Service, error) {
	var restored []solver.Result
	if br != nil {
		var err error
		restored, err = br.Load()
		if err != nil {
			return nil, errs.WrapCode(err, errs.Internal, "error loading backup")
		}
	}
	s := &Service{
		solveService: newSolveSrv(sr, restored),
		hub:          newHub(appCtx),
		br:           br,
		dict:         dict,
		wordGen:      dict,
	}
	return s, nil
}

// Solve runs a full solve synchronously and stores the result. When words
// is empty the full dictionary is used; malformed entries are rejected at
// this boundary.
func (s *Service) Solve(ctx context.Context, answer string, words []string) (solver.Result, error) {
	answerWord, candidates, err := s.prepare(answer, words)
	if err != nil {
		return solver.Result{}, err
	}
	run := solver.New(answerWord, candidates)
	run.Solve(nil)
	result := run.Result()
	if err := s.SaveResult(ctx, result); err != nil {
		log.Err(err).Caller().Msg("failed to store run result")
	}
	return result, nil
}

// NewRoom starts an asynchronous solve and returns the id of the run that
// is now playing in this room. An empty answer picks a random dictionary
// word.
func (s *Service) NewRoom(answer string) (string, error) {
	if answer == "" {
		answer = s.wordGen.Generate(word.Length)
		log.Debug().Msg(answer)
	}
	answerWord, candidates, err := s.prepare(answer, nil)
	if err != nil {
		return "", err
	}
	run := solver.New(answerWord, candidates)
	room := solver.NewRoom(run, s)
	s.SetRoom(run.ID, room)
	room.Start()
	return room.ID(), nil
}

// GetResult returns the state of a run, live rooms first, then storage.
func (s *Service) GetResult(ctx context.Context, id uuid.UUID) (*solver.Result, error) {
	if room, ok := s.GetRoom(id); ok {
		res := room.Result()
		return &res, nil
	}
	return s.GetStoredResult(ctx, id)
}

// Stop dumps the finished results into the local backup.
func (s *Service) Stop(context.Context) {
	if s.br == nil {
		return
	}
	if err := s.br.Dump(s.snapshot()); err != nil {
		log.Err(err).Caller().Msg("failed to dump results backup")
	}
}

func (s *Service) prepare(answer string, words []string) (word.Word, []word.Word, error) {
	answerWord := word.New(answer)
	if answerWord.Len() != word.Length {
		return word.Word{}, nil, ErrBadAnswer
	}
	if len(words) == 0 {
		return answerWord, s.dict.Words(), nil
	}
	candidates, skipped := word.FromStrings(words)
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("request words with wrong length were dropped")
	}
	return answerWord, candidates, nil
}
