package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/lordvidex/errs"

	"github.com/kodekulture/wordle-solver/repository"
	"github.com/kodekulture/wordle-solver/solver"
)

// solveService keeps finished results. Every result lives in memory for
// the lifetime of the process; the database is the permanent copy and may
// be absent when the server runs without POSTGRES_URL.
type solveService struct {
	sr repository.Solve // nil when no database is configured

	mu  sync.RWMutex
	mem map[uuid.UUID]solver.Result
}

func newSolveSrv(sr repository.Solve, restored []solver.Result) *solveService {
	mem := make(map[uuid.UUID]solver.Result, len(restored))
	for _, r := range restored {
		mem[r.ID] = r
	}
	return &solveService{sr: sr, mem: mem}
}

// SaveResult implements solver.ResultSaver.
func (s *solveService) SaveResult(ctx context.Context, r solver.Result) error {
	s.mu.Lock()
	s.mem[r.ID] = r
	s.mu.Unlock()
	if s.sr == nil {
		return nil
	}
	if err := s.sr.SaveResult(ctx, r); err != nil {
		return errs.WrapCode(err, errs.Internal, "error saving run result")
	}
	return nil
}

// GetStoredResult returns a finished result, preferring the in-memory copy.
func (s *solveService) GetStoredResult(ctx context.Context, id uuid.UUID) (*solver.Result, error) {
	s.mu.RLock()
	r, ok := s.mem[id]
	s.mu.RUnlock()
	if ok {
		return &r, nil
	}
	if s.sr == nil {
		return nil, errs.B().Code(errs.NotFound).Msg("run not found").Err()
	}
	res, err := s.sr.GetResult(ctx, id)
	if err != nil {
		return nil, errs.WrapCode(err, errs.NotFound, "run not found")
	}
	return res, nil
}

// RecentResults returns the latest finished results, newest first.
func (s *solveService) RecentResults(ctx context.Context, limit int) ([]solver.Result, error) {
	if s.sr != nil {
		results, err := s.sr.GetResults(ctx, limit)
		if err != nil {
			return nil, errs.WrapCode(err, errs.Internal, "error fetching run results")
		}
		return results, nil
	}
	s.mu.RLock()
	results := make([]solver.Result, 0, len(s.mem))
	for _, r := range s.mem {
		results = append(results, r)
	}
	s.mu.RUnlock()
	sort.Slice(results, func(i, j int) bool { return results[i].CreatedAt.After(results[j].CreatedAt) })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// snapshot returns every in-memory result, used when dumping the backup.
func (s *solveService) snapshot() []solver.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]solver.Result, 0, len(s.mem))
	for _, r := range s.mem {
		results = append(results, r)
	}
	return results
}
