// Package repository is responsible for the permanent storage of solver results
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kodekulture/wordle-solver/solver"
)

type Solve interface {
	// SaveResult stores the result of a finished run
	SaveResult(ctx context.Context, r solver.Result) error

	// GetResult returns a stored result by run id
	GetResult(ctx context.Context, id uuid.UUID) (*solver.Result, error)

	// GetResults returns the most recent stored results, newest first
	GetResults(ctx context.Context, limit int) ([]solver.Result, error)
}

type Backup interface {
	// Load loads the results stored in the local backup
	Load() ([]solver.Result, error)
	// Dump stores the given results in the local backup
	Dump(results []solver.Result) error
	// Drop deletes the local backup
	Drop() error
}
