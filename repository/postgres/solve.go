package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kodekulture/wordle-solver/repository"
	"github.com/kodekulture/wordle-solver/solver"
)

var _ repository.Solve = new(SolveRepo)

type SolveRepo struct {
	db *pgxpool.Pool
}

func NewSolveRepo(db *pgxpool.Pool) *SolveRepo {
	return &SolveRepo{db: db}
}

// SaveResult implements repository.Solve. The queryable columns are kept
// alongside the full document so that history does not need its own table.
func (r *SolveRepo) SaveResult(ctx context.Context, res solver.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO solve (id, answer, status, attempts, created_at, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET answer = EXCLUDED.answer,
		    status = EXCLUDED.status,
		    attempts = EXCLUDED.attempts,
		    data = EXCLUDED.data`,
		res.ID.String(), res.Answer.Word, res.Status, res.Attempts, res.CreatedAt, data)
	return err
}

// GetResult implements repository.Solve.
func (r *SolveRepo) GetResult(ctx context.Context, id uuid.UUID) (*solver.Result, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM solve WHERE id = $1`, id.String()).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("result not found")
	}
	if err != nil {
		return nil, err
	}
	var res solver.Result
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetResults implements repository.Solve.
func (r *SolveRepo) GetResults(ctx context.Context, limit int) ([]solver.Result, error) {
	rows, err := r.db.Query(ctx, `SELECT data FROM solve ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []solver.Result
	for rows.Next() {
		var data []byte
		if err = rows.Scan(&data); err != nil {
			return nil, err
		}
		var res solver.Result
		if err = json.Unmarshal(data, &res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
