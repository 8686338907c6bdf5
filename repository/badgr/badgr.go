// Package badgr is an adapter for the badgerDB
package badgr

import (
	"encoding/json"

	"github.com/dgraph-io/badger"

	"github.com/kodekulture/wordle-solver/repository"
	"github.com/kodekulture/wordle-solver/solver"
)

var _ repository.Backup = new(ResultRepo)

type ResultRepo struct {
	db *badger.DB
}

func New(db *badger.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Dump implements repository.Backup.
func (r *ResultRepo) Dump(results []solver.Result) error {
	for _, res := range results {
		err := r.db.Update(func(txn *badger.Txn) error {
			b, err := json.Marshal(res)
			if err != nil {
				return err
			}
			e := badger.NewEntry([]byte(res.ID.String()), b)
			return txn.SetEntry(e)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Load implements repository.Backup.
func (r *ResultRepo) Load() ([]solver.Result, error) {
	var results []solver.Result
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var res solver.Result
			err := item.Value(func(v []byte) error {
				return json.Unmarshal(v, &res)
			})
			if err != nil {
				return err
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Drop implements repository.Backup.
func (r *ResultRepo) Drop() error {
	return r.db.DropAll()
}
