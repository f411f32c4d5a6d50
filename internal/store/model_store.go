package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/trknhr/hmmtag/internal/hmm"
	"github.com/trknhr/hmmtag/internal/logger"
)

//go:generate mockgen -source=model_store.go -destination=mock_model_store.go -package=store

var ErrModelNotFound = errors.New("model not found")

const (
	kindTransition = "transition"
	kindEmission   = "emission"
)

type ModelStore interface {
	SaveModel(name string, model *hmm.Model) error
	LoadModel(name string) (*hmm.Model, error)
	ListModels() ([]string, error)
}

type SQLModelStore struct {
	db *sql.DB
}

func NewSQLModelStore(db *sql.DB) ModelStore {
	return &SQLModelStore{db: db}
}

// SaveModel replaces any model stored under name in a single transaction.
func (s *SQLModelStore) SaveModel(name string, model *hmm.Model) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM probabilities WHERE model = ?`, name); err != nil {
		return fmt.Errorf("failed to clear model %s: %w", name, err)
	}
	if _, err := tx.Exec(`
		INSERT INTO models (name) VALUES (?)
		ON CONFLICT(name) DO UPDATE SET created_at = CURRENT_TIMESTAMP
	`, name); err != nil {
		return fmt.Errorf("failed to register model %s: %w", name, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO probabilities (model, kind, src, dst, logprob)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for kind, table := range map[string]hmm.Table{kindTransition: model.Transitions, kindEmission: model.Emissions} {
		for _, src := range table.Keys() {
			dsts, _ := table.Row(src)
			for _, dst := range dsts {
				if _, err := stmt.Exec(name, kind, src, dst, table[src][dst]); err != nil {
					return fmt.Errorf("failed to insert %s %s->%s: %w", kind, src, dst, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit model tx: %v", err)
		return err
	}
	logger.Debug("saved model %s: %d transitions, %d emissions", name, model.Transitions.Len(), model.Emissions.Len())
	return nil
}

func (s *SQLModelStore) LoadModel(name string) (*hmm.Model, error) {
	var found string
	err := s.db.QueryRow(`SELECT name FROM models WHERE name = ?`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT kind, src, dst, logprob FROM probabilities WHERE model = ?`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raw := map[string]map[string]map[string]float64{
		kindTransition: {},
		kindEmission:   {},
	}
	for rows.Next() {
		var kind, src, dst string
		var logprob float64
		if err := rows.Scan(&kind, &src, &dst, &logprob); err != nil {
			return nil, err
		}
		table, ok := raw[kind]
		if !ok {
			return nil, fmt.Errorf("model %s: unknown table kind %q", name, kind)
		}
		if table[src] == nil {
			table[src] = make(map[string]float64)
		}
		table[src][dst] = logprob
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	transitions, err := hmm.NewTableFromLogProbs(raw[kindTransition])
	if err != nil {
		return nil, fmt.Errorf("model %s transitions: %w", name, err)
	}
	emissions, err := hmm.NewTableFromLogProbs(raw[kindEmission])
	if err != nil {
		return nil, fmt.Errorf("model %s emissions: %w", name, err)
	}
	return &hmm.Model{Transitions: transitions, Emissions: emissions}, nil
}

func (s *SQLModelStore) ListModels() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM models ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
