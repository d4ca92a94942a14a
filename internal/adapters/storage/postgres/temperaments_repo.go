package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"dogs-catalog/internal/domain/temperaments"
)

type TemperamentsRepo struct {
	db *sql.DB
}

func NewTemperamentsRepo(db *sql.DB) *TemperamentsRepo {
	return &TemperamentsRepo{db: db}
}

// FindOrCreate se apoya en el UNIQUE(name): el INSERT es no-op si ya existe.
func (r *TemperamentsRepo) FindOrCreate(ctx context.Context, name string) (temperaments.Temperament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return temperaments.Temperament{}, errors.New("temperament name required")
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO temperaments (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`, name); err != nil {
		return temperaments.Temperament{}, err
	}

	var t temperaments.Temperament
	if err := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM temperaments WHERE name = $1
	`, name).Scan(&t.ID, &t.Name); err != nil {
		return temperaments.Temperament{}, err
	}
	return t, nil
}

func (r *TemperamentsRepo) List(ctx context.Context) ([]temperaments.Temperament, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM temperaments ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]temperaments.Temperament, 0)
	for rows.Next() {
		var t temperaments.Temperament
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
