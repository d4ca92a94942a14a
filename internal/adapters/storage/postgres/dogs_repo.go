package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"dogs-catalog/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const selectDogsWithTemperaments = `
	SELECT
		d.id, d.name,
		d.height_min, d.height_max, d.weight_min, d.weight_max,
		d.years_life, d.image,
		d.created_at, d.updated_at,
		t.name
	FROM dogs d
	LEFT JOIN dog_temperaments dt ON dt.dog_id = d.id
	LEFT JOIN temperaments t ON t.id = dt.temperament_id
`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog, temperamentIDs []int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO dogs (
				id, name,
				height_min, height_max, weight_min, weight_max,
				years_life, image,
				created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`,
			d.ID,
			d.Name,
			toNullFloat(d.HeightMin),
			toNullFloat(d.HeightMax),
			toNullFloat(d.WeightMin),
			toNullFloat(d.WeightMax),
			d.YearsLife,
			d.Image,
			d.CreatedAt,
			d.UpdatedAt,
		); err != nil {
			return err
		}
		return linkTemperaments(ctx, tx, d.ID, temperamentIDs)
	})
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog, temperamentIDs []int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE dogs
			SET
				name = $2,
				height_min = $3,
				height_max = $4,
				weight_min = $5,
				weight_max = $6,
				years_life = $7,
				image = $8,
				updated_at = $9
			WHERE id = $1
		`,
			d.ID,
			d.Name,
			toNullFloat(d.HeightMin),
			toNullFloat(d.HeightMax),
			toNullFloat(d.WeightMin),
			toNullFloat(d.WeightMax),
			d.YearsLife,
			d.Image,
			d.UpdatedAt,
		)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return dogs.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM dog_temperaments WHERE dog_id = $1`, d.ID); err != nil {
			return err
		}
		return linkTemperaments(ctx, tx, d.ID, temperamentIDs)
	})
}

// Delete: los links caen por ON DELETE CASCADE.
func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	rows, err := r.db.QueryContext(ctx, selectDogsWithTemperaments+`
		WHERE d.id = $1
		ORDER BY t.name ASC
	`, id)
	if err != nil {
		return dogs.Dog{}, err
	}
	defer rows.Close()

	out, err := scanDogs(rows)
	if err != nil {
		return dogs.Dog{}, err
	}
	if len(out) == 0 {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return out[0], nil
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, selectDogsWithTemperaments+`
		ORDER BY d.created_at ASC, d.id ASC, t.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDogs(rows)
}

// dogRows es lo que scanDogs usa de *sql.Rows.
type dogRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// scanDogs agrupa las filas del LEFT JOIN (una por dog+temperament),
// asumiendo que vienen ordenadas por dog.
func scanDogs(rows dogRows) ([]dogs.Dog, error) {
	out := make([]dogs.Dog, 0)

	for rows.Next() {
		var (
			d                      dogs.Dog
			hMin, hMax, wMin, wMax sql.NullFloat64
			tag                    sql.NullString
		)
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&hMin,
			&hMax,
			&wMin,
			&wMax,
			&d.YearsLife,
			&d.Image,
			&d.CreatedAt,
			&d.UpdatedAt,
			&tag,
		); err != nil {
			return nil, err
		}

		if n := len(out); n == 0 || out[n-1].ID != d.ID {
			d.HeightMin = fromNullFloat(hMin)
			d.HeightMax = fromNullFloat(hMax)
			d.WeightMin = fromNullFloat(wMin)
			d.WeightMax = fromNullFloat(wMax)
			d.Source = dogs.SourceDB
			d.Tags = []string{}
			out = append(out, d)
		}
		if tag.Valid {
			last := &out[len(out)-1]
			last.Tags = append(last.Tags, tag.String)
		}
	}

	return out, rows.Err()
}

func linkTemperaments(ctx context.Context, tx *sql.Tx, dogID string, ids []int64) error {
	for _, tid := range ids {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO dog_temperaments (dog_id, temperament_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, dogID, tid); err != nil {
			return fmt.Errorf("link temperament %d: %w", tid, err)
		}
	}
	return nil
}

func (r *DogsRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// NaN se guarda como NULL
func toNullFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
