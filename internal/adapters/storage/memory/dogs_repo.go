package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dogs-catalog/internal/domain/dogs"
)

var errUnknownTemperament = errors.New("unknown temperament id")

type dogRow struct {
	dog   dogs.Dog
	links []int64
}

// DogRepo guarda dogs y sus links; los nombres se resuelven contra TemperamentRepo.
type DogRepo struct {
	mu    sync.RWMutex
	byID  map[string]dogRow
	temps *TemperamentRepo
}

func NewDogRepo(temps *TemperamentRepo) *DogRepo {
	if temps == nil {
		temps = NewTemperamentRepo()
	}
	return &DogRepo{
		byID:  make(map[string]dogRow),
		temps: temps,
	}
}

func (r *DogRepo) Create(ctx context.Context, d dogs.Dog, temperamentIDs []int64) error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if !r.temps.exists(temperamentIDs) {
		return errUnknownTemperament
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = dogRow{dog: d, links: dedupeIDs(temperamentIDs)}
	return nil
}

func (r *DogRepo) Update(ctx context.Context, d dogs.Dog, temperamentIDs []int64) error {
	if !r.temps.exists(temperamentIDs) {
		return errUnknownTemperament
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return dogs.ErrNotFound
	}
	r.byID[d.ID] = dogRow{dog: d, links: dedupeIDs(temperamentIDs)}
	return nil
}

func (r *DogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return dogs.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *DogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	row, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return r.hydrate(row), nil
}

func (r *DogRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	rows := make([]dogRow, 0, len(r.byID))
	for _, row := range r.byID {
		rows = append(rows, row)
	}
	r.mu.RUnlock()

	// Orden estable por created_at (igual que el repo de Postgres)
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].dog, rows[j].dog
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	out := make([]dogs.Dog, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.hydrate(row))
	}
	return out, nil
}

func (r *DogRepo) hydrate(row dogRow) dogs.Dog {
	d := row.dog
	d.Tags = r.temps.names(row.links)
	d.Source = dogs.SourceDB
	return d
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
