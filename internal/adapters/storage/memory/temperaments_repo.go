package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dogs-catalog/internal/domain/temperaments"
)

type TemperamentRepo struct {
	mu     sync.RWMutex
	byName map[string]temperaments.Temperament
	byID   map[int64]temperaments.Temperament
	nextID int64
}

func NewTemperamentRepo() *TemperamentRepo {
	return &TemperamentRepo{
		byName: make(map[string]temperaments.Temperament),
		byID:   make(map[int64]temperaments.Temperament),
	}
}

func (r *TemperamentRepo) FindOrCreate(ctx context.Context, name string) (temperaments.Temperament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return temperaments.Temperament{}, errors.New("temperament name required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.byName[name]; ok {
		return t, nil
	}
	r.nextID++
	t := temperaments.Temperament{ID: r.nextID, Name: name}
	r.byName[name] = t
	r.byID[t.ID] = t
	return t, nil
}

// List en orden de id (igual que el serial de Postgres).
func (r *TemperamentRepo) List(ctx context.Context) ([]temperaments.Temperament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]temperaments.Temperament, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// names resuelve ids a nombres ordenados; ids desconocidos se ignoran.
func (r *TemperamentRepo) names(ids []int64) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.byID[id]; ok {
			out = append(out, t.Name)
		}
	}
	sort.Strings(out)
	return out
}

func (r *TemperamentRepo) exists(ids []int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range ids {
		if _, ok := r.byID[id]; !ok {
			return false
		}
	}
	return true
}
