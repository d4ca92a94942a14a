package temperaments

import "context"

type Repository interface {
	// FindOrCreate debe ser idempotente ante llamadas concurrentes con el mismo nombre.
	FindOrCreate(ctx context.Context, name string) (Temperament, error)
	List(ctx context.Context) ([]Temperament, error)
}
