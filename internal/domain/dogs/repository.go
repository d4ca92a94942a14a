package dogs

import "context"

// Repository persiste solo registros locales. List/GetByID devuelven Tags cargados.
type Repository interface {
	Create(ctx context.Context, d Dog, temperamentIDs []int64) error
	Update(ctx context.Context, d Dog, temperamentIDs []int64) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Dog, error)
	List(ctx context.Context) ([]Dog, error)
}
