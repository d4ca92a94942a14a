package catalog

import (
	"context"
	"errors"
)

// ErrUpstream envuelve cualquier falla del catálogo externo.
// La causa concreta (status, sin respuesta, request inválido) va wrappeada.
var ErrUpstream = errors.New("breed catalog unavailable")

// Breed es la forma en que el proveedor externo describe una raza.
type Breed struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Temperament string   `json:"temperament,omitempty"`
	LifeSpan    string   `json:"life_span,omitempty"`
	BredFor     string   `json:"bred_for,omitempty"`
	BreedGroup  string   `json:"breed_group,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	Height      Measures `json:"height"`
	Weight      Measures `json:"weight"`
	Image       *Image   `json:"image,omitempty"`
}

// Measures trae rangos "min - max" como texto.
type Measures struct {
	Imperial string `json:"imperial,omitempty"`
	Metric   string `json:"metric,omitempty"`
}

type Image struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// ImageURL devuelve "" si el proveedor no mandó imagen.
func (b Breed) ImageURL() string {
	if b.Image == nil {
		return ""
	}
	return b.Image.URL
}

// Catalog es el puerto hacia el catálogo externo de razas.
type Catalog interface {
	ListBreeds(ctx context.Context) ([]Breed, error)
}
