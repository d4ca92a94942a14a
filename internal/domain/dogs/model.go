package dogs

import (
	"strconv"
	"strings"
	"time"

	"dogs-catalog/internal/ports/catalog"
)

const (
	// FallbackImage se usa cuando el proveedor (o el alta local) no trae imagen.
	FallbackImage = "https://img.freepik.com/premium-photo/cute-confused-little-dog-with-question-marks_488220-4972.jpg?w=2000"

	// NotFound es el placeholder de texto del proveedor para campos ausentes.
	NotFound = "Not found"
)

// Source indica de dónde viene el registro.
// @Enum api, db
type Source string

const (
	SourceAPI Source = "api"
	SourceDB  Source = "db"
)

// Dog es la forma uniforme de una raza, venga del catálogo externo o de la base.
// Los min/max usan NaN cuando el rango no se pudo parsear.
type Dog struct {
	ID   string
	Name string

	HeightMin float64
	HeightMax float64
	WeightMin float64
	WeightMax float64

	YearsLife string
	Image     string

	// Temperaments es siempre un string de display.
	Temperaments string
	// Tags solo aplica a registros locales (nombres de temperaments asociados).
	Tags []string

	Source Source

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d Dog) IsLocal() bool { return d.Source == SourceDB }

// FromBreed normaliza un registro del catálogo externo.
func FromBreed(b catalog.Breed) Dog {
	hMin, hMax := ParseRange(b.Height.Metric)
	wMin, wMax := ParseRange(b.Weight.Metric)

	return Dog{
		ID:           strconv.Itoa(b.ID),
		Name:         b.Name,
		HeightMin:    hMin,
		HeightMax:    hMax,
		WeightMin:    wMin,
		WeightMax:    wMax,
		YearsLife:    orDefault(b.LifeSpan, NotFound),
		Image:        orDefault(b.ImageURL(), FallbackImage),
		Temperaments: orDefault(b.Temperament, NotFound),
		Source:       SourceAPI,
	}
}

// JoinTags arma el string de display para registros locales (0 tags => "").
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
