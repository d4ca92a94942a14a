package dogs

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
)

const partialWarning = `199 dogs-catalog "local store unavailable, showing catalog breeds only"`

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, log))
		dr.Post("/", createDogHandler(svc, log))

		dr.Get("/{dogID}", getDogHandler(svc, log))
		dr.Put("/{dogID}", updateDogHandler(svc, log))
		dr.Delete("/{dogID}", deleteDogHandler(svc, log))
	})
}

type dogRequest struct {
	Name         string   `json:"name"`
	HeightMin    *float64 `json:"height_min"`
	HeightMax    *float64 `json:"height_max"`
	WeightMin    *float64 `json:"weight_min"`
	WeightMax    *float64 `json:"weight_max"`
	YearsLife    string   `json:"years_life"`
	Image        string   `json:"image"`
	Temperaments []string `json:"temperaments"`
}

// dogResponse: los rangos no parseables salen como null.
type dogResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	HeightMin    *float64   `json:"height_min"`
	HeightMax    *float64   `json:"height_max"`
	WeightMin    *float64   `json:"weight_min"`
	WeightMax    *float64   `json:"weight_max"`
	YearsLife    string     `json:"years_life"`
	Image        string     `json:"image"`
	Temperaments string     `json:"temperaments"`
	CreatedInDB  bool       `json:"created_in_db"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listDogsHandler godoc
// @Summary      Lista razas
// @Description  Concatena las razas del catálogo externo y las creadas localmente. Con ?name= filtra por nombre.
// @Tags         dogs
// @Produce      json
// @Param        name  query     string  false  "substring del nombre (sin dígitos)"
// @Success      200   {array}   dogResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /dogs [get]
func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			listing Listing
			err     error
		)

		if q := r.URL.Query(); q.Has("name") {
			listing, err = svc.SearchByName(r.Context(), q.Get("name"))
		} else {
			listing, err = svc.GetAll(r.Context())
		}
		if err != nil {
			writeError(w, log, err)
			return
		}

		if listing.Partial() {
			w.Header().Set("Warning", partialWarning)
		}

		out := make([]dogResponse, 0, len(listing.Dogs))
		for _, d := range listing.Dogs {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDogHandler godoc
// @Summary      Detalle de raza
// @Tags         dogs
// @Produce      json
// @Param        dogID  path      string  true  "id del catálogo (entero) o UUID local"
// @Success      200    {object}  dogResponse
// @Failure      404    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Router       /dogs/{dogID} [get]
func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// createDogHandler godoc
// @Summary      Crea una raza local
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Param        body  body      dogRequest  true  "raza"
// @Success      201   {object}  dogResponse
// @Failure      400   {object}  errorResponse
// @Router       /dogs [post]
func createDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeDogRequest(w, r)
		if !ok {
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary      Reemplaza una raza local
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Param        dogID  path      string      true  "UUID local"
// @Param        body   body      dogRequest  true  "raza"
// @Success      200    {object}  dogResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /dogs/{dogID} [put]
func updateDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeDogRequest(w, r)
		if !ok {
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), in)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler godoc
// @Summary      Borra una raza local
// @Tags         dogs
// @Param        dogID  path  string  true  "UUID local"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /dogs/{dogID} [delete]
func deleteDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeDogRequest(w http.ResponseWriter, r *http.Request) (Input, bool) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req dogRequest
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return Input{}, false
	}

	return Input{
		Name:         req.Name,
		HeightMin:    req.HeightMin,
		HeightMax:    req.HeightMax,
		WeightMin:    req.WeightMin,
		WeightMax:    req.WeightMax,
		YearsLife:    req.YearsLife,
		Image:        req.Image,
		Temperaments: req.Temperaments,
	}, true
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrReadOnly):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrNotFound.Error()})
	case errors.Is(err, catalog.ErrUpstream):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		log.Error("dogs request failed", logger.Err(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func toDogResponse(d Dog) dogResponse {
	out := dogResponse{
		ID:           d.ID,
		Name:         d.Name,
		HeightMin:    number(d.HeightMin),
		HeightMax:    number(d.HeightMax),
		WeightMin:    number(d.WeightMin),
		WeightMax:    number(d.WeightMax),
		YearsLife:    d.YearsLife,
		Image:        d.Image,
		Temperaments: d.Temperaments,
		CreatedInDB:  d.IsLocal(),
	}
	if !d.CreatedAt.IsZero() {
		c, u := d.CreatedAt, d.UpdatedAt
		out.CreatedAt, out.UpdatedAt = &c, &u
	}
	return out
}

// number: NaN no es JSON válido, sale como null.
func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// writeJSON duplicado a propósito en cada módulo (igual que temperaments).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
