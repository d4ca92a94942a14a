package temperaments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dogs-catalog/internal/ports/catalog"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/temperaments", listTemperamentsHandler(svc))
}

type temperamentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listTemperamentsHandler godoc
// @Summary      Lista temperamentos
// @Description  Sincroniza los temperamentos del catálogo externo y devuelve todos los persistidos.
// @Tags         temperaments
// @Produce      json
// @Success      200  {array}   temperamentResponse
// @Failure      502  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /temperaments [get]
func listTemperamentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			if errors.Is(err, catalog.ErrUpstream) {
				writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]temperamentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, temperamentResponse{ID: t.ID, Name: t.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON duplicado a propósito en cada módulo (igual que dogs).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
