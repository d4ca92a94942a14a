package temperaments

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
)

const maxConcurrentUpserts = 8

type Service struct {
	repo    Repository
	catalog catalog.Catalog
	log     logger.Logger
}

func NewService(repo Repository, cat catalog.Catalog, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		catalog: cat,
		log:     log.With(logger.Fields{"component": "temperaments"}),
	}
}

// GetAll sincroniza los temperamentos del catálogo externo al store local
// y devuelve todo lo persistido (incluye los que ya existían).
// Todos los upserts terminan antes de la lectura final.
func (s *Service) GetAll(ctx context.Context) ([]Temperament, error) {
	breeds, err := s.catalog.ListBreeds(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]string, 0, len(breeds))
	for _, b := range breeds {
		raw = append(raw, b.Temperament)
	}
	names := Normalize(raw)

	if _, err := s.Ensure(ctx, names); err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list temperaments: %w", err)
	}

	s.log.Debug("temperaments synced", logger.Fields{"from_catalog": len(names), "total": len(all)})
	return all, nil
}

// Ensure hace find-or-create de cada nombre y espera a que terminen todos.
// Devuelve los temperamentos en el orden de Normalize(names).
func (s *Service) Ensure(ctx context.Context, names []string) ([]Temperament, error) {
	names = Normalize(names)
	out := make([]Temperament, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUpserts)

	for i, name := range names {
		g.Go(func() error {
			t, err := s.repo.FindOrCreate(gctx, name)
			if err != nil {
				return fmt.Errorf("find or create temperament %q: %w", name, err)
			}
			out[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Error("temperament upsert failed", logger.Err(err))
		return nil, err
	}
	return out, nil
}

// Normalize parte cada string por comas, recorta, ordena y deduplica.
// Los tokens vacíos se descartan.
func Normalize(raw []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, r := range raw {
		for _, tok := range strings.Split(r, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}

	sort.Strings(out)
	return out
}
