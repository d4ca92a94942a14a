package dogs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dogs-catalog/internal/domain/temperaments"
	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
	ErrReadOnly     = errors.New("catalog breeds are read-only")
)

// TagResolver hace find-or-create de temperaments por nombre.
type TagResolver interface {
	Ensure(ctx context.Context, names []string) ([]temperaments.Temperament, error)
}

type Service struct {
	catalog catalog.Catalog
	repo    Repository
	tags    TagResolver
	log     logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(cat catalog.Catalog, repo Repository, tags TagResolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		catalog: cat,
		repo:    repo,
		tags:    tags,
		log:     log.With(logger.Fields{"component": "dogs"}),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Listing es el resultado agregado. LocalErr != nil indica que la parte
// local no se pudo leer y Dogs solo trae los del catálogo.
type Listing struct {
	Dogs     []Dog
	LocalErr error
}

func (l Listing) Partial() bool { return l.LocalErr != nil }

// FetchExternal trae el catálogo externo normalizado, en el orden del proveedor.
func (s *Service) FetchExternal(ctx context.Context) ([]Dog, error) {
	breeds, err := s.catalog.ListBreeds(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Dog, 0, len(breeds))
	for _, b := range breeds {
		out = append(out, FromBreed(b))
	}
	return out, nil
}

// FetchLocal trae los registros persistidos con sus temperaments unidos por ", ".
func (s *Service) FetchLocal(ctx context.Context) ([]Dog, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local dogs: %w", err)
	}
	for i := range items {
		items[i] = withDisplayTags(items[i])
	}
	return items, nil
}

// GetAll concatena externos + locales. Las dos lecturas van en paralelo.
// Si falla el catálogo se aborta todo; si falla la base se devuelve un
// Listing parcial con LocalErr seteado.
func (s *Service) GetAll(ctx context.Context) (Listing, error) {
	var (
		external []Dog
		local    []Dog
		localErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.FetchExternal(gctx)
		if err != nil {
			return err
		}
		external = d
		return nil
	})
	g.Go(func() error {
		local, localErr = s.FetchLocal(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Listing{}, err
	}

	all := make([]Dog, 0, len(external)+len(local))
	all = append(all, external...)

	if localErr != nil {
		s.log.Warn("local dogs unavailable, returning catalog only", logger.Err(localErr))
		return Listing{Dogs: all, LocalErr: localErr}, nil
	}

	all = append(all, local...)
	return Listing{Dogs: all}, nil
}

// SearchByName filtra GetAll por substring (case-insensitive).
func (s *Service) SearchByName(ctx context.Context, name string) (Listing, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return Listing{}, err
	}

	listing, err := s.GetAll(ctx)
	if err != nil {
		return Listing{}, err
	}

	needle := strings.ToLower(name)
	matches := make([]Dog, 0)
	for _, d := range listing.Dogs {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			matches = append(matches, d)
		}
	}
	if len(matches) == 0 {
		return Listing{}, ErrNotFound
	}

	listing.Dogs = matches
	return listing, nil
}

// GetByID: UUID => base local; entero => catálogo externo.
// El UUID se normaliza a su forma canónica (acepta llaves, urn:uuid:, sin guiones).
func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)

	if u, err := uuid.Parse(id); err == nil {
		d, err := s.repo.GetByID(ctx, u.String())
		if err != nil {
			return Dog{}, err
		}
		return withDisplayTags(d), nil
	}

	if _, err := strconv.Atoi(id); err != nil {
		return Dog{}, ErrNotFound
	}

	external, err := s.FetchExternal(ctx)
	if err != nil {
		return Dog{}, err
	}
	for _, d := range external {
		if d.ID == id {
			return d, nil
		}
	}
	return Dog{}, ErrNotFound
}

type Input struct {
	Name         string
	HeightMin    *float64
	HeightMax    *float64
	WeightMin    *float64
	WeightMax    *float64
	YearsLife    string
	Image        string
	Temperaments []string
}

func (s *Service) Create(ctx context.Context, in Input) (Dog, error) {
	d, err := in.toDog()
	if err != nil {
		return Dog{}, err
	}

	ids, names, err := s.resolveTags(ctx, in.Temperaments)
	if err != nil {
		return Dog{}, err
	}

	now := s.now().UTC()
	d.ID = s.newID()
	d.Tags = names
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.repo.Create(ctx, d, ids); err != nil {
		return Dog{}, fmt.Errorf("create dog: %w", err)
	}

	s.log.Info("dog created", logger.Fields{"dog_id": d.ID, "temperaments": len(ids)})
	return withDisplayTags(d), nil
}

// Update reemplaza un registro local completo (PUT) y re-vincula sus temperaments.
func (s *Service) Update(ctx context.Context, id string, in Input) (Dog, error) {
	id, err := localID(id)
	if err != nil {
		return Dog{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	d, err := in.toDog()
	if err != nil {
		return Dog{}, err
	}

	ids, names, err := s.resolveTags(ctx, in.Temperaments)
	if err != nil {
		return Dog{}, err
	}

	d.ID = current.ID
	d.Tags = names
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, d, ids); err != nil {
		return Dog{}, err
	}

	s.log.Info("dog updated", logger.Fields{"dog_id": d.ID})
	return withDisplayTags(d), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := localID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("dog deleted", logger.Fields{"dog_id": id})
	return nil
}

func (s *Service) resolveTags(ctx context.Context, raw []string) ([]int64, []string, error) {
	if len(temperaments.Normalize(raw)) == 0 {
		return nil, []string{}, nil
	}

	ts, err := s.tags.Ensure(ctx, raw)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(ts))
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID)
		names = append(names, t.Name)
	}
	return ids, names, nil
}

func (in Input) toDog() (Dog, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateName(name); err != nil {
		return Dog{}, err
	}

	hMin, hMax, err := bounds("height", in.HeightMin, in.HeightMax)
	if err != nil {
		return Dog{}, err
	}
	wMin, wMax, err := bounds("weight", in.WeightMin, in.WeightMax)
	if err != nil {
		return Dog{}, err
	}

	return Dog{
		Name:      name,
		HeightMin: hMin,
		HeightMax: hMax,
		WeightMin: wMin,
		WeightMax: wMax,
		YearsLife: strings.TrimSpace(in.YearsLife),
		Image:     orDefault(strings.TrimSpace(in.Image), FallbackImage),
		Source:    SourceDB,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.ContainsAny(name, "0123456789") {
		return fmt.Errorf("%w: name must not contain digits", ErrInvalidInput)
	}
	return nil
}

func bounds(field string, minV, maxV *float64) (float64, float64, error) {
	if minV == nil || maxV == nil {
		return 0, 0, fmt.Errorf("%w: %s_min and %s_max are required", ErrInvalidInput, field, field)
	}
	lo, hi := *minV, *maxV
	if math.IsNaN(lo) || math.IsNaN(hi) || lo <= 0 || hi <= 0 {
		return 0, 0, fmt.Errorf("%w: %s must be positive", ErrInvalidInput, field)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %s_min must be <= %s_max", ErrInvalidInput, field, field)
	}
	return lo, hi, nil
}

func localID(id string) (string, error) {
	id = strings.TrimSpace(id)
	u, err := uuid.Parse(id)
	if err != nil {
		if _, convErr := strconv.Atoi(id); convErr == nil {
			return "", ErrReadOnly
		}
		return "", ErrNotFound
	}
	return u.String(), nil
}

func withDisplayTags(d Dog) Dog {
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.Temperaments = JoinTags(d.Tags)
	d.Source = SourceDB
	return d
}
