package temperaments

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"dogs-catalog/internal/ports/catalog"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu      sync.Mutex
	byName  map[string]Temperament
	nextID  int64
	delay   time.Duration
	failOn  string
	creates int
}

func newTestRepo() *testRepo {
	return &testRepo{byName: map[string]Temperament{}}
}

func (r *testRepo) FindOrCreate(ctx context.Context, name string) (Temperament, error) {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if name == r.failOn {
		return Temperament{}, errors.New("repo: write failed")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.byName[name]; ok {
		return t, nil
	}
	r.nextID++
	r.creates++
	t := Temperament{ID: r.nextID, Name: name}
	r.byName[name] = t
	return t, nil
}

func (r *testRepo) List(ctx context.Context) ([]Temperament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Temperament, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCatalog struct {
	breeds []catalog.Breed
	err    error
}

func (f fakeCatalog) ListBreeds(context.Context) ([]catalog.Breed, error) {
	return f.breeds, f.err
}

func names(ts []Temperament) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	sort.Strings(out)
	return out
}

// -------------------------
// Tests
// -------------------------

func TestNormalize_SplitsTrimsSortsDedupes(t *testing.T) {
	got := Normalize([]string{"Loyal, Calm", "", "Calm,Active,", " Loyal ", "loyal"})
	want := []string{"Active", "Calm", "Loyal", "loyal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %v, want %v", got, want)
	}
}

func TestService_GetAll_NoDuplicatesNoEmpty(t *testing.T) {
	repo := newTestRepo()
	cat := fakeCatalog{breeds: []catalog.Breed{
		{ID: 1, Temperament: "Friendly, Active"},
		{ID: 2, Temperament: "Active, Calm"},
		{ID: 3}, // sin temperamento
		{ID: 4, Temperament: " , Friendly"},
	}}
	svc := NewService(repo, cat, nil)

	got, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	want := []string{"Active", "Calm", "Friendly"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("GetAll names = %v, want %v", names(got), want)
	}
}

func TestService_GetAll_IncludesPreexisting(t *testing.T) {
	repo := newTestRepo()
	_, _ = repo.FindOrCreate(context.Background(), "Brave")

	svc := NewService(repo, fakeCatalog{breeds: []catalog.Breed{{Temperament: "Calm"}}}, nil)

	got, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if !reflect.DeepEqual(names(got), []string{"Brave", "Calm"}) {
		t.Fatalf("expected preexisting + synced, got %v", names(got))
	}
}

func TestService_GetAll_Idempotent(t *testing.T) {
	repo := newTestRepo()
	cat := fakeCatalog{breeds: []catalog.Breed{{Temperament: "Calm, Loyal"}, {Temperament: "Loyal"}}}
	svc := NewService(repo, cat, nil)

	first, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("first GetAll: %v", err)
	}
	second, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("second GetAll: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected same set, got %v then %v", first, second)
	}
	if repo.creates != 2 {
		t.Fatalf("expected 2 rows created total, got %d", repo.creates)
	}
}

func TestService_GetAll_WaitsForAllUpserts(t *testing.T) {
	repo := newTestRepo()
	repo.delay = 20 * time.Millisecond

	raw := make([]catalog.Breed, 0, 30)
	for _, n := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		raw = append(raw, catalog.Breed{Temperament: n})
	}
	svc := NewService(repo, fakeCatalog{breeds: raw}, nil)

	got, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("expected all 12 upserts visible in final read, got %d", len(got))
	}
}

func TestService_GetAll_PropagatesUpsertFailure(t *testing.T) {
	repo := newTestRepo()
	repo.failOn = "Calm"
	svc := NewService(repo, fakeCatalog{breeds: []catalog.Breed{{Temperament: "Calm, Loyal"}}}, nil)

	if _, err := svc.GetAll(context.Background()); err == nil {
		t.Fatalf("expected upsert failure to propagate")
	}
}

func TestService_GetAll_PropagatesCatalogFailure(t *testing.T) {
	svc := NewService(newTestRepo(), fakeCatalog{err: catalog.ErrUpstream}, nil)

	_, err := svc.GetAll(context.Background())
	if !errors.Is(err, catalog.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestService_Ensure_ReturnsNormalizedOrder(t *testing.T) {
	svc := NewService(newTestRepo(), fakeCatalog{}, nil)

	got, err := svc.Ensure(context.Background(), []string{"Loyal", " Calm", "Loyal", ""})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Calm" || got[1].Name != "Loyal" {
		t.Fatalf("unexpected ensure result %+v", got)
	}
}
