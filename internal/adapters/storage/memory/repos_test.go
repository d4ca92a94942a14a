package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dogs-catalog/internal/domain/dogs"
)

func TestTemperamentRepo_FindOrCreateConcurrentIsIdempotent(t *testing.T) {
	repo := NewTemperamentRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.FindOrCreate(context.Background(), "Loyal")
		}()
	}
	wg.Wait()

	all, _ := repo.List(context.Background())
	if len(all) != 1 || all[0].Name != "Loyal" {
		t.Fatalf("expected single Loyal row, got %+v", all)
	}
}

func TestTemperamentRepo_CaseSensitiveAndTrimmed(t *testing.T) {
	repo := NewTemperamentRepo()

	a, _ := repo.FindOrCreate(context.Background(), "Calm")
	b, _ := repo.FindOrCreate(context.Background(), " Calm ")
	c, _ := repo.FindOrCreate(context.Background(), "calm")

	if a.ID != b.ID {
		t.Fatalf("expected trimmed name to match existing row")
	}
	if a.ID == c.ID {
		t.Fatalf("expected case-sensitive names to be distinct")
	}
	if _, err := repo.FindOrCreate(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestDogRepo_ListJoinsTemperamentNames(t *testing.T) {
	temps := NewTemperamentRepo()
	loyal, _ := temps.FindOrCreate(context.Background(), "Loyal")
	calm, _ := temps.FindOrCreate(context.Background(), "Calm")

	repo := NewDogRepo(temps)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = repo.Create(context.Background(), dogs.Dog{ID: "d1", Name: "First", CreatedAt: now}, []int64{loyal.ID, calm.ID, loyal.ID})
	_ = repo.Create(context.Background(), dogs.Dog{ID: "d2", Name: "Second", CreatedAt: now.Add(time.Minute)}, nil)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "d1" || got[1].ID != "d2" {
		t.Fatalf("unexpected order %+v", got)
	}
	if dogs.JoinTags(got[0].Tags) != "Calm, Loyal" {
		t.Fatalf("expected Calm, Loyal got %v", got[0].Tags)
	}
	if len(got[1].Tags) != 0 {
		t.Fatalf("expected no tags, got %v", got[1].Tags)
	}
}

func TestDogRepo_UpdateDeleteNotFound(t *testing.T) {
	repo := NewDogRepo(nil)

	if err := repo.Update(context.Background(), dogs.Dog{ID: "x"}, nil); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(context.Background(), "x"); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "x"); !errors.Is(err, dogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
}

func TestDogRepo_RejectsUnknownTemperament(t *testing.T) {
	repo := NewDogRepo(NewTemperamentRepo())

	err := repo.Create(context.Background(), dogs.Dog{ID: "d1"}, []int64{42})
	if err == nil {
		t.Fatalf("expected error linking unknown temperament")
	}
}
