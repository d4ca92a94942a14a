package postgres

import (
	"database/sql"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

type fakeRow struct {
	id, name   string
	heightMin  sql.NullFloat64
	heightMax  sql.NullFloat64
	weightMin  sql.NullFloat64
	weightMax  sql.NullFloat64
	yearsLife  string
	image      string
	created    time.Time
	updated    time.Time
	temperName sql.NullString
}

type fakeRows struct {
	rows []fakeRow
	pos  int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	r := f.rows[f.pos-1]
	*dest[0].(*string) = r.id
	*dest[1].(*string) = r.name
	*dest[2].(*sql.NullFloat64) = r.heightMin
	*dest[3].(*sql.NullFloat64) = r.heightMax
	*dest[4].(*sql.NullFloat64) = r.weightMin
	*dest[5].(*sql.NullFloat64) = r.weightMax
	*dest[6].(*string) = r.yearsLife
	*dest[7].(*string) = r.image
	*dest[8].(*time.Time) = r.created
	*dest[9].(*time.Time) = r.updated
	*dest[10].(*sql.NullString) = r.temperName
	return nil
}

func (f *fakeRows) Err() error { return f.err }

func row(id, tag string) fakeRow {
	r := fakeRow{
		id:        id,
		name:      "Dog " + id,
		heightMin: sql.NullFloat64{Float64: 30, Valid: true},
		heightMax: sql.NullFloat64{Float64: 40, Valid: true},
		weightMin: sql.NullFloat64{Float64: 10, Valid: true},
		weightMax: sql.NullFloat64{},
		created:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if tag != "" {
		r.temperName = sql.NullString{String: tag, Valid: true}
	}
	return r
}

func TestScanDogs_GroupsRowsPerDog(t *testing.T) {
	rows := &fakeRows{rows: []fakeRow{
		row("a", ""),
		row("b", "Calm"),
		row("b", "Loyal"),
		row("b", "Playful"),
		row("c", "Brave"),
	}}

	out, err := scanDogs(rows)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 dogs, got %d", len(out))
	}

	want := map[string][]string{
		"a": {},
		"b": {"Calm", "Loyal", "Playful"},
		"c": {"Brave"},
	}
	for i, id := range []string{"a", "b", "c"} {
		if out[i].ID != id {
			t.Fatalf("expected order a,b,c; got %s at %d", out[i].ID, i)
		}
		if !reflect.DeepEqual(out[i].Tags, want[id]) {
			t.Fatalf("dog %s: expected tags %v, got %v", id, want[id], out[i].Tags)
		}
		if out[i].Source != "db" {
			t.Fatalf("dog %s: expected db source, got %q", id, out[i].Source)
		}
	}

	if out[1].HeightMin != 30 || out[1].HeightMax != 40 || !math.IsNaN(out[1].WeightMax) {
		t.Fatalf("unexpected bounds %+v", out[1])
	}
}

func TestScanDogs_Empty(t *testing.T) {
	out, err := scanDogs(&fakeRows{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestScanDogs_PropagatesRowsErr(t *testing.T) {
	boom := errors.New("conn reset")
	if _, err := scanDogs(&fakeRows{rows: []fakeRow{row("a", "")}, err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected rows error, got %v", err)
	}
}
