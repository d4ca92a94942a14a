package postgres

import (
	"database/sql"
	"math"
	"strings"
	"testing"
)

func TestNullFloatRoundTrip(t *testing.T) {
	if v := toNullFloat(math.NaN()); v.Valid {
		t.Fatalf("expected NaN to map to NULL")
	}
	if v := toNullFloat(12.5); !v.Valid || v.Float64 != 12.5 {
		t.Fatalf("unexpected %+v", v)
	}
	if v := fromNullFloat(sql.NullFloat64{}); !math.IsNaN(v) {
		t.Fatalf("expected NULL to map to NaN, got %v", v)
	}
	if v := fromNullFloat(sql.NullFloat64{Float64: 3, Valid: true}); v != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestSchemaEmbedded(t *testing.T) {
	for _, table := range []string{"dogs", "temperaments", "dog_temperaments"} {
		if !containsTable(schemaSQL, table) {
			t.Fatalf("schema missing table %s", table)
		}
	}
}

func containsTable(schema, table string) bool {
	return strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
}
