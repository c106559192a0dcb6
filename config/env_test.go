package config

import "testing"

func TestParseTables(t *testing.T) {
	tables := parseTables("2,2,4,4,6,6,8,8")
	if len(tables) != 8 {
		t.Fatalf("expected 8 tables, got %d", len(tables))
	}
	for i, table := range tables {
		if table.Number != i+1 {
			t.Errorf("expected table %d to be numbered %d, got %d", i, i+1, table.Number)
		}
	}
	if tables[0].Capacity != 2 || tables[7].Capacity != 8 {
		t.Errorf("capacities not preserved in order: %+v", tables)
	}
}

func TestParseTablesSkipsInvalidEntries(t *testing.T) {
	tables := parseTables("2, x, 4, -1, 6")
	if len(tables) != 3 {
		t.Fatalf("expected 3 valid tables, got %d", len(tables))
	}
	// Numbering stays contiguous even when entries are skipped.
	if tables[1].Number != 2 || tables[1].Capacity != 4 {
		t.Errorf("unexpected second table: %+v", tables[1])
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_GETENVINT", "45")
	if got := getEnvInt("TEST_GETENVINT", 20); got != 45 {
		t.Errorf("expected 45, got %d", got)
	}
	if got := getEnvInt("TEST_GETENVINT_MISSING", 20); got != 20 {
		t.Errorf("expected default 20, got %d", got)
	}
	t.Setenv("TEST_GETENVINT_BAD", "-3")
	if got := getEnvInt("TEST_GETENVINT_BAD", 20); got != 20 {
		t.Errorf("expected default for non-positive value, got %d", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GETENV", "value")
	if got := getEnv("TEST_GETENV", "fallback"); got != "value" {
		t.Errorf("expected value, got %s", got)
	}
	if got := getEnv("TEST_GETENV_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %s", got)
	}
}
