package database

import (
	"path/filepath"
	"testing"
)

func TestOpenAndMigrate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "solver.db")
	db, err := OpenAndMigrate(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var applied int
	if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied); err != nil {
		t.Fatal(err)
	}
	if applied != 2 {
		t.Errorf("applied migrations = %d, want 2", applied)
	}
	for _, table := range []string{"words", "daily_runs"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
