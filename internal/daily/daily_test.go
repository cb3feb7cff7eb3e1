package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestWordIndex_Deterministic(t *testing.T) {
	day := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 750)
	if a != WordIndex(later, "salt", 750) {
		t.Error("same date produced different indexes")
	}
	if a < 0 || a >= 750 {
		t.Errorf("index %d out of range", a)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Error("empty bank should map to 0")
	}
	if DateKey(day) != "2026-10-14" {
		t.Errorf("DateKey = %q", DateKey(day))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenAndMigrate(filepath.Join(t.TempDir(), "daily.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	s := NewStore(db)

	if _, ok, err := s.Get(ctx, "2026-10-14", "unique"); err != nil || ok {
		t.Fatalf("Get on empty store = %v, %v", ok, err)
	}

	g := solver.Game{
		Answer: solver.MustWord("forge"),
		Rounds: []solver.Round{
			{Clue: solver.ClueFor(solver.MustWord("soare"), solver.MustWord("forge")), Candidates: 4},
			{Clue: solver.ClueFor(solver.MustWord("forge"), solver.MustWord("forge")), Candidates: 2},
		},
		Solved: true,
	}
	run := NewRun("2026-10-14", "unique", 3, g, 1500*time.Millisecond)
	if err := s.InsertRun(ctx, run); err != nil {
		t.Fatal(err)
	}
	dup := run
	dup.Answer = "other"
	if err := s.InsertRun(ctx, dup); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "2026-10-14", "unique")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	want := Run{
		Date: "2026-10-14", Scorer: "unique", WordIndex: 3, Answer: "forge",
		Solved: true, Rounds: 2, Path: []string{"soare:bgbyg", "forge:ggggg"}, ElapsedMs: 1500,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("run mismatch (-want +got):\n%s", diff)
	}

	if err := s.InsertRun(ctx, Run{Date: "2026-10-15", Scorer: "worst", Answer: "crane", Path: []string{}}); err != nil {
		t.Fatal(err)
	}
	recent, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Date != "2026-10-15" || len(recent[0].Path) != 0 {
		t.Errorf("Recent = %+v", recent)
	}
}
