package daily

import (
	"context"
	"database/sql"
	"errors"
)

// Run is one recorded self-play of a daily puzzle.
type Run struct {
	Date      string   `json:"date"`
	Scorer    string   `json:"scorer"`
	WordIndex int      `json:"wordIndex"`
	Answer    string   `json:"answer"`
	Solved    bool     `json:"solved"`
	Rounds    int      `json:"rounds"`
	Path      []string `json:"path"` // "guess:code" per round
	ElapsedMs int      `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get returns the run for date and scorer, if one was recorded.
func (s *Store) Get(ctx context.Context, date, scorer string) (Run, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT date, scorer, word_index, answer, solved, rounds, path, elapsed_ms
		FROM daily_runs WHERE date=? AND scorer=?`, date, scorer)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return r, true, nil
}

// InsertRun records a run; an existing (date, scorer) row is kept.
func (s *Store) InsertRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_runs(date, scorer, word_index, answer, solved, rounds, path, elapsed_ms)
		VALUES(?,?,?,?,?,?,?,?)`,
		r.Date, r.Scorer, r.WordIndex, r.Answer, r.Solved, r.Rounds, joinPath(r.Path), r.ElapsedMs,
	)
	return err
}

// Recent lists runs newest date first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, scorer, word_index, answer, solved, rounds, path, elapsed_ms
		FROM daily_runs
		ORDER BY date DESC, scorer ASC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]Run, 0, limit)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface{ Scan(dest ...any) error }

func scanRun(row scanner) (Run, error) {
	var r Run
	var path string
	if err := row.Scan(&r.Date, &r.Scorer, &r.WordIndex, &r.Answer, &r.Solved, &r.Rounds, &path, &r.ElapsedMs); err != nil {
		return Run{}, err
	}
	r.Path = splitPath(path)
	return r, nil
}
