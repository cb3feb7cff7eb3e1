// internal/wordstore/store.go
//
// SQLite-backed word bank.
//
// Words are stored once each (UNIQUE text) and read back in insertion
// order, which becomes the bank order. Imports run in transactions of
// ChunkSize rows and ignore words that are already present.

package wordstore

import (
	"context"
	"database/sql"
	"fmt"
)

// ChunkSize is the number of rows inserted per transaction.
const ChunkSize = 5000

type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

// InsertMany adds words in order and returns how many were new.
func (s *Store) InsertMany(ctx context.Context, words []string) (int, error) {
	added := 0
	for start := 0; start < len(words); start += ChunkSize {
		end := min(start+ChunkSize, len(words))
		n, err := s.insertChunk(ctx, words[start:end])
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}

func (s *Store) insertChunk(ctx context.Context, chunk []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(text, length) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, w := range chunk {
		res, err := stmt.ExecContext(ctx, w, len(w))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ByLength returns all words of length n in insertion order.
func (s *Store) ByLength(ctx context.Context, n int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT text FROM words WHERE length=? ORDER BY id`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Count returns the number of stored words of length n, or of any length
// when n <= 0.
func (s *Store) Count(ctx context.Context, n int) (int, error) {
	var cnt int
	var err error
	if n <= 0 {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&cnt)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words WHERE length=?`, n).Scan(&cnt)
	}
	return cnt, err
}
