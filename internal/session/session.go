// internal/session/session.go
//
// Solving sessions.
// Responsibilities:
//   - Create sessions for a fixed puzzle length.
//   - Validate and record clues reported by the player (word + b/y/g code).
//   - Hand the accumulated clues to the solver; the candidate set is always
//     recomputed from the full clue list, never stored.
//
// Sessions carry no answer: the player's game happens elsewhere and only its
// feedback is reported here.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// MaxClues bounds the clue list of a single session.
const MaxClues = 32

// ErrTooManyClues is returned by AddClue once MaxClues clues are recorded.
var ErrTooManyClues = errors.New("session: too many clues")

// Session holds the clues reported so far for one puzzle.
type Session struct {
	ID      string        // Unique session identifier (random hex string).
	Length  int           // Number of letters per word.
	Clues   []solver.Clue // Clues in the order they were reported.
	Created time.Time
}

// New constructs an empty session for words of the given length.
func New(length int) *Session {
	return &Session{
		ID:      randomID(),
		Length:  length,
		Clues:   []solver.Clue{},
		Created: time.Now().UTC(),
	}
}

// AddClue validates and appends a clue.
//
// Validation rules:
//   - The word is lowercased and trimmed, then must be a–z of s.Length letters.
//   - The code must be exactly s.Length characters from {b, y, g}.
func (s *Session) AddClue(word, code string) (solver.Clue, error) {
	if len(s.Clues) >= MaxClues {
		return solver.Clue{}, ErrTooManyClues
	}
	word = strings.ToLower(strings.TrimSpace(word))
	c, err := solver.ParseClue(word, strings.TrimSpace(code), s.Length)
	if err != nil {
		return solver.Clue{}, err
	}
	s.Clues = append(s.Clues, c)
	return c, nil
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Clues = append([]solver.Clue(nil), s.Clues...)
	return &c
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
