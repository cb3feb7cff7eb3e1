// internal/solver/clue.go
//
// Clues pair a guess with the feedback it received.
//
// Clues either come from the player (ParseClue, ReadClues) or are derived
// from a hypothetical solution (ClueFor). Both forms compare equal when the
// guess and feedback match.
//
// Text format read by ReadClues, one clue per line:
//   soare bgbyg
//   # comments and blank lines are skipped

package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Clue is one observed (guess, feedback) pair.
type Clue struct {
	Guess    Word
	Feedback Feedback
}

// ParseClue validates word and code against the puzzle length.
func ParseClue(word, code string, length int) (Clue, error) {
	w, err := NewWord(word)
	if err != nil {
		return Clue{}, err
	}
	if w.Len() != length {
		return Clue{}, fmt.Errorf("%w: clue %q has %d letters, want %d", ErrLengthMismatch, word, w.Len(), length)
	}
	f, err := ParseFeedback(code, length)
	if err != nil {
		return Clue{}, fmt.Errorf("clue %q: %w", word, err)
	}
	return Clue{Guess: w, Feedback: f}, nil
}

// ClueFor returns the clue guess would receive if solution were the answer.
func ClueFor(guess, solution Word) Clue {
	return Clue{Guess: guess, Feedback: Evaluate(guess, solution)}
}

// Equal reports whether two clues have the same guess and feedback.
func (c Clue) Equal(other Clue) bool {
	return c.Guess.Equal(other.Guess) && c.Feedback == other.Feedback
}

// Matches reports whether solution is consistent with the clue.
func (c Clue) Matches(solution Word) bool {
	return Evaluate(c.Guess, solution) == c.Feedback
}

func (c Clue) String() string { return c.Guess.text + " " + c.Feedback.String() }

// ReadClues parses clues in the "word code" line format.
func ReadClues(r io.Reader, length int) ([]Clue, error) {
	var out []Clue
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"word code\", got %q", line, s)
		}
		c, err := ParseClue(strings.ToLower(fields[0]), fields[1], length)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	return out, sc.Err()
}
