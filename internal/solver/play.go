package solver

import (
	"context"
	"fmt"
)

// DefaultMaxRounds matches the six rows of a standard board.
const DefaultMaxRounds = 6

// Round is one turn of a self-played game.
type Round struct {
	Clue       Clue
	Candidates int // candidates remaining before the guess
}

// Game is the outcome of Engine.Play.
type Game struct {
	Answer Word
	Rounds []Round
	Solved bool
}

// Play lets the engine solve answer on its own: it suggests a guess,
// evaluates it against answer and feeds the clue back, until the guess is
// correct, no candidate fits, or maxRounds guesses were made (maxRounds <= 0
// uses DefaultMaxRounds).
func (e *Engine) Play(ctx context.Context, answer Word, sc Scorer, maxRounds int) (Game, error) {
	if answer.Len() != e.length {
		return Game{}, fmt.Errorf("%w: answer %q has %d letters, want %d", ErrLengthMismatch, answer.text, answer.Len(), e.length)
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	g := Game{Answer: answer}
	var clues []Clue
	for len(g.Rounds) < maxRounds {
		s, err := e.Suggest(ctx, clues, sc)
		if err != nil {
			return g, err
		}
		if s.Outcome == OutcomeNoSolution {
			return g, nil
		}
		c := ClueFor(s.Word, answer)
		g.Rounds = append(g.Rounds, Round{Clue: c, Candidates: s.Candidates})
		if c.Feedback.Solved() {
			g.Solved = true
			return g, nil
		}
		clues = append(clues, c)
	}
	return g, nil
}
