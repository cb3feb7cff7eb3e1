// internal/solver/suggest.go
//
// Suggestion engine.
//
// Suggest filters the bank down to the candidates consistent with the clues
// and then, unless the answer is already determined, scores every bank word
// (not only candidates) with the chosen Scorer and returns the best one.
//
// Scoring fans out over a fixed pool of workers, each owning a contiguous
// shard of the bank. Every worker keeps its local best (score, bank index)
// and the shards are reduced in bank order, so ties always resolve to the
// first word in the bank regardless of which worker finishes first.

package solver

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Outcome describes what kind of answer Suggest produced.
type Outcome int

const (
	OutcomeNoSolution Outcome = iota // no bank word fits the clues
	OutcomeSolved                    // exactly one candidate remains
	OutcomeGuess                     // best-scoring guess among several candidates
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeGuess:
		return "guess"
	}
	return "no_solution"
}

// Suggestion is the result of Engine.Suggest.
type Suggestion struct {
	Outcome    Outcome
	Word       Word // zero for OutcomeNoSolution
	Score      uint // scorer result; zero unless OutcomeGuess
	Candidates int  // candidates remaining before this guess
}

// ProgressFunc is called once per scored bank word with the number of words
// scored so far and the total. It may be called from several goroutines.
type ProgressFunc func(scored, total int)

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the scoring pool size. n <= 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithProgress installs a progress hook.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// Engine suggests guesses over a fixed word bank. It is safe for concurrent
// use; the bank is never modified after NewEngine.
type Engine struct {
	words    []Word
	length   int
	workers  int
	progress ProgressFunc
}

// NewEngine builds an engine for puzzles of the given length. Every bank word
// must have that length. An empty bank is allowed; Suggest then reports no
// solution.
func NewEngine(length int, words []Word, opts ...Option) (*Engine, error) {
	if length <= 0 || length > MaxLength {
		return nil, fmt.Errorf("%w: unsupported puzzle length %d", ErrLengthMismatch, length)
	}
	for _, w := range words {
		if w.Len() != length {
			return nil, fmt.Errorf("%w: bank word %q has %d letters, want %d", ErrLengthMismatch, w.text, w.Len(), length)
		}
	}
	e := &Engine{
		words:   append([]Word(nil), words...),
		length:  length,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Length returns the puzzle word length.
func (e *Engine) Length() int { return e.length }

// Words returns the bank. The slice must not be modified.
func (e *Engine) Words() []Word { return e.words }

// Candidates returns the bank words consistent with clues.
func (e *Engine) Candidates(clues []Clue) ([]Word, error) {
	if err := e.checkClues(clues); err != nil {
		return nil, err
	}
	return Filter(e.words, clues), nil
}

func (e *Engine) checkClues(clues []Clue) error {
	for _, c := range clues {
		if c.Guess.Len() != e.length || c.Feedback.Len() != e.length {
			return fmt.Errorf("%w: clue %q has %d letters, want %d", ErrLengthMismatch, c.Guess.text, c.Guess.Len(), e.length)
		}
	}
	return nil
}

// Suggest recommends the next guess for the given clues. A nil scorer means
// UniquePartitions.
func (e *Engine) Suggest(ctx context.Context, clues []Clue, sc Scorer) (Suggestion, error) {
	candidates, err := e.Candidates(clues)
	if err != nil {
		return Suggestion{}, err
	}
	if sc == nil {
		sc = UniquePartitions{}
	}
	logger := zerolog.Ctx(ctx)

	switch len(candidates) {
	case 0:
		logger.Debug().Int("clues", len(clues)).Msg("no candidates left")
		return Suggestion{Outcome: OutcomeNoSolution}, nil
	case 1:
		return Suggestion{Outcome: OutcomeSolved, Word: candidates[0], Candidates: 1}, nil
	}

	start := time.Now()
	idx, score, err := e.best(ctx, candidates, sc)
	if err != nil {
		return Suggestion{}, err
	}
	logger.Debug().
		Str("scorer", sc.Name()).
		Int("candidates", len(candidates)).
		Int("bank", len(e.words)).
		Str("word", e.words[idx].text).
		Uint("score", score).
		Dur("took", time.Since(start)).
		Msg("suggested guess")
	return Suggestion{Outcome: OutcomeGuess, Word: e.words[idx], Score: score, Candidates: len(candidates)}, nil
}

type scored struct {
	index int
	score uint
}

// best returns the bank index with the highest score, lowest index on ties.
func (e *Engine) best(ctx context.Context, candidates []Word, sc Scorer) (int, uint, error) {
	n := len(e.words)
	workers := min(e.workers, n)
	shard := (n + workers - 1) / workers
	results := make([]scored, workers)

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo, hi := w*shard, min((w+1)*shard, n)
		results[w] = scored{index: -1}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			local := scored{index: -1}
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s := sc.Score(candidates, e.words[i])
				if local.index < 0 || s > local.score {
					local = scored{index: i, score: s}
				}
				if e.progress != nil {
					e.progress(int(done.Add(1)), n)
				}
			}
			results[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	top := scored{index: -1}
	for _, r := range results {
		if r.index >= 0 && (top.index < 0 || r.score > top.score) {
			top = r
		}
	}
	return top.index, top.score, nil
}
