// Command wordle-suggest prints the best next guess for a set of clues, or
// lets the engine play a whole game against a known answer.
//
//	wordle-suggest -clue soare:bgbyb -clue lurid:bybbb
//	wordle-suggest -clues clues.txt -scorer worst
//	wordle-suggest -answer forge -progress
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
	"github.com/robalobadob/wordle/apps/go-solver/internal/logging"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
	"github.com/robalobadob/wordle/apps/go-solver/internal/wordstore"
)

// clueList collects repeated -clue word:code flags.
type clueList []string

func (c *clueList) String() string { return strings.Join(*c, ",") }

func (c *clueList) Set(v string) error {
	if !strings.Contains(v, ":") {
		return fmt.Errorf("want word:code, got %q", v)
	}
	*c = append(*c, v)
	return nil
}

type options struct {
	wordsFile string
	wordsDB   string
	cluesFile string
	clues     []string
	scorer    string
	length    int
	workers   int
	answer    string
	progress  bool
}

func main() {
	cfg := config.Load()

	var opts options
	var clues clueList
	flag.StringVar(&opts.wordsFile, "words", cfg.WordsFile, "Word list, one word per line (default: embedded list)")
	flag.StringVar(&opts.cluesFile, "clues", "", "File of clues, one \"word code\" per line")
	flag.Var(&clues, "clue", "A clue as word:code, e.g. soare:bgbyb (repeatable)")
	flag.StringVar(&opts.scorer, "scorer", cfg.Scorer, "Scorer: "+strings.Join(solver.ScorerNames(), ", "))
	flag.IntVar(&opts.length, "length", cfg.WordLength, "Letters per word")
	flag.IntVar(&opts.workers, "workers", cfg.Workers, "Scoring goroutines (0 = GOMAXPROCS)")
	flag.StringVar(&opts.answer, "answer", "", "Play a whole game against this answer")
	flag.BoolVar(&opts.progress, "progress", false, "Show a progress bar while scoring")
	flag.Parse()
	opts.clues = clues
	opts.wordsDB = cfg.WordsDB

	logging.Setup(os.Stderr, cfg.LogLevel, "console")

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("wordle-suggest")
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	sc, err := solver.ScorerByName(opts.scorer)
	if err != nil {
		return err
	}
	engine, err := loadEngine(ctx, opts)
	if err != nil {
		return err
	}

	if opts.answer != "" {
		answer, err := solver.NewWord(strings.ToLower(opts.answer))
		if err != nil {
			return err
		}
		return play(ctx, engine, answer, sc, out)
	}

	clues, err := collectClues(opts)
	if err != nil {
		return err
	}
	start := time.Now()
	s, err := engine.Suggest(ctx, clues, sc)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s candidates of %s words\n", humanize.Comma(int64(s.Candidates)), humanize.Comma(int64(len(engine.Words()))))
	switch s.Outcome {
	case solver.OutcomeNoSolution:
		fmt.Fprintln(out, "no word fits these clues")
	case solver.OutcomeSolved:
		fmt.Fprintf(out, "answer: %s\n", s.Word)
	default:
		fmt.Fprintf(out, "guess: %s (%s score %d, %v)\n", s.Word, sc.Name(), s.Score, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func play(ctx context.Context, engine *solver.Engine, answer solver.Word, sc solver.Scorer, out io.Writer) error {
	g, err := engine.Play(ctx, answer, sc, solver.DefaultMaxRounds)
	if err != nil {
		return err
	}
	for i, r := range g.Rounds {
		fmt.Fprintf(out, "%s guess: %s (%s candidates)\n", humanize.Ordinal(i+1), r.Clue, humanize.Comma(int64(r.Candidates)))
	}
	if g.Solved {
		fmt.Fprintf(out, "solved %s in %d\n", answer, len(g.Rounds))
	} else {
		fmt.Fprintf(out, "failed to solve %s\n", answer)
	}
	return nil
}

func loadEngine(ctx context.Context, opts options) (*solver.Engine, error) {
	wo := words.Options{Length: opts.length, File: opts.wordsFile}
	if opts.wordsDB != "" {
		db, err := database.OpenAndMigrate(opts.wordsDB)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		wo.Store = wordstore.New(db)
	}
	list, err := words.Load(ctx, wo)
	if err != nil {
		return nil, err
	}
	bank, err := solver.NewWords(opts.length, list.Words())
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", list.Len()).Str("source", list.Source()).Msg("word bank loaded")

	engineOpts := []solver.Option{solver.WithWorkers(opts.workers)}
	if opts.progress {
		engineOpts = append(engineOpts, solver.WithProgress(new(progress).update))
	}
	return solver.NewEngine(opts.length, bank, engineOpts...)
}

// collectClues merges the clue file with -clue flags, file first.
func collectClues(opts options) ([]solver.Clue, error) {
	var clues []solver.Clue
	if opts.cluesFile != "" {
		f, err := os.Open(opts.cluesFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if clues, err = solver.ReadClues(f, opts.length); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.cluesFile, err)
		}
	}
	for _, arg := range opts.clues {
		word, code, _ := strings.Cut(arg, ":")
		c, err := solver.ParseClue(strings.ToLower(word), code, opts.length)
		if err != nil {
			return nil, fmt.Errorf("-clue %s: %w", arg, err)
		}
		clues = append(clues, c)
	}
	return clues, nil
}

// progress drives one progress bar per Suggest call. The engine reports
// exactly total updates per call and calls never overlap.
type progress struct {
	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	seen int
}

func (p *progress) update(_, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar == nil {
		p.bar = progressbar.Default(int64(total), "scoring")
		p.seen = 0
	}
	_ = p.bar.Add(1)
	p.seen++
	if p.seen == total {
		_ = p.bar.Finish()
		p.bar = nil
	}
}
