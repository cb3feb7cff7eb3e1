// main.go
//
// Wordle solver HTTP server.
// Startup order: environment, logging, database, word bank, engine, router.

package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/logging"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
	"github.com/robalobadob/wordle/apps/go-solver/internal/wordstore"
)

func main() {
	cfg := config.Load()
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	db, err := database.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	wordsDB, err := openWordsDB(cfg, db)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.WordsDB).Msg("failed to open word store")
	}
	opts := words.Options{Length: cfg.WordLength, File: cfg.WordsFile}
	if wordsDB != nil {
		opts.Store = wordstore.New(wordsDB)
	}
	list, err := words.Load(context.Background(), opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word bank")
	}

	bank, err := solver.NewWords(cfg.WordLength, list.Words())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid word bank")
	}
	engine, err := solver.NewEngine(cfg.WordLength, bank, solver.WithWorkers(cfg.Workers))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build engine")
	}
	scorer, err := solver.ScorerByName(cfg.Scorer)
	if err != nil {
		log.Fatal().Err(err).Msg("bad SOLVER_SCORER")
	}
	log.Info().
		Int("words", list.Len()).
		Str("source", list.Source()).
		Int("length", cfg.WordLength).
		Str("scorer", scorer.Name()).
		Msg("word bank loaded")

	srv := httpserver.New(httpserver.Options{
		Engine:        engine,
		Sessions:      store.NewMemoryStore(),
		DB:            db,
		DefaultScorer: scorer,
		DailySalt:     cfg.DailySalt,
		AdminSecret:   cfg.AdminSecret,
		ClientOrigin:  cfg.ClientOrigin,
	})
	if cfg.AdminSecret == "" {
		log.Warn().Msg("ADMIN_JWT_SECRET not set; /admin routes disabled")
	}
	log.Info().Str("port", cfg.Port).Msg("starting go-solver")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openWordsDB returns the word store database, reusing db when WORDS_DB
// names the same file. It returns nil when no word store is configured.
func openWordsDB(cfg config.Config, db *sql.DB) (*sql.DB, error) {
	switch cfg.WordsDB {
	case "":
		return nil, nil
	case cfg.DBPath:
		return db, nil
	}
	return database.OpenAndMigrate(cfg.WordsDB)
}
