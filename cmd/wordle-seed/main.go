// Command wordle-seed imports a word list into the SQLite word store, and
// can mint admin tokens for the server's /admin routes.
//
//	wordle-seed -file words.txt -db ./data/solver.db
//	wordle-seed -token -subject ops -ttl 24h
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/logging"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
	"github.com/robalobadob/wordle/apps/go-solver/internal/wordstore"
)

func main() {
	cfg := config.Load()

	file := flag.String("file", "", "Word list to import, one word per line")
	dbPath := flag.String("db", config.Env("WORDS_DB", cfg.DBPath), "SQLite database")
	length := flag.Int("length", cfg.WordLength, "Letters per word")
	token := flag.Bool("token", false, "Print an admin JWT signed with ADMIN_JWT_SECRET and exit")
	subject := flag.String("subject", "admin", "Token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	logging.Setup(os.Stderr, cfg.LogLevel, "console")

	if *token {
		tok, exp, err := httpserver.SignAdminToken(cfg.AdminSecret, *subject, *ttl)
		if err != nil {
			log.Fatal().Err(err).Msg("set ADMIN_JWT_SECRET to sign tokens")
		}
		fmt.Println(tok)
		log.Info().Str("subject", *subject).Str("expires", humanize.Time(exp)).Msg("token issued")
		return
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "wordle-seed: -file is required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("open word list")
	}
	defer f.Close()

	if err := seed(context.Background(), f, *dbPath, *length, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("seed failed")
	}
}

// seed imports the words of the given length from r into the store at dbPath.
func seed(ctx context.Context, r io.Reader, dbPath string, length int, out io.Writer) error {
	list, err := words.Parse(r, length)
	if err != nil {
		return err
	}
	db, err := database.OpenAndMigrate(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	st := wordstore.New(db)
	start := time.Now()
	added, err := st.InsertMany(ctx, list)
	if err != nil {
		return err
	}
	total, err := st.Count(ctx, length)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %s of %s words in %v; store now holds %s %d-letter words\n",
		humanize.Comma(int64(added)), humanize.Comma(int64(len(list))),
		time.Since(start).Round(time.Millisecond), humanize.Comma(int64(total)), length)
	return nil
}
