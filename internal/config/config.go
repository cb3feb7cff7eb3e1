// internal/config/config.go
//
// Environment configuration shared by the server and the cmd tools.
// A .env file in the working directory is loaded first (missing is fine);
// real environment variables win over .env entries.
//
// Variables:
//   PORT=5175                  HTTP listen port
//   LOG_LEVEL=info             zerolog level
//   LOG_FORMAT=json            "console" for human-readable output
//   WORD_LENGTH=5              letters per word
//   WORDS_FILE=                word list, one per line (overrides embedded list)
//   WORDS_DB=                  SQLite word store (overrides WORDS_FILE)
//   DB_PATH=./data/solver.db   daily runs and admin imports
//   DAILY_SALT=local_dev_salt  daily answer selection
//   ADMIN_JWT_SECRET=          HS256 key for /admin; empty disables admin
//   SOLVER_WORKERS=0           scoring goroutines, 0 = GOMAXPROCS
//   SOLVER_SCORER=unique       default scorer
//   CLIENT_ORIGIN=http://localhost:5173

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string
	WordLength   int
	WordsFile    string
	WordsDB      string
	DBPath       string
	DailySalt    string
	AdminSecret  string
	Workers      int
	Scorer       string
	ClientOrigin string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the process environment only.
func FromEnv() Config {
	return Config{
		Port:         Env("PORT", "5175"),
		LogLevel:     Env("LOG_LEVEL", "info"),
		LogFormat:    Env("LOG_FORMAT", "json"),
		WordLength:   EnvInt("WORD_LENGTH", 5),
		WordsFile:    Env("WORDS_FILE", ""),
		WordsDB:      Env("WORDS_DB", ""),
		DBPath:       Env("DB_PATH", "./data/solver.db"),
		DailySalt:    Env("DAILY_SALT", "local_dev_salt"),
		AdminSecret:  Env("ADMIN_JWT_SECRET", ""),
		Workers:      EnvInt("SOLVER_WORKERS", 0),
		Scorer:       Env("SOLVER_SCORER", "unique"),
		ClientOrigin: Env("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// Env returns the trimmed value of k, or def when unset or blank.
func Env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// EnvInt is Env for integers; unparsable values fall back to def.
func EnvInt(k string, def int) int {
	if n, err := strconv.Atoi(Env(k, "")); err == nil {
		return n
	}
	return def
}
