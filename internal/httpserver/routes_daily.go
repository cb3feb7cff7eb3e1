// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily self-play run.
// Exposes two endpoints under /daily:
//   - GET /daily?scorer=unique → the engine's run on today's answer
//   - GET /daily/history       → recent recorded runs
//
// The answer is chosen deterministically from date + salt. Each
// (date, scorer) pair is played once and persisted; later requests return
// the stored run. Without a database every request replays the game.

package httpserver

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv  *Server
	salt string
	mu   sync.Mutex // serializes plays so a (date, scorer) is computed once
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	salt := s.opts.DailySalt
	if salt == "" {
		salt = "local_dev_salt"
	}
	dd := &dailyServer{srv: s, salt: salt}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", dd.handleToday)
		r.Get("/history", dd.handleHistory)
	})
}

// today returns today's date key, word index, and answer.
func (d *dailyServer) today() (date string, idx int, answer solver.Word) {
	now := d.srv.now().UTC()
	bank := d.srv.engine.Words()
	idx = daily.WordIndex(now, d.salt, len(bank))
	return daily.DateKey(now), idx, bank[idx]
}

// handleToday returns the stored run for today and scorer, playing it first
// if needed.
func (d *dailyServer) handleToday(w http.ResponseWriter, r *http.Request) {
	sc, err := d.srv.scorerFor(r.URL.Query().Get("scorer"))
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	if len(d.srv.engine.Words()) == 0 {
		writeError(w, http.StatusServiceUnavailable, "empty word bank")
		return
	}
	date, idx, answer := d.today()
	runs := d.srv.runs

	d.mu.Lock()
	defer d.mu.Unlock()

	if runs != nil {
		run, ok, err := runs.Get(r.Context(), date, sc.Name())
		if err != nil {
			writeSolverError(w, r, err)
			return
		}
		if ok {
			writeJSON(w, run)
			return
		}
	}

	start := time.Now()
	g, err := d.srv.engine.Play(r.Context(), answer, sc, solver.DefaultMaxRounds)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	run := daily.NewRun(date, sc.Name(), idx, g, time.Since(start))
	hlog.FromRequest(r).Info().
		Str("date", date).
		Str("scorer", run.Scorer).
		Bool("solved", run.Solved).
		Int("rounds", run.Rounds).
		Msg("daily played")

	if runs != nil {
		if err := runs.InsertRun(r.Context(), run); err != nil {
			writeSolverError(w, r, err)
			return
		}
	}
	writeJSON(w, run)
}

// historyRes is returned by /daily/history.
type historyRes struct {
	Runs []daily.Run `json:"runs"`
}

// handleHistory lists recent runs, newest first.
func (d *dailyServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	if d.srv.runs == nil {
		writeError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	runs, err := d.srv.runs.Recent(r.Context(), limit)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	writeJSON(w, historyRes{Runs: runs})
}
