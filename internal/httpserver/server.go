// internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts, JSON, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless solver endpoints: POST /evaluate, /candidates, /suggest.
//   - Session endpoints: POST /session/new, /session/clue, /session/suggest; DELETE /session/{id}.
//   - Daily self-play endpoints: mounted under /daily (routes_daily.go).
//   - Admin word import: POST /admin/words, JWT protected (routes_admin.go).
//
// Notes:
//   - Input errors (bad words, malformed codes, length mismatches, unknown
//     scorers) are 400s with {"error": "..."}; a contradictory clue set is a
//     normal 200 response with outcome "no_solution".
//   - The word bank is fixed for the lifetime of the process.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/wordstore"
)

// Options carries the server's dependencies and settings.
type Options struct {
	Engine   *solver.Engine
	Sessions store.Store
	DB       *sql.DB // optional; enables /daily persistence and /admin/words

	DefaultScorer  solver.Scorer
	DailySalt      string
	AdminSecret    string // empty disables /admin routes
	ClientOrigin   string
	RequestTimeout time.Duration
}

// Server bundles router, solver engine, session store and DB-backed stores.
type Server struct {
	r        *chi.Mux
	engine   *solver.Engine
	sessions store.Store
	words    *wordstore.Store
	runs     *daily.Store
	scorer   solver.Scorer
	opts     Options
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.DefaultScorer == nil {
		opts.DefaultScorer = solver.UniquePartitions{}
	}
	if opts.Sessions == nil {
		opts.Sessions = store.NewMemoryStore()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{
		r:        chi.NewRouter(),
		engine:   opts.Engine,
		sessions: opts.Sessions,
		scorer:   opts.DefaultScorer,
		opts:     opts,
		now:      time.Now,
	}
	if opts.DB != nil {
		s.words = wordstore.New(opts.DB)
		s.runs = daily.NewStore(opts.DB)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))        // request-scoped logger in the context
	s.r.Use(requestIDLogger)                    // tag that logger with the request id
	s.r.Use(hlog.AccessHandler(accessLog))      // one line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"service":   "wordle-solver",
			"endpoints": []string{"/health", "POST /evaluate", "POST /candidates", "POST /suggest", "/session/*", "/daily"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"bank": len(s.engine.Words()), "length": s.engine.Length()})
	})

	// --- solver ---
	s.r.Post("/evaluate", s.handleEvaluate)
	s.r.Post("/candidates", s.handleCandidates)
	s.r.Post("/suggest", s.handleSuggest)

	s.r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.Post("/clue", s.handleSessionClue)
		r.Post("/suggest", s.handleSessionSuggest)
		r.Delete("/{id}", s.handleDeleteSession)
	})

	s.mountDaily(s.r)
	s.mountAdmin(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found: "+r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestIDLogger adds chi's request id to the request logger.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeSolverError maps engine and store errors to HTTP statuses.
func writeSolverError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, solver.ErrInvalidWord),
		errors.Is(err, solver.ErrLengthMismatch),
		errors.Is(err, solver.ErrMalformedFeedback),
		errors.Is(err, solver.ErrUnknownScorer),
		errors.Is(err, session.ErrTooManyClues):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timed out")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}

// scorerFor resolves a request's scorer name, falling back to the default.
func (s *Server) scorerFor(name string) (solver.Scorer, error) {
	if name == "" {
		return s.scorer, nil
	}
	return solver.ScorerByName(name)
}
