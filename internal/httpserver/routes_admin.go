// internal/httpserver/routes_admin.go
//
// Admin word import. New words go to the SQLite word store; the engine's
// bank is built once at startup, so imports take effect on restart.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func (s *Server) mountAdmin(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/words", s.handleImportWords)
	})
}

// POST /admin/words
// Request:  { "words": ["crane", "slate"], "length": 5 }
// Response: { "added": 2, "total": 752, "length": 5 }
func (s *Server) handleImportWords(w http.ResponseWriter, r *http.Request) {
	if s.words == nil {
		writeError(w, http.StatusServiceUnavailable, "no word store configured")
		return
	}
	var body struct {
		Words  []string `json:"words"`
		Length int      `json:"length"`
	}
	if !decode(w, r, &body) {
		return
	}
	length := body.Length
	if length <= 0 {
		length = s.engine.Length()
	}
	list := words.Normalize(body.Words, length)
	added, err := s.words.InsertMany(r.Context(), list)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	total, err := s.words.Count(r.Context(), length)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	hlog.FromRequest(r).Info().
		Str("admin", adminSubject(r)).
		Int("submitted", len(body.Words)).
		Int("added", added).
		Int("length", length).
		Msg("words imported")
	writeJSON(w, map[string]int{"added": added, "total": total, "length": length})
}
