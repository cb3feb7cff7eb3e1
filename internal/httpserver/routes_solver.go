// internal/httpserver/routes_solver.go
//
// Solver endpoints. Stateless routes take the whole clue list in the body;
// session routes keep the clues server-side between calls.

package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// defaultCandidateLimit caps /candidates word lists when no limit is given.
const defaultCandidateLimit = 100

type clueBody struct {
	Word string `json:"word"`
	Code string `json:"code"`
}

type suggestionBody struct {
	Outcome    string `json:"outcome"`
	Word       string `json:"word,omitempty"`
	Score      uint   `json:"score"`
	Candidates int    `json:"candidates"`
	Scorer     string `json:"scorer"`
}

func toSuggestionBody(s solver.Suggestion, sc solver.Scorer) suggestionBody {
	return suggestionBody{
		Outcome:    s.Outcome.String(),
		Word:       s.Word.String(),
		Score:      s.Score,
		Candidates: s.Candidates,
		Scorer:     sc.Name(),
	}
}

// parseClues converts request clues into solver clues for the bank length.
func (s *Server) parseClues(in []clueBody) ([]solver.Clue, error) {
	out := make([]solver.Clue, 0, len(in))
	for i, c := range in {
		clue, err := solver.ParseClue(normalize(c.Word), strings.TrimSpace(c.Code), s.engine.Length())
		if err != nil {
			return nil, fmt.Errorf("clue %d: %w", i, err)
		}
		out = append(out, clue)
	}
	return out, nil
}

func normalize(word string) string { return strings.ToLower(strings.TrimSpace(word)) }

// POST /evaluate
// Request:  { "guess": "forte", "solution": "forge" }
// Response: { "code": "gggbg" }
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Guess    string `json:"guess"`
		Solution string `json:"solution"`
	}
	if !decode(w, r, &body) {
		return
	}
	guess, err := solver.NewWord(normalize(body.Guess))
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	solution, err := solver.NewWord(normalize(body.Solution))
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	if guess.Len() != solution.Len() {
		writeSolverError(w, r, fmt.Errorf("%w: %q and %q", solver.ErrLengthMismatch, guess, solution))
		return
	}
	writeJSON(w, map[string]string{"code": solver.Evaluate(guess, solution).String()})
}

// POST /candidates
// Request:  { "clues": [{ "word": "forte", "code": "gggbg" }], "limit": 10 }
// Response: { "count": 2, "words": ["forge", "forze"] }
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Clues []clueBody `json:"clues"`
		Limit int        `json:"limit"`
	}
	if !decode(w, r, &body) {
		return
	}
	clues, err := s.parseClues(body.Clues)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	candidates, err := s.engine.Candidates(clues)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	limit := body.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	list := candidates[:min(limit, len(candidates))]
	writeJSON(w, map[string]any{"count": len(candidates), "words": solver.Strings(list)})
}

// POST /suggest
// Request:  { "clues": [...], "scorer": "worst" }
// Response: { "outcome": "guess", "word": "forge", "score": 1, "candidates": 2, "scorer": "worst" }
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Clues  []clueBody `json:"clues"`
		Scorer string     `json:"scorer"`
	}
	if !decode(w, r, &body) {
		return
	}
	sc, err := s.scorerFor(body.Scorer)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	clues, err := s.parseClues(body.Clues)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	sug, err := s.engine.Suggest(r.Context(), clues, sc)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	writeJSON(w, toSuggestionBody(sug, sc))
}

// POST /session/new
// Response: { "sessionId": "...", "length": 5 }
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New(s.engine.Length())
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		writeSolverError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"sessionId": sess.ID, "length": sess.Length})
}

// POST /session/clue
// Request:  { "sessionId": "...", "word": "forte", "code": "gggbg" }
// Response: { "clues": 1, "candidates": 2 }
func (s *Server) handleSessionClue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"sessionId"`
		clueBody
	}
	if !decode(w, r, &body) {
		return
	}
	sess, err := s.sessions.Get(r.Context(), body.SessionID)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	if _, err := sess.AddClue(body.Word, body.Code); err != nil {
		writeSolverError(w, r, err)
		return
	}
	candidates, err := s.engine.Candidates(sess.Clues)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		writeSolverError(w, r, err)
		return
	}
	writeJSON(w, map[string]int{"clues": len(sess.Clues), "candidates": len(candidates)})
}

// POST /session/suggest
// Request:  { "sessionId": "...", "scorer": "unique" }
// Response: same as /suggest
func (s *Server) handleSessionSuggest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"sessionId"`
		Scorer    string `json:"scorer"`
	}
	if !decode(w, r, &body) {
		return
	}
	sc, err := s.scorerFor(body.Scorer)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	sess, err := s.sessions.Get(r.Context(), body.SessionID)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	sug, err := s.engine.Suggest(r.Context(), sess.Clues, sc)
	if err != nil {
		writeSolverError(w, r, err)
		return
	}
	writeJSON(w, toSuggestionBody(sug, sc))
}

// DELETE /session/{id}
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeSolverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
