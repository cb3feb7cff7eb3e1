// internal/daily/daily.go
//
// Daily puzzle selection: every date maps deterministically to one bank
// word through HMAC(salt, YYYY-MM-DD), so all instances sharing a salt and a
// bank agree on the day's answer.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % bankLen.
func WordIndex(date time.Time, salt string, bankLen int) int {
	if bankLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(bankLen))
}

// NewRun summarizes a self-played game for storage.
func NewRun(date, scorer string, wordIndex int, g solver.Game, elapsed time.Duration) Run {
	path := make([]string, len(g.Rounds))
	for i, r := range g.Rounds {
		path[i] = r.Clue.Guess.String() + ":" + r.Clue.Feedback.String()
	}
	return Run{
		Date:      date,
		Scorer:    scorer,
		WordIndex: wordIndex,
		Answer:    g.Answer.String(),
		Solved:    g.Solved,
		Rounds:    len(g.Rounds),
		Path:      path,
		ElapsedMs: int(elapsed.Milliseconds()),
	}
}

func joinPath(path []string) string { return strings.Join(path, ",") }

func splitPath(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
