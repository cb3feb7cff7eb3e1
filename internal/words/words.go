// internal/words/words.go
//
// Word bank loading.
//
// Responsibilities:
//   - Load the bank from the first configured source:
//       1. a word store (SQLite, see internal/wordstore), when Options.Store is set;
//       2. a word file (one word per line), when Options.File is set;
//       3. the embedded default list in assets.
//   - Normalize every list the same way: trim, lowercase, skip blanks and
//     "#" comments, keep only a–z words of the configured length, drop
//     duplicates keeping the first occurrence (bank order is significant for
//     tie-breaking in the solver).
//
// Environment variables (read by main):
//   WORDS_DB=/path/to/words.db
//   WORDS_FILE=/path/to/words.txt
//   WORD_LENGTH=5

package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Store is a persistent word source.
type Store interface {
	ByLength(ctx context.Context, n int) ([]string, error)
}

// Options selects where the bank comes from.
type Options struct {
	Length int
	File   string
	Store  Store
}

// List is a loaded, normalized word bank.
type List struct {
	words  []string
	set    map[string]struct{}
	source string
}

// Load returns the bank from the first configured source.
// Returns an error if the resulting list is empty.
func Load(ctx context.Context, opts Options) (*List, error) {
	if opts.Length <= 0 {
		return nil, fmt.Errorf("words: invalid length %d", opts.Length)
	}

	var (
		raw    []string
		source string
		err    error
	)
	switch {
	case opts.Store != nil:
		source = "store"
		raw, err = opts.Store.ByLength(ctx, opts.Length)
	case opts.File != "":
		source = opts.File
		raw, err = readWordFile(opts.File)
	default:
		source = "embedded"
		raw, err = assets.WordList()
	}
	if err != nil {
		return nil, fmt.Errorf("words: load from %s: %w", source, err)
	}

	list := Normalize(raw, opts.Length)
	if len(list) == 0 {
		return nil, fmt.Errorf("words: no %d-letter words in %s", opts.Length, source)
	}
	return &List{words: list, set: toSet(list), source: source}, nil
}

// Parse reads one word per line from r and normalizes the result.
func Parse(r io.Reader, length int) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Normalize(out, length), nil
}

// readWordFile loads raw lines from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Normalize lowercases and trims lines, keeping valid words of the given
// length in first-seen order.
func Normalize(lines []string, length int) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the bank in order. The slice must not be modified.
func (l *List) Words() []string { return l.words }

// Contains reports whether w is in the bank.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Source names where the list was loaded from ("store", "embedded" or a file path).
func (l *List) Source() string { return l.source }
