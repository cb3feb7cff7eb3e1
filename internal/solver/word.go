// internal/solver/word.go
//
// Word and Index types.
//
// A Word is an immutable lowercase a–z string together with its Index: for
// every letter, the set of positions it occupies. The index is built once in
// NewWord and shared read-only by every copy of the Word, so Words are cheap
// to pass around by value.
//
// Invariant: the union of all Index sets is exactly {0..Len()-1} and every
// position belongs to exactly one letter.

package solver

import "fmt"

const alphabetSize = 26

// Index maps each letter a–z to the positions it occupies in one word.
type Index [alphabetSize]Positions

// Positions returns the positions of letter in the word, or the empty set
// when the letter is absent or outside a–z.
func (ix *Index) Positions(letter byte) Positions {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return ix[letter-'a']
}

// Word is a fixed-length guess or solution.
type Word struct {
	text  string
	index *Index
}

// NewWord validates text and builds its Index.
func NewWord(text string) (Word, error) {
	if text == "" || len(text) > MaxLength {
		return Word{}, fmt.Errorf("%w: %q must be 1-%d letters", ErrInvalidWord, text, MaxLength)
	}
	ix := new(Index)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 'a' || c > 'z' {
			return Word{}, fmt.Errorf("%w: %q has non a-z letter at position %d", ErrInvalidWord, text, i)
		}
		ix[c-'a'].Add(i)
	}
	return Word{text: text, index: ix}, nil
}

// MustWord is like NewWord but panics on invalid input. Intended for tests
// and literals.
func MustWord(text string) Word {
	w, err := NewWord(text)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWords converts a list of strings into Words, all of which must have the
// given length.
func NewWords(length int, list []string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := NewWord(s)
		if err != nil {
			return nil, err
		}
		if w.Len() != length {
			return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrLengthMismatch, s, w.Len(), length)
		}
		out = append(out, w)
	}
	return out, nil
}

// String returns the word's letters.
func (w Word) String() string { return w.text }

// Len returns the number of letters.
func (w Word) Len() int { return len(w.text) }

// Index returns the word's letter index. The result must not be modified.
func (w Word) Index() *Index { return w.index }

// Positions is shorthand for w.Index().Positions(letter).
func (w Word) Positions(letter byte) Positions {
	if w.index == nil {
		return 0
	}
	return w.index.Positions(letter)
}

// Strings returns the text of each word.
func Strings(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.text
	}
	return out
}

// Equal reports whether two words have the same letters.
func (w Word) Equal(other Word) bool { return w.text == other.text }
