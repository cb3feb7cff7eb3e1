// internal/solver/feedback.go
//
// Feedback records and the feedback computer.
//
// A Feedback packs one Color per position into two bits of a [2]uint64, so
// it is a small comparable value that can be used directly as a map key
// when bucketing candidates.
//
// Evaluate implements the Wordle rule for duplicate letters:
//   1. Positions where guess and solution share a letter are Exact.
//   2. Each remaining guess occurrence of a letter is Present while the
//      solution still has unmatched occurrences of it, left to right.
//   3. Everything else is Absent.

package solver

import (
	"fmt"
	"strings"
)

// Color is the evaluation of one guess letter.
type Color uint8

const (
	Unknown Color = iota // not evaluated
	Absent               // b: letter not in the solution (or all occurrences used)
	Present              // y: letter in the solution at another position
	Exact                // g: letter at this position
)

// Code returns the single-character feedback code ('b', 'y', 'g'), or '?'
// for Unknown.
func (c Color) Code() byte {
	switch c {
	case Absent:
		return 'b'
	case Present:
		return 'y'
	case Exact:
		return 'g'
	}
	return '?'
}

func (c Color) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	}
	return "unknown"
}

// Feedback is an immutable colored sequence for one guess.
type Feedback struct {
	bits [2]uint64
	n    uint8
}

func (f *Feedback) set(pos int, c Color) {
	shift := uint(pos%32) * 2
	f.bits[pos/32] = f.bits[pos/32]&^(3<<shift) | uint64(c)<<shift
}

// NewFeedback builds a Feedback from explicit colors.
func NewFeedback(colors ...Color) (Feedback, error) {
	if len(colors) == 0 || len(colors) > MaxLength {
		return Feedback{}, fmt.Errorf("%w: %d colors", ErrMalformedFeedback, len(colors))
	}
	f := Feedback{n: uint8(len(colors))}
	for i, c := range colors {
		if c > Exact {
			return Feedback{}, fmt.Errorf("%w: invalid color %d at position %d", ErrMalformedFeedback, c, i)
		}
		f.set(i, c)
	}
	return f, nil
}

// ParseFeedback parses a code such as "bgyyb". The code must be exactly
// length characters from {b, y, g}; nothing is coerced.
func ParseFeedback(code string, length int) (Feedback, error) {
	if len(code) != length {
		return Feedback{}, fmt.Errorf("%w: %q has %d characters, want %d", ErrMalformedFeedback, code, len(code), length)
	}
	if length == 0 || length > MaxLength {
		return Feedback{}, fmt.Errorf("%w: unsupported length %d", ErrMalformedFeedback, length)
	}
	f := Feedback{n: uint8(length)}
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case 'b':
			f.set(i, Absent)
		case 'y':
			f.set(i, Present)
		case 'g':
			f.set(i, Exact)
		default:
			return Feedback{}, fmt.Errorf("%w: unsupported color %q at position %d", ErrMalformedFeedback, code[i], i)
		}
	}
	return f, nil
}

// Len returns the number of positions.
func (f Feedback) Len() int { return int(f.n) }

// At returns the color at pos.
func (f Feedback) At(pos int) Color {
	if pos < 0 || pos >= int(f.n) {
		return Unknown
	}
	return Color(f.bits[pos/32] >> (uint(pos%32) * 2) & 3)
}

// Colors returns the colors as a slice.
func (f Feedback) Colors() []Color {
	out := make([]Color, f.n)
	for i := range out {
		out[i] = f.At(i)
	}
	return out
}

// Solved reports whether every position is Exact.
func (f Feedback) Solved() bool {
	if f.n == 0 {
		return false
	}
	for i := 0; i < int(f.n); i++ {
		if f.At(i) != Exact {
			return false
		}
	}
	return true
}

// String returns the feedback code, e.g. "gggbg".
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(int(f.n))
	for i := 0; i < int(f.n); i++ {
		b.WriteByte(f.At(i).Code())
	}
	return b.String()
}

// Evaluate computes the feedback the game would show for guess when the
// answer is solution. Both words must have the same length.
func Evaluate(guess, solution Word) Feedback {
	n := guess.Len()
	if solution.Len() != n {
		panic(fmt.Sprintf("solver: Evaluate length mismatch: %q vs %q", guess.text, solution.text))
	}
	f := Feedback{n: uint8(n)}
	if n == 0 {
		return f
	}
	g, s := guess.index, solution.index
	for c := 0; c < alphabetSize; c++ {
		gp := g[c]
		if gp == 0 {
			continue
		}
		sp := s[c]
		exact := gp.Intersect(sp)
		for pos := range exact.All() {
			f.set(pos, Exact)
		}
		budget := sp.Count() - exact.Count()
		for pos := range gp.SymmetricDifference(exact).All() {
			if budget > 0 {
				f.set(pos, Present)
				budget--
			} else {
				f.set(pos, Absent)
			}
		}
	}
	return f
}
