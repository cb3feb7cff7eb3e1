package solver

// Filter returns the words consistent with every clue, in their original
// order. The input slice is never modified; with no clues the result is a
// copy of words.
func Filter(words []Word, clues []Clue) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if consistent(w, clues) {
			out = append(out, w)
		}
	}
	return out
}

func consistent(w Word, clues []Clue) bool {
	for _, c := range clues {
		if c.Guess.Len() != w.Len() || !c.Matches(w) {
			return false
		}
	}
	return true
}
