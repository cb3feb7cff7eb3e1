package solver

import (
	"errors"
	"testing"
)

func TestScorers_ForgeExample(t *testing.T) {
	candidates := mustWords(t, "forge", "forze")
	tests := []struct {
		scorer Scorer
		guess  string
		want   uint
	}{
		{UniquePartitions{}, "forge", 2},
		{UniquePartitions{}, "forte", 1},
		{UniquePartitions{}, "forze", 2},
		{UniquePartitions{}, "soare", 1},
		{WorstBucket{}, "forge", 1},
		{WorstBucket{}, "forte", 0},
		{WorstBucket{}, "forze", 1},
		{WorstBucket{}, "soare", 0},
	}
	for _, tt := range tests {
		t.Run(tt.scorer.Name()+"/"+tt.guess, func(t *testing.T) {
			if got := tt.scorer.Score(candidates, MustWord(tt.guess)); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.guess, got, tt.want)
			}
		})
	}
}

func TestUniquePartitions_Bounds(t *testing.T) {
	candidates := mustWords(t, sampleWords...)
	for _, g := range sampleWords {
		guess := MustWord(g)
		score := UniquePartitions{}.Score(candidates, guess)
		if score > uint(len(candidates)) {
			t.Fatalf("Score(%q) = %d exceeds %d candidates", g, score, len(candidates))
		}
		distinct := true
		seen := map[Feedback]bool{}
		for _, c := range candidates {
			f := Evaluate(guess, c)
			if seen[f] {
				distinct = false
			}
			seen[f] = true
		}
		if distinct != (score == uint(len(candidates))) {
			t.Errorf("Score(%q) = %d, pairwise distinct = %v", g, score, distinct)
		}
	}
}

func TestWorstBucket_Bounds(t *testing.T) {
	candidates := mustWords(t, sampleWords...)
	for _, g := range sampleWords {
		score := WorstBucket{}.Score(candidates, MustWord(g))
		if score > uint(len(candidates)-1) {
			t.Errorf("Score(%q) = %d, want <= %d", g, score, len(candidates)-1)
		}
	}
	if got := (WorstBucket{}).Score(candidates[:1], MustWord("crane")); got != 0 {
		t.Errorf("single candidate score = %d, want 0", got)
	}
	if got := (WorstBucket{}).Score(nil, MustWord("crane")); got != 0 {
		t.Errorf("no candidates score = %d, want 0", got)
	}
}

func TestScorers_ReadOnly(t *testing.T) {
	candidates := mustWords(t, "forge", "forze", "crest")
	before := Strings(candidates)
	UniquePartitions{}.Score(candidates, MustWord("soare"))
	WorstBucket{}.Score(candidates, MustWord("soare"))
	for i, w := range candidates {
		if w.String() != before[i] {
			t.Fatalf("candidate %d changed to %q", i, w)
		}
	}
}

func TestScorerByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "unique"},
		{"unique", "unique"},
		{"maximize-unique-partitions", "unique"},
		{" Worst ", "worst"},
		{"minimize-worst-bucket", "worst"},
	}
	for _, tt := range tests {
		s, err := ScorerByName(tt.name)
		if err != nil {
			t.Errorf("ScorerByName(%q): %v", tt.name, err)
			continue
		}
		if s.Name() != tt.want {
			t.Errorf("ScorerByName(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
		}
	}
	if _, err := ScorerByName("entropy"); !errors.Is(err, ErrUnknownScorer) {
		t.Errorf("unknown scorer error = %v", err)
	}
}
