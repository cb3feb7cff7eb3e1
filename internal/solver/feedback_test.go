package solver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		guess, solution string
		want            string
	}{
		{"saber", "label", "bgggb"},
		{"aheap", "woken", "bbybb"},
		{"serai", "delve", "bgbbb"},
		{"yente", "delve", "bgbbg"},
		{"blech", "delve", "byybb"},
		{"begem", "delve", "bgbyb"},
		{"welke", "delve", "bggbg"},
		{"mommy", "delve", "bbbbb"},
		{"forge", "forge", "ggggg"},
		{"forte", "forge", "gggbg"},
		{"forze", "forge", "gggbg"},
		{"bafts", "forge", "bbybb"},
		{"murid", "forge", "bbgbb"},
		{"soare", "forge", "bgbyg"},
		// one exact e; the second e has nothing left to match
		{"sheet", "crest", "ybgbg"},
		// excess occurrences: yellows go left to right, the rest are absent
		{"speed", "abide", "bbyby"},
		{"geese", "enter", "byybb"},
		{"creep", "beret", "byygb"},
		// exact matches consume occurrences before any yellow is handed out
		{"lolly", "hello", "byggb"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.solution, func(t *testing.T) {
			got := Evaluate(MustWord(tt.guess), MustWord(tt.solution))
			if got.String() != tt.want {
				t.Errorf("Evaluate(%q, %q) = %s, want %s", tt.guess, tt.solution, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Colors(t *testing.T) {
	got := Evaluate(MustWord("forze"), MustWord("forge")).Colors()
	want := []Color{Exact, Exact, Exact, Absent, Exact}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
	got = Evaluate(MustWord("soare"), MustWord("forge")).Colors()
	want = []Color{Absent, Exact, Absent, Present, Exact}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
}

var sampleWords = []string{
	"forge", "forte", "forze", "soare", "crest", "sheet", "label", "delve",
	"mommy", "lolly", "hello", "speed", "abide", "geese", "enter", "creep",
	"beret", "crane", "slate", "audio", "pygmy", "vivid", "eerie", "queue",
}

func TestEvaluate_SelfIsAllExact(t *testing.T) {
	for _, s := range sampleWords {
		w := MustWord(s)
		f := Evaluate(w, w)
		if !f.Solved() {
			t.Errorf("Evaluate(%q, %q) = %s, want all exact", s, s, f)
		}
	}
}

func TestEvaluate_DisjointIsAllAbsent(t *testing.T) {
	pairs := [][2]string{{"mommy", "delve"}, {"audio", "pygmy"}, {"crest", "mommy"}, {"vivid", "forge"}}
	for _, p := range pairs {
		f := Evaluate(MustWord(p[0]), MustWord(p[1]))
		for i := range f.Len() {
			if f.At(i) != Absent {
				t.Errorf("Evaluate(%q, %q) = %s, want all absent", p[0], p[1], f)
				break
			}
		}
	}
}

func TestEvaluate_NoUnknownAndBoundedYellows(t *testing.T) {
	for _, g := range sampleWords {
		for _, s := range sampleWords {
			guess, sol := MustWord(g), MustWord(s)
			f := Evaluate(guess, sol)
			marked := map[byte]int{}
			for i := range f.Len() {
				switch f.At(i) {
				case Unknown:
					t.Fatalf("Evaluate(%q, %q) left position %d unknown", g, s, i)
				case Exact, Present:
					marked[g[i]]++
				}
			}
			for c, n := range marked {
				if n > sol.Positions(c).Count() {
					t.Errorf("Evaluate(%q, %q) marks %d %q, solution has %d", g, s, n, c, sol.Positions(c).Count())
				}
			}
		}
	}
}

func TestParseFeedback(t *testing.T) {
	f, err := ParseFeedback("bygbg", 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Color{Absent, Present, Exact, Absent, Exact}
	if diff := cmp.Diff(want, f.Colors()); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
	if f.String() != "bygbg" {
		t.Errorf("String() = %q", f.String())
	}
	built, err := NewFeedback(want...)
	if err != nil {
		t.Fatal(err)
	}
	if built != f {
		t.Errorf("NewFeedback(...) = %s, want equal to parsed %s", built, f)
	}
}

func TestParseFeedback_Malformed(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"too short", "bygb"},
		{"too long", "byggbb"},
		{"uppercase", "BYGBG"},
		{"unknown color", "byxbg"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFeedback(tt.code, 5); !errors.Is(err, ErrMalformedFeedback) {
				t.Errorf("ParseFeedback(%q) error = %v, want ErrMalformedFeedback", tt.code, err)
			}
		})
	}
}

func TestFeedback_MapKey(t *testing.T) {
	buckets := map[Feedback]int{}
	buckets[Evaluate(MustWord("forte"), MustWord("forge"))]++
	buckets[Evaluate(MustWord("forte"), MustWord("forze"))]++
	buckets[Evaluate(MustWord("forte"), MustWord("forte"))]++
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2: %v", len(buckets), buckets)
	}
}

func TestFeedback_LongWords(t *testing.T) {
	a := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijkl"
	b := "zbcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijka"
	f := Evaluate(MustWord(a), MustWord(b))
	if f.Len() != 64 {
		t.Fatalf("Len() = %d", f.Len())
	}
	if f.At(0) != Present || f.At(63) != Absent || f.At(40) != Exact {
		t.Errorf("unexpected colors %s", f)
	}
}
