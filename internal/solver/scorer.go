// internal/solver/scorer.go
//
// Guess scoring strategies.
//
// A Scorer rates how well a guess splits the remaining candidates; higher is
// better. Scorers never break ties; the Engine keeps the first best word in
// bank order. Both built-in scorers bucket candidates by the feedback the
// guess would produce against each of them.

package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Scorer rates a guess against the current candidates. Implementations must
// be safe for concurrent use and must not modify candidates.
type Scorer interface {
	Name() string
	Score(candidates []Word, guess Word) uint
}

// UniquePartitions scores a guess by the number of distinct feedback
// buckets it splits the candidates into.
type UniquePartitions struct{}

func (UniquePartitions) Name() string { return "unique" }

func (UniquePartitions) Score(candidates []Word, guess Word) uint {
	return uint(len(Partition(candidates, guess)))
}

// WorstBucket scores a guess by how many candidates it rules out in the
// worst case: len(candidates) minus the largest bucket.
type WorstBucket struct{}

func (WorstBucket) Name() string { return "worst" }

func (WorstBucket) Score(candidates []Word, guess Word) uint {
	if len(candidates) == 0 {
		return 0
	}
	largest := 0
	for _, n := range Partition(candidates, guess) {
		largest = max(largest, n)
	}
	return uint(len(candidates) - largest)
}

// Partition counts candidates per feedback guess would receive.
func Partition(candidates []Word, guess Word) map[Feedback]int {
	buckets := make(map[Feedback]int, min(len(candidates), 243))
	for _, c := range candidates {
		buckets[Evaluate(guess, c)]++
	}
	return buckets
}

var scorers = map[string]Scorer{
	"unique":                     UniquePartitions{},
	"maximize-unique-partitions": UniquePartitions{},
	"worst":                      WorstBucket{},
	"minimize-worst-bucket":      WorstBucket{},
}

// ScorerByName returns a built-in scorer. The empty name selects
// UniquePartitions.
func ScorerByName(name string) (Scorer, error) {
	if name == "" {
		return UniquePartitions{}, nil
	}
	s, ok := scorers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScorer, name, strings.Join(ScorerNames(), ", "))
	}
	return s, nil
}

// ScorerNames lists the accepted scorer names.
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for n := range scorers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
