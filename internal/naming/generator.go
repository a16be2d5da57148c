package naming

import (
	"math/rand"

	"prodnames/internal/model"
)

const DefaultCount = 10

type Result struct {
	Names          []model.GeneratedName `json:"names"`
	TotalAvailable int                   `json:"total_available"`
	ExcludedCount  int                   `json:"excluded_count"`
}

type Generator struct {
	Pool *Pool
	// Shuffle permutes n elements through swap. Defaults to rand.Shuffle,
	// which is a Fisher-Yates shuffle.
	Shuffle func(n int, swap func(i, j int))
}

func NewGenerator(pool *Pool) *Generator {
	return &Generator{Pool: pool, Shuffle: rand.Shuffle}
}

// Generate picks up to count random candidates that are not in existing.
// Ids are sequential from 1 and only unique within the returned result.
func (g *Generator) Generate(count int, existing []string) Result {
	available := g.Pool.Available(existing)

	shuffle := g.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	n := min(max(count, 0), len(available))
	names := make([]model.GeneratedName, n)
	for i := 0; i < n; i++ {
		names[i] = model.GeneratedName{ID: i + 1, Name: available[i]}
	}

	return Result{
		Names:          names,
		TotalAvailable: len(available),
		ExcludedCount:  g.Pool.Len() - len(available),
	}
}
