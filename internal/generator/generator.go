// Package generator picks practice exercises.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/parley/internal/model"
)

// Generator picks exercises at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects an exercise uniformly. It returns false for an empty list.
func (g *Generator) Pick(exercises []model.Exercise) (model.Exercise, bool) {
	if len(exercises) == 0 {
		return model.Exercise{}, false
	}
	return exercises[g.rnd.Intn(len(exercises))], true
}

// PickWeighted favours exercises with fewer recorded attempts. Each exercise
// gets weight 1 + factor/(1+attempts).
func (g *Generator) PickWeighted(exercises []model.Exercise, attempts map[string]int, factor float64) (model.Exercise, bool) {
	if len(exercises) == 0 {
		return model.Exercise{}, false
	}
	weights := make([]float64, len(exercises))
	total := 0.0
	for i, ex := range exercises {
		w := 1.0 + factor/float64(1+attempts[ex.ID])
		weights[i] = w
		total += w
	}
	r := g.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return exercises[i], true
		}
	}
	return exercises[len(exercises)-1], true
}
