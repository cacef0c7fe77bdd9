package agent

import (
	"golang.org/x/exp/rand"

	"duel/game"
)

// UniformRandom picks uniformly over the full catalog with replacement. This
// is the reference policy for Monte Carlo runs.
type UniformRandom struct {
	rng     *rand.Rand
	catalog []game.Action
}

// NewUniformRandom returns a selector with its own seeded RNG, so trials stay
// reproducible no matter how workers are scheduled.
func NewUniformRandom(seed uint64) *UniformRandom {
	return &UniformRandom{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: game.Actions(),
	}
}

func (u *UniformRandom) SelectAction() game.Action {
	return u.catalog[u.rng.Intn(len(u.catalog))]
}
