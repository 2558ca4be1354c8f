package vecenv

import (
	"context"
	"math/rand/v2"

	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/samber/lo"
)

// RolloutResult is how one battle of a rollout ended
type RolloutResult struct {
	Done   bool
	Winner int
	Turns  int
	Reward float32
}

// RandomActions picks a uniformly random legal action for every engine. Finished battles get 0.
// Choices are drawn in env order from rng, so a seeded rng gives the same actions every time.
func (v *Env) RandomActions(rng *rand.Rand) []int {
	return lo.Map(v.engines, func(engine *golurk.Engine, _ int) int {
		if engine.Done() {
			return 0
		}

		legal := engine.LegalActions(golurk.PLAYER_SIDE)
		return golurk.ActionIndex(legal[rng.IntN(len(legal))])
	})
}

// Rollout plays random legal actions until every battle ends or maxTurns turns have been played
func (v *Env) Rollout(ctx context.Context, rng *rand.Rand, maxTurns int) ([]RolloutResult, error) {
	results := make([]RolloutResult, len(v.engines))

	for range maxTurns {
		if lo.EveryBy(v.engines, func(e *golurk.Engine) bool { return e.Done() }) {
			break
		}

		rewards, _, err := v.Step(ctx, v.RandomActions(rng))
		if err != nil {
			return nil, err
		}

		for i, reward := range rewards {
			results[i].Reward += reward
		}
	}

	for i, engine := range v.engines {
		state := engine.State()
		results[i].Done = state.IsTerminal()
		results[i].Winner = state.Winner()
		results[i].Turns = state.Turn
	}

	return results, nil
}
