package vecenv

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/nathanieltooley/pokefactory/golurk"
	"golang.org/x/sync/errgroup"
)

var ErrBatchSize = errors.New("batch size mismatch")

// Env steps a fixed number of independent battles together. Each battle lives in its own engine and
// is only ever touched by one goroutine at a time, so results do not depend on the worker count.
type Env struct {
	ids     []uuid.UUID
	engines []*golurk.Engine
	workers int
}

// New creates size engines that share policy for the opponent side. workers <= 0 uses every CPU.
// The policy must be safe for concurrent use.
func New(size int, policy golurk.Policy, workers int) *Env {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	env := &Env{
		ids:     make([]uuid.UUID, size),
		engines: make([]*golurk.Engine, size),
		workers: workers,
	}

	for i := range size {
		env.ids[i] = uuid.New()
		env.engines[i] = golurk.NewEngine(policy)
	}

	return env
}

func (v *Env) Size() int {
	return len(v.engines)
}

func (v *Env) ID(i int) uuid.UUID {
	return v.ids[i]
}

func (v *Env) Engine(i int) *golurk.Engine {
	return v.engines[i]
}

func (v *Env) State(i int) golurk.BattleState {
	return v.engines[i].State()
}

func (v *Env) LegalActions(i int) []golurk.Action {
	return v.engines[i].LegalActions(golurk.PLAYER_SIDE)
}

// Reset reseeds the first len(seeds) engines. Extra seeds are ignored.
func (v *Env) Reset(seeds []uint32) {
	for i, seed := range seeds {
		if i >= len(v.engines) {
			break
		}

		v.engines[i].Reset(seed)
	}
}

func (v *Env) SetTeam(i int, side int, roster []golurk.Pokemon) error {
	if i < 0 || i >= len(v.engines) {
		return fmt.Errorf("env %d of %d: %w", i, len(v.engines), ErrBatchSize)
	}

	return v.engines[i].SetTeam(side, roster)
}

// Step plays one turn in every engine with the encoded action for the player side. Finished battles
// are skipped and report done with no reward. Every action is checked before any engine moves,
// so a bad action leaves the whole batch untouched.
func (v *Env) Step(ctx context.Context, actions []int) ([]float32, []bool, error) {
	if len(actions) != len(v.engines) {
		return nil, nil, fmt.Errorf("%d actions for %d envs: %w", len(actions), len(v.engines), ErrBatchSize)
	}

	for i, index := range actions {
		if v.engines[i].Done() {
			continue
		}

		mask := v.engines[i].LegalActionMask(golurk.PLAYER_SIDE)
		if index < 0 || index >= golurk.ACTION_COUNT || !mask[index] {
			return nil, nil, fmt.Errorf("env %d (%s) action %d: %w", i, v.ids[i], index, golurk.ErrIllegalAction)
		}
	}

	rewards := make([]float32, len(v.engines))
	dones := make([]bool, len(v.engines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)

	for i, engine := range v.engines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if engine.Done() {
				dones[i] = true
				return nil
			}

			result, err := engine.StepIndex(actions[i])
			if err != nil {
				return fmt.Errorf("env %d (%s): %w", i, v.ids[i], err)
			}

			rewards[i] = result.Reward
			dones[i] = result.Done
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return rewards, dones, nil
}

// Observe builds the observation of every engine
func (v *Env) Observe() []Observation {
	obs := make([]Observation, len(v.engines))
	for i, engine := range v.engines {
		state := engine.State()
		obs[i] = Observe(&state)
	}

	return obs
}
