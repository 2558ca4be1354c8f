package vecenv_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/nathanieltooley/pokefactory/factory"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/ai"
	"github.com/nathanieltooley/pokefactory/vecenv"
)

const batch = 8

func seeds() []uint32 {
	s := make([]uint32, batch)
	for i := range s {
		s[i] = uint32(100 + i)
	}

	return s
}

// setupEnv gives every env a player and opponent team drawn the same way a challenge does
func setupEnv(t *testing.T, env *vecenv.Env) {
	t.Helper()

	env.Reset(seeds())
	for i, seed := range seeds() {
		gen := factory.NewGenerator(seed)
		player := gen.RentalPool(1, false)[:factory.TEAM_SIZE]
		opponent := gen.OpponentTeam(1, 1, false, player)

		if err := env.SetTeam(i, golurk.PLAYER_SIDE, factory.CreateTeam(player, 50, 31)); err != nil {
			t.Fatal(err)
		}
		if err := env.SetTeam(i, golurk.OPPONENT_SIDE, factory.CreateTeam(opponent, 50, 31)); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBatchMatchesSerial(t *testing.T) {
	selector := ai.NewDefaultSelector()

	parallel := vecenv.New(batch, selector, 4)
	serial := vecenv.New(batch, selector, 1)
	setupEnv(t, parallel)
	setupEnv(t, serial)

	parallelResults, err := parallel.Rollout(context.Background(), rand.New(rand.NewPCG(1, 2)), 200)
	if err != nil {
		t.Fatalf("parallel rollout: %s", err)
	}

	// the serial env is stepped one engine at a time with the same action stream
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		actions := serial.RandomActions(rng)
		for i := range batch {
			if serial.Engine(i).Done() {
				continue
			}
			if _, err := serial.Engine(i).StepIndex(actions[i]); err != nil {
				t.Fatalf("serial env %d: %s", i, err)
			}
		}
	}

	for i := range batch {
		a := parallel.State(i)
		b := serial.State(i)

		if a.Turn != b.Turn || a.Rng != b.Rng || a.Teams != b.Teams || a.Winner() != b.Winner() {
			t.Fatalf("env %d diverged: turn %d vs %d, winner %d vs %d", i, a.Turn, b.Turn, a.Winner(), b.Winner())
		}
		if parallelResults[i].Turns != a.Turn || parallelResults[i].Winner != a.Winner() {
			t.Fatalf("env %d: result %+v does not match the state", i, parallelResults[i])
		}
	}
}

func TestStepRejectsWrongBatchSize(t *testing.T) {
	env := vecenv.New(2, nil, 1)

	if _, _, err := env.Step(context.Background(), []int{0}); !errors.Is(err, vecenv.ErrBatchSize) {
		t.Fatalf("expected ErrBatchSize, got %v", err)
	}
	if err := env.SetTeam(2, golurk.PLAYER_SIDE, nil); !errors.Is(err, vecenv.ErrBatchSize) {
		t.Fatalf("expected ErrBatchSize, got %v", err)
	}
}

func TestIllegalActionLeavesBatchUntouched(t *testing.T) {
	env := vecenv.New(2, nil, 2)
	for i := range 2 {
		_ = env.SetTeam(i, golurk.PLAYER_SIDE, golurk.DefaultTeam(50))
		_ = env.SetTeam(i, golurk.OPPONENT_SIDE, golurk.DefaultTeam(50))
	}

	// env 1 has nothing in its third move slot
	_, _, err := env.Step(context.Background(), []int{0, 2})
	if !errors.Is(err, golurk.ErrIllegalAction) {
		t.Fatalf("expected ErrIllegalAction, got %v", err)
	}

	for i := range 2 {
		if env.State(i).Turn != 0 {
			t.Fatalf("env %d moved even though the batch was rejected", i)
		}
	}
}

func TestFinishedBattlesAreSkipped(t *testing.T) {
	env := vecenv.New(1, nil, 1)
	_ = env.SetTeam(0, golurk.PLAYER_SIDE, golurk.DefaultTeam(100)[:1])
	_ = env.SetTeam(0, golurk.OPPONENT_SIDE, golurk.DefaultTeam(1)[:1])

	results, err := env.Rollout(context.Background(), rand.New(rand.NewPCG(3, 4)), 100)
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Done {
		t.Fatalf("level 100 against level 1 should finish")
	}

	turn := env.State(0).Turn
	rewards, dones, err := env.Step(context.Background(), []int{0})
	if err != nil {
		t.Fatalf("stepping a finished battle: %s", err)
	}
	if !dones[0] || rewards[0] != 0 || env.State(0).Turn != turn {
		t.Fatalf("a finished battle should report done without playing")
	}
}

func TestIdsAreUnique(t *testing.T) {
	env := vecenv.New(batch, nil, 0)

	seen := map[string]bool{}
	for i := range env.Size() {
		id := env.ID(i).String()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
