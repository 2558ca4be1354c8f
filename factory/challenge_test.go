package factory

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

func buildMon(t *testing.T, speciesName string, level int, moveNames ...string) golurk.Pokemon {
	t.Helper()

	species, ok := data.GlobalData.SpeciesByName(speciesName)
	if !ok {
		t.Fatalf("unknown species %s", speciesName)
	}

	moves := lo.Map(moveNames, func(name string, _ int) uint16 {
		move, ok := data.GlobalData.MoveByName(name)
		if !ok {
			t.Fatalf("unknown move %s", name)
		}
		return move.ID
	})

	return golurk.NewPokeBuilder(species, nil).SetLevel(level).SetPerfectIvs().SetMoves(moves...).Build()
}

// rigBattle replaces the current battle with one the player wins in a single turn
func rigBattle(t *testing.T, c *Challenge) {
	t.Helper()

	c.engine.Reset(1)
	if err := c.engine.SetTeam(golurk.PLAYER_SIDE, []golurk.Pokemon{buildMon(t, "charizard", 100, "flamethrower")}); err != nil {
		t.Fatal(err)
	}
	if err := c.engine.SetTeam(golurk.OPPONENT_SIDE, []golurk.Pokemon{buildMon(t, "chikorita", 5, "tackle")}); err != nil {
		t.Fatal(err)
	}
}

func TestChallengeStartsInRental(t *testing.T) {
	c := NewChallenge(10, Options{})

	if c.Phase() != PHASE_RENTAL {
		t.Fatalf("expected rental phase, got %s", c.Phase())
	}
	if len(c.RentalPool()) != RENTAL_POOL_SIZE {
		t.Fatalf("expected %d rental sets, got %d", RENTAL_POOL_SIZE, len(c.RentalPool()))
	}
	if !slices.Equal(c.LegalActions(), lo.Range(RENTAL_CHOICES)) {
		t.Fatalf("all %d rental choices should be legal", RENTAL_CHOICES)
	}
	if !slices.Equal(c.RentalPool(), NewGenerator(10).RentalPool(0, false)) {
		t.Fatalf("rental pool should be the first draw from the challenge seed")
	}
}

func TestRentalCombosAreLexicographic(t *testing.T) {
	if len(rentalCombos) != RENTAL_CHOICES {
		t.Fatalf("expected %d combos, got %d", RENTAL_CHOICES, len(rentalCombos))
	}
	if rentalCombos[0] != [TEAM_SIZE]int{0, 1, 2} || rentalCombos[1] != [TEAM_SIZE]int{0, 1, 3} {
		t.Errorf("unexpected leading combos %v %v", rentalCombos[0], rentalCombos[1])
	}
	if rentalCombos[RENTAL_CHOICES-1] != [TEAM_SIZE]int{3, 4, 5} {
		t.Errorf("unexpected last combo %v", rentalCombos[RENTAL_CHOICES-1])
	}
}

func TestInvalidRentalChoice(t *testing.T) {
	c := NewChallenge(10, Options{})

	for _, action := range []int{-1, RENTAL_CHOICES} {
		if _, err := c.Step(context.Background(), action); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("rental choice %d: expected ErrInvalidChoice, got %v", action, err)
		}
	}

	if c.Phase() != PHASE_RENTAL {
		t.Fatalf("a rejected choice should not change the phase")
	}
}

func TestRentStartsFirstBattle(t *testing.T) {
	const seed = 44
	c := NewChallenge(seed, Options{Challenge: 2})
	pool := c.RentalPool()

	result, err := c.Step(context.Background(), RENTAL_CHOICES-1)
	if err != nil {
		t.Fatalf("renting: %s", err)
	}
	if result.Phase != PHASE_BATTLE || c.Phase() != PHASE_BATTLE {
		t.Fatalf("expected battle phase, got %s", c.Phase())
	}
	if !slices.Equal(c.PlayerTeam(), pool[3:]) {
		t.Fatalf("expected player team %v, got %v", pool[3:], c.PlayerTeam())
	}

	opponent := c.OpponentTeam()
	if len(opponent) != TEAM_SIZE {
		t.Fatalf("expected %d opponent sets, got %d", TEAM_SIZE, len(opponent))
	}
	if len(lo.Intersect(speciesOf(opponent), speciesOf(c.PlayerTeam()))) != 0 {
		t.Fatalf("opponent shares species with the player")
	}

	state := c.State()
	if state.Rng != golurk.NewRng(seed+1) {
		t.Errorf("first battle should be seeded with seed+1")
	}
	if state.TeamSizes != [2]int{TEAM_SIZE, TEAM_SIZE} {
		t.Errorf("expected 3v3, got %v", state.TeamSizes)
	}
	if lvl := state.ActivePokemon(golurk.PLAYER_SIDE).Level; lvl != LEVEL_50 {
		t.Errorf("expected level 50, got %d", lvl)
	}
	if iv := state.ActivePokemon(golurk.OPPONENT_SIDE).Ivs[0]; iv != ChallengeIv(2) {
		t.Errorf("expected challenge iv %d, got %d", ChallengeIv(2), iv)
	}
}

func TestWinMovesToSwap(t *testing.T) {
	c := NewChallenge(3, Options{})
	if _, err := c.Step(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	rigBattle(t, c)
	result, err := c.Step(context.Background(), 0)
	if err != nil {
		t.Fatalf("battle turn: %s", err)
	}

	if result.Reward != 1 || result.Done {
		t.Fatalf("expected a win that keeps the challenge going, got %+v", result)
	}
	if c.Phase() != PHASE_SWAP || c.Wins() != 1 {
		t.Fatalf("expected swap phase after 1 win, got %s with %d wins", c.Phase(), c.Wins())
	}
	if len(c.LegalActions()) != SWAP_CHOICES {
		t.Fatalf("expected %d swap choices, got %v", SWAP_CHOICES, c.LegalActions())
	}
}

func TestSwapTradesAndStartsNextBattle(t *testing.T) {
	const seed = 9
	c := NewChallenge(seed, Options{})
	if _, err := c.Step(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	rigBattle(t, c)
	if _, err := c.Step(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	player := c.PlayerTeam()
	opponent := c.OpponentTeam()

	if _, err := c.Step(context.Background(), SWAP_CHOICES); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}

	// 4 trades player slot 1 for opponent slot 0
	if _, err := c.Step(context.Background(), 4); err != nil {
		t.Fatalf("swapping: %s", err)
	}

	expected := slices.Clone(player)
	expected[1] = opponent[0]
	if !slices.Equal(c.PlayerTeam(), expected) {
		t.Fatalf("expected team %v, got %v", expected, c.PlayerTeam())
	}
	if c.Phase() != PHASE_BATTLE || c.Battle() != 1 {
		t.Fatalf("expected battle 1, got %s %d", c.Phase(), c.Battle())
	}
	if state := c.State(); state.Rng != golurk.NewRng(seed+2) {
		t.Fatalf("second battle should be seeded with seed+2")
	}
}

func TestSeventhWinFinishes(t *testing.T) {
	c := NewChallenge(3, Options{})
	if _, err := c.Step(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	c.wins = BATTLES_PER_CHALLENGE - 1
	rigBattle(t, c)

	result, err := c.Step(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Done || c.Phase() != PHASE_DONE || c.Wins() != BATTLES_PER_CHALLENGE {
		t.Fatalf("expected the challenge to finish, got %s with %d wins", c.Phase(), c.Wins())
	}

	if _, err := c.Step(context.Background(), 0); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase after the challenge ended, got %v", err)
	}
	if c.LegalActions() != nil {
		t.Fatalf("a finished challenge has no actions")
	}
}

func TestTurnLimitEndsChallenge(t *testing.T) {
	c := NewChallenge(3, Options{MaxTurns: 1})
	if _, err := c.Step(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	// two walls that cannot hurt each other
	c.engine.Reset(1)
	_ = c.engine.SetTeam(golurk.PLAYER_SIDE, []golurk.Pokemon{buildMon(t, "snorlax", 50, "growl")})
	_ = c.engine.SetTeam(golurk.OPPONENT_SIDE, []golurk.Pokemon{buildMon(t, "blissey", 50, "growl")})

	result, err := c.Step(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Truncated || !result.Done || c.Phase() != PHASE_DONE {
		t.Fatalf("expected a truncated finish, got %+v", result)
	}
}

func TestIllegalBattleActionKeepsPhase(t *testing.T) {
	c := NewChallenge(3, Options{})
	if _, err := c.Step(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	before := c.State()

	if _, err := c.Step(context.Background(), golurk.ACTION_COUNT); !errors.Is(err, golurk.ErrIllegalAction) {
		t.Fatalf("expected ErrIllegalAction, got %v", err)
	}
	if c.Phase() != PHASE_BATTLE || c.State().Turn != before.Turn || c.State().Rng != before.Rng {
		t.Fatalf("an illegal action should leave the battle untouched")
	}
}

func TestChallengeRunsToCompletion(t *testing.T) {
	for seed := range uint32(5) {
		c := NewChallenge(seed, Options{MaxTurns: 300})

		for steps := 0; !c.Done(); steps++ {
			if steps > 10000 {
				t.Fatalf("seed %d: challenge did not finish", seed)
			}

			if _, err := c.Step(context.Background(), c.LegalActions()[0]); err != nil {
				t.Fatalf("seed %d: %s", seed, err)
			}
		}

		if c.Wins() > BATTLES_PER_CHALLENGE {
			t.Fatalf("seed %d: %d wins", seed, c.Wins())
		}
	}
}

func TestBattleSetupErrorIsReturned(t *testing.T) {
	challenge := NewChallenge(42, Options{})
	broken := errors.New("team rejected")
	challenge.setupErr = broken

	if _, err := challenge.Step(context.Background(), 0); !errors.Is(err, broken) {
		t.Fatalf("a failed battle setup should surface from Step, got %v", err)
	}
	if challenge.setupErr != nil {
		t.Fatalf("the setup error should only be reported once")
	}
}
