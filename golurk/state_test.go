package golurk

import (
	"math/rand/v2"
	"testing"

	"github.com/nathanieltooley/pokefactory/golurk/data"
)

func TestRandomTeam(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	team := RandomTeam(rng, 10, 20, 30)
	if len(team) != MAX_PARTY_SIZE {
		t.Fatalf("team size should be capped at %d, got %d", MAX_PARTY_SIZE, len(team))
	}

	for i, poke := range team {
		if poke.Level < 20 || poke.Level > 30 {
			t.Errorf("member %d: level %d outside 20-30", i, poke.Level)
		}
		if poke.EvTotal() > MAX_TOTAL_EV {
			t.Errorf("member %d: %d evs", i, poke.EvTotal())
		}
		if poke.CurrentHP != poke.MaxHP || poke.MaxHP == 0 {
			t.Errorf("member %d: expected full hp, got %d/%d", i, poke.CurrentHP, poke.MaxHP)
		}
		if !poke.HasUsableMove() {
			t.Errorf("member %d has no usable move", i)
		}

		for _, id := range poke.Moves {
			if id == data.MOVE_NONE {
				continue
			}
			if move := data.GlobalData.GetMove(id); move.Power <= 1 || move.ID == data.MOVE_STRUGGLE {
				t.Errorf("member %d got non damaging move %s", i, move.Name)
			}
		}
	}
}

func TestRandomTeamIsSeeded(t *testing.T) {
	a := RandomTeam(rand.New(rand.NewPCG(1, 1)), 3, 50, 50)
	b := RandomTeam(rand.New(rand.NewPCG(1, 1)), 3, 50, 50)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("member %d differs between equal seeds", i)
		}
	}
}

func TestDefaultTeamPlays(t *testing.T) {
	engine := NewEngine(nil)
	if err := engine.SetTeam(PLAYER_SIDE, DefaultTeam(50)); err != nil {
		t.Fatal(err)
	}
	if err := engine.SetTeam(OPPONENT_SIDE, DefaultTeam(50)); err != nil {
		t.Fatal(err)
	}

	// switching to the benched squirtle is legal from the first turn
	if _, err := engine.StepIndex(ACTION_SWITCH_FIRST + 1); err != nil {
		t.Fatalf("switching: %s", err)
	}
	if engine.State().Active[PLAYER_SIDE].PartyIndex != 1 {
		t.Fatalf("expected squirtle to be out")
	}
}

type fixedPolicy struct {
	index int
}

func (p fixedPolicy) ChooseAction(state *BattleState, side int) Action {
	action, _ := ActionFromIndex(side, p.index)
	return action
}

func TestSetPolicy(t *testing.T) {
	engine := NewEngine(nil)
	_ = engine.SetTeam(PLAYER_SIDE, DefaultTeam(50))
	_ = engine.SetTeam(OPPONENT_SIDE, DefaultTeam(50))

	engine.SetPolicy(fixedPolicy{index: ACTION_SWITCH_FIRST + 1})
	if _, err := engine.StepIndex(0); err != nil {
		t.Fatal(err)
	}
	if engine.State().Active[OPPONENT_SIDE].PartyIndex != 1 {
		t.Fatalf("the opponent should have followed the new policy")
	}

	// an illegal policy choice falls back to the first legal action
	engine.SetPolicy(fixedPolicy{index: 3})
	if _, err := engine.StepIndex(0); err != nil {
		t.Fatalf("an illegal policy choice should not fail the step: %s", err)
	}
}

func TestHpPercent(t *testing.T) {
	cases := []struct {
		current, max, expected int
	}{
		{200, 200, 100},
		{199, 200, 99},
		{1, 200, 0},
		{0, 200, 0},
		{5, 0, 0},
	}

	for _, c := range cases {
		poke := Pokemon{CurrentHP: c.current, MaxHP: c.max}
		if got := poke.HpPercent(); got != c.expected {
			t.Errorf("%d/%d: expected %d%%, got %d%%", c.current, c.max, c.expected, got)
		}
	}
}
