package ai

import (
	"testing"

	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
)

func TestDefaultScriptLoads(t *testing.T) {
	script, err := DefaultScript()
	if err != nil {
		t.Fatalf("bundled scripts failed to load: %s", err)
	}

	for logic := range LOGIC_COUNT {
		if script.Entry(logic) == NO_ENTRY {
			t.Errorf("bundled scripts have no entry for %s", LogicName(logic))
		}
	}
}

func TestTieBreakDrawsOnce(t *testing.T) {
	selector := NewSelector(mustScript(t, `
	.logic LOGIC_CHECK_BAD_MOVE, Start
Start:
	end
`))
	state := getState(getPokemon(t, "squirtle", "tackle"), getPokemon(t, "charmander", "scratch", "pound"), 99)

	expected := golurk.NewRng(99)
	slot := expected.Range(2)

	action := selector.ChooseAction(state, golurk.OPPONENT_SIDE)
	attack, ok := action.(golurk.AttackAction)
	if !ok {
		t.Fatalf("expected an attack, got %T", action)
	}
	if attack.MoveIndex != slot {
		t.Fatalf("tie should pick slot %d, got %d", slot, attack.MoveIndex)
	}
	if state.Rng != expected {
		t.Fatalf("a two way tie should draw exactly once")
	}
}

func TestSingleBestDoesNotDraw(t *testing.T) {
	selector := NewSelector(mustScript(t, `
	.logic LOGIC_CHECK_BAD_MOVE, Start
Start:
	if_move MOVE_GROWL, Score_Minus10
	end
Score_Minus10:
	score -10
	end
`))
	state := getState(getPokemon(t, "squirtle", "tackle"), getPokemon(t, "charmander", "growl", "scratch"), 5)

	action := selector.ChooseAction(state, golurk.OPPONENT_SIDE)
	if attack, ok := action.(golurk.AttackAction); !ok || attack.MoveIndex != 1 {
		t.Fatalf("expected scratch in slot 1, got %#v", action)
	}
	if state.Rng.State != 5 {
		t.Fatalf("a clear winner should not touch the rng")
	}
}

func TestNoPositiveScoreStruggles(t *testing.T) {
	selector := NewSelector(mustScript(t, `
	.logic LOGIC_CHECK_BAD_MOVE, Start
Start:
	score -100
	end
`))
	state := getState(getPokemon(t, "squirtle", "tackle"), getPokemon(t, "charmander", "growl", "scratch"), 5)

	if _, ok := selector.ChooseAction(state, golurk.OPPONENT_SIDE).(golurk.StruggleAction); !ok {
		t.Fatalf("all moves zeroed should fall back to struggle")
	}
}

func TestEngineHonorsStruggleFallback(t *testing.T) {
	engine := golurk.NewEngine(NewSelector(mustScript(t, `
	.logic LOGIC_CHECK_BAD_MOVE, Start
Start:
	score -100
	end
`)))
	engine.Reset(5)
	_ = engine.SetTeam(golurk.PLAYER_SIDE, []golurk.Pokemon{getPokemon(t, "blissey", "growl")})
	_ = engine.SetTeam(golurk.OPPONENT_SIDE, []golurk.Pokemon{getPokemon(t, "charmander", "growl", "scratch")})

	result, err := engine.Step(golurk.NewAttackAction(golurk.PLAYER_SIDE, 0))
	if err != nil {
		t.Fatal(err)
	}

	for _, event := range result.Events {
		if event.Kind == golurk.EVENT_MOVE && event.Side == golurk.OPPONENT_SIDE && event.Move != data.MOVE_STRUGGLE {
			t.Fatalf("opponent should struggle when every move scores zero, used move %d", event.Move)
		}
	}

	state := engine.State()
	if state.Active[golurk.OPPONENT_SIDE].LastMove != data.MOVE_STRUGGLE {
		t.Fatalf("opponent's last move should be struggle, got %d", state.Active[golurk.OPPONENT_SIDE].LastMove)
	}
	if pp := state.ActivePokemon(golurk.OPPONENT_SIDE).PP; pp[0] == 0 || pp[1] == 0 {
		t.Fatalf("struggling should not spend pp, got %v", pp)
	}
}

func TestNoUsableMoveStruggles(t *testing.T) {
	selector := NewDefaultSelector()
	state := getState(getPokemon(t, "squirtle", "tackle"), getPokemon(t, "charmander", "scratch"), 5)
	state.ActivePokemon(golurk.OPPONENT_SIDE).PP[0] = 0

	if _, ok := selector.ChooseAction(state, golurk.OPPONENT_SIDE).(golurk.StruggleAction); !ok {
		t.Fatalf("no pp left should struggle")
	}
	if state.Rng.State != 5 {
		t.Fatalf("struggling without scripts should not touch the rng")
	}
}

func TestPassesSkipZeroedSlots(t *testing.T) {
	// check_bad_move zeroes growl, so the later pass must never see it
	selector := NewSelector(mustScript(t, `
	.logic LOGIC_CHECK_BAD_MOVE, Bad
	.logic LOGIC_CHECK_VIABILITY, Viability
Bad:
	if_move MOVE_GROWL, Zero
	end
Zero:
	score -100
	end
Viability:
	if_move MOVE_GROWL, Boost
	end
Boost:
	score 100
	end
`))
	state := getState(getPokemon(t, "squirtle", "tackle"), getPokemon(t, "charmander", "growl", "scratch"), 5)

	decision := selector.Evaluate(state, golurk.OPPONENT_SIDE)
	if decision.Scores[0] != 0 || decision.Scores[1] != DEFAULT_SCORE {
		t.Fatalf("unexpected scores %v", decision.Scores)
	}
}

func TestDefaultSelectorIsDeterministic(t *testing.T) {
	selector := NewDefaultSelector()

	for seed := range uint32(50) {
		a := getState(getPokemon(t, "squirtle", "tackle", "bubble", "withdraw"), getPokemon(t, "charizard", "flamethrower", "thunder_punch", "growl", "swords_dance"), seed)
		b := *a

		first := selector.ChooseAction(a, golurk.OPPONENT_SIDE)
		second := selector.ChooseAction(&b, golurk.OPPONENT_SIDE)

		if golurk.ActionIndex(first) != golurk.ActionIndex(second) || a.Rng != b.Rng {
			t.Fatalf("seed %d: same state chose %d and %d", seed, golurk.ActionIndex(first), golurk.ActionIndex(second))
		}
		if !golurk.IsLegal(a, golurk.OPPONENT_SIDE, first) {
			t.Fatalf("seed %d: chose an illegal action %d", seed, golurk.ActionIndex(first))
		}
	}
}

func TestDefaultSelectorAvoidsImmuneMoves(t *testing.T) {
	selector := NewDefaultSelector()

	// thunder_punch cannot touch golem, so check_bad_move buries it
	for seed := range uint32(50) {
		state := getState(getPokemon(t, "golem", "tackle"), getPokemon(t, "charizard", "thunder_punch", "fire_punch"), seed)

		action := selector.ChooseAction(state, golurk.OPPONENT_SIDE)
		if attack, ok := action.(golurk.AttackAction); !ok || attack.MoveIndex != 1 {
			t.Fatalf("seed %d: expected fire punch, got %#v", seed, action)
		}
	}
}

func TestAiEnginePlaysToCompletion(t *testing.T) {
	engine := NewEngine()
	engine.Reset(2024)

	if err := engine.SetTeam(golurk.PLAYER_SIDE, []golurk.Pokemon{getPokemon(t, "charmander", "ember")}); err != nil {
		t.Fatalf("set team: %s", err)
	}
	if err := engine.SetTeam(golurk.OPPONENT_SIDE, []golurk.Pokemon{getPokemon(t, "chikorita", "tackle", "growl")}); err != nil {
		t.Fatalf("set team: %s", err)
	}

	for turn := range 50 {
		result, err := engine.Step(engine.LegalActions(golurk.PLAYER_SIDE)[0])
		if err != nil {
			t.Fatalf("turn %d: %s", turn, err)
		}
		if result.Done {
			return
		}
	}

	t.Fatalf("battle did not finish in 50 turns")
}
