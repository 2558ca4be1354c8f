package golurk

import (
	"testing"

	"github.com/nathanieltooley/pokefactory/golurk/data"
)

const iterCount = 200

func TestDamageNotVeryEffective(t *testing.T) {
	attacker := getDummyPokemon(t, "charmander", 50, "fire_punch")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")
	firePunch := getMove(t, "fire_punch")

	for seed := range uint32(iterCount) {
		state := getSimpleState(attacker, defender, seed)
		damage := Damage(&state, PLAYER_SIDE, firePunch)

		if damage <= 0 || damage >= 50 {
			t.Fatalf("seed %d: expected damage in (0, 50), got %d", seed, damage)
		}
	}
}

func TestDamageSuperEffective(t *testing.T) {
	attacker := getDummyPokemon(t, "charizard", 50, "thunder_punch")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")
	thunderPunch := getMove(t, "thunder_punch")

	for seed := range uint32(iterCount) {
		state := getSimpleState(attacker, defender, seed)
		damage := Damage(&state, PLAYER_SIDE, thunderPunch)

		if damage <= 50 {
			t.Fatalf("seed %d: expected damage above 50, got %d", seed, damage)
		}
	}
}

func TestDamageLow(t *testing.T) {
	attacker := getDummyPokemon(t, "charmander", 50, "fire_punch")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")

	// seed 7 rolls no crit and the minimum random factor
	state := getSimpleState(attacker, defender, 7)
	damage := Damage(&state, PLAYER_SIDE, getMove(t, "fire_punch"))

	if damage != 18 {
		t.Fatalf("low damage incorrect: expected 18, got %d", damage)
	}
}

func TestDamageHigh(t *testing.T) {
	attacker := getDummyPokemon(t, "charmander", 50, "fire_punch")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")

	// seed 19 rolls no crit and the maximum random factor
	state := getSimpleState(attacker, defender, 19)
	damage := Damage(&state, PLAYER_SIDE, getMove(t, "fire_punch"))

	if damage != 21 {
		t.Fatalf("high damage incorrect: expected 21, got %d", damage)
	}
}

func TestDamageIsReproducible(t *testing.T) {
	attacker := getDummyPokemon(t, "charizard", 50, "fire_punch")
	defender := getDummyPokemon(t, "chikorita", 50, "tackle")
	firePunch := getMove(t, "fire_punch")

	stateA := getSimpleState(attacker, defender, 4242)
	stateB := getSimpleState(attacker, defender, 4242)

	for range 50 {
		if a, b := Damage(&stateA, PLAYER_SIDE, firePunch), Damage(&stateB, PLAYER_SIDE, firePunch); a != b {
			t.Fatalf("same rng produced different damage: %d vs %d", a, b)
		}
	}
}

func TestStatusMoveDealsNoDamage(t *testing.T) {
	attacker := getDummyPokemon(t, "charmander", 50, "growl")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")
	state := getSimpleState(attacker, defender, 1)

	if damage := Damage(&state, PLAYER_SIDE, getMove(t, "growl")); damage != 0 {
		t.Fatalf("growl should deal 0, got %d", damage)
	}
	if state.Rng.State != 1 {
		t.Fatalf("status move should not draw from the rng")
	}
}

func TestEstimateDamageDoesNotDraw(t *testing.T) {
	attacker := getDummyPokemon(t, "charmander", 50, "fire_punch")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")
	state := getSimpleState(attacker, defender, 5)

	if damage := EstimateDamage(&state, PLAYER_SIDE, getMove(t, "fire_punch")); damage != 21 {
		t.Fatalf("estimate incorrect: expected 21, got %d", damage)
	}
	if state.Rng.State != 5 {
		t.Fatalf("estimate should not draw from the rng")
	}
}

func TestTypeOverride(t *testing.T) {
	attacker := getDummyPokemon(t, "charizard", 50, "thunder_punch")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")
	state := getSimpleState(attacker, defender, 3)

	state.Active[OPPONENT_SIDE].TypesOverridden = true
	state.Active[OPPONENT_SIDE].Types = [2]data.Type{data.TYPE_GROUND, data.TYPE_GROUND}

	if damage := Damage(&state, PLAYER_SIDE, getMove(t, "thunder_punch")); damage != 0 {
		t.Fatalf("electric into an overridden ground type should deal 0, got %d", damage)
	}
}

func TestStatStages(t *testing.T) {
	cases := []struct {
		stage    int
		expected int
	}{
		{-6, 25}, {-1, 66}, {0, 100}, {1, 150}, {6, 400}, {9, 400},
	}

	for _, c := range cases {
		if got := ApplyStatStage(100, c.stage); got != c.expected {
			t.Errorf("stage %d: expected %d, got %d", c.stage, c.expected, got)
		}
	}

	if num, den := AccuracyRatio(6, -6); num != 3 || den != 1 {
		t.Errorf("accuracy ratio should clamp to 3/1, got %d/%d", num, den)
	}
	if num, den := AccuracyRatio(0, 0); num != 1 || den != 1 {
		t.Errorf("neutral accuracy ratio should be 1/1, got %d/%d", num, den)
	}
}

func TestNeverMissMoveDoesNotDraw(t *testing.T) {
	attacker := getDummyPokemon(t, "charmander", 50, "splash")
	defender := getDummyPokemon(t, "squirtle", 50, "tackle")
	state := getSimpleState(attacker, defender, 77)
	state.Active[OPPONENT_SIDE].StatStages[BATTLE_STAT_EVASION] = MAX_STAT_STAGE

	if !moveHits(&state, PLAYER_SIDE, getMove(t, "splash")) {
		t.Fatalf("0 accuracy moves never miss")
	}
	if state.Rng.State != 77 {
		t.Fatalf("0 accuracy moves should not draw")
	}
}
