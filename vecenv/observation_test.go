package vecenv_test

import (
	"testing"

	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/nathanieltooley/pokefactory/vecenv"
)

func TestObservationLayout(t *testing.T) {
	engine := golurk.NewEngine(nil)
	_ = engine.SetTeam(golurk.PLAYER_SIDE, golurk.DefaultTeam(50))
	_ = engine.SetTeam(golurk.OPPONENT_SIDE, golurk.DefaultTeam(50)[1:])

	state := engine.State()
	player := state.ActivePokemon(golurk.PLAYER_SIDE)
	opponent := state.ActivePokemon(golurk.OPPONENT_SIDE)

	player.CurrentHP = player.MaxHP / 2
	player.Status = golurk.STATUS_TOXIC
	player.PP[0] = 20
	state.Active[golurk.PLAYER_SIDE].StatStages[golurk.BATTLE_STAT_ATTACK] = 6
	state.Active[golurk.OPPONENT_SIDE].StatStages[golurk.BATTLE_STAT_EVASION] = -3

	obs := vecenv.Observe(&state)

	checks := []struct {
		name     string
		index    int
		expected float32
	}{
		{"player hp", vecenv.OBS_HP, float32(player.MaxHP/2) / float32(player.MaxHP)},
		{"opponent hp", vecenv.OBS_HP + 1, 1},
		{"player species", vecenv.OBS_SPECIES, float32(player.Species) / data.MAX_SPECIES_ID},
		{"opponent species", vecenv.OBS_SPECIES + 1, float32(opponent.Species) / data.MAX_SPECIES_ID},
		{"player attack stage", vecenv.OBS_STAGES + golurk.BATTLE_STAT_ATTACK, 1},
		{"opponent evasion stage", vecenv.OBS_STAGES + golurk.BATTLE_STAT_COUNT + golurk.BATTLE_STAT_EVASION, -0.5},
		{"first move", vecenv.OBS_MOVES, float32(player.Moves[0]) / 355},
		{"empty move", vecenv.OBS_MOVES + 3, 0},
		{"first pp", vecenv.OBS_PP, 0.5},
		{"player status", vecenv.OBS_STATUS, 1},
		{"opponent status", vecenv.OBS_STATUS + 1, 0},
		{"player party", vecenv.OBS_PARTY_COUNT, 2.0 / 3},
		{"opponent party", vecenv.OBS_PARTY_COUNT + 1, 1.0 / 3},
	}

	for _, c := range checks {
		if obs[c.index] != c.expected {
			t.Errorf("%s (index %d): expected %f, got %f", c.name, c.index, c.expected, obs[c.index])
		}
	}
}

func TestObservationIsBounded(t *testing.T) {
	env := vecenv.New(batch, nil, 2)
	setupEnv(t, env)

	for i, obs := range env.Observe() {
		for j, v := range obs {
			if v < -1 || v > 1 {
				t.Errorf("env %d index %d: %f is outside [-1, 1]", i, j, v)
			}
		}
	}
}
