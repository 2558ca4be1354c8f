package vecenv

import (
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
)

const OBSERVATION_SIZE = 30

// Offsets into an Observation
const (
	OBS_HP          = 0  // player, opponent
	OBS_SPECIES     = 2  // player, opponent
	OBS_STAGES      = 4  // 7 player stages, then 7 opponent stages
	OBS_MOVES       = 18 // player move ids
	OBS_PP          = 22 // player pp
	OBS_STATUS      = 26 // player, opponent
	OBS_PARTY_COUNT = 28 // player, opponent
)

const (
	maxMoveID  = 355
	ppScale    = 40
	partyScale = 3
)

// Observation is a flat view of a battle for learning agents, always from the player side
type Observation [OBSERVATION_SIZE]float32

func Observe(state *golurk.BattleState) Observation {
	var obs Observation

	for side := range 2 {
		poke := state.ActivePokemon(side)

		obs[OBS_HP+side] = float32(poke.CurrentHP) / float32(max(1, poke.MaxHP))
		obs[OBS_SPECIES+side] = float32(poke.Species) / data.MAX_SPECIES_ID
		obs[OBS_STATUS+side] = float32(poke.Status) / float32(golurk.STATUS_TOXIC)
		obs[OBS_PARTY_COUNT+side] = float32(state.CountRemaining(side)) / partyScale

		for stat, stage := range state.Active[side].StatStages {
			obs[OBS_STAGES+side*golurk.BATTLE_STAT_COUNT+stat] = float32(stage) / golurk.MAX_STAT_STAGE
		}
	}

	player := state.ActivePokemon(golurk.PLAYER_SIDE)
	for slot := range golurk.MAX_MOVES {
		obs[OBS_MOVES+slot] = float32(player.Moves[slot]) / maxMoveID
		obs[OBS_PP+slot] = float32(player.PP[slot]) / ppScale
	}

	return obs
}
