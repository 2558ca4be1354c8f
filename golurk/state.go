package golurk

import (
	"math/rand/v2"

	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

// DefaultTeam is a small fixed team, handy for smoke tests and demos
func DefaultTeam(level int) []Pokemon {
	charmander, _ := data.GlobalData.SpeciesByName("charmander")
	squirtle, _ := data.GlobalData.SpeciesByName("squirtle")
	ember, _ := data.GlobalData.MoveByName("ember")
	tackle, _ := data.GlobalData.MoveByName("tackle")
	bubble, _ := data.GlobalData.MoveByName("bubble")

	return []Pokemon{
		NewPokeBuilder(charmander, nil).SetLevel(level).SetPerfectIvs().SetMoves(ember.ID, tackle.ID).Build(),
		NewPokeBuilder(squirtle, nil).SetLevel(level).SetPerfectIvs().SetMoves(bubble.ID, tackle.ID).Build(),
	}
}

// RandomTeam builds size random pokemon with random spreads and damaging moves
func RandomTeam(rng *rand.Rand, size int, minLevel int, maxLevel int) []Pokemon {
	allSpecies := data.GlobalData.AllSpecies()
	movePool := lo.Filter(lo.Range(data.GlobalData.MoveCount()), func(id int, _ int) bool {
		move := data.GlobalData.GetMove(uint16(id))
		return !move.IsNil() && move.ID != data.MOVE_STRUGGLE && move.Power > 1
	})
	moveIDs := lo.Map(movePool, func(id int, _ int) uint16 {
		return uint16(id)
	})

	size = lo.Clamp(size, 1, MAX_PARTY_SIZE)
	team := make([]Pokemon, size)

	for i := range size {
		species := allSpecies[rng.IntN(len(allSpecies))]
		team[i] = NewPokeBuilder(species, rng).
			SetRandomEvs().
			SetRandomIvs().
			SetRandomLevel(minLevel, maxLevel).
			SetRandomNature().
			SetRandomMoves(moveIDs).
			Build()
	}

	return team
}
