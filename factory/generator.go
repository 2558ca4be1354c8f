package factory

import (
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

const (
	RENTAL_POOL_SIZE = 6
	TEAM_SIZE        = 3
	MAX_CHALLENGE    = 7

	LEVEL_50   = 50
	OPEN_LEVEL = 100

	// generation gives up after this many draws, even if the pool is short
	maxDraws = 1000
)

// Catalog ranges by challenge number, inclusive. Later challenges reach further into the catalog.
var (
	level50Ranges = [MAX_CHALLENGE + 1][2]uint16{
		{0, 15},
		{8, 23},
		{8, 31},
		{16, 39},
		{24, 47},
		{32, 55},
		{32, 55},
		{40, 55},
	}

	openLevelRanges = [MAX_CHALLENGE + 1][2]uint16{
		{4, 23},
		{8, 31},
		{16, 39},
		{24, 47},
		{32, 55},
		{40, 55},
		{40, 55},
		{44, 55},
	}

	challengeIvs = [MAX_CHALLENGE + 1]int{3, 6, 9, 12, 15, 21, 31, 31}
)

// Generator draws rental and opponent sets. It has its own LCG, separate from the battle RNG.
type Generator struct {
	Seed uint32
}

func NewGenerator(seed uint32) *Generator {
	return &Generator{Seed: seed}
}

// Next advances the seed and returns a value in [0, 32768)
func (g *Generator) Next() uint32 {
	g.Seed = g.Seed*1103515245 + 12345
	return (g.Seed / 65536) % 32768
}

func challengeIndex(challenge int) int {
	return lo.Clamp(challenge, 0, MAX_CHALLENGE)
}

// ChallengeRange is the inclusive range of catalog ids a challenge draws from
func ChallengeRange(challenge int, openLevel bool) (uint16, uint16) {
	r := level50Ranges[challengeIndex(challenge)]
	if openLevel {
		r = openLevelRanges[challengeIndex(challenge)]
	}

	return r[0], r[1]
}

// ChallengeIv is the IV every stat of every set gets during a challenge
func ChallengeIv(challenge int) int {
	return challengeIvs[challengeIndex(challenge)]
}

func Level(openLevel bool) int {
	if openLevel {
		return OPEN_LEVEL
	}

	return LEVEL_50
}

func (g *Generator) draw(start, end uint16) uint16 {
	return start + uint16(g.Next()%uint32(end-start+1))
}

// pick draws up to count sets from the challenge range whose species are not in used
func (g *Generator) pick(count int, challenge int, openLevel bool, used map[uint16]bool) []uint16 {
	start, end := ChallengeRange(challenge, openLevel)
	picked := make([]uint16, 0, count)

	for draws := 0; len(picked) < count && draws < maxDraws; draws++ {
		id := g.draw(start, end)

		species := data.GlobalData.GetFrontierMon(id).Species
		if used[species] || lo.Contains(picked, id) {
			continue
		}

		picked = append(picked, id)
		used[species] = true
	}

	return picked
}

// RentalPool draws the six sets offered at the start of a challenge. No two share a species.
func (g *Generator) RentalPool(challenge int, openLevel bool) []uint16 {
	return g.pick(RENTAL_POOL_SIZE, challenge, openLevel, map[uint16]bool{})
}

// OpponentTeam draws three sets for a battle. Species held by any of the excluded sets are skipped.
// The battle number does not change the draw.
func (g *Generator) OpponentTeam(challenge int, battle int, openLevel bool, excludes []uint16) []uint16 {
	used := lo.SliceToMap(excludes, func(id uint16) (uint16, bool) {
		return data.GlobalData.GetFrontierMon(id).Species, true
	})

	return g.pick(TEAM_SIZE, challenge, openLevel, used)
}

// CreatePokemon builds a battle ready pokemon from a catalog set
func CreatePokemon(monID uint16, level int, iv int) golurk.Pokemon {
	set := data.GlobalData.GetFrontierMon(monID)
	species := data.GlobalData.GetSpecies(set.Species)

	return golurk.NewPokeBuilder(species, nil).
		SetLevel(level).
		SetNature(set.Nature).
		SetUniformIvs(iv).
		SetEvs(data.EVsFromSpread(set.EvSpread)).
		SetMoves(set.Moves[:]...).
		SetItem(set.Item).
		Build()
}

// CreateTeam builds every set in ids
func CreateTeam(ids []uint16, level int, iv int) []golurk.Pokemon {
	return lo.Map(ids, func(id uint16, _ int) golurk.Pokemon {
		return CreatePokemon(id, level, iv)
	})
}
