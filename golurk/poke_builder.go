package golurk

import (
	"math/rand/v2"

	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokemon-builder").Logger()
	return &logger
}

// PokemonBuilder assembles a Pokemon step by step. Stats are derived once, in Build.
type PokemonBuilder struct {
	poke Pokemon
	rng  *rand.Rand
}

// NewPokeBuilder starts from a level 1 Hardy pokemon with the species' default ability.
// rng is only used by the SetRandom* methods and may be nil if none are called.
func NewPokeBuilder(species data.Species, rng *rand.Rand) *PokemonBuilder {
	poke := Pokemon{
		Species:  species.ID,
		Nickname: data.DisplayName(species.Name),
		Ability:  DefaultAbility(species),
		Level:    MIN_LEVEL,
		Nature:   data.NATURE_HARDY,
	}

	return &PokemonBuilder{poke, rng}
}

// SetEvs ignores a spread that breaks the 255 per stat or 510 total limits
func (pb *PokemonBuilder) SetEvs(evs [data.STAT_COUNT]int) *PokemonBuilder {
	if err := ValidateEvs(evs); err != nil {
		builderLogger().Warn().Err(err).Msg("Ignoring invalid EVs")
		return pb
	}

	pb.poke.Evs = evs

	builderLogger().Debug().
		Int("HP", evs[data.STAT_HP]).
		Int("ATTACK", evs[data.STAT_ATTACK]).
		Int("DEF", evs[data.STAT_DEFENSE]).
		Int("SPEED", evs[data.STAT_SPEED]).
		Int("SPATTACK", evs[data.STAT_SPATTACK]).
		Int("SPDEF", evs[data.STAT_SPDEFENSE]).Msg("Setting EVs")

	return pb
}

func (pb *PokemonBuilder) SetIvs(ivs [data.STAT_COUNT]int) *PokemonBuilder {
	if err := ValidateIvs(ivs); err != nil {
		builderLogger().Warn().Err(err).Msg("Ignoring invalid IVs")
		return pb
	}

	pb.poke.Ivs = ivs

	builderLogger().Debug().
		Int("HP", ivs[data.STAT_HP]).
		Int("ATTACK", ivs[data.STAT_ATTACK]).
		Int("DEF", ivs[data.STAT_DEFENSE]).
		Int("SPEED", ivs[data.STAT_SPEED]).
		Int("SPATTACK", ivs[data.STAT_SPATTACK]).
		Int("SPDEF", ivs[data.STAT_SPDEFENSE]).Msg("Setting IVs")

	return pb
}

// SetUniformIvs gives every stat the same IV, the way factory sets are built
func (pb *PokemonBuilder) SetUniformIvs(iv int) *PokemonBuilder {
	var ivs [data.STAT_COUNT]int
	for i := range ivs {
		ivs[i] = iv
	}

	return pb.SetIvs(ivs)
}

func (pb *PokemonBuilder) SetPerfectIvs() *PokemonBuilder {
	builderLogger().Debug().Msg("Setting Perfect IVS")
	return pb.SetUniformIvs(MAX_IV)
}

func (pb *PokemonBuilder) SetRandomIvs() *PokemonBuilder {
	var ivs [data.STAT_COUNT]int

	for i := range ivs {
		ivs[i] = pb.rng.IntN(MAX_IV + 1)
	}

	builderLogger().Debug().Msg("Setting Random IVs")
	return pb.SetIvs(ivs)
}

// SetRandomEvs hands out all 510 EVs in random chunks, never exceeding 255 on a stat
func (pb *PokemonBuilder) SetRandomEvs() *PokemonBuilder {
	evPool := MAX_TOTAL_EV
	var evs [data.STAT_COUNT]int

	for evPool > 0 {
		randomIndex := pb.rng.IntN(data.STAT_COUNT)
		remainingEvSpace := MAX_EV - evs[randomIndex]

		if remainingEvSpace <= 0 {
			continue
		}

		randomEv := pb.rng.IntN(min(remainingEvSpace, evPool)) + 1
		evs[randomIndex] += randomEv
		evPool -= randomEv
	}

	builderLogger().Debug().Msg("Setting Random EVs")
	pb.SetEvs(evs)

	builderLogger().Debug().Msgf("EV Total: %d", pb.poke.EvTotal())
	return pb
}

func (pb *PokemonBuilder) SetLevel(level int) *PokemonBuilder {
	pb.poke.Level = lo.Clamp(level, MIN_LEVEL, MAX_LEVEL)
	return pb
}

// SetRandomLevel picks a level in [low, high]
func (pb *PokemonBuilder) SetRandomLevel(low int, high int) *PokemonBuilder {
	if high < low {
		low, high = high, low
	}

	return pb.SetLevel(pb.rng.IntN(high-low+1) + low)
}

func (pb *PokemonBuilder) SetNature(nature data.Nature) *PokemonBuilder {
	pb.poke.Nature = nature
	return pb
}

func (pb *PokemonBuilder) SetRandomNature() *PokemonBuilder {
	pb.poke.Nature = data.Nature(pb.rng.IntN(int(data.NATURE_COUNT)))
	return pb
}

// SetMoves fills the move slots in order with full PP. Extra moves are dropped.
func (pb *PokemonBuilder) SetMoves(moves ...uint16) *PokemonBuilder {
	var slots [MAX_MOVES]uint16
	copy(slots[:], moves)

	pb.poke.Moves = slots
	pb.poke.RestorePP()

	moveNames := lo.Map(slots[:], func(id uint16, _ int) string {
		return data.GlobalData.GetMove(id).Name
	})
	builderLogger().Debug().Strs("Moves", moveNames).Msg("Setting Moves")

	return pb
}

// SetRandomMoves picks four distinct moves from possibleMoves when it has enough of them
func (pb *PokemonBuilder) SetRandomMoves(possibleMoves []uint16) *PokemonBuilder {
	if len(possibleMoves) == 0 {
		builderLogger().Warn().Msg("This Pokemon was given no available moves to randomize with!")
		return pb
	}

	pool := lo.Uniq(possibleMoves)
	pb.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pb.SetMoves(pool[:min(len(pool), MAX_MOVES)]...)
}

func (pb *PokemonBuilder) SetAbility(ability data.Ability) *PokemonBuilder {
	pb.poke.Ability = ability
	return pb
}

func (pb *PokemonBuilder) SetItem(item uint16) *PokemonBuilder {
	pb.poke.HeldItem = item
	return pb
}

func (pb *PokemonBuilder) SetNickname(name string) *PokemonBuilder {
	pb.poke.Nickname = name
	return pb
}

func (pb *PokemonBuilder) SetStatus(status Status) *PokemonBuilder {
	pb.poke.Status = status
	return pb
}

// Build derives stats and sets current HP to max
func (pb *PokemonBuilder) Build() Pokemon {
	pb.poke.ReCalcStats()
	pb.poke.CurrentHP = pb.poke.MaxHP

	builderLogger().Debug().Str("Name", pb.poke.Name()).Int("Level", pb.poke.Level).Msg("Building pokemon")
	return pb.poke
}
