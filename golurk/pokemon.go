package golurk

import (
	"fmt"

	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

// Pokemon is one party slot. Stats and MaxHP are only ever written by ReCalcStats.
type Pokemon struct {
	Species  uint16
	Nickname string
	HeldItem uint16
	Ability  data.Ability
	Level    int
	Nature   data.Nature

	Moves [MAX_MOVES]uint16
	PP    [MAX_MOVES]int

	Ivs [data.STAT_COUNT]int
	Evs [data.STAT_COUNT]int

	CurrentHP int
	MaxHP     int
	Status    Status

	Stats [data.STAT_COUNT]int
}

// DeriveStats computes the six battle stats in STAT_ order.
// HP = (2*base + iv + ev/4) * level/100 + level + 10, the rest (2*base + iv + ev/4) * level/100 + 5 scaled by the nature.
func DeriveStats(species data.Species, level int, ivs, evs [data.STAT_COUNT]int, nature data.Nature) [data.STAT_COUNT]int {
	var stats [data.STAT_COUNT]int

	for i := range data.STAT_COUNT {
		raw := (2*species.BaseStats[i] + ivs[i] + evs[i]/4) * level / 100

		if i == data.STAT_HP {
			stats[i] = raw + level + 10
		} else {
			stats[i] = (raw + 5) * data.NatureModifier(nature, i) / 100
		}
	}

	return stats
}

// NewPokemon creates a full HP pokemon with max PP on every move
func NewPokemon(speciesID uint16, level int, moves [MAX_MOVES]uint16, ivs, evs [data.STAT_COUNT]int, nature data.Nature) Pokemon {
	species := data.GlobalData.GetSpecies(speciesID)

	p := Pokemon{
		Species:  species.ID,
		Nickname: data.DisplayName(species.Name),
		Ability:  DefaultAbility(species),
		Level:    lo.Clamp(level, MIN_LEVEL, MAX_LEVEL),
		Nature:   nature,
		Moves:    moves,
		Ivs:      ivs,
		Evs:      evs,
	}

	p.RestorePP()
	p.ReCalcStats()
	p.CurrentHP = p.MaxHP

	return p
}

// DefaultAbility is the first species ability, or the second when the first slot is empty
func DefaultAbility(species data.Species) data.Ability {
	if species.Abilities[0] == data.ABILITY_NONE {
		return species.Abilities[1]
	}

	return species.Abilities[0]
}

// ReCalcStats re-derives Stats and MaxHP. CurrentHP is clamped to the new maximum but is otherwise left alone.
func (p *Pokemon) ReCalcStats() {
	p.Stats = DeriveStats(p.Base(), p.Level, p.Ivs, p.Evs, p.Nature)
	p.MaxHP = p.Stats[data.STAT_HP]
	p.CurrentHP = lo.Clamp(p.CurrentHP, 0, p.MaxHP)
}

// RestorePP sets every move slot to its base PP
func (p *Pokemon) RestorePP() {
	for i, id := range p.Moves {
		if id == data.MOVE_NONE {
			p.PP[i] = 0
			continue
		}

		p.PP[i] = data.GlobalData.GetMove(id).PP
	}
}

func (p Pokemon) Base() data.Species {
	return data.GlobalData.GetSpecies(p.Species)
}

func (p Pokemon) Item() data.Item {
	return data.GlobalData.GetItem(p.HeldItem)
}

func (p Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	return data.DisplayName(p.Base().Name)
}

func (p Pokemon) Alive() bool {
	return p.CurrentHP > 0
}

// IsNil is true for empty party slots
func (p Pokemon) IsNil() bool {
	return p.Species == 0
}

func (p *Pokemon) Damage(dmg int) {
	p.CurrentHP = max(0, p.CurrentHP-dmg)
}

func (p *Pokemon) Heal(heal int) {
	p.CurrentHP = min(p.MaxHP, p.CurrentHP+heal)
}

// HpPercent is the integer percentage of HP left, truncated. A battler below 1% reads as 0 while still alive.
func (p Pokemon) HpPercent() int {
	if p.MaxHP <= 0 || p.CurrentHP <= 0 {
		return 0
	}

	return p.CurrentHP * 100 / p.MaxHP
}

// Gender has no personality value to roll against, so mixed species are reported as male
func (p Pokemon) Gender() int {
	switch p.Base().GenderRatio {
	case data.GENDER_RATIO_FEMALE:
		return GENDER_FEMALE
	case data.GENDER_RATIO_GENDERLESS:
		return GENDER_GENDERLESS
	default:
		return GENDER_MALE
	}
}

// HasUsableMove reports whether any slot holds a move with PP left
func (p Pokemon) HasUsableMove() bool {
	return lo.ContainsBy(lo.Range(MAX_MOVES), func(i int) bool {
		return p.MoveUsable(i)
	})
}

func (p Pokemon) MoveUsable(slot int) bool {
	if slot < 0 || slot >= MAX_MOVES {
		return false
	}

	return p.Moves[slot] != data.MOVE_NONE && p.PP[slot] > 0
}

func (p Pokemon) EvTotal() int {
	return lo.Sum(p.Evs[:])
}

// ValidateEvs checks the 255 per stat and 510 total limits
func ValidateEvs(evs [data.STAT_COUNT]int) error {
	total := 0
	for i, ev := range evs {
		if ev < 0 || ev > MAX_EV {
			return fmt.Errorf("ev %d for stat %d is out of range [0, %d]", ev, i, MAX_EV)
		}
		total += ev
	}

	if total > MAX_TOTAL_EV {
		return fmt.Errorf("ev total %d exceeds %d", total, MAX_TOTAL_EV)
	}

	return nil
}

func ValidateIvs(ivs [data.STAT_COUNT]int) error {
	for i, iv := range ivs {
		if iv < 0 || iv > MAX_IV {
			return fmt.Errorf("iv %d for stat %d is out of range [0, %d]", iv, i, MAX_IV)
		}
	}

	return nil
}

func (p Pokemon) String() string {
	return fmt.Sprintf("%s Lv%d (%d/%d) %s", p.Name(), p.Level, p.CurrentHP, p.MaxHP, p.Status)
}
