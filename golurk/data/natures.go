package data

import "fmt"

// Stat indices used by party stats, IVs and EVs
const (
	STAT_HP = iota
	STAT_ATTACK
	STAT_DEFENSE
	STAT_SPEED
	STAT_SPATTACK
	STAT_SPDEFENSE
	STAT_COUNT
)

type Nature uint8

const (
	NATURE_HARDY Nature = iota
	NATURE_LONELY
	NATURE_BRAVE
	NATURE_ADAMANT
	NATURE_NAUGHTY
	NATURE_BOLD
	NATURE_DOCILE
	NATURE_RELAXED
	NATURE_IMPISH
	NATURE_LAX
	NATURE_TIMID
	NATURE_HASTY
	NATURE_SERIOUS
	NATURE_JOLLY
	NATURE_NAIVE
	NATURE_MODEST
	NATURE_MILD
	NATURE_QUIET
	NATURE_BASHFUL
	NATURE_RASH
	NATURE_CALM
	NATURE_GENTLE
	NATURE_SASSY
	NATURE_CAREFUL
	NATURE_QUIRKY
	NATURE_COUNT
)

var natureNames = [NATURE_COUNT]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// Columns are Attack, Defense, Speed, SpAttack, SpDefense
var natureModifiers = [NATURE_COUNT][STAT_COUNT - 1]int{
	{100, 100, 100, 100, 100}, // Hardy
	{110, 90, 100, 100, 100},  // Lonely
	{110, 100, 90, 100, 100},  // Brave
	{110, 100, 100, 90, 100},  // Adamant
	{110, 100, 100, 100, 90},  // Naughty
	{90, 110, 100, 100, 100},  // Bold
	{100, 100, 100, 100, 100}, // Docile
	{100, 110, 90, 100, 100},  // Relaxed
	{100, 110, 100, 90, 100},  // Impish
	{100, 110, 100, 100, 90},  // Lax
	{90, 100, 110, 100, 100},  // Timid
	{100, 90, 110, 100, 100},  // Hasty
	{100, 100, 100, 100, 100}, // Serious
	{100, 100, 110, 90, 100},  // Jolly
	{100, 100, 110, 100, 90},  // Naive
	{90, 100, 100, 110, 100},  // Modest
	{100, 90, 100, 110, 100},  // Mild
	{100, 100, 90, 110, 100},  // Quiet
	{100, 100, 100, 100, 100}, // Bashful
	{100, 100, 100, 110, 90},  // Rash
	{90, 100, 100, 100, 110},  // Calm
	{100, 90, 100, 100, 110},  // Gentle
	{100, 100, 90, 100, 110},  // Sassy
	{100, 100, 100, 90, 110},  // Careful
	{100, 100, 100, 100, 100}, // Quirky
}

func (n Nature) String() string {
	if n >= NATURE_COUNT {
		return fmt.Sprintf("Nature(%d)", uint8(n))
	}

	return natureNames[n]
}

func ParseNature(name string) (Nature, error) {
	for i, n := range natureNames {
		if n == name {
			return Nature(i), nil
		}
	}

	return NATURE_HARDY, fmt.Errorf("unknown nature %q", name)
}

// NatureModifier returns 90, 100 or 110. HP is never affected.
func NatureModifier(nature Nature, stat int) int {
	if stat <= STAT_HP || stat >= STAT_COUNT || nature >= NATURE_COUNT {
		return 100
	}

	return natureModifiers[nature][stat-1]
}
