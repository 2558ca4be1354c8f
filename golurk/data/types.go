package data

import "fmt"

type Type uint8

const (
	TYPE_NORMAL Type = iota
	TYPE_FIGHTING
	TYPE_FLYING
	TYPE_POISON
	TYPE_GROUND
	TYPE_ROCK
	TYPE_BUG
	TYPE_GHOST
	TYPE_STEEL
	TYPE_MYSTERY
	TYPE_FIRE
	TYPE_WATER
	TYPE_GRASS
	TYPE_ELECTRIC
	TYPE_PSYCHIC
	TYPE_ICE
	TYPE_DRAGON
	TYPE_DARK
	TYPE_COUNT
)

var typeNames = [TYPE_COUNT]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"Mystery", "Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark",
}

func (t Type) String() string {
	if t >= TYPE_COUNT {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}

	return typeNames[t]
}

// ParseType maps a table name such as "Fire" to its Type
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}

	return TYPE_MYSTERY, fmt.Errorf("unknown type name %q", name)
}

// Effectiveness percentages
const (
	EFFECTIVENESS_IMMUNE    = 0
	EFFECTIVENESS_QUARTER   = 25
	EFFECTIVENESS_HALF      = 50
	EFFECTIVENESS_NORMAL    = 100
	EFFECTIVENESS_DOUBLE    = 200
	EFFECTIVENESS_QUADRUPLE = 400
)

// typeChart is indexed [attacking][defending] and holds percentages
var typeChart = [TYPE_COUNT][TYPE_COUNT]int{
	// Nor  Fig  Fly  Poi  Gro  Roc  Bug  Gho  Ste  ???  Fir  Wat  Gra  Ele  Psy  Ice  Dra  Dar
	{100, 100, 100, 100, 100, 50, 100, 0, 50, 100, 100, 100, 100, 100, 100, 100, 100, 100},    // Normal
	{200, 100, 50, 50, 100, 200, 50, 0, 200, 100, 100, 100, 100, 100, 50, 200, 100, 200},      // Fighting
	{100, 200, 100, 100, 100, 50, 200, 100, 50, 100, 100, 100, 200, 50, 100, 100, 100, 100},   // Flying
	{100, 100, 100, 50, 50, 50, 100, 50, 0, 100, 100, 100, 200, 100, 100, 100, 100, 100},      // Poison
	{100, 100, 0, 200, 100, 200, 50, 100, 200, 100, 200, 100, 50, 200, 100, 100, 100, 100},    // Ground
	{100, 50, 200, 100, 50, 100, 200, 100, 50, 100, 200, 100, 100, 100, 100, 200, 100, 100},   // Rock
	{100, 50, 50, 50, 100, 100, 100, 50, 50, 100, 50, 100, 200, 100, 200, 100, 100, 200},      // Bug
	{0, 100, 100, 100, 100, 100, 100, 200, 50, 100, 100, 100, 100, 100, 200, 100, 100, 50},    // Ghost
	{100, 100, 100, 100, 100, 200, 100, 100, 50, 100, 50, 50, 100, 50, 100, 200, 100, 100},    // Steel
	{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100}, // Mystery
	{100, 100, 100, 100, 100, 50, 200, 100, 200, 100, 50, 50, 200, 100, 100, 200, 50, 100},    // Fire
	{100, 100, 100, 100, 200, 200, 100, 100, 100, 100, 200, 50, 50, 100, 100, 100, 50, 100},   // Water
	{100, 100, 50, 50, 200, 200, 50, 100, 50, 100, 50, 200, 50, 100, 100, 100, 50, 100},       // Grass
	{100, 100, 200, 100, 0, 100, 100, 100, 100, 100, 100, 200, 50, 50, 100, 100, 50, 100},     // Electric
	{100, 200, 100, 200, 100, 100, 100, 100, 50, 100, 100, 100, 100, 100, 50, 100, 100, 0},    // Psychic
	{100, 100, 200, 100, 200, 100, 100, 100, 50, 100, 50, 50, 200, 100, 100, 50, 200, 100},    // Ice
	{100, 100, 100, 100, 100, 100, 100, 100, 50, 100, 100, 100, 100, 100, 100, 100, 200, 100}, // Dragon
	{100, 50, 100, 100, 100, 100, 100, 200, 50, 100, 100, 100, 100, 100, 200, 100, 100, 50},   // Dark
}

// TypeEffectiveness returns the single-type percentage for an attack.
// Types outside the chart are treated as neutral.
func TypeEffectiveness(attack Type, defend Type) int {
	if attack >= TYPE_COUNT || defend >= TYPE_COUNT {
		return EFFECTIVENESS_NORMAL
	}

	return typeChart[attack][defend]
}

// DualTypeEffectiveness combines both defending types. A mono-typed defender stores the same type twice
// and is only counted once.
func DualTypeEffectiveness(attack Type, defend1 Type, defend2 Type) int {
	eff1 := TypeEffectiveness(attack, defend1)
	if defend1 == defend2 {
		return eff1
	}

	eff2 := TypeEffectiveness(attack, defend2)
	return eff1 * eff2 / 100
}
