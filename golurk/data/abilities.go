package data

import "fmt"

type Ability uint8

const (
	ABILITY_NONE Ability = iota
	ABILITY_STENCH
	ABILITY_DRIZZLE
	ABILITY_SPEED_BOOST
	ABILITY_BATTLE_ARMOR
	ABILITY_STURDY
	ABILITY_DAMP
	ABILITY_LIMBER
	ABILITY_SAND_VEIL
	ABILITY_STATIC
	ABILITY_VOLT_ABSORB
	ABILITY_WATER_ABSORB
	ABILITY_OBLIVIOUS
	ABILITY_CLOUD_NINE
	ABILITY_COMPOUND_EYES
	ABILITY_INSOMNIA
	ABILITY_COLOR_CHANGE
	ABILITY_IMMUNITY
	ABILITY_FLASH_FIRE
	ABILITY_SHIELD_DUST
	ABILITY_OWN_TEMPO
	ABILITY_SUCTION_CUPS
	ABILITY_INTIMIDATE
	ABILITY_SHADOW_TAG
	ABILITY_ROUGH_SKIN
	ABILITY_WONDER_GUARD
	ABILITY_LEVITATE
	ABILITY_EFFECT_SPORE
	ABILITY_SYNCHRONIZE
	ABILITY_CLEAR_BODY
	ABILITY_NATURAL_CURE
	ABILITY_LIGHTNING_ROD
	ABILITY_SERENE_GRACE
	ABILITY_SWIFT_SWIM
	ABILITY_CHLOROPHYLL
	ABILITY_ILLUMINATE
	ABILITY_TRACE
	ABILITY_HUGE_POWER
	ABILITY_POISON_POINT
	ABILITY_INNER_FOCUS
	ABILITY_MAGMA_ARMOR
	ABILITY_WATER_VEIL
	ABILITY_MAGNET_PULL
	ABILITY_SOUNDPROOF
	ABILITY_RAIN_DISH
	ABILITY_SAND_STREAM
	ABILITY_PRESSURE
	ABILITY_THICK_FAT
	ABILITY_EARLY_BIRD
	ABILITY_FLAME_BODY
	ABILITY_RUN_AWAY
	ABILITY_KEEN_EYE
	ABILITY_HYPER_CUTTER
	ABILITY_PICKUP
	ABILITY_TRUANT
	ABILITY_HUSTLE
	ABILITY_CUTE_CHARM
	ABILITY_PLUS
	ABILITY_MINUS
	ABILITY_FORECAST
	ABILITY_STICKY_HOLD
	ABILITY_SHED_SKIN
	ABILITY_GUTS
	ABILITY_MARVEL_SCALE
	ABILITY_LIQUID_OOZE
	ABILITY_OVERGROW
	ABILITY_BLAZE
	ABILITY_TORRENT
	ABILITY_SWARM
	ABILITY_ROCK_HEAD
	ABILITY_DROUGHT
	ABILITY_ARENA_TRAP
	ABILITY_VITAL_SPIRIT
	ABILITY_WHITE_SMOKE
	ABILITY_PURE_POWER
	ABILITY_SHELL_ARMOR
	ABILITY_CACOPHONY
	ABILITY_AIR_LOCK
	ABILITY_COUNT
)

var abilityNames = [ABILITY_COUNT]string{
	"NONE", "STENCH", "DRIZZLE", "SPEED_BOOST", "BATTLE_ARMOR", "STURDY", "DAMP", "LIMBER", "SAND_VEIL",
	"STATIC", "VOLT_ABSORB", "WATER_ABSORB", "OBLIVIOUS", "CLOUD_NINE", "COMPOUND_EYES", "INSOMNIA",
	"COLOR_CHANGE", "IMMUNITY", "FLASH_FIRE", "SHIELD_DUST", "OWN_TEMPO", "SUCTION_CUPS", "INTIMIDATE",
	"SHADOW_TAG", "ROUGH_SKIN", "WONDER_GUARD", "LEVITATE", "EFFECT_SPORE", "SYNCHRONIZE", "CLEAR_BODY",
	"NATURAL_CURE", "LIGHTNING_ROD", "SERENE_GRACE", "SWIFT_SWIM", "CHLOROPHYLL", "ILLUMINATE", "TRACE",
	"HUGE_POWER", "POISON_POINT", "INNER_FOCUS", "MAGMA_ARMOR", "WATER_VEIL", "MAGNET_PULL", "SOUNDPROOF",
	"RAIN_DISH", "SAND_STREAM", "PRESSURE", "THICK_FAT", "EARLY_BIRD", "FLAME_BODY", "RUN_AWAY", "KEEN_EYE",
	"HYPER_CUTTER", "PICKUP", "TRUANT", "HUSTLE", "CUTE_CHARM", "PLUS", "MINUS", "FORECAST", "STICKY_HOLD",
	"SHED_SKIN", "GUTS", "MARVEL_SCALE", "LIQUID_OOZE", "OVERGROW", "BLAZE", "TORRENT", "SWARM", "ROCK_HEAD",
	"DROUGHT", "ARENA_TRAP", "VITAL_SPIRIT", "WHITE_SMOKE", "PURE_POWER", "SHELL_ARMOR", "CACOPHONY",
	"AIR_LOCK",
}

func (a Ability) String() string {
	if a >= ABILITY_COUNT {
		return fmt.Sprintf("Ability(%d)", uint8(a))
	}

	return abilityNames[a]
}

func ParseAbility(name string) (Ability, error) {
	for i, n := range abilityNames {
		if n == name {
			return Ability(i), nil
		}
	}

	return ABILITY_NONE, fmt.Errorf("unknown ability %q", name)
}

func AbilityNames() []string {
	return abilityNames[:]
}
