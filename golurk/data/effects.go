package data

import "fmt"

// MoveEffect identifies the scripted behavior of a move. Values are stable and are what compiled AI scripts compare
// against.
type MoveEffect uint16

const (
	EFFECT_ABSORB MoveEffect = iota
	EFFECT_ACCURACY_DOWN
	EFFECT_ACCURACY_DOWN_HIT
	EFFECT_ALL_STATS_UP_HIT
	EFFECT_ALWAYS_HIT
	EFFECT_ASSIST
	EFFECT_ATTACK_DOWN
	EFFECT_ATTACK_DOWN_2
	EFFECT_ATTACK_DOWN_HIT
	EFFECT_ATTACK_UP
	EFFECT_ATTACK_UP_2
	EFFECT_ATTACK_UP_HIT
	EFFECT_ATTRACT
	EFFECT_BATON_PASS
	EFFECT_BEAT_UP
	EFFECT_BELLY_DRUM
	EFFECT_BIDE
	EFFECT_BLAZE_KICK
	EFFECT_BRICK_BREAK
	EFFECT_BULK_UP
	EFFECT_BURN_HIT
	EFFECT_CALM_MIND
	EFFECT_CAMOUFLAGE
	EFFECT_CHARGE
	EFFECT_CONFUSE
	EFFECT_CONFUSE_HIT
	EFFECT_CONVERSION
	EFFECT_CONVERSION_2
	EFFECT_COSMIC_POWER
	EFFECT_COUNTER
	EFFECT_CURSE
	EFFECT_DEFENSE_CURL
	EFFECT_DEFENSE_DOWN
	EFFECT_DEFENSE_DOWN_2
	EFFECT_DEFENSE_DOWN_HIT
	EFFECT_DEFENSE_UP
	EFFECT_DEFENSE_UP_2
	EFFECT_DEFENSE_UP_HIT
	EFFECT_DESTINY_BOND
	EFFECT_DISABLE
	EFFECT_DOUBLE_EDGE
	EFFECT_DOUBLE_HIT
	EFFECT_DRAGON_DANCE
	EFFECT_DRAGON_RAGE
	EFFECT_DREAM_EATER
	EFFECT_EARTHQUAKE
	EFFECT_ENCORE
	EFFECT_ENDEAVOR
	EFFECT_ENDURE
	EFFECT_ERUPTION
	EFFECT_EVASION_DOWN
	EFFECT_EVASION_UP
	EFFECT_EXPLOSION
	EFFECT_FACADE
	EFFECT_FAKE_OUT
	EFFECT_FALSE_SWIPE
	EFFECT_FLAIL
	EFFECT_FLATTER
	EFFECT_FLINCH_HIT
	EFFECT_FLINCH_MINIMIZE_HIT
	EFFECT_FOCUS_ENERGY
	EFFECT_FOCUS_PUNCH
	EFFECT_FOLLOW_ME
	EFFECT_FORESIGHT
	EFFECT_FREEZE_HIT
	EFFECT_FRUSTRATION
	EFFECT_FURY_CUTTER
	EFFECT_FUTURE_SIGHT
	EFFECT_GRUDGE
	EFFECT_GUST
	EFFECT_HAIL
	EFFECT_HAZE
	EFFECT_HEAL_BELL
	EFFECT_HELPING_HAND
	EFFECT_HIDDEN_POWER
	EFFECT_HIGH_CRITICAL
	EFFECT_HIT
	EFFECT_IMPRISON
	EFFECT_INGRAIN
	EFFECT_KNOCK_OFF
	EFFECT_LEECH_SEED
	EFFECT_LEVEL_DAMAGE
	EFFECT_LIGHT_SCREEN
	EFFECT_LOCK_ON
	EFFECT_LOW_KICK
	EFFECT_MAGIC_COAT
	EFFECT_MAGNITUDE
	EFFECT_MEAN_LOOK
	EFFECT_MEMENTO
	EFFECT_METRONOME
	EFFECT_MIMIC
	EFFECT_MINIMIZE
	EFFECT_MIRROR_COAT
	EFFECT_MIRROR_MOVE
	EFFECT_MIST
	EFFECT_MOONLIGHT
	EFFECT_MORNING_SUN
	EFFECT_MUD_SPORT
	EFFECT_MULTI_HIT
	EFFECT_NATURE_POWER
	EFFECT_NIGHTMARE
	EFFECT_OHKO
	EFFECT_OVERHEAT
	EFFECT_PAIN_SPLIT
	EFFECT_PARALYZE
	EFFECT_PARALYZE_HIT
	EFFECT_PAY_DAY
	EFFECT_PERISH_SONG
	EFFECT_POISON
	EFFECT_POISON_FANG
	EFFECT_POISON_HIT
	EFFECT_POISON_TAIL
	EFFECT_PRESENT
	EFFECT_PROTECT
	EFFECT_PSYCH_UP
	EFFECT_PSYWAVE
	EFFECT_PURSUIT
	EFFECT_QUICK_ATTACK
	EFFECT_RAGE
	EFFECT_RAIN_DANCE
	EFFECT_RAMPAGE
	EFFECT_RAPID_SPIN
	EFFECT_RAZOR_WIND
	EFFECT_RECHARGE
	EFFECT_RECOIL
	EFFECT_RECOIL_IF_MISS
	EFFECT_RECYCLE
	EFFECT_REFLECT
	EFFECT_REFRESH
	EFFECT_REST
	EFFECT_RESTORE_HP
	EFFECT_RETURN
	EFFECT_REVENGE
	EFFECT_ROAR
	EFFECT_ROLE_PLAY
	EFFECT_ROLLOUT
	EFFECT_SAFEGUARD
	EFFECT_SANDSTORM
	EFFECT_SECRET_POWER
	EFFECT_SEMI_INVULNERABLE
	EFFECT_SKETCH
	EFFECT_SKILL_SWAP
	EFFECT_SKULL_BASH
	EFFECT_SKY_ATTACK
	EFFECT_SKY_UPPERCUT
	EFFECT_SLEEP
	EFFECT_SLEEP_TALK
	EFFECT_SMELLINGSALT
	EFFECT_SNATCH
	EFFECT_SNORE
	EFFECT_SOFTBOILED
	EFFECT_SOLAR_BEAM
	EFFECT_SONICBOOM
	EFFECT_SPECIAL_ATTACK_DOWN_HIT
	EFFECT_SPECIAL_ATTACK_UP
	EFFECT_SPECIAL_ATTACK_UP_2
	EFFECT_SPECIAL_DEFENSE_DOWN_2
	EFFECT_SPECIAL_DEFENSE_DOWN_HIT
	EFFECT_SPECIAL_DEFENSE_UP_2
	EFFECT_SPEED_DOWN
	EFFECT_SPEED_DOWN_2
	EFFECT_SPEED_DOWN_HIT
	EFFECT_SPEED_UP_2
	EFFECT_SPIKES
	EFFECT_SPITE
	EFFECT_SPIT_UP
	EFFECT_SPLASH
	EFFECT_STOCKPILE
	EFFECT_SUBSTITUTE
	EFFECT_SUNNY_DAY
	EFFECT_SUPERPOWER
	EFFECT_SUPER_FANG
	EFFECT_SWAGGER
	EFFECT_SWALLOW
	EFFECT_SYNTHESIS
	EFFECT_TAUNT
	EFFECT_TEETER_DANCE
	EFFECT_TELEPORT
	EFFECT_THAW_HIT
	EFFECT_THIEF
	EFFECT_THUNDER
	EFFECT_TICKLE
	EFFECT_TORMENT
	EFFECT_TOXIC
	EFFECT_TRANSFORM
	EFFECT_TRAP
	EFFECT_TRICK
	EFFECT_TRIPLE_KICK
	EFFECT_TRI_ATTACK
	EFFECT_TWINEEDLE
	EFFECT_TWISTER
	EFFECT_UPROAR
	EFFECT_VITAL_THROW
	EFFECT_WATER_SPORT
	EFFECT_WEATHER_BALL
	EFFECT_WILL_O_WISP
	EFFECT_WISH
	EFFECT_YAWN
	EFFECT_COUNT
)

var effectNames = [EFFECT_COUNT]string{
	"ABSORB", "ACCURACY_DOWN", "ACCURACY_DOWN_HIT", "ALL_STATS_UP_HIT", "ALWAYS_HIT", "ASSIST", "ATTACK_DOWN",
	"ATTACK_DOWN_2", "ATTACK_DOWN_HIT", "ATTACK_UP", "ATTACK_UP_2", "ATTACK_UP_HIT", "ATTRACT", "BATON_PASS",
	"BEAT_UP", "BELLY_DRUM", "BIDE", "BLAZE_KICK", "BRICK_BREAK", "BULK_UP", "BURN_HIT", "CALM_MIND",
	"CAMOUFLAGE", "CHARGE", "CONFUSE", "CONFUSE_HIT", "CONVERSION", "CONVERSION_2", "COSMIC_POWER", "COUNTER",
	"CURSE", "DEFENSE_CURL", "DEFENSE_DOWN", "DEFENSE_DOWN_2", "DEFENSE_DOWN_HIT", "DEFENSE_UP", "DEFENSE_UP_2",
	"DEFENSE_UP_HIT", "DESTINY_BOND", "DISABLE", "DOUBLE_EDGE", "DOUBLE_HIT", "DRAGON_DANCE", "DRAGON_RAGE",
	"DREAM_EATER", "EARTHQUAKE", "ENCORE", "ENDEAVOR", "ENDURE", "ERUPTION", "EVASION_DOWN", "EVASION_UP",
	"EXPLOSION", "FACADE", "FAKE_OUT", "FALSE_SWIPE", "FLAIL", "FLATTER", "FLINCH_HIT", "FLINCH_MINIMIZE_HIT",
	"FOCUS_ENERGY", "FOCUS_PUNCH", "FOLLOW_ME", "FORESIGHT", "FREEZE_HIT", "FRUSTRATION", "FURY_CUTTER",
	"FUTURE_SIGHT", "GRUDGE", "GUST", "HAIL", "HAZE", "HEAL_BELL", "HELPING_HAND", "HIDDEN_POWER",
	"HIGH_CRITICAL", "HIT", "IMPRISON", "INGRAIN", "KNOCK_OFF", "LEECH_SEED", "LEVEL_DAMAGE", "LIGHT_SCREEN",
	"LOCK_ON", "LOW_KICK", "MAGIC_COAT", "MAGNITUDE", "MEAN_LOOK", "MEMENTO", "METRONOME", "MIMIC", "MINIMIZE",
	"MIRROR_COAT", "MIRROR_MOVE", "MIST", "MOONLIGHT", "MORNING_SUN", "MUD_SPORT", "MULTI_HIT", "NATURE_POWER",
	"NIGHTMARE", "OHKO", "OVERHEAT", "PAIN_SPLIT", "PARALYZE", "PARALYZE_HIT", "PAY_DAY", "PERISH_SONG",
	"POISON", "POISON_FANG", "POISON_HIT", "POISON_TAIL", "PRESENT", "PROTECT", "PSYCH_UP", "PSYWAVE",
	"PURSUIT", "QUICK_ATTACK", "RAGE", "RAIN_DANCE", "RAMPAGE", "RAPID_SPIN", "RAZOR_WIND", "RECHARGE",
	"RECOIL", "RECOIL_IF_MISS", "RECYCLE", "REFLECT", "REFRESH", "REST", "RESTORE_HP", "RETURN", "REVENGE",
	"ROAR", "ROLE_PLAY", "ROLLOUT", "SAFEGUARD", "SANDSTORM", "SECRET_POWER", "SEMI_INVULNERABLE", "SKETCH",
	"SKILL_SWAP", "SKULL_BASH", "SKY_ATTACK", "SKY_UPPERCUT", "SLEEP", "SLEEP_TALK", "SMELLINGSALT", "SNATCH",
	"SNORE", "SOFTBOILED", "SOLAR_BEAM", "SONICBOOM", "SPECIAL_ATTACK_DOWN_HIT", "SPECIAL_ATTACK_UP",
	"SPECIAL_ATTACK_UP_2", "SPECIAL_DEFENSE_DOWN_2", "SPECIAL_DEFENSE_DOWN_HIT", "SPECIAL_DEFENSE_UP_2",
	"SPEED_DOWN", "SPEED_DOWN_2", "SPEED_DOWN_HIT", "SPEED_UP_2", "SPIKES", "SPITE", "SPIT_UP", "SPLASH",
	"STOCKPILE", "SUBSTITUTE", "SUNNY_DAY", "SUPERPOWER", "SUPER_FANG", "SWAGGER", "SWALLOW", "SYNTHESIS",
	"TAUNT", "TEETER_DANCE", "TELEPORT", "THAW_HIT", "THIEF", "THUNDER", "TICKLE", "TORMENT", "TOXIC",
	"TRANSFORM", "TRAP", "TRICK", "TRIPLE_KICK", "TRI_ATTACK", "TWINEEDLE", "TWISTER", "UPROAR", "VITAL_THROW",
	"WATER_SPORT", "WEATHER_BALL", "WILL_O_WISP", "WISH", "YAWN",
}

func (e MoveEffect) String() string {
	if e >= EFFECT_COUNT {
		return fmt.Sprintf("MoveEffect(%d)", uint16(e))
	}

	return effectNames[e]
}

func ParseMoveEffect(name string) (MoveEffect, error) {
	for i, n := range effectNames {
		if n == name {
			return MoveEffect(i), nil
		}
	}

	return EFFECT_HIT, fmt.Errorf("unknown move effect %q", name)
}

// EffectNames returns every effect name indexed by value
func EffectNames() []string {
	return effectNames[:]
}
