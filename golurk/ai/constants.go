package ai

import (
	"strings"

	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
)

// Logic ids, one compiled entry point each
const (
	LOGIC_CHECK_BAD_MOVE = iota
	LOGIC_TRY_TO_FAINT
	LOGIC_CHECK_VIABILITY
	LOGIC_SETUP_FIRST_TURN
	LOGIC_COUNT
)

var logicNames = [LOGIC_COUNT]string{"check_bad_move", "try_to_faint", "check_viability", "setup_first_turn"}

func LogicName(logic int) string {
	if logic < 0 || logic >= LOGIC_COUNT {
		return "unknown"
	}

	return logicNames[logic]
}

// Battler roles as scripts name them
const (
	AI_TARGET = iota
	AI_USER
	AI_TARGET_PARTNER
	AI_USER_PARTNER
)

// get_type selectors
const (
	AI_TYPE1_TARGET = iota
	AI_TYPE1_USER
	AI_TYPE2_TARGET
	AI_TYPE2_USER
	AI_TYPE_MOVE
)

// Effectiveness as reported to scripts: 40 is neutral
const (
	AI_EFFECTIVENESS_x0    = 0
	AI_EFFECTIVENESS_x0_25 = 10
	AI_EFFECTIVENESS_x0_5  = 20
	AI_EFFECTIVENESS_x1    = 40
	AI_EFFECTIVENESS_x2    = 80
	AI_EFFECTIVENESS_x4    = 160
)

// get_how_powerful_move_is results
const (
	MOVE_POWER_DISCOURAGED = iota
	MOVE_NOT_MOST_POWERFUL
	MOVE_MOST_POWERFUL
)

const (
	AI_WEATHER_SUN = iota
	AI_WEATHER_RAIN
	AI_WEATHER_SANDSTORM
	AI_WEATHER_HAIL
	AI_WEATHER_NONE
)

// Stat ids used by the stat level opcodes
const (
	STAT_HP = iota
	STAT_ATK
	STAT_DEF
	STAT_SPEED
	STAT_SPATK
	STAT_SPDEF
	STAT_ACC
	STAT_EVASION
)

// if_level_cond comparisons, user against target
const (
	LEVEL_USER_HIGHER = iota
	LEVEL_USER_LOWER
	LEVEL_EQUAL
	LEVEL_NOT_EQUAL
)

var scriptStatToBattleStat = map[int]int{
	STAT_ATK:     golurk.BATTLE_STAT_ATTACK,
	STAT_DEF:     golurk.BATTLE_STAT_DEFENSE,
	STAT_SPEED:   golurk.BATTLE_STAT_SPEED,
	STAT_SPATK:   golurk.BATTLE_STAT_SPATTACK,
	STAT_SPDEF:   golurk.BATTLE_STAT_SPDEFENSE,
	STAT_ACC:     golurk.BATTLE_STAT_ACCURACY,
	STAT_EVASION: golurk.BATTLE_STAT_EVASION,
}

func aiEffectiveness(percent int) int {
	return percent * AI_EFFECTIVENESS_x1 / data.EFFECTIVENESS_NORMAL
}

func aiWeather(weather int) int {
	switch weather {
	case golurk.WEATHER_SUN:
		return AI_WEATHER_SUN
	case golurk.WEATHER_RAIN:
		return AI_WEATHER_RAIN
	case golurk.WEATHER_SANDSTORM:
		return AI_WEATHER_SANDSTORM
	case golurk.WEATHER_HAIL:
		return AI_WEATHER_HAIL
	}

	return AI_WEATHER_NONE
}

func constantName(prefix string, name string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// scriptConstants is the symbol table operand expressions are evaluated against.
// Move, item, type, effect and ability names come straight from the static tables.
func scriptConstants() map[string]any {
	env := map[string]any{
		"LOGIC_CHECK_BAD_MOVE":   LOGIC_CHECK_BAD_MOVE,
		"LOGIC_TRY_TO_FAINT":     LOGIC_TRY_TO_FAINT,
		"LOGIC_CHECK_VIABILITY":  LOGIC_CHECK_VIABILITY,
		"LOGIC_SETUP_FIRST_TURN": LOGIC_SETUP_FIRST_TURN,

		"AI_TARGET":         AI_TARGET,
		"AI_USER":           AI_USER,
		"AI_TARGET_PARTNER": AI_TARGET_PARTNER,
		"AI_USER_PARTNER":   AI_USER_PARTNER,

		"AI_TYPE1_TARGET": AI_TYPE1_TARGET,
		"AI_TYPE1_USER":   AI_TYPE1_USER,
		"AI_TYPE2_TARGET": AI_TYPE2_TARGET,
		"AI_TYPE2_USER":   AI_TYPE2_USER,
		"AI_TYPE_MOVE":    AI_TYPE_MOVE,

		"AI_EFFECTIVENESS_x0":    AI_EFFECTIVENESS_x0,
		"AI_EFFECTIVENESS_x0_25": AI_EFFECTIVENESS_x0_25,
		"AI_EFFECTIVENESS_x0_5":  AI_EFFECTIVENESS_x0_5,
		"AI_EFFECTIVENESS_x1":    AI_EFFECTIVENESS_x1,
		"AI_EFFECTIVENESS_x2":    AI_EFFECTIVENESS_x2,
		"AI_EFFECTIVENESS_x4":    AI_EFFECTIVENESS_x4,

		"MOVE_POWER_DISCOURAGED": MOVE_POWER_DISCOURAGED,
		"MOVE_NOT_MOST_POWERFUL": MOVE_NOT_MOST_POWERFUL,
		"MOVE_MOST_POWERFUL":     MOVE_MOST_POWERFUL,

		"AI_WEATHER_SUN":       AI_WEATHER_SUN,
		"AI_WEATHER_RAIN":      AI_WEATHER_RAIN,
		"AI_WEATHER_SANDSTORM": AI_WEATHER_SANDSTORM,
		"AI_WEATHER_HAIL":      AI_WEATHER_HAIL,
		"AI_WEATHER_NONE":      AI_WEATHER_NONE,

		"STAT_HP":      STAT_HP,
		"STAT_ATK":     STAT_ATK,
		"STAT_DEF":     STAT_DEF,
		"STAT_SPEED":   STAT_SPEED,
		"STAT_SPATK":   STAT_SPATK,
		"STAT_SPDEF":   STAT_SPDEF,
		"STAT_ACC":     STAT_ACC,
		"STAT_EVASION": STAT_EVASION,

		"DEFAULT_STAT_STAGE": 6,
		"MAX_STAT_STAGE":     golurk.MAX_STAT_STAGE + 6,
		"MIN_STAT_STAGE":     golurk.MIN_STAT_STAGE + 6,

		"LEVEL_USER_HIGHER": LEVEL_USER_HIGHER,
		"LEVEL_USER_LOWER":  LEVEL_USER_LOWER,
		"LEVEL_EQUAL":       LEVEL_EQUAL,
		"LEVEL_NOT_EQUAL":   LEVEL_NOT_EQUAL,

		"MON_MALE":       golurk.GENDER_MALE,
		"MON_FEMALE":     golurk.GENDER_FEMALE,
		"MON_GENDERLESS": golurk.GENDER_GENDERLESS,

		"STATUS1_SLEEP":        golurk.STATUS1_SLEEP,
		"STATUS1_POISON":       golurk.STATUS1_POISON,
		"STATUS1_BURN":         golurk.STATUS1_BURN,
		"STATUS1_FREEZE":       golurk.STATUS1_FREEZE,
		"STATUS1_PARALYSIS":    golurk.STATUS1_PARALYSIS,
		"STATUS1_TOXIC_POISON": golurk.STATUS1_TOXIC_POISON,
		"STATUS1_PSN_ANY":      golurk.STATUS1_PSN_ANY,
		"STATUS1_ANY":          golurk.STATUS1_ANY,

		"STATUS2_CONFUSION":      golurk.STATUS2_CONFUSION,
		"STATUS2_FLINCHED":       golurk.STATUS2_FLINCHED,
		"STATUS2_UPROAR":         golurk.STATUS2_UPROAR,
		"STATUS2_BIDE":           golurk.STATUS2_BIDE,
		"STATUS2_LOCK_CONFUSE":   golurk.STATUS2_LOCK_CONFUSE,
		"STATUS2_MULTIPLETURNS":  golurk.STATUS2_MULTIPLETURNS,
		"STATUS2_WRAPPED":        golurk.STATUS2_WRAPPED,
		"STATUS2_INFATUATION":    golurk.STATUS2_INFATUATION,
		"STATUS2_FOCUS_ENERGY":   golurk.STATUS2_FOCUS_ENERGY,
		"STATUS2_TRANSFORMED":    golurk.STATUS2_TRANSFORMED,
		"STATUS2_RECHARGE":       golurk.STATUS2_RECHARGE,
		"STATUS2_RAGE":           golurk.STATUS2_RAGE,
		"STATUS2_SUBSTITUTE":     golurk.STATUS2_SUBSTITUTE,
		"STATUS2_DESTINY_BOND":   golurk.STATUS2_DESTINY_BOND,
		"STATUS2_ESCAPE_PREVENT": golurk.STATUS2_ESCAPE_PREVENT,
		"STATUS2_NIGHTMARE":      golurk.STATUS2_NIGHTMARE,
		"STATUS2_CURSED":         golurk.STATUS2_CURSED,
		"STATUS2_FORESIGHT":      golurk.STATUS2_FORESIGHT,
		"STATUS2_DEFENSE_CURL":   golurk.STATUS2_DEFENSE_CURL,
		"STATUS2_TORMENT":        golurk.STATUS2_TORMENT,

		"STATUS3_LEECHSEED":         golurk.STATUS3_LEECHSEED,
		"STATUS3_ALWAYS_HITS":       golurk.STATUS3_ALWAYS_HITS,
		"STATUS3_PERISH_SONG":       golurk.STATUS3_PERISH_SONG,
		"STATUS3_ON_AIR":            golurk.STATUS3_ON_AIR,
		"STATUS3_UNDERGROUND":       golurk.STATUS3_UNDERGROUND,
		"STATUS3_MINIMIZED":         golurk.STATUS3_MINIMIZED,
		"STATUS3_ROOTED":            golurk.STATUS3_ROOTED,
		"STATUS3_CHARGED_UP":        golurk.STATUS3_CHARGED_UP,
		"STATUS3_YAWN":              golurk.STATUS3_YAWN,
		"STATUS3_IMPRISONED_OTHERS": golurk.STATUS3_IMPRISONED_OTHERS,
		"STATUS3_GRUDGE":            golurk.STATUS3_GRUDGE,
		"STATUS3_MUDSPORT":          golurk.STATUS3_MUDSPORT,
		"STATUS3_WATERSPORT":        golurk.STATUS3_WATERSPORT,
		"STATUS3_UNDERWATER":        golurk.STATUS3_UNDERWATER,
		"STATUS3_TAUNT":             golurk.STATUS3_TAUNT,

		"SIDE_STATUS_REFLECT":      golurk.SIDE_STATUS_REFLECT,
		"SIDE_STATUS_LIGHTSCREEN":  golurk.SIDE_STATUS_LIGHTSCREEN,
		"SIDE_STATUS_STEALTH_ROCK": golurk.SIDE_STATUS_STEALTH_ROCK,
		"SIDE_STATUS_TOXIC_SPIKES": golurk.SIDE_STATUS_TOXIC_SPIKES,
		"SIDE_STATUS_SPIKES":       golurk.SIDE_STATUS_SPIKES,
		"SIDE_STATUS_SAFEGUARD":    golurk.SIDE_STATUS_SAFEGUARD,
		"SIDE_STATUS_FUTUREATTACK": golurk.SIDE_STATUS_FUTUREATTACK,
		"SIDE_STATUS_MIST":         golurk.SIDE_STATUS_MIST,
	}

	for t := range data.TYPE_COUNT {
		env[constantName("TYPE_", t.String())] = int(t)
	}
	for i, name := range data.EffectNames() {
		env["EFFECT_"+name] = i
	}
	for i, name := range data.AbilityNames() {
		env["ABILITY_"+name] = i
	}
	for i, name := range data.HoldEffectNames() {
		env["HOLD_EFFECT_"+name] = i
	}
	for id := range data.GlobalData.MoveCount() {
		move := data.GlobalData.GetMove(uint16(id))
		env[constantName("MOVE_", move.Name)] = int(move.ID)
	}
	for _, item := range data.GlobalData.AllItems() {
		env[constantName("ITEM_", item.Name)] = int(item.ID)
	}

	// bit masks are uint32 on the engine side, expressions only deal in int
	for name, value := range env {
		if mask, ok := value.(uint32); ok {
			env[name] = int(mask)
		}
	}

	return env
}
