package golurk

import "fmt"

const (
	MAX_IV       = 31
	MAX_EV       = 255
	MAX_TOTAL_EV = 510

	MAX_LEVEL = 100
	MIN_LEVEL = 1

	MAX_PARTY_SIZE = 6
	MAX_MOVES      = 4
)

// Sides of a battle. The player side is the one driven through Engine.Step
const (
	PLAYER_SIDE = iota
	OPPONENT_SIDE
)

// NO_WINNER is returned by Winner while the battle is still running
const NO_WINNER = -1

const (
	MIN_STAT_STAGE = -6
	MAX_STAT_STAGE = 6
)

// Indexes into ActiveBattler.StatStages
const (
	BATTLE_STAT_ATTACK = iota
	BATTLE_STAT_DEFENSE
	BATTLE_STAT_SPATTACK
	BATTLE_STAT_SPDEFENSE
	BATTLE_STAT_SPEED
	BATTLE_STAT_ACCURACY
	BATTLE_STAT_EVASION
	BATTLE_STAT_COUNT
)

var battleStatNames = [BATTLE_STAT_COUNT]string{"attack", "defense", "sp_attack", "sp_defense", "speed", "accuracy", "evasion"}

func BattleStatName(stat int) string {
	if stat < 0 || stat >= BATTLE_STAT_COUNT {
		return fmt.Sprintf("stat(%d)", stat)
	}

	return battleStatNames[stat]
}

// Status is the non-volatile status condition. The seven sleep values double as the number of turns left asleep.
type Status uint8

const (
	STATUS_NONE Status = iota
	STATUS_SLEEP1
	STATUS_SLEEP2
	STATUS_SLEEP3
	STATUS_SLEEP4
	STATUS_SLEEP5
	STATUS_SLEEP6
	STATUS_SLEEP7
	STATUS_POISON
	STATUS_BURN
	STATUS_FREEZE
	STATUS_PARALYSIS
	STATUS_TOXIC
	STATUS_COUNT
)

var statusNames = [STATUS_COUNT]string{
	"none", "sleep1", "sleep2", "sleep3", "sleep4", "sleep5", "sleep6", "sleep7",
	"poison", "burn", "freeze", "paralysis", "toxic",
}

func (s Status) String() string {
	if s >= STATUS_COUNT {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}

	return statusNames[s]
}

func (s Status) IsSleep() bool {
	return s >= STATUS_SLEEP1 && s <= STATUS_SLEEP7
}

// STATUS1 bits as seen by AI scripts
const (
	STATUS1_SLEEP        uint32 = 0x7
	STATUS1_POISON       uint32 = 0x8
	STATUS1_BURN         uint32 = 0x10
	STATUS1_FREEZE       uint32 = 0x20
	STATUS1_PARALYSIS    uint32 = 0x40
	STATUS1_TOXIC_POISON uint32 = 0x80
	STATUS1_PSN_ANY             = STATUS1_POISON | STATUS1_TOXIC_POISON
	STATUS1_ANY                 = STATUS1_SLEEP | STATUS1_PSN_ANY | STATUS1_BURN | STATUS1_FREEZE | STATUS1_PARALYSIS
)

// Status1 packs the status into the STATUS1 bit layout. Sleep keeps its turn count in the low bits.
func (s Status) Status1() uint32 {
	switch {
	case s.IsSleep():
		return uint32(s)
	case s == STATUS_POISON:
		return STATUS1_POISON
	case s == STATUS_BURN:
		return STATUS1_BURN
	case s == STATUS_FREEZE:
		return STATUS1_FREEZE
	case s == STATUS_PARALYSIS:
		return STATUS1_PARALYSIS
	case s == STATUS_TOXIC:
		return STATUS1_TOXIC_POISON
	}

	return 0
}

// STATUS2 bits (volatile, cleared on switch)
const (
	STATUS2_CONFUSION       uint32 = 0x7
	STATUS2_FLINCHED        uint32 = 0x8
	STATUS2_UPROAR          uint32 = 0x70
	STATUS2_BIDE            uint32 = 0x300
	STATUS2_LOCK_CONFUSE    uint32 = 0xC00
	STATUS2_MULTIPLETURNS   uint32 = 0x1000
	STATUS2_WRAPPED         uint32 = 0xE000
	STATUS2_INFATUATION     uint32 = 0xF0000
	STATUS2_FOCUS_ENERGY    uint32 = 0x100000
	STATUS2_TRANSFORMED     uint32 = 0x200000
	STATUS2_RECHARGE        uint32 = 0x400000
	STATUS2_RAGE            uint32 = 0x800000
	STATUS2_SUBSTITUTE      uint32 = 0x1000000
	STATUS2_DESTINY_BOND    uint32 = 0x2000000
	STATUS2_ESCAPE_PREVENT  uint32 = 0x4000000
	STATUS2_NIGHTMARE       uint32 = 0x8000000
	STATUS2_CURSED          uint32 = 0x10000000
	STATUS2_FORESIGHT       uint32 = 0x20000000
	STATUS2_DEFENSE_CURL    uint32 = 0x40000000
	STATUS2_TORMENT         uint32 = 0x80000000
)

// STATUS3 bits (volatile, cleared on switch)
const (
	STATUS3_LEECHSEED_BATTLER uint32 = 0x3
	STATUS3_LEECHSEED         uint32 = 0x4
	STATUS3_ALWAYS_HITS       uint32 = 0x18
	STATUS3_PERISH_SONG       uint32 = 0x20
	STATUS3_ON_AIR            uint32 = 0x40
	STATUS3_UNDERGROUND       uint32 = 0x80
	STATUS3_MINIMIZED         uint32 = 0x100
	STATUS3_ROOTED            uint32 = 0x400
	STATUS3_CHARGED_UP        uint32 = 0x200
	STATUS3_YAWN              uint32 = 0x1800
	STATUS3_IMPRISONED_OTHERS uint32 = 0x2000
	STATUS3_GRUDGE            uint32 = 0x4000
	STATUS3_MUDSPORT          uint32 = 0x10000
	STATUS3_WATERSPORT        uint32 = 0x20000
	STATUS3_UNDERWATER        uint32 = 0x40000
	STATUS3_TAUNT             uint32 = 0x80000
)

// Side condition bits
const (
	SIDE_STATUS_REFLECT      uint32 = 0x1
	SIDE_STATUS_LIGHTSCREEN  uint32 = 0x2
	SIDE_STATUS_STEALTH_ROCK uint32 = 0x4
	SIDE_STATUS_TOXIC_SPIKES uint32 = 0x8
	SIDE_STATUS_SPIKES       uint32 = 0x10
	SIDE_STATUS_SAFEGUARD    uint32 = 0x20
	SIDE_STATUS_FUTUREATTACK uint32 = 0x40
	SIDE_STATUS_MIST         uint32 = 0x100
)

const (
	WEATHER_NONE = iota
	WEATHER_SUN
	WEATHER_RAIN
	WEATHER_SANDSTORM
	WEATHER_HAIL
)

var weatherNames = []string{"none", "sun", "rain", "sandstorm", "hail"}

func WeatherName(weather int) string {
	if weather < 0 || weather >= len(weatherNames) {
		return fmt.Sprintf("weather(%d)", weather)
	}

	return weatherNames[weather]
}

// Gender values as reported to AI scripts
const (
	GENDER_MALE       = 0x00
	GENDER_FEMALE     = 0xFE
	GENDER_GENDERLESS = 0xFF
)

// SWITCH_PRIORITY is the priority every switch acts at, above any move
const SWITCH_PRIORITY = 6

// MAX_TOXIC_COUNTER caps the multiplier of badly poisoned damage
const MAX_TOXIC_COUNTER = 15

// ratios are {numerator, denominator} indexed by stage + 6
var statStageRatios = [13][2]int{
	{10, 40}, {10, 35}, {10, 30}, {10, 25}, {10, 20}, {10, 15},
	{10, 10},
	{15, 10}, {20, 10}, {25, 10}, {30, 10}, {35, 10}, {40, 10},
}

var accuracyStageRatios = [13][2]int{
	{33, 100}, {36, 100}, {43, 100}, {50, 100}, {60, 100}, {75, 100},
	{1, 1},
	{133, 100}, {166, 100}, {2, 1}, {233, 100}, {133, 50}, {3, 1},
}

// crit chance is 1 in critDenominators[stage]
var critDenominators = [5]int{16, 8, 4, 3, 2}
