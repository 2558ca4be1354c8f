package data

import "fmt"

type HoldEffect uint8

const (
	HOLD_EFFECT_NONE HoldEffect = iota
	HOLD_EFFECT_RESTORE_HP
	HOLD_EFFECT_CURE_PAR
	HOLD_EFFECT_CURE_SLP
	HOLD_EFFECT_CURE_PSN
	HOLD_EFFECT_CURE_BRN
	HOLD_EFFECT_CURE_FRZ
	HOLD_EFFECT_CURE_CONFUSION
	HOLD_EFFECT_CURE_STATUS
	HOLD_EFFECT_RESTORE_STATS
	HOLD_EFFECT_EVASION_UP
	HOLD_EFFECT_QUICK_CLAW
	HOLD_EFFECT_CHOICE_BAND
	HOLD_EFFECT_FLINCH
	HOLD_EFFECT_FOCUS_BAND
	HOLD_EFFECT_SCOPE_LENS
	HOLD_EFFECT_LEFTOVERS
	HOLD_EFFECT_SHELL_BELL
	HOLD_EFFECT_FIRE_POWER
	HOLD_EFFECT_COUNT
)

var holdEffectNames = [HOLD_EFFECT_COUNT]string{
	"NONE", "RESTORE_HP", "CURE_PAR", "CURE_SLP", "CURE_PSN", "CURE_BRN", "CURE_FRZ", "CURE_CONFUSION",
	"CURE_STATUS", "RESTORE_STATS", "EVASION_UP", "QUICK_CLAW", "CHOICE_BAND", "FLINCH", "FOCUS_BAND",
	"SCOPE_LENS", "LEFTOVERS", "SHELL_BELL", "FIRE_POWER",
}

func (h HoldEffect) String() string {
	if h >= HOLD_EFFECT_COUNT {
		return fmt.Sprintf("HoldEffect(%d)", uint8(h))
	}

	return holdEffectNames[h]
}

func ParseHoldEffect(name string) (HoldEffect, error) {
	for i, n := range holdEffectNames {
		if n == name {
			return HoldEffect(i), nil
		}
	}

	return HOLD_EFFECT_NONE, fmt.Errorf("unknown hold effect %q", name)
}

func HoldEffectNames() []string {
	return holdEffectNames[:]
}

const (
	ITEM_NONE      uint16 = 0
	ITEM_LEFTOVERS uint16 = 200
)

type Item struct {
	ID         uint16
	Name       string
	HoldEffect HoldEffect
	HoldParam  int
}

// PassiveHeal reports whether the item restores HP at the end of every turn
func (i Item) PassiveHeal() bool {
	return i.HoldEffect == HOLD_EFFECT_LEFTOVERS
}
