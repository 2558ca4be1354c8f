package golurk

import (
	"github.com/go-logr/logr"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// ApplyStatStage scales value by the stage ratio, stage in [-6, 6]
func ApplyStatStage(value int, stage int) int {
	ratio := statStageRatios[lo.Clamp(stage, MIN_STAT_STAGE, MAX_STAT_STAGE)+6]
	return value * ratio[0] / ratio[1]
}

// AccuracyRatio returns the multiplier used by the accuracy check for the given stages
func AccuracyRatio(accuracyStage int, evasionStage int) (int, int) {
	ratio := accuracyStageRatios[lo.Clamp(accuracyStage-evasionStage+6, 0, 12)]
	return ratio[0], ratio[1]
}

// Damage runs the full formula for the active battler of attackerSide against the other side.
// It draws the crit roll and the random factor from the state's RNG, in that order.
func Damage(state *BattleState, attackerSide int, move data.Move) int {
	return calcDamage(state, attackerSide, move, &state.Rng)
}

// EstimateDamage is Damage without randomness: no crit and a random factor of 100.
// The RNG is left untouched.
func EstimateDamage(state *BattleState, attackerSide int, move data.Move) int {
	return calcDamage(state, attackerSide, move, nil)
}

func calcDamage(state *BattleState, attackerSide int, move data.Move, rng *Rng) int {
	if move.Power == 0 {
		return 0
	}

	defenderSide := OtherSide(attackerSide)
	attacker := state.ActivePokemon(attackerSide)
	defender := state.ActivePokemon(defenderSide)
	attackerStages := state.Active[attackerSide].StatStages
	defenderStages := state.Active[defenderSide].StatStages

	var a, d int
	if move.Physical {
		a = ApplyStatStage(attacker.Stats[data.STAT_ATTACK], attackerStages[BATTLE_STAT_ATTACK])
		d = ApplyStatStage(defender.Stats[data.STAT_DEFENSE], defenderStages[BATTLE_STAT_DEFENSE])
	} else {
		a = ApplyStatStage(attacker.Stats[data.STAT_SPATTACK], attackerStages[BATTLE_STAT_SPATTACK])
		d = ApplyStatStage(defender.Stats[data.STAT_SPDEFENSE], defenderStages[BATTLE_STAT_SPDEFENSE])
	}
	d = max(1, d)

	damage := (2*attacker.Level/5+2)*move.Power*a/d/50 + 2

	crit := false
	randomFactor := 100
	if rng != nil {
		critStage := 0
		if move.Effect == data.EFFECT_HIGH_CRITICAL {
			critStage++
		}
		critStage = min(critStage, len(critDenominators)-1)

		crit = rng.Range(critDenominators[critStage]) < 1
		randomFactor = 85 + rng.Range(16)
	}

	if crit {
		damage *= 2
	}

	damage = damage * randomFactor / 100

	// same type attack bonus follows the species typing
	if attacker.Base().HasType(move.Type) {
		damage = damage * 150 / 100
	}

	defType1, defType2 := state.BattlerTypes(defenderSide)
	effectiveness := data.DualTypeEffectiveness(move.Type, defType1, defType2)
	damage = damage * effectiveness / 100

	if damage == 0 && effectiveness > 0 {
		damage = 1
	}

	damageLogger().V(2).Info("final damage",
		"attacker", attacker.Name(),
		"defender", defender.Name(),
		"move", move.Name,
		"crit", crit,
		"random", randomFactor,
		"effectiveness", effectiveness,
		"damage", damage,
	)

	return damage
}

// moveHits rolls the accuracy check. Moves with 0 accuracy always hit and draw nothing.
func moveHits(state *BattleState, attackerSide int, move data.Move) bool {
	if move.Accuracy == 0 {
		return true
	}

	num, den := AccuracyRatio(
		state.Active[attackerSide].StatStages[BATTLE_STAT_ACCURACY],
		state.Active[OtherSide(attackerSide)].StatStages[BATTLE_STAT_EVASION],
	)
	threshold := move.Accuracy * num / den

	roll := state.Rng.Range(100)
	damageLogger().V(2).Info("accuracy roll", "move", move.Name, "roll", roll, "threshold", threshold)

	return roll < threshold
}
