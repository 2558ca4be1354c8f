package ai

import (
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

// battler resolves a script role to a side. Without doubles, partners are the battlers themselves.
func (ctx *Context) battler(role int) int {
	switch role {
	case AI_USER, AI_USER_PARTNER:
		return ctx.user
	}

	return ctx.target
}

func (ctx *Context) pokemon(role int) *golurk.Pokemon {
	return ctx.state.ActivePokemon(ctx.battler(role))
}

func (ctx *Context) active(role int) *golurk.ActiveBattler {
	return &ctx.state.Active[ctx.battler(role)]
}

func (ctx *Context) status1(role int) uint32 {
	return ctx.pokemon(role).Status.Status1()
}

// statLevel is the stage of a script stat id, shifted so that 6 is neutral
func (ctx *Context) statLevel(role int, stat int) int {
	battleStat, ok := scriptStatToBattleStat[stat]
	if !ok {
		return 6
	}

	return ctx.active(role).Stage(battleStat) + 6
}

func (ctx *Context) typeOf(selector int) int {
	switch selector {
	case AI_TYPE1_TARGET:
		t, _ := ctx.state.BattlerTypes(ctx.target)
		return int(t)
	case AI_TYPE1_USER:
		t, _ := ctx.state.BattlerTypes(ctx.user)
		return int(t)
	case AI_TYPE2_TARGET:
		_, t := ctx.state.BattlerTypes(ctx.target)
		return int(t)
	case AI_TYPE2_USER:
		_, t := ctx.state.BattlerTypes(ctx.user)
		return int(t)
	}

	return int(ctx.move.Type)
}

// moveEffectiveness is the considered move's effectiveness against the target on the script scale
func (ctx *Context) moveEffectiveness(move data.Move) int {
	t1, t2 := ctx.state.BattlerTypes(ctx.target)
	return aiEffectiveness(data.DualTypeEffectiveness(move.Type, t1, t2))
}

func (ctx *Context) userMoves() []data.Move {
	return moveset(ctx.pokemon(AI_USER))
}

func moveset(poke *golurk.Pokemon) []data.Move {
	return lo.FilterMap(poke.Moves[:], func(id uint16, _ int) (data.Move, bool) {
		return data.GlobalData.GetMove(id), id != data.MOVE_NONE
	})
}

func (ctx *Context) hasAttackingMove() bool {
	return lo.ContainsBy(ctx.userMoves(), func(m data.Move) bool {
		return m.Power > 1
	})
}

func (ctx *Context) highestEffectiveness() int {
	best := AI_EFFECTIVENESS_x0
	for _, move := range ctx.userMoves() {
		if move.Power == 0 {
			continue
		}

		best = max(best, ctx.moveEffectiveness(move))
	}

	return best
}

// howPowerful compares the considered move's estimated damage against every usable damaging move
// of the user. Moves of power 0 or 1 are never rated.
func (ctx *Context) howPowerful() int {
	if ctx.move.Power <= 1 {
		return MOVE_POWER_DISCOURAGED
	}

	user := ctx.pokemon(AI_USER)
	considered := golurk.EstimateDamage(ctx.state, ctx.user, ctx.move)

	for slot := range golurk.MAX_MOVES {
		if !user.MoveUsable(slot) {
			continue
		}

		other := data.GlobalData.GetMove(user.Moves[slot])
		if other.Power <= 1 {
			continue
		}
		if golurk.EstimateDamage(ctx.state, ctx.user, other) > considered {
			return MOVE_NOT_MOST_POWERFUL
		}
	}

	return MOVE_MOST_POWERFUL
}

func (ctx *Context) canFaint() bool {
	if ctx.move.Power <= 1 {
		return false
	}

	return golurk.EstimateDamage(ctx.state, ctx.user, ctx.move) >= ctx.pokemon(AI_TARGET).CurrentHP
}

// userGoesFirst compares effective speeds. A tie counts as the user going first.
func (ctx *Context) userGoesFirst() bool {
	return ctx.state.EffectiveSpeed(ctx.user) >= ctx.state.EffectiveSpeed(ctx.target)
}

func (ctx *Context) statusInParty(role int, mask uint32) bool {
	return lo.ContainsBy(ctx.state.Team(ctx.battler(role)), func(p golurk.Pokemon) bool {
		return p.Alive() && p.Status.Status1()&mask != 0
	})
}

func (ctx *Context) hasMove(role int, move uint16) bool {
	return lo.Contains(ctx.pokemon(role).Moves[:], move)
}

func (ctx *Context) hasMoveWithEffect(role int, effect int) bool {
	return lo.ContainsBy(moveset(ctx.pokemon(role)), func(m data.Move) bool {
		return int(m.Effect) == effect
	})
}

func (ctx *Context) levelCond(cond int) bool {
	user := ctx.pokemon(AI_USER).Level
	target := ctx.pokemon(AI_TARGET).Level

	switch cond {
	case LEVEL_USER_HIGHER:
		return user > target
	case LEVEL_USER_LOWER:
		return user < target
	case LEVEL_EQUAL:
		return user == target
	case LEVEL_NOT_EQUAL:
		return user != target
	}

	return false
}

func boolResult(b bool) int {
	if b {
		return 1
	}

	return 0
}
