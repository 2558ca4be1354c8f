package ai

import (
	"github.com/go-logr/logr"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

const (
	MAX_STEPS       = 10000
	CALL_STACK_SIZE = 8
	// scores start here for every usable slot
	DEFAULT_SCORE = 100
)

type ExitReason int

const (
	EXIT_END ExitReason = iota
	EXIT_NO_ENTRY
	EXIT_UNKNOWN_OPCODE
	EXIT_STEP_LIMIT
	EXIT_STACK_OVERFLOW
	EXIT_FLEE
	EXIT_WATCH
)

var exitNames = []string{"end", "no_entry", "unknown_opcode", "step_limit", "stack_overflow", "flee", "watch"}

func (e ExitReason) String() string {
	if int(e) < 0 || int(e) >= len(exitNames) {
		return "unknown"
	}

	return exitNames[e]
}

var aiLogger = func() logr.Logger {
	return golurk.InternalLogger().WithName("ai")
}

// Decision is the scratch state of a single move choice. Scores carry over between passes.
type Decision struct {
	Scores [golurk.MAX_MOVES]int
	// Slot is the move slot under consideration
	Slot int
}

// NewDecision scores every usable slot of the side's active pokemon at DEFAULT_SCORE
func NewDecision(state *golurk.BattleState, side int) Decision {
	var d Decision
	active := state.ActivePokemon(side)

	for slot := range golurk.MAX_MOVES {
		if active.MoveUsable(slot) {
			d.Scores[slot] = DEFAULT_SCORE
		}
	}

	return d
}

// Context is one script invocation. Nothing in it survives the invocation apart from
// the scores written through decision.
type Context struct {
	state        *golurk.BattleState
	user, target int
	decision     *Decision
	move         data.Move

	FuncResult int
	pc         int
	stack      [CALL_STACK_SIZE]int
	depth      int
	Steps      int
}

type VM struct {
	script *Script
}

func NewVM(script *Script) *VM {
	return &VM{script: script}
}

func (v *VM) Script() *Script {
	return v.script
}

// Run executes one logic id for the slot under consideration in decision. The only RNG draws
// come from the random opcodes. It always returns: bad opcodes, a full call stack and
// the step limit all end the invocation and keep the scores written so far.
func (v *VM) Run(logic int, state *golurk.BattleState, side int, decision *Decision) (ExitReason, *Context) {
	ctx := &Context{
		state:    state,
		user:     side,
		target:   golurk.OtherSide(side),
		decision: decision,
		move:     data.GlobalData.GetMove(state.ActivePokemon(side).Moves[decision.Slot]),
		pc:       v.script.Entry(logic),
	}

	if ctx.pc == NO_ENTRY {
		return EXIT_NO_ENTRY, ctx
	}

	for ctx.Steps < MAX_STEPS {
		ctx.Steps++

		if exit, done := ctx.exec(v.script.Instructions[ctx.pc]); done {
			aiLogger().V(2).Info("script finished", "logic", LogicName(logic), "slot", decision.Slot,
				"exit", exit.String(), "steps", ctx.Steps, "score", decision.Scores[decision.Slot])
			return exit, ctx
		}
	}

	aiLogger().Info("script hit the step limit", "logic", LogicName(logic), "slot", decision.Slot)
	return EXIT_STEP_LIMIT, ctx
}

func (ctx *Context) branch(inst Instruction, cond bool) {
	if cond {
		ctx.pc = inst.Target
	} else {
		ctx.pc++
	}
}

func (ctx *Context) produce(value int) {
	ctx.FuncResult = value
	ctx.pc++
}

func compare(op Opcode, base Opcode, lhs int, rhs int) bool {
	switch op - base {
	case 0:
		return lhs < rhs
	case 1:
		return lhs > rhs
	case 2:
		return lhs == rhs
	}

	return lhs != rhs
}

func (ctx *Context) exec(inst Instruction) (ExitReason, bool) {
	args := inst.Args

	switch op := inst.Op; op {
	case OP_IF_RANDOM_LESS_THAN, OP_IF_RANDOM_GREATER_THAN, OP_IF_RANDOM_EQUAL, OP_IF_RANDOM_NOT_EQUAL:
		roll := int(ctx.state.Rng.Range(256))
		ctx.branch(inst, compare(op, OP_IF_RANDOM_LESS_THAN, roll, args[0]))

	case OP_SCORE:
		slot := ctx.decision.Slot
		ctx.decision.Scores[slot] = max(0, ctx.decision.Scores[slot]+args[0])
		ctx.pc++

	case OP_IF_HP_LESS_THAN, OP_IF_HP_MORE_THAN, OP_IF_HP_EQUAL, OP_IF_HP_NOT_EQUAL:
		ctx.branch(inst, compare(op, OP_IF_HP_LESS_THAN, ctx.pokemon(args[0]).HpPercent(), args[1]))

	case OP_IF_STATUS:
		ctx.branch(inst, ctx.status1(args[0])&uint32(args[1]) != 0)
	case OP_IF_NOT_STATUS:
		ctx.branch(inst, ctx.status1(args[0])&uint32(args[1]) == 0)
	case OP_IF_STATUS2:
		ctx.branch(inst, ctx.active(args[0]).Status2()&uint32(args[1]) != 0)
	case OP_IF_NOT_STATUS2:
		ctx.branch(inst, ctx.active(args[0]).Status2()&uint32(args[1]) == 0)
	case OP_IF_STATUS3:
		ctx.branch(inst, ctx.active(args[0]).Status3()&uint32(args[1]) != 0)
	case OP_IF_NOT_STATUS3:
		ctx.branch(inst, ctx.active(args[0]).Status3()&uint32(args[1]) == 0)
	case OP_IF_SIDE_AFFECTING:
		ctx.branch(inst, ctx.state.Sides[ctx.battler(args[0])].Conditions()&uint32(args[1]) != 0)
	case OP_IF_NOT_SIDE_AFFECTING:
		ctx.branch(inst, ctx.state.Sides[ctx.battler(args[0])].Conditions()&uint32(args[1]) == 0)

	case OP_IF_LESS_THAN, OP_IF_MORE_THAN, OP_IF_EQUAL, OP_IF_NOT_EQUAL:
		ctx.branch(inst, compare(op, OP_IF_LESS_THAN, ctx.FuncResult, args[0]))
	case OP_IF_LESS_THAN_PTR, OP_IF_MORE_THAN_PTR, OP_IF_EQUAL_PTR, OP_IF_NOT_EQUAL_PTR:
		ctx.branch(inst, compare(op, OP_IF_LESS_THAN_PTR, ctx.FuncResult, args[0]))
	case OP_IF_EQUAL_:
		ctx.branch(inst, ctx.FuncResult == args[0])
	case OP_IF_NOT_EQUAL_:
		ctx.branch(inst, ctx.FuncResult != args[0])

	case OP_IF_MOVE:
		ctx.branch(inst, int(ctx.move.ID) == args[0])
	case OP_IF_NOT_MOVE:
		ctx.branch(inst, int(ctx.move.ID) != args[0])

	case OP_IF_IN_BYTES:
		ctx.branch(inst, lo.Contains(inst.List, ctx.FuncResult&0xFF))
	case OP_IF_NOT_IN_BYTES:
		ctx.branch(inst, !lo.Contains(inst.List, ctx.FuncResult&0xFF))
	case OP_IF_IN_HWORDS:
		ctx.branch(inst, lo.Contains(inst.List, ctx.FuncResult&0xFFFF))
	case OP_IF_NOT_IN_HWORDS:
		ctx.branch(inst, !lo.Contains(inst.List, ctx.FuncResult&0xFFFF))

	case OP_IF_USER_HAS_ATTACKING_MOVE:
		ctx.branch(inst, ctx.hasAttackingMove())
	case OP_IF_USER_HAS_NO_ATTACKING_MOVES:
		ctx.branch(inst, !ctx.hasAttackingMove())

	case OP_GET_TURN_COUNT:
		ctx.produce(ctx.state.Turn)
	case OP_GET_TYPE:
		ctx.produce(ctx.typeOf(args[0]))
	case OP_GET_CONSIDERED_MOVE_POWER:
		ctx.produce(ctx.move.Power)
	case OP_GET_HOW_POWERFUL_MOVE_IS:
		ctx.produce(ctx.howPowerful())
	case OP_GET_LAST_USED_BATTLER_MOVE:
		ctx.produce(int(ctx.active(args[0]).LastMove))

	case OP_IF_USER_GOES:
		ctx.branch(inst, (args[0] == 0) == ctx.userGoesFirst())
	case OP_IF_USER_DOESNT_GO:
		ctx.branch(inst, (args[0] == 0) != ctx.userGoesFirst())

	case OP_COUNT_USABLE_PARTY_MONS:
		ctx.produce(len(ctx.state.AliveBenchIndexes(ctx.battler(args[0]))))
	case OP_GET_CONSIDERED_MOVE:
		ctx.produce(int(ctx.move.ID))
	case OP_GET_CONSIDERED_MOVE_EFFECT:
		ctx.produce(int(ctx.move.Effect))
	case OP_GET_ABILITY:
		ctx.produce(int(ctx.pokemon(args[0]).Ability))
	case OP_GET_HIGHEST_TYPE_EFFECTIVENESS:
		ctx.produce(ctx.highestEffectiveness())
	case OP_IF_TYPE_EFFECTIVENESS:
		ctx.branch(inst, ctx.moveEffectiveness(ctx.move) == args[0])

	case OP_IF_STATUS_IN_PARTY:
		ctx.branch(inst, ctx.statusInParty(args[0], uint32(args[1])))
	case OP_IF_STATUS_NOT_IN_PARTY:
		ctx.branch(inst, !ctx.statusInParty(args[0], uint32(args[1])))
	case OP_GET_WEATHER:
		ctx.produce(aiWeather(ctx.state.Weather))

	case OP_IF_EFFECT:
		ctx.branch(inst, int(ctx.move.Effect) == args[0])
	case OP_IF_NOT_EFFECT:
		ctx.branch(inst, int(ctx.move.Effect) != args[0])

	case OP_IF_STAT_LEVEL_LESS_THAN, OP_IF_STAT_LEVEL_MORE_THAN, OP_IF_STAT_LEVEL_EQUAL, OP_IF_STAT_LEVEL_NOT_EQUAL:
		ctx.branch(inst, compare(op, OP_IF_STAT_LEVEL_LESS_THAN, ctx.statLevel(args[0], args[1]), args[2]))

	case OP_IF_CAN_FAINT:
		ctx.branch(inst, ctx.canFaint())
	case OP_IF_CANT_FAINT:
		ctx.branch(inst, !ctx.canFaint())
	case OP_IF_HAS_MOVE:
		ctx.branch(inst, ctx.hasMove(args[0], uint16(args[1])))
	case OP_IF_DOESNT_HAVE_MOVE:
		ctx.branch(inst, !ctx.hasMove(args[0], uint16(args[1])))
	case OP_IF_HAS_MOVE_WITH_EFFECT:
		ctx.branch(inst, ctx.hasMoveWithEffect(args[0], args[1]))
	case OP_IF_DOESNT_HAVE_MOVE_WITH_EFFECT:
		ctx.branch(inst, !ctx.hasMoveWithEffect(args[0], args[1]))

	case OP_IF_ANY_MOVE_DISABLED_OR_ENCORED:
		active := ctx.active(args[0])
		if args[1] == 0 {
			ctx.branch(inst, active.DisabledMove != data.MOVE_NONE)
		} else {
			ctx.branch(inst, active.EncoredMove != data.MOVE_NONE)
		}
	case OP_IF_CURR_MOVE_DISABLED_OR_ENCORED:
		active := ctx.active(AI_USER)
		if args[0] == 0 {
			ctx.branch(inst, active.DisabledMove == ctx.move.ID)
		} else {
			ctx.branch(inst, active.EncoredMove == ctx.move.ID)
		}

	case OP_FLEE:
		return EXIT_FLEE, true
	case OP_IF_RANDOM_SAFARI_FLEE:
		// never a safari battle
		ctx.pc++
	case OP_WATCH:
		return EXIT_WATCH, true

	case OP_GET_HOLD_EFFECT:
		ctx.produce(int(ctx.pokemon(args[0]).Item().HoldEffect))
	case OP_GET_GENDER:
		ctx.produce(ctx.pokemon(args[0]).Gender())
	case OP_IS_FIRST_TURN_FOR:
		ctx.produce(boolResult(ctx.active(args[0]).TurnsActive == 0))
	case OP_GET_STOCKPILE_COUNT:
		ctx.produce(ctx.active(args[0]).StockpileCount)
	case OP_IS_DOUBLE_BATTLE:
		ctx.produce(0)
	case OP_GET_USED_HELD_ITEM:
		// consumed items are not tracked
		ctx.produce(int(data.ITEM_NONE))
	case OP_GET_MOVE_TYPE_FROM_RESULT:
		ctx.produce(int(data.GlobalData.GetMove(uint16(ctx.FuncResult)).Type))
	case OP_GET_MOVE_POWER_FROM_RESULT:
		ctx.produce(data.GlobalData.GetMove(uint16(ctx.FuncResult)).Power)
	case OP_GET_MOVE_EFFECT_FROM_RESULT:
		ctx.produce(int(data.GlobalData.GetMove(uint16(ctx.FuncResult)).Effect))
	case OP_GET_PROTECT_COUNT:
		ctx.produce(ctx.active(args[0]).ProtectUses)

	case OP_NOP_2A, OP_NOP_2B, OP_NOP_32, OP_NOP_33,
		OP_NOP_52, OP_NOP_53, OP_NOP_54, OP_NOP_55, OP_NOP_56, OP_NOP_57:
		ctx.pc++

	case OP_CALL:
		if ctx.depth == CALL_STACK_SIZE {
			return EXIT_STACK_OVERFLOW, true
		}
		ctx.stack[ctx.depth] = ctx.pc + 1
		ctx.depth++
		ctx.pc = inst.Target
	case OP_GOTO:
		ctx.pc = inst.Target
	case OP_END:
		if ctx.depth == 0 {
			return EXIT_END, true
		}
		ctx.depth--
		ctx.pc = ctx.stack[ctx.depth]

	case OP_IF_LEVEL_COND:
		ctx.branch(inst, ctx.levelCond(args[0]))
	case OP_IF_TARGET_TAUNTED:
		ctx.branch(inst, ctx.active(AI_TARGET).Taunted)
	case OP_IF_TARGET_NOT_TAUNTED:
		ctx.branch(inst, !ctx.active(AI_TARGET).Taunted)
	case OP_IF_TARGET_IS_ALLY:
		ctx.branch(inst, false)
	case OP_IS_OF_TYPE:
		ctx.produce(boolResult(ctx.state.BattlerHasType(ctx.battler(args[0]), data.Type(args[1]))))
	case OP_CHECK_ABILITY:
		ctx.produce(boolResult(int(ctx.pokemon(args[0]).Ability) == args[1]))
	case OP_IF_FLASH_FIRED:
		ctx.branch(inst, ctx.active(args[0]).FlashFire)
	case OP_IF_HOLDS_ITEM:
		ctx.branch(inst, int(ctx.pokemon(args[0]).HeldItem) == args[1])

	default:
		aiLogger().Info("unknown opcode, ending script", "opcode", op.String(), "offset", inst.Offset)
		return EXIT_UNKNOWN_OPCODE, true
	}

	return EXIT_END, false
}
