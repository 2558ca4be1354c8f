package ai

import "fmt"

type Opcode uint8

const (
	OP_IF_RANDOM_LESS_THAN Opcode = iota
	OP_IF_RANDOM_GREATER_THAN
	OP_IF_RANDOM_EQUAL
	OP_IF_RANDOM_NOT_EQUAL
	OP_SCORE
	OP_IF_HP_LESS_THAN
	OP_IF_HP_MORE_THAN
	OP_IF_HP_EQUAL
	OP_IF_HP_NOT_EQUAL
	OP_IF_STATUS
	OP_IF_NOT_STATUS
	OP_IF_STATUS2
	OP_IF_NOT_STATUS2
	OP_IF_STATUS3
	OP_IF_NOT_STATUS3
	OP_IF_SIDE_AFFECTING
	OP_IF_NOT_SIDE_AFFECTING
	OP_IF_LESS_THAN
	OP_IF_MORE_THAN
	OP_IF_EQUAL
	OP_IF_NOT_EQUAL
	OP_IF_LESS_THAN_PTR
	OP_IF_MORE_THAN_PTR
	OP_IF_EQUAL_PTR
	OP_IF_NOT_EQUAL_PTR
	OP_IF_MOVE
	OP_IF_NOT_MOVE
	OP_IF_IN_BYTES
	OP_IF_NOT_IN_BYTES
	OP_IF_IN_HWORDS
	OP_IF_NOT_IN_HWORDS
	OP_IF_USER_HAS_ATTACKING_MOVE
	OP_IF_USER_HAS_NO_ATTACKING_MOVES
	OP_GET_TURN_COUNT
	OP_GET_TYPE
	OP_GET_CONSIDERED_MOVE_POWER
	OP_GET_HOW_POWERFUL_MOVE_IS
	OP_GET_LAST_USED_BATTLER_MOVE
	OP_IF_EQUAL_
	OP_IF_NOT_EQUAL_
	OP_IF_USER_GOES
	OP_IF_USER_DOESNT_GO
	OP_NOP_2A
	OP_NOP_2B
	OP_COUNT_USABLE_PARTY_MONS
	OP_GET_CONSIDERED_MOVE
	OP_GET_CONSIDERED_MOVE_EFFECT
	OP_GET_ABILITY
	OP_GET_HIGHEST_TYPE_EFFECTIVENESS
	OP_IF_TYPE_EFFECTIVENESS
	OP_NOP_32
	OP_NOP_33
	OP_IF_STATUS_IN_PARTY
	OP_IF_STATUS_NOT_IN_PARTY
	OP_GET_WEATHER
	OP_IF_EFFECT
	OP_IF_NOT_EFFECT
	OP_IF_STAT_LEVEL_LESS_THAN
	OP_IF_STAT_LEVEL_MORE_THAN
	OP_IF_STAT_LEVEL_EQUAL
	OP_IF_STAT_LEVEL_NOT_EQUAL
	OP_IF_CAN_FAINT
	OP_IF_CANT_FAINT
	OP_IF_HAS_MOVE
	OP_IF_DOESNT_HAVE_MOVE
	OP_IF_HAS_MOVE_WITH_EFFECT
	OP_IF_DOESNT_HAVE_MOVE_WITH_EFFECT
	OP_IF_ANY_MOVE_DISABLED_OR_ENCORED
	OP_IF_CURR_MOVE_DISABLED_OR_ENCORED
	OP_FLEE
	OP_IF_RANDOM_SAFARI_FLEE
	OP_WATCH
	OP_GET_HOLD_EFFECT
	OP_GET_GENDER
	OP_IS_FIRST_TURN_FOR
	OP_GET_STOCKPILE_COUNT
	OP_IS_DOUBLE_BATTLE
	OP_GET_USED_HELD_ITEM
	OP_GET_MOVE_TYPE_FROM_RESULT
	OP_GET_MOVE_POWER_FROM_RESULT
	OP_GET_MOVE_EFFECT_FROM_RESULT
	OP_GET_PROTECT_COUNT
	OP_NOP_52
	OP_NOP_53
	OP_NOP_54
	OP_NOP_55
	OP_NOP_56
	OP_NOP_57
	OP_CALL
	OP_GOTO
	OP_END
	OP_IF_LEVEL_COND
	OP_IF_TARGET_TAUNTED
	OP_IF_TARGET_NOT_TAUNTED
	OP_IF_TARGET_IS_ALLY
	OP_IS_OF_TYPE
	OP_CHECK_ABILITY
	OP_IF_FLASH_FIRED
	OP_IF_HOLDS_ITEM
	OP_COUNT
)

// Operand layout letters. Everything but 'b' and 'h' takes four little-endian bytes.
//
//	b  byte
//	h  16-bit word
//	w  32-bit value
//	p  address of a byte to compare against
//	l  address of a byte list terminated by 0xFF
//	L  address of a 16-bit list terminated by 0xFFFF
//	j  jump target, always last
type opcodeInfo struct {
	name     string
	operands string
}

var opcodeTable = [OP_COUNT]opcodeInfo{
	{"if_random_less_than", "bj"},
	{"if_random_greater_than", "bj"},
	{"if_random_equal", "bj"},
	{"if_random_not_equal", "bj"},
	{"score", "b"},
	{"if_hp_less_than", "bbj"},
	{"if_hp_more_than", "bbj"},
	{"if_hp_equal", "bbj"},
	{"if_hp_not_equal", "bbj"},
	{"if_status", "bwj"},
	{"if_not_status", "bwj"},
	{"if_status2", "bwj"},
	{"if_not_status2", "bwj"},
	{"if_status3", "bwj"},
	{"if_not_status3", "bwj"},
	{"if_side_affecting", "bwj"},
	{"if_not_side_affecting", "bwj"},
	{"if_less_than", "bj"},
	{"if_more_than", "bj"},
	{"if_equal", "bj"},
	{"if_not_equal", "bj"},
	{"if_less_than_ptr", "pj"},
	{"if_more_than_ptr", "pj"},
	{"if_equal_ptr", "pj"},
	{"if_not_equal_ptr", "pj"},
	{"if_move", "hj"},
	{"if_not_move", "hj"},
	{"if_in_bytes", "lj"},
	{"if_not_in_bytes", "lj"},
	{"if_in_hwords", "Lj"},
	{"if_not_in_hwords", "Lj"},
	{"if_user_has_attacking_move", "j"},
	{"if_user_has_no_attacking_moves", "j"},
	{"get_turn_count", ""},
	{"get_type", "b"},
	{"get_considered_move_power", ""},
	{"get_how_powerful_move_is", ""},
	{"get_last_used_battler_move", "b"},
	{"if_equal_", "bj"},
	{"if_not_equal_", "bj"},
	{"if_user_goes", "bj"},
	{"if_user_doesnt_go", "bj"},
	{"nop_2A", ""},
	{"nop_2B", ""},
	{"count_usable_party_mons", "b"},
	{"get_considered_move", ""},
	{"get_considered_move_effect", ""},
	{"get_ability", "b"},
	{"get_highest_type_effectiveness", ""},
	{"if_type_effectiveness", "bj"},
	{"nop_32", ""},
	{"nop_33", ""},
	{"if_status_in_party", "bwj"},
	{"if_status_not_in_party", "bwj"},
	{"get_weather", ""},
	{"if_effect", "bj"},
	{"if_not_effect", "bj"},
	{"if_stat_level_less_than", "bbbj"},
	{"if_stat_level_more_than", "bbbj"},
	{"if_stat_level_equal", "bbbj"},
	{"if_stat_level_not_equal", "bbbj"},
	{"if_can_faint", "j"},
	{"if_cant_faint", "j"},
	{"if_has_move", "bhj"},
	{"if_doesnt_have_move", "bhj"},
	{"if_has_move_with_effect", "bbj"},
	{"if_doesnt_have_move_with_effect", "bbj"},
	{"if_any_move_disabled_or_encored", "bbj"},
	{"if_curr_move_disabled_or_encored", "bj"},
	{"flee", ""},
	{"if_random_safari_flee", "j"},
	{"watch", ""},
	{"get_hold_effect", "b"},
	{"get_gender", "b"},
	{"is_first_turn_for", "b"},
	{"get_stockpile_count", "b"},
	{"is_double_battle", ""},
	{"get_used_held_item", "b"},
	{"get_move_type_from_result", ""},
	{"get_move_power_from_result", ""},
	{"get_move_effect_from_result", ""},
	{"get_protect_count", "b"},
	{"nop_52", ""},
	{"nop_53", ""},
	{"nop_54", ""},
	{"nop_55", ""},
	{"nop_56", ""},
	{"nop_57", ""},
	{"call", "j"},
	{"goto", "j"},
	{"end", ""},
	{"if_level_cond", "bj"},
	{"if_target_taunted", "j"},
	{"if_target_not_taunted", "j"},
	{"if_target_is_ally", "j"},
	{"is_of_type", "bb"},
	{"check_ability", "bb"},
	{"if_flash_fired", "bj"},
	{"if_holds_item", "bhj"},
}

var opcodesByName = func() map[string]Opcode {
	byName := make(map[string]Opcode, OP_COUNT)
	for i, info := range opcodeTable {
		byName[info.name] = Opcode(i)
	}

	return byName
}()

func (o Opcode) Valid() bool {
	return o < OP_COUNT
}

func (o Opcode) String() string {
	if !o.Valid() {
		return fmt.Sprintf("unknown_%02X", uint8(o))
	}

	return opcodeTable[o].name
}

func (o Opcode) operands() string {
	if !o.Valid() {
		return ""
	}

	return opcodeTable[o].operands
}

// Jumps reports whether the last operand is a jump target
func (o Opcode) Jumps() bool {
	ops := o.operands()
	return len(ops) > 0 && ops[len(ops)-1] == 'j'
}

// FallsThrough is false for opcodes after which execution never reaches the next instruction
func (o Opcode) FallsThrough() bool {
	switch o {
	case OP_GOTO, OP_END, OP_FLEE, OP_WATCH:
		return false
	}

	return o.Valid()
}

// Size is the encoded length of the instruction in bytes
func (o Opcode) Size() int {
	size := 1
	for _, kind := range o.operands() {
		size += operandSize(kind)
	}

	return size
}

func operandSize(kind rune) int {
	switch kind {
	case 'b':
		return 1
	case 'h':
		return 2
	}

	return 4
}

func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByName[name]
	return op, ok
}

// macros expand one source line into one or more real instructions
var macros = map[string]func(args []string) ([][]string, error){
	"get_curr_move_type":   fixedArgMacro("get_type", "AI_TYPE_MOVE"),
	"get_user_type1":       fixedArgMacro("get_type", "AI_TYPE1_USER"),
	"get_user_type2":       fixedArgMacro("get_type", "AI_TYPE2_USER"),
	"get_target_type1":     fixedArgMacro("get_type", "AI_TYPE1_TARGET"),
	"get_target_type2":     fixedArgMacro("get_type", "AI_TYPE2_TARGET"),
	"if_ability":           compareMacro("check_ability", 2, "1"),
	"if_no_ability":        compareMacro("check_ability", 2, "0"),
	"if_type":              compareMacro("is_of_type", 2, "1"),
	"if_no_type":           compareMacro("is_of_type", 2, "0"),
	"if_double_battle":     compareMacro("is_double_battle", 0, "1"),
	"if_not_double_battle": compareMacro("is_double_battle", 0, "0"),
	"if_target_faster": func(args []string) ([][]string, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("if_target_faster takes 1 argument, got %d", len(args))
		}
		return [][]string{{"if_user_goes", "1", args[0]}}, nil
	},
	"if_user_faster": func(args []string) ([][]string, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("if_user_faster takes 1 argument, got %d", len(args))
		}
		return [][]string{{"if_user_goes", "0", args[0]}}, nil
	},
	"if_any_move_disabled": func(args []string) ([][]string, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("if_any_move_disabled takes 2 arguments, got %d", len(args))
		}
		return [][]string{{"if_any_move_disabled_or_encored", args[0], "0", args[1]}}, nil
	},
	"if_any_move_encored": func(args []string) ([][]string, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("if_any_move_encored takes 2 arguments, got %d", len(args))
		}
		return [][]string{{"if_any_move_disabled_or_encored", args[0], "1", args[1]}}, nil
	},
}

func fixedArgMacro(opName string, arg string) func(args []string) ([][]string, error) {
	return func(args []string) ([][]string, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no arguments, got %d", opName, len(args))
		}
		return [][]string{{opName, arg}}, nil
	}
}

// compareMacro runs a producer with the leading arguments, then jumps when the result equals want
func compareMacro(opName string, producerArgs int, want string) func(args []string) ([][]string, error) {
	return func(args []string) ([][]string, error) {
		if len(args) != producerArgs+1 {
			return nil, fmt.Errorf("%s macro takes %d arguments, got %d", opName, producerArgs+1, len(args))
		}

		producer := append([]string{opName}, args[:producerArgs]...)
		return [][]string{producer, {"if_equal", want, args[producerArgs]}}, nil
	}
}
