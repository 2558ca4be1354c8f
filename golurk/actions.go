package golurk

import (
	"fmt"

	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

// Integer action encoding used by hosts: move slots, then party switches, then struggle
const (
	ACTION_MOVE_FIRST   = 0
	ACTION_SWITCH_FIRST = ACTION_MOVE_FIRST + MAX_MOVES
	ACTION_STRUGGLE     = ACTION_SWITCH_FIRST + MAX_PARTY_SIZE
	ACTION_COUNT        = ACTION_STRUGGLE + 1
)

type Action interface {
	GetCtx() ActionCtx
}

type ActionCtx struct {
	PlayerID int
}

func NewActionCtx(playerID int) ActionCtx {
	return ActionCtx{PlayerID: playerID}
}

// AttackAction uses the move in slot MoveIndex
type AttackAction struct {
	Ctx ActionCtx

	MoveIndex int
}

func NewAttackAction(playerID int, moveIndex int) AttackAction {
	return AttackAction{Ctx: NewActionCtx(playerID), MoveIndex: moveIndex}
}

func (a AttackAction) GetCtx() ActionCtx {
	return a.Ctx
}

type SwitchAction struct {
	Ctx ActionCtx

	SwitchIndex int
}

func NewSwitchAction(playerID int, switchIndex int) SwitchAction {
	return SwitchAction{Ctx: NewActionCtx(playerID), SwitchIndex: switchIndex}
}

func (a SwitchAction) GetCtx() ActionCtx {
	return a.Ctx
}

// StruggleAction is forced when no move slot is usable
type StruggleAction struct {
	Ctx ActionCtx
}

func NewStruggleAction(playerID int) StruggleAction {
	return StruggleAction{Ctx: NewActionCtx(playerID)}
}

func (a StruggleAction) GetCtx() ActionCtx {
	return a.Ctx
}

// ActionIndex encodes an action, or returns -1 for action types it does not know
func ActionIndex(action Action) int {
	switch a := action.(type) {
	case AttackAction:
		return ACTION_MOVE_FIRST + a.MoveIndex
	case SwitchAction:
		return ACTION_SWITCH_FIRST + a.SwitchIndex
	case StruggleAction:
		return ACTION_STRUGGLE
	}

	return -1
}

func ActionFromIndex(playerID int, index int) (Action, error) {
	switch {
	case index >= ACTION_MOVE_FIRST && index < ACTION_SWITCH_FIRST:
		return NewAttackAction(playerID, index-ACTION_MOVE_FIRST), nil
	case index >= ACTION_SWITCH_FIRST && index < ACTION_STRUGGLE:
		return NewSwitchAction(playerID, index-ACTION_SWITCH_FIRST), nil
	case index == ACTION_STRUGGLE:
		return NewStruggleAction(playerID), nil
	}

	return nil, fmt.Errorf("action index %d out of range [0, %d): %w", index, ACTION_COUNT, ErrIllegalAction)
}

// LegalActions lists every usable move slot followed by a switch to each living benched party member.
// A side with no usable move can only struggle.
func LegalActions(state *BattleState, side int) []Action {
	if !validSide(side) {
		return nil
	}

	active := state.ActivePokemon(side)
	actions := make([]Action, 0, ACTION_COUNT)

	for i := range MAX_MOVES {
		if active.MoveUsable(i) {
			actions = append(actions, NewAttackAction(side, i))
		}
	}

	if len(actions) == 0 {
		return append(actions, NewStruggleAction(side))
	}

	for _, partyIndex := range state.AliveBenchIndexes(side) {
		actions = append(actions, NewSwitchAction(side, partyIndex))
	}

	return actions
}

// IsLegal checks an action against LegalActions for its own side
func IsLegal(state *BattleState, side int, action Action) bool {
	if action == nil || action.GetCtx().PlayerID != side {
		return false
	}

	index := ActionIndex(action)
	return lo.ContainsBy(LegalActions(state, side), func(legal Action) bool {
		return ActionIndex(legal) == index
	})
}

// actionMove returns the move an action will use, MOVE_NONE for switches
func actionMove(state *BattleState, action Action) uint16 {
	switch a := action.(type) {
	case AttackAction:
		return state.ActivePokemon(a.Ctx.PlayerID).Moves[a.MoveIndex]
	case StruggleAction:
		return data.MOVE_STRUGGLE
	}

	return data.MOVE_NONE
}

func actionPriority(state *BattleState, action Action) int {
	if _, ok := action.(SwitchAction); ok {
		return SWITCH_PRIORITY
	}

	return data.GlobalData.GetMove(actionMove(state, action)).Priority
}
