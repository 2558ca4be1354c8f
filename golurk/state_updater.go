package golurk

import (
	"cmp"
	"reflect"

	"github.com/nathanieltooley/pokefactory/golurk/data"
)

const (
	RESULT_RESOLVED = iota + 1
	RESULT_GAMEOVER
)

// TurnResult describes a resolved turn. Kind is RESULT_GAMEOVER when the turn ended the battle.
type TurnResult struct {
	Kind   int
	Winner int
	// side that acted first
	First  int
	Events []TurnEvent
}

// ProcessTurn resolves one full turn. actions is indexed by side and both must already be legal.
//
// The faster action is resolved first. The second is skipped when the battle is already over or its actor fainted.
// End of turn effects and fainted replacements only run while the battle continues. The turn counter always advances.
func ProcessTurn(state *BattleState, actions [2]Action) TurnResult {
	events := make([]TurnEvent, 0, 8)

	stateLogger().Info("turn start", "turn", state.Turn)
	for _, action := range actions {
		stateLogger().V(1).Info("player action",
			"player_id", action.GetCtx().PlayerID,
			"action_name", reflect.TypeOf(action).Name(),
			"action_index", ActionIndex(action),
		)
	}

	first := turnOrder(state, actions)
	second := OtherSide(first)

	events = resolveAction(state, actions[first], events)

	if !state.IsTerminal() && state.ActivePokemon(second).Alive() {
		events = resolveAction(state, actions[second], events)
	} else {
		stateLogger().V(1).Info("second action skipped", "side", second)
	}

	if !state.IsTerminal() {
		events = endOfTurn(state, events)
	}

	if !state.IsTerminal() {
		events = replaceFainted(state, events)
	}

	state.Turn++

	result := TurnResult{
		Kind:   RESULT_RESOLVED,
		Winner: state.Winner(),
		First:  first,
		Events: events,
	}
	if result.Winner != NO_WINNER {
		result.Kind = RESULT_GAMEOVER
		stateLogger().Info("battle over", "winner", result.Winner, "turn", state.Turn)
	}

	return result
}

// turnOrder returns the side that acts first: higher priority, then higher effective speed,
// then a coin flip from the battle RNG where 0 favors the player
func turnOrder(state *BattleState, actions [2]Action) int {
	priorityComp := cmp.Compare(actionPriority(state, actions[PLAYER_SIDE]), actionPriority(state, actions[OPPONENT_SIDE]))
	if priorityComp > 0 {
		return PLAYER_SIDE
	} else if priorityComp < 0 {
		return OPPONENT_SIDE
	}

	playerSpeed := state.EffectiveSpeed(PLAYER_SIDE)
	opponentSpeed := state.EffectiveSpeed(OPPONENT_SIDE)

	stateLogger().V(2).Info("speed check", "player_speed", playerSpeed, "opponent_speed", opponentSpeed)

	speedComp := cmp.Compare(playerSpeed, opponentSpeed)
	if speedComp > 0 {
		return PLAYER_SIDE
	} else if speedComp < 0 {
		return OPPONENT_SIDE
	}

	if state.Rng.Range(2) == 0 {
		return PLAYER_SIDE
	}

	return OPPONENT_SIDE
}

func resolveAction(state *BattleState, action Action, events []TurnEvent) []TurnEvent {
	side := action.GetCtx().PlayerID

	switch a := action.(type) {
	case SwitchAction:
		switchIn(state, side, a.SwitchIndex)
		events = append(events, TurnEvent{Kind: EVENT_SWITCH, Side: side, Amount: a.SwitchIndex})
	case AttackAction, StruggleAction:
		events = executeMove(state, side, actionMove(state, action), events)
	default:
		stateLogger().Info("unknown action type ignored", "action_name", reflect.TypeOf(action).Name())
	}

	return events
}

// executeMove spends PP, rolls accuracy, applies damage and recoil
func executeMove(state *BattleState, side int, moveID uint16, events []TurnEvent) []TurnEvent {
	attacker := state.ActivePokemon(side)
	defenderSide := OtherSide(side)
	defender := state.ActivePokemon(defenderSide)
	move := data.GlobalData.GetMove(moveID)

	for i, id := range attacker.Moves {
		if id == moveID && attacker.PP[i] > 0 {
			attacker.PP[i]--
			break
		}
	}
	state.Active[side].LastMove = moveID

	events = append(events, TurnEvent{Kind: EVENT_MOVE, Side: side, Move: moveID})
	stateLogger().V(1).Info("move used", "pokemon_name", attacker.Name(), "move", move.Name)

	if !moveHits(state, side, move) {
		stateLogger().V(1).Info("move missed", "pokemon_name", attacker.Name(), "move", move.Name)
		return append(events, TurnEvent{Kind: EVENT_MISS, Side: side, Move: moveID})
	}

	if move.Power == 0 {
		return events
	}

	damage := Damage(state, side, move)
	if damage == 0 {
		return append(events, TurnEvent{Kind: EVENT_NO_EFFECT, Side: defenderSide, Move: moveID})
	}

	defender.Damage(damage)
	events = append(events, TurnEvent{Kind: EVENT_DAMAGE, Side: defenderSide, Move: moveID, Amount: damage})

	if !defender.Alive() {
		stateLogger().V(1).Info("pokemon fainted", "pokemon_name", defender.Name())
		events = append(events, TurnEvent{Kind: EVENT_FAINT, Side: defenderSide})
	}

	if move.IsRecoil() {
		recoil := max(1, damage/4)
		attacker.Damage(recoil)
		events = append(events, TurnEvent{Kind: EVENT_RECOIL, Side: side, Move: moveID, Amount: recoil})

		if !attacker.Alive() {
			events = append(events, TurnEvent{Kind: EVENT_FAINT, Side: side})
		}
	}

	return events
}
