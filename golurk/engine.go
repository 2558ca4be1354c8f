package golurk

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrBattleOver    = errors.New("battle is over")
	ErrInvalidSide   = errors.New("invalid side")
)

// Policy picks the action for a side the caller does not control
type Policy interface {
	ChooseAction(state *BattleState, side int) Action
}

// FirstLegalPolicy always takes the first legal action. Engines without a policy use it.
type FirstLegalPolicy struct{}

func (FirstLegalPolicy) ChooseAction(state *BattleState, side int) Action {
	return LegalActions(state, side)[0]
}

// StepResult is what a host sees after a turn. Reward is from the player side's point of view.
type StepResult struct {
	Done   bool
	Winner int
	Reward float32
	Events []TurnEvent
}

// Engine owns exactly one BattleState and is not safe for concurrent use.
// Run separate engines for parallel battles.
type Engine struct {
	state  BattleState
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	if policy == nil {
		policy = FirstLegalPolicy{}
	}

	e := &Engine{policy: policy}
	e.Reset(0)

	return e
}

// Reset clears the whole battle, teams included, and reseeds the RNG
func (e *Engine) Reset(seed uint32) {
	e.state = BattleState{Rng: NewRng(seed)}
	stateLogger().V(1).Info("engine reset", "seed", seed)
}

// SetTeam copies up to six members of roster onto side and sends out the first one.
// Members are taken as-is.
func (e *Engine) SetTeam(side int, roster []Pokemon) error {
	if !validSide(side) {
		return fmt.Errorf("set team for side %d: %w", side, ErrInvalidSide)
	}

	count := min(len(roster), MAX_PARTY_SIZE)
	e.state.Teams[side] = [MAX_PARTY_SIZE]Pokemon{}
	copy(e.state.Teams[side][:], roster[:count])
	e.state.TeamSizes[side] = count
	e.state.Active[side].Reset(0)

	return nil
}

func (e *Engine) SetWeather(weather int, turns int) {
	e.state.Weather = weather
	e.state.WeatherTurns = max(0, turns)
}

func (e *Engine) SetPolicy(policy Policy) {
	if policy == nil {
		policy = FirstLegalPolicy{}
	}

	e.policy = policy
}

func (e *Engine) LegalActions(side int) []Action {
	return LegalActions(&e.state, side)
}

// Done reports whether either side has run out of Pokemon
func (e *Engine) Done() bool {
	return e.state.IsTerminal()
}

// State returns a copy, so callers can never reach the engine's own state through it
func (e *Engine) State() BattleState {
	return e.state
}

// Step plays one turn with action for the player side. The opponent's action comes from the policy,
// which is consulted before turn order is decided so that its RNG draws come first.
func (e *Engine) Step(action Action) (StepResult, error) {
	if err := e.validate(PLAYER_SIDE, action); err != nil {
		return StepResult{}, err
	}

	opponentAction := e.policy.ChooseAction(&e.state, OPPONENT_SIDE)
	if !IsLegal(&e.state, OPPONENT_SIDE, opponentAction) && !isPolicyStruggle(opponentAction) {
		// a policy returning garbage must not stall the battle
		stateLogger().Info("policy returned an illegal action, using the first legal one",
			"action_index", ActionIndex(opponentAction))
		opponentAction = FirstLegalPolicy{}.ChooseAction(&e.state, OPPONENT_SIDE)
	}

	return e.turn([2]Action{action, opponentAction}), nil
}

// isPolicyStruggle reports a struggle chosen by the automatic side. A policy may fall back to it even
// while moves are usable, when it rates every move as worthless.
func isPolicyStruggle(action Action) bool {
	struggle, ok := action.(StruggleAction)
	return ok && struggle.Ctx.PlayerID == OPPONENT_SIDE
}

// Turn plays one turn with both actions supplied by the caller
func (e *Engine) Turn(playerAction Action, opponentAction Action) (StepResult, error) {
	if err := e.validate(PLAYER_SIDE, playerAction); err != nil {
		return StepResult{}, err
	}
	if err := e.validate(OPPONENT_SIDE, opponentAction); err != nil {
		return StepResult{}, err
	}

	return e.turn([2]Action{playerAction, opponentAction}), nil
}

// StepIndex is Step with the integer action encoding
func (e *Engine) StepIndex(index int) (StepResult, error) {
	action, err := ActionFromIndex(PLAYER_SIDE, index)
	if err != nil {
		return StepResult{}, err
	}

	return e.Step(action)
}

// LegalActionMask marks every encoded action index that is legal for side
func (e *Engine) LegalActionMask(side int) [ACTION_COUNT]bool {
	var mask [ACTION_COUNT]bool
	lo.ForEach(e.LegalActions(side), func(a Action, _ int) {
		mask[ActionIndex(a)] = true
	})

	return mask
}

func (e *Engine) validate(side int, action Action) error {
	if e.state.IsTerminal() {
		return ErrBattleOver
	}

	if !IsLegal(&e.state, side, action) {
		name := "nil"
		if action != nil {
			name = reflect.TypeOf(action).Name()
		}

		return fmt.Errorf("%s (index %d) for side %d: %w", name, ActionIndex(action), side, ErrIllegalAction)
	}

	return nil
}

func (e *Engine) turn(actions [2]Action) StepResult {
	result := ProcessTurn(&e.state, actions)

	step := StepResult{
		Done:   result.Kind == RESULT_GAMEOVER,
		Winner: result.Winner,
		Events: result.Events,
	}

	if step.Done {
		if step.Winner == PLAYER_SIDE {
			step.Reward = 1
		} else {
			step.Reward = -1
		}
	}

	return step
}
