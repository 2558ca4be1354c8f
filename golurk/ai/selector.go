package ai

import (
	"embed"
	"io/fs"
	"slices"

	"github.com/nathanieltooley/pokefactory/errorutils"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/samber/lo"
)

//go:embed scripts/*.s
var scriptFiles embed.FS

// passOrder is the order the logic ids are run in for every decision
var passOrder = [LOGIC_COUNT]int{
	LOGIC_CHECK_BAD_MOVE,
	LOGIC_CHECK_VIABILITY,
	LOGIC_TRY_TO_FAINT,
	LOGIC_SETUP_FIRST_TURN,
}

// DefaultSources returns the bundled scripts in file name order
func DefaultSources() ([]string, error) {
	names, err := fs.Glob(scriptFiles, "scripts/*.s")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)

	sources := make([]string, 0, len(names))
	for _, name := range names {
		b, err := scriptFiles.ReadFile(name)
		if err != nil {
			return nil, err
		}

		sources = append(sources, string(b))
	}

	return sources, nil
}

// DefaultScript assembles and decodes the bundled scripts
func DefaultScript() (*Script, error) {
	sources, err := DefaultSources()
	if err != nil {
		return nil, err
	}

	return LoadScript(sources...)
}

// Selector picks moves by running the decision scripts. It keeps no state between calls, so one
// Selector can serve many engines at once.
type Selector struct {
	vm *VM
}

func NewSelector(script *Script) *Selector {
	return &Selector{vm: NewVM(script)}
}

// NewDefaultSelector uses the bundled scripts. They are part of the binary, so failing to load them is a bug.
func NewDefaultSelector() *Selector {
	return NewSelector(errorutils.Must(DefaultScript()))
}

// NewEngine is a golurk.Engine with the opponent driven by the default scripts
func NewEngine() *golurk.Engine {
	return golurk.NewEngine(NewDefaultSelector())
}

// Evaluate runs every pass over the still viable slots and returns the final scores
func (s *Selector) Evaluate(state *golurk.BattleState, side int) Decision {
	decision := NewDecision(state, side)

	for _, logic := range passOrder {
		for slot := range golurk.MAX_MOVES {
			if decision.Scores[slot] <= 0 {
				continue
			}

			decision.Slot = slot
			s.vm.Run(logic, state, side, &decision)
		}
	}

	return decision
}

// ChooseAction returns a move for side. Ties at the top score are broken with the battle RNG,
// and a side left with no positive score struggles.
func (s *Selector) ChooseAction(state *golurk.BattleState, side int) golurk.Action {
	if !state.ActivePokemon(side).HasUsableMove() {
		return golurk.NewStruggleAction(side)
	}

	decision := s.Evaluate(state, side)

	best := lo.Max(decision.Scores[:])
	if best <= 0 {
		aiLogger().V(1).Info("no move kept a positive score, struggling", "side", side)
		return golurk.NewStruggleAction(side)
	}

	tied := lo.Filter(lo.Range(golurk.MAX_MOVES), func(slot int, _ int) bool {
		return decision.Scores[slot] == best
	})

	choice := tied[0]
	if len(tied) > 1 {
		choice = tied[state.Rng.Range(len(tied))]
	}

	aiLogger().V(1).Info("chose move", "side", side, "slot", choice, "scores", decision.Scores, "ties", len(tied))
	return golurk.NewAttackAction(side, choice)
}
