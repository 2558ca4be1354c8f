package factory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/ai"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrWrongPhase    = errors.New("wrong phase")
)

// Challenge phases
const (
	PHASE_RENTAL = "rental"
	PHASE_BATTLE = "battle"
	PHASE_SWAP   = "swap"
	PHASE_DONE   = "done"
)

const (
	EVENT_RENT   = "rent"
	EVENT_WIN    = "win"
	EVENT_SWAP   = "swap"
	EVENT_FINISH = "finish"
)

const (
	BATTLES_PER_CHALLENGE = 7

	// C(6, 3) ways to rent three of the six offered sets
	RENTAL_CHOICES = 20
	SWAP_KEEP      = 0
	SWAP_CHOICES   = TEAM_SIZE*TEAM_SIZE + 1
)

// rentalCombos lists every three set combination of the rental pool in lexicographic order
var rentalCombos = func() [][TEAM_SIZE]int {
	combos := make([][TEAM_SIZE]int, 0, RENTAL_CHOICES)
	for a := 0; a < RENTAL_POOL_SIZE; a++ {
		for b := a + 1; b < RENTAL_POOL_SIZE; b++ {
			for c := b + 1; c < RENTAL_POOL_SIZE; c++ {
				combos = append(combos, [TEAM_SIZE]int{a, b, c})
			}
		}
	}

	return combos
}()

var defaultSelector = sync.OnceValue(ai.NewDefaultSelector)

type Options struct {
	Challenge int
	OpenLevel bool
	// Level overrides the level implied by OpenLevel when set
	Level int
	// MaxTurns ends a battle as a loss once it runs this many turns. 0 means no limit.
	MaxTurns int
	// Policy drives the opposing trainer. nil uses the bundled AI scripts.
	Policy golurk.Policy
}

// StepResult is what a host sees after one challenge action
type StepResult struct {
	Phase     string
	Reward    float32
	Done      bool
	Truncated bool
	// Turn holds the battle turn result when the action was a battle action
	Turn *golurk.StepResult
}

// Challenge runs one Battle Factory challenge: rent three sets, then up to seven battles with a chance to swap
// a member for one of the beaten opponent's sets after each win. A single loss ends it.
type Challenge struct {
	ID uuid.UUID

	opts   Options
	seed   uint32
	gen    *Generator
	fsm    *fsm.FSM
	engine *golurk.Engine

	battle int
	wins   int

	rentalPool   []uint16
	playerTeam   []uint16
	opponentTeam []uint16

	// set by the battle entry callback, which cannot return errors itself
	setupErr error
}

func NewChallenge(seed uint32, opts Options) *Challenge {
	if opts.Level == 0 {
		opts.Level = Level(opts.OpenLevel)
	}
	if opts.Policy == nil {
		opts.Policy = defaultSelector()
	}

	c := &Challenge{
		ID:     uuid.New(),
		opts:   opts,
		seed:   seed,
		gen:    NewGenerator(seed),
		engine: golurk.NewEngine(opts.Policy),
	}

	c.fsm = fsm.NewFSM(
		PHASE_RENTAL,
		fsm.Events{
			{Name: EVENT_RENT, Src: []string{PHASE_RENTAL}, Dst: PHASE_BATTLE},
			{Name: EVENT_WIN, Src: []string{PHASE_BATTLE}, Dst: PHASE_SWAP},
			{Name: EVENT_SWAP, Src: []string{PHASE_SWAP}, Dst: PHASE_BATTLE},
			{Name: EVENT_FINISH, Src: []string{PHASE_BATTLE}, Dst: PHASE_DONE},
		},
		fsm.Callbacks{
			"enter_" + PHASE_BATTLE: func(_ context.Context, _ *fsm.Event) {
				if err := c.startBattle(); err != nil {
					log.Error().Err(err).Str("challenge", c.ID.String()).Int("battle", c.battle).Msg("Could not start battle")
					c.setupErr = err
				}
			},
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Debug().Str("challenge", c.ID.String()).Str("from", e.Src).Str("to", e.Dst).Int("battle", c.battle).Msg("Challenge phase change")
			},
		},
	)

	c.rentalPool = c.gen.RentalPool(opts.Challenge, opts.OpenLevel)

	return c
}

func (c *Challenge) Phase() string {
	return c.fsm.Current()
}

func (c *Challenge) Done() bool {
	return c.fsm.Is(PHASE_DONE)
}

// Battle is the zero based number of the current or last battle
func (c *Challenge) Battle() int {
	return c.battle
}

func (c *Challenge) Wins() int {
	return c.wins
}

func (c *Challenge) RentalPool() []uint16 {
	return append([]uint16(nil), c.rentalPool...)
}

func (c *Challenge) PlayerTeam() []uint16 {
	return append([]uint16(nil), c.playerTeam...)
}

func (c *Challenge) OpponentTeam() []uint16 {
	return append([]uint16(nil), c.opponentTeam...)
}

// State is a copy of the current battle
func (c *Challenge) State() golurk.BattleState {
	return c.engine.State()
}

// LegalActions lists the action values Step accepts in the current phase
func (c *Challenge) LegalActions() []int {
	switch c.Phase() {
	case PHASE_RENTAL:
		return lo.Range(RENTAL_CHOICES)
	case PHASE_BATTLE:
		return lo.Map(c.engine.LegalActions(golurk.PLAYER_SIDE), func(a golurk.Action, _ int) int {
			return golurk.ActionIndex(a)
		})
	case PHASE_SWAP:
		actions := []int{SWAP_KEEP}
		for p := range len(c.playerTeam) {
			for o := range len(c.opponentTeam) {
				actions = append(actions, p*TEAM_SIZE+o+1)
			}
		}
		return actions
	}

	return nil
}

// Step applies one action. Its meaning depends on the phase:
// rental picks one of the 20 rental combinations, battle is an encoded battle action,
// and swap is 0 to keep the team or 1-9 to trade player[(a-1)/3] for opponent[(a-1)%3].
func (c *Challenge) Step(ctx context.Context, action int) (StepResult, error) {
	switch c.Phase() {
	case PHASE_RENTAL:
		return c.rent(ctx, action)
	case PHASE_BATTLE:
		return c.fight(ctx, action)
	case PHASE_SWAP:
		return c.swap(ctx, action)
	}

	return StepResult{Phase: c.Phase(), Done: true}, fmt.Errorf("step in phase %s: %w", c.Phase(), ErrWrongPhase)
}

func (c *Challenge) rent(ctx context.Context, action int) (StepResult, error) {
	if action < 0 || action >= RENTAL_CHOICES {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("rental choice %d: %w", action, ErrInvalidChoice)
	}

	combo := rentalCombos[action]
	c.playerTeam = lo.FilterMap(combo[:], func(i int, _ int) (uint16, bool) {
		if i >= len(c.rentalPool) {
			return 0, false
		}
		return c.rentalPool[i], true
	})

	if err := c.fsm.Event(ctx, EVENT_RENT); err != nil {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("renting: %w", err)
	}
	if err := c.takeSetupErr(); err != nil {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("renting: %w", err)
	}

	return StepResult{Phase: c.Phase()}, nil
}

func (c *Challenge) fight(ctx context.Context, action int) (StepResult, error) {
	battleAction, err := golurk.ActionFromIndex(golurk.PLAYER_SIDE, action)
	if err != nil {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("battle %d: %w", c.battle, err)
	}

	turn, err := c.engine.Step(battleAction)
	if err != nil {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("battle %d: %w", c.battle, err)
	}

	result := StepResult{Reward: turn.Reward, Turn: &turn}

	switch {
	case turn.Done && turn.Winner == golurk.PLAYER_SIDE:
		c.wins++
		event := EVENT_WIN
		if c.wins >= BATTLES_PER_CHALLENGE {
			event = EVENT_FINISH
		}

		err = c.fsm.Event(ctx, event)
	case turn.Done:
		err = c.fsm.Event(ctx, EVENT_FINISH)
	case c.opts.MaxTurns > 0 && c.engine.State().Turn >= c.opts.MaxTurns:
		log.Debug().Str("challenge", c.ID.String()).Int("battle", c.battle).Msg("Battle hit the turn limit")
		result.Truncated = true
		err = c.fsm.Event(ctx, EVENT_FINISH)
	}

	if err != nil {
		return result, fmt.Errorf("ending battle %d: %w", c.battle, err)
	}

	result.Phase = c.Phase()
	result.Done = c.Done()
	return result, nil
}

func (c *Challenge) swap(ctx context.Context, action int) (StepResult, error) {
	if !lo.Contains(c.LegalActions(), action) {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("swap choice %d: %w", action, ErrInvalidChoice)
	}

	if action != SWAP_KEEP {
		p := (action - 1) / TEAM_SIZE
		o := (action - 1) % TEAM_SIZE
		c.playerTeam[p] = c.opponentTeam[o]
	}

	c.battle++
	if err := c.fsm.Event(ctx, EVENT_SWAP); err != nil {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("swapping: %w", err)
	}
	if err := c.takeSetupErr(); err != nil {
		return StepResult{Phase: c.Phase()}, fmt.Errorf("swapping: %w", err)
	}

	return StepResult{Phase: c.Phase()}, nil
}

func (c *Challenge) takeSetupErr() error {
	err := c.setupErr
	c.setupErr = nil
	return err
}

// startBattle draws the next opponent and sets up a fresh engine for it
func (c *Challenge) startBattle() error {
	c.opponentTeam = c.gen.OpponentTeam(c.opts.Challenge, c.battle+1, c.opts.OpenLevel, c.playerTeam)

	iv := ChallengeIv(c.opts.Challenge)
	c.engine.Reset(c.seed + uint32(c.battle) + 1)
	if err := c.engine.SetTeam(golurk.PLAYER_SIDE, CreateTeam(c.playerTeam, c.opts.Level, iv)); err != nil {
		return fmt.Errorf("player team: %w", err)
	}
	if err := c.engine.SetTeam(golurk.OPPONENT_SIDE, CreateTeam(c.opponentTeam, c.opts.Level, iv)); err != nil {
		return fmt.Errorf("opponent team: %w", err)
	}

	log.Debug().Str("challenge", c.ID.String()).Int("battle", c.battle).
		Uints16("player", c.playerTeam).Uints16("opponent", c.opponentTeam).Msg("Starting battle")

	return nil
}
