package golurk

import (
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

// ActiveBattler is the switch-resettable overlay for the party member currently out on a side
type ActiveBattler struct {
	PartyIndex int
	StatStages [BATTLE_STAT_COUNT]int

	Confused       bool
	ConfusionTurns int
	Taunted        bool
	TauntTurns     int
	Seeded         bool

	HasSubstitute bool
	SubstituteHP  int

	ProtectUses       int
	ProtectedThisTurn bool

	// Types replaces the species typing while TypesOverridden is set
	Types           [2]data.Type
	TypesOverridden bool

	ToxicCounter   int
	LastMove       uint16
	TurnsActive    int
	DisabledMove   uint16
	DisableTurns   int
	EncoredMove    uint16
	EncoreTurns    int
	StockpileCount int
	FlashFire      bool

	// Extra STATUS2 / STATUS3 bits with no dedicated field
	Volatile2 uint32
	Volatile3 uint32
}

func (a *ActiveBattler) Reset(partyIndex int) {
	*a = ActiveBattler{PartyIndex: partyIndex}
}

func (a ActiveBattler) Stage(stat int) int {
	return a.StatStages[stat]
}

// ChangeStage moves a stage by change, clamped to [-6, 6], and returns the amount actually applied
func (a *ActiveBattler) ChangeStage(stat int, change int) int {
	old := a.StatStages[stat]
	a.StatStages[stat] = lo.Clamp(old+change, MIN_STAT_STAGE, MAX_STAT_STAGE)

	return a.StatStages[stat] - old
}

// Status2 packs the volatile fields into the STATUS2 bit layout
func (a ActiveBattler) Status2() uint32 {
	bits := a.Volatile2

	if a.Confused {
		turns := uint32(lo.Clamp(a.ConfusionTurns, 1, int(STATUS2_CONFUSION)))
		bits = bits&^STATUS2_CONFUSION | turns
	}
	if a.HasSubstitute {
		bits |= STATUS2_SUBSTITUTE
	}

	return bits
}

// Status3 packs the volatile fields into the STATUS3 bit layout
func (a ActiveBattler) Status3() uint32 {
	bits := a.Volatile3

	if a.Seeded {
		bits |= STATUS3_LEECHSEED
	}
	if a.Taunted {
		bits |= STATUS3_TAUNT
	}

	return bits
}

// SideState holds the field conditions of one side
type SideState struct {
	ReflectTurns      int
	LightScreenTurns  int
	SafeguardTurns    int
	MistTurns         int
	SpikesLayers      int
	ToxicSpikesLayers int
	StealthRock       bool
}

// Conditions packs the side state into SIDE_STATUS bits
func (s SideState) Conditions() uint32 {
	var bits uint32

	if s.ReflectTurns > 0 {
		bits |= SIDE_STATUS_REFLECT
	}
	if s.LightScreenTurns > 0 {
		bits |= SIDE_STATUS_LIGHTSCREEN
	}
	if s.StealthRock {
		bits |= SIDE_STATUS_STEALTH_ROCK
	}
	if s.ToxicSpikesLayers > 0 {
		bits |= SIDE_STATUS_TOXIC_SPIKES
	}
	if s.SpikesLayers > 0 {
		bits |= SIDE_STATUS_SPIKES
	}
	if s.SafeguardTurns > 0 {
		bits |= SIDE_STATUS_SAFEGUARD
	}
	if s.MistTurns > 0 {
		bits |= SIDE_STATUS_MIST
	}

	return bits
}

// tick decrements the timed screens
func (s *SideState) tick() {
	s.ReflectTurns = max(0, s.ReflectTurns-1)
	s.LightScreenTurns = max(0, s.LightScreenTurns-1)
	s.SafeguardTurns = max(0, s.SafeguardTurns-1)
	s.MistTurns = max(0, s.MistTurns-1)
}

// BattleState is the whole mutable model of one battle. It holds no pointers or slices,
// so a plain assignment is a deep copy.
type BattleState struct {
	Teams     [2][MAX_PARTY_SIZE]Pokemon
	TeamSizes [2]int
	Active    [2]ActiveBattler
	Sides     [2]SideState

	Weather      int
	WeatherTurns int

	Turn int
	Rng  Rng
}

func validSide(side int) bool {
	return side == PLAYER_SIDE || side == OPPONENT_SIDE
}

func OtherSide(side int) int {
	return 1 - side
}

// ActivePokemon returns the party member currently out on side
func (s *BattleState) ActivePokemon(side int) *Pokemon {
	return &s.Teams[side][s.Active[side].PartyIndex]
}

// Team is a view over the filled party slots of side
func (s *BattleState) Team(side int) []Pokemon {
	return s.Teams[side][:s.TeamSizes[side]]
}

func (s *BattleState) CountRemaining(side int) int {
	return lo.CountBy(s.Team(side), func(p Pokemon) bool {
		return p.Alive()
	})
}

func (s *BattleState) IsTerminal() bool {
	return s.CountRemaining(PLAYER_SIDE) == 0 || s.CountRemaining(OPPONENT_SIDE) == 0
}

// Winner is NO_WINNER while the battle runs. When the player side is wiped out the opponent wins,
// even if both sides fell on the same turn.
func (s *BattleState) Winner() int {
	if !s.IsTerminal() {
		return NO_WINNER
	}

	if s.CountRemaining(PLAYER_SIDE) == 0 {
		return OPPONENT_SIDE
	}

	return PLAYER_SIDE
}

// BattlerTypes returns the typing of the active battler, honoring a type override
func (s *BattleState) BattlerTypes(side int) (data.Type, data.Type) {
	active := s.Active[side]
	if active.TypesOverridden {
		return active.Types[0], active.Types[1]
	}

	base := s.ActivePokemon(side).Base()
	return base.Type1, base.Type2
}

func (s *BattleState) BattlerHasType(side int, t data.Type) bool {
	t1, t2 := s.BattlerTypes(side)
	return t1 == t || t2 == t
}

// EffectiveSpeed is the speed stat after the speed stage
func (s *BattleState) EffectiveSpeed(side int) int {
	return ApplyStatStage(s.ActivePokemon(side).Stats[data.STAT_SPEED], s.Active[side].StatStages[BATTLE_STAT_SPEED])
}

// AliveBenchIndexes lists the party indexes of living members that are not out
func (s *BattleState) AliveBenchIndexes(side int) []int {
	return lo.FilterMap(s.Team(side), func(p Pokemon, i int) (int, bool) {
		return i, p.Alive() && i != s.Active[side].PartyIndex
	})
}
