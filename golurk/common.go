package golurk

import (
	"github.com/nathanieltooley/pokefactory/golurk/data"
)

// switchIn puts partyIndex out on side with fresh volatile state
func switchIn(state *BattleState, side int, partyIndex int) {
	state.Active[side].Reset(partyIndex)
	stateLogger().V(1).Info("switch in", "side", side, "pokemon_name", state.ActivePokemon(side).Name())
}

// endOfTurn runs the residual effects phase by phase across both sides:
// weather damage, status damage, held item healing, then the weather and screen timers
func endOfTurn(state *BattleState, events []TurnEvent) []TurnEvent {
	for side := range 2 {
		events = weatherDamage(state, side, events)
	}

	for side := range 2 {
		events = statusDamage(state, side, events)
	}

	for side := range 2 {
		events = itemHeal(state, side, events)
	}

	for side := range 2 {
		state.Active[side].TurnsActive++
		state.Active[side].ProtectedThisTurn = false
		state.Sides[side].tick()
	}

	if state.Weather != WEATHER_NONE && state.WeatherTurns > 0 {
		state.WeatherTurns--
		if state.WeatherTurns == 0 {
			stateLogger().V(1).Info("weather ended", "weather", WeatherName(state.Weather))
			state.Weather = WEATHER_NONE
			events = append(events, TurnEvent{Kind: EVENT_WEATHER_END})
		}
	}

	return events
}

func weatherImmune(state *BattleState, side int) bool {
	switch state.Weather {
	case WEATHER_SANDSTORM:
		return state.BattlerHasType(side, data.TYPE_ROCK) ||
			state.BattlerHasType(side, data.TYPE_GROUND) ||
			state.BattlerHasType(side, data.TYPE_STEEL)
	case WEATHER_HAIL:
		return state.BattlerHasType(side, data.TYPE_ICE)
	}

	return true
}

func weatherDamage(state *BattleState, side int, events []TurnEvent) []TurnEvent {
	pokemon := state.ActivePokemon(side)
	if !pokemon.Alive() || weatherImmune(state, side) {
		return events
	}

	dmg := max(1, pokemon.MaxHP/16)
	pokemon.Damage(dmg)
	events = append(events, TurnEvent{Kind: EVENT_WEATHER_DAMAGE, Side: side, Amount: dmg})

	return faintCheck(state, side, events)
}

func statusDamage(state *BattleState, side int, events []TurnEvent) []TurnEvent {
	pokemon := state.ActivePokemon(side)
	if !pokemon.Alive() {
		return events
	}

	var dmg int
	switch pokemon.Status {
	case STATUS_BURN, STATUS_POISON:
		dmg = max(1, pokemon.MaxHP/8)
	case STATUS_TOXIC:
		active := &state.Active[side]
		if active.ToxicCounter < 1 {
			active.ToxicCounter = 1
		}

		dmg = max(1, pokemon.MaxHP/16) * active.ToxicCounter
		active.ToxicCounter = min(active.ToxicCounter+1, MAX_TOXIC_COUNTER)
	default:
		return events
	}

	pokemon.Damage(dmg)
	events = append(events, TurnEvent{Kind: EVENT_STATUS_DAMAGE, Side: side, Amount: dmg})
	stateLogger().V(1).Info("status damage", "pokemon_name", pokemon.Name(), "status", pokemon.Status.String(), "damage", dmg)

	return faintCheck(state, side, events)
}

func itemHeal(state *BattleState, side int, events []TurnEvent) []TurnEvent {
	pokemon := state.ActivePokemon(side)
	if !pokemon.Alive() || pokemon.CurrentHP >= pokemon.MaxHP || !pokemon.Item().PassiveHeal() {
		return events
	}

	before := pokemon.CurrentHP
	pokemon.Heal(max(1, pokemon.MaxHP/16))

	return append(events, TurnEvent{Kind: EVENT_ITEM_HEAL, Side: side, Amount: pokemon.CurrentHP - before})
}

func faintCheck(state *BattleState, side int, events []TurnEvent) []TurnEvent {
	if state.ActivePokemon(side).Alive() {
		return events
	}

	return append(events, TurnEvent{Kind: EVENT_FAINT, Side: side})
}

// replaceFainted sends out the first living party member for any side whose active battler fainted
func replaceFainted(state *BattleState, events []TurnEvent) []TurnEvent {
	for side := range 2 {
		if state.ActivePokemon(side).Alive() {
			continue
		}

		for i, p := range state.Team(side) {
			if p.Alive() {
				switchIn(state, side, i)
				events = append(events, TurnEvent{Kind: EVENT_REPLACE, Side: side, Amount: i})
				break
			}
		}
	}

	return events
}
