package golurk

import (
	"fmt"

	"github.com/nathanieltooley/pokefactory/golurk/data"
)

// Kinds of TurnEvent
const (
	EVENT_SWITCH = iota
	EVENT_MOVE
	EVENT_MISS
	EVENT_DAMAGE
	EVENT_NO_EFFECT
	EVENT_RECOIL
	EVENT_WEATHER_DAMAGE
	EVENT_STATUS_DAMAGE
	EVENT_ITEM_HEAL
	EVENT_WEATHER_END
	EVENT_FAINT
	EVENT_REPLACE
)

// TurnEvent records one thing that happened during a turn. Events are informational only:
// the state has already been changed by the time they are recorded.
type TurnEvent struct {
	Kind   int
	Side   int
	Move   uint16
	Amount int
}

func (e TurnEvent) String() string {
	switch e.Kind {
	case EVENT_SWITCH:
		return fmt.Sprintf("side %d switched to slot %d", e.Side, e.Amount)
	case EVENT_REPLACE:
		return fmt.Sprintf("side %d sent out slot %d", e.Side, e.Amount)
	case EVENT_MOVE:
		return fmt.Sprintf("side %d used %s", e.Side, data.DisplayName(data.GlobalData.GetMove(e.Move).Name))
	case EVENT_MISS:
		return fmt.Sprintf("side %d missed", e.Side)
	case EVENT_DAMAGE:
		return fmt.Sprintf("side %d took %d damage", e.Side, e.Amount)
	case EVENT_NO_EFFECT:
		return fmt.Sprintf("side %d was not affected", e.Side)
	case EVENT_RECOIL:
		return fmt.Sprintf("side %d took %d recoil", e.Side, e.Amount)
	case EVENT_WEATHER_DAMAGE:
		return fmt.Sprintf("side %d is buffeted by the weather for %d", e.Side, e.Amount)
	case EVENT_STATUS_DAMAGE:
		return fmt.Sprintf("side %d is hurt by its status for %d", e.Side, e.Amount)
	case EVENT_ITEM_HEAL:
		return fmt.Sprintf("side %d restored %d HP", e.Side, e.Amount)
	case EVENT_WEATHER_END:
		return "the weather cleared"
	case EVENT_FAINT:
		return fmt.Sprintf("side %d fainted", e.Side)
	}

	return fmt.Sprintf("event(%d)", e.Kind)
}
