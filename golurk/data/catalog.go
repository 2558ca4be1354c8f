package data

// EV spread bits used by FrontierMon.EvSpread
const (
	EV_SPREAD_HP        = 0x01
	EV_SPREAD_ATTACK    = 0x02
	EV_SPREAD_DEFENSE   = 0x04
	EV_SPREAD_SPEED     = 0x08
	EV_SPREAD_SPATTACK  = 0x10
	EV_SPREAD_SPDEFENSE = 0x20
)

// FrontierMon is one pre-built rental set: species, moves, held item, EV spread and nature
type FrontierMon struct {
	ID       uint16
	Species  uint16
	Moves    [4]uint16
	Item     uint16
	EvSpread uint8
	Nature   Nature
}

// EVsFromSpread distributes 510 EVs evenly between the flagged stats. One or two flagged stats get 255 each.
// The returned array follows the STAT_ order, which is also the bit order.
func EVsFromSpread(spread uint8) [STAT_COUNT]int {
	var evs [STAT_COUNT]int

	count := 0
	for i := range STAT_COUNT {
		if spread&(1<<i) != 0 {
			count++
		}
	}

	if count == 0 {
		return evs
	}

	perStat := 255
	if count > 2 {
		perStat = 510 / count
	}

	for i := range STAT_COUNT {
		if spread&(1<<i) != 0 {
			evs[i] = perStat
		}
	}

	return evs
}
