package data

const (
	MOVE_NONE     uint16 = 0
	MOVE_STRUGGLE uint16 = 165
)

// MAX_MOVE_ID is used to normalize move ids in observations
const MAX_MOVE_ID = 355

const (
	MIN_PRIORITY = -7
	MAX_PRIORITY = 5
)

// Move is the immutable per-move record.
// Accuracy 0 never misses and Power 0 marks a status move.
type Move struct {
	ID           uint16
	Name         string
	Power        int
	Accuracy     int
	PP           int
	Type         Type
	Effect       MoveEffect
	EffectChance int
	Priority     int
	Physical     bool
	Contact      bool
}

func (m Move) IsNil() bool {
	return m.ID == MOVE_NONE
}

// IsRecoil covers the moves that return a quarter of the damage dealt to the user
func (m Move) IsRecoil() bool {
	return m.Effect == EFFECT_RECOIL || m.Effect == EFFECT_DOUBLE_EDGE
}
