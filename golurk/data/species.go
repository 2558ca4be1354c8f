package data

// Gender ratio codes
const (
	GENDER_RATIO_MALE       = 0
	GENDER_RATIO_FEMALE     = 254
	GENDER_RATIO_GENDERLESS = 255
)

// MAX_SPECIES_ID is the highest national dex number a species record can use
const MAX_SPECIES_ID = 386

// Species is the immutable per-species record. BaseStats follows the STAT_ index order.
type Species struct {
	ID          uint16
	Name        string
	BaseStats   [STAT_COUNT]int
	Type1       Type
	Type2       Type
	Abilities   [2]Ability
	GenderRatio uint8
}

// HasType checks both species types
func (s Species) HasType(t Type) bool {
	return s.Type1 == t || s.Type2 == t
}

// IsPlaceholder is true for the sentinel species returned by out-of-range lookups
func (s Species) IsPlaceholder() bool {
	return s.ID == 0
}
