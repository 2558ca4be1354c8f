package data

import "testing"

func TestTypeChart(t *testing.T) {
	cases := []struct {
		name     string
		attack   Type
		defend1  Type
		defend2  Type
		expected int
	}{
		{"fire vs grass", TYPE_FIRE, TYPE_GRASS, TYPE_GRASS, 200},
		{"fire vs water", TYPE_FIRE, TYPE_WATER, TYPE_WATER, 50},
		{"normal vs ghost", TYPE_NORMAL, TYPE_GHOST, TYPE_GHOST, 0},
		{"fighting vs normal", TYPE_FIGHTING, TYPE_NORMAL, TYPE_NORMAL, 200},
		{"electric vs ground", TYPE_ELECTRIC, TYPE_GROUND, TYPE_GROUND, 0},
		{"electric vs water/flying", TYPE_ELECTRIC, TYPE_WATER, TYPE_FLYING, 400},
		{"ground vs fire/flying", TYPE_GROUND, TYPE_FIRE, TYPE_FLYING, 0},
		{"grass vs fire/flying", TYPE_GRASS, TYPE_FIRE, TYPE_FLYING, 25},
	}

	for _, c := range cases {
		got := DualTypeEffectiveness(c.attack, c.defend1, c.defend2)
		if got != c.expected {
			t.Errorf("%s: expected %d, got %d", c.name, c.expected, got)
		}
	}
}

func TestOutOfRangeTypeIsNeutral(t *testing.T) {
	if eff := TypeEffectiveness(Type(200), TYPE_FIRE); eff != EFFECTIVENESS_NORMAL {
		t.Fatalf("expected neutral effectiveness for unknown type, got %d", eff)
	}
}

func TestNatureModifier(t *testing.T) {
	if mod := NatureModifier(NATURE_ADAMANT, STAT_ATTACK); mod != 110 {
		t.Errorf("adamant attack: expected 110, got %d", mod)
	}
	if mod := NatureModifier(NATURE_ADAMANT, STAT_SPATTACK); mod != 90 {
		t.Errorf("adamant sp. attack: expected 90, got %d", mod)
	}
	if mod := NatureModifier(NATURE_TIMID, STAT_SPEED); mod != 110 {
		t.Errorf("timid speed: expected 110, got %d", mod)
	}
	if mod := NatureModifier(NATURE_ADAMANT, STAT_HP); mod != 100 {
		t.Errorf("hp is never modified, got %d", mod)
	}
}

func TestEVsFromSpread(t *testing.T) {
	evs := EVsFromSpread(EV_SPREAD_HP | EV_SPREAD_ATTACK)
	if evs[STAT_HP] != 255 || evs[STAT_ATTACK] != 255 || evs[STAT_DEFENSE] != 0 {
		t.Errorf("two stat spread incorrect: %v", evs)
	}

	evs = EVsFromSpread(EV_SPREAD_HP | EV_SPREAD_DEFENSE | EV_SPREAD_SPDEFENSE)
	if evs[STAT_HP] != 170 || evs[STAT_DEFENSE] != 170 || evs[STAT_SPDEFENSE] != 170 {
		t.Errorf("three stat spread incorrect: %v", evs)
	}

	if evs := EVsFromSpread(0); evs != [STAT_COUNT]int{} {
		t.Errorf("empty spread should be all zero: %v", evs)
	}
}

func TestSentinels(t *testing.T) {
	if s := GlobalData.GetSpecies(9999); !s.IsPlaceholder() {
		t.Errorf("expected placeholder species, got %s", s.Name)
	}
	if m := GlobalData.GetMove(60000); !m.IsNil() {
		t.Errorf("expected MOVE_NONE, got %s", m.Name)
	}
	if item := GlobalData.GetItem(60000); item.ID != ITEM_NONE {
		t.Errorf("expected ITEM_NONE, got %s", item.Name)
	}
	if fm := GlobalData.GetFrontierMon(60000); fm.ID != 0 {
		t.Errorf("expected first frontier set, got %d", fm.ID)
	}
}

func TestTableLookups(t *testing.T) {
	struggle := GlobalData.GetMove(MOVE_STRUGGLE)
	if struggle.Name != "struggle" || struggle.Power != 50 || !struggle.IsRecoil() {
		t.Errorf("struggle record incorrect: %+v", struggle)
	}

	charizard, ok := GlobalData.SpeciesByName("Charizard")
	if !ok {
		t.Fatalf("charizard missing from species table")
	}
	if charizard.Type1 != TYPE_FIRE || charizard.Type2 != TYPE_FLYING {
		t.Errorf("charizard types incorrect: %s/%s", charizard.Type1, charizard.Type2)
	}

	if !GlobalData.GetItem(ITEM_LEFTOVERS).PassiveHeal() {
		t.Errorf("leftovers should heal passively")
	}

	for i := range GlobalData.FrontierMonCount() {
		fm := GlobalData.GetFrontierMon(uint16(i))
		if GlobalData.GetSpecies(fm.Species).IsPlaceholder() {
			t.Errorf("frontier set %d has no species", i)
		}
	}

	if len(GlobalData.AllSpecies()) == 0 {
		t.Errorf("no species loaded")
	}
}

func TestDisplayName(t *testing.T) {
	if name := DisplayName("thunder_punch"); name != "Thunder Punch" {
		t.Fatalf("expected Thunder Punch, got %q", name)
	}
}
