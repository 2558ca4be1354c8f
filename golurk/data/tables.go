package data

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/nathanieltooley/pokefactory/errorutils"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed tables/*.csv
var tableFiles embed.FS

// GlobalData holds every static table. It is filled once at init and never mutated afterwards,
// so concurrent readers are safe.
var GlobalData = dataDb{}

type dataDb struct {
	species      map[uint16]Species
	speciesOrder []uint16
	moves        []Move
	items        map[uint16]Item
	frontierMons []FrontierMon
}

func init() {
	GlobalData = errorutils.Must(LoadTables(tableFiles))
}

// LoadTables parses the species, move, item and frontier tables out of files.
// The first three are independent and are read concurrently.
func LoadTables(files fs.FS) (dataDb, error) {
	db := dataDb{}

	var wg sync.WaitGroup
	var speciesErr, movesErr, itemsErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		db.species, db.speciesOrder, speciesErr = loadSpecies(mustRead(files, "tables/species.csv"))
	}()
	go func() {
		defer wg.Done()
		db.moves, movesErr = loadMoves(mustRead(files, "tables/moves.csv"))
	}()
	go func() {
		defer wg.Done()
		db.items, itemsErr = loadItems(mustRead(files, "tables/items.csv"))
	}()
	wg.Wait()

	for _, err := range []error{speciesErr, movesErr, itemsErr} {
		if err != nil {
			return db, err
		}
	}

	// frontier sets refer to the other tables by name
	frontier, err := loadFrontierMons(mustRead(files, "tables/frontier_mons.csv"), db)
	if err != nil {
		return db, err
	}
	db.frontierMons = frontier

	return db, nil
}

func mustRead(files fs.FS, name string) []byte {
	return errorutils.Must(fs.ReadFile(files, name))
}

func readRows(fileBytes []byte, columns int) ([][]string, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.FieldsPerRecord = columns

	// header
	if _, err := csvReader.Read(); err != nil {
		return nil, err
	}

	return csvReader.ReadAll()
}

func atoi(field string, column string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", column, field, err)
	}

	return v, nil
}

// loadSpecies takes a csv with the columns
// id, name, hp, attack, defense, speed, sp_attack, sp_defense, type1, type2, ability1, ability2, gender_ratio
func loadSpecies(fileBytes []byte) (map[uint16]Species, []uint16, error) {
	rows, err := readRows(fileBytes, 13)
	if err != nil {
		return nil, nil, fmt.Errorf("species table: %w", err)
	}

	species := make(map[uint16]Species, len(rows))
	order := make([]uint16, 0, len(rows))

	for _, row := range rows {
		var s Species

		id, err := atoi(row[0], "species id")
		if err != nil {
			return nil, nil, err
		}
		s.ID = uint16(id)
		s.Name = row[1]

		for i := range STAT_COUNT {
			stat, err := atoi(row[2+i], "base stat")
			if err != nil {
				return nil, nil, err
			}
			s.BaseStats[i] = stat
		}

		if s.Type1, err = ParseType(row[8]); err != nil {
			return nil, nil, err
		}
		if s.Type2, err = ParseType(row[9]); err != nil {
			return nil, nil, err
		}
		if s.Abilities[0], err = ParseAbility(row[10]); err != nil {
			return nil, nil, err
		}
		if s.Abilities[1], err = ParseAbility(row[11]); err != nil {
			return nil, nil, err
		}

		ratio, err := atoi(row[12], "gender ratio")
		if err != nil {
			return nil, nil, err
		}
		s.GenderRatio = uint8(ratio)

		species[s.ID] = s
		order = append(order, s.ID)
	}

	if _, ok := species[0]; !ok {
		return nil, nil, fmt.Errorf("species table is missing the placeholder row 0")
	}

	return species, order, nil
}

// loadMoves takes a csv with the columns
// id, name, power, accuracy, pp, type, effect, effect_chance, priority, physical, contact.
// Ids must be dense and start at 0.
func loadMoves(fileBytes []byte) ([]Move, error) {
	rows, err := readRows(fileBytes, 11)
	if err != nil {
		return nil, fmt.Errorf("move table: %w", err)
	}

	moves := make([]Move, 0, len(rows))

	for i, row := range rows {
		var m Move

		id, err := atoi(row[0], "move id")
		if err != nil {
			return nil, err
		}
		if id != i {
			return nil, fmt.Errorf("move table is not dense: row %d has id %d", i, id)
		}

		m.ID = uint16(id)
		m.Name = row[1]

		ints := make([]int, 0, 3)
		for _, col := range []int{2, 3, 4} {
			v, err := atoi(row[col], "move field")
			if err != nil {
				return nil, err
			}
			ints = append(ints, v)
		}
		m.Power, m.Accuracy, m.PP = ints[0], ints[1], ints[2]

		if m.Type, err = ParseType(row[5]); err != nil {
			return nil, err
		}
		if m.Effect, err = ParseMoveEffect(row[6]); err != nil {
			return nil, err
		}
		if m.EffectChance, err = atoi(row[7], "effect chance"); err != nil {
			return nil, err
		}
		if m.Priority, err = atoi(row[8], "priority"); err != nil {
			return nil, err
		}
		m.Priority = lo.Clamp(m.Priority, MIN_PRIORITY, MAX_PRIORITY)
		m.Physical = row[9] == "1"
		m.Contact = row[10] == "1"

		moves = append(moves, m)
	}

	if len(moves) <= int(MOVE_STRUGGLE) {
		return nil, fmt.Errorf("move table too short: %d rows", len(moves))
	}

	return moves, nil
}

// loadItems takes a csv with the columns id, name, hold_effect, hold_param
func loadItems(fileBytes []byte) (map[uint16]Item, error) {
	rows, err := readRows(fileBytes, 4)
	if err != nil {
		return nil, fmt.Errorf("item table: %w", err)
	}

	items := make(map[uint16]Item, len(rows))
	for _, row := range rows {
		id, err := atoi(row[0], "item id")
		if err != nil {
			return nil, err
		}

		effect, err := ParseHoldEffect(row[2])
		if err != nil {
			return nil, err
		}

		param, err := atoi(row[3], "hold param")
		if err != nil {
			return nil, err
		}

		items[uint16(id)] = Item{ID: uint16(id), Name: row[1], HoldEffect: effect, HoldParam: param}
	}

	return items, nil
}

// loadFrontierMons takes a csv with the columns
// id, species, move1, move2, move3, move4, item, ev_spread, nature
// where species, moves and item are names from the other tables
func loadFrontierMons(fileBytes []byte, db dataDb) ([]FrontierMon, error) {
	rows, err := readRows(fileBytes, 9)
	if err != nil {
		return nil, fmt.Errorf("frontier table: %w", err)
	}

	mons := make([]FrontierMon, 0, len(rows))
	for i, row := range rows {
		var fm FrontierMon

		id, err := atoi(row[0], "frontier id")
		if err != nil {
			return nil, err
		}
		if id != i {
			return nil, fmt.Errorf("frontier table is not dense: row %d has id %d", i, id)
		}
		fm.ID = uint16(id)

		species, ok := db.SpeciesByName(row[1])
		if !ok {
			return nil, fmt.Errorf("frontier mon %d: unknown species %q", id, row[1])
		}
		fm.Species = species.ID

		for slot := range 4 {
			move, ok := db.MoveByName(row[2+slot])
			if !ok {
				return nil, fmt.Errorf("frontier mon %d: unknown move %q", id, row[2+slot])
			}
			fm.Moves[slot] = move.ID
		}

		item, ok := db.ItemByName(row[6])
		if !ok {
			return nil, fmt.Errorf("frontier mon %d: unknown item %q", id, row[6])
		}
		fm.Item = item.ID

		spread, err := strconv.ParseUint(strings.TrimPrefix(row[7], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("frontier mon %d: invalid ev spread %q: %w", id, row[7], err)
		}
		fm.EvSpread = uint8(spread)

		if fm.Nature, err = ParseNature(row[8]); err != nil {
			return nil, err
		}

		mons = append(mons, fm)
	}

	return mons, nil
}

// GetSpecies never fails: unknown ids return the placeholder species
func (db dataDb) GetSpecies(id uint16) Species {
	if s, ok := db.species[id]; ok {
		return s
	}

	return db.species[0]
}

func (db dataDb) SpeciesByName(name string) (Species, bool) {
	for _, id := range db.speciesOrder {
		s := db.species[id]
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}

	return Species{}, false
}

// AllSpecies lists every real species in table order, skipping the placeholder
func (db dataDb) AllSpecies() []Species {
	return lo.FilterMap(db.speciesOrder, func(id uint16, _ int) (Species, bool) {
		return db.species[id], id != 0
	})
}

// GetMove never fails: unknown ids return the MOVE_NONE record
func (db dataDb) GetMove(id uint16) Move {
	if int(id) < len(db.moves) {
		return db.moves[id]
	}

	return db.moves[MOVE_NONE]
}

func (db dataDb) MoveByName(name string) (Move, bool) {
	return lo.Find(db.moves, func(m Move) bool {
		return strings.EqualFold(m.Name, name)
	})
}

func (db dataDb) MoveCount() int {
	return len(db.moves)
}

// GetItem never fails: unknown ids return the empty item
func (db dataDb) GetItem(id uint16) Item {
	if item, ok := db.items[id]; ok {
		return item
	}

	return db.items[ITEM_NONE]
}

func (db dataDb) ItemByName(name string) (Item, bool) {
	for _, item := range db.items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}

	return Item{}, false
}

// AllItems lists every item ordered by id
func (db dataDb) AllItems() []Item {
	items := lo.Values(db.items)
	slices.SortFunc(items, func(a, b Item) int {
		return int(a.ID) - int(b.ID)
	})

	return items
}

// GetFrontierMon never fails: unknown ids return the first set
func (db dataDb) GetFrontierMon(id uint16) FrontierMon {
	if int(id) < len(db.frontierMons) {
		return db.frontierMons[id]
	}

	return db.frontierMons[0]
}

func (db dataDb) FrontierMonCount() int {
	return len(db.frontierMons)
}

// DisplayName turns a table name like "thunder_punch" into "Thunder Punch"
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
