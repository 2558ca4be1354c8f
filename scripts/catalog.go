package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nathanieltooley/pokefactory/factory"
	"github.com/nathanieltooley/pokefactory/golurk/data"
	"github.com/samber/lo"
)

func printCatalog(w io.Writer) {
	for id := range data.GlobalData.FrontierMonCount() {
		set := data.GlobalData.GetFrontierMon(uint16(id))
		species := data.GlobalData.GetSpecies(set.Species)

		moves := lo.FilterMap(set.Moves[:], func(move uint16, _ int) (string, bool) {
			return data.DisplayName(data.GlobalData.GetMove(move).Name), move != data.MOVE_NONE
		})

		fmt.Fprintf(w, "%3d  %-12s %-8s %-8s @ %-14s %-8s %v\n",
			set.ID,
			data.DisplayName(species.Name),
			species.Type1,
			species.Type2,
			data.DisplayName(data.GlobalData.GetItem(set.Item).Name),
			set.Nature,
			strings.Join(moves, ", "),
		)
	}
}

// validateCatalog checks every set against the static tables and the challenge ranges
func validateCatalog() []string {
	var problems []string

	for id := range data.GlobalData.FrontierMonCount() {
		set := data.GlobalData.GetFrontierMon(uint16(id))

		if int(set.ID) != id {
			problems = append(problems, fmt.Sprintf("set %d is stored with id %d", id, set.ID))
		}
		if data.GlobalData.GetSpecies(set.Species).IsPlaceholder() {
			problems = append(problems, fmt.Sprintf("set %d has no species", id))
		}
		if set.Moves[0] == data.MOVE_NONE {
			problems = append(problems, fmt.Sprintf("set %d has no moves", id))
		}
		if dupes := lo.FindDuplicates(lo.Without(set.Moves[:], data.MOVE_NONE)); len(dupes) > 0 {
			problems = append(problems, fmt.Sprintf("set %d repeats moves %v", id, dupes))
		}
		if set.EvSpread == 0 {
			problems = append(problems, fmt.Sprintf("set %d has an empty ev spread", id))
		}
	}

	for challenge := range factory.MAX_CHALLENGE + 1 {
		for _, open := range []bool{false, true} {
			_, end := factory.ChallengeRange(challenge, open)
			if int(end) >= data.GlobalData.FrontierMonCount() {
				problems = append(problems, fmt.Sprintf("challenge %d (open %t) reaches past the catalog", challenge, open))
			}
		}
	}

	return problems
}
