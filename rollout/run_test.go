package main

import (
	"context"
	"reflect"
	"testing"

	"github.com/nathanieltooley/pokefactory/global"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/vecenv"
)

func testConfig(workers int) global.Config {
	config, _ := global.ParseConfig([]byte("seed: 21\nbattles: 4\nmax_turns: 150\n"))
	config.Workers = workers
	return config
}

func TestSummarizeBattles(t *testing.T) {
	summary := summarizeBattles([]vecenv.RolloutResult{
		{Done: true, Winner: golurk.PLAYER_SIDE, Turns: 4},
		{Done: true, Winner: golurk.OPPONENT_SIDE, Turns: 6},
		{Done: false, Winner: golurk.NO_WINNER, Turns: 10},
	})

	expected := Summary{Runs: 3, Wins: 1, Losses: 1, Unfinished: 1, Turns: 20}
	if !reflect.DeepEqual(summary, expected) {
		t.Fatalf("expected %+v, got %+v", expected, summary)
	}
}

func TestChallengesIgnoreWorkerCount(t *testing.T) {
	global.StopLogging()
	defer global.ContinueLogging()

	one, err := runChallenges(context.Background(), testConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	four, err := runChallenges(context.Background(), testConfig(4))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(one, four) {
		t.Fatalf("worker count changed the outcome: %+v vs %+v", one, four)
	}

	total := 0
	for _, count := range one.WinCounts {
		total += count
	}
	if total != one.Runs || one.Wins+one.Losses+one.Unfinished != one.Runs {
		t.Fatalf("summary does not add up: %+v", one)
	}
}

func TestSetupBattles(t *testing.T) {
	config := testConfig(2)
	env := vecenv.New(config.Battles, nil, config.Workers)
	if err := setupBattles(env, config); err != nil {
		t.Fatal(err)
	}

	for i := range env.Size() {
		state := env.State(i)
		if state.TeamSizes != [2]int{3, 3} {
			t.Fatalf("battle %d: expected 3v3, got %v", i, state.TeamSizes)
		}
		if state.Rng != golurk.NewRng(config.Seed+uint32(i)) {
			t.Fatalf("battle %d should be seeded with seed+%d", i, i)
		}
		if state.ActivePokemon(golurk.PLAYER_SIDE).Level != config.Level {
			t.Fatalf("battle %d: wrong level", i)
		}
	}
}

func TestSetupRandomBattles(t *testing.T) {
	config := testConfig(2)
	a := vecenv.New(config.Battles, nil, config.Workers)
	b := vecenv.New(config.Battles, nil, config.Workers)
	if err := setupRandomBattles(a, config); err != nil {
		t.Fatal(err)
	}
	if err := setupRandomBattles(b, config); err != nil {
		t.Fatal(err)
	}

	for i := range a.Size() {
		state := a.State(i)
		if state.TeamSizes != [2]int{3, 3} {
			t.Fatalf("battle %d: expected 3v3, got %v", i, state.TeamSizes)
		}
		if state.Teams != b.State(i).Teams {
			t.Fatalf("battle %d: random teams should follow the seed", i)
		}
		for _, poke := range state.Team(golurk.PLAYER_SIDE) {
			if poke.Level < config.Level-5 || poke.Level > config.Level+5 {
				t.Fatalf("battle %d: level %d too far from %d", i, poke.Level, config.Level)
			}
		}
	}
}

func TestSetTeamsReportsBadIndex(t *testing.T) {
	env := vecenv.New(1, nil, 1)
	team := golurk.DefaultTeam(50)

	if err := setTeams(env, 0, team, team); err != nil {
		t.Fatalf("valid index: %s", err)
	}
	if err := setTeams(env, 1, team, team); err == nil {
		t.Fatalf("an index past the batch should be reported")
	}
}
