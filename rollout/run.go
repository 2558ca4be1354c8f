package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/nathanieltooley/pokefactory/factory"
	"github.com/nathanieltooley/pokefactory/global"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/vecenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Summary struct {
	Runs       int
	Wins       int
	Losses     int
	Unfinished int
	Turns      int
	// WinCounts[n] is how many challenges ended with n wins. Empty for single battles.
	WinCounts []int
}

// setupBattles gives battle i the first three rental sets and an opponent drawn from seed+i
func setupBattles(env *vecenv.Env, config global.Config) error {
	seeds := lo.Map(lo.Range(env.Size()), func(i int, _ int) uint32 {
		return config.Seed + uint32(i)
	})
	env.Reset(seeds)

	iv := factory.ChallengeIv(config.Challenge)
	for i, seed := range seeds {
		gen := factory.NewGenerator(seed)
		player := gen.RentalPool(config.Challenge, config.OpenLevel)[:factory.TEAM_SIZE]
		opponent := gen.OpponentTeam(config.Challenge, 1, config.OpenLevel, player)

		if err := setTeams(env, i, factory.CreateTeam(player, config.Level, iv), factory.CreateTeam(opponent, config.Level, iv)); err != nil {
			return err
		}
	}

	return nil
}

// setupRandomBattles gives both sides of battle i a random team of three around the configured level
func setupRandomBattles(env *vecenv.Env, config global.Config) error {
	env.Reset(lo.Map(lo.Range(env.Size()), func(i int, _ int) uint32 {
		return config.Seed + uint32(i)
	}))

	for i := range env.Size() {
		rng := rand.New(rand.NewPCG(uint64(config.Seed), uint64(i)))
		low := max(golurk.MIN_LEVEL, config.Level-5)
		high := min(golurk.MAX_LEVEL, config.Level+5)

		player := golurk.RandomTeam(rng, factory.TEAM_SIZE, low, high)
		opponent := golurk.RandomTeam(rng, factory.TEAM_SIZE, low, high)
		if err := setTeams(env, i, player, opponent); err != nil {
			return err
		}
	}

	return nil
}

func setTeams(env *vecenv.Env, i int, player []golurk.Pokemon, opponent []golurk.Pokemon) error {
	if err := env.SetTeam(i, golurk.PLAYER_SIDE, player); err != nil {
		return fmt.Errorf("battle %d player team: %w", i, err)
	}
	if err := env.SetTeam(i, golurk.OPPONENT_SIDE, opponent); err != nil {
		return fmt.Errorf("battle %d opponent team: %w", i, err)
	}

	return nil
}

func summarizeBattles(results []vecenv.RolloutResult) Summary {
	summary := Summary{Runs: len(results)}

	for _, result := range results {
		summary.Turns += result.Turns

		switch {
		case !result.Done:
			summary.Unfinished++
		case result.Winner == golurk.PLAYER_SIDE:
			summary.Wins++
		default:
			summary.Losses++
		}
	}

	return summary
}

type challengeResult struct {
	wins      int
	truncated bool
	turns     int
}

// runChallenges plays config.Battles challenges with random actions. Challenge i uses seed+i for both the
// challenge and its action choices, so the outcome does not depend on scheduling.
func runChallenges(ctx context.Context, config global.Config) (Summary, error) {
	results := make([]challengeResult, config.Battles)

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range config.Battles {
		g.Go(func() error {
			seed := config.Seed + uint32(i)
			result, err := playChallenge(ctx, seed, config)
			if err != nil {
				return fmt.Errorf("challenge %d: %w", i, err)
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Runs: config.Battles, WinCounts: make([]int, factory.BATTLES_PER_CHALLENGE+1)}
	for _, result := range results {
		summary.WinCounts[result.wins]++
		summary.Turns += result.turns

		switch {
		case result.truncated:
			summary.Unfinished++
		case result.wins == factory.BATTLES_PER_CHALLENGE:
			summary.Wins++
		default:
			summary.Losses++
		}
	}

	return summary, nil
}

func playChallenge(ctx context.Context, seed uint32, config global.Config) (challengeResult, error) {
	challenge := factory.NewChallenge(seed, factory.Options{
		Challenge: config.Challenge,
		OpenLevel: config.OpenLevel,
		Level:     config.Level,
		MaxTurns:  config.MaxTurns,
	})
	rng := rand.New(rand.NewPCG(uint64(seed), 0))

	result := challengeResult{}
	for !challenge.Done() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		actions := challenge.LegalActions()
		step, err := challenge.Step(ctx, actions[rng.IntN(len(actions))])
		if err != nil {
			return result, err
		}

		if step.Turn != nil {
			result.turns++
		}
		result.truncated = step.Truncated
	}

	result.wins = challenge.Wins()
	log.Debug().Str("challenge", challenge.ID.String()).Uint32("seed", seed).Int("wins", result.wins).Msg("Challenge finished")

	return result, nil
}

func printSummary(summary Summary) {
	fmt.Printf("runs:       %d\n", summary.Runs)
	fmt.Printf("wins:       %d\n", summary.Wins)
	fmt.Printf("losses:     %d\n", summary.Losses)
	fmt.Printf("unfinished: %d\n", summary.Unfinished)
	if summary.Runs > 0 {
		fmt.Printf("avg turns:  %.1f\n", float64(summary.Turns)/float64(summary.Runs))
	}

	for wins, count := range summary.WinCounts {
		fmt.Printf("  %d wins: %d\n", wins, count)
	}
}
