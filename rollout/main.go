package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/nathanieltooley/pokefactory/global"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/nathanieltooley/pokefactory/golurk/ai"
	"github.com/nathanieltooley/pokefactory/vecenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "rollout.yaml", "path to a YAML config")
	battles := flag.Int("battles", 0, "number of battles (or challenges) to run, overrides the config")
	seed := flag.Uint("seed", 0, "base seed, overrides the config")
	workers := flag.Int("workers", 0, "worker goroutines, overrides the config")
	quiet := flag.Bool("quiet", false, "only log warnings and errors")
	randomSeed := flag.Bool("random-seed", false, "ignore the configured seed and pick one at random")
	mode := flag.String("mode", "battles", "battles: single factory battles, challenges: full 7 battle challenges, random: battles between random teams")
	flag.Parse()

	config, _ := global.GlobalInit(*configPath, true)
	if *quiet {
		global.UpdateLogLevel(zerolog.WarnLevel)
	}
	if *battles > 0 {
		config.Battles = *battles
	}
	if *seed > 0 {
		config.Seed = uint32(*seed)
	}
	if *workers > 0 {
		config.Workers = *workers
	}
	if *randomSeed {
		config.Seed = golurk.CreateRandomSeed()
	}

	log.Info().Interface("config", config).Msg("Starting rollout")

	ctx := context.Background()

	switch *mode {
	case "battles", "random":
		env := vecenv.New(config.Battles, ai.NewDefaultSelector(), config.Workers)
		setup := setupBattles
		if *mode == "random" {
			setup = setupRandomBattles
		}
		if err := setup(env, config); err != nil {
			log.Fatal().Err(err).Msg("Setting up battles failed")
		}

		rng := rand.New(rand.NewPCG(uint64(config.Seed), uint64(config.Seed)+1))
		results, err := env.Rollout(ctx, rng, config.MaxTurns)
		if err != nil {
			log.Fatal().Err(err).Msg("Rollout failed")
		}

		printSummary(summarizeBattles(results))
	case "challenges":
		summary, err := runChallenges(ctx, config)
		if err != nil {
			log.Fatal().Err(err).Msg("Challenges failed")
		}

		printSummary(summary)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}
