package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nathanieltooley/pokefactory/golurk/ai"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	args := os.Args[1:]
	if len(args) < 1 {
		log.Fatal().Msg("Not enough arguments: expected ai-dump or catalog")
	}

	scriptName := args[0]

	switch scriptName {
	case "ai-dump":
		out := io.Writer(os.Stdout)
		if len(args) > 1 {
			f, err := os.Create(args[1])
			if err != nil {
				log.Fatal().Err(err).Msg("Could not create output file")
			}
			defer f.Close()
			out = f
		}

		if err := dumpAi(out); err != nil {
			log.Fatal().Err(err).Msg("Could not dump AI scripts")
		}
	case "catalog":
		printCatalog(os.Stdout)

		problems := validateCatalog()
		for _, problem := range problems {
			log.Warn().Msg(problem)
		}
		if len(problems) > 0 {
			log.Fatal().Int("problems", len(problems)).Msg("Catalog has problems")
		}
		log.Info().Msg("Catalog OK")
	default:
		log.Fatal().Str("script", scriptName).Msg("Unknown script")
	}
}

func dumpAi(w io.Writer) error {
	script, err := ai.DefaultScript()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%d instructions\n", len(script.Instructions)); err != nil {
		return err
	}

	return script.Disassemble(w)
}
