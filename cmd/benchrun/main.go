package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"ataxx-engine/ataxx"
)

// suiteEntry is one position of the perft suite. Expected node counts are
// optional; entries without them are timed but not verified.
type suiteEntry struct {
	Name  string   `mapstructure:"name"`
	FEN   string   `mapstructure:"fen"`
	Nodes []uint64 `mapstructure:"nodes"`
}

func main() {
	cfgPath := flag.String("config", "", "Path to a suite config file (defaults to suites.yaml next to the binary or in the working directory)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	viper.SetDefault("max-depth", 5)
	viper.SetEnvPrefix("ataxx")
	viper.AutomaticEnv()

	if *cfgPath != "" {
		viper.SetConfigFile(*cfgPath)
	} else {
		viper.SetConfigName("suites")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./cmd/benchrun")
	}
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal().Err(err).Msg("reading suite config")
	}

	var suite []suiteEntry
	if err := viper.UnmarshalKey("suite", &suite); err != nil {
		log.Fatal().Err(err).Msg("decoding suite config")
	}
	if len(suite) == 0 {
		log.Fatal().Str("config", viper.ConfigFileUsed()).Msg("suite config lists no positions")
	}
	maxDepth := viper.GetInt("max-depth")

	var totalNodes uint64
	var totalTime time.Duration
	failures := 0

	for _, entry := range suite {
		pos, err := ataxx.ParseFEN(entry.FEN)
		if err != nil {
			log.Error().Err(err).Str("name", entry.Name).Msg("skipping unparseable position")
			failures++
			continue
		}

		for depth := 1; depth <= maxDepth; depth++ {
			start := time.Now()
			nodes := ataxx.Perft(pos, depth)
			elapsed := time.Since(start)
			totalNodes += nodes
			totalTime += elapsed

			ev := log.Info().
				Str("name", entry.Name).
				Int("depth", depth).
				Uint64("nodes", nodes).
				Dur("elapsed", elapsed).
				Float64("nps", float64(nodes)/elapsed.Seconds())
			if depth <= len(entry.Nodes) && entry.Nodes[depth-1] != nodes {
				failures++
				ev.Uint64("expected", entry.Nodes[depth-1]).Msg("PERFT MISMATCH")
				continue
			}
			ev.Msg("perft")
		}
	}

	summary := log.Info().
		Uint64("total_nodes", totalNodes).
		Dur("total_time", totalTime).
		Float64("nps", float64(totalNodes)/totalTime.Seconds())
	if failures > 0 {
		summary.Msg("suite finished")
		log.Fatal().Int("failures", failures).Msg("perft suite failed")
	}
	summary.Msg("perft suite passed")
}
