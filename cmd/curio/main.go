package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/app"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/config"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var topK int
	var explain bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/curio/config.yaml if not provided)")
	flag.IntVar(&topK, "k", 0, "Number of courses to retrieve (0 uses the configured default)")
	flag.BoolVar(&explain, "explain", false, "Generate a per-course relevance explanation")
	flag.Parse()
	if len(flag.Args()) == 0 {
		fmt.Println(`Usage: curio [--config=config.yaml] [--k=5] [--explain] "I want to learn about machine learning"`)
		os.Exit(1)
	}
	goal := strings.Join(flag.Args(), " ")

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if explain {
		cfg.Pipeline.Explain = true
	}
	if topK <= 0 {
		topK = cfg.Pipeline.DefaultTopK
	}

	components, err := app.Build(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build components")
	}
	defer components.Close()

	result, err := components.Pipeline.Run(context.Background(), goal, topK)
	if err != nil {
		log.Fatal().Err(err).Stringer("stage", result.StageReached).Msg("query failed")
	}

	fmt.Println(result.Recommendation)
	if len(result.Matches) > 0 {
		fmt.Println()
		color.Cyan("Matched courses:")
		for _, match := range result.Matches {
			color.Cyan("  [%s] score=%.3f  %s", match.Course.Code, match.Score, match.Course.Description)
			if match.Explanation != "" {
				fmt.Printf("    %s\n", match.Explanation)
			}
		}
	}
}
