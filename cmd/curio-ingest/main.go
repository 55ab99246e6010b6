package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/app"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/catalog"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/config"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, catalogPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/curio/config.yaml if not provided)")
	flag.StringVar(&catalogPath, "catalog", "", "Path to the course catalog CSV")
	flag.Parse()
	if catalogPath == "" {
		fmt.Println("Usage: curio-ingest [--config=config.yaml] --catalog=courses.csv")
		os.Exit(1)
	}

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

	courses, err := catalog.Load(catalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("catalog", catalogPath).Msg("failed to read catalog")
	}

	components, err := app.Build(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build components")
	}
	defer components.Close()

	report, err := components.Ingest.Run(context.Background(), courses)
	if err != nil {
		log.Fatal().Err(err).Int("indexed", report.Indexed).Msg("ingestion aborted")
	}

	color.Green("Indexed %d courses from %s", report.Indexed, catalogPath)
	if len(report.Skipped) > 0 {
		color.Yellow("Skipped %d rows:", len(report.Skipped))
		for _, row := range report.Skipped {
			color.Yellow("  row %d (%s): %s", row.Line, row.Code, row.Reason)
		}
	}
}
