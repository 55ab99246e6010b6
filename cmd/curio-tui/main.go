package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/app"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/config"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/curio/config.yaml if not provided)")
	flag.Parse()

	logFile, err := os.OpenFile("curio-tui.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := zerolog.New(logFile).With().Timestamp().Logger()

	var cfg *config.AppConfig
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	components, err := app.Build(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build components")
	}
	defer components.Close()

	indexed, err := components.Index.Count(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to reach index")
	}
	summary := fmt.Sprintf("%d courses indexed. Enter a goal; left/right adjusts the result count.", indexed)

	m := tui.New(components.Pipeline, summary, cfg.Pipeline.DefaultTopK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal().Err(err).Msg("tui exited with error")
	}
}
