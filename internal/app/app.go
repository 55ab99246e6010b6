// Package app assembles pipeline components from configuration.
package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/config"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
	ollamaembed "github.com/noelbolando/um-ai-hackathon-2026/internal/embedding/ollama"
	openaiembed "github.com/noelbolando/um-ai-hackathon-2026/internal/embedding/openai"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/ingest"
	ollamagen "github.com/noelbolando/um-ai-hackathon-2026/internal/llm/ollama"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/service"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/vectorstore/memory"
	"github.com/noelbolando/um-ai-hackathon-2026/internal/vectorstore/qdrant"
)

// Components bundles everything the binaries need, wired per config.
type Components struct {
	Embedder  domain.Embedder
	Generator domain.Generator
	Index     domain.VectorIndex
	Pipeline  *service.Pipeline
	Ingest    *ingest.Service
}

// Build wires components from the configuration. The caller owns Close.
func Build(cfg *config.AppConfig, log zerolog.Logger) (*Components, error) {
	embedder, err := buildEmbedder(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("build embedder: %w", err)
	}

	generator, err := ollamagen.NewGenerator(ollamagen.Config{
		BaseURL:     cfg.Generation.BaseURL,
		Model:       cfg.Generation.Model,
		Timeout:     time.Duration(cfg.Generation.TimeoutSecs) * time.Second,
		Temperature: cfg.Generation.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}

	index, err := buildIndex(cfg.Index)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	pipeline := service.NewPipeline(
		service.NewIntentExtractor(generator, log),
		service.NewRetriever(embedder, index),
		service.NewSynthesizer(generator, log),
		service.Options{Explain: cfg.Pipeline.Explain},
		log,
	)

	return &Components{
		Embedder:  embedder,
		Generator: generator,
		Index:     index,
		Pipeline:  pipeline,
		Ingest:    ingest.NewService(embedder, index, log),
	}, nil
}

// Close releases held connections.
func (c *Components) Close() error {
	return c.Index.Close()
}

func buildEmbedder(cfg config.EmbeddingConfig) (domain.Embedder, error) {
	switch cfg.Type {
	case "ollama", "":
		var sub config.OllamaEmbeddingConfig
		if cfg.Ollama != nil {
			sub = *cfg.Ollama
		}
		return ollamaembed.NewEmbedder(ollamaembed.Config{
			BaseURL:   sub.BaseURL,
			Model:     sub.Model,
			Dimension: sub.Dimension,
			Timeout:   time.Duration(sub.TimeoutSecs) * time.Second,
		})
	case "openai":
		if cfg.OpenAI == nil {
			return nil, fmt.Errorf("openai embedder config missing")
		}
		return openaiembed.NewClient(openaiembed.Config{
			BaseURL:   cfg.OpenAI.BaseURL,
			APIKeyEnv: cfg.OpenAI.APIKeyEnv,
			Model:     cfg.OpenAI.Model,
			Dimension: cfg.OpenAI.Dimension,
			Timeout:   time.Duration(cfg.OpenAI.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown embedder type %q", cfg.Type)
	}
}

func buildIndex(cfg config.IndexConfig) (domain.VectorIndex, error) {
	switch cfg.Type {
	case "qdrant", "":
		if cfg.Qdrant == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		return qdrant.New(qdrant.Config{
			Host:       cfg.Qdrant.Host,
			Port:       cfg.Qdrant.Port,
			Collection: cfg.Qdrant.Collection,
			Distance:   cfg.Qdrant.Distance,
		})
	case "memory":
		return memory.NewIndex(), nil
	default:
		return nil, fmt.Errorf("unknown index type %q", cfg.Type)
	}
}
