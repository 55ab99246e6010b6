package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GenerationConfig configures the text-generation model.
type GenerationConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	TimeoutSecs int     `yaml:"timeout_secs"`
	Temperature float64 `yaml:"temperature"`
}

// OllamaEmbeddingConfig holds configuration for the Ollama embedder.
type OllamaEmbeddingConfig struct {
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	Dimension   int    `yaml:"dimension"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// OpenAIEmbeddingConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbeddingConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	Dimension   int    `yaml:"dimension"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbeddingConfig selects and configures the embedder implementation.
type EmbeddingConfig struct {
	Type   string                 `yaml:"type"`
	Ollama *OllamaEmbeddingConfig `yaml:"ollama,omitempty"`
	OpenAI *OpenAIEmbeddingConfig `yaml:"openai,omitempty"`
}

// QdrantConfig contains connection details for the Qdrant index.
type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Collection string `yaml:"collection"`
	Distance   string `yaml:"distance"`
}

// IndexConfig selects and configures the vector index implementation.
type IndexConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// PipelineConfig tunes query behaviour.
type PipelineConfig struct {
	DefaultTopK int  `yaml:"default_top_k"`
	Explain     bool `yaml:"explain"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Generation GenerationConfig `yaml:"generation"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Index      IndexConfig      `yaml:"index"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/curio/config.yaml.
// If neither exists, it writes defaults to ~/.config/curio/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "curio", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Generation: GenerationConfig{Model: "mistral"},
		Embedding: EmbeddingConfig{
			Type:   "ollama",
			Ollama: &OllamaEmbeddingConfig{Model: "nomic-embed-text", Dimension: 768},
		},
		Index: IndexConfig{
			Type:   "qdrant",
			Qdrant: &QdrantConfig{Host: "localhost", Port: 6334, Collection: "courses", Distance: "cosine"},
		},
		Pipeline: PipelineConfig{DefaultTopK: 10},
	}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = "mistral"
	}
	if cfg.Generation.TimeoutSecs == 0 {
		cfg.Generation.TimeoutSecs = 120
	}
	if cfg.Embedding.Type == "" {
		cfg.Embedding.Type = "ollama"
	}
	if cfg.Embedding.Type == "ollama" {
		if cfg.Embedding.Ollama == nil {
			cfg.Embedding.Ollama = &OllamaEmbeddingConfig{}
		}
		if cfg.Embedding.Ollama.Model == "" {
			cfg.Embedding.Ollama.Model = "nomic-embed-text"
		}
		if cfg.Embedding.Ollama.Dimension == 0 {
			cfg.Embedding.Ollama.Dimension = 768
		}
		if cfg.Embedding.Ollama.TimeoutSecs == 0 {
			cfg.Embedding.Ollama.TimeoutSecs = 30
		}
	}
	if cfg.Embedding.Type == "openai" && cfg.Embedding.OpenAI != nil {
		if cfg.Embedding.OpenAI.BaseURL == "" {
			cfg.Embedding.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedding.OpenAI.APIKeyEnv == "" {
			cfg.Embedding.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedding.OpenAI.Model == "" {
			cfg.Embedding.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedding.OpenAI.Dimension == 0 {
			cfg.Embedding.OpenAI.Dimension = 1536
		}
		if cfg.Embedding.OpenAI.TimeoutSecs == 0 {
			cfg.Embedding.OpenAI.TimeoutSecs = 30
		}
	}
	if cfg.Index.Type == "" {
		cfg.Index.Type = "qdrant"
	}
	if cfg.Index.Type == "qdrant" {
		if cfg.Index.Qdrant == nil {
			cfg.Index.Qdrant = &QdrantConfig{}
		}
		if cfg.Index.Qdrant.Host == "" {
			cfg.Index.Qdrant.Host = "localhost"
		}
		if cfg.Index.Qdrant.Port == 0 {
			cfg.Index.Qdrant.Port = 6334
		}
		if cfg.Index.Qdrant.Collection == "" {
			cfg.Index.Qdrant.Collection = "courses"
		}
		if cfg.Index.Qdrant.Distance == "" {
			cfg.Index.Qdrant.Distance = "cosine"
		}
	}
	if cfg.Pipeline.DefaultTopK == 0 {
		cfg.Pipeline.DefaultTopK = 10
	}
}
