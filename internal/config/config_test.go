package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mistral", cfg.Generation.Model)
	assert.Equal(t, 120, cfg.Generation.TimeoutSecs)
	assert.Equal(t, "ollama", cfg.Embedding.Type)
	require.NotNil(t, cfg.Embedding.Ollama)
	assert.Equal(t, "nomic-embed-text", cfg.Embedding.Ollama.Model)
	assert.Equal(t, 768, cfg.Embedding.Ollama.Dimension)
	assert.Equal(t, "qdrant", cfg.Index.Type)
	require.NotNil(t, cfg.Index.Qdrant)
	assert.Equal(t, 6334, cfg.Index.Qdrant.Port)
	assert.Equal(t, "courses", cfg.Index.Qdrant.Collection)
	assert.Equal(t, 10, cfg.Pipeline.DefaultTopK)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("generation:\n  model: llama3\nindex:\n  type: memory\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "llama3", cfg.Generation.Model)
	assert.Equal(t, 120, cfg.Generation.TimeoutSecs)
	assert.Equal(t, "memory", cfg.Index.Type)
	assert.Nil(t, cfg.Index.Qdrant)
	assert.Equal(t, "ollama", cfg.Embedding.Type)
	require.NotNil(t, cfg.Embedding.Ollama)
	assert.Equal(t, 30, cfg.Embedding.Ollama.TimeoutSecs)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation: [not: a map"), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := defaultConfig()
	cfg.Generation.Model = "llama3"
	cfg.Pipeline.DefaultTopK = 5
	cfg.Pipeline.Explain = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3", loaded.Generation.Model)
	assert.Equal(t, 5, loaded.Pipeline.DefaultTopK)
	assert.True(t, loaded.Pipeline.Explain)
	assert.Equal(t, cfg.Index, loaded.Index)
}

func TestApplyConfigDefaults_OpenAI(t *testing.T) {
	cfg := &AppConfig{Embedding: EmbeddingConfig{Type: "openai", OpenAI: &OpenAIEmbeddingConfig{}}}
	applyConfigDefaults(cfg)

	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedding.OpenAI.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedding.OpenAI.APIKeyEnv)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.OpenAI.Model)
	assert.Equal(t, 1536, cfg.Embedding.OpenAI.Dimension)
	assert.Nil(t, cfg.Embedding.Ollama, "unselected embedder stays unset")
}
