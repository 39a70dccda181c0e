package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.ChatModel)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.Equal(t, 0.0, cfg.Temperature)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
		assert.Equal(t, 800, cfg.MaxTokens)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.ChatHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithChatHost("http://chat:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://chat:9090/v1", cfg.ChatHost)
	})

	t.Run("with models and limits", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("text-embedding-3-small"),
			WithChatModel("gpt-4o-mini"),
			WithAPIKey("sk-test"),
			WithMaxTokens(400),
			WithTemperature(0.7),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
		assert.Equal(t, "sk-test", cfg.APIKey)
		assert.Equal(t, 400, cfg.MaxTokens)
		assert.Equal(t, 0.7, cfg.Temperature)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"missing suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.ChatHost)
		})
	}

	t.Run("empty hosts left alone", func(t *testing.T) {
		cfg := &Config{}
		cfg.Normalize()
		assert.Empty(t, cfg.EmbeddingHost)
		assert.Empty(t, cfg.ChatHost)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("validate normalizes", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	})

	tests := []struct {
		name  string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing chat host", func(c *Config) { c.ChatHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing chat model", func(c *Config) { c.ChatModel = "" }},
		{"zero max tokens", func(c *Config) { c.MaxTokens = 0 }},
		{"negative temperature", func(c *Config) { c.Temperature = -0.1 }},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
