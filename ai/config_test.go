package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.NotEmpty(t, cfg.EmbeddingModel)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://example.com"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithAPIToken("secret"),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://example.com/v1", cfg.EmbeddingHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "secret", cfg.APIToken)
}

func TestNormalize(t *testing.T) {
	t.Run("appends v1 suffix", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:9100"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:9100/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before appending", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:9100/"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:9100/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves v1 suffix alone", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:9100/v1"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:9100/v1", cfg.EmbeddingHost)
	})

	t.Run("defaults empty token", func(t *testing.T) {
		cfg := &Config{}
		cfg.Normalize()
		assert.Equal(t, "none", cfg.APIToken)
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing host", func(t *testing.T) {
		cfg := &Config{EmbeddingModel: "m"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434"}
		assert.Error(t, cfg.Validate())
	})
}
