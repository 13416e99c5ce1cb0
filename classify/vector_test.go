package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	t.Run("identical vectors score one", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.5}
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	})

	t.Run("orthogonal vectors score zero", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
	})

	t.Run("opposite vectors score minus one", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{-1, -2, -3}
		assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		a := []float32{0, 0, 0}
		b := []float32{1, 2, 3}
		assert.Equal(t, 0.0, Cosine(a, b))
		assert.Equal(t, 0.0, Cosine(b, a))
	})

	t.Run("empty vectors score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine(nil, []float32{1}))
		assert.Equal(t, 0.0, Cosine(nil, nil))
	})

	t.Run("result stays clamped", func(t *testing.T) {
		// Accumulated float error can nudge the ratio past 1.
		a := []float32{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}
		score := Cosine(a, a)
		assert.LessOrEqual(t, score, 1.0)
		assert.GreaterOrEqual(t, score, -1.0)
	})
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 1.0, clamp01(1.7))
	assert.Equal(t, 0.42, clamp01(0.42))
}
