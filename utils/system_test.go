package utils

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(nil))
	assert.True(t, IsFinite([]float64{0, -1e300, 3}))
	assert.False(t, IsFinite([]float64{0, math.NaN()}))
	assert.False(t, IsFinite([]float64{math.Inf(-1)}))
}

func TestMemUsage(t *testing.T) {
	mu := GetMemUsage()
	assert.True(t, mu.Sys >= mu.Alloc)
	l := zerolog.Nop()
	l.Info().Object("mem", mu).Msg("")
}
