package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyBuilder(t *testing.T) {
	ab := NewAdjacencyBuilder(4)
	require.NoError(t, ab.Link(0, 1))
	require.NoError(t, ab.Link(1, 2))
	require.NoError(t, ab.Link(1, 2))
	assert.Error(t, ab.Link(3, 3))
	assert.Error(t, ab.Link(0, 4))
	assert.Error(t, ab.Link(-1, 0))

	A := ab.ToCSR()
	nr, nc := A.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, 1., A.At(0, 1))
	assert.Equal(t, 1., A.At(1, 0))
	assert.Equal(t, 2., A.At(1, 2))
	assert.Equal(t, 2., A.At(2, 1))
	assert.Equal(t, 0., A.At(0, 2))
	assert.Equal(t, []int{1, 2, 1, 0}, Degrees(A))
}
