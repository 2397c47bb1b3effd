package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomesh/utils"
)

func TestFaceKey(t *testing.T) {
	k := NewFaceKey([]int{5, 2, 9})
	assert.Equal(t, FaceKey{2, 5, 9, Sentinel}, k)
	assert.Equal(t, 3, k.Arity())
	assert.Equal(t, []int{2, 5, 9}, k.Nodes())
	assert.Equal(t, k, NewFaceKey([]int{9, 5, 2}))
	assert.NotEqual(t, k, NewFaceKey([]int{9, 5, 2, 7}))
	assert.Equal(t, 2, NewFaceKey([]int{7, 3}).Arity())
}

func TestDeriveFacesFan(t *testing.T) {
	s := newFilledStore(2, fanCoords, fanTypes, fanCells)
	fm, err := DeriveFaces(s)
	require.NoError(t, err)
	assert.True(t, s.Frozen())
	assert.Equal(t, 9, fm.Enumerations)
	assert.Equal(t, 6, len(fm.Groups))
	assert.Equal(t, 3, fm.NumInterior())
	assert.Equal(t, 3, fm.NumBoundary())

	// Discovery order: ascending cell, then local face
	assert.Equal(t, []int{0, 1}, fm.Groups[0].Nodes)
	assert.Equal(t, []FaceOwner{{0, 0}, {2, 2}}, fm.Groups[0].Owners)
	assert.Equal(t, []FaceOwner{{0, 1}}, fm.Groups[1].Owners)
	assert.Equal(t, []FaceOwner{{0, 2}, {1, 0}}, fm.Groups[2].Owners)

	g, found := fm.Lookup([]int{3, 0})
	require.True(t, found)
	assert.Equal(t, 4, g.ID)
	assert.True(t, g.IsInterior())
	_, found = fm.Lookup([]int{1, 3, 2})
	assert.False(t, found)
	require.NoError(t, fm.Validate())
}

func TestDeriveFacesNonManifold(t *testing.T) {
	var (
		coords = [][]float64{{0, 0}, {1, 0}, {0, 1}, {0, -1}, {1, 1}}
		types  = []utils.CellType{utils.Triangle, utils.Triangle, utils.Triangle}
		cells  = [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}
	)
	for _, workers := range []int{1, 2, 3} {
		s := newFilledStore(2, coords, types, cells)
		_, err := DeriveFacesParallel(s, workers)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNonManifoldFace))
		var nm *NonManifoldFaceError
		require.True(t, errors.As(err, &nm))
		assert.Equal(t, []int{0, 1}, nm.Key.Nodes())
		assert.Equal(t, []FaceOwner{{0, 0}, {1, 0}, {2, 0}}, nm.Owners)
	}
	_, err := BuildMesh(2, coords, types, cells)
	assert.True(t, errors.Is(err, ErrNonManifoldFace))
}

func TestDeriveFacesParallelMatchesSerial(t *testing.T) {
	coords, types, cells := structuredGrid(9, 7)
	serial, err := DeriveFaces(newFilledStore(2, coords, types, cells))
	require.NoError(t, err)
	for _, workers := range []int{0, 1, 2, 3, 5, 8, 64, 1000} {
		parallel, err := DeriveFacesParallel(newFilledStore(2, coords, types, cells), workers)
		require.NoError(t, err)
		assert.Equal(t, serial.Enumerations, parallel.Enumerations, "workers=%d", workers)
		assert.Equal(t, serial.Groups, parallel.Groups, "workers=%d", workers)
	}
}

func TestFaceMapValidate(t *testing.T) {
	var fm *FaceMap
	assert.True(t, errors.Is(fm.Validate(), ErrInvalidTopology))
	fm = &FaceMap{Groups: []FaceGroup{{Key: NewFaceKey([]int{0, 1})}}}
	assert.True(t, errors.Is(fm.Validate(), ErrInvalidTopology))
	fm.Groups[0].Owners = []FaceOwner{{0, 0}, {1, 0}, {2, 1}}
	assert.True(t, errors.Is(fm.Validate(), ErrNonManifoldFace))
}
