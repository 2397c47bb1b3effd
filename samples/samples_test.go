package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomesh/mesh"
)

func TestSampleCounts(t *testing.T) {
	type counts struct {
		ndim, nodes, cells, enumerations, faces, interior, boundary, edges int
	}
	expected := map[string]counts{
		"triangle":    {2, 4, 3, 9, 6, 3, 3, 6},
		"tetrahedron": {3, 4, 1, 4, 4, 0, 4, 6},
		"2dmix":       {2, 16, 14, 46, 29, 17, 12, 29},
		"2dmix-small": {2, 6, 3, 10, 8, 2, 6, 8},
		"3dmix":       {3, 11, 4, 20, 16, 4, 12, 22},
	}
	require.Equal(t, []string{"2dmix", "2dmix-small", "3dmix", "tetrahedron", "triangle"}, Names())
	for _, name := range Names() {
		c := expected[name]
		for _, workers := range []int{1, 3} {
			in, err := ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, in.Title)
			m, err := in.Build(mesh.Options{Workers: workers})
			require.NoError(t, err, name)
			assert.Equal(t, c.ndim, m.NDim(), name)
			assert.Equal(t, c.nodes, m.NodeCount(), name)
			assert.Equal(t, c.cells, m.CellCount(), name)
			assert.Equal(t, c.enumerations, m.Faces().Enumerations, name)
			assert.Equal(t, c.faces, m.FaceCount(), name)
			assert.Equal(t, c.interior, len(m.InteriorFaces()), name)
			assert.Equal(t, c.boundary, len(m.BoundaryFaces()), name)
			assert.Equal(t, c.boundary, m.GhostCount(), name)
			assert.Equal(t, c.edges, m.EdgeCount(), name)
			assert.NoError(t, m.CheckOrientation(), name)
		}
	}
	_, err := ByName("cube")
	assert.Error(t, err)
}

func TestMixed3DConnectivity(t *testing.T) {
	m, err := Mixed3D().Build(mesh.Options{})
	require.NoError(t, err)
	// The hex touches the pyramid on its y=1 side and the prism on its x=1 side
	assert.Contains(t, m.CellNeighbors(0), 1)
	assert.Contains(t, m.CellNeighbors(0), 3)
	// The tet is wedged between pyramid and prism
	assert.Contains(t, m.CellNeighbors(2), 1)
	assert.Contains(t, m.CellNeighbors(2), 3)
	shapes := make(map[int]int)
	for _, bf := range m.BoundaryFaces() {
		shapes[len(bf.Nodes)]++
	}
	assert.Equal(t, 12, shapes[3]+shapes[4])
	for _, f := range m.InteriorFaces() {
		assert.Equal(t, -1, f.NeighborSense)
	}
}

func TestDelaunay(t *testing.T) {
	in, err := Delaunay(GridPoints(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 9, in.NumNodes())
	assert.Equal(t, 8, in.NumCells())
	for _, cell := range in.CellNodes {
		var (
			a, b, c = cell[0], cell[1], cell[2]
			pa      = [2]float64{in.Coordinates[a][0], in.Coordinates[a][1]}
			pb      = [2]float64{in.Coordinates[b][0], in.Coordinates[b][1]}
			pc      = [2]float64{in.Coordinates[c][0], in.Coordinates[c][1]}
		)
		assert.True(t, signedArea(pa, pb, pc) > 0)
	}
	m, err := in.Build(mesh.Options{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, 8, len(m.BoundaryFaces()))
	assert.Equal(t, 8, len(m.InteriorFaces()))
	assert.Equal(t, 16, m.EdgeCount())
	assert.NoError(t, m.CheckOrientation())

	_, err = Delaunay(GridPoints(1, 2))
	assert.Error(t, err)
}

func TestGridPoints(t *testing.T) {
	pts := GridPoints(3, 2)
	assert.Equal(t, 6, len(pts))
	assert.Equal(t, [2]float64{0, 0}, pts[0])
	assert.Equal(t, [2]float64{0.5, 0}, pts[1])
	assert.Equal(t, [2]float64{1, 1}, pts[5])
}
