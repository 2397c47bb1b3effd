package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	type counts struct{ dim, nodes, faces, edges int }
	expected := map[CellType]counts{
		Triangle: {2, 3, 3, 3},
		Quad:     {2, 4, 4, 4},
		Tet:      {3, 4, 4, 6},
		Pyramid:  {3, 5, 5, 8},
		Prism:    {3, 6, 5, 9},
		Hex:      {3, 8, 6, 12},
	}
	for _, ct := range CellTypes() {
		c := expected[ct]
		assert.True(t, ct.IsCell())
		assert.Equal(t, c.dim, ct.GetDimension(), ct.String())
		assert.Equal(t, c.nodes, ct.GetNumNodes(), ct.String())
		assert.Equal(t, c.faces, ct.GetNumFaces(), ct.String())
		assert.Equal(t, c.edges, ct.GetNumEdges(), ct.String())
	}
	assert.Equal(t, 6, len(CellTypes()))
	assert.False(t, Line.IsCell())
	assert.False(t, Unknown.IsCell())
	assert.Equal(t, -1, Unknown.GetDimension())
	assert.Equal(t, 0, CellType(42).GetNumNodes())
	assert.Equal(t, "Invalid", CellType(42).String())
}

func TestCatalogFacesAreClosed(t *testing.T) {
	// Every edge of a closed, consistently wound polyhedron is traversed once
	// in each direction by its faces
	for _, ct := range []CellType{Tet, Pyramid, Prism, Hex} {
		directed := make(map[[2]int]int)
		for _, f := range Catalog[ct].Faces {
			for i := range f {
				directed[[2]int{f[i], f[(i+1)%len(f)]}]++
			}
		}
		for e, n := range directed {
			assert.Equal(t, 1, n, "%v edge %v", ct, e)
			assert.Equal(t, 1, directed[[2]int{e[1], e[0]}], "%v edge %v", ct, e)
		}
		assert.Equal(t, 2*ct.GetNumEdges(), len(directed), ct.String())
	}
}

func TestGetCellFaces(t *testing.T) {
	faces := GetCellFaces(Tet, []int{10, 11, 12, 13})
	assert.Equal(t, [][]int{{10, 12, 11}, {10, 11, 13}, {10, 13, 12}, {11, 12, 13}}, faces)
	faces = GetCellFaces(Quad, []int{4, 5, 9, 8})
	assert.Equal(t, [][]int{{4, 5}, {5, 9}, {9, 8}, {8, 4}}, faces)
	assert.Equal(t, 0, len(GetCellFaces(Unknown, nil)))
}

func TestParseCellType(t *testing.T) {
	for name, ct := range map[string]CellType{
		"TRIANGLE": Triangle, "quadrilateral": Quad, "Tetrahedron": Tet,
		"pyramid": Pyramid, "WEDGE": Prism, "hexahedron": Hex, " hex ": Hex,
	} {
		got, ok := ParseCellType(name)
		assert.True(t, ok, name)
		assert.Equal(t, ct, got, name)
	}
	_, ok := ParseCellType("polygon")
	assert.False(t, ok)
}

func TestShapes(t *testing.T) {
	assert.Equal(t, Line, FaceShape(2))
	assert.Equal(t, Triangle, FaceShape(3))
	assert.Equal(t, Quad, FaceShape(4))
	assert.Equal(t, Unknown, FaceShape(5))
	assert.Equal(t, 4, MaxNodesPerCell(2))
	assert.Equal(t, 8, MaxNodesPerCell(3))
	assert.Equal(t, 0, MaxNodesPerCell(1))
}
