package readers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/utils"
)

// Helper function to create temporary test files
func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

const gmshSquare = `$MeshFormat
2.2 0 8
$EndMeshFormat
$PhysicalNames
2
1 1 "wall"
2 2 "fluid"
$EndPhysicalNames
$Nodes
4
10 0 0 0
20 1 0 0
30 1 1 0
40 0 1 0
$EndNodes
$Elements
7
1 15 2 0 1 10
2 1 2 1 1 10 20
3 1 2 1 2 20 30
4 1 2 1 3 30 40
5 1 2 1 4 40 10
6 2 2 2 1 10 20 30
7 2 2 2 1 10 30 40
$EndElements
`

const gmshPrism = `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
6
1 0 0 0
2 1 0 0
3 0 1 0
4 0 0 1
5 1 0 1
6 0 1 1
$EndNodes
$Elements
2
1 2 2 0 1 1 2 3
2 6 2 0 1 1 2 3 4 5 6
$EndElements
`

func TestReadGmsh22Square(t *testing.T) {
	in, err := ReadGmsh22(createTempFile(t, "square.msh", gmshSquare))
	require.NoError(t, err)
	assert.Equal(t, "square", in.Title)
	assert.Equal(t, 2, in.NDim)
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, in.Coordinates)
	// Lines are boundary markers and the point element is skipped
	assert.Equal(t, []utils.CellType{utils.Triangle, utils.Triangle}, in.CellTypes)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, in.CellNodes)

	m, err := in.Build(mesh.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, len(m.InteriorFaces()))
	assert.Equal(t, 4, len(m.BoundaryFaces()))
	assert.NoError(t, m.CheckOrientation())
}

func TestReadGmsh22Prism(t *testing.T) {
	in, err := ParseGmsh22(strings.NewReader(gmshPrism), "prism")
	require.NoError(t, err)
	assert.Equal(t, 3, in.NDim)
	// The triangle is lower dimensional and dropped
	require.Equal(t, 1, in.NumCells())
	assert.Equal(t, utils.Prism, in.CellTypes[0])
	assert.Equal(t, []int{0, 2, 1, 3, 5, 4}, in.CellNodes[0])

	m, err := in.Build(mesh.Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, len(m.BoundaryFaces()))
	assert.Equal(t, 9, m.EdgeCount())
	assert.NoError(t, m.CheckOrientation())
}

func TestReadGmsh22Errors(t *testing.T) {
	cases := map[string]string{
		"version":        "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n",
		"binary":         "$MeshFormat\n2.2 1 8\n$EndMeshFormat\n",
		"missing":        "$Nodes\n1\n1 0 0 0\n$EndNodes\n",
		"unknown node":   strings.Replace(gmshSquare, "7 2 2 2 1 10 30 40", "7 2 2 2 1 10 30 50", 1),
		"duplicate node": strings.Replace(gmshSquare, "40 0 1 0", "30 0 1 0", 1),
		"short element":  strings.Replace(gmshSquare, "6 2 2 2 1 10 20 30", "6 2 2 2 1 10 20", 1),
		"element type":   strings.Replace(gmshSquare, "6 2 2 2 1 10 20 30", "6 z 2 2 1 10 20 30", 1),
		"tag count":      strings.Replace(gmshSquare, "6 2 2 2 1 10 20 30", "6 2 x 2 1 10 20 30", 1),
		"negative tags":  strings.Replace(gmshSquare, "6 2 2 2 1 10 20 30", "6 2 -1 2 1 10 20 30", 1),
		"truncated":      gmshSquare[:strings.Index(gmshSquare, "$EndNodes")],
		"no cells":       "$MeshFormat\n2.2 0 8\n$EndMeshFormat\n$Nodes\n2\n1 0 0 0\n2 1 0 0\n$EndNodes\n$Elements\n1\n1 1 0 1 2\n$EndElements\n",
	}
	for name, content := range cases {
		_, err := ParseGmsh22(strings.NewReader(content), name)
		assert.Error(t, err, name)
	}
	_, err := ReadGmsh22(filepath.Join(t.TempDir(), "absent.msh"))
	assert.Error(t, err)
}

func TestReadMeshFile(t *testing.T) {
	in, err := ReadMeshFile(createTempFile(t, "square.MSH", gmshSquare))
	require.NoError(t, err)
	assert.Equal(t, 2, in.NumCells())
	_, err = ReadMeshFile(createTempFile(t, "square.vtk", gmshSquare))
	assert.Error(t, err)
}
