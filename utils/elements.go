package utils

import "strings"

// CellType represents the cell shapes a mesh can be built from. Line is a face
// shape only and is never accepted as a cell.
type CellType int8

const (
	Unknown CellType = iota
	// 1D face shape
	Line
	// 2D cells
	Triangle
	Quad
	// 3D cells
	Tet
	Pyramid
	Prism
	Hex
	numCellTypes
)

var cellTypeNames = [numCellTypes]string{
	"Unknown", "Line", "Triangle", "Quad", "Tet", "Pyramid", "Prism", "Hex",
}

func (e CellType) String() string {
	if e >= 0 && e < numCellTypes {
		return cellTypeNames[e]
	}
	return "Invalid"
}

// ParseCellType accepts the String() names plus the long names used by the
// sample definitions (TRIANGLE, QUADRILATERAL, TETRAHEDRON, ...).
func ParseCellType(name string) (CellType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "line", "edge":
		return Line, true
	case "triangle", "tri":
		return Triangle, true
	case "quad", "quadrilateral":
		return Quad, true
	case "tet", "tetrahedron":
		return Tet, true
	case "pyramid", "pyr":
		return Pyramid, true
	case "prism", "wedge":
		return Prism, true
	case "hex", "hexahedron":
		return Hex, true
	}
	return Unknown, false
}

// CellTopology is the static description of one cell type. Faces and Edges
// hold local node indices; each face is listed in its outward winding.
type CellTopology struct {
	Dimension int
	NumNodes  int
	Faces     [][]int
	Edges     [][2]int
}

// Catalog is indexed by CellType. 2D faces are the CCW edges of the cell, 3D
// faces have right-handed outward normals for a positively oriented cell.
var Catalog = [numCellTypes]CellTopology{
	Unknown: {},
	Line: {
		Dimension: 1,
		NumNodes:  2,
	},
	Triangle: {
		Dimension: 2,
		NumNodes:  3,
		Faces:     [][]int{{0, 1}, {1, 2}, {2, 0}},
		Edges:     [][2]int{{0, 1}, {1, 2}, {2, 0}},
	},
	Quad: {
		Dimension: 2,
		NumNodes:  4,
		Faces:     [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		Edges:     [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	},
	Tet: {
		Dimension: 3,
		NumNodes:  4,
		Faces: [][]int{
			{0, 2, 1}, // Face 0
			{0, 1, 3}, // Face 1
			{0, 3, 2}, // Face 2
			{1, 2, 3}, // Face 3
		},
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}},
	},
	Pyramid: {
		Dimension: 3,
		NumNodes:  5,
		Faces: [][]int{
			{0, 3, 2, 1}, // Face 0 (base quad)
			{0, 1, 4},    // Face 1 (tri)
			{1, 2, 4},    // Face 2 (tri)
			{2, 3, 4},    // Face 3 (tri)
			{3, 0, 4},    // Face 4 (tri)
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		},
	},
	Prism: {
		// Nodes 0-1-2 wind with their normal pointing away from 3-4-5
		Dimension: 3,
		NumNodes:  6,
		Faces: [][]int{
			{0, 1, 2},    // Face 0 (tri)
			{3, 5, 4},    // Face 1 (tri)
			{0, 3, 4, 1}, // Face 2 (quad)
			{0, 2, 5, 3}, // Face 3 (quad)
			{1, 4, 5, 2}, // Face 4 (quad)
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 0},
			{3, 4}, {4, 5}, {5, 3},
			{0, 3}, {1, 4}, {2, 5},
		},
	},
	Hex: {
		Dimension: 3,
		NumNodes:  8,
		Faces: [][]int{
			{0, 3, 2, 1}, // Face 0 (bottom)
			{4, 5, 6, 7}, // Face 1 (top)
			{0, 1, 5, 4}, // Face 2
			{1, 2, 6, 5}, // Face 3
			{2, 3, 7, 6}, // Face 4
			{3, 0, 4, 7}, // Face 5
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	},
}

// MaxFaceNodes is the largest face arity in the catalog (quad faces).
const MaxFaceNodes = 4

// IsCell reports whether e may be used as a cell type.
func (e CellType) IsCell() bool {
	return e >= Triangle && e < numCellTypes
}

// Topology returns the catalog entry, or false for a type outside the enumeration.
func (e CellType) Topology() (*CellTopology, bool) {
	if e <= Unknown || e >= numCellTypes {
		return nil, false
	}
	return &Catalog[e], true
}

func (e CellType) GetDimension() int {
	if t, ok := e.Topology(); ok {
		return t.Dimension
	}
	return -1
}

func (e CellType) GetNumNodes() int {
	if t, ok := e.Topology(); ok {
		return t.NumNodes
	}
	return 0
}

func (e CellType) GetNumFaces() int {
	if t, ok := e.Topology(); ok {
		return len(t.Faces)
	}
	return 0
}

func (e CellType) GetNumEdges() int {
	if t, ok := e.Topology(); ok {
		return len(t.Edges)
	}
	return 0
}

// GetCellFaces substitutes global node indices into the local face templates
func GetCellFaces(cellType CellType, nodes []int) (faces [][]int) {
	t, ok := cellType.Topology()
	if !ok {
		return [][]int{}
	}
	faces = make([][]int, len(t.Faces))
	for i, lf := range t.Faces {
		faces[i] = make([]int, len(lf))
		for j, ln := range lf {
			faces[i][j] = nodes[ln]
		}
	}
	return
}

// FaceShape returns the shape of a face with the given number of nodes
func FaceShape(arity int) CellType {
	switch arity {
	case 2:
		return Line
	case 3:
		return Triangle
	case 4:
		return Quad
	default:
		return Unknown
	}
}

// MaxNodesPerCell is the padded row stride for cell-node storage in ndim
func MaxNodesPerCell(ndim int) (nmax int) {
	for ct := Triangle; ct < numCellTypes; ct++ {
		if Catalog[ct].Dimension == ndim && Catalog[ct].NumNodes > nmax {
			nmax = Catalog[ct].NumNodes
		}
	}
	return
}

// CellTypes lists every valid cell type in enumeration order
func CellTypes() (types []CellType) {
	for ct := Triangle; ct < numCellTypes; ct++ {
		types = append(types, ct)
	}
	return
}
