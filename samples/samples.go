package samples

import (
	"fmt"
	"sort"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/utils"
)

const (
	T   = utils.Triangle
	Q   = utils.Quad
	TET = utils.Tet
	PYR = utils.Pyramid
	PSM = utils.Prism
	HEX = utils.Hex
	_x  = mesh.Sentinel
)

// Triangle is a closed fan of three triangles around node 0
func Triangle() *mesh.Input {
	return &mesh.Input{
		Title:       "triangle",
		NDim:        2,
		Coordinates: [][]float64{{0, 0}, {-1, -1}, {1, -1}, {0, 1}},
		CellTypes:   []utils.CellType{T, T, T},
		CellNodes: [][]int{
			{0, 1, 2, _x},
			{0, 2, 3, _x},
			{0, 3, 1, _x},
		},
	}
}

// Tetrahedron is a single tetrahedron
func Tetrahedron() *mesh.Input {
	return &mesh.Input{
		Title:       "tetrahedron",
		NDim:        3,
		Coordinates: [][]float64{{0, 0, 0}, {0, 1, 0}, {-1, 1, 0}, {0, 1, 1}},
		CellTypes:   []utils.CellType{TET},
		CellNodes:   [][]int{{0, 1, 2, 3, _x, _x, _x, _x}},
	}
}

// Mixed2D is a structured 3x3 block of triangles and quadrilaterals, or a
// three cell strip when small is set
func Mixed2D(small bool) *mesh.Input {
	if small {
		return &mesh.Input{
			Title: "2dmix-small",
			NDim:  2,
			Coordinates: [][]float64{
				{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 0}, {2, 1},
			},
			CellTypes: []utils.CellType{T, T, Q},
			CellNodes: [][]int{
				{0, 3, 2, _x}, {0, 1, 3, _x}, {1, 4, 5, 3},
			},
		}
	}
	return &mesh.Input{
		Title: "2dmix",
		NDim:  2,
		Coordinates: [][]float64{
			{0, 0}, {1, 0}, {2, 0}, {3, 0},
			{0, 1}, {1, 1}, {2, 1}, {3, 1},
			{0, 2}, {1, 2}, {2, 2}, {3, 2},
			{0, 3}, {1, 3}, {2, 3}, {3, 3},
		},
		CellTypes: []utils.CellType{
			T, T, T, T, T, T, // 0-5
			Q, Q, // 6-7
			T, T, T, T, // 8-11
			Q, Q, // 12-13
		},
		CellNodes: [][]int{
			{0, 5, 4, _x}, {0, 1, 5, _x}, // 0-1 triangles
			{1, 2, 5, _x}, {2, 6, 5, _x}, // 2-3 triangles
			{2, 7, 6, _x}, {2, 3, 7, _x}, // 4-5 triangles
			{4, 5, 9, 8}, {5, 6, 10, 9}, // 6-7 quadrilaterals
			{6, 7, 10, _x}, {7, 11, 10, _x}, // 8-9 triangles
			{8, 9, 12, _x}, {9, 13, 12, _x}, // 10-11 triangles
			{9, 10, 14, 13}, {10, 11, 15, 14}, // 12-13 quadrilaterals
		},
	}
}

// Mixed3D is a unit hexahedron with a pyramid, a tetrahedron and a prism
// attached along its x=1 and y=1 sides
func Mixed3D() *mesh.Input {
	return &mesh.Input{
		Title: "3dmix",
		NDim:  3,
		Coordinates: [][]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
			{0.5, 1.5, 0.5},
			{1.5, 1, 0.5}, {1.5, 0, 0.5},
		},
		CellTypes: []utils.CellType{HEX, PYR, TET, PSM},
		CellNodes: [][]int{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{2, 3, 7, 6, 8, _x, _x, _x},
			{2, 6, 9, 8, _x, _x, _x, _x},
			{2, 6, 9, 1, 5, 10, _x, _x},
		},
	}
}

var registry = map[string]func() *mesh.Input{
	"triangle":    Triangle,
	"tetrahedron": Tetrahedron,
	"2dmix":       func() *mesh.Input { return Mixed2D(false) },
	"2dmix-small": func() *mesh.Input { return Mixed2D(true) },
	"3dmix":       Mixed3D,
}

// ByName returns a fresh copy of a named sample
func ByName(name string) (*mesh.Input, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q, choose one of %v", name, Names())
	}
	return fn(), nil
}

func Names() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
