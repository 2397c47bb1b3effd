package mesh

import (
	"github.com/notargets/gomesh/utils"
)

var (
	fanCoords = [][]float64{{0, 0}, {-1, -1}, {1, -1}, {0, 1}}
	fanTypes  = []utils.CellType{utils.Triangle, utils.Triangle, utils.Triangle}
	fanCells  = [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}}

	tetCoords = [][]float64{{0, 0, 0}, {0, 1, 0}, {-1, 1, 0}, {0, 1, 1}}

	hexCoords = [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
)

// structuredGrid covers [0,nx]x[0,ny] with unit quads in a checkerboard, every
// other square split into two triangles
func structuredGrid(nx, ny int) (coords [][]float64, types []utils.CellType, cells [][]int) {
	id := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			coords = append(coords, []float64{float64(i), float64(j)})
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a, b, c, d := id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)
			if (i+j)%2 == 0 {
				types = append(types, utils.Quad)
				cells = append(cells, []int{a, b, c, d})
			} else {
				types = append(types, utils.Triangle, utils.Triangle)
				cells = append(cells, []int{a, b, c}, []int{a, c, d})
			}
		}
	}
	return
}

func newFilledStore(ndim int, coords [][]float64, types []utils.CellType, cells [][]int) *Store {
	s, err := NewStore(ndim, len(coords), len(types), 0)
	if err != nil {
		panic(err)
	}
	if err = s.SetNodeCoordinates(coords); err != nil {
		panic(err)
	}
	if err = s.SetCellTypes(types); err != nil {
		panic(err)
	}
	if err = s.SetAllCellNodes(cells); err != nil {
		panic(err)
	}
	return s
}
