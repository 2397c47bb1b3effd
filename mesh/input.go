package mesh

import (
	"fmt"

	"github.com/notargets/gomesh/utils"
)

// Input holds the four arrays BuildMesh consumes. Importers and sample
// generators produce it.
type Input struct {
	Title       string
	NDim        int
	Coordinates [][]float64      // [nnode][NDim]
	CellTypes   []utils.CellType // [ncell]
	CellNodes   [][]int          // [ncell][arity or padded with Sentinel]
}

func (in *Input) NumNodes() int { return len(in.Coordinates) }
func (in *Input) NumCells() int { return len(in.CellTypes) }

func (in *Input) Build(opts Options) (*Mesh, error) {
	return BuildMeshWithOptions(in.NDim, in.Coordinates, in.CellTypes, in.CellNodes, opts)
}

// AddCell appends a cell, returning its index
func (in *Input) AddCell(ct utils.CellType, nodes ...int) int {
	row := make([]int, len(nodes))
	copy(row, nodes)
	in.CellTypes = append(in.CellTypes, ct)
	in.CellNodes = append(in.CellNodes, row)
	return len(in.CellTypes) - 1
}

// CheckCellTypes rejects an input holding a cell type outside allowed. An
// empty allowed list accepts everything.
func (in *Input) CheckCellTypes(allowed []utils.CellType) error {
	if len(allowed) == 0 {
		return nil
	}
	ok := make(map[utils.CellType]bool, len(allowed))
	for _, ct := range allowed {
		ok[ct] = true
	}
	for cell, ct := range in.CellTypes {
		if !ok[ct] {
			return fmt.Errorf("%w: cell %d is a %s, accepted types are %v",
				ErrInvalidTopology, cell, ct, allowed)
		}
	}
	return nil
}
