package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gomesh/utils"
)

// Sentinel pads cell-node rows past the cell's arity. It is never a node index.
const Sentinel = -1

// Store owns the raw mesh input: node coordinates, cell types and the
// sentinel-padded cell-to-node table. It is filled by the caller, frozen, and
// read-only for every later stage.
type Store struct {
	NDim      int
	NNode     int
	NCell     int
	NFaceHint int
	Stride    int // Row width of CellNodes, the largest arity for NDim

	Coords    *mat.Dense       // [NNode][NDim]
	CellTypes []utils.CellType // [NCell]
	CellNodes []int            // [NCell*Stride], Sentinel filled

	hasNodes []bool
	frozen   bool
}

// NewStore allocates storage for a mesh of the given size. nfaceHint sizes the
// face map and may be zero.
func NewStore(ndim, nnode, ncell, nfaceHint int) (s *Store, err error) {
	if ndim != 2 && ndim != 3 {
		return nil, invalidTopologyf("dimension %d, must be 2 or 3", ndim)
	}
	if nnode < 1 || ncell < 1 {
		return nil, invalidTopologyf("need at least one node and one cell, got nnode=%d ncell=%d",
			nnode, ncell)
	}
	if nfaceHint < 0 {
		nfaceHint = 0
	}
	s = &Store{
		NDim:      ndim,
		NNode:     nnode,
		NCell:     ncell,
		NFaceHint: nfaceHint,
		Stride:    utils.MaxNodesPerCell(ndim),
		Coords:    mat.NewDense(nnode, ndim, nil),
		CellTypes: make([]utils.CellType, ncell),
		hasNodes:  make([]bool, ncell),
	}
	s.CellNodes = make([]int, ncell*s.Stride)
	for i := range s.CellNodes {
		s.CellNodes[i] = Sentinel
	}
	return
}

func (s *Store) checkWritable() error {
	if s.frozen {
		return invalidTopologyf("geometry store is frozen")
	}
	return nil
}

// SetNodeCoordinates assigns every node coordinate in one bulk write
func (s *Store) SetNodeCoordinates(coords [][]float64) (err error) {
	if err = s.checkWritable(); err != nil {
		return
	}
	if len(coords) != s.NNode {
		return invalidTopologyf("got %d node coordinates, store holds %d nodes", len(coords), s.NNode)
	}
	for i, xyz := range coords {
		if len(xyz) != s.NDim {
			return invalidTopologyf("node %d has %d components, mesh dimension is %d", i, len(xyz), s.NDim)
		}
		if !utils.IsFinite(xyz) {
			return invalidTopologyf("node %d has non-finite coordinates %v", i, xyz)
		}
	}
	for i, xyz := range coords {
		s.Coords.SetRow(i, xyz)
	}
	return
}

// SetCellType assigns the type of one cell. Changing the type of a cell that
// already has nodes is rejected.
func (s *Store) SetCellType(cell int, ct utils.CellType) (err error) {
	if err = s.checkWritable(); err != nil {
		return
	}
	if cell < 0 || cell >= s.NCell {
		return invalidTopologyf("cell %d out of range [0,%d)", cell, s.NCell)
	}
	if !ct.IsCell() {
		return fmt.Errorf("%w: cell %d has type %s (%d)", ErrUnknownCellType, cell, ct, int(ct))
	}
	if ct.GetDimension() != s.NDim {
		return invalidTopologyf("cell %d type %s is %dD in a %dD mesh", cell, ct, ct.GetDimension(), s.NDim)
	}
	if s.hasNodes[cell] && s.CellTypes[cell] != ct {
		return invalidTopologyf("cell %d already has %s nodes", cell, s.CellTypes[cell])
	}
	s.CellTypes[cell] = ct
	return
}

// SetCellTypes assigns every cell type in one bulk write
func (s *Store) SetCellTypes(types []utils.CellType) (err error) {
	if len(types) != s.NCell {
		return invalidTopologyf("got %d cell types, store holds %d cells", len(types), s.NCell)
	}
	for cell, ct := range types {
		if err = s.SetCellType(cell, ct); err != nil {
			return
		}
	}
	return
}

// SetCellNodes assigns one cell's node list. The list is either exactly the
// arity of the cell type or padded with Sentinel up to Stride.
func (s *Store) SetCellNodes(cell int, nodes []int) (err error) {
	if err = s.checkWritable(); err != nil {
		return
	}
	if cell < 0 || cell >= s.NCell {
		return invalidTopologyf("cell %d out of range [0,%d)", cell, s.NCell)
	}
	ct := s.CellTypes[cell]
	if ct == utils.Unknown {
		return invalidTopologyf("cell %d has no type, set the type before its nodes", cell)
	}
	var (
		k = ct.GetNumNodes()
	)
	if len(nodes) < k || len(nodes) > s.Stride {
		return invalidTopologyf("cell %d of type %s needs %d nodes, got a list of %d",
			cell, ct, k, len(nodes))
	}
	for i, n := range nodes {
		if i >= k {
			if n != Sentinel {
				return invalidTopologyf("cell %d of type %s has %d nodes, entry %d is %d instead of the sentinel",
					cell, ct, k, i, n)
			}
			continue
		}
		if n < 0 || n >= s.NNode {
			return invalidTopologyf("cell %d node %d is %d, out of range [0,%d)", cell, i, n, s.NNode)
		}
		for j := 0; j < i; j++ {
			if nodes[j] == n {
				return invalidTopologyf("cell %d lists node %d twice", cell, n)
			}
		}
	}
	row := s.CellNodes[cell*s.Stride : (cell+1)*s.Stride]
	for i := range row {
		if i < k {
			row[i] = nodes[i]
		} else {
			row[i] = Sentinel
		}
	}
	s.hasNodes[cell] = true
	return
}

// SetAllCellNodes assigns every cell's node list in one bulk write
func (s *Store) SetAllCellNodes(lists [][]int) (err error) {
	if len(lists) != s.NCell {
		return invalidTopologyf("got %d cell node lists, store holds %d cells", len(lists), s.NCell)
	}
	for cell, nodes := range lists {
		if err = s.SetCellNodes(cell, nodes); err != nil {
			return
		}
	}
	return
}

// Validate checks that population is complete
func (s *Store) Validate() error {
	for cell := 0; cell < s.NCell; cell++ {
		if s.CellTypes[cell] == utils.Unknown {
			return invalidTopologyf("cell %d has no type", cell)
		}
		if !s.hasNodes[cell] {
			return invalidTopologyf("cell %d has no nodes", cell)
		}
	}
	return nil
}

// Freeze validates the store and makes it read-only
func (s *Store) Freeze() (err error) {
	if s.frozen {
		return
	}
	if err = s.Validate(); err != nil {
		return
	}
	s.frozen = true
	return
}

func (s *Store) Frozen() bool { return s.frozen }

// Nodes returns the leading, non-sentinel entries of a cell's row. The slice
// aliases store memory and must not be modified.
func (s *Store) Nodes(cell int) []int {
	k := s.CellTypes[cell].GetNumNodes()
	return s.CellNodes[cell*s.Stride : cell*s.Stride+k]
}

// Row returns the full padded row for a cell
func (s *Store) Row(cell int) []int {
	return s.CellNodes[cell*s.Stride : (cell+1)*s.Stride]
}

// Coordinate returns a copy of one node's coordinates
func (s *Store) Coordinate(node int) []float64 {
	return mat.Row(nil, node, s.Coords)
}
