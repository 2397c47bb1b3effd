package mesh

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/notargets/gomesh/utils"
)

// BoundaryFace is a face owned by exactly one real cell
type BoundaryFace struct {
	Index     int // Position in the boundary sequence
	FaceID    int // Global face id
	Cell      int // Owning cell
	LocalFace int // Local face index within Cell
	Nodes     []int
	// Sense is +1 when the normal of Nodes points out of the owning cell, -1
	// when it points in and 0 for a degenerate face
	Sense int
}

// InteriorFace is a face shared by two real cells. Owner is the lower cell
// index and its winding is the face's reference winding.
type InteriorFace struct {
	Index    int
	FaceID   int
	Owner    FaceOwner
	Neighbor FaceOwner
	Nodes    []int
	// NeighborSense is -1 when the neighbor enumerates the face reversed, which
	// is the case for consistently oriented cells
	NeighborSense int
}

// windingSense compares two windings of the same node set. It returns +1 for
// the same cyclic order, -1 for reversed and 0 when the node sets differ.
func windingSense(a, b []int) int {
	n := len(a)
	if n != len(b) || n == 0 {
		return 0
	}
	start := -1
	for i, v := range b {
		if v == a[0] {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	same, reversed := true, true
	for i := 0; i < n; i++ {
		if a[i] != b[(start+i)%n] {
			same = false
		}
		if a[i] != b[(start-i+n)%n] {
			reversed = false
		}
	}
	switch {
	case n == 2:
		// An edge has a single cyclic order, direction decides
		if a[0] == b[0] && a[1] == b[1] {
			return 1
		}
		if a[0] == b[1] && a[1] == b[0] {
			return -1
		}
		return 0
	case same:
		return 1
	case reversed:
		return -1
	}
	return 0
}

// referenceWinding returns the catalog winding of a cell's local face in
// global node indices
func referenceWinding(s *Store, owner FaceOwner) []int {
	var (
		topo, _ = s.CellTypes[owner.Cell].Topology()
		nodes   = s.Nodes(owner.Cell)
		lf      = topo.Faces[owner.LocalFace]
		face    = make([]int, len(lf))
	)
	for i, ln := range lf {
		face[i] = nodes[ln]
	}
	return face
}

// ExtractBoundary returns the single-owner faces in ascending owning cell,
// then ascending local face order. It never modifies fm.
func ExtractBoundary(s *Store, fm *FaceMap) (bfs []BoundaryFace, err error) {
	if err = fm.Validate(); err != nil {
		return nil, err
	}
	bfs = make([]BoundaryFace, 0, fm.NumBoundary())
	for i := range fm.Groups {
		g := &fm.Groups[i]
		if !g.IsBoundary() {
			continue
		}
		owner := g.Owners[0]
		nodes := make([]int, len(g.Nodes))
		copy(nodes, g.Nodes)
		bfs = append(bfs, BoundaryFace{
			FaceID:    g.ID,
			Cell:      owner.Cell,
			LocalFace: owner.LocalFace,
			Nodes:     nodes,
			Sense:     s.outwardSense(owner.Cell, nodes),
		})
	}
	// Discovery order is already (cell, local face) for serial and parallel
	// derivation; the stable sort pins the contract.
	sort.SliceStable(bfs, func(i, j int) bool {
		if bfs[i].Cell != bfs[j].Cell {
			return bfs[i].Cell < bfs[j].Cell
		}
		return bfs[i].LocalFace < bfs[j].LocalFace
	})
	for i := range bfs {
		bfs[i].Index = i
	}
	log.Debug().Int("boundary", len(bfs)).Msg("extracted boundary")
	return
}

// extractInterior returns the two-owner faces in discovery order
func extractInterior(s *Store, fm *FaceMap) (ifs []InteriorFace) {
	ifs = make([]InteriorFace, 0, fm.NumInterior())
	for i := range fm.Groups {
		g := &fm.Groups[i]
		if !g.IsInterior() {
			continue
		}
		var (
			owner, nbr = g.Owners[0], g.Owners[1]
			nodes      = make([]int, len(g.Nodes))
		)
		if nbr.Cell < owner.Cell {
			owner, nbr = nbr, owner
		}
		copy(nodes, g.Nodes)
		ifs = append(ifs, InteriorFace{
			Index:         len(ifs),
			FaceID:        g.ID,
			Owner:         owner,
			Neighbor:      nbr,
			Nodes:         nodes,
			NeighborSense: windingSense(nodes, referenceWinding(s, nbr)),
		})
	}
	return
}

// Shape is Line, Triangle or Quad depending on the face arity
func (bf BoundaryFace) Shape() utils.CellType { return utils.FaceShape(len(bf.Nodes)) }
