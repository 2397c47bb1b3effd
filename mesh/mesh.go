package mesh

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/rs/zerolog/log"

	"github.com/notargets/gomesh/types"
	"github.com/notargets/gomesh/utils"
)

// Mesh is the finished, immutable result of a build: the frozen geometry store
// plus every derived face, boundary and ghost record. Accessors return deep
// copies; nothing here changes after BuildMesh returns.
type Mesh struct {
	store    *Store
	faces    *FaceMap
	interior []InteriorFace
	boundary []BoundaryFace
	ghosts   []GhostCell

	// Per cell, per local face connectivity
	eToE  [][]int // Neighbor cell, a ghost index for boundary faces
	eToF  [][]int // Global face id
	eToNF [][]int // Local face index on the neighbor, 0 for ghosts

	edges []types.EdgeKey
}

// Options tunes a build. Workers below 2 runs the serial face derivation.
type Options struct {
	Workers   int
	NFaceHint int
}

// BuildMesh runs the whole pipeline on the four input arrays. cellNodes rows
// are either exactly the cell arity or padded with Sentinel.
func BuildMesh(ndim int, nodeCoordinates [][]float64, cellTypes []utils.CellType,
	cellNodes [][]int) (*Mesh, error) {
	return BuildMeshWithOptions(ndim, nodeCoordinates, cellTypes, cellNodes, Options{})
}

func BuildMeshWithOptions(ndim int, nodeCoordinates [][]float64, cellTypes []utils.CellType,
	cellNodes [][]int, opts Options) (m *Mesh, err error) {
	var (
		s *Store
	)
	if len(cellTypes) != len(cellNodes) {
		return nil, invalidTopologyf("%d cell types but %d cell node lists", len(cellTypes), len(cellNodes))
	}
	if s, err = NewStore(ndim, len(nodeCoordinates), len(cellTypes), opts.NFaceHint); err != nil {
		return
	}
	if err = s.SetNodeCoordinates(nodeCoordinates); err != nil {
		return
	}
	if err = s.SetCellTypes(cellTypes); err != nil {
		return
	}
	if err = s.SetAllCellNodes(cellNodes); err != nil {
		return
	}
	return BuildFromStore(s, opts.Workers)
}

// BuildFromStore runs the derivation stages on a populated store, freezing it
func BuildFromStore(s *Store, workers int) (m *Mesh, err error) {
	var (
		fm  *FaceMap
		bfs []BoundaryFace
	)
	if workers > 1 {
		fm, err = DeriveFacesParallel(s, workers)
	} else {
		fm, err = DeriveFaces(s)
	}
	if err != nil {
		return nil, err
	}
	if bfs, err = ExtractBoundary(s, fm); err != nil {
		return nil, err
	}
	m = &Mesh{
		store:    s,
		faces:    fm,
		interior: extractInterior(s, fm),
		boundary: bfs,
		ghosts:   SynthesizeGhosts(s.NCell, bfs),
	}
	m.buildConnectivity()
	if m.edges, err = deriveEdges(s); err != nil {
		return nil, err
	}
	log.Debug().Int("cells", s.NCell).Int("interior", len(m.interior)).
		Int("boundary", len(m.boundary)).Int("ghosts", len(m.ghosts)).Msg("built mesh")
	return
}

func (m *Mesh) buildConnectivity() {
	var (
		s = m.store
	)
	m.eToE = make([][]int, s.NCell)
	m.eToF = make([][]int, s.NCell)
	m.eToNF = make([][]int, s.NCell)
	for k := 0; k < s.NCell; k++ {
		nf := s.CellTypes[k].GetNumFaces()
		m.eToE[k] = make([]int, nf)
		m.eToF[k] = make([]int, nf)
		m.eToNF[k] = make([]int, nf)
	}
	for i := range m.faces.Groups {
		g := &m.faces.Groups[i]
		for _, o := range g.Owners {
			m.eToF[o.Cell][o.LocalFace] = g.ID
		}
	}
	for _, f := range m.interior {
		m.eToE[f.Owner.Cell][f.Owner.LocalFace] = f.Neighbor.Cell
		m.eToNF[f.Owner.Cell][f.Owner.LocalFace] = f.Neighbor.LocalFace
		m.eToE[f.Neighbor.Cell][f.Neighbor.LocalFace] = f.Owner.Cell
		m.eToNF[f.Neighbor.Cell][f.Neighbor.LocalFace] = f.Owner.LocalFace
	}
	for _, g := range m.ghosts {
		m.eToE[g.Cell][g.LocalFace] = g.Index
		m.eToNF[g.Cell][g.LocalFace] = 0
	}
}

func deriveEdges(s *Store) (edges []types.EdgeKey, err error) {
	es := make(types.EdgeSet, s.NCell*3)
	for k := 0; k < s.NCell; k++ {
		var (
			topo, _ = s.CellTypes[k].Topology()
			nodes   = s.Nodes(k)
		)
		for _, e := range topo.Edges {
			if err = es.Add(nodes[e[0]], nodes[e[1]]); err != nil {
				return
			}
		}
	}
	edges = es.Sorted()
	return
}

func (m *Mesh) NDim() int       { return m.store.NDim }
func (m *Mesh) NodeCount() int  { return m.store.NNode }
func (m *Mesh) CellCount() int  { return m.store.NCell }
func (m *Mesh) FaceCount() int  { return len(m.faces.Groups) }
func (m *Mesh) EdgeCount() int  { return len(m.edges) }
func (m *Mesh) GhostCount() int { return len(m.ghosts) }

// Edges returns a copy of the distinct cell edges in ascending key order
func (m *Mesh) Edges() []types.EdgeKey {
	out := make([]types.EdgeKey, len(m.edges))
	copy(out, m.edges)
	return out
}

// InteriorFaces returns a deep copy of the interior face sequence
func (m *Mesh) InteriorFaces() []InteriorFace {
	out := make([]InteriorFace, len(m.interior))
	for i, f := range m.interior {
		f.Nodes = copyInts(f.Nodes)
		out[i] = f
	}
	return out
}

// BoundaryFaces returns a deep copy of the boundary face sequence
func (m *Mesh) BoundaryFaces() []BoundaryFace {
	out := make([]BoundaryFace, len(m.boundary))
	for i, bf := range m.boundary {
		bf.Nodes = copyInts(bf.Nodes)
		out[i] = bf
	}
	return out
}

// GhostCells returns a deep copy of the ghost cell sequence
func (m *Mesh) GhostCells() []GhostCell {
	out := make([]GhostCell, len(m.ghosts))
	for i, g := range m.ghosts {
		g.Nodes = copyInts(g.Nodes)
		out[i] = g
	}
	return out
}

// Faces returns a deep copy of the face map
func (m *Mesh) Faces() *FaceMap { return m.faces.Clone() }

func copyInts(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	return out
}

// DeriveBoundary re-runs boundary extraction on the frozen mesh. The stored
// records are left untouched.
func (m *Mesh) DeriveBoundary() ([]BoundaryFace, error) {
	return ExtractBoundary(m.store, m.faces)
}

// DeriveGhosts re-runs ghost synthesis on the stored boundary
func (m *Mesh) DeriveGhosts() []GhostCell {
	return SynthesizeGhosts(m.store.NCell, m.boundary)
}

func (m *Mesh) CellType(cell int) utils.CellType { return m.store.CellTypes[cell] }

// CellNodes returns a copy of the cell's node list without padding
func (m *Mesh) CellNodes(cell int) []int {
	return copyInts(m.store.Nodes(cell))
}

// PaddedCellNodes returns a copy of the cell's sentinel padded row
func (m *Mesh) PaddedCellNodes(cell int) []int {
	return copyInts(m.store.Row(cell))
}

func (m *Mesh) NodeCoordinates(node int) []float64 { return m.store.Coordinate(node) }

// CellNeighbors returns the neighbor across each local face. Every entry is
// valid: boundary faces point at their ghost cell.
func (m *Mesh) CellNeighbors(cell int) []int {
	return copyInts(m.eToE[cell])
}

func (m *Mesh) CellFaces(cell int) []int {
	return copyInts(m.eToF[cell])
}

// NeighborFace returns the neighbor cell and its local face across (cell, localFace)
func (m *Mesh) NeighborFace(cell, localFace int) (nbr, nbrLocalFace int) {
	return m.eToE[cell][localFace], m.eToNF[cell][localFace]
}

// IsGhost reports whether a cell index refers to a ghost cell
func (m *Mesh) IsGhost(cell int) bool {
	return cell >= m.store.NCell && cell < m.store.NCell+len(m.ghosts)
}

// Ghost returns the ghost record for a ghost cell index
func (m *Mesh) Ghost(cell int) (g GhostCell, ok bool) {
	if !m.IsGhost(cell) {
		return
	}
	g = m.ghosts[cell-m.store.NCell]
	g.Nodes = copyInts(g.Nodes)
	return g, true
}

// Adjacency returns the cell graph over real and ghost cells as a CSR matrix.
// Entry (i,j) counts the faces shared by cells i and j.
func (m *Mesh) Adjacency() (A *sparse.CSR, err error) {
	ab := utils.NewAdjacencyBuilder(m.store.NCell + len(m.ghosts))
	for _, f := range m.interior {
		if err = ab.Link(f.Owner.Cell, f.Neighbor.Cell); err != nil {
			return
		}
	}
	for _, g := range m.ghosts {
		if err = ab.Link(g.Cell, g.Index); err != nil {
			return
		}
	}
	A = ab.ToCSR()
	return
}

// Statistics summarizes a mesh
type Statistics struct {
	NDim, Nodes, Cells, Faces, Edges int
	Interior, Boundary, Ghosts       int
	CellTypes                        map[utils.CellType]int
}

func (m *Mesh) Statistics() (st Statistics) {
	st = Statistics{
		NDim:      m.NDim(),
		Nodes:     m.NodeCount(),
		Cells:     m.CellCount(),
		Faces:     m.FaceCount(),
		Edges:     m.EdgeCount(),
		Interior:  len(m.interior),
		Boundary:  len(m.boundary),
		Ghosts:    len(m.ghosts),
		CellTypes: make(map[utils.CellType]int),
	}
	for _, ct := range m.store.CellTypes {
		st.CellTypes[ct]++
	}
	return
}

// PrintStatistics logs the mesh statistics at info level
func (m *Mesh) PrintStatistics() {
	st := m.Statistics()
	log.Info().Int("ndim", st.NDim).Int("nodes", st.Nodes).Int("cells", st.Cells).
		Int("faces", st.Faces).Int("edges", st.Edges).Msg("mesh statistics")
	types := make([]utils.CellType, 0, len(st.CellTypes))
	for ct := range st.CellTypes {
		types = append(types, ct)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, ct := range types {
		log.Info().Str("type", ct.String()).Int("count", st.CellTypes[ct]).Msg("cell type")
	}
	log.Info().Int("interior", st.Interior).Int("boundary", st.Boundary).
		Int("ghosts", st.Ghosts).Msg("face statistics")
	log.Debug().Object("mem", utils.GetMemUsage()).Msg("memory usage")
}

func (st Statistics) String() string {
	return fmt.Sprintf("ndim=%d nodes=%d cells=%d faces=%d edges=%d interior=%d boundary=%d ghosts=%d",
		st.NDim, st.Nodes, st.Cells, st.Faces, st.Edges, st.Interior, st.Boundary, st.Ghosts)
}
