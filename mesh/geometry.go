package mesh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point returns a node as a 3-vector, Z is zero for 2D meshes
func (s *Store) Point(node int) (p r3.Vec) {
	p.X = s.Coords.At(node, 0)
	p.Y = s.Coords.At(node, 1)
	if s.NDim == 3 {
		p.Z = s.Coords.At(node, 2)
	}
	return
}

// Centroid is the vertex average of nodes
func (s *Store) Centroid(nodes []int) (c r3.Vec) {
	for _, n := range nodes {
		c = r3.Add(c, s.Point(n))
	}
	return r3.Scale(1/float64(len(nodes)), c)
}

// FaceNormal returns the area weighted normal of a face following its
// winding. A 2D edge a->b has normal (dy, -dx), which points out of a CCW cell.
func (s *Store) FaceNormal(nodes []int) (n r3.Vec) {
	if len(nodes) == 2 {
		d := r3.Sub(s.Point(nodes[1]), s.Point(nodes[0]))
		return r3.Vec{X: d.Y, Y: -d.X}
	}
	for i := range nodes {
		var (
			p = s.Point(nodes[i])
			q = s.Point(nodes[(i+1)%len(nodes)])
		)
		n = r3.Add(n, r3.Cross(p, q))
	}
	return r3.Scale(0.5, n)
}

// outwardSense is +1 when the normal of nodes points away from the cell
// centroid, -1 when it points inward and 0 when the face is degenerate
func (s *Store) outwardSense(cell int, nodes []int) int {
	d := r3.Dot(s.FaceNormal(nodes), r3.Sub(s.Centroid(nodes), s.Centroid(s.Nodes(cell))))
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

func (m *Mesh) Point(node int) r3.Vec { return m.store.Point(node) }

// CellCentroid is the vertex average of a real cell
func (m *Mesh) CellCentroid(cell int) r3.Vec {
	return m.store.Centroid(m.store.Nodes(cell))
}

func (m *Mesh) FaceCentroid(nodes []int) r3.Vec { return m.store.Centroid(nodes) }

func (m *Mesh) FaceNormal(nodes []int) r3.Vec { return m.store.FaceNormal(nodes) }

// CheckOrientation verifies that every boundary face normal points away from
// its owning cell and every interior face normal points from its owner
// toward its neighbor.
func (m *Mesh) CheckOrientation() error {
	var (
		bad []string
	)
	for _, bf := range m.boundary {
		if bf.Sense != 1 {
			bad = append(bad, fmt.Sprintf("boundary face %d (cell %d, local face %d)",
				bf.Index, bf.Cell, bf.LocalFace))
		}
	}
	for _, f := range m.interior {
		n := m.FaceNormal(f.Nodes)
		across := r3.Sub(m.CellCentroid(f.Neighbor.Cell), m.CellCentroid(f.Owner.Cell))
		if r3.Dot(n, across) <= 0 {
			bad = append(bad, fmt.Sprintf("interior face %d (cells %d->%d)",
				f.Index, f.Owner.Cell, f.Neighbor.Cell))
		}
	}
	if len(bad) != 0 {
		if len(bad) > 8 {
			bad = append(bad[:8], fmt.Sprintf("and %d more", len(bad)-8))
		}
		return invalidTopologyf("inward facing normals: %s", strings.Join(bad, ", "))
	}
	return nil
}

// GhostPlacer positions a ghost cell geometrically. Ghost topology never
// depends on it.
type GhostPlacer interface {
	Place(m *Mesh, g GhostCell) r3.Vec
}

// MirrorPlacer reflects the real cell's centroid across the boundary face plane
type MirrorPlacer struct{}

func (MirrorPlacer) Place(m *Mesh, g GhostCell) r3.Vec {
	var (
		c  = m.CellCentroid(g.Cell)
		p0 = m.FaceCentroid(g.Nodes)
		n  = m.FaceNormal(g.Nodes)
	)
	if r3.Norm(n) == 0 {
		return c
	}
	n = r3.Unit(n)
	return r3.Sub(c, r3.Scale(2*r3.Dot(r3.Sub(c, p0), n), n))
}

// GhostCentroids places every ghost cell with placer, MirrorPlacer when nil
func (m *Mesh) GhostCentroids(placer GhostPlacer) (centroids []r3.Vec) {
	if placer == nil {
		placer = MirrorPlacer{}
	}
	centroids = make([]r3.Vec, len(m.ghosts))
	for i, g := range m.ghosts {
		centroids[i] = placer.Place(m, g)
	}
	return
}
