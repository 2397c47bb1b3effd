package types

import (
	"fmt"
	"math"
	"sort"
)

/*
EdgeKey stores an undirected edge as two node indices packed into one uint64,
smaller index in the low 32 bits. The edge between nodes 4 and 0 has the same
key as the edge between 0 and 4, so keys can be hashed and sorted directly.
*/
type EdgeKey uint64

func NewEdgeKey(a, b int) (ek EdgeKey, err error) {
	var (
		limit = math.MaxUint32
	)
	if a < 0 || a > limit || b < 0 || b > limit {
		err = fmt.Errorf("unable to pack nodes %d and %d into an edge key", a, b)
		return
	}
	if a > b {
		a, b = b, a
	}
	ek = EdgeKey(uint64(a) | uint64(b)<<32)
	return
}

// Vertices returns the edge nodes in ascending order, reversed when rev is set
func (ek EdgeKey) Vertices(rev bool) (verts [2]int) {
	verts[0] = int(ek & math.MaxUint32)
	verts[1] = int(ek >> 32)
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (ek EdgeKey) String() string {
	v := ek.Vertices(false)
	return fmt.Sprintf("[%d,%d]", v[0], v[1])
}

// EdgeSet collects distinct edges
type EdgeSet map[EdgeKey]struct{}

func (es EdgeSet) Add(a, b int) (err error) {
	var ek EdgeKey
	if ek, err = NewEdgeKey(a, b); err != nil {
		return
	}
	es[ek] = struct{}{}
	return
}

// Sorted lists the edges by ascending key, which orders them by their larger
// node first
func (es EdgeSet) Sorted() (keys []EdgeKey) {
	keys = make([]EdgeKey, 0, len(es))
	for ek := range es {
		keys = append(keys, ek)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return
}
