package mesh

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/notargets/gomesh/utils"
)

// FaceKey is the order-independent identity of a face: its global node
// indices sorted ascending, padded with Sentinel.
type FaceKey [utils.MaxFaceNodes]int

func NewFaceKey(nodes []int) (key FaceKey) {
	for i := range key {
		key[i] = Sentinel
	}
	n := copy(key[:], nodes)
	sort.Ints(key[:n])
	return
}

func (k FaceKey) Arity() (n int) {
	for _, v := range k {
		if v == Sentinel {
			break
		}
		n++
	}
	return
}

func (k FaceKey) Nodes() []int {
	nodes := make([]int, k.Arity())
	copy(nodes, k[:])
	return nodes
}

// FaceOwner identifies a face by the cell that enumerates it and the local
// face index within that cell's template.
type FaceOwner struct {
	Cell      int
	LocalFace int
}

// FaceGroup is one distinct face with every cell that enumerated it
type FaceGroup struct {
	ID     int
	Key    FaceKey
	Nodes  []int       // Winding as enumerated by Owners[0]
	Owners []FaceOwner // In ascending cell order
}

func (g *FaceGroup) IsInterior() bool { return len(g.Owners) == 2 }
func (g *FaceGroup) IsBoundary() bool { return len(g.Owners) == 1 }

// FaceMap groups every local face enumeration by canonical key. Groups are
// kept in discovery order: ascending cell, then ascending local face.
type FaceMap struct {
	NDim         int
	NCell        int
	Groups       []FaceGroup
	Enumerations int // Local faces enumerated before grouping
	index        map[FaceKey]int
}

func newFaceMap(s *Store) *FaceMap {
	hint := s.NFaceHint
	if hint == 0 {
		hint = s.NCell * 3
	}
	return &FaceMap{
		NDim:   s.NDim,
		NCell:  s.NCell,
		Groups: make([]FaceGroup, 0, hint),
		index:  make(map[FaceKey]int, hint),
	}
}

// Clone returns a deep copy sharing no memory with fm
func (fm *FaceMap) Clone() *FaceMap {
	if fm == nil {
		return nil
	}
	out := &FaceMap{
		NDim:         fm.NDim,
		NCell:        fm.NCell,
		Groups:       make([]FaceGroup, len(fm.Groups)),
		Enumerations: fm.Enumerations,
		index:        make(map[FaceKey]int, len(fm.index)),
	}
	for i, g := range fm.Groups {
		g.Nodes = append([]int(nil), g.Nodes...)
		g.Owners = append([]FaceOwner(nil), g.Owners...)
		out.Groups[i] = g
	}
	for k, id := range fm.index {
		out.index[k] = id
	}
	return out
}

// Lookup finds a face by any ordering of its global node indices
func (fm *FaceMap) Lookup(nodes []int) (g *FaceGroup, found bool) {
	var id int
	if id, found = fm.index[NewFaceKey(nodes)]; found {
		g = &fm.Groups[id]
	}
	return
}

// Validate re-checks the owner count invariant
func (fm *FaceMap) Validate() error {
	if fm == nil {
		return invalidTopologyf("no face map")
	}
	for i := range fm.Groups {
		g := &fm.Groups[i]
		if len(g.Owners) > 2 {
			return &NonManifoldFaceError{Key: g.Key, Owners: g.Owners}
		}
		if len(g.Owners) == 0 {
			return invalidTopologyf("face %v has no owner", g.Key.Nodes())
		}
	}
	return nil
}

func (fm *FaceMap) NumInterior() (n int) {
	for i := range fm.Groups {
		if fm.Groups[i].IsInterior() {
			n++
		}
	}
	return
}

func (fm *FaceMap) NumBoundary() (n int) {
	for i := range fm.Groups {
		if fm.Groups[i].IsBoundary() {
			n++
		}
	}
	return
}

// faceRecord is one local face enumeration produced by a worker
type faceRecord struct {
	key   FaceKey
	nodes [utils.MaxFaceNodes]int
	arity int
	owner FaceOwner
}

func (fm *FaceMap) add(r *faceRecord) error {
	fm.Enumerations++
	if id, exists := fm.index[r.key]; exists {
		g := &fm.Groups[id]
		g.Owners = append(g.Owners, r.owner)
		if len(g.Owners) > 2 {
			owners := make([]FaceOwner, len(g.Owners))
			copy(owners, g.Owners)
			return &NonManifoldFaceError{Key: r.key, Owners: owners}
		}
		return nil
	}
	id := len(fm.Groups)
	nodes := make([]int, r.arity)
	copy(nodes, r.nodes[:r.arity])
	fm.Groups = append(fm.Groups, FaceGroup{
		ID:     id,
		Key:    r.key,
		Nodes:  nodes,
		Owners: append(make([]FaceOwner, 0, 2), r.owner),
	})
	fm.index[r.key] = id
	return nil
}

// enumerateCells lists the local faces of cells [kMin, kMax) in order
func enumerateCells(s *Store, kMin, kMax int) (records []faceRecord) {
	var (
		n int
	)
	for k := kMin; k < kMax; k++ {
		n += s.CellTypes[k].GetNumFaces()
	}
	records = make([]faceRecord, 0, n)
	for k := kMin; k < kMax; k++ {
		var (
			topo, _ = s.CellTypes[k].Topology()
			nodes   = s.Nodes(k)
		)
		for lf, template := range topo.Faces {
			r := faceRecord{
				arity: len(template),
				owner: FaceOwner{Cell: k, LocalFace: lf},
			}
			for i := range r.nodes {
				r.nodes[i] = Sentinel
			}
			for i, ln := range template {
				r.nodes[i] = nodes[ln]
			}
			r.key = NewFaceKey(r.nodes[:r.arity])
			records = append(records, r)
		}
	}
	return
}

// DeriveFaces enumerates every cell's local faces and groups them by canonical
// key. The store is frozen on entry. A face with three or more owners aborts
// the derivation with a *NonManifoldFaceError.
func DeriveFaces(s *Store) (fm *FaceMap, err error) {
	if err = s.Freeze(); err != nil {
		return nil, err
	}
	fm = newFaceMap(s)
	records := enumerateCells(s, 0, s.NCell)
	for i := range records {
		if err = fm.add(&records[i]); err != nil {
			return nil, err
		}
	}
	log.Debug().Int("cells", s.NCell).Int("enumerated", fm.Enumerations).
		Int("faces", len(fm.Groups)).Msg("derived faces")
	return
}

type faceBatch struct {
	bucket  int
	records []faceRecord
}

// DeriveFacesParallel splits the cells into contiguous ranges, enumerates each
// range in its own goroutine and merges the batches in range order on the
// calling goroutine, so the result matches DeriveFaces exactly.
func DeriveFacesParallel(s *Store, workers int) (fm *FaceMap, err error) {
	if err = s.Freeze(); err != nil {
		return nil, err
	}
	var (
		pm      = utils.NewPartitionMap(utils.DefaultParallelDegree(workers), s.NCell)
		NP      = pm.ParallelDegree
		results = make(chan faceBatch, NP)
		batches = make([][]faceRecord, NP)
	)
	if NP == 1 {
		return DeriveFaces(s)
	}
	for np := 0; np < NP; np++ {
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			results <- faceBatch{bucket: np, records: enumerateCells(s, kMin, kMax)}
		}(np)
	}
	for i := 0; i < NP; i++ {
		b := <-results
		batches[b.bucket] = b.records
		log.Trace().Int("bucket", b.bucket).Int("cells", pm.GetBucketDimension(b.bucket)).
			Int("enumerated", len(b.records)).Msg("face batch")
	}
	fm = newFaceMap(s)
	for _, records := range batches {
		for i := range records {
			if err = fm.add(&records[i]); err != nil {
				bn, kMin, kMax := pm.GetBucket(records[i].owner.Cell)
				log.Debug().Err(err).Int("bucket", bn).Int("kMin", kMin).Int("kMax", kMax).
					Msg("face merge failed")
				return nil, err
			}
		}
	}
	log.Debug().Int("cells", s.NCell).Int("workers", NP).Int("enumerated", fm.Enumerations).
		Int("faces", len(fm.Groups)).Msg("derived faces")
	return
}
