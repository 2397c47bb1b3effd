package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// AdjacencyBuilder accumulates symmetric cell-to-cell links and produces a
// compressed row matrix. The stored value is the number of shared faces.
type AdjacencyBuilder struct {
	N   int
	dok *sparse.DOK
}

func NewAdjacencyBuilder(N int) *AdjacencyBuilder {
	return &AdjacencyBuilder{
		N:   N,
		dok: sparse.NewDOK(N, N),
	}
}

// Link records that cells i and j share one face
func (ab *AdjacencyBuilder) Link(i, j int) error {
	if i < 0 || i >= ab.N || j < 0 || j >= ab.N {
		return fmt.Errorf("adjacency link (%d,%d) outside [0,%d)", i, j, ab.N)
	}
	if i == j {
		return fmt.Errorf("adjacency link (%d,%d) is a self loop", i, j)
	}
	ab.dok.Set(i, j, ab.dok.At(i, j)+1)
	ab.dok.Set(j, i, ab.dok.At(j, i)+1)
	return nil
}

func (ab *AdjacencyBuilder) ToCSR() *sparse.CSR {
	return ab.dok.ToCSR()
}

// Degrees returns the number of distinct neighbors for each row of A
func Degrees(A *sparse.CSR) (deg []int) {
	nr, _ := A.Dims()
	deg = make([]int, nr)
	A.DoNonZero(func(i, j int, v float64) {
		deg[i]++
	})
	return
}
