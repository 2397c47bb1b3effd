package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopology covers out of range node indices, node count / type
	// mismatches and writes to a frozen store.
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrNonManifoldFace is returned when one face is enumerated by three or
	// more cells.
	ErrNonManifoldFace = errors.New("non-manifold face")
	// ErrUnknownCellType is returned for a cell type outside the enumeration.
	ErrUnknownCellType = errors.New("unknown cell type")
)

func invalidTopologyf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTopology, fmt.Sprintf(format, args...))
}

// NonManifoldFaceError carries the face and every cell that enumerated it
type NonManifoldFaceError struct {
	Key    FaceKey
	Owners []FaceOwner
}

func (e *NonManifoldFaceError) Error() string {
	return fmt.Sprintf("%s: face %v has %d owners %v",
		ErrNonManifoldFace, e.Key.Nodes(), len(e.Owners), e.Owners)
}

func (e *NonManifoldFaceError) Unwrap() error { return ErrNonManifoldFace }
