package readers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/utils"
)

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*mesh.Input, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmsh22(filename)
	case ".su2":
		return ReadSU2(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// element is one cell as read from a file, before dimension filtering
type element struct {
	ctype utils.CellType
	nodes []int // Array indices
}

// assemble keeps the elements of the highest dimension present and builds the
// input arrays. Lower dimensional elements are boundary markers.
func assemble(title string, coords [][]float64, elems []element) (in *mesh.Input, err error) {
	var (
		ndim int
	)
	for _, e := range elems {
		if d := e.ctype.GetDimension(); d > ndim {
			ndim = d
		}
	}
	if ndim < 2 {
		return nil, fmt.Errorf("no 2D or 3D cells found")
	}
	in = &mesh.Input{
		Title:       title,
		NDim:        ndim,
		Coordinates: make([][]float64, len(coords)),
	}
	for i, xyz := range coords {
		in.Coordinates[i] = append([]float64(nil), xyz[:ndim]...)
	}
	for _, e := range elems {
		if e.ctype.GetDimension() != ndim || !e.ctype.IsCell() {
			continue
		}
		in.AddCell(e.ctype, e.nodes...)
	}
	return
}
