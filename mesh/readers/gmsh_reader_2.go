package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/utils"
)

// gmshElementType22 maps Gmsh element type numbers to cell types. High order
// elements list their corner nodes first, so only the corners are kept.
var gmshElementType22 = map[int]utils.CellType{
	1:  utils.Line,
	2:  utils.Triangle,
	3:  utils.Quad,
	4:  utils.Tet,
	5:  utils.Hex,
	6:  utils.Prism,
	7:  utils.Pyramid,
	8:  utils.Line,     // 3-node line
	9:  utils.Triangle, // 6-node triangle
	10: utils.Quad,     // 9-node quad
	11: utils.Tet,      // 10-node tet
	12: utils.Hex,      // 27-node hex
	13: utils.Prism,    // 18-node prism
	14: utils.Pyramid,  // 14-node pyramid
	16: utils.Quad,     // 8-node quad
	17: utils.Hex,      // 20-node hex
	18: utils.Prism,    // 15-node prism
	19: utils.Pyramid,  // 13-node pyramid
}

// ReadGmsh22 reads a Gmsh MSH file format version 2.2 (ASCII)
func ReadGmsh22(filename string) (*mesh.Input, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseGmsh22(file, strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
}

type gmshReader struct {
	scanner *bufio.Scanner
	line    int
	nodeIdx map[int]int // Gmsh node id -> array index
	coords  [][]float64
	elems   []element
}

func (r *gmshReader) next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), true
}

func (r *gmshReader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("gmsh line %d: %s", r.line, fmt.Sprintf(format, args...))
}

func (r *gmshReader) skipTo(endMarker string) error {
	for {
		line, ok := r.next()
		if !ok {
			return r.errorf("unexpected EOF looking for %s", endMarker)
		}
		if line == endMarker {
			return nil
		}
	}
}

// ParseGmsh22 reads Gmsh 2.2 ASCII content from rd
func ParseGmsh22(rd io.Reader, title string) (in *mesh.Input, err error) {
	r := &gmshReader{
		scanner: bufio.NewScanner(rd),
		nodeIdx: make(map[int]int),
	}
	r.scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var sawFormat bool

	for {
		line, ok := r.next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		switch line {
		case "$MeshFormat":
			if err = r.readMeshFormat(); err != nil {
				return nil, err
			}
			sawFormat = true
		case "$Nodes":
			if err = r.readNodes(); err != nil {
				return nil, err
			}
		case "$Elements":
			if err = r.readElements(); err != nil {
				return nil, err
			}
		default:
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				// Skip sections that carry no topology
				if err = r.skipTo("$End" + line[1:]); err != nil {
					return nil, err
				}
			}
		}
	}
	if err = r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	if !sawFormat {
		return nil, fmt.Errorf("could not find $MeshFormat section")
	}
	return assemble(title, r.coords, r.elems)
}

func (r *gmshReader) readMeshFormat() error {
	line, ok := r.next()
	if !ok {
		return r.errorf("unexpected EOF in MeshFormat")
	}
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return r.errorf("invalid MeshFormat line %q", line)
	}
	if !strings.HasPrefix(parts[0], "2.") {
		return r.errorf("unsupported Gmsh format version: %s", parts[0])
	}
	if parts[1] != "0" {
		return r.errorf("binary Gmsh files are not supported")
	}
	return r.skipTo("$EndMeshFormat")
}

func (r *gmshReader) readNodes() error {
	line, ok := r.next()
	if !ok {
		return r.errorf("unexpected EOF in Nodes")
	}
	numNodes, err := strconv.Atoi(line)
	if err != nil {
		return r.errorf("invalid node count %q", line)
	}
	r.coords = make([][]float64, 0, numNodes)

	for i := 0; i < numNodes; i++ {
		if line, ok = r.next(); !ok {
			return r.errorf("unexpected EOF reading nodes")
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			return r.errorf("invalid node line: %s", line)
		}
		nodeID, err := strconv.Atoi(parts[0])
		if err != nil {
			return r.errorf("invalid node id %q", parts[0])
		}
		xyz := make([]float64, 3)
		for j := 0; j < 3; j++ {
			if xyz[j], err = strconv.ParseFloat(parts[1+j], 64); err != nil {
				return r.errorf("invalid coordinate %q", parts[1+j])
			}
		}
		if _, dup := r.nodeIdx[nodeID]; dup {
			return r.errorf("duplicate node id %d", nodeID)
		}
		r.nodeIdx[nodeID] = len(r.coords)
		r.coords = append(r.coords, xyz)
	}
	return r.skipTo("$EndNodes")
}

func (r *gmshReader) readElements() error {
	line, ok := r.next()
	if !ok {
		return r.errorf("unexpected EOF in Elements")
	}
	numElements, err := strconv.Atoi(line)
	if err != nil {
		return r.errorf("invalid element count %q", line)
	}

	for i := 0; i < numElements; i++ {
		if line, ok = r.next(); !ok {
			return r.errorf("unexpected EOF reading elements")
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			return r.errorf("invalid element line")
		}
		elemType, err := strconv.Atoi(parts[1])
		if err != nil {
			return r.errorf("element %s: invalid element type %q", parts[0], parts[1])
		}
		numTags, err := strconv.Atoi(parts[2])
		if err != nil || numTags < 0 {
			return r.errorf("element %s: invalid tag count %q", parts[0], parts[2])
		}
		etype, ok := gmshElementType22[elemType]
		if !ok {
			// Points and unsupported shapes
			continue
		}
		var (
			k         = etype.GetNumNodes()
			nodeStart = 3 + numTags
		)
		if len(parts) < nodeStart+k {
			return r.errorf("element %s: expected %d nodes, got %d", parts[0], k, len(parts)-nodeStart)
		}
		nodes := make([]int, k)
		for j := 0; j < k; j++ {
			id, err := strconv.Atoi(parts[nodeStart+j])
			if err != nil {
				return r.errorf("invalid node id %q", parts[nodeStart+j])
			}
			idx, found := r.nodeIdx[id]
			if !found {
				return r.errorf("element %s references unknown node %d", parts[0], id)
			}
			nodes[j] = idx
		}
		if etype == utils.Prism {
			nodes = gmshPrismToCatalog(nodes)
		}
		r.elems = append(r.elems, element{ctype: etype, nodes: nodes})
	}
	return r.skipTo("$EndElements")
}

// gmshPrismToCatalog reverses both triangles: Gmsh winds 0-1-2 toward 3-4-5,
// the catalog winds it away
func gmshPrismToCatalog(n []int) []int {
	return []int{n[0], n[2], n[1], n[3], n[5], n[4]}
}
