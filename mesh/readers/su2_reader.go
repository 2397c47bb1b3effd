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

// su2ElementTypeMap maps SU2 (VTK) element identifiers. VTK node orderings
// already match the catalog windings.
var su2ElementTypeMap = map[int]utils.CellType{
	3:  utils.Line,
	5:  utils.Triangle,
	9:  utils.Quad,
	10: utils.Tet,
	12: utils.Hex,
	13: utils.Prism,
	14: utils.Pyramid,
}

// ReadSU2 reads an SU2 native format file
func ReadSU2(filename string) (*mesh.Input, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseSU2(file, strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
}

// ParseSU2 reads SU2 content from rd. Boundary markers are validated and
// skipped; boundary faces are derived from the cells.
func ParseSU2(rd io.Reader, title string) (in *mesh.Input, err error) {
	var (
		scanner  = bufio.NewScanner(rd)
		lineNo   int
		ndime    int
		coords   [][]float64
		elems    []element
		hasNDIME bool
	)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			// Skip comments (text after %)
			if idx := strings.Index(line, "%"); idx >= 0 {
				line = line[:idx]
			}
			if line = strings.TrimSpace(line); line != "" {
				return line, true
			}
		}
		return "", false
	}
	errorf := func(format string, args ...interface{}) error {
		return fmt.Errorf("su2 line %d: %s", lineNo, fmt.Sprintf(format, args...))
	}
	value := func(line, key string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, key)))
		if err != nil {
			return 0, errorf("invalid %s line %q", key, line)
		}
		return v, nil
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(line, "NDIME="):
			if ndime, err = value(line, "NDIME="); err != nil {
				return nil, err
			}
			if ndime != 2 && ndime != 3 {
				return nil, errorf("unsupported dimension: NDIME=%d", ndime)
			}
			hasNDIME = true

		case strings.HasPrefix(line, "NELEM="):
			if !hasNDIME {
				return nil, errorf("NELEM before NDIME")
			}
			var nelem int
			if nelem, err = value(line, "NELEM="); err != nil {
				return nil, err
			}
			elems = make([]element, 0, nelem)
			for i := 0; i < nelem; i++ {
				if line, ok = next(); !ok {
					return nil, errorf("unexpected EOF reading elements")
				}
				var e element
				if e, err = parseSU2Element(line); err != nil {
					return nil, errorf("%v", err)
				}
				elems = append(elems, e)
			}

		case strings.HasPrefix(line, "NPOIN="):
			if !hasNDIME {
				return nil, errorf("NPOIN before NDIME")
			}
			fields := strings.Fields(strings.TrimPrefix(line, "NPOIN="))
			if len(fields) == 0 {
				return nil, errorf("invalid NPOIN line %q", line)
			}
			var npoin int
			if npoin, err = strconv.Atoi(fields[0]); err != nil {
				return nil, errorf("invalid NPOIN line %q", line)
			}
			coords = make([][]float64, npoin)
			for i := 0; i < npoin; i++ {
				if line, ok = next(); !ok {
					return nil, errorf("unexpected EOF reading nodes")
				}
				fields := strings.Fields(line)
				if len(fields) < ndime {
					return nil, errorf("invalid node line: expected at least %d coordinates", ndime)
				}
				xyz := make([]float64, 3) // Always store 3D coordinates
				for j := 0; j < ndime; j++ {
					if xyz[j], err = strconv.ParseFloat(fields[j], 64); err != nil {
						return nil, errorf("invalid coordinate: %v", err)
					}
				}
				coords[i] = xyz
			}

		case strings.HasPrefix(line, "NMARK="):
			var nmark int
			if nmark, err = value(line, "NMARK="); err != nil {
				return nil, err
			}
			for i := 0; i < nmark; i++ {
				if line, ok = next(); !ok || !strings.HasPrefix(line, "MARKER_TAG=") {
					return nil, errorf("expected MARKER_TAG= for marker %d", i)
				}
				if line, ok = next(); !ok || !strings.HasPrefix(line, "MARKER_ELEMS=") {
					return nil, errorf("expected MARKER_ELEMS= for marker %d", i)
				}
				var nme int
				if nme, err = value(line, "MARKER_ELEMS="); err != nil {
					return nil, err
				}
				for j := 0; j < nme; j++ {
					if _, ok = next(); !ok {
						return nil, errorf("unexpected EOF reading boundary elements")
					}
				}
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	for _, e := range elems {
		for _, n := range e.nodes {
			if n < 0 || n >= len(coords) {
				return nil, fmt.Errorf("node index %d out of range [0,%d)", n, len(coords))
			}
		}
	}
	return assemble(title, coords, elems)
}

func parseSU2Element(line string) (e element, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return e, fmt.Errorf("invalid element line %q", line)
	}
	su2Type, err := strconv.Atoi(fields[0])
	if err != nil {
		return e, fmt.Errorf("invalid element type: %v", err)
	}
	var ok bool
	if e.ctype, ok = su2ElementTypeMap[su2Type]; !ok {
		return e, fmt.Errorf("unknown element type: %d", su2Type)
	}
	k := e.ctype.GetNumNodes()
	if len(fields) < k+1 {
		return e, fmt.Errorf("element type %v expects %d nodes, got %d fields",
			e.ctype, k, len(fields)-1)
	}
	// Node IDs are 0-based; a trailing element index is ignored
	e.nodes = make([]int, k)
	for j := 0; j < k; j++ {
		if e.nodes[j], err = strconv.Atoi(fields[1+j]); err != nil {
			return e, fmt.Errorf("invalid node index: %v", err)
		}
	}
	return
}
