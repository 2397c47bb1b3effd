package mesh

import (
	"github.com/rs/zerolog/log"

	"github.com/notargets/gomesh/utils"
)

// GhostCell is a degenerate cell mirrored across one boundary face. Its
// index lies past the real cells, at NCell + BoundaryFace.
type GhostCell struct {
	Index        int
	Type         utils.CellType // Face shape: Line, Triangle or Quad
	Nodes        []int          // Same nodes as the boundary face
	BoundaryFace int            // Index into the boundary sequence
	Cell         int            // Real cell across the boundary face
	LocalFace    int            // Local face of Cell that the ghost mirrors
}

// SynthesizeGhosts creates one ghost per boundary face in boundary order
func SynthesizeGhosts(ncell int, bfs []BoundaryFace) (ghosts []GhostCell) {
	ghosts = make([]GhostCell, len(bfs))
	for i, bf := range bfs {
		nodes := make([]int, len(bf.Nodes))
		copy(nodes, bf.Nodes)
		ghosts[i] = GhostCell{
			Index:        ncell + i,
			Type:         utils.FaceShape(len(nodes)),
			Nodes:        nodes,
			BoundaryFace: i,
			Cell:         bf.Cell,
			LocalFace:    bf.LocalFace,
		}
	}
	log.Debug().Int("ghosts", len(ghosts)).Int("firstIndex", ncell).Msg("synthesized ghosts")
	return
}
