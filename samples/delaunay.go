package samples

import (
	"fmt"

	"github.com/pradeep-pyro/triangle"

	"github.com/notargets/gomesh/mesh"
	"github.com/notargets/gomesh/utils"
)

// Delaunay triangulates a planar point set into a TRIANGLE mesh. Output
// triangles are reordered counter-clockwise where needed.
func Delaunay(points [][2]float64) (in *mesh.Input, err error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("delaunay needs at least 3 points, got %d", len(points))
	}
	tris := triangle.Delaunay(points)
	if len(tris) == 0 {
		return nil, fmt.Errorf("delaunay produced no triangles from %d points", len(points))
	}
	in = &mesh.Input{
		Title:       "delaunay",
		NDim:        2,
		Coordinates: make([][]float64, len(points)),
	}
	for i, p := range points {
		in.Coordinates[i] = []float64{p[0], p[1]}
	}
	for _, tri := range tris {
		a, b, c := int(tri[0]), int(tri[1]), int(tri[2])
		if signedArea(points[a], points[b], points[c]) < 0 {
			b, c = c, b
		}
		in.AddCell(utils.Triangle, a, b, c)
	}
	return
}

// GridPoints returns an nx by ny lattice over [0,1]x[0,1]
func GridPoints(nx, ny int) (points [][2]float64) {
	points = make([][2]float64, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			points = append(points, [2]float64{
				float64(i) / float64(nx-1),
				float64(j) / float64(ny-1),
			})
		}
	}
	return
}

func signedArea(a, b, c [2]float64) float64 {
	return 0.5 * ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1]))
}
