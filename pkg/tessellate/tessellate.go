// Package tessellate turns analytic shapes into kernel solids and
// triangle meshes: one mesh per shape, side-by-side scene layout, STL
// export and a mesh-versus-formula cross-check.
package tessellate

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/chazu/solids/pkg/analysis"
	"github.com/chazu/solids/pkg/kernel"
	"github.com/chazu/solids/pkg/shape"
)

// DefaultGap is the spacing left between neighbouring shapes in a layout.
const DefaultGap = 1.0

// Tessellate produces one triangle mesh per shape, in input order. Each
// mesh's PartName is the shape's name. Shapes are meshed in place,
// centered on the origin, up to GOMAXPROCS at a time.
func Tessellate(k kernel.Kernel, shapes []shape.Shape) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, len(shapes))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range shapes {
		eg.Go(func() error {
			solid, err := kernel.Build(k, s)
			if err != nil {
				return fmt.Errorf("tessellate: shape %d: %w", i+1, err)
			}
			mesh, err := k.ToMesh(solid)
			if err != nil {
				return fmt.Errorf("tessellate: ToMesh failed for %q: %w", s.Name(), err)
			}
			mesh.PartName = s.Name()
			meshes[i] = mesh
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return meshes, nil
}

// Placed is a shape's solid after layout.
type Placed struct {
	Shape  shape.Shape
	Solid  kernel.Solid
	Offset [3]float64
}

// Layout lines the shapes up along +X in input order, leaving gap between
// neighbouring bounding boxes and resting every shape on the Z=0 plane.
// A negative or non-finite gap is an error.
func Layout(k kernel.Kernel, shapes []shape.Shape, gap float64) ([]Placed, error) {
	if gap < 0 || math.IsNaN(gap) || math.IsInf(gap, 0) {
		return nil, fmt.Errorf("tessellate: layout gap must be a non-negative number, got %g", gap)
	}
	placed := make([]Placed, 0, len(shapes))
	cursor := 0.0
	for i, s := range shapes {
		solid, err := kernel.Build(k, s)
		if err != nil {
			return nil, fmt.Errorf("tessellate: layout shape %d: %w", i+1, err)
		}
		min, max := solid.BoundingBox()
		offset := [3]float64{cursor - min[0], 0, -min[2]}
		placed = append(placed, Placed{
			Shape:  s,
			Solid:  k.Translate(solid, offset[0], offset[1], offset[2]),
			Offset: offset,
		})
		cursor += max[0] - min[0] + gap
	}
	return placed, nil
}

// Comparison holds the analytic and mesh-estimated metrics of one shape.
type Comparison struct {
	Index     int        `json:"index"`
	Name      string     `json:"name"`
	Kind      shape.Kind `json:"kind"`
	Triangles int        `json:"triangles"`

	Volume          float64 `json:"volume"`
	MeshVolume      float64 `json:"meshVolume"`
	VolumeError     float64 `json:"volumeError"` // relative: |mesh - analytic| / analytic
	SurfaceArea     float64 `json:"surfaceArea"`
	MeshSurfaceArea float64 `json:"meshSurfaceArea"`
	AreaError       float64 `json:"areaError"`
}

// Compare tessellates every shape and reports how far the mesh volume and
// area drift from the closed-form values.
func Compare(k kernel.Kernel, shapes []shape.Shape) ([]Comparison, error) {
	meshes, err := Tessellate(k, shapes)
	if err != nil {
		return nil, err
	}
	out := make([]Comparison, 0, len(shapes))
	for i, s := range shapes {
		m := analysis.Measure(i+1, s)
		mesh := meshes[i]
		mv, ma := mesh.Volume(), mesh.SurfaceArea()
		out = append(out, Comparison{
			Index:           m.Index,
			Name:            s.Name(),
			Kind:            s.Kind(),
			Triangles:       mesh.TriangleCount(),
			Volume:          m.Volume,
			MeshVolume:      mv,
			VolumeError:     math.Abs(mv-m.Volume) / m.Volume,
			SurfaceArea:     m.SurfaceArea,
			MeshSurfaceArea: ma,
			AreaError:       math.Abs(ma-m.SurfaceArea) / m.SurfaceArea,
		})
	}
	return out, nil
}

// Export writes one STL file per shape into dir and returns the paths in
// input order. Each shape stays centered on the origin. dir is created if
// missing.
func Export(k kernel.Kernel, shapes []shape.Shape, dir string) ([]string, error) {
	solids := make([]kernel.Solid, 0, len(shapes))
	for i, s := range shapes {
		solid, err := kernel.Build(k, s)
		if err != nil {
			return nil, fmt.Errorf("tessellate: export shape %d: %w", i+1, err)
		}
		solids = append(solids, solid)
	}
	return writeAll(k, shapes, solids, dir)
}

// ExportLayout is Export with every solid moved to its Layout position,
// so the files line up when loaded together.
func ExportLayout(k kernel.Kernel, shapes []shape.Shape, dir string, gap float64) ([]string, error) {
	placed, err := Layout(k, shapes, gap)
	if err != nil {
		return nil, err
	}
	solids := make([]kernel.Solid, len(placed))
	for i, p := range placed {
		solids[i] = p.Solid
	}
	return writeAll(k, shapes, solids, dir)
}

func writeAll(k kernel.Kernel, shapes []shape.Shape, solids []kernel.Solid, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tessellate: export: %w", err)
	}
	paths := make([]string, 0, len(shapes))
	for i, s := range shapes {
		path := filepath.Join(dir, FileName(i+1, s))
		if err := k.WriteSTL(solids[i], path); err != nil {
			return nil, fmt.Errorf("tessellate: export %q: %w", s.Name(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FileName returns the STL file name for the index-th shape, e.g.
// "01-red-ball.stl".
func FileName(index int, s shape.Shape) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s.Name())) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		slug = strings.ToLower(s.Kind().String())
	}
	return fmt.Sprintf("%02d-%s.stl", index, slug)
}
