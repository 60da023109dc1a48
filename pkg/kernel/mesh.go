package kernel

import (
	"math"

	"github.com/golang/geo/r3"
)

// Mesh is a triangle mesh.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // name of the shape this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

func (m *Mesh) vertex(i uint32) r3.Vector {
	j := int(i) * 3
	return r3.Vector{
		X: float64(m.Vertices[j]),
		Y: float64(m.Vertices[j+1]),
		Z: float64(m.Vertices[j+2]),
	}
}

// triangles calls fn with the corners of every triangle.
func (m *Mesh) triangles(fn func(a, b, c r3.Vector)) {
	for t := 0; t+2 < len(m.Indices); t += 3 {
		fn(m.vertex(m.Indices[t]), m.vertex(m.Indices[t+1]), m.vertex(m.Indices[t+2]))
	}
}

// SurfaceArea returns the summed area of all triangles.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	m.triangles(func(a, b, c r3.Vector) {
		area += b.Sub(a).Cross(c.Sub(a)).Norm() / 2
	})
	return area
}

// Volume returns the enclosed volume of a closed mesh using signed
// tetrahedra against the origin. Winding direction does not matter.
func (m *Mesh) Volume() float64 {
	var vol float64
	m.triangles(func(a, b, c r3.Vector) {
		vol += a.Dot(b.Cross(c)) / 6
	})
	return math.Abs(vol)
}

// Bounds returns the axis-aligned bounds of the vertices. An empty mesh
// has zero bounds.
func (m *Mesh) Bounds() (min, max r3.Vector) {
	if m.IsEmpty() {
		return r3.Vector{}, r3.Vector{}
	}
	min = m.vertex(0)
	max = min
	for i := uint32(1); int(i) < m.VertexCount(); i++ {
		v := m.vertex(i)
		min = r3.Vector{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = r3.Vector{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
	}
	return min, max
}
