// Package kernel defines the geometry kernel used to turn analytic shapes
// into solids and triangle meshes. The sdfx subpackage is the only
// implementation; the interface keeps the rest of the system independent
// of it.
package kernel

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel builds solids centered on the origin and tessellates them.
type Kernel interface {
	// Primitives
	Sphere(radius float64) (Solid, error)
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)
	Cone(height, radius float64) (Solid, error) // base at -height/2, apex at +height/2

	// Transforms
	Translate(s Solid, x, y, z float64) Solid

	// Output
	ToMesh(s Solid) (*Mesh, error)
	WriteSTL(s Solid, path string) error
}
