package kernel

import (
	"fmt"

	"github.com/chazu/solids/pkg/shape"
)

// Build creates the kernel solid matching s's current dimensions.
// Cubes and prisms map to boxes with length, width, height along X, Y, Z.
func Build(k Kernel, s shape.Shape) (Solid, error) {
	var (
		solid Solid
		err   error
	)
	switch v := s.(type) {
	case *shape.Sphere:
		solid, err = k.Sphere(v.Radius())
	case *shape.Cube:
		solid, err = k.Box(v.SideLength(), v.SideLength(), v.SideLength())
	case *shape.Cylinder:
		solid, err = k.Cylinder(v.Height(), v.Radius())
	case *shape.RectangularPrism:
		solid, err = k.Box(v.Length(), v.Width(), v.Height())
	case *shape.Cone:
		solid, err = k.Cone(v.Height(), v.Radius())
	default:
		return nil, fmt.Errorf("kernel: unsupported shape %s", s.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("kernel: build %s %q: %w", s.Kind(), s.Name(), err)
	}
	return solid, nil
}
