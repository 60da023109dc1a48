package main

import (
	"github.com/chazu/solids/pkg/shape"
)

// demoShapes builds the five-shape demonstration set, one of each kind.
func demoShapes(opts ...shape.Option) ([]shape.Shape, error) {
	sphere, err := shape.NewSphere("Red Ball", "Red", 5.0, opts...)
	if err != nil {
		return nil, err
	}
	cube, err := shape.NewCube("Blue Box", "Blue", 4.0, opts...)
	if err != nil {
		return nil, err
	}
	cylinder, err := shape.NewCylinder("Green Pipe", "Green", 3.0, 7.0, opts...)
	if err != nil {
		return nil, err
	}
	prism, err := shape.NewRectangularPrism("Yellow Brick", "Yellow", 6.0, 3.0, 2.0, opts...)
	if err != nil {
		return nil, err
	}
	cone, err := shape.NewCone("Purple Party Hat", "Purple", 4.0, 9.0, opts...)
	if err != nil {
		return nil, err
	}
	return []shape.Shape{sphere, cube, cylinder, prism, cone}, nil
}
