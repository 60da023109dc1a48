package shape

// Cube is a regular hexahedron.
type Cube struct {
	base
	sideLength float64
}

var _ Shape = (*Cube)(nil)

// NewCube returns a cube, or a *ValidationError if any argument is invalid.
func NewCube(name, color string, sideLength float64, opts ...Option) (*Cube, error) {
	b, err := newBase(KindCube, name, color, opts)
	if err != nil {
		return nil, err
	}
	dims := []dimension{{"sideLength", sideLength}}
	if err := b.checkDimensions(dims...); err != nil {
		return nil, err
	}
	c := &Cube{base: b, sideLength: sideLength}
	if err := c.checkMeasurable(c, dims...); err != nil {
		return nil, err
	}
	c.created(c)
	return c, nil
}

// SideLength returns the edge length.
func (c *Cube) SideLength() float64 { return c.sideLength }

// SetSideLength replaces the edge length; values <= 0 are rejected.
func (c *Cube) SetSideLength(s float64) error {
	return c.setDimension(c, "sideLength", &c.sideLength, s)
}

// Volume returns s³.
func (c *Cube) Volume() float64 {
	return c.sideLength * c.sideLength * c.sideLength
}

// SurfaceArea returns 6·s².
func (c *Cube) SurfaceArea() float64 {
	return 6 * c.sideLength * c.sideLength
}

func (c *Cube) String() string {
	return describe(&c.base, dimension{"sideLength", c.sideLength})
}
