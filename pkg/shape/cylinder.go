package shape

import "math"

// Cylinder is a right circular cylinder.
type Cylinder struct {
	base
	radius float64
	height float64
}

var _ Shape = (*Cylinder)(nil)

// NewCylinder returns a cylinder, or a *ValidationError if any argument is invalid.
func NewCylinder(name, color string, radius, height float64, opts ...Option) (*Cylinder, error) {
	b, err := newBase(KindCylinder, name, color, opts)
	if err != nil {
		return nil, err
	}
	dims := []dimension{{"radius", radius}, {"height", height}}
	if err := b.checkDimensions(dims...); err != nil {
		return nil, err
	}
	c := &Cylinder{base: b, radius: radius, height: height}
	if err := c.checkMeasurable(c, dims...); err != nil {
		return nil, err
	}
	c.created(c)
	return c, nil
}

func (c *Cylinder) Radius() float64 { return c.radius }
func (c *Cylinder) Height() float64 { return c.height }

// SetRadius replaces the radius; values <= 0 are rejected.
func (c *Cylinder) SetRadius(r float64) error {
	return c.setDimension(c, "radius", &c.radius, r)
}

// SetHeight replaces the height; values <= 0 are rejected.
func (c *Cylinder) SetHeight(h float64) error {
	return c.setDimension(c, "height", &c.height, h)
}

// Volume returns π·r²·h.
func (c *Cylinder) Volume() float64 {
	return math.Pi * c.radius * c.radius * c.height
}

// SurfaceArea returns 2·π·r·(r + h).
func (c *Cylinder) SurfaceArea() float64 {
	return 2 * math.Pi * c.radius * (c.radius + c.height)
}

func (c *Cylinder) String() string {
	return describe(&c.base, dimension{"radius", c.radius}, dimension{"height", c.height})
}
