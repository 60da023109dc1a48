package shape

import "math"

// Cone is a right circular cone standing on its base.
type Cone struct {
	base
	radius float64
	height float64
}

var _ Shape = (*Cone)(nil)

// NewCone returns a cone, or a *ValidationError if any argument is invalid.
func NewCone(name, color string, radius, height float64, opts ...Option) (*Cone, error) {
	b, err := newBase(KindCone, name, color, opts)
	if err != nil {
		return nil, err
	}
	dims := []dimension{{"radius", radius}, {"height", height}}
	if err := b.checkDimensions(dims...); err != nil {
		return nil, err
	}
	c := &Cone{base: b, radius: radius, height: height}
	if err := c.checkMeasurable(c, dims...); err != nil {
		return nil, err
	}
	c.created(c)
	return c, nil
}

func (c *Cone) Radius() float64 { return c.radius }
func (c *Cone) Height() float64 { return c.height }

// SetRadius replaces the base radius; values <= 0 are rejected.
func (c *Cone) SetRadius(r float64) error {
	return c.setDimension(c, "radius", &c.radius, r)
}

// SetHeight replaces the height; values <= 0 are rejected.
func (c *Cone) SetHeight(h float64) error {
	return c.setDimension(c, "height", &c.height, h)
}

// SlantHeight returns sqrt(h² + r²), the apex-to-rim distance. It is
// derived on every call.
func (c *Cone) SlantHeight() float64 {
	return math.Sqrt(c.height*c.height + c.radius*c.radius)
}

// Volume returns (1/3)·π·r²·h.
func (c *Cone) Volume() float64 {
	return math.Pi * c.radius * c.radius * c.height / 3
}

// SurfaceArea returns π·r·(r + slant).
func (c *Cone) SurfaceArea() float64 {
	return math.Pi * c.radius * (c.radius + c.SlantHeight())
}

func (c *Cone) String() string {
	return describe(&c.base, dimension{"radius", c.radius}, dimension{"height", c.height})
}
