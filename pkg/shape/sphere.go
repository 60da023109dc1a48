package shape

import "math"

// Sphere is a ball of the given radius.
type Sphere struct {
	base
	radius float64
}

var _ Shape = (*Sphere)(nil)

// NewSphere returns a sphere, or a *ValidationError if any argument is invalid.
func NewSphere(name, color string, radius float64, opts ...Option) (*Sphere, error) {
	b, err := newBase(KindSphere, name, color, opts)
	if err != nil {
		return nil, err
	}
	dims := []dimension{{"radius", radius}}
	if err := b.checkDimensions(dims...); err != nil {
		return nil, err
	}
	s := &Sphere{base: b, radius: radius}
	if err := s.checkMeasurable(s, dims...); err != nil {
		return nil, err
	}
	s.created(s)
	return s, nil
}

// Radius returns the radius.
func (s *Sphere) Radius() float64 { return s.radius }

// SetRadius replaces the radius; values <= 0 are rejected.
func (s *Sphere) SetRadius(r float64) error {
	return s.setDimension(s, "radius", &s.radius, r)
}

// Volume returns 4/3·π·r³.
func (s *Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * math.Pow(s.radius, 3)
}

// SurfaceArea returns 4·π·r².
func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

func (s *Sphere) String() string {
	return describe(&s.base, dimension{"radius", s.radius})
}
