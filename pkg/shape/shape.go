package shape

import "strings"

// Kind enumerates the shape variants.
type Kind int

const (
	KindSphere Kind = iota
	KindCube
	KindCylinder
	KindRectangularPrism
	KindCone
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "Sphere"
	case KindCube:
		return "Cube"
	case KindCylinder:
		return "Cylinder"
	case KindRectangularPrism:
		return "RectangularPrism"
	case KindCone:
		return "Cone"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Solid is anything with a volume and a surface area.
type Solid interface {
	Volume() float64
	SurfaceArea() float64
}

// Shape is a named, colored solid. The five concrete variants in this
// package are its only implementations.
type Shape interface {
	Solid
	Kind() Kind
	Name() string
	Color() string
	SetName(string) error
	SetColor(string) error
	String() string

	shape() // marker method restricting implementations to this package
}

// Describe returns the variant name, identity and dimensions of s,
// e.g. "Sphere {name='Red Ball', color='Red', radius=5.0}".
func Describe(s Shape) string {
	return s.String()
}

// Option configures a shape at construction time.
type Option func(*base)

// WithObserver attaches an observer that is notified of construction,
// mutation and rejected input. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(b *base) {
		b.observer = o
	}
}

// base holds the identity shared by every variant.
type base struct {
	kind     Kind
	name     string
	color    string
	observer Observer
}

// newBase validates name and color before any variant state is looked at.
func newBase(kind Kind, name, color string, opts []Option) (base, error) {
	b := base{kind: kind}
	for _, opt := range opts {
		opt(&b)
	}
	// Report against the proposed name so rejected constructions are traceable.
	b.name = name
	if err := b.checkText("name", name); err != nil {
		return base{}, err
	}
	if err := b.checkText("color", color); err != nil {
		return base{}, err
	}
	b.color = color
	return b, nil
}

func (b *base) shape() {}

// Kind returns the variant of the shape.
func (b *base) Kind() Kind { return b.kind }

// Name returns the shape's name.
func (b *base) Name() string { return b.name }

// Color returns the shape's color.
func (b *base) Color() string { return b.color }

// SetName replaces the name. A blank name is rejected and the old name kept.
func (b *base) SetName(name string) error {
	if err := b.checkText("name", name); err != nil {
		return err
	}
	old := b.name
	b.name = name
	b.notify(Event{Type: EventMutated, Kind: b.kind, Name: old, Field: "name", Old: old, New: name})
	return nil
}

// SetColor replaces the color. A blank color is rejected and the old color kept.
func (b *base) SetColor(color string) error {
	if err := b.checkText("color", color); err != nil {
		return err
	}
	old := b.color
	b.color = color
	b.notify(Event{Type: EventMutated, Kind: b.kind, Name: b.name, Field: "color", Old: old, New: color})
	return nil
}

func (b *base) checkText(field, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return b.reject(&ValidationError{
		Kind:    b.kind,
		Field:   field,
		Value:   value,
		Message: field + " must not be blank",
	})
}

// dimension is a named geometric parameter awaiting validation.
type dimension struct {
	field string
	value float64
}

// checkDimensions validates dims in order and stops at the first violation.
func (b *base) checkDimensions(dims ...dimension) error {
	for _, d := range dims {
		if !positive(d.value) {
			return b.reject(&ValidationError{
				Kind:    b.kind,
				Field:   d.field,
				Value:   d.value,
				Message: d.field + " must be greater than zero",
			})
		}
	}
	return nil
}

// checkMeasurable rejects dimensions that push s's volume or surface area
// out of the positive finite float64 range, which would leave the
// volume/surface ratio undefined. The most extreme of dims is blamed.
func (b *base) checkMeasurable(s Solid, dims ...dimension) error {
	if measurable(s) {
		return nil
	}
	d := extreme(dims)
	return b.reject(&ValidationError{
		Kind:    b.kind,
		Field:   d.field,
		Value:   d.value,
		Message: d.field + " is out of range",
	})
}

// setDimension validates v and only then commits it to *dst. The trial
// write used to measure s is undone when v is out of range.
func (b *base) setDimension(s Solid, field string, dst *float64, v float64) error {
	if err := b.checkDimensions(dimension{field, v}); err != nil {
		return err
	}
	old := *dst
	*dst = v
	if err := b.checkMeasurable(s, dimension{field, v}); err != nil {
		*dst = old
		return err
	}
	b.notify(Event{Type: EventMutated, Kind: b.kind, Name: b.name, Field: field, Old: old, New: v})
	return nil
}

func (b *base) created(s Shape) {
	b.notify(Event{Type: EventCreated, Kind: b.kind, Name: b.name, Description: s.String()})
}

func (b *base) reject(err *ValidationError) error {
	b.notify(Event{Type: EventRejected, Kind: b.kind, Name: b.name, Field: err.Field, New: err.Value, Err: err})
	return err
}

func (b *base) notify(e Event) {
	if b.observer != nil {
		b.observer.OnEvent(e)
	}
}
