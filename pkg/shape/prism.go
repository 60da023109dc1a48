package shape

// RectangularPrism is a box with independent length, width and height.
type RectangularPrism struct {
	base
	length float64
	width  float64
	height float64
}

var _ Shape = (*RectangularPrism)(nil)

// NewRectangularPrism returns a prism, or a *ValidationError if any argument
// is invalid. Dimensions are checked in length, width, height order.
func NewRectangularPrism(name, color string, length, width, height float64, opts ...Option) (*RectangularPrism, error) {
	b, err := newBase(KindRectangularPrism, name, color, opts)
	if err != nil {
		return nil, err
	}
	dims := []dimension{{"length", length}, {"width", width}, {"height", height}}
	if err := b.checkDimensions(dims...); err != nil {
		return nil, err
	}
	p := &RectangularPrism{base: b, length: length, width: width, height: height}
	if err := p.checkMeasurable(p, dims...); err != nil {
		return nil, err
	}
	p.created(p)
	return p, nil
}

func (p *RectangularPrism) Length() float64 { return p.length }
func (p *RectangularPrism) Width() float64  { return p.width }
func (p *RectangularPrism) Height() float64 { return p.height }

func (p *RectangularPrism) SetLength(l float64) error {
	return p.setDimension(p, "length", &p.length, l)
}

func (p *RectangularPrism) SetWidth(w float64) error {
	return p.setDimension(p, "width", &p.width, w)
}

func (p *RectangularPrism) SetHeight(h float64) error {
	return p.setDimension(p, "height", &p.height, h)
}

// Volume returns l·w·h.
func (p *RectangularPrism) Volume() float64 {
	return p.length * p.width * p.height
}

// SurfaceArea returns 2·(lw + lh + wh).
func (p *RectangularPrism) SurfaceArea() float64 {
	return 2 * (p.length*p.width + p.length*p.height + p.width*p.height)
}

func (p *RectangularPrism) String() string {
	return describe(&p.base,
		dimension{"length", p.length},
		dimension{"width", p.width},
		dimension{"height", p.height},
	)
}
