// Package menu implements the interactive shape creator that runs on a
// line-oriented terminal.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/chazu/solids/pkg/report"
	"github.com/chazu/solids/pkg/shape"
)

// errEOF ends the session when input runs out.
var errEOF = errors.New("menu: end of input")

// Menu reads choices from an input stream and keeps the session's shape
// collection.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	format *report.Formatter
	log    *zap.Logger
	opts   []shape.Option

	shapes []shape.Shape
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.log = l
		}
	}
}

// WithFormatter replaces the default report formatter.
func WithFormatter(f *report.Formatter) Option {
	return func(m *Menu) {
		if f != nil {
			m.format = f
		}
	}
}

// WithShapeOptions are passed to every shape the user creates.
func WithShapeOptions(opts ...shape.Option) Option {
	return func(m *Menu) {
		m.opts = append(m.opts, opts...)
	}
}

// New returns a menu that starts with shapes. The slice is copied.
func New(in io.Reader, out io.Writer, shapes []shape.Shape, opts ...Option) *Menu {
	m := &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		format: report.NewFormatter(),
		log:    zap.NewNop(),
		shapes: append([]shape.Shape(nil), shapes...),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Shapes returns the current collection in creation order.
func (m *Menu) Shapes() []shape.Shape {
	return m.shapes
}

// Run loops until the user quits or input ends. Invalid entries are
// reported to the user; only read failures are returned.
func (m *Menu) Run() error {
	m.println()
	m.println("=== Interactive Shape Creator ===")

	for {
		m.println()
		m.println("Menu:")
		m.println("  1. Create a new shape")
		m.println("  2. View all shapes & analysis")
		m.println("  3. Quit")
		m.print("Choose an option (1-3): ")

		choice, err := m.readLine()
		if errors.Is(err, errEOF) {
			return m.quit()
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := m.create(); err != nil {
				if errors.Is(err, errEOF) {
					return m.quit()
				}
				return err
			}
		case "2":
			m.println()
			m.println("=== All Shapes ===")
			m.println()
			if err := m.format.WriteText(m.out, m.format.Build(m.shapes)); err != nil {
				return err
			}
		case "3":
			return m.quit()
		default:
			m.println("Invalid option. Please enter 1, 2, or 3.")
		}
	}
}

func (m *Menu) quit() error {
	m.println("Goodbye!")
	m.log.Info("interactive menu finished", zap.Int("shapes", len(m.shapes)))
	return nil
}

// dimensionPrompts lists, per menu choice, the kind and the prompt for
// each dimension in constructor order.
var dimensionPrompts = map[string]struct {
	kind    shape.Kind
	prompts []string
}{
	"1": {shape.KindSphere, []string{"radius"}},
	"2": {shape.KindCube, []string{"side length"}},
	"3": {shape.KindCylinder, []string{"radius", "height"}},
	"4": {shape.KindRectangularPrism, []string{"length", "width", "height"}},
	"5": {shape.KindCone, []string{"radius", "height"}},
}

// create prompts for one shape and appends it on success. User mistakes
// are reported on the output and are not errors.
func (m *Menu) create() error {
	m.println()
	m.println("Select shape type:")
	m.println("  1. Sphere")
	m.println("  2. Cube")
	m.println("  3. Cylinder")
	m.println("  4. Rectangular Prism")
	m.println("  5. Cone")
	m.print("Enter choice (1-5): ")
	typeChoice, err := m.readLine()
	if err != nil {
		return err
	}

	m.print("Enter a name for the shape: ")
	name, err := m.readLine()
	if err != nil {
		return err
	}
	m.print("Enter a color for the shape: ")
	color, err := m.readLine()
	if err != nil {
		return err
	}

	entry, ok := dimensionPrompts[typeChoice]
	if !ok {
		m.println("Invalid shape type.")
		m.log.Warn("invalid shape type", zap.String("choice", typeChoice))
		return nil
	}

	dims := make([]float64, len(entry.prompts))
	for i, p := range entry.prompts {
		m.print("Enter " + p + ": ")
		line, err := m.readLine()
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			m.println("Invalid number format. Shape was not created.")
			m.log.Warn("invalid number input", zap.String("input", line), zap.Error(err))
			return nil
		}
		dims[i] = v
	}

	s, err := build(entry.kind, name, color, dims, m.opts)
	if err != nil {
		var verr *shape.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		m.println("Invalid input: " + sentence(verr.Message))
		m.log.Warn("shape creation failed", zap.Error(verr))
		return nil
	}

	m.shapes = append(m.shapes, s)
	m.println()
	if err := m.format.WriteCreated(m.out, s); err != nil {
		return err
	}
	m.log.Info("shape created", zap.String("name", s.Name()), zap.Stringer("kind", s.Kind()))
	return nil
}

// build calls the constructor for kind with dims in declaration order.
func build(kind shape.Kind, name, color string, dims []float64, opts []shape.Option) (shape.Shape, error) {
	switch kind {
	case shape.KindSphere:
		return wrap(shape.NewSphere(name, color, dims[0], opts...))
	case shape.KindCube:
		return wrap(shape.NewCube(name, color, dims[0], opts...))
	case shape.KindCylinder:
		return wrap(shape.NewCylinder(name, color, dims[0], dims[1], opts...))
	case shape.KindRectangularPrism:
		return wrap(shape.NewRectangularPrism(name, color, dims[0], dims[1], dims[2], opts...))
	case shape.KindCone:
		return wrap(shape.NewCone(name, color, dims[0], dims[1], opts...))
	}
	return nil, fmt.Errorf("menu: unsupported kind %s", kind)
}

func wrap[T shape.Shape](s T, err error) (shape.Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// readLine returns the next trimmed input line, or errEOF.
func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("menu: read input: %w", err)
		}
		m.println()
		return "", errEOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

// sentence turns a validation message into user-facing prose: the field
// name is split into words and capitalised, and a full stop is added.
// "sideLength must be greater than zero" reads "Side length must be
// greater than zero."
func sentence(msg string) string {
	var sb strings.Builder
	for i, r := range msg {
		switch {
		case i == 0:
			sb.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			sb.WriteByte(' ')
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	if !strings.HasSuffix(msg, ".") {
		sb.WriteByte('.')
	}
	return sb.String()
}
