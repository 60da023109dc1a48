package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/solids/pkg/shape"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms scene source code before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: rectangular-prism -> rectangular_prism
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
//  3. Line comments: ; and ;; become //, which is what zygomys expects.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Shape references passed through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a constructed shape so builtins can hand it to each other.
type sexpShape struct {
	s shape.Shape
}

func (r *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(shape %q)", r.s.Name())
}
func (r *sexpShape) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	order      []string // keywords in the order they appeared
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if _, seen := result.kw[name]; !seen {
			result.order = append(result.order, name)
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// only rejects keywords outside allowed.
func (pa kwArgs) only(fn string, allowed ...string) error {
	for _, k := range pa.order {
		ok := false
		for _, a := range allowed {
			if k == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%s: unknown keyword :%s", fn, k)
		}
	}
	return nil
}

// dim returns the numeric keyword value named key, or an error if it is
// missing or not a number. The first present alias wins.
func (pa kwArgs) dim(fn string, keys ...string) (float64, error) {
	for _, key := range keys {
		v, ok := pa.kw[key]
		if !ok {
			continue
		}
		f, err := toFloat64(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %s: %w", fn, key, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%s: missing :%s", fn, keys[0])
}

// identity extracts the positional name and color.
func (pa kwArgs) identity(fn string) (name, color string, err error) {
	if len(pa.positional) != 2 {
		return "", "", fmt.Errorf("%s requires a name and a color, got %d positional arguments", fn, len(pa.positional))
	}
	if name, err = toString(pa.positional[0]); err != nil {
		return "", "", fmt.Errorf("%s: name: %w", fn, err)
	}
	if color, err = toString(pa.positional[1]); err != nil {
		return "", "", fmt.Errorf("%s: color: %w", fn, err)
	}
	return name, color, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toShape extracts the shape from a sexpShape.
func toShape(s zygo.Sexp) (shape.Shape, error) {
	if ref, ok := s.(*sexpShape); ok {
		return ref.s, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// scene collects the shapes a script builds, in creation order.
type scene struct {
	shapes   []shape.Shape
	observer shape.Observer
}

func (sc *scene) add(s shape.Shape, err error) (zygo.Sexp, error) {
	if err != nil {
		return zygo.SexpNull, err
	}
	sc.shapes = append(sc.shapes, s)
	return &sexpShape{s: s}, nil
}

// lookup returns the first shape named name.
func (sc *scene) lookup(name string) shape.Shape {
	for _, s := range sc.shapes {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (sc *scene) opts() []shape.Option {
	return []shape.Option{shape.WithObserver(sc.observer)}
}

// constructor wraps a shape builder with the shared name/color/keyword handling.
func constructor(sc *scene, fn string, allowed []string, build func(pa kwArgs, name, color string) (shape.Shape, error)) zygo.ZlispUserFunction {
	return func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.only(fn, allowed...); err != nil {
			return zygo.SexpNull, err
		}
		name, color, err := pa.identity(fn)
		if err != nil {
			return zygo.SexpNull, err
		}
		return sc.add(build(pa, name, color))
	}
}

// registerBuiltins installs the scene builtins into a zygomys environment.
// Constructed shapes are appended to sc.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene) {

	// (sphere "name" "color" :radius 5)
	env.AddFunction("sphere", constructor(sc, "sphere", []string{"radius"},
		func(pa kwArgs, name, color string) (shape.Shape, error) {
			r, err := pa.dim("sphere", "radius")
			if err != nil {
				return nil, err
			}
			return newShape(shape.NewSphere(name, color, r, sc.opts()...))
		}))

	// (cube "name" "color" :side 4)
	env.AddFunction("cube", constructor(sc, "cube", []string{"side", "side-length"},
		func(pa kwArgs, name, color string) (shape.Shape, error) {
			s, err := pa.dim("cube", "side", "side-length")
			if err != nil {
				return nil, err
			}
			return newShape(shape.NewCube(name, color, s, sc.opts()...))
		}))

	// (cylinder "name" "color" :radius 3 :height 7)
	env.AddFunction("cylinder", constructor(sc, "cylinder", []string{"radius", "height"},
		func(pa kwArgs, name, color string) (shape.Shape, error) {
			r, err := pa.dim("cylinder", "radius")
			if err != nil {
				return nil, err
			}
			h, err := pa.dim("cylinder", "height")
			if err != nil {
				return nil, err
			}
			return newShape(shape.NewCylinder(name, color, r, h, sc.opts()...))
		}))

	// (rectangular-prism "name" "color" :length 6 :width 3 :height 2)
	//
	// Registered as "rectangular_prism" because zygomys does not support
	// hyphens in identifiers; "prism" is a short alias.
	prism := constructor(sc, "rectangular-prism", []string{"length", "width", "height"},
		func(pa kwArgs, name, color string) (shape.Shape, error) {
			l, err := pa.dim("rectangular-prism", "length")
			if err != nil {
				return nil, err
			}
			w, err := pa.dim("rectangular-prism", "width")
			if err != nil {
				return nil, err
			}
			h, err := pa.dim("rectangular-prism", "height")
			if err != nil {
				return nil, err
			}
			return newShape(shape.NewRectangularPrism(name, color, l, w, h, sc.opts()...))
		})
	env.AddFunction("rectangular_prism", prism)
	env.AddFunction("prism", prism)

	// (cone "name" "color" :radius 4 :height 9)
	env.AddFunction("cone", constructor(sc, "cone", []string{"radius", "height"},
		func(pa kwArgs, name, color string) (shape.Shape, error) {
			r, err := pa.dim("cone", "radius")
			if err != nil {
				return nil, err
			}
			h, err := pa.dim("cone", "height")
			if err != nil {
				return nil, err
			}
			return newShape(shape.NewCone(name, color, r, h, sc.opts()...))
		}))

	// (shape "name")
	env.AddFunction("shape", func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("shape requires a name argument")
		}
		name, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shape: name: %w", err)
		}
		s := sc.lookup(name)
		if s == nil {
			return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", name)
		}
		return &sexpShape{s: s}, nil
	})

	// (volume ref) and (surface-area ref)
	metric := func(fn string, f func(shape.Shape) float64) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", fn, len(args))
			}
			s, err := toShape(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return &zygo.SexpFloat{Val: f(s)}, nil
		}
	}
	env.AddFunction("volume", metric("volume", shape.Shape.Volume))
	env.AddFunction("surface_area", metric("surface-area", shape.Shape.SurfaceArea))

	// (resize ref :radius 2 :height 4 :name "new" :color "Blue")
	//
	// Setters run in keyword order and stop at the first rejected value;
	// earlier keywords stay applied.
	env.AddFunction("resize", func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("resize requires a shape as first argument")
		}
		s, err := toShape(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("resize: %w", err)
		}
		for _, key := range pa.order {
			if err := applySetter(s, key, pa.kw[key]); err != nil {
				return zygo.SexpNull, fmt.Errorf("resize: %w", err)
			}
		}
		return pa.positional[0], nil
	})
}

// newShape adapts a typed constructor result to (shape.Shape, error)
// without leaking a typed nil on failure.
func newShape[T shape.Shape](s T, err error) (shape.Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// applySetter routes one resize keyword to the matching setter.
func applySetter(s shape.Shape, key string, v zygo.Sexp) error {
	switch key {
	case "name", "color":
		str, err := toString(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "name" {
			return s.SetName(str)
		}
		return s.SetColor(str)
	}

	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	var set func(float64) error
	switch key {
	case "radius":
		if t, ok := s.(interface{ SetRadius(float64) error }); ok {
			set = t.SetRadius
		}
	case "side", "side-length":
		if t, ok := s.(interface{ SetSideLength(float64) error }); ok {
			set = t.SetSideLength
		}
	case "length":
		if t, ok := s.(interface{ SetLength(float64) error }); ok {
			set = t.SetLength
		}
	case "width":
		if t, ok := s.(interface{ SetWidth(float64) error }); ok {
			set = t.SetWidth
		}
	case "height":
		if t, ok := s.(interface{ SetHeight(float64) error }); ok {
			set = t.SetHeight
		}
	default:
		return fmt.Errorf("unknown keyword :%s", key)
	}
	if set == nil {
		return fmt.Errorf("%s has no %s", s.Kind(), key)
	}
	return set(f)
}
