package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/solids/pkg/shape"
)

func mustSphere(t *testing.T, name string, r float64) shape.Shape {
	t.Helper()
	s, err := shape.NewSphere(name, "Red", r)
	require.NoError(t, err)
	return s
}

func mustCube(t *testing.T, name string, side float64) shape.Shape {
	t.Helper()
	c, err := shape.NewCube(name, "Blue", side)
	require.NoError(t, err)
	return c
}

func demoSet(t *testing.T) []shape.Shape {
	t.Helper()
	cy, err := shape.NewCylinder("Green Pipe", "Green", 3, 7)
	require.NoError(t, err)
	pr, err := shape.NewRectangularPrism("Yellow Brick", "Yellow", 6, 3, 2)
	require.NoError(t, err)
	co, err := shape.NewCone("Purple Party Hat", "Purple", 4, 9)
	require.NoError(t, err)
	return []shape.Shape{
		mustSphere(t, "Red Ball", 5),
		mustCube(t, "Blue Box", 4),
		cy, pr, co,
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	res, ok := Analyze(nil)
	assert.False(t, ok)
	assert.Nil(t, res.Volume.Shape)
	assert.Nil(t, res.SurfaceArea.Shape)
	assert.Nil(t, res.Efficiency.Shape)
	assert.Empty(t, res.Shapes)

	_, ok = Analyze([]shape.Shape{})
	assert.False(t, ok)
}

func TestAnalyzeDemoSet(t *testing.T) {
	res, ok := Analyze(demoSet(t))
	require.True(t, ok)

	assert.Equal(t, "Red Ball", res.Volume.Shape.Name())
	assert.InDelta(t, 523.5988, res.Volume.Value, 1e-4)
	assert.Equal(t, 1, res.Volume.Index)

	assert.Equal(t, "Red Ball", res.SurfaceArea.Shape.Name())
	assert.InDelta(t, 314.1593, res.SurfaceArea.Value, 1e-4)

	// Sphere r=5 also has the best ratio: r/3.
	assert.Equal(t, "Red Ball", res.Efficiency.Shape.Name())
	assert.InDelta(t, 5.0/3.0, res.Efficiency.Value, 1e-9)

	require.Len(t, res.Shapes, 5)
	for i, m := range res.Shapes {
		assert.Equal(t, i+1, m.Index)
		assert.Equal(t, m.Volume/m.SurfaceArea, m.Efficiency)
	}
}

func TestAnalyzeSingleShapeWinsEverything(t *testing.T) {
	c := mustCube(t, "only", 2)
	res, ok := Analyze([]shape.Shape{c})
	require.True(t, ok)
	assert.Same(t, c, res.Volume.Shape)
	assert.Same(t, c, res.SurfaceArea.Shape)
	assert.Same(t, c, res.Efficiency.Shape)
	assert.Equal(t, 8.0, res.Volume.Value)
	assert.Equal(t, 24.0, res.SurfaceArea.Value)
}

func TestAnalyzeFirstWinsOnTie(t *testing.T) {
	first := mustCube(t, "first", 3)
	second := mustCube(t, "second", 3)

	res, ok := Analyze([]shape.Shape{first, second})
	require.True(t, ok)
	assert.Same(t, first, res.Volume.Shape)
	assert.Same(t, first, res.SurfaceArea.Shape)
	assert.Same(t, first, res.Efficiency.Shape)

	res, ok = Analyze([]shape.Shape{second, first})
	require.True(t, ok)
	assert.Same(t, second, res.Volume.Shape)
}

func TestAnalyzeTieAcrossVariants(t *testing.T) {
	// A 2x2x2 prism and a cube of side 2 have identical volume and area.
	prism, err := shape.NewRectangularPrism("prism", "grey", 2, 2, 2)
	require.NoError(t, err)
	cube := mustCube(t, "cube", 2)

	res, ok := Analyze([]shape.Shape{mustSphere(t, "tiny", 0.1), prism, cube})
	require.True(t, ok)
	assert.Same(t, prism, res.Volume.Shape)
	assert.Equal(t, 2, res.Volume.Index)
	assert.Same(t, prism, res.SurfaceArea.Shape)
}

func TestAnalyzeIndependentCategories(t *testing.T) {
	// Long thin prism: big area, small ratio. Compact sphere: big ratio.
	slab, err := shape.NewRectangularPrism("slab", "grey", 100, 10, 0.1)
	require.NoError(t, err)
	ball := mustSphere(t, "ball", 3)
	block := mustCube(t, "block", 5)

	res, ok := Analyze([]shape.Shape{slab, ball, block})
	require.True(t, ok)
	assert.Equal(t, "block", res.Volume.Shape.Name())
	assert.Equal(t, "slab", res.SurfaceArea.Shape.Name())
	assert.Equal(t, "ball", res.Efficiency.Shape.Name())

	assert.Equal(t, res.Volume, res.Winner(MetricVolume))
	assert.Equal(t, res.SurfaceArea, res.Winner(MetricSurfaceArea))
	assert.Equal(t, res.Efficiency, res.Winner(MetricEfficiency))
}

func TestAnalyzeReflectsMutation(t *testing.T) {
	a := mustSphere(t, "a", 1)
	b := mustSphere(t, "b", 2)
	shapes := []shape.Shape{a, b}

	res, _ := Analyze(shapes)
	assert.Equal(t, "b", res.Volume.Shape.Name())

	require.NoError(t, a.(*shape.Sphere).SetRadius(3))
	res, _ = Analyze(shapes)
	assert.Equal(t, "a", res.Volume.Shape.Name())
	assert.InDelta(t, 36*math.Pi, res.Volume.Value, 1e-9)
}

func TestAnalyzeDoesNotReorderInput(t *testing.T) {
	shapes := []shape.Shape{mustCube(t, "small", 1), mustCube(t, "big", 9)}
	_, ok := Analyze(shapes)
	require.True(t, ok)
	assert.Equal(t, "small", shapes[0].Name())
	assert.Equal(t, "big", shapes[1].Name())
}

func TestAnalyzeLargeFiniteShapes(t *testing.T) {
	big := mustSphere(t, "big", 1e100)
	cube := mustCube(t, "cube", 1e100)
	small := mustCube(t, "small", 1e-100)

	res, ok := Analyze([]shape.Shape{small, big, cube})
	require.True(t, ok)
	assert.Same(t, big, res.Volume.Shape)
	assert.Same(t, big, res.SurfaceArea.Shape)
	assert.Same(t, big, res.Efficiency.Shape)
	assert.Equal(t, 3, len(res.Shapes))
	assert.Same(t, cube, res.Shapes[2].Shape)
	for _, m := range res.Shapes {
		assert.False(t, math.IsInf(m.Volume, 0) || math.IsNaN(m.Efficiency), "%s: %+v", m.Shape.Name(), m)
	}
}

// overflowed reports infinite metrics, which no constructor allows.
type overflowed struct {
	*shape.Cube
}

func (overflowed) Volume() float64      { return math.Inf(1) }
func (overflowed) SurfaceArea() float64 { return math.Inf(1) }

func TestAnalyzeAlwaysNamesAWinner(t *testing.T) {
	u := overflowed{mustCube(t, "overflowed", 1).(*shape.Cube)}

	res, ok := Analyze([]shape.Shape{u})
	require.True(t, ok)
	assert.True(t, math.IsNaN(res.Efficiency.Value))
	require.NotNil(t, res.Efficiency.Shape)
	assert.Equal(t, "overflowed", res.Efficiency.Shape.Name())

	// A real value later in the scan still replaces the NaN placeholder.
	c := mustCube(t, "real", 2)
	res, ok = Analyze([]shape.Shape{u, c})
	require.True(t, ok)
	assert.Same(t, c, res.Efficiency.Shape)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "volume", MetricVolume.String())
	assert.Equal(t, "surface area", MetricSurfaceArea.String())
	assert.Equal(t, "efficiency", MetricEfficiency.String())
	assert.Equal(t, "unknown", Metric(7).String())
}
