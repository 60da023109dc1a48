package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chazu/solids/pkg/shape"
)

const (
	banner = "\n=== Interactive Shape Creator ===\n"

	menuText = "\nMenu:\n" +
		"  1. Create a new shape\n" +
		"  2. View all shapes & analysis\n" +
		"  3. Quit\n" +
		"Choose an option (1-3): "

	typeText = "\nSelect shape type:\n" +
		"  1. Sphere\n" +
		"  2. Cube\n" +
		"  3. Cylinder\n" +
		"  4. Rectangular Prism\n" +
		"  5. Cone\n" +
		"Enter choice (1-5): " +
		"Enter a name for the shape: " +
		"Enter a color for the shape: "
)

// session runs a menu over input and returns the transcript and final shapes.
func session(t *testing.T, input string, start []shape.Shape, opts ...Option) (string, []shape.Shape) {
	t.Helper()
	var out strings.Builder
	m := New(strings.NewReader(input), &out, start, opts...)
	require.NoError(t, m.Run())
	return out.String(), m.Shapes()
}

func TestCreateSphereTranscript(t *testing.T) {
	got, shapes := session(t, "1\n1\nBall\nRed\n1\n3\n", nil)

	want := banner + menuText + typeText +
		"Enter radius: " +
		"\nShape created successfully!\n" +
		"  Sphere {name='Ball', color='Red', radius=1.0}\n" +
		"  - Surface Area: 12.57 square units\n" +
		"  - Volume: 4.19 cubic units\n" +
		menuText + "Goodbye!\n"
	assert.Equal(t, want, got)

	require.Len(t, shapes, 1)
	assert.Equal(t, shape.KindSphere, shapes[0].Kind())
	assert.Equal(t, "Ball", shapes[0].Name())
}

func TestCreateEachKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    shape.Kind
		prompts []string
		volume  float64
	}{
		{"cube", "1\n2\nBox\nBlue\n4\n3\n", shape.KindCube, []string{"Enter side length: "}, 64},
		{"cylinder", "1\n3\nPipe\nGreen\n1\n2\n3\n", shape.KindCylinder, []string{"Enter radius: ", "Enter height: "}, 2 * 3.141592653589793},
		{"prism", "1\n4\nBrick\nYellow\n6\n3\n2\n3\n", shape.KindRectangularPrism, []string{"Enter length: ", "Enter width: ", "Enter height: "}, 36},
		{"cone", "1\n5\nHat\nPurple\n3\n4\n3\n", shape.KindCone, []string{"Enter radius: ", "Enter height: "}, 12 * 3.141592653589793},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, shapes := session(t, tt.input, nil)

			assert.Contains(t, out, typeText+strings.Join(tt.prompts, ""))
			assert.Contains(t, out, "Shape created successfully!")
			require.Len(t, shapes, 1)
			assert.Equal(t, tt.kind, shapes[0].Kind())
			assert.InDelta(t, tt.volume, shapes[0].Volume(), 1e-9)
		})
	}
}

func TestInputIsTrimmed(t *testing.T) {
	_, shapes := session(t, " 1 \n 2 \n  Box  \n Blue \n  4  \n3\n", nil)

	require.Len(t, shapes, 1)
	assert.Equal(t, "Box", shapes[0].Name())
	assert.Equal(t, "Blue", shapes[0].Color())
}

func TestInvalidMenuOption(t *testing.T) {
	out, _ := session(t, "7\nabc\n3\n", nil)

	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please enter 1, 2, or 3.\n"))
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestInvalidShapeType(t *testing.T) {
	out, shapes := session(t, "1\n9\nThing\nGrey\n3\n", nil)

	assert.Contains(t, out, typeText+"Invalid shape type.\n")
	assert.NotContains(t, out, "Enter radius")
	assert.Empty(t, shapes)
}

func TestInvalidNumber(t *testing.T) {
	out, shapes := session(t, "1\n3\nPipe\nGreen\nthree\n3\n", nil)

	assert.Contains(t, out, "Enter radius: Invalid number format. Shape was not created.\n")
	assert.NotContains(t, out, "Enter height")
	assert.Empty(t, shapes)
}

func TestValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"negative radius", "1\n1\nBall\nRed\n-2\n3\n", "Invalid input: Radius must be greater than zero.\n"},
		{"zero side", "1\n2\nBox\nBlue\n0\n3\n", "Invalid input: Side length must be greater than zero.\n"},
		{"zero width", "1\n4\nBrick\nYellow\n1\n0\n1\n3\n", "Invalid input: Width must be greater than zero.\n"},
		{"blank name", "1\n2\n   \nBlue\n4\n3\n", "Invalid input: Name must not be blank.\n"},
		{"blank color", "1\n2\nBox\n\n4\n3\n", "Invalid input: Color must not be blank.\n"},
		{"not a number", "1\n1\nBall\nRed\nNaN\n3\n", "Invalid input: Radius must be greater than zero.\n"},
		{"out of range", "1\n1\nBall\nRed\n1e200\n3\n", "Invalid input: Radius is out of range.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, shapes := session(t, tt.input, nil)
			assert.Contains(t, out, tt.want)
			assert.Empty(t, shapes)
		})
	}
}

func TestViewAfterOutOfRangeRejection(t *testing.T) {
	start := []shape.Shape{mustCube(t, "Blue Box", 4)}
	out, shapes := session(t, "1\n2\nHuge\nGrey\n1e103\n2\n3\n", start)

	require.Len(t, shapes, 1)
	assert.Contains(t, out, "Invalid input: Side length is out of range.\n")
	assert.Contains(t, out, "- Largest Volume: Blue Box (64.00)\n")
}

func TestSentence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"radius must be greater than zero", "Radius must be greater than zero."},
		{"sideLength must be greater than zero", "Side length must be greater than zero."},
		{"already done.", "Already done."},
		{"", "."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sentence(tt.in), tt.in)
	}
}

func TestViewEmpty(t *testing.T) {
	out, _ := session(t, "2\n3\n", nil)

	assert.Contains(t, out, "\n=== All Shapes ===\n\nNo shapes to display.\n")
}

func TestViewIncludesCreatedShapes(t *testing.T) {
	start := []shape.Shape{mustCube(t, "Blue Box", 4)}
	out, shapes := session(t, "1\n1\nRed Ball\nRed\n5\n2\n3\n", start)

	require.Len(t, shapes, 2)
	assert.Contains(t, out, "1. Cube {name='Blue Box', color='Blue', sideLength=4.0}\n")
	assert.Contains(t, out, "2. Sphere {name='Red Ball', color='Red', radius=5.0}\n")
	assert.Contains(t, out, "- Largest Volume: Red Ball (523.60)\n")
	assert.Contains(t, out, "- Most Efficient (Volume/Surface): Red Ball (1.67)\n")
}

func TestStartingSliceIsCopied(t *testing.T) {
	start := make([]shape.Shape, 1, 4)
	start[0] = mustCube(t, "Blue Box", 4)
	_, shapes := session(t, "1\n2\nOther\nRed\n1\n3\n", start)

	assert.Len(t, shapes, 2)
	assert.Nil(t, start[:2][1], "caller's backing array must not be written")
}

func TestEOFEndsSession(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"at menu", ""},
		{"mid creation", "1\n3\nPipe\n"},
		{"mid dimensions", "1\n3\nPipe\nGreen\n2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, shapes := session(t, tt.input, nil)
			assert.True(t, strings.HasSuffix(out, "\nGoodbye!\n"), "transcript: %q", out)
			assert.Empty(t, shapes)
		})
	}
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, _ = session(t, "1\n9\nx\ny\n1\n1\nBall\nRed\n1\n3\n", nil, WithLogger(zap.New(core)))

	assert.Equal(t, 1, logs.FilterMessage("invalid shape type").Len())
	created := logs.FilterMessage("shape created").All()
	require.Len(t, created, 1)
	assert.Equal(t, "Ball", created[0].ContextMap()["name"])
	assert.Equal(t, 1, logs.FilterMessage("interactive menu finished").Len())
}

func TestShapeOptionsReachShapes(t *testing.T) {
	var events []shape.Event
	obs := shape.ObserverFunc(func(e shape.Event) { events = append(events, e) })

	_, _ = session(t, "1\n1\nBall\nRed\n2\n3\n", nil, WithShapeOptions(shape.WithObserver(obs)))

	require.Len(t, events, 1)
	assert.Equal(t, shape.EventCreated, events[0].Type)
}

func mustCube(t *testing.T, name string, side float64) shape.Shape {
	t.Helper()
	c, err := shape.NewCube(name, "Blue", side)
	require.NoError(t, err)
	return c
}
