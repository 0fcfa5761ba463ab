package gog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glenn-saic/simdissdk/calc"
)

func serializeToString(t *testing.T, shapes []Shape) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Serialize(&sb, shapes))
	return sb.String()
}

func TestSerializeCanonicalForm(t *testing.T) {
	src := "start\ncircle\nrangeunits m\ncenterxyz 10 20 0\nradius 250\nlinecolor green\nfilled\nend\n"
	out := serializeToString(t, parseShapes(t, src))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "start", lines[0])
	assert.Equal(t, "circle", lines[1])
	assert.Contains(t, lines, "rangeunits meters")
	assert.Contains(t, lines, "altitudeunits meters")
	assert.Contains(t, lines, "angleunits radians")
	assert.Contains(t, lines, "centerxyz 10 20 0")
	assert.Contains(t, lines, "radius 250")
	assert.Contains(t, lines, "linecolor hex 0xff00ff00")
	assert.Contains(t, lines, "filled true")
	assert.Equal(t, "end", lines[len(lines)-1])

	// unset fields stay out of the output
	assert.NotContains(t, out, "linewidth")
	assert.NotContains(t, out, "outline ")
	assert.NotContains(t, out, "scale ")
}

func TestSerializeRelativeRoundTrip(t *testing.T) {
	// relative offsets under meter directives survive byte-exact
	src := "start\nline\nrangeunits m\naltitudeunits m\nxyz 1.5 2.25 3\nxyz -4 5 0\n" +
		"linewidth 3\ntessellate true\nlineprojection greatcircle\nend\n"
	first := parseShapes(t, src)
	second := parseShapes(t, serializeToString(t, first))
	assert.Equal(t, first, second)
}

func TestSerializeGeodeticRoundTrip(t *testing.T) {
	src := "start\narc\ncenterlla 24.5 54.6 100\naltitudeunits m\nradius 300\nrangeunits m\n" +
		"anglestart 10\nangleend 55\nfillcolor yellow\nend\n"
	first := parseShapes(t, src)
	second := parseShapes(t, serializeToString(t, first))
	require.Len(t, second, 1)

	a := first[0].(*Arc)
	b := second[0].(*Arc)
	assert.InDelta(t, a.CenterPosition().X, b.CenterPosition().X, 1e-12)
	assert.InDelta(t, a.CenterPosition().Y, b.CenterPosition().Y, 1e-12)
	assert.InDelta(t, a.CenterPosition().Z, b.CenterPosition().Z, 1e-9)

	radiusA, _ := a.Radius()
	radiusB, setB := b.Radius()
	assert.True(t, setB)
	assert.Equal(t, radiusA, radiusB)

	startA, _ := a.AngleStart()
	startB, _ := b.AngleStart()
	assert.Equal(t, startA, startB)
	sweepA, _ := a.AngleSweep()
	sweepB, _ := b.AngleSweep()
	assert.Equal(t, sweepA, sweepB)

	fillA, _ := a.FillColor()
	fillB, setB := b.FillColor()
	assert.True(t, setB)
	assert.Equal(t, fillA, fillB)
}

func TestSerializeAnnotation(t *testing.T) {
	src := "start\nannotation label 1\ncenterll 24.5 54.6\nfontsize 24\nlinecolor blue\nend\n"
	out := serializeToString(t, parseShapes(t, src))
	assert.Contains(t, out, "annotation label 1\n")
	assert.Contains(t, out, "fontsize 24\n")
	assert.Contains(t, out, "linecolor hex 0xffff0000\n")

	second := parseShapes(t, out)
	require.Len(t, second, 1)
	a := second[0].(*Annotation)
	assert.Equal(t, "label 1", a.Text())
	assert.InDelta(t, 24.5*calc.DegToRad, a.Position().X, 1e-12)
	size, _ := a.TextSize()
	assert.Equal(t, 24, size)
}

func TestSerializeNestedAnnotationsSplit(t *testing.T) {
	src := "start\nannotation label 0\ncenterll 24.5 54.6\nannotation label 1\ncenterll 24.7 54.3\nend\n"
	out := serializeToString(t, parseShapes(t, src))

	// each annotation gets its own block on the way out
	assert.Equal(t, 2, strings.Count(out, "start\n"))
	assert.Equal(t, 2, strings.Count(out, "end\n"))

	second := parseShapes(t, out)
	require.Len(t, second, 2)
	assert.Equal(t, "label 0", second[0].(*Annotation).Text())
	assert.Equal(t, "label 1", second[1].(*Annotation).Text())
}

func TestSerializeBaseAttributes(t *testing.T) {
	src := "start\ncircle\nrangeunits m\ncenterxyz 0 0 0\noff\n3d name my circle\n3d follow cp\nscale 2 3 4\nend\n"
	first := parseShapes(t, src)
	out := serializeToString(t, first)
	assert.Contains(t, out, "off\n")
	assert.Contains(t, out, "3d name my circle\n")
	assert.Contains(t, out, "3d follow cp\n")
	assert.Contains(t, out, "scale 2 3 4\n")

	second := parseShapes(t, out)
	assert.Equal(t, first, second)
}
