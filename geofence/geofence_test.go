package geofence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glenn-saic/simdissdk/calc"
	"github.com/glenn-saic/simdissdk/gog"
)

func geodeticRing(degs ...float64) []calc.Vec3 {
	ring := make([]calc.Vec3, 0, len(degs)/2)
	for i := 0; i+1 < len(degs); i += 2 {
		ring = append(ring, calc.Vec3{
			X: degs[i] * calc.DegToRad,
			Y: degs[i+1] * calc.DegToRad,
		})
	}
	return ring
}

func TestFenceContains(t *testing.T) {
	// a simple convex region over the continental US
	f := New(geodeticRing(34, -121, 32, -93, 47, -94, 45, -122, 34, -121), CoordSysGeodetic)
	require.True(t, f.Valid())

	assert.True(t, f.ContainsGeodetic(calc.Vec3{X: 40 * calc.DegToRad, Y: -100 * calc.DegToRad}))
	assert.False(t, f.ContainsGeodetic(calc.Vec3{X: 0, Y: 0}))
	assert.False(t, f.ContainsGeodetic(calc.Vec3{X: -40 * calc.DegToRad, Y: 100 * calc.DegToRad}))

	ecef := calc.GeodeticToECEF(calc.Vec3{X: 41 * calc.DegToRad, Y: -110 * calc.DegToRad})
	assert.True(t, f.Contains(ecef))
}

func TestFenceSpanningPole(t *testing.T) {
	f := New(geodeticRing(60, 0, 60, 60, 60, 140, 75, -140, 60, 0), CoordSysGeodetic)
	require.True(t, f.Valid())
	assert.True(t, f.ContainsGeodetic(calc.Vec3{X: 89 * calc.DegToRad, Y: 0}))
	assert.False(t, f.ContainsGeodetic(calc.Vec3{X: 10 * calc.DegToRad, Y: 0}))
}

func TestFenceSpanningAntimeridian(t *testing.T) {
	f := New(geodeticRing(20, 140, -20, 140, -20, -140, 20, -140, 20, 140), CoordSysGeodetic)
	require.True(t, f.Valid())
	assert.True(t, f.ContainsGeodetic(calc.Vec3{X: 0, Y: 180 * calc.DegToRad}))
	assert.False(t, f.ContainsGeodetic(calc.Vec3{X: 0, Y: 0}))
}

func TestFenceConcaveInvalid(t *testing.T) {
	f := New(geodeticRing(0, 0, 0, 30, 30, 30, 15, 15, 30, 0, 0, 0), CoordSysGeodetic)
	assert.False(t, f.Valid())

	// invalid fences contain nothing, even points inside their hull
	assert.False(t, f.ContainsGeodetic(calc.Vec3{X: 10 * calc.DegToRad, Y: 10 * calc.DegToRad}))
}

func TestFenceOpenRingClosed(t *testing.T) {
	// the closing vertex is optional on input
	open := New(geodeticRing(34, -121, 32, -93, 47, -94, 45, -122), CoordSysGeodetic)
	closed := New(geodeticRing(34, -121, 32, -93, 47, -94, 45, -122, 34, -121), CoordSysGeodetic)
	require.True(t, open.Valid())
	probe := calc.Vec3{X: 40 * calc.DegToRad, Y: -100 * calc.DegToRad}
	assert.Equal(t, closed.ContainsGeodetic(probe), open.ContainsGeodetic(probe))
}

func TestFenceTooFewPoints(t *testing.T) {
	assert.False(t, New(nil, CoordSysGeodetic).Valid())
	assert.False(t, New(geodeticRing(0, 0, 10, 10), CoordSysGeodetic).Valid())
	assert.False(t, (&Fence{}).Contains(calc.GeodeticToECEF(calc.Vec3{})))
}

func TestFenceECEFInput(t *testing.T) {
	var ring []calc.Vec3
	for _, lla := range geodeticRing(34, -121, 32, -93, 47, -94, 45, -122) {
		ring = append(ring, calc.GeodeticToECEF(lla))
	}
	f := New(ring, CoordSysECEF)
	require.True(t, f.Valid())
	assert.True(t, f.ContainsGeodetic(calc.Vec3{X: 40 * calc.DegToRad, Y: -100 * calc.DegToRad}))
}

func TestFenceFromOverlayPolygon(t *testing.T) {
	src := `start
poly
ll 34 -121
ll 32 -93
ll 47 -94
ll 45 -122
end
`
	shapes, err := gog.NewParser().Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	poly, ok := shapes[0].(*gog.Polygon)
	require.True(t, ok)

	f := New(poly.Points(), CoordSysGeodetic)
	require.True(t, f.Valid())
	assert.True(t, f.ContainsGeodetic(calc.Vec3{X: 40 * calc.DegToRad, Y: -100 * calc.DegToRad}))
}
