package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngFix2Pi(t *testing.T) {
	assert.InDelta(t, 0.0, AngFix2Pi(0), 1e-12)
	assert.InDelta(t, math.Pi, AngFix2Pi(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, AngFix2Pi(3*math.Pi), 1e-12)
	assert.InDelta(t, 2*math.Pi-0.5, AngFix2Pi(-0.5), 1e-12)
	// a full turn collapses to zero
	assert.InDelta(t, 0.0, AngFix2Pi(2*math.Pi), 1e-12)
}

func TestAngFix360(t *testing.T) {
	assert.InDelta(t, 45.0, AngFix360(45), 1e-12)
	assert.InDelta(t, 45.0, AngFix360(-315), 1e-12)
	assert.InDelta(t, 0.0, AngFix360(720), 1e-12)
	assert.InDelta(t, 355.0, AngFix360(-5), 1e-12)
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, a.Cross(b))
	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, Vec3{2, 0, 0}, a.Scale(2))
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{3, 4, 0}
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, Vec3{0.6, 0.8, 0}, v.Normalized())
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
}

func TestGeodeticToECEF(t *testing.T) {
	// Equator at the prime meridian sits on the semi-major axis.
	p := GeodeticToECEF(Vec3{0, 0, 0})
	assert.InDelta(t, 6378137.0, p.X, 1e-6)
	assert.InDelta(t, 0.0, p.Y, 1e-6)
	assert.InDelta(t, 0.0, p.Z, 1e-6)

	// North pole lies on the Z axis at the semi-minor axis length.
	p = GeodeticToECEF(Vec3{90 * DegToRad, 0, 0})
	assert.InDelta(t, 0.0, math.Hypot(p.X, p.Y), 1e-6)
	assert.InDelta(t, 6356752.314, p.Z, 1e-2)

	// Altitude extends along the surface normal.
	p = GeodeticToECEF(Vec3{0, 0, 100})
	assert.InDelta(t, 6378237.0, p.X, 1e-6)
}

func TestVecsAreEqual(t *testing.T) {
	assert.True(t, VecsAreEqual(Vec3{1, 2, 3}, Vec3{1, 2, 3}))
	assert.True(t, VecsAreEqual(Vec3{1, 2, 3}, Vec3{1 + 1e-9, 2, 3}))
	assert.False(t, VecsAreEqual(Vec3{1, 2, 3}, Vec3{1.1, 2, 3}))
}
