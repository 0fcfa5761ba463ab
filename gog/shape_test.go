package gog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glenn-saic/simdissdk/calc"
)

func TestShapeTypeString(t *testing.T) {
	assert.Equal(t, "circle", ShapeCircle.String())
	assert.Equal(t, "linesegs", ShapeLineSegs.String())
	assert.Equal(t, "annotation", ShapeAnnotation.String())
	assert.Equal(t, "unknown", ShapeUnknown.String())
}

func TestOptionalAccessorsDistinguishUnsetFromDefault(t *testing.T) {
	c := &Circle{}

	drawn, set := c.IsDrawn()
	assert.True(t, drawn)
	assert.False(t, set)

	c.SetDrawn(true)
	drawn, set = c.IsDrawn()
	assert.True(t, drawn)
	assert.True(t, set)

	radius, set := c.Radius()
	assert.Equal(t, 500.0, radius)
	assert.False(t, set)

	c.SetRadius(500)
	radius, set = c.Radius()
	assert.Equal(t, 500.0, radius)
	assert.True(t, set)
}

func TestOutlineDefaultsTrue(t *testing.T) {
	p := &Polygon{}
	outlined, set := p.IsOutlined()
	assert.True(t, outlined)
	assert.False(t, set)

	p.SetOutlined(false)
	outlined, set = p.IsOutlined()
	assert.False(t, outlined)
	assert.True(t, set)
}

func TestEllipsoidAxisDefaults(t *testing.T) {
	e := &Ellipsoid{}
	major, set := e.MajorAxis()
	assert.Equal(t, 1000.0, major)
	assert.False(t, set)

	// the flat elliptical shapes default their axes to zero instead
	arc := &Arc{}
	major, set = arc.MajorAxis()
	assert.Zero(t, major)
	assert.False(t, set)
}

func TestBaseAttrsCloneIsDeep(t *testing.T) {
	a := &Annotation{}
	a.SetName("original")
	a.SetScale(calc.Vec3{X: 2, Y: 2, Z: 2})

	copied := a.baseAttrs.clone()
	a.SetName("changed")
	a.SetScale(calc.Vec3{X: 9, Y: 9, Z: 9})

	name, set := copied.Name()
	assert.True(t, set)
	assert.Equal(t, "original", name)
	scale, _ := copied.Scale()
	assert.Equal(t, calc.Vec3{X: 2, Y: 2, Z: 2}, scale)
}

func TestDefaultReferencePoint(t *testing.T) {
	assert.InDelta(t, 22.1194392*calc.DegToRad, DefaultReferencePoint.X, 1e-12)
	assert.InDelta(t, -159.9194988*calc.DegToRad, DefaultReferencePoint.Y, 1e-12)
	assert.Zero(t, DefaultReferencePoint.Z)
}
