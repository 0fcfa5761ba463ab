package gog

import (
	"fmt"

	"github.com/glenn-saic/simdissdk/calc"
)

// ShapeType tags each concrete shape with its kind. The set is closed:
// consumers switch on the tag (or on the concrete type) and the compiler
// flags missing cases when the set grows.
type ShapeType int

const (
	ShapeUnknown ShapeType = iota
	ShapeCircle
	ShapeSphere
	ShapeHemisphere
	ShapeEllipsoid
	ShapeArc
	ShapeEllipse
	ShapeCylinder
	ShapeCone
	ShapeOrbit
	ShapeLine
	ShapeLineSegs
	ShapePolygon
	ShapePoints
	ShapeAnnotation
)

var shapeTypeNames = map[ShapeType]string{
	ShapeUnknown:    "unknown",
	ShapeCircle:     "circle",
	ShapeSphere:     "sphere",
	ShapeHemisphere: "hemisphere",
	ShapeEllipsoid:  "ellipsoid",
	ShapeArc:        "arc",
	ShapeEllipse:    "ellipse",
	ShapeCylinder:   "cylinder",
	ShapeCone:       "cone",
	ShapeOrbit:      "orbit",
	ShapeLine:       "line",
	ShapeLineSegs:   "linesegs",
	ShapePolygon:    "polygon",
	ShapePoints:     "points",
	ShapeAnnotation: "annotation",
}

func (t ShapeType) String() string {
	if name, ok := shapeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ShapeType(%d)", int(t))
}

// AltitudeMode controls how a shape's altitude is interpreted by a viewer.
type AltitudeMode int

const (
	AltitudeModeNone AltitudeMode = iota
	AltitudeModeClampToGround
	AltitudeModeRelativeToGround
	AltitudeModeExtrude
)

func (m AltitudeMode) String() string {
	switch m {
	case AltitudeModeNone:
		return "none"
	case AltitudeModeClampToGround:
		return "clamptoground"
	case AltitudeModeRelativeToGround:
		return "relativetoground"
	case AltitudeModeExtrude:
		return "extrude"
	default:
		return fmt.Sprintf("AltitudeMode(%d)", int(m))
	}
}

// LineStyle is the stroke style of an outlined or fillable shape.
type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDashed
	LineStyleDotted
)

func (s LineStyle) String() string {
	switch s {
	case LineStyleSolid:
		return "solid"
	case LineStyleDashed:
		return "dashed"
	case LineStyleDotted:
		return "dotted"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
}

// TessellationStyle controls how point-based shapes interpolate between
// vertices.
type TessellationStyle int

const (
	TessellationNone TessellationStyle = iota
	TessellationRhumbline
	TessellationGreatCircle
)

func (s TessellationStyle) String() string {
	switch s {
	case TessellationNone:
		return "none"
	case TessellationRhumbline:
		return "rhumbline"
	case TessellationGreatCircle:
		return "greatcircle"
	default:
		return fmt.Sprintf("TessellationStyle(%d)", int(s))
	}
}

// OutlineThickness is the text outline weight of an annotation.
type OutlineThickness int

const (
	ThicknessNone OutlineThickness = iota
	ThicknessThin
	ThicknessThick
)

func (o OutlineThickness) String() string {
	switch o {
	case ThicknessNone:
		return "none"
	case ThicknessThin:
		return "thin"
	case ThicknessThick:
		return "thick"
	default:
		return fmt.Sprintf("OutlineThickness(%d)", int(o))
	}
}

// DefaultReferencePoint is the reference position shapes fall back to when
// the source never declares one (BSTUR, Barking Sands Tactical Underwater
// Range).
var DefaultReferencePoint = calc.Vec3{
	X: 22.1194392 * calc.DegToRad,
	Y: -159.9194988 * calc.DegToRad,
	Z: 0,
}

// DefaultScale is the non-uniform scale shapes fall back to.
var DefaultScale = calc.Vec3{X: 1, Y: 1, Z: 1}

// Shape is the read interface shared by every parsed overlay shape. All
// optional accessors return the effective value plus a flag reporting
// whether the field was explicitly set in the source text; when the flag is
// false the value is the field's built-in default. Concrete shapes are
// *Circle, *Sphere, *Hemisphere, *Ellipsoid, *Arc, *Ellipse, *Cylinder,
// *Cone, *Orbit, *Line, *LineSegs, *Polygon, *Points and *Annotation;
// consumers needing type-specific fields switch on the concrete type.
type Shape interface {
	Type() ShapeType
	Name() (string, bool)
	IsDrawn() (bool, bool)
	IsDepthBufferActive() (bool, bool)
	AltitudeOffset() (float64, bool)
	AltitudeMode() (AltitudeMode, bool)
	ReferencePosition() (calc.Vec3, bool)
	Scale() (calc.Vec3, bool)
	IsFollowingYaw() (bool, bool)
	IsFollowingPitch() (bool, bool)
	IsFollowingRoll() (bool, bool)
	YawOffset() (float64, bool)
	PitchOffset() (float64, bool)
	RollOffset() (float64, bool)
	// IsRelative reports whether the shape's positions are relative XYZ
	// offsets rather than geodetic coordinates.
	IsRelative() bool

	base() *baseAttrs
}

// baseAttrs carries the optional fields shared by every shape. Each pointer
// field is nil until the source text sets it, preserving the unset-vs-default
// distinction for the shape's lifetime.
type baseAttrs struct {
	relative       bool
	name           *string
	drawn          *bool
	depthBuffer    *bool
	altitudeOffset *float64
	altitudeMode   *AltitudeMode
	referencePoint *calc.Vec3
	scale          *calc.Vec3
	followYaw      *bool
	followPitch    *bool
	followRoll     *bool
	yawOffset      *float64
	pitchOffset    *float64
	rollOffset     *float64
}

func (b *baseAttrs) base() *baseAttrs { return b }

func (b *baseAttrs) IsRelative() bool   { return b.relative }
func (b *baseAttrs) setRelative(v bool) { b.relative = v }

func (b *baseAttrs) Name() (string, bool) {
	if b.name == nil {
		return "", false
	}
	return *b.name, true
}
func (b *baseAttrs) SetName(v string) { b.name = &v }

func (b *baseAttrs) IsDrawn() (bool, bool) {
	if b.drawn == nil {
		return true, false
	}
	return *b.drawn, true
}
func (b *baseAttrs) SetDrawn(v bool) { b.drawn = &v }

func (b *baseAttrs) IsDepthBufferActive() (bool, bool) {
	if b.depthBuffer == nil {
		return false, false
	}
	return *b.depthBuffer, true
}
func (b *baseAttrs) SetDepthBufferActive(v bool) { b.depthBuffer = &v }

func (b *baseAttrs) AltitudeOffset() (float64, bool) {
	if b.altitudeOffset == nil {
		return 0, false
	}
	return *b.altitudeOffset, true
}
func (b *baseAttrs) SetAltitudeOffset(v float64) { b.altitudeOffset = &v }

func (b *baseAttrs) AltitudeMode() (AltitudeMode, bool) {
	if b.altitudeMode == nil {
		return AltitudeModeNone, false
	}
	return *b.altitudeMode, true
}
func (b *baseAttrs) SetAltitudeMode(v AltitudeMode) { b.altitudeMode = &v }

func (b *baseAttrs) ReferencePosition() (calc.Vec3, bool) {
	if b.referencePoint == nil {
		return DefaultReferencePoint, false
	}
	return *b.referencePoint, true
}
func (b *baseAttrs) SetReferencePosition(v calc.Vec3) { b.referencePoint = &v }

func (b *baseAttrs) Scale() (calc.Vec3, bool) {
	if b.scale == nil {
		return DefaultScale, false
	}
	return *b.scale, true
}
func (b *baseAttrs) SetScale(v calc.Vec3) { b.scale = &v }

func (b *baseAttrs) IsFollowingYaw() (bool, bool) {
	if b.followYaw == nil {
		return false, false
	}
	return *b.followYaw, true
}
func (b *baseAttrs) SetFollowingYaw(v bool) { b.followYaw = &v }

func (b *baseAttrs) IsFollowingPitch() (bool, bool) {
	if b.followPitch == nil {
		return false, false
	}
	return *b.followPitch, true
}
func (b *baseAttrs) SetFollowingPitch(v bool) { b.followPitch = &v }

func (b *baseAttrs) IsFollowingRoll() (bool, bool) {
	if b.followRoll == nil {
		return false, false
	}
	return *b.followRoll, true
}
func (b *baseAttrs) SetFollowingRoll(v bool) { b.followRoll = &v }

func (b *baseAttrs) YawOffset() (float64, bool) {
	if b.yawOffset == nil {
		return 0, false
	}
	return *b.yawOffset, true
}
func (b *baseAttrs) SetYawOffset(v float64) { b.yawOffset = &v }

func (b *baseAttrs) PitchOffset() (float64, bool) {
	if b.pitchOffset == nil {
		return 0, false
	}
	return *b.pitchOffset, true
}
func (b *baseAttrs) SetPitchOffset(v float64) { b.pitchOffset = &v }

func (b *baseAttrs) RollOffset() (float64, bool) {
	if b.rollOffset == nil {
		return 0, false
	}
	return *b.rollOffset, true
}
func (b *baseAttrs) SetRollOffset(v float64) { b.rollOffset = &v }

// clone returns a deep copy so shapes sharing a source block stay
// independent.
func (b *baseAttrs) clone() baseAttrs {
	return baseAttrs{
		relative:       b.relative,
		name:           clonePtr(b.name),
		drawn:          clonePtr(b.drawn),
		depthBuffer:    clonePtr(b.depthBuffer),
		altitudeOffset: clonePtr(b.altitudeOffset),
		altitudeMode:   clonePtr(b.altitudeMode),
		referencePoint: clonePtr(b.referencePoint),
		scale:          clonePtr(b.scale),
		followYaw:      clonePtr(b.followYaw),
		followPitch:    clonePtr(b.followPitch),
		followRoll:     clonePtr(b.followRoll),
		yawOffset:      clonePtr(b.yawOffset),
		pitchOffset:    clonePtr(b.pitchOffset),
		rollOffset:     clonePtr(b.rollOffset),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// outlinedAttrs is the capability layer for shapes that draw an outline.
// Unlike every other boolean field, the outline flag defaults to true.
type outlinedAttrs struct {
	outlined *bool
}

func (o *outlinedAttrs) IsOutlined() (bool, bool) {
	if o.outlined == nil {
		return true, false
	}
	return *o.outlined, true
}
func (o *outlinedAttrs) SetOutlined(v bool) { o.outlined = &v }

// fillableAttrs is the capability layer for shapes with a stroked and
// optionally filled body.
type fillableAttrs struct {
	outlinedAttrs
	lineWidth *int
	lineStyle *LineStyle
	lineColor *Color
	filled    *bool
	fillColor *Color
}

func (f *fillableAttrs) LineWidth() (int, bool) {
	if f.lineWidth == nil {
		return 1, false
	}
	return *f.lineWidth, true
}
func (f *fillableAttrs) SetLineWidth(v int) { f.lineWidth = &v }

func (f *fillableAttrs) LineStyle() (LineStyle, bool) {
	if f.lineStyle == nil {
		return LineStyleSolid, false
	}
	return *f.lineStyle, true
}
func (f *fillableAttrs) SetLineStyle(v LineStyle) { f.lineStyle = &v }

func (f *fillableAttrs) LineColor() (Color, bool) {
	if f.lineColor == nil {
		return DefaultColor, false
	}
	return *f.lineColor, true
}
func (f *fillableAttrs) SetLineColor(v Color) { f.lineColor = &v }

func (f *fillableAttrs) IsFilled() (bool, bool) {
	if f.filled == nil {
		return false, false
	}
	return *f.filled, true
}
func (f *fillableAttrs) SetFilled(v bool) { f.filled = &v }

func (f *fillableAttrs) FillColor() (Color, bool) {
	if f.fillColor == nil {
		return DefaultColor, false
	}
	return *f.fillColor, true
}
func (f *fillableAttrs) SetFillColor(v Color) { f.fillColor = &v }

// pointBasedAttrs is the capability layer for shapes defined by an ordered
// vertex list.
type pointBasedAttrs struct {
	fillableAttrs
	points       []calc.Vec3
	tessellation *TessellationStyle
}

// Points returns the shape's ordered vertex list in canonical units.
func (p *pointBasedAttrs) Points() []calc.Vec3 { return p.points }

func (p *pointBasedAttrs) Tessellation() (TessellationStyle, bool) {
	if p.tessellation == nil {
		return TessellationNone, false
	}
	return *p.tessellation, true
}
func (p *pointBasedAttrs) SetTessellation(v TessellationStyle) { p.tessellation = &v }

// circularAttrs is the capability layer for shapes with a center and radius.
type circularAttrs struct {
	center calc.Vec3
	radius *float64
}

// CenterPosition returns the shape's required center position.
func (c *circularAttrs) CenterPosition() calc.Vec3     { return c.center }
func (c *circularAttrs) SetCenterPosition(v calc.Vec3) { c.center = v }

// Radius returns the radius in meters, defaulting to 500.
func (c *circularAttrs) Radius() (float64, bool) {
	if c.radius == nil {
		return 500, false
	}
	return *c.radius, true
}
func (c *circularAttrs) SetRadius(v float64) { c.radius = &v }

// heightAttrs adds a height in meters, defaulting to 500.
type heightAttrs struct {
	height *float64
}

func (h *heightAttrs) Height() (float64, bool) {
	if h.height == nil {
		return 500, false
	}
	return *h.height, true
}
func (h *heightAttrs) SetHeight(v float64) { h.height = &v }

// ellipticalAttrs adds arc angles and axes, all defaulting to zero.
type ellipticalAttrs struct {
	angleStart *float64
	angleSweep *float64
	majorAxis  *float64
	minorAxis  *float64
}

func (e *ellipticalAttrs) AngleStart() (float64, bool) {
	if e.angleStart == nil {
		return 0, false
	}
	return *e.angleStart, true
}
func (e *ellipticalAttrs) SetAngleStart(v float64) { e.angleStart = &v }

func (e *ellipticalAttrs) AngleSweep() (float64, bool) {
	if e.angleSweep == nil {
		return 0, false
	}
	return *e.angleSweep, true
}
func (e *ellipticalAttrs) SetAngleSweep(v float64) { e.angleSweep = &v }

func (e *ellipticalAttrs) MajorAxis() (float64, bool) {
	if e.majorAxis == nil {
		return 0, false
	}
	return *e.majorAxis, true
}
func (e *ellipticalAttrs) SetMajorAxis(v float64) { e.majorAxis = &v }

func (e *ellipticalAttrs) MinorAxis() (float64, bool) {
	if e.minorAxis == nil {
		return 0, false
	}
	return *e.minorAxis, true
}
func (e *ellipticalAttrs) SetMinorAxis(v float64) { e.minorAxis = &v }

// Circle is a circle around a center position.
type Circle struct {
	baseAttrs
	fillableAttrs
	circularAttrs
}

func (*Circle) Type() ShapeType { return ShapeCircle }

// Sphere is a sphere around a center position.
type Sphere struct {
	baseAttrs
	fillableAttrs
	circularAttrs
}

func (*Sphere) Type() ShapeType { return ShapeSphere }

// Hemisphere is the upper half of a sphere around a center position.
type Hemisphere struct {
	baseAttrs
	fillableAttrs
	circularAttrs
}

func (*Hemisphere) Type() ShapeType { return ShapeHemisphere }

// Cone is a cone rising from a center position.
type Cone struct {
	baseAttrs
	fillableAttrs
	circularAttrs
	heightAttrs
}

func (*Cone) Type() ShapeType { return ShapeCone }

// Ellipsoid is an ellipsoid around a center position. Its axis defaults
// (1000 m) differ from the elliptical shapes' zero defaults.
type Ellipsoid struct {
	baseAttrs
	fillableAttrs
	circularAttrs
	heightAttrs
	majorAxis *float64
	minorAxis *float64
}

func (*Ellipsoid) Type() ShapeType { return ShapeEllipsoid }

func (e *Ellipsoid) MajorAxis() (float64, bool) {
	if e.majorAxis == nil {
		return 1000, false
	}
	return *e.majorAxis, true
}
func (e *Ellipsoid) SetMajorAxis(v float64) { e.majorAxis = &v }

func (e *Ellipsoid) MinorAxis() (float64, bool) {
	if e.minorAxis == nil {
		return 1000, false
	}
	return *e.minorAxis, true
}
func (e *Ellipsoid) SetMinorAxis(v float64) { e.minorAxis = &v }

// Arc is a partial ring around a center position.
type Arc struct {
	baseAttrs
	fillableAttrs
	circularAttrs
	ellipticalAttrs
}

func (*Arc) Type() ShapeType { return ShapeArc }

// Ellipse is a flat ellipse around a center position.
type Ellipse struct {
	baseAttrs
	fillableAttrs
	circularAttrs
	ellipticalAttrs
}

func (*Ellipse) Type() ShapeType { return ShapeEllipse }

// Cylinder is an extruded ellipse around a center position.
type Cylinder struct {
	baseAttrs
	fillableAttrs
	circularAttrs
	ellipticalAttrs
	heightAttrs
}

func (*Cylinder) Type() ShapeType { return ShapeCylinder }

// Orbit is a racetrack defined by two center positions and a radius.
type Orbit struct {
	baseAttrs
	fillableAttrs
	circularAttrs
	center2 calc.Vec3
}

func (*Orbit) Type() ShapeType { return ShapeOrbit }

// CenterPosition2 returns the orbit's required second center position.
func (o *Orbit) CenterPosition2() calc.Vec3     { return o.center2 }
func (o *Orbit) SetCenterPosition2(v calc.Vec3) { o.center2 = v }

// Line is a continuous polyline through two or more positions.
type Line struct {
	baseAttrs
	pointBasedAttrs
}

func (*Line) Type() ShapeType { return ShapeLine }

// LineSegs is a set of disconnected segments through pairs of positions.
type LineSegs struct {
	baseAttrs
	pointBasedAttrs
}

func (*LineSegs) Type() ShapeType { return ShapeLineSegs }

// Polygon is a closed ring through three or more positions.
type Polygon struct {
	baseAttrs
	pointBasedAttrs
}

func (*Polygon) Type() ShapeType { return ShapePolygon }

// Points is a set of independent positions drawn as markers.
type Points struct {
	baseAttrs
	outlinedAttrs
	points    []calc.Vec3
	pointSize *int
	color     *Color
}

func (*Points) Type() ShapeType { return ShapePoints }

// Points returns the ordered marker positions in canonical units.
func (p *Points) Points() []calc.Vec3 { return p.points }

// PointSize returns the marker size, defaulting to 1.
func (p *Points) PointSize() (int, bool) {
	if p.pointSize == nil {
		return 1, false
	}
	return *p.pointSize, true
}
func (p *Points) SetPointSize(v int) { p.pointSize = &v }

// Color returns the marker color.
func (p *Points) Color() (Color, bool) {
	if p.color == nil {
		return DefaultColor, false
	}
	return *p.color, true
}
func (p *Points) SetColor(v Color) { p.color = &v }

// Annotation is a text label at a position.
type Annotation struct {
	baseAttrs
	text             string
	position         calc.Vec3
	fontName         *string
	textSize         *int
	textColor        *Color
	outlineColor     *Color
	outlineThickness *OutlineThickness
	iconFile         *string
}

func (*Annotation) Type() ShapeType { return ShapeAnnotation }

// Text returns the annotation's required label text.
func (a *Annotation) Text() string     { return a.text }
func (a *Annotation) SetText(v string) { a.text = v }

// Position returns the annotation's required position.
func (a *Annotation) Position() calc.Vec3     { return a.position }
func (a *Annotation) SetPosition(v calc.Vec3) { a.position = v }

func (a *Annotation) FontName() (string, bool) {
	if a.fontName == nil {
		return "", false
	}
	return *a.fontName, true
}
func (a *Annotation) SetFontName(v string) { a.fontName = &v }

// TextSize returns the point size of the label text, defaulting to 15.
func (a *Annotation) TextSize() (int, bool) {
	if a.textSize == nil {
		return 15, false
	}
	return *a.textSize, true
}
func (a *Annotation) SetTextSize(v int) { a.textSize = &v }

func (a *Annotation) TextColor() (Color, bool) {
	if a.textColor == nil {
		return DefaultColor, false
	}
	return *a.textColor, true
}
func (a *Annotation) SetTextColor(v Color) { a.textColor = &v }

func (a *Annotation) OutlineColor() (Color, bool) {
	if a.outlineColor == nil {
		return DefaultColor, false
	}
	return *a.outlineColor, true
}
func (a *Annotation) SetOutlineColor(v Color) { a.outlineColor = &v }

func (a *Annotation) OutlineThickness() (OutlineThickness, bool) {
	if a.outlineThickness == nil {
		return ThicknessNone, false
	}
	return *a.outlineThickness, true
}
func (a *Annotation) SetOutlineThickness(v OutlineThickness) { a.outlineThickness = &v }

func (a *Annotation) IconFile() (string, bool) {
	if a.iconFile == nil {
		return "", false
	}
	return *a.iconFile, true
}
func (a *Annotation) SetIconFile(v string) { a.iconFile = &v }
