package gog

import (
	"io"
	"strconv"
	"strings"

	"github.com/glenn-saic/simdissdk/calc"
	"github.com/glenn-saic/simdissdk/csvreader"
	"github.com/glenn-saic/simdissdk/units"
)

// Parser reads overlay text and produces shapes. Parsing is liberal: a
// malformed attribute loses only that attribute, a block missing a required
// field loses only that shape, and Parse returns an error only when the
// underlying reader fails. A zero-value Parser is not usable; call NewParser.
type Parser struct {
	commentChar rune
}

// NewParser returns a parser treating '#' as the comment character.
func NewParser() *Parser {
	return &Parser{commentChar: '#'}
}

// SetCommentChar changes the character that introduces comment lines.
func (p *Parser) SetCommentChar(c rune) {
	p.commentChar = c
}

// Parse reads all shape blocks from r. Shapes arrive in source order,
// including multiple shapes produced by a nested annotation block. A block
// left open at EOF is discarded.
func (p *Parser) Parse(r io.Reader) ([]Shape, error) {
	reader := csvreader.New(r)
	reader.SetCommentChar(p.commentChar)
	reader.SetDelimiterChar(' ')

	var shapes []Shape
	var block *blockState
	for {
		tokens, err := reader.ReadLineTrimmed()
		if err == io.EOF {
			break
		}
		if err != nil {
			return shapes, err
		}
		if len(tokens) == 0 {
			continue
		}
		keyword := strings.ToLower(tokens[0])
		switch keywords[keyword] {
		case kindOpen:
			// a second start discards the unfinished block
			block = &blockState{}
		case kindClose:
			if block != nil {
				shapes = append(shapes, block.build()...)
				block = nil
			}
		default:
			if block != nil {
				block.addRow(row{keyword: keyword, tokens: tokens})
			}
		}
	}
	return shapes, nil
}

// row is one tokenized line inside a block. The keyword is lowercased for
// dispatch; tokens keep their original case for text arguments.
type row struct {
	keyword string
	tokens  []string
}

// arg returns the i'th argument token, counting from after the keyword.
func (r row) arg(i int) (string, bool) {
	if i+1 >= len(r.tokens) {
		return "", false
	}
	return r.tokens[i+1], true
}

type blockState struct {
	shapeType ShapeType
	invalid   bool
	rows      []row
}

func (b *blockState) addRow(r row) {
	if t, ok := shapeTypeKeywords[r.keyword]; ok {
		switch {
		case b.shapeType == ShapeUnknown:
			b.shapeType = t
		case b.shapeType == ShapeAnnotation && t == ShapeAnnotation:
			// nested annotations share one block
		default:
			b.invalid = true
		}
	}
	b.rows = append(b.rows, r)
}

// build converts the accumulated block into zero or more shapes. Unit
// directives are resolved first so their placement within the block does not
// matter.
func (b *blockState) build() []Shape {
	if b.invalid || b.shapeType == ShapeUnknown {
		return nil
	}
	bld := &shapeBuilder{units: resolveUnits(b.rows), rows: b.rows}
	switch b.shapeType {
	case ShapeAnnotation:
		return bld.buildAnnotations()
	case ShapeLine, ShapeLineSegs, ShapePolygon:
		if s := bld.buildPointBased(b.shapeType); s != nil {
			return []Shape{s}
		}
	case ShapePoints:
		if s := bld.buildPoints(); s != nil {
			return []Shape{s}
		}
	default:
		if s := bld.buildCircular(b.shapeType); s != nil {
			return []Shape{s}
		}
	}
	return nil
}

// unitContext holds the measurement units in effect for a block.
type unitContext struct {
	rangeUnits    units.Unit
	altitudeUnits units.Unit
	angleUnits    units.Unit
}

func resolveUnits(rows []row) unitContext {
	u := unitContext{
		rangeUnits:    units.Yards,
		altitudeUnits: units.Feet,
		angleUnits:    units.Degrees,
	}
	for _, r := range rows {
		name, ok := r.arg(0)
		if !ok {
			continue
		}
		switch r.keyword {
		case "rangeunits":
			if parsed, ok := units.ParseLength(name); ok {
				u.rangeUnits = parsed
			}
		case "altitudeunits":
			if parsed, ok := units.ParseLength(name); ok {
				u.altitudeUnits = parsed
			}
		case "angleunits":
			if parsed, ok := units.ParseAngle(name); ok {
				u.angleUnits = parsed
			}
		}
	}
	return u
}

func (u unitContext) length(s string) (float64, bool) {
	v, ok := parseFloatToken(s)
	if !ok {
		return 0, false
	}
	return u.rangeUnits.ToBase(v), true
}

func (u unitContext) altitude(s string) (float64, bool) {
	v, ok := parseFloatToken(s)
	if !ok {
		return 0, false
	}
	return u.altitudeUnits.ToBase(v), true
}

func (u unitContext) angle(s string) (float64, bool) {
	v, ok := parseFloatToken(s)
	if !ok {
		return 0, false
	}
	return u.angleUnits.ToBase(v), true
}

func parseFloatToken(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntToken(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseBoolToken accepts the affirmative spellings used by overlay files;
// anything else is false.
func parseBoolToken(s string) bool {
	switch strings.ToLower(s) {
	case "true", "on", "yes", "1":
		return true
	}
	return false
}

// shapeBuilder turns the rows of a closed block into one shape family.
type shapeBuilder struct {
	units unitContext
	rows  []row
}

// parseGeodetic parses "lat lon [alt]" starting at argument index start.
// Latitude and longitude are always degrees regardless of the block's angle
// units; altitude uses the block's altitude units.
func (bl *shapeBuilder) parseGeodetic(r row, start int) (calc.Vec3, bool) {
	latTok, okLat := r.arg(start)
	lonTok, okLon := r.arg(start + 1)
	if !okLat || !okLon {
		return calc.Vec3{}, false
	}
	lat, okLat := parseFloatToken(latTok)
	lon, okLon := parseFloatToken(lonTok)
	if !okLat || !okLon {
		return calc.Vec3{}, false
	}
	alt := 0.0
	if altTok, ok := r.arg(start + 2); ok {
		parsed, ok := bl.units.altitude(altTok)
		if !ok {
			return calc.Vec3{}, false
		}
		alt = parsed
	}
	return calc.Vec3{X: lat * calc.DegToRad, Y: lon * calc.DegToRad, Z: alt}, true
}

// parseRelative parses "x y [z]". X and y use the block's range units, z its
// altitude units.
func (bl *shapeBuilder) parseRelative(r row) (calc.Vec3, bool) {
	xTok, okX := r.arg(0)
	yTok, okY := r.arg(1)
	if !okX || !okY {
		return calc.Vec3{}, false
	}
	x, okX := bl.units.length(xTok)
	y, okY := bl.units.length(yTok)
	if !okX || !okY {
		return calc.Vec3{}, false
	}
	z := 0.0
	if zTok, ok := r.arg(2); ok {
		parsed, ok := bl.units.altitude(zTok)
		if !ok {
			return calc.Vec3{}, false
		}
		z = parsed
	}
	return calc.Vec3{X: x, Y: y, Z: z}, true
}

// parsePosition parses any position row and reports whether it is a relative
// offset rather than a geodetic coordinate.
func (bl *shapeBuilder) parsePosition(r row) (pos calc.Vec3, relative, ok bool) {
	switch r.keyword {
	case "ll", "lla", "latlonalt", "centerll", "centerlla", "centerlatlonalt",
		"centerll2", "centerlla2":
		pos, ok = bl.parseGeodetic(r, 0)
		return pos, false, ok
	case "xy", "xyz", "centerxy", "centerxyz", "centerxy2", "centerxyz2":
		pos, ok = bl.parseRelative(r)
		return pos, true, ok
	}
	return calc.Vec3{}, false, false
}

func isCenterKeyword(k string) bool {
	switch k {
	case "centerll", "centerlla", "centerlatlonalt", "centerxy", "centerxyz":
		return true
	}
	return false
}

func isCenter2Keyword(k string) bool {
	switch k {
	case "centerll2", "centerlla2", "centerxy2", "centerxyz2":
		return true
	}
	return false
}

func isPositionKeyword(k string) bool {
	switch k {
	case "ll", "lla", "latlonalt", "xy", "xyz":
		return true
	}
	return false
}

// applyBase applies the attributes every shape accepts, reporting whether
// the row was consumed.
func (bl *shapeBuilder) applyBase(s Shape, r row) bool {
	b := s.base()
	switch r.keyword {
	case "off":
		b.SetDrawn(false)
	case "depthbuffer":
		if arg, ok := r.arg(0); ok {
			b.SetDepthBufferActive(parseBoolToken(arg))
		}
	case "altitudemode":
		arg, ok := r.arg(0)
		if !ok {
			break
		}
		switch strings.ToLower(arg) {
		case "clamptoground":
			b.SetAltitudeMode(AltitudeModeClampToGround)
		case "relativetoground":
			b.SetAltitudeMode(AltitudeModeRelativeToGround)
		case "extrude":
			b.SetAltitudeMode(AltitudeModeExtrude)
		case "none":
			b.SetAltitudeMode(AltitudeModeNone)
		}
	case "extrude":
		if arg, ok := r.arg(0); ok {
			if parseBoolToken(arg) {
				b.SetAltitudeMode(AltitudeModeExtrude)
			} else {
				b.SetAltitudeMode(AltitudeModeNone)
			}
		}
	case "scale":
		xTok, okX := r.arg(0)
		yTok, okY := r.arg(1)
		zTok, okZ := r.arg(2)
		if !okX || !okY || !okZ {
			break
		}
		x, okX := parseFloatToken(xTok)
		y, okY := parseFloatToken(yTok)
		z, okZ := parseFloatToken(zTok)
		if okX && okY && okZ {
			b.SetScale(calc.Vec3{X: x, Y: y, Z: z})
		}
	case "referencepoint":
		if pos, ok := bl.parseGeodetic(r, 0); ok {
			b.SetReferencePosition(pos)
		}
	case "3d":
		bl.apply3D(b, r)
	default:
		return false
	}
	return true
}

func (bl *shapeBuilder) apply3D(b *baseAttrs, r row) {
	sub, ok := r.arg(0)
	if !ok {
		return
	}
	arg, ok := r.arg(1)
	if !ok {
		return
	}
	switch strings.ToLower(sub) {
	case "name":
		b.SetName(strings.Join(r.tokens[2:], " "))
	case "offsetalt":
		if v, ok := bl.units.altitude(arg); ok {
			b.SetAltitudeOffset(v)
		}
	case "offsetyaw":
		if v, ok := bl.units.angle(arg); ok {
			b.SetYawOffset(v)
		}
	case "offsetpitch":
		if v, ok := bl.units.angle(arg); ok {
			b.SetPitchOffset(v)
		}
	case "offsetroll":
		if v, ok := bl.units.angle(arg); ok {
			b.SetRollOffset(v)
		}
	case "follow":
		components := strings.ToLower(arg)
		if strings.ContainsRune(components, 'c') {
			b.SetFollowingYaw(true)
		}
		if strings.ContainsRune(components, 'p') {
			b.SetFollowingPitch(true)
		}
		if strings.ContainsRune(components, 'r') {
			b.SetFollowingRoll(true)
		}
	}
}

// applyFillable applies stroke and fill attributes, reporting whether the
// row was consumed.
func (bl *shapeBuilder) applyFillable(f *fillableAttrs, r row) bool {
	switch r.keyword {
	case "linewidth":
		if arg, ok := r.arg(0); ok {
			if v, ok := parseIntToken(arg); ok {
				f.SetLineWidth(v)
			}
		}
	case "linecolor":
		if c, ok := parseColorArgs(r.tokens[1:]); ok {
			f.SetLineColor(c)
		}
	case "linestyle":
		arg, ok := r.arg(0)
		if !ok {
			break
		}
		switch strings.ToLower(arg) {
		case "solid":
			f.SetLineStyle(LineStyleSolid)
		case "dashed":
			f.SetLineStyle(LineStyleDashed)
		case "dotted":
			f.SetLineStyle(LineStyleDotted)
		}
	case "filled":
		// a bare "filled" means true
		if arg, ok := r.arg(0); ok {
			f.SetFilled(parseBoolToken(arg))
		} else {
			f.SetFilled(true)
		}
	case "fillcolor":
		if c, ok := parseColorArgs(r.tokens[1:]); ok {
			f.SetFillColor(c)
		}
	case "outline":
		if arg, ok := r.arg(0); ok {
			f.SetOutlined(parseBoolToken(arg))
		}
	default:
		return false
	}
	return true
}

// buildCircular handles the center-and-radius family: circle, sphere,
// hemisphere, ellipsoid, arc, ellipse, cylinder, cone and orbit.
func (bl *shapeBuilder) buildCircular(t ShapeType) Shape {
	var (
		s         Shape
		fill      *fillableAttrs
		circ      *circularAttrs
		hgt       *heightAttrs
		ell       *ellipticalAttrs
		ellipsoid *Ellipsoid
		orbit     *Orbit
	)
	switch t {
	case ShapeCircle:
		v := &Circle{}
		s, fill, circ = v, &v.fillableAttrs, &v.circularAttrs
	case ShapeSphere:
		v := &Sphere{}
		s, fill, circ = v, &v.fillableAttrs, &v.circularAttrs
	case ShapeHemisphere:
		v := &Hemisphere{}
		s, fill, circ = v, &v.fillableAttrs, &v.circularAttrs
	case ShapeCone:
		v := &Cone{}
		s, fill, circ, hgt = v, &v.fillableAttrs, &v.circularAttrs, &v.heightAttrs
	case ShapeEllipsoid:
		v := &Ellipsoid{}
		s, fill, circ, hgt = v, &v.fillableAttrs, &v.circularAttrs, &v.heightAttrs
		ellipsoid = v
	case ShapeArc:
		v := &Arc{}
		s, fill, circ, ell = v, &v.fillableAttrs, &v.circularAttrs, &v.ellipticalAttrs
	case ShapeEllipse:
		v := &Ellipse{}
		s, fill, circ, ell = v, &v.fillableAttrs, &v.circularAttrs, &v.ellipticalAttrs
	case ShapeCylinder:
		v := &Cylinder{}
		s, fill, circ, ell, hgt = v, &v.fillableAttrs, &v.circularAttrs, &v.ellipticalAttrs, &v.heightAttrs
	case ShapeOrbit:
		v := &Orbit{}
		s, fill, circ = v, &v.fillableAttrs, &v.circularAttrs
		orbit = v
	default:
		return nil
	}

	centerSet := false
	center2Set := false
	angleStart := 0.0
	for _, r := range bl.rows {
		switch {
		case isCenterKeyword(r.keyword):
			if pos, relative, ok := bl.parsePosition(r); ok {
				circ.SetCenterPosition(pos)
				s.base().setRelative(relative)
				centerSet = true
			}
		case isCenter2Keyword(r.keyword):
			if orbit != nil {
				if pos, _, ok := bl.parsePosition(r); ok {
					orbit.SetCenterPosition2(pos)
					center2Set = true
				}
			}
		case r.keyword == "radius":
			if arg, ok := r.arg(0); ok {
				if v, ok := bl.units.length(arg); ok {
					circ.SetRadius(v)
				}
			}
		case r.keyword == "height":
			if hgt != nil {
				if arg, ok := r.arg(0); ok {
					if v, ok := bl.units.altitude(arg); ok {
						hgt.SetHeight(v)
					}
				}
			}
		case r.keyword == "anglestart":
			if arg, ok := r.arg(0); ok {
				if v, ok := bl.units.angle(arg); ok {
					angleStart = v
					if ell != nil {
						ell.SetAngleStart(v)
					}
				}
			}
		case r.keyword == "angledeg":
			if ell != nil {
				if arg, ok := r.arg(0); ok {
					if v, ok := bl.units.angle(arg); ok {
						ell.SetAngleSweep(v)
					}
				}
			}
		case r.keyword == "angleend":
			// stored as a sweep from the current start angle
			if ell != nil {
				if arg, ok := r.arg(0); ok {
					if v, ok := bl.units.angle(arg); ok {
						ell.SetAngleSweep(calc.AngFix2Pi(v - angleStart))
					}
				}
			}
		case r.keyword == "majoraxis":
			arg, ok := r.arg(0)
			if !ok {
				break
			}
			if v, ok := bl.units.length(arg); ok {
				if ell != nil {
					ell.SetMajorAxis(v)
				} else if ellipsoid != nil {
					ellipsoid.SetMajorAxis(v)
				}
			}
		case r.keyword == "minoraxis":
			arg, ok := r.arg(0)
			if !ok {
				break
			}
			if v, ok := bl.units.length(arg); ok {
				if ell != nil {
					ell.SetMinorAxis(v)
				} else if ellipsoid != nil {
					ellipsoid.SetMinorAxis(v)
				}
			}
		default:
			if bl.applyFillable(fill, r) {
				break
			}
			bl.applyBase(s, r)
		}
	}

	if !centerSet {
		return nil
	}
	if orbit != nil && !center2Set {
		return nil
	}
	return s
}

// buildPointBased handles line, linesegs and polygon.
func (bl *shapeBuilder) buildPointBased(t ShapeType) Shape {
	var (
		s         Shape
		pb        *pointBasedAttrs
		minPoints int
	)
	switch t {
	case ShapeLine:
		v := &Line{}
		s, pb, minPoints = v, &v.pointBasedAttrs, 2
	case ShapeLineSegs:
		v := &LineSegs{}
		s, pb, minPoints = v, &v.pointBasedAttrs, 2
	case ShapePolygon:
		v := &Polygon{}
		s, pb, minPoints = v, &v.pointBasedAttrs, 3
	default:
		return nil
	}

	tessellateSet := false
	tessellate := false
	greatCircle := false
	for _, r := range bl.rows {
		switch {
		case isPositionKeyword(r.keyword):
			if pos, relative, ok := bl.parsePosition(r); ok {
				pb.points = append(pb.points, pos)
				if relative {
					s.base().setRelative(true)
				}
			}
		case r.keyword == "tessellate":
			if arg, ok := r.arg(0); ok {
				tessellateSet = true
				tessellate = parseBoolToken(arg)
			}
		case r.keyword == "lineprojection":
			if arg, ok := r.arg(0); ok {
				greatCircle = strings.EqualFold(arg, "greatcircle")
			}
		default:
			if bl.applyFillable(&pb.fillableAttrs, r) {
				break
			}
			bl.applyBase(s, r)
		}
	}
	if tessellateSet {
		switch {
		case !tessellate:
			pb.SetTessellation(TessellationNone)
		case greatCircle:
			pb.SetTessellation(TessellationGreatCircle)
		default:
			pb.SetTessellation(TessellationRhumbline)
		}
	}

	if len(pb.points) < minPoints {
		return nil
	}
	return s
}

// buildPoints handles the points shape, whose color arrives via the
// linecolor keyword.
func (bl *shapeBuilder) buildPoints() Shape {
	s := &Points{}
	for _, r := range bl.rows {
		switch {
		case isPositionKeyword(r.keyword):
			if pos, relative, ok := bl.parsePosition(r); ok {
				s.points = append(s.points, pos)
				if relative {
					s.setRelative(true)
				}
			}
		case r.keyword == "pointsize":
			if arg, ok := r.arg(0); ok {
				if v, ok := parseIntToken(arg); ok {
					s.SetPointSize(v)
				}
			}
		case r.keyword == "linecolor":
			if c, ok := parseColorArgs(r.tokens[1:]); ok {
				s.SetColor(c)
			}
		case r.keyword == "outline":
			if arg, ok := r.arg(0); ok {
				s.SetOutlined(parseBoolToken(arg))
			}
		default:
			bl.applyBase(s, r)
		}
	}
	if len(s.points) == 0 {
		return nil
	}
	return s
}

// annotationOccurrence is one annotation keyword within a block plus the
// position that follows it.
type annotationOccurrence struct {
	text        string
	position    calc.Vec3
	positionSet bool
	relative    bool
}

// buildAnnotations expands a block into one shape per annotation keyword.
// Style attributes are gathered from the rows of the first occurrence and
// shared by all of them; an occurrence missing its text or position is
// dropped without affecting the others.
func (bl *shapeBuilder) buildAnnotations() []Shape {
	template := &Annotation{}
	var occurrences []annotationOccurrence
	for _, r := range bl.rows {
		switch {
		case r.keyword == "annotation":
			occurrences = append(occurrences, annotationOccurrence{
				text: strings.Join(r.tokens[1:], " "),
			})
		case isPositionKeyword(r.keyword) || isCenterKeyword(r.keyword):
			if len(occurrences) == 0 {
				break
			}
			if pos, relative, ok := bl.parsePosition(r); ok {
				occ := &occurrences[len(occurrences)-1]
				occ.position = pos
				occ.positionSet = true
				occ.relative = relative
			}
		case len(occurrences) > 1:
			// style rows of later occurrences lose to the first's
		case r.keyword == "fontname":
			if arg, ok := r.arg(0); ok {
				template.SetFontName(arg)
			}
		case r.keyword == "fontsize":
			if arg, ok := r.arg(0); ok {
				if v, ok := parseIntToken(arg); ok {
					template.SetTextSize(v)
				}
			}
		case r.keyword == "linecolor":
			// annotations use linecolor for their text color
			if c, ok := parseColorArgs(r.tokens[1:]); ok {
				template.SetTextColor(c)
			}
		case r.keyword == "textoutlinecolor":
			if c, ok := parseColorArgs(r.tokens[1:]); ok {
				template.SetOutlineColor(c)
			}
		case r.keyword == "textoutlinethickness":
			arg, ok := r.arg(0)
			if !ok {
				break
			}
			switch strings.ToLower(arg) {
			case "none":
				template.SetOutlineThickness(ThicknessNone)
			case "thin":
				template.SetOutlineThickness(ThicknessThin)
			case "thick":
				template.SetOutlineThickness(ThicknessThick)
			}
		case r.keyword == "kml_icon":
			if arg, ok := r.arg(0); ok {
				template.SetIconFile(arg)
			}
		default:
			bl.applyBase(template, r)
		}
	}

	var shapes []Shape
	for _, occ := range occurrences {
		if occ.text == "" || !occ.positionSet {
			continue
		}
		a := &Annotation{
			baseAttrs:        template.baseAttrs.clone(),
			fontName:         clonePtr(template.fontName),
			textSize:         clonePtr(template.textSize),
			textColor:        clonePtr(template.textColor),
			outlineColor:     clonePtr(template.outlineColor),
			outlineThickness: clonePtr(template.outlineThickness),
			iconFile:         clonePtr(template.iconFile),
		}
		a.SetText(occ.text)
		a.SetPosition(occ.position)
		a.setRelative(occ.relative)
		shapes = append(shapes, a)
	}
	return shapes
}
