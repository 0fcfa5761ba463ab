package gog

// keywordKind classifies what a keyword token means to the block scanner.
type keywordKind int

const (
	kindUnknown keywordKind = iota
	kindOpen                // start
	kindClose               // end
	kindShapeType           // circle, line, annotation, ...
	kindUnitDirective       // rangeunits, altitudeunits, angleunits
	kindAttribute           // everything else the applicator understands
)

// keywords maps every recognized lowercase keyword to its kind. Matching is
// case-insensitive: callers must lowercase the token before lookup.
var keywords = map[string]keywordKind{
	"start": kindOpen,
	"end":   kindClose,

	"circle":     kindShapeType,
	"sphere":     kindShapeType,
	"hemisphere": kindShapeType,
	"ellipsoid":  kindShapeType,
	"arc":        kindShapeType,
	"ellipse":    kindShapeType,
	"cylinder":   kindShapeType,
	"cone":       kindShapeType,
	"orbit":      kindShapeType,
	"line":       kindShapeType,
	"linesegs":   kindShapeType,
	"poly":       kindShapeType,
	"polygon":    kindShapeType,
	"points":     kindShapeType,
	"annotation": kindShapeType,

	"rangeunits":    kindUnitDirective,
	"altitudeunits": kindUnitDirective,
	"angleunits":    kindUnitDirective,

	"ll":                   kindAttribute,
	"lla":                  kindAttribute,
	"latlonalt":            kindAttribute,
	"xy":                   kindAttribute,
	"xyz":                  kindAttribute,
	"centerll":             kindAttribute,
	"centerlla":            kindAttribute,
	"centerlatlonalt":      kindAttribute,
	"centerxy":             kindAttribute,
	"centerxyz":            kindAttribute,
	"centerll2":            kindAttribute,
	"centerlla2":           kindAttribute,
	"centerxy2":            kindAttribute,
	"centerxyz2":           kindAttribute,
	"referencepoint":       kindAttribute,
	"radius":               kindAttribute,
	"height":               kindAttribute,
	"anglestart":           kindAttribute,
	"angledeg":             kindAttribute,
	"angleend":             kindAttribute,
	"majoraxis":            kindAttribute,
	"minoraxis":            kindAttribute,
	"linewidth":            kindAttribute,
	"linecolor":            kindAttribute,
	"linestyle":            kindAttribute,
	"filled":               kindAttribute,
	"fillcolor":            kindAttribute,
	"outline":              kindAttribute,
	"tessellate":           kindAttribute,
	"lineprojection":       kindAttribute,
	"pointsize":            kindAttribute,
	"fontname":             kindAttribute,
	"fontsize":             kindAttribute,
	"textoutlinecolor":     kindAttribute,
	"textoutlinethickness": kindAttribute,
	"kml_icon":             kindAttribute,
	"depthbuffer":          kindAttribute,
	"altitudemode":         kindAttribute,
	"extrude":              kindAttribute,
	"scale":                kindAttribute,
	"off":                  kindAttribute,
	"3d":                   kindAttribute,
}

// shapeTypeKeywords maps shape-type keywords to their tags. "poly" and
// "polygon" are synonyms.
var shapeTypeKeywords = map[string]ShapeType{
	"circle":     ShapeCircle,
	"sphere":     ShapeSphere,
	"hemisphere": ShapeHemisphere,
	"ellipsoid":  ShapeEllipsoid,
	"arc":        ShapeArc,
	"ellipse":    ShapeEllipse,
	"cylinder":   ShapeCylinder,
	"cone":       ShapeCone,
	"orbit":      ShapeOrbit,
	"line":       ShapeLine,
	"linesegs":   ShapeLineSegs,
	"poly":       ShapePolygon,
	"polygon":    ShapePolygon,
	"points":     ShapePoints,
	"annotation": ShapeAnnotation,
}
