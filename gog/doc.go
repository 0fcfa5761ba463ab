// Package gog parses SIMDIS geospatial overlay (GOG) files into a typed
// shape model.
//
// A GOG file is line-oriented keyword text: each shape lives in a block
// bracketed by start/end, with one shape-type keyword (circle, line,
// annotation and so on) plus position and attribute lines in any order.
// Values are normalized on parse, lengths to meters and angles to radians,
// with per-block rangeunits/altitudeunits/angleunits directives controlling
// the source units.
//
// The parser is liberal. Unknown keywords and malformed values cost only
// themselves, a block missing a required field yields no shape, and Parse
// fails only when its reader does:
//
//	shapes, err := gog.NewParser().Parse(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range shapes {
//	    fmt.Println(s.Type())
//	}
//
// Serialize writes shapes back out in a canonical base-unit form that
// parses to equal shapes.
package gog
