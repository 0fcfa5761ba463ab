// Package units defines the measurement units understood by overlay files
// and their conversions to the canonical storage units (meters for length,
// radians for angle).
package units

import (
	"fmt"
	"math"
	"strings"
)

// Unit identifies a single measurement unit.
type Unit int

const (
	// Length units.
	Meters Unit = iota
	Kilometers
	Yards
	Feet
	Kilofeet
	NauticalMiles
	StatuteMiles
	DataMiles
	Fathoms

	// Angle units.
	Degrees
	Radians
	BAM
	Mil
)

// toBase holds the multiplier from each unit to its family's base unit
// (meters for length, radians for angle).
var toBase = map[Unit]float64{
	Meters:        1.0,
	Kilometers:    1000.0,
	Yards:         0.9144,
	Feet:          0.3048,
	Kilofeet:      304.8,
	NauticalMiles: 1852.0,
	StatuteMiles:  1609.344,
	DataMiles:     1828.8,
	Fathoms:       1.8288,

	Degrees: math.Pi / 180.0,
	Radians: 1.0,
	BAM:     2.0 * math.Pi,
	Mil:     2.0 * math.Pi / 6400.0,
}

var unitNames = map[Unit]string{
	Meters:        "meters",
	Kilometers:    "kilometers",
	Yards:         "yards",
	Feet:          "feet",
	Kilofeet:      "kilofeet",
	NauticalMiles: "nautical miles",
	StatuteMiles:  "miles",
	DataMiles:     "data miles",
	Fathoms:       "fathoms",
	Degrees:       "degrees",
	Radians:       "radians",
	BAM:           "bam",
	Mil:           "mil",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsLength reports whether u measures length.
func (u Unit) IsLength() bool {
	return u >= Meters && u <= Fathoms
}

// IsAngle reports whether u measures angle.
func (u Unit) IsAngle() bool {
	return u >= Degrees && u <= Mil
}

// ToBase converts a value in u to the family base unit (meters or radians).
func (u Unit) ToBase(value float64) float64 {
	return value * toBase[u]
}

// FromBase converts a value in the family base unit into u.
func (u Unit) FromBase(value float64) float64 {
	return value / toBase[u]
}

// ConvertTo converts a value in u to the unit to. Returns an error when the
// units measure different quantities.
func (u Unit) ConvertTo(to Unit, value float64) (float64, error) {
	if u.IsLength() != to.IsLength() {
		return 0, fmt.Errorf("cannot convert %s to %s", u, to)
	}
	return to.FromBase(u.ToBase(value)), nil
}

// lengthNames maps the spellings accepted by unit directives to length units.
var lengthNames = map[string]Unit{
	"m":             Meters,
	"meter":         Meters,
	"meters":        Meters,
	"km":            Kilometers,
	"kilometer":     Kilometers,
	"kilometers":    Kilometers,
	"yd":            Yards,
	"yard":          Yards,
	"yards":         Yards,
	"ft":            Feet,
	"foot":          Feet,
	"feet":          Feet,
	"kf":            Kilofeet,
	"kilofeet":      Kilofeet,
	"nm":            NauticalMiles,
	"nauticalmile":  NauticalMiles,
	"nauticalmiles": NauticalMiles,
	"sm":            StatuteMiles,
	"mile":          StatuteMiles,
	"miles":         StatuteMiles,
	"dm":            DataMiles,
	"datamile":      DataMiles,
	"datamiles":     DataMiles,
	"fm":            Fathoms,
	"fathom":        Fathoms,
	"fathoms":       Fathoms,
}

var angleNames = map[string]Unit{
	"deg":     Degrees,
	"degree":  Degrees,
	"degrees": Degrees,
	"rad":     Radians,
	"radian":  Radians,
	"radians": Radians,
	"bam":     BAM,
	"mil":     Mil,
}

// ParseLength resolves a length unit name, case-insensitively.
func ParseLength(name string) (Unit, bool) {
	u, ok := lengthNames[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}

// ParseAngle resolves an angle unit name, case-insensitively.
func ParseAngle(name string) (Unit, bool) {
	u, ok := angleNames[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}
