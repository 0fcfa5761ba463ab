// Package geofence tests positions against convex regions on the earth,
// built from overlay polygon rings or raw coordinate lists.
//
// A fence is the region bounded by great-circle planes through consecutive
// ring vertices and the earth center. Only convex rings form a usable fence;
// Valid reports whether the ring qualifies, and Contains always rejects
// points when it does not.
package geofence

import (
	"github.com/glenn-saic/simdissdk/calc"
)

// CoordSys identifies how the components of fence input positions are
// interpreted.
type CoordSys int

const (
	// CoordSysGeodetic positions are latitude and longitude radians with
	// altitude in meters.
	CoordSysGeodetic CoordSys = iota
	// CoordSysECEF positions are earth-centered earth-fixed meters.
	CoordSysECEF
)

// containTolerance absorbs floating error when a ring vertex sits exactly on
// its own edge planes. Directions and normals are unit length, so this is a
// dimensionless dot product bound.
const containTolerance = 1e-9

// Fence is a convex region on the earth. The zero value is an invalid fence
// containing nothing; build one with New.
type Fence struct {
	// unit direction from the earth center to each ring vertex, closed so
	// the first entry repeats at the end
	ring []calc.Vec3
	// unit inward-facing plane normal per ring edge
	normals []calc.Vec3
	valid   bool
}

// New builds a fence from a polygon ring. The ring may arrive open or with
// the first vertex repeated at the end; altitude is ignored since fences
// extend radially. Validity is computed once here.
func New(points []calc.Vec3, sys CoordSys) *Fence {
	f := &Fence{}
	for _, p := range points {
		if sys == CoordSysGeodetic {
			p = calc.GeodeticToECEF(calc.Vec3{X: p.X, Y: p.Y})
		}
		f.ring = append(f.ring, p.Normalized())
	}
	if n := len(f.ring); n > 1 && f.ring[0] != f.ring[n-1] {
		f.ring = append(f.ring, f.ring[0])
	}
	for i := 0; i+1 < len(f.ring); i++ {
		f.normals = append(f.normals, f.ring[i].Cross(f.ring[i+1]).Normalized())
	}
	f.valid = f.calculateValid()
	return f
}

// Valid reports whether the ring forms a usable fence: at least three
// distinct vertices, all on the convex side of every edge plane.
func (f *Fence) Valid() bool {
	return f.valid
}

func (f *Fence) calculateValid() bool {
	if len(f.ring) < 4 {
		return false
	}
	for _, v := range f.ring {
		if !f.inside(v) {
			return false
		}
	}
	return true
}

// Contains reports whether an ECEF position is inside the fence. Invalid
// fences contain nothing.
func (f *Fence) Contains(ecef calc.Vec3) bool {
	return f.valid && f.inside(ecef.Normalized())
}

// ContainsGeodetic reports whether a geodetic position (latitude and
// longitude radians) is inside the fence.
func (f *Fence) ContainsGeodetic(lla calc.Vec3) bool {
	return f.Contains(calc.GeodeticToECEF(calc.Vec3{X: lla.X, Y: lla.Y}))
}

// inside checks the unit direction d against every edge plane.
func (f *Fence) inside(d calc.Vec3) bool {
	for _, n := range f.normals {
		if n.Dot(d) < -containTolerance {
			return false
		}
	}
	return true
}
