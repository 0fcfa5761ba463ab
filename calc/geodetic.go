package calc

import "math"

// WGS-84 ellipsoid constants.
const (
	// semi-major axis, meters
	wgs84A = 6378137.0
	// first eccentricity squared
	wgs84E2 = 6.69437999014e-3
)

// GeodeticToECEF converts a geodetic position (latitude radians, longitude
// radians, altitude meters) to earth-centered earth-fixed meters on the
// WGS-84 ellipsoid.
func GeodeticToECEF(lla Vec3) Vec3 {
	sinLat := math.Sin(lla.X)
	cosLat := math.Cos(lla.X)
	sinLon := math.Sin(lla.Y)
	cosLon := math.Cos(lla.Y)

	// Radius of curvature in the prime vertical.
	n := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)

	return Vec3{
		X: (n + lla.Z) * cosLat * cosLon,
		Y: (n + lla.Z) * cosLat * sinLon,
		Z: (n*(1.0-wgs84E2) + lla.Z) * sinLat,
	}
}
