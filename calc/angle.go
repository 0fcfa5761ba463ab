package calc

import "math"

// DegToRad converts degrees to radians when multiplied.
const DegToRad = math.Pi / 180.0

// RadToDeg converts radians to degrees when multiplied.
const RadToDeg = 180.0 / math.Pi

// AngFix2Pi normalizes an angle in radians into [0, 2*Pi).
func AngFix2Pi(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// AngFix360 normalizes an angle in degrees into [0, 360).
func AngFix360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
