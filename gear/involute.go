package gear

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Involute returns the point reached by unwinding a taut line off a base
// circle of radius rb through the rolling angle rho (radians). The point
// sits at radius rb/cos(rho) and polar angle tan(rho)-rho.
func Involute(rb, rho float64) r2.Vec {
	return polar(rb/math.Cos(rho), involAngle(rho))
}

// involAngle is the involute function inv(rho) = tan(rho) - rho.
func involAngle(rho float64) float64 {
	return math.Tan(rho) - rho
}

func polar(r, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: r * c, Y: r * s}
}

func d2r(degrees float64) float64 {
	return degrees * math.Pi / 180
}
