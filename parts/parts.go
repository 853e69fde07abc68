// Package parts builds the fixed mechanical parts of the clock. Each
// part is a pure function from measured hardware constants to one solid.
// All dimensions in millimeters.
package parts

import (
	"github.com/soypat/sdf/helpers/matter"
	"gonum.org/v1/gonum/spatial/r2"
)

// Material drives print-compensation of internal dimensions (bores,
// pockets, screw holes).
var Material = matter.PLA

// 608 skate bearing, the friction-reducing element of every axle.
const (
	BearingBore  = 8.0
	BearingOD    = 22.0
	BearingWidth = 7.0
)

// Axle stations along the gear train, measured from the motor shaft.
// Center distances are the sums of meshing pitch radii of the module
// 2.3 train (12t: r13.8, 24t: r27.6, 36t: r41.4).
var (
	MotorStation = r2.Vec{X: 0, Y: 0}
	StationA     = r2.Vec{X: 41.4, Y: 0}
	StationB     = r2.Vec{X: 82.8, Y: 0}
	FaceStation  = r2.Vec{X: 138.0, Y: 0}
)

// 28BYJ-48 geared motor fixture dimensions.
const (
	motorBodyD     = 28.0
	motorBodyDepth = 19.0
	motorEarSpan   = 35.0 // screw hole center distance
	motorEarHoleD  = 4.2
	motorShaftD    = 5.0
	motorShaftOfs  = 8.0 // shaft offset from body center
)
