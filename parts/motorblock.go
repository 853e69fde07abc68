package parts

import (
	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	motorBlockW = 48.0
	motorBlockH = 44.0
	motorBlockT = 10.0

	motorPocketDepth = 8.0
)

// MotorBlock holds a 28BYJ-48 stepper behind the base plate. The round
// body drops into a pocket and the mounting ears screw through the same
// holes as the plate, so the block clamps the motor against it.
func MotorBlock() (sdf.SDF3, error) {
	block := form3.Box(r3.Vec{X: motorBlockW, Y: motorBlockH, Z: motorBlockT}, 1)

	// The shaft hole sits at the origin so the block lines up with the
	// motor station; the body, offset on the real motor, pockets at -x.
	var pocket sdf.SDF3 = form3.Cylinder(2*motorPocketDepth, Material.InternalDimScale(motorBodyD)/2, 0)
	pocket = sdf.Transform3D(pocket, sdf.Translate3D(r3.Vec{X: -motorShaftOfs, Z: motorBlockT / 2}))

	shaft := form3.Cylinder(2*motorBlockT, (motorShaftD+1)/2, 0)
	cuts := []sdf.SDF3{pocket, shaft}
	for _, side := range []float64{-1, 1} {
		var ear sdf.SDF3 = form3.Cylinder(2*motorBlockT, motorEarHoleD/2, 0)
		ear = sdf.Transform3D(ear, sdf.Translate3D(r3.Vec{X: -motorShaftOfs, Y: side * motorEarSpan / 2}))
		cuts = append(cuts, ear)
	}
	return sdf.Difference3D(block, sdf.Union3D(cuts...)), nil
}
