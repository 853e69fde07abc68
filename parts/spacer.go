package parts

import (
	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	spacerOD     = 16.0
	spacerBore   = 8.3 // slip fit over the 8 mm axle
	spacerBaseH  = 1.5
	spacerRidgeH = 1.0
	spacerRidgeD = 11.0
)

// FrictionReducer is the axle washer that spaces a gear face off the
// plate (or off the next gear). The narrow raised ridge keeps the
// contact annulus small so the train turns freely. The base rests on
// z=0, ridge up.
func FrictionReducer() (sdf.SDF3, error) {
	var base sdf.SDF3 = form3.Cylinder(spacerBaseH, spacerOD/2, 0)
	base = sdf.Transform3D(base, sdf.Translate3D(r3.Vec{Z: spacerBaseH / 2}))
	var ridge sdf.SDF3 = form3.Cylinder(spacerRidgeH, spacerRidgeD/2, 0)
	ridge = sdf.Transform3D(ridge, sdf.Translate3D(r3.Vec{Z: spacerBaseH + spacerRidgeH/2}))
	s := sdf.Union3D(base, ridge)
	bore := form3.Cylinder(3*SpacerHeight, Material.InternalDimScale(spacerBore)/2, 0)
	return sdf.Difference3D(s, bore), nil
}

// SpacerHeight is the axial space one friction reducer occupies.
const SpacerHeight = spacerBaseH + spacerRidgeH
