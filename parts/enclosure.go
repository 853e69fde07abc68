package parts

import (
	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	enclosureWall  = 2.4
	enclosureDepth = 40.0
	enclosureSlack = 4.0
)

// Enclosure is the dust cover over the gear train: a shelled box open
// at the back where it meets the plate, with a round front window for
// the dial spindle.
func Enclosure() (sdf.SDF3, error) {
	size := r3.Vec{
		X: PlateLength + enclosureSlack,
		Y: PlateWidth + enclosureSlack,
		Z: enclosureDepth,
	}
	box := form3.Box(size, 2)
	shell := sdf.Shell3D(box, enclosureWall)

	// Open back face.
	var back sdf.SDF3 = form3.Box(r3.Vec{X: size.X, Y: size.Y, Z: 4 * enclosureWall}, 0)
	back = sdf.Transform3D(back, sdf.Translate3D(r3.Vec{Z: -size.Z / 2}))

	// Spindle window in the front face over the face-wheel station.
	var window sdf.SDF3 = form3.Cylinder(4*enclosureWall, faceBore, 0)
	window = sdf.Transform3D(window, sdf.Translate3D(r3.Vec{
		X: FaceStation.X - plateCenterX, Z: size.Z / 2,
	}))

	s := sdf.Difference3D(shell, sdf.Union3D(back, window))
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{X: plateCenterX, Z: size.Z / 2})), nil
}
