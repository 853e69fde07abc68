package parts

import (
	"github.com/soypat/sdf"
	form3 "github.com/soypat/sdf/form3/must3"
)

// Bearing models a 608 skate bearing for the assembled view: outer
// race, inner race and a cage band between them. Not a printed part.
func Bearing() (sdf.SDF3, error) {
	const raceWall = 3.5
	outer := sdf.Difference3D(
		form3.Cylinder(BearingWidth, BearingOD/2, 0.5),
		form3.Cylinder(2*BearingWidth, BearingOD/2-raceWall, 0),
	)
	inner := sdf.Difference3D(
		form3.Cylinder(BearingWidth, BearingBore/2+raceWall/2, 0.5),
		form3.Cylinder(2*BearingWidth, BearingBore/2, 0),
	)
	cage := sdf.Difference3D(
		form3.Cylinder(BearingWidth-2, BearingOD/2-raceWall, 0),
		form3.Cylinder(2*BearingWidth, BearingBore/2+raceWall/2, 0),
	)
	return sdf.Union3D(outer, inner, cage), nil
}
