package parts

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/obj2"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	PlateLength    = 200.0
	PlateWidth     = 80.0
	PlateThickness = 6.0
	// plateCenterX centers the plate on the axle span.
	plateCenterX = 69.0

	plateCornerR    = 5.0
	plateScrewD     = 4.0
	plateHoleMargin = 6.0

	bearingPocketDepth = 4.0
	axleClearanceD     = 12.0
)

// BasePlate is the mounting panel: wall-screw holes in the corners,
// press-fit 608 bearing pockets at the gear axle stations and the motor
// shaft opening with its ear screw holes. The plate is centered on the
// origin in z, with the gear train growing in +z off its top face.
func BasePlate() (sdf.SDF3, error) {
	panel, err := obj2.Panel(obj2.PanelParams{
		Size:         r2.Vec{X: PlateLength, Y: PlateWidth},
		CornerRadius: plateCornerR,
		HoleDiameter: Material.InternalDimScale(plateScrewD),
		HoleMargin:   [4]float64{plateHoleMargin, plateHoleMargin, plateHoleMargin, plateHoleMargin},
		HolePattern:  [4]string{"x", "x", "x", "x"},
	})
	if err != nil {
		return nil, err
	}
	plate := sdf.Extrude3D(panel, PlateThickness)
	plate = sdf.Transform3D(plate, sdf.Translate3D(r3.Vec{X: plateCenterX}))

	pocketD := Material.InternalDimScale(BearingOD)
	pocket := form3.Cylinder(bearingPocketDepth, pocketD/2, 0)
	clearance := form3.Cylinder(2*PlateThickness, axleClearanceD/2, 0)
	var cuts []sdf.SDF3
	for _, st := range []r2.Vec{StationA, StationB, FaceStation} {
		at := r3.Vec{X: st.X, Y: st.Y, Z: PlateThickness/2 - bearingPocketDepth/2}
		cuts = append(cuts, sdf.Transform3D(pocket, sdf.Translate3D(at)))
		cuts = append(cuts, sdf.Transform3D(clearance, sdf.Translate3D(r3.Vec{X: st.X, Y: st.Y})))
	}

	// Motor hangs behind the plate, shaft through.
	shaft := form3.Cylinder(2*PlateThickness, Material.InternalDimScale(motorShaftD+2)/2, 0)
	cuts = append(cuts, sdf.Transform3D(shaft, sdf.Translate3D(r3.Vec{X: MotorStation.X, Y: MotorStation.Y})))
	ear := form3.Cylinder(2*PlateThickness, Material.InternalDimScale(motorEarHoleD)/2, 0)
	for _, dy := range []float64{-motorEarSpan / 2, motorEarSpan / 2} {
		at := r3.Vec{X: MotorStation.X, Y: MotorStation.Y + dy}
		cuts = append(cuts, sdf.Transform3D(ear, sdf.Translate3D(at)))
	}

	return sdf.Difference3D(plate, sdf.Union3D(cuts...)), nil
}
