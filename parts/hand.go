package parts

import (
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	HandThickness = 3.0
	handLength    = 95.0
	handTail      = 15.0
	handRootW     = 6.0
	handHubD      = 16.0
	handBore      = 8.0
)

// Hand is the single pointer. It presses onto the face-wheel axle and
// tapers from its counterweight tail to the tip just short of the
// numeral ring.
func Hand() (sdf.SDF3, error) {
	blade := form2.Polygon([]r2.Vec{
		{X: -handTail, Y: -handRootW / 2},
		{X: handLength, Y: 0},
		{X: -handTail, Y: handRootW / 2},
	})
	hub := form2.Circle(handHubD / 2)
	s := sdf.Extrude3D(sdf.Union2D(blade, hub), HandThickness)
	// Press fit: no InternalDimScale relief on the hub bore.
	bore := form3.Cylinder(2*HandThickness, handBore/2, 0)
	return sdf.Difference3D(s, bore), nil
}
