package parts

import (
	"fmt"
	"math"

	"gearclock/typeface"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	form3 "github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// FaceDiameter matches a standard filament spool so the dial can be
	// cut from a spool side as a no-print alternative.
	FaceDiameter  = 200.0
	FaceThickness = 3.0

	faceEmbossH = 1.2
	faceBore    = 8.0

	minorTickLen = 4.0
	minorTickW   = 1.2
	majorTickLen = 9.0
	majorTickW   = 2.5
	tickOuterR   = 96.0

	numeralHeight = 14.0
	numeralR      = 78.0
)

// Face is the clock dial: a disk with embossed hour numerals and
// minute/hour tick rings on its top surface. The numerals stay upright
// regardless of their angular position.
func Face(f *typeface.Font) (sdf.SDF3, error) {
	disk := form3.Cylinder(FaceThickness, FaceDiameter/2, 0)

	minor := tickRing(60, minorTickLen, minorTickW)
	major := tickRing(12, majorTickLen, majorTickW)
	marks := sdf.Union2D(minor, major)

	for n := 1; n <= 12; n++ {
		num, err := f.Text(fmt.Sprintf("%d", n), numeralHeight)
		if err != nil {
			return nil, fmt.Errorf("face numeral %d: %w", n, err)
		}
		// 12 at the top, clockwise. Translate only, no rotation, so
		// the glyphs read upright.
		theta := math.Pi/2 - float64(n)*(2*math.Pi/12)
		at := r2.Vec{X: numeralR * math.Cos(theta), Y: numeralR * math.Sin(theta)}
		marks = sdf.Union2D(marks, sdf.Transform2D(num, sdf.Translate2D(at)))
	}

	emboss := sdf.Extrude3D(marks, faceEmbossH)
	emboss = sdf.Transform3D(emboss, sdf.Translate3D(r3.Vec{Z: (FaceThickness + faceEmbossH) / 2}))

	s := sdf.Union3D(disk, emboss)
	bore := form3.Cylinder(2*(FaceThickness+faceEmbossH), Material.InternalDimScale(faceBore)/2, 0)
	return sdf.Difference3D(s, bore), nil
}

// tickRing places n radial marks evenly around the dial rim, mark
// centers at tickOuterR minus half their length.
func tickRing(n int, length, width float64) sdf.SDF2 {
	var tick sdf.SDF2 = form2.Box(r2.Vec{X: length, Y: width}, 0)
	tick = sdf.Transform2D(tick, sdf.Translate2D(r2.Vec{X: tickOuterR - length/2}))
	return sdf.RotateCopy2D(tick, n)
}
