package scene

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"

	"gearclock/parts"
)

const (
	printGap      = 8.0
	printRowWidth = 260.0
)

// PrintLayout lays every printable part flat on the z=0 build plane,
// packed into shelf rows with clearance between parts. Orientation is
// print-ready as built: gears and plate flat, dial emboss up.
func PrintLayout(opts Options) (sdf.SDF3, error) {
	train, err := Train()
	if err != nil {
		return nil, err
	}
	plate, err := parts.BasePlate()
	if err != nil {
		return nil, err
	}
	dial, err := parts.Face(opts.font())
	if err != nil {
		return nil, err
	}
	washer, err := parts.FrictionReducer()
	if err != nil {
		return nil, err
	}
	block, err := parts.MotorBlock()
	if err != nil {
		return nil, err
	}

	ps := []sdf.SDF3{plate, dial, block}
	for _, pl := range train {
		ps = append(ps, pl.Solid)
	}
	for i := 0; i < 3; i++ {
		ps = append(ps, washer)
	}
	if opts.Accessories {
		hand, err := parts.Hand()
		if err != nil {
			return nil, err
		}
		box, err := parts.Enclosure()
		if err != nil {
			return nil, err
		}
		ps = append(ps, hand, box)
	}
	return pack(ps), nil
}

// pack shelf-packs solids left to right, wrapping to a new row when the
// current one exceeds printRowWidth. Pure translation only.
func pack(ps []sdf.SDF3) sdf.SDF3 {
	var placed []sdf.SDF3
	var x, y, rowDepth float64
	for _, s := range ps {
		bb := s.Bounds()
		size := r3.Sub(bb.Max, bb.Min)
		if x > 0 && x+size.X > printRowWidth {
			x = 0
			y += rowDepth + printGap
			rowDepth = 0
		}
		// Shift part minimum corner to the cursor, bottom on z=0.
		ofs := r3.Sub(r3.Vec{X: x, Y: y}, bb.Min)
		placed = append(placed, sdf.Transform3D(s, sdf.Translate3D(ofs)))
		x += size.X + printGap
		if size.Y > rowDepth {
			rowDepth = size.Y
		}
	}
	return sdf.Union3D(placed...)
}
