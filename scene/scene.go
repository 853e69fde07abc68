// Package scene composes the clock parts into renderable output: the
// assembled mechanism at a given drive step, a flat print layout and a
// looping animation of the train.
package scene

import (
	"fmt"
	"math"

	"gearclock/gear"
	"gearclock/parts"
	"gearclock/typeface"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Train geometry. Module 2.3 throughout so every mesh shares the same
// tooth pitch; center distances follow from the tooth counts.
const (
	trainModule = 2.3
	gearWidth   = 4.0
	axleBore    = 8.0
)

// Rotation ratios in degrees of gear turn per unit drive step. Each
// meshing pair satisfies z_i*ratio_i + z_j*ratio_j = 0, so one step of
// the face wheel is half a degree and the motor pinion turns six.
const (
	pinionRatio = -6.0
	wheelARatio = 3.0
	wheelBRatio = -1.5
	faceRatio   = 0.5
)

// Axial stack above the plate top face. Meshing tiers must be
// coplanar: the pinion and each compound wheel's large gear share a
// tier with the previous wheel's small gear.
const (
	plateTop = parts.PlateThickness / 2
	tier1Z   = plateTop + parts.SpacerHeight + gearWidth/2
	tier2Z   = tier1Z + gearWidth
	tier3Z   = tier2Z + gearWidth

	// FaceZ is the dial midplane above the plate, exported for the
	// animation server which places the dial mesh itself.
	FaceZ = tier3Z + gearWidth/2 + 1 + parts.FaceThickness/2
	handZ = FaceZ + parts.FaceThickness/2 + 1 + parts.HandThickness/2
)

// Options configures scene composition.
type Options struct {
	// Accessories adds the hand and the enclosure to the assembled
	// view and the print layout.
	Accessories bool
	// Font renders the face numerals; nil selects the bundled face.
	Font *typeface.Font
}

func (o Options) font() *typeface.Font {
	if o.Font != nil {
		return o.Font
	}
	return typeface.Default()
}

// Placement is one rotating member of the train: its solid in its own
// frame, the axle position, and how it turns with the drive step.
type Placement struct {
	Name  string
	Solid sdf.SDF3
	Pos   r3.Vec
	// Ratio is degrees of rotation per unit drive step.
	Ratio float64
	// Phase is a fixed angular offset so teeth interleave at step 0.
	Phase float64
}

// angle returns the placement's rotation in degrees at the given step.
func (pl Placement) angle(step float64) float64 {
	return pl.Ratio*step + pl.Phase
}

func spur(teeth int, lighten bool) (sdf.SDF3, error) {
	return gear.Spur(gear.SpurParms{
		Module:     trainModule,
		Teeth:      teeth,
		Width:      gearWidth,
		Bore:       axleBore,
		Lightening: lighten,
	})
}

// compound stacks a small gear on top of a large one sharing the bore.
// The large gear is centered on z=0, the small one directly above.
func compound(large, small int) (sdf.SDF3, error) {
	lo, err := spur(large, true)
	if err != nil {
		return nil, err
	}
	hi, err := spur(small, false)
	if err != nil {
		return nil, err
	}
	hi = sdf.Transform3D(hi, sdf.Translate3D(r3.Vec{Z: gearWidth}))
	return sdf.Union3D(lo, hi), nil
}

// Train builds the four rotating gear members at their axle stations.
func Train() ([]Placement, error) {
	pinion, err := spur(12, false)
	if err != nil {
		return nil, fmt.Errorf("motor pinion: %w", err)
	}
	wheelA, err := compound(24, 12)
	if err != nil {
		return nil, fmt.Errorf("wheel A: %w", err)
	}
	wheelB, err := compound(24, 12)
	if err != nil {
		return nil, fmt.Errorf("wheel B: %w", err)
	}
	face, err := spur(36, true)
	if err != nil {
		return nil, fmt.Errorf("face wheel: %w", err)
	}
	return []Placement{
		{Name: "pinion", Solid: pinion, Pos: at(parts.MotorStation.X, tier1Z), Ratio: pinionRatio},
		{Name: "wheelA", Solid: wheelA, Pos: at(parts.StationA.X, tier1Z), Ratio: wheelARatio, Phase: 360.0 / 48},
		{Name: "wheelB", Solid: wheelB, Pos: at(parts.StationB.X, tier2Z), Ratio: wheelBRatio},
		{Name: "faceWheel", Solid: face, Pos: at(parts.FaceStation.X, tier3Z), Ratio: faceRatio, Phase: 360.0 / 72},
	}, nil
}

func at(x, z float64) r3.Vec { return r3.Vec{X: x, Z: z} }

// place rotates a placement's solid about its axle by its angle at the
// given step, then moves it to its station.
func place(pl Placement, step float64) sdf.SDF3 {
	m := sdf.Translate3D(pl.Pos).Mul(sdf.RotateZ(pl.angle(step) * math.Pi / 180))
	return sdf.Transform3D(pl.Solid, m)
}

// Assembled composes the full mechanism at the given drive step: plate,
// bearings, spacers, the rotated train, and the dial keyed to the face
// wheel. Accessories add the hand and the enclosure.
func Assembled(step float64, opts Options) (sdf.SDF3, error) {
	train, err := Train()
	if err != nil {
		return nil, err
	}
	plate, err := parts.BasePlate()
	if err != nil {
		return nil, err
	}
	solids := []sdf.SDF3{plate}
	for _, pl := range train {
		solids = append(solids, place(pl, step))
	}

	bearing, err := parts.Bearing()
	if err != nil {
		return nil, err
	}
	washer, err := parts.FrictionReducer()
	if err != nil {
		return nil, err
	}
	bearingZ := parts.PlateThickness/2 - parts.BearingWidth/2 + 1
	washerZ := plateTop
	for _, st := range []float64{parts.StationA.X, parts.StationB.X, parts.FaceStation.X} {
		solids = append(solids,
			sdf.Transform3D(bearing, sdf.Translate3D(at(st, bearingZ))),
			sdf.Transform3D(washer, sdf.Translate3D(at(st, washerZ))))
	}

	dial, err := parts.Face(opts.font())
	if err != nil {
		return nil, err
	}
	// The dial turns with the face wheel.
	faceWheel := train[len(train)-1]
	dialRot := sdf.RotateZ(faceWheel.angle(step) * math.Pi / 180)
	solids = append(solids, sdf.Transform3D(dial,
		sdf.Translate3D(at(parts.FaceStation.X, FaceZ)).Mul(dialRot)))

	if opts.Accessories {
		hand, err := parts.Hand()
		if err != nil {
			return nil, err
		}
		solids = append(solids, sdf.Transform3D(hand,
			sdf.Translate3D(at(parts.FaceStation.X, handZ))))
		box, err := parts.Enclosure()
		if err != nil {
			return nil, err
		}
		solids = append(solids, box)
	}
	return sdf.Union3D(solids...), nil
}

// Animate maps t in [0,1] to a drive step sweeping one full face-wheel
// revolution, so the loop closes on itself.
func Animate(t float64, opts Options) (sdf.SDF3, error) {
	return Assembled(720*t, opts)
}
