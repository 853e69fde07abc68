// Package gear generates involute spur and helical gear solids.
//
// The tooth flank is the involute of the base circle, which gives mating
// gears a constant angular velocity ratio. Dimensions follow the metric
// module system: pitch diameter = module * tooth count.
package gear

import (
	"fmt"
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	form3 "github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/helpers/matter"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// backlash is the fraction of the tooth's angular thickness given up
	// to running clearance between mating flanks.
	backlash = 0.05
	// defaultPressureAngle in degrees, the common gear-catalog value.
	defaultPressureAngle = 20.0
	// defaultFacets is the number of involute samples per tooth flank.
	defaultFacets = 16
)

// SpurParms defines an involute spur (or helical) gear.
// Angles are in degrees.
type SpurParms struct {
	Module float64 // tooth size: pitch diameter / tooth count [mm]
	Teeth  int     // number of teeth
	Width  float64 // face width [mm]
	Bore   float64 // central bore diameter, 0 for none [mm]
	// PressureAngle is the angle between tooth face and pitch-circle
	// tangent at the contact point. Zero selects 20 degrees.
	PressureAngle float64
	// HelixAngle is the tooth twist relative to the gear axis.
	// Zero gives a plain spur gear.
	HelixAngle float64
	// Lightening cuts a ring of material-saving holes through the gear
	// web when the geometry is large enough to permit it.
	Lightening bool
	// Facets is the involute sample count per flank. Zero selects 16.
	Facets int
}

// Dimensions are the derived gear circles and angles.
type Dimensions struct {
	PitchD float64 // pitch diameter
	BaseD  float64 // base circle diameter, involute origin
	TipD   float64 // outside diameter
	RootD  float64 // root circle diameter
	// TransverseAngle is the pressure angle in the plane of rotation
	// (radians). Equal to the nominal pressure angle for spur gears.
	TransverseAngle float64
	// MaxRolling is the involute rolling angle at the tip circle (radians).
	MaxRolling float64
	// AngularPitch is the angle spanned by one tooth period (radians).
	AngularPitch float64
}

func (p SpurParms) pressureAngle() float64 {
	if p.PressureAngle == 0 {
		return defaultPressureAngle
	}
	return p.PressureAngle
}

func (p SpurParms) facets() int {
	if p.Facets == 0 {
		return defaultFacets
	}
	return p.Facets
}

func (p SpurParms) validate() error {
	switch {
	case p.Module <= 0:
		return fmt.Errorf("gear: module must be positive, got %g", p.Module)
	case p.Teeth < 1:
		return fmt.Errorf("gear: tooth count must be at least 1, got %d", p.Teeth)
	case p.Width <= 0:
		return fmt.Errorf("gear: face width must be positive, got %g", p.Width)
	case p.Bore < 0:
		return fmt.Errorf("gear: bore must be non-negative, got %g", p.Bore)
	case p.pressureAngle() <= 0 || p.pressureAngle() > 45:
		return fmt.Errorf("gear: pressure angle must be in (0°,45°], got %g", p.pressureAngle())
	case p.Facets < 0:
		return fmt.Errorf("gear: facets must be non-negative, got %d", p.Facets)
	case math.Abs(p.HelixAngle) >= 90:
		return fmt.Errorf("gear: helix angle must be in (-90°,90°), got %g", p.HelixAngle)
	}
	rootD := p.rootD()
	if rootD <= 0 {
		return fmt.Errorf("gear: root diameter %.3g not positive, tooth count %d too small for module %g",
			rootD, p.Teeth, p.Module)
	}
	if p.Bore >= rootD {
		return fmt.Errorf("gear: bore %g must be smaller than root diameter %.4g", p.Bore, rootD)
	}
	return nil
}

// tipClearance is the radial gap left between this gear's root and the
// mating gear's tip. Disabled below 3 teeth: undercut-prone pinions need
// every bit of root material. In practice validate already rejects z < 3
// (m(z-2) leaves no root circle), so the branch documents the formula
// rather than a reachable output.
func (p SpurParms) tipClearance() float64 {
	if p.Teeth < 3 {
		return 0
	}
	return p.Module / 6
}

func (p SpurParms) rootD() float64 {
	return p.Module*float64(p.Teeth) - 2*(p.Module+p.tipClearance())
}

// Dimensions computes the derived gear circles and angles.
func (p SpurParms) Dimensions() (Dimensions, error) {
	if err := p.validate(); err != nil {
		return Dimensions{}, err
	}
	d := p.Module * float64(p.Teeth)
	// Transverse pressure angle: the helix projects the normal pressure
	// angle into the plane of rotation.
	alphaT := math.Atan(math.Tan(d2r(p.pressureAngle())) / math.Cos(d2r(p.HelixAngle)))
	db := d * math.Cos(alphaT)
	da := d + 2*p.Module
	if p.Module < 1 {
		da = d + 2.2*p.Module
	}
	return Dimensions{
		PitchD:          d,
		BaseD:           db,
		TipD:            da,
		RootD:           p.rootD(),
		TransverseAngle: alphaT,
		MaxRolling:      math.Acos(db / da),
		AngularPitch:    2 * math.Pi / float64(p.Teeth),
	}, nil
}

// Profile returns the 2D gear section: the involute tooth replicated
// Teeth times around a root-circle disk. The bore and lightening holes
// are not part of the section, they are cut from the extruded solid so
// they stay straight on helical gears.
func Profile(p SpurParms) (sdf.SDF2, error) {
	dims, err := p.Dimensions()
	if err != nil {
		return nil, err
	}
	tooth := form2.Polygon(toothPolygon(p, dims))
	teeth := sdf.RotateCopy2D(tooth, p.Teeth)
	return sdf.Union2D(teeth, form2.Circle(dims.RootD/2)), nil
}

// toothPolygon samples one tooth: both involute flanks, closed at the
// gear center so the wedge unions cleanly with the root disk.
func toothPolygon(p SpurParms, dims Dimensions) []r2.Vec {
	facets := p.facets()
	rb := dims.BaseD / 2
	// Rolling angle at the pitch circle equals the transverse pressure
	// angle; its involute angle locates the flank at the pitch point.
	pitchInvol := involAngle(dims.TransverseAngle)
	// The second flank mirrors about the tooth centerline. The half
	// tooth thickness at the pitch circle is a quarter of the angular
	// pitch, shrunk by the backlash allowance.
	mirror := pitchInvol + (1-backlash)*dims.AngularPitch/4

	vertex := make([]r2.Vec, 0, 2*(facets+1)+1)
	vertex = append(vertex, r2.Vec{})
	for i := 0; i <= facets; i++ {
		rho := dims.MaxRolling * float64(i) / float64(facets)
		vertex = append(vertex, Involute(rb, rho))
	}
	for i := facets; i >= 0; i-- {
		rho := dims.MaxRolling * float64(i) / float64(facets)
		vertex = append(vertex, polar(rb/math.Cos(rho), 2*mirror-involAngle(rho)))
	}
	return vertex
}

// Spur returns the gear solid: the profile extruded to the face width,
// twisted for helical teeth, with the bore and any lightening holes cut.
func Spur(p SpurParms) (sdf.SDF3, error) {
	profile, err := Profile(p)
	if err != nil {
		return nil, err
	}
	dims, _ := p.Dimensions()
	var s sdf.SDF3
	if p.HelixAngle != 0 {
		// One face rotates relative to the other by the helix lead
		// over the face width: width*tan(helix) of arc at the pitch
		// radius.
		twist := p.Width * math.Tan(d2r(p.HelixAngle)) / (dims.PitchD / 2)
		s = sdf.TwistExtrude3D(profile, p.Width, twist)
	} else {
		s = sdf.Extrude3D(profile, p.Width)
	}
	if p.Bore > 0 {
		// Printed bores come out undersized; compensate like every
		// other internal dimension in the clock.
		boreD := matter.PLA.InternalDimScale(p.Bore)
		s = sdf.Difference3D(s, form3.Cylinder(2*p.Width, boreD/2, 0))
	}
	if holeR, centers := lighteningHoles(p, dims); len(centers) > 0 {
		hole := form3.Cylinder(2*p.Width, holeR, 0)
		s = sdf.Difference3D(s, sdf.Multi3D(hole, centers))
	}
	return s, nil
}

// lighteningHoles places the weight-reduction hole ring. When the gear is
// too small for the cuts the gear is produced solid rather than failing:
// thresholds below are empirically tuned, keep as literals.
func lighteningHoles(p SpurParms, dims Dimensions) (holeR float64, centers []r3.Vec) {
	if !p.Lightening {
		return 0, nil
	}
	if dims.PitchD/2 < 1.5*p.Width || dims.PitchD <= 2*p.Bore {
		return 0, nil
	}
	rootR := dims.RootD / 2
	boreR := p.Bore / 2
	holeR = (rootR - boreR) / 4
	ringR := (rootR + boreR) / 2
	n := int(math.Floor(2 * math.Pi * ringR / (3 * holeR)))
	if n < 1 || holeR <= 0 {
		return 0, nil
	}
	centers = make([]r3.Vec, n)
	for i := range centers {
		c := polar(ringR, 2*math.Pi*float64(i)/float64(n))
		centers[i] = r3.Vec{X: c.X, Y: c.Y}
	}
	return holeR, centers
}
