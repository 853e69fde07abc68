package parts

import (
	"math"
	"testing"

	"gearclock/typeface"

	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

func solidAt(t *testing.T, s sdf.SDF3, p r3.Vec, what string) {
	t.Helper()
	if d := s.Evaluate(p); d >= 0 {
		t.Errorf("%s: expected solid at %v, got distance %g", what, p, d)
	}
}

func emptyAt(t *testing.T, s sdf.SDF3, p r3.Vec, what string) {
	t.Helper()
	if d := s.Evaluate(p); d < 0 {
		t.Errorf("%s: expected empty at %v, got distance %g", what, p, d)
	}
}

func TestBasePlate(t *testing.T) {
	plate, err := BasePlate()
	if err != nil {
		t.Fatal(err)
	}
	solidAt(t, plate, r3.Vec{X: plateCenterX, Y: 25}, "plate body")
	emptyAt(t, plate, r3.Vec{X: plateCenterX, Z: PlateThickness}, "above plate")

	// Bearing pocket at station A: open near the top face, solid web
	// below the pocket floor at the same radius.
	at := r3.Vec{X: StationA.X + 9, Z: 1}
	emptyAt(t, plate, at, "bearing pocket")
	at.Z = -2
	solidAt(t, plate, at, "pocket floor web")

	// Axle clearance goes all the way through.
	emptyAt(t, plate, r3.Vec{X: StationA.X, Z: -2}, "axle clearance")

	// Motor ear screw holes.
	emptyAt(t, plate, r3.Vec{X: MotorStation.X, Y: motorEarSpan / 2}, "motor ear hole")
	solidAt(t, plate, r3.Vec{X: MotorStation.X, Y: motorEarSpan/2 + 5}, "between ear holes")
}

func TestFrictionReducer(t *testing.T) {
	w, err := FrictionReducer()
	if err != nil {
		t.Fatal(err)
	}
	solidAt(t, w, r3.Vec{X: 6, Z: 0.75}, "washer base")
	solidAt(t, w, r3.Vec{X: 4.8, Z: 2}, "ridge")
	emptyAt(t, w, r3.Vec{X: 7, Z: 2}, "outside ridge")
	emptyAt(t, w, r3.Vec{Z: 1}, "bore")
}

func TestFace(t *testing.T) {
	face, err := Face(typeface.Default())
	if err != nil {
		t.Fatal(err)
	}
	solidAt(t, face, r3.Vec{X: 50}, "dial disk")
	emptyAt(t, face, r3.Vec{}, "spindle bore")

	// A tick sits on the +x axis; the gap between minute ticks does not.
	embossZ := FaceThickness/2 + faceEmbossH/2
	solidAt(t, face, r3.Vec{X: 94, Z: embossZ}, "tick emboss")
	gap := 3 * math.Pi / 180
	emptyAt(t, face, r3.Vec{X: 94 * math.Cos(gap), Y: 94 * math.Sin(gap), Z: embossZ}, "tick gap")

	bb := face.Bounds()
	if bb.Max.Z < FaceThickness/2+faceEmbossH-1e-6 {
		t.Errorf("emboss missing from bounds: max z %g", bb.Max.Z)
	}
}

func TestHand(t *testing.T) {
	hand, err := Hand()
	if err != nil {
		t.Fatal(err)
	}
	solidAt(t, hand, r3.Vec{X: 50, Y: 0.5}, "blade")
	emptyAt(t, hand, r3.Vec{X: 50, Y: 3}, "beside blade taper")
	solidAt(t, hand, r3.Vec{X: 6}, "hub")
	emptyAt(t, hand, r3.Vec{}, "hub bore")
	emptyAt(t, hand, r3.Vec{X: handLength + 1}, "past tip")
}

func TestMotorBlock(t *testing.T) {
	block, err := MotorBlock()
	if err != nil {
		t.Fatal(err)
	}
	emptyAt(t, block, r3.Vec{}, "shaft hole")
	emptyAt(t, block, r3.Vec{X: -motorShaftOfs, Z: 3}, "body pocket")
	solidAt(t, block, r3.Vec{X: -motorShaftOfs, Z: -4}, "pocket floor")
	emptyAt(t, block, r3.Vec{X: -motorShaftOfs, Y: motorEarSpan / 2}, "ear hole")
}

func TestBearing(t *testing.T) {
	b, err := Bearing()
	if err != nil {
		t.Fatal(err)
	}
	emptyAt(t, b, r3.Vec{}, "bore")
	solidAt(t, b, r3.Vec{X: BearingOD/2 - 1}, "outer race")
	solidAt(t, b, r3.Vec{X: BearingBore/2 + 1}, "inner race")
}

func TestEnclosure(t *testing.T) {
	e, err := Enclosure()
	if err != nil {
		t.Fatal(err)
	}
	solidAt(t, e, r3.Vec{X: plateCenterX, Z: enclosureDepth}, "front wall")
	emptyAt(t, e, r3.Vec{X: plateCenterX, Z: enclosureDepth / 2}, "interior")
	emptyAt(t, e, r3.Vec{X: FaceStation.X, Z: enclosureDepth}, "spindle window")
	emptyAt(t, e, r3.Vec{X: plateCenterX, Z: 0}, "open back")
}
