package typeface

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/spatial/r2"
)

func boxCenter(b r2.Box) r2.Vec {
	return r2.Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

func TestGlyphFill(t *testing.T) {
	f := Default()
	s, err := f.Glyph('I')
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	if s.Evaluate(boxCenter(bb)) >= 0 {
		t.Error("center of 'I' stem should be inside the glyph")
	}
	outside := r2.Vec{X: bb.Max.X + 1, Y: bb.Max.Y + 1}
	if s.Evaluate(outside) <= 0 {
		t.Error("point beyond the bounding box should be outside")
	}
}

// The counter of 'O' must be cut out: winding classification separates
// filled outlines from holes.
func TestGlyphCounter(t *testing.T) {
	f := Default()
	s, err := f.Glyph('O')
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	c := boxCenter(bb)
	if s.Evaluate(c) <= 0 {
		t.Error("center of 'O' should be inside the counter, not solid")
	}
	// The ring material sits between center and the outer edge.
	edge := r2.Vec{X: bb.Max.X, Y: c.Y}
	inRing := r2.Vec{X: c.X + 0.9*(edge.X-c.X), Y: c.Y}
	if s.Evaluate(inRing) >= 0 {
		t.Errorf("ring of 'O' missing at %v", inRing)
	}
}

func TestTextLineAdvance(t *testing.T) {
	f := Default()
	one, err := f.TextLine("1")
	if err != nil {
		t.Fatal(err)
	}
	twelve, err := f.TextLine("12")
	if err != nil {
		t.Fatal(err)
	}
	w1 := one.Bounds().Max.X - one.Bounds().Min.X
	w12 := twelve.Bounds().Max.X - twelve.Bounds().Min.X
	if w12 <= w1 {
		t.Errorf("two glyphs narrower than one: %g vs %g", w12, w1)
	}
	if f.Measure("888") <= f.Measure("8") {
		t.Error("advance width not accumulating")
	}
}

func TestTextHeightAndCentering(t *testing.T) {
	f := Default()
	const h = 10.0
	s, err := f.Text("12", h)
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	got := bb.Max.Y - bb.Min.Y
	if math.Abs(got-h) > 1e-9 {
		t.Errorf("text height got %g want %g", got, h)
	}
	c := boxCenter(bb)
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("text not centered, bbox center %v", c)
	}
}

func TestFacetsParameter(t *testing.T) {
	coarse, err := New(goregular.TTF, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := coarse.Glyph('8'); err != nil {
		t.Fatal(err)
	}
	if _, err := New(goregular.TTF, -1); err == nil {
		t.Error("negative facet count accepted")
	}
}

func TestWhitespaceOnly(t *testing.T) {
	f := Default()
	if _, err := f.TextLine("   "); err == nil {
		t.Error("whitespace-only text should error")
	}
}
