// Package typeface renders TrueType text as 2D signed distance fields
// for embossing onto solids.
package typeface

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/golang/freetype/truetype"
	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// defaultFacets is the number of line segments each quadratic bézier
// glyph curve is flattened into.
const defaultFacets = 8

// Font parses a TrueType font and generates glyph and text SDFs.
// Glyph coordinates are normalized so one em spans one unit.
type Font struct {
	ttf    truetype.Font
	gb     truetype.GlyphBuf
	glyphs map[rune]sdf.SDF2
	facets int
}

// New returns a Font from a TTF file blob. facets is the explicit curve
// tessellation parameter: line segments per glyph bézier, 0 for the default.
func New(ttf []byte, facets int) (*Font, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	if facets < 0 {
		return nil, fmt.Errorf("typeface: negative facet count %d", facets)
	}
	if facets == 0 {
		facets = defaultFacets
	}
	return &Font{
		ttf:    *parsed,
		glyphs: make(map[rune]sdf.SDF2),
		facets: facets,
	}, nil
}

// Default returns the Go Regular face.
func Default() *Font {
	f, err := New(goregular.TTF, 0)
	if err != nil {
		panic("typeface: embedded goregular font failed to parse: " + err.Error())
	}
	return f
}

func (f *Font) scale() fixed.Int26_6 {
	return fixed.Int26_6(f.ttf.FUnitsPerEm())
}

// scaleout converts raw font units to em-normalized coordinates.
func (f *Font) scaleout() float64 {
	return 1 / float64(f.ttf.FUnitsPerEm())
}

// Glyph returns the SDF for a single character.
func (f *Font) Glyph(c rune) (sdf.SDF2, error) {
	if s, ok := f.glyphs[c]; ok {
		return s, nil
	}
	s, err := f.makeGlyph(c)
	if err != nil {
		return nil, fmt.Errorf("typeface: glyph %q: %w", c, err)
	}
	f.glyphs[c] = s
	return s, nil
}

// TextLine lays out a single line of text starting at x=0, advancing in
// +x with kerning and per-glyph advance widths.
func (f *Font) TextLine(s string) (sdf.SDF2, error) {
	var shapes []sdf.SDF2
	scale := f.scale()
	scaleout := f.scaleout()
	var xOfs int64
	var idxPrev truetype.Index
	for ic, c := range s {
		if !unicode.IsGraphic(c) {
			return nil, fmt.Errorf("typeface: char %q not graphic", c)
		}
		idx := f.ttf.Index(c)
		hm := f.ttf.HMetric(scale, idx)
		if unicode.IsSpace(c) {
			xOfs += int64(hm.AdvanceWidth)
			continue
		}
		glyph, err := f.Glyph(c)
		if err != nil {
			return nil, err
		}
		xOfs += int64(f.ttf.Kern(scale, idxPrev, idx))
		idxPrev = idx
		if ic == 0 {
			xOfs += int64(hm.LeftSideBearing)
		}
		glyph = sdf.Transform2D(glyph, sdf.Translate2D(r2.Vec{X: float64(xOfs) * scaleout}))
		shapes = append(shapes, glyph)
		xOfs += int64(hm.AdvanceWidth)
	}
	switch len(shapes) {
	case 0:
		return nil, errors.New("typeface: no visible glyphs in text")
	case 1:
		return shapes[0], nil
	}
	return sdf.Union2D(shapes...), nil
}

// Text returns s centered on the origin and scaled so its bounding box is
// height units tall.
func (f *Font) Text(s string, height float64) (sdf.SDF2, error) {
	line, err := f.TextLine(s)
	if err != nil {
		return nil, err
	}
	size := line.Bounds().Max.Y - line.Bounds().Min.Y
	if size <= 0 {
		return nil, fmt.Errorf("typeface: degenerate bounds for %q", s)
	}
	return sdf.CenterAndScale2D(line, height/size), nil
}

// makeGlyph builds one glyph from its TrueType contours. The outermost
// contour winding selects filled shapes, the opposite winding cuts
// counters (letter holes).
func (f *Font) makeGlyph(c rune) (sdf.SDF2, error) {
	g := &f.gb
	err := g.Load(&f.ttf, f.scale(), f.ttf.Index(c), font.HintingNone)
	if err != nil {
		return nil, err
	}
	if len(g.Ends) == 0 {
		return nil, errors.New("glyph has no contours")
	}
	scaleout := f.scaleout()
	var shape sdf.SDF2
	start := 0
	for _, end := range g.Ends {
		poly, fill := contourPolygon(g.Points[start:end], scaleout, f.facets)
		start = end
		if len(poly) < 3 {
			continue
		}
		contour := form2.Polygon(poly)
		switch {
		case shape == nil:
			shape = contour
		case fill:
			shape = sdf.Union2D(shape, contour)
		default:
			shape = sdf.Difference2D(shape, contour)
		}
	}
	if shape == nil {
		return nil, errors.New("glyph contours all degenerate")
	}
	return shape, nil
}

// contourPolygon flattens one quadratic-bézier contour into a polygon,
// sampling each curve with facets segments. The boolean reports whether
// the contour is wound as filled outline (clockwise in the font's y-up
// frame) rather than as a counter.
func contourPolygon(points []truetype.Point, scale float64, facets int) ([]r2.Vec, bool) {
	n := len(points)
	if n < 2 {
		return nil, false
	}
	onCurve := func(i int) bool { return points[i].Flags&1 != 0 }
	at := func(i int) r2.Vec {
		return r2.Vec{X: float64(points[i].X) * scale, Y: float64(points[i].Y) * scale}
	}
	mid := func(a, b r2.Vec) r2.Vec {
		return r2.Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}

	var poly []r2.Vec
	quad := func(p0, ctrl, p1 r2.Vec) {
		for k := 1; k <= facets; k++ {
			t := float64(k) / float64(facets)
			u := 1 - t
			poly = append(poly, r2.Vec{
				X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X,
				Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y,
			})
		}
	}

	first := -1
	for i := 0; i < n; i++ {
		if onCurve(i) {
			first = i
			break
		}
	}
	if first < 0 {
		// Every point is a control: the implied on-curve midpoints
		// between consecutive controls carry the contour.
		cur := mid(at(n-1), at(0))
		poly = append(poly, cur)
		for i := 0; i < n; i++ {
			end := mid(at(i), at((i+1)%n))
			quad(cur, at(i), end)
			cur = end
		}
	} else {
		cur := at(first)
		poly = append(poly, cur)
		i := 1
		for i <= n {
			j := (first + i) % n
			if onCurve(j) {
				poly = append(poly, at(j))
				cur = at(j)
				i++
				continue
			}
			// Off-curve control: the segment ends at the next
			// on-curve point, or at the implied midpoint when two
			// controls run back to back.
			k := (first + i + 1) % n
			end := at(k)
			if onCurve(k) {
				i += 2 // the endpoint is consumed by this curve
			} else {
				end = mid(at(j), end)
				i++
			}
			quad(cur, at(j), end)
			cur = end
		}
	}

	// The walk ends back on the start point; drop it, the polygon
	// closes implicitly and a zero-length edge breaks it.
	if len(poly) > 1 && poly[len(poly)-1] == poly[0] {
		poly = poly[:len(poly)-1]
	}

	// Shoelace sum: negative area means clockwise in the y-up frame,
	// which TrueType uses for filled outlines.
	area := 0.0
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	return poly, area < 0
}

// Measure returns the em-normalized advance width of a text line.
func (f *Font) Measure(s string) float64 {
	scale := f.scale()
	var w int64
	var prev truetype.Index
	for _, c := range s {
		idx := f.ttf.Index(c)
		w += int64(f.ttf.Kern(scale, prev, idx))
		w += int64(f.ttf.HMetric(scale, idx).AdvanceWidth)
		prev = idx
	}
	return float64(w) * f.scaleout()
}
