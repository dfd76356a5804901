// seehuhn.de/go/outline - card outline geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package outline

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pattern selects where mounting holes are placed.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternTopCenter
	PatternTwoSide
	PatternFourCorner
	PatternFourRectCorner // four rectangular slots
	PatternLeftCenter
	PatternRightCenter
)

var patternNames = []string{
	PatternNone:           "none",
	PatternTopCenter:      "top-center",
	PatternTwoSide:        "two-side",
	PatternFourCorner:     "four-corner",
	PatternFourRectCorner: "four-rect-corner",
	PatternLeftCenter:     "left-center",
	PatternRightCenter:    "right-center",
}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// Patterns returns all hole patterns.
func Patterns() []Pattern {
	res := make([]Pattern, len(patternNames))
	for i := range res {
		res[i] = Pattern(i)
	}
	return res
}

// ParsePattern returns the pattern with the given name.
func ParsePattern(name string) (Pattern, error) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hole pattern %q", name)
}

// HoleSpec describes the mounting holes of a card.
type HoleSpec struct {
	DiameterMm    float64
	Pattern       Pattern
	StrokeWidthMm float64 // width of the cut line
}

// Hole is a mounting hole. Round holes have a diameter; rectangular
// slots have a width and height.
type Hole struct {
	Center     vec.Vec2
	DiameterMm float64

	Rect              bool
	WidthMm, HeightMm float64
}

// Calibration holds the constants used for hole placement. The default
// values are starting points and should be checked against the cutting
// process in use.
type Calibration struct {
	// MinClearanceMm is the minimum distance between a hole's edge and
	// the outline.
	MinClearanceMm float64

	// SideProportionFactor adds a fraction of the longest side to the
	// hole offset, so that holes move inwards on large cards.
	SideProportionFactor float64

	// CutLineCalibrationMm compensates for cutting tools measuring to
	// the rendered cut line instead of the geometric centre line.
	CutLineCalibrationMm float64

	// Range of round hole diameters.
	MinDiameterMm, MaxDiameterMm float64

	// Range of hole diameters for the lock archetype.
	LockMinDiameterMm, LockMaxDiameterMm float64

	// LockTopClearanceMm is the minimum distance between the lock hole
	// and the top of the arch.
	LockTopClearanceMm float64

	// Size of the rectangular slots of PatternFourRectCorner.
	SlotWidthMm, SlotHeightMm float64

	// Clearance between a slot and the outline, per axis.
	SlotClearanceXMm, SlotClearanceYMm float64
}

// DefaultCalibration returns the default hole placement constants.
func DefaultCalibration() Calibration {
	return Calibration{
		MinClearanceMm:       1.5,
		SideProportionFactor: 0.01,
		CutLineCalibrationMm: 0.1,
		MinDiameterMm:        1.5,
		MaxDiameterMm:        10,
		LockMinDiameterMm:    2,
		LockMaxDiameterMm:    6,
		LockTopClearanceMm:   2,
		SlotWidthMm:          5,
		SlotHeightMm:         2.5,
		SlotClearanceXMm:     2,
		SlotClearanceYMm:     2,
	}
}

// clampDiameter clamps d into [lo, hi].
func clampDiameter(d, lo, hi float64) float64 {
	c := min(max(d, lo), hi)
	if c != d {
		Logger().Debug("hole diameter clamped", "requested", d, "diameter", c)
	}
	return c
}

// HoleCenters places holes inside the bounding box b of an outline. The
// distance from the box edge to a round hole's centre is
//
//	MinClearanceMm + d/2 + longestSide·SideProportionFactor
//	  + StrokeWidthMm/2 + CutLineCalibrationMm
//
// clamped per axis so that no hole passes the centre of the box.
func HoleCenters(b rect.Rect, spec HoleSpec, cal Calibration) []Hole {
	if spec.Pattern == PatternNone {
		return nil
	}
	w, h := b.URx-b.LLx, b.URy-b.LLy
	cx, cy := (b.LLx+b.URx)/2, (b.LLy+b.URy)/2
	adjust := spec.StrokeWidthMm/2 + cal.CutLineCalibrationMm

	if spec.Pattern == PatternFourRectCorner {
		sw, sh := cal.SlotWidthMm, cal.SlotHeightMm
		offX := min(cal.SlotClearanceXMm+sw/2+adjust, w/2)
		offY := min(cal.SlotClearanceYMm+sh/2+adjust, h/2)
		slot := func(x, y float64) Hole {
			return Hole{Center: vec.Vec2{X: x, Y: y}, Rect: true, WidthMm: sw, HeightMm: sh}
		}
		return []Hole{
			slot(b.LLx+offX, b.LLy+offY),
			slot(b.URx-offX, b.LLy+offY),
			slot(b.URx-offX, b.URy-offY),
			slot(b.LLx+offX, b.URy-offY),
		}
	}

	d := clampDiameter(spec.DiameterMm, cal.MinDiameterMm, cal.MaxDiameterMm)
	off := cal.MinClearanceMm + d/2 + max(w, h)*cal.SideProportionFactor + adjust
	offX, offY := min(off, w/2), min(off, h/2)
	if offX < off || offY < off {
		Logger().Debug("hole offset clamped", "offset", off, "x", offX, "y", offY)
	}
	hole := func(x, y float64) Hole {
		return Hole{Center: vec.Vec2{X: x, Y: y}, DiameterMm: d}
	}

	switch spec.Pattern {
	case PatternTopCenter:
		return []Hole{hole(cx, b.LLy+offY)}
	case PatternTwoSide:
		return []Hole{hole(b.LLx+offX, cy), hole(b.URx-offX, cy)}
	case PatternFourCorner:
		return []Hole{
			hole(b.LLx+offX, b.LLy+offY),
			hole(b.URx-offX, b.LLy+offY),
			hole(b.URx-offX, b.URy-offY),
			hole(b.LLx+offX, b.URy-offY),
		}
	case PatternLeftCenter:
		return []Hole{hole(b.LLx+offX, cy)}
	case PatternRightCenter:
		return []Hole{hole(b.URx-offX, cy)}
	default:
		return nil
	}
}

// PlaceHoles places holes for an outline. Lock outlines get a single
// hole in the arch. For other outlines the holes are placed with
// HoleCenters on the outline's bounding box; holes which then come too
// close to a curved or cut-off edge are moved towards the centre of the
// box until MinClearanceMm is met.
func PlaceHoles(o *Outline, spec HoleSpec, cal Calibration) []Hole {
	if spec.Pattern == PatternNone {
		return nil
	}
	if o.Archetype == Lock && o.Arch != nil {
		return []Hole{lockHole(o.Arch, spec, cal)}
	}

	b := o.Bounds()
	holes := HoleCenters(b, spec, cal)
	poly := o.Flatten(clearanceTolerance)
	center := vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2}
	for i, h := range holes {
		minClear := cal.MinClearanceMm
		if h.Rect {
			minClear = min(cal.SlotClearanceXMm, cal.SlotClearanceYMm)
		}
		holes[i] = pullInside(poly, h, center, minClear)
	}
	return holes
}

// lockHole places the hole of the lock archetype, centred in the arch.
// The hole keeps LockTopClearanceMm from the top of the arch and does
// not extend into the body.
func lockHole(a *Arch, spec HoleSpec, cal Calibration) Hole {
	d := clampDiameter(spec.DiameterMm, cal.LockMinDiameterMm, cal.LockMaxDiameterMm)
	adjust := spec.StrokeWidthMm/2 + cal.CutLineCalibrationMm
	top := a.Center.Y - a.RY

	y := top + cal.LockTopClearanceMm + d/2 + adjust
	yMax := a.BodyTop - d/2 - adjust
	if y > yMax {
		Logger().Debug("lock hole capped", "y", y, "max", yMax)
		y = max(yMax, top+d/2)
	}
	return Hole{Center: vec.Vec2{X: a.Center.X, Y: y}, DiameterMm: d}
}

// pullInside moves h along the line towards center until its clearance
// from the polygon is at least minClear.
func pullInside(poly []vec.Vec2, h Hole, center vec.Vec2, minClear float64) Hole {
	at := func(p vec.Vec2) float64 {
		moved := h
		moved.Center = p
		return holeClearance(poly, moved)
	}
	if at(h.Center) >= minClear-clearanceEpsilon {
		return h
	}
	if at(center) < minClear {
		h.Center = center
		Logger().Debug("hole does not fit, centred", "x", center.X, "y", center.Y)
		return h
	}

	from := h.Center
	lo, hi := 0.0, 1.0 // lo fails, hi succeeds
	for range searchIterations {
		mid := (lo + hi) / 2
		if at(from.Add(center.Sub(from).Mul(mid))) >= minClear {
			hi = mid
		} else {
			lo = mid
		}
	}
	h.Center = from.Add(center.Sub(from).Mul(hi))
	Logger().Debug("hole moved inside", "from", from, "to", h.Center)
	return h
}

// Clearance returns the distance between the edge of h and the outline.
// The result is negative if a round hole crosses the outline or lies
// outside, and zero or negative if a slot touches or leaves the outline.
func Clearance(o *Outline, h Hole) float64 {
	return holeClearance(o.Flatten(clearanceTolerance), h)
}

func holeClearance(poly []vec.Vec2, h Hole) float64 {
	inside := containsPoint(poly, h.Center)
	if !h.Rect {
		d := distToPolygon(h.Center, poly)
		if !inside {
			d = -d
		}
		return d - h.DiameterMm/2
	}

	if !inside {
		return -distToPolygon(h.Center, poly)
	}
	lo := vec.Vec2{X: h.Center.X - h.WidthMm/2, Y: h.Center.Y - h.HeightMm/2}
	hi := vec.Vec2{X: h.Center.X + h.WidthMm/2, Y: h.Center.Y + h.HeightMm/2}
	corners := []vec.Vec2{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}}
	d := math.Inf(1)
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		for j := range corners {
			if segmentsIntersect(a, b, corners[j], corners[(j+1)%4]) {
				return 0
			}
			d = min(d, distToSegment(corners[j], a, b))
		}
		d = min(d, distToBox(a, lo, hi))
	}
	return d
}

// distToBox returns the distance from p to the axis-aligned box with
// corners lo and hi. Points inside the box have distance zero.
func distToBox(p, lo, hi vec.Vec2) float64 {
	dx := max(lo.X-p.X, 0, p.X-hi.X)
	dy := max(lo.Y-p.Y, 0, p.Y-hi.Y)
	return math.Hypot(dx, dy)
}

const (
	// clearanceTolerance is the flattening tolerance for clearance
	// checks, in millimetres.
	clearanceTolerance = 0.001

	// clearanceEpsilon absorbs flattening errors in clearance checks.
	clearanceEpsilon = 0.002
)
