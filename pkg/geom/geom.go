// Package geom provides the small amount of plane geometry diagrams need:
// rectangles, points, and where a connector leaves a box.
//
// Coordinates are diagram units with y growing upward, so the "top" edge
// of a rectangle is Y+H.
package geom

import "math"

// Point is a position in diagram units.
type Point struct {
	X, Y float64
}

// Add returns p translated by dx, dy.
func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Polar returns the point at distance dist from p in direction angle (radians).
func (p Point) Polar(dist, angle float64) Point {
	return Point{p.X + dist*math.Cos(angle), p.Y + dist*math.Sin(angle)}
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre of r.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Top returns the y coordinate of the upper edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Grow returns r with its height increased to h, keeping the top edge fixed.
// Heights smaller than the current one are ignored.
func (r Rect) Grow(h float64) Rect {
	if h <= r.H {
		return r
	}
	return Rect{X: r.X, Y: r.Top() - h, W: r.W, H: h}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	x0, y0 := math.Min(r.X, s.X), math.Min(r.Y, s.Y)
	x1, y1 := math.Max(r.Right(), s.Right()), math.Max(r.Top(), s.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// EdgePoint returns the point where the segment from the centre of r to
// target crosses the boundary of r.
//
// The dominant axis is chosen by comparing dx and dy scaled by the half
// extents of r, so the result lies on the boundary for any aspect ratio;
// for a square box this is the plain |dx| > |dy| comparison. Ties resolve
// to the top or bottom edge. A zero-size box or a target at the centre
// yields the centre itself.
func EdgePoint(r Rect, target Point) Point {
	c := r.Center()
	if r.Empty() {
		return c
	}
	dx, dy := target.X-c.X, target.Y-c.Y
	if dx == 0 && dy == 0 {
		return c
	}
	hw, hh := r.W/2, r.H/2

	if math.Abs(dx)*hh > math.Abs(dy)*hw {
		x := r.X
		if dx > 0 {
			x = r.Right()
		}
		return Point{X: x, Y: c.Y + dy*hw/math.Abs(dx)}
	}
	y := r.Y
	if dy > 0 {
		y = r.Top()
	}
	return Point{X: c.X + dx*hh/math.Abs(dy), Y: y}
}

// Connect returns the endpoints of a straight connector between two boxes:
// the point where the centre-to-centre line leaves a and where it enters b.
func Connect(a, b Rect) (from, to Point) {
	return EdgePoint(a, b.Center()), EdgePoint(b, a.Center())
}

// OnBoundary reports whether p lies on the boundary of r within eps.
func OnBoundary(r Rect, p Point, eps float64) bool {
	inX := p.X >= r.X-eps && p.X <= r.Right()+eps
	inY := p.Y >= r.Y-eps && p.Y <= r.Top()+eps
	onV := math.Abs(p.X-r.X) <= eps || math.Abs(p.X-r.Right()) <= eps
	onH := math.Abs(p.Y-r.Y) <= eps || math.Abs(p.Y-r.Top()) <= eps
	return (onV && inY) || (onH && inX)
}
