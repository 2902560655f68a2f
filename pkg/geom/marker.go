package geom

import "math"

// Angle returns the direction from a to b in radians.
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// ArrowHead returns the two barb ends of an arrow whose tip is at tip and
// which points in direction angle. The barbs sit size behind the tip,
// spread by spread radians on each side.
func ArrowHead(tip Point, angle, size, spread float64) (left, right Point) {
	back := angle + math.Pi
	return tip.Polar(size, back-spread), tip.Polar(size, back+spread)
}

// Triangle returns the closed outline of a UML generalization head with
// its tip on tip, pointing in direction angle.
func Triangle(tip Point, angle, size float64) []Point {
	l, r := ArrowHead(tip, angle, size, 0.5)
	return []Point{tip, l, r}
}

// Diamond returns the outline of a composition/aggregation diamond that
// starts at tip and extends 2*size along angle, away from the box the tip
// is attached to.
func Diamond(tip Point, angle, size float64) []Point {
	return []Point{
		tip,
		tip.Polar(size, angle+math.Pi/2).Polar(size, angle),
		tip.Polar(2*size, angle),
		tip.Polar(size, angle-math.Pi/2).Polar(size, angle),
	}
}

// Beside returns the point offset perpendicular (counter-clockwise) to the
// direction angle at distance dist from p. Used to keep labels clear of
// the line they annotate.
func Beside(p Point, angle, dist float64) Point {
	return p.Polar(dist, angle+math.Pi/2)
}

// Along returns the point dist units from p towards q.
func Along(p, q Point, dist float64) Point {
	return p.Polar(dist, Angle(p, q))
}
