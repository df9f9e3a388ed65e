package geom

import (
	"math"
)

// Rect is a closed axis-aligned rectangle [xmin, xmax] x [ymin, ymax].
// The zero value is the degenerate rectangle containing only the origin.
type Rect struct {
	xmin, ymin, xmax, ymax float64
}

var (
	// UnitSquare is [0, 1] x [0, 1].
	UnitSquare = MustRect(0, 0, 1, 1)
	// Plane covers every finite point.
	Plane = Rect{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}
)

// NewRect returns the rectangle [xmin, xmax] x [ymin, ymax].
// It returns *ConstructionError if xmin > xmax or ymin > ymax or any bound is NaN.
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	if !(xmin <= xmax) || !(ymin <= ymax) {
		return Rect{}, &ConstructionError{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	}
	return Rect{xmin, ymin, xmax, ymax}, nil
}

// MustRect is like NewRect but panics on invalid bounds.
func MustRect(xmin, ymin, xmax, ymax float64) Rect {
	r, err := NewRect(xmin, ymin, xmax, ymax)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rect) XMin() float64 { return r.xmin }
func (r Rect) YMin() float64 { return r.ymin }
func (r Rect) XMax() float64 { return r.xmax }
func (r Rect) YMax() float64 { return r.ymax }

func (r Rect) Width() float64  { return r.xmax - r.xmin }
func (r Rect) Height() float64 { return r.ymax - r.ymin }

// Contains returns true if p is inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.xmin && p.X <= r.xmax &&
		p.Y >= r.ymin && p.Y <= r.ymax
}

// Intersects returns true if r and o share at least one point. Touching edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.xmax >= o.xmin && r.xmin <= o.xmax &&
		r.ymax >= o.ymin && r.ymin <= o.ymax
}

// DistanceSquaredTo returns the squared distance from p to the closest point of r, 0 if r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	if r.Contains(p) {
		return 0
	}
	return p.DistanceSquaredTo(r.clamp(p))
}

// DistanceTo returns the distance from p to the closest point of r.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

func (r Rect) clamp(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, r.xmin), r.xmax),
		Y: math.Min(math.Max(p.Y, r.ymin), r.ymax),
	}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		xmin: math.Min(r.xmin, o.xmin),
		ymin: math.Min(r.ymin, o.ymin),
		xmax: math.Max(r.xmax, o.xmax),
		ymax: math.Max(r.ymax, o.ymax),
	}
}

// Extend returns the smallest rectangle covering r and p.
func (r Rect) Extend(p Point) Rect {
	return r.Union(Rect{p.X, p.Y, p.X, p.Y})
}

// SplitX cuts r with the vertical line through x and returns the left and right halves.
// Both halves include the line. x is clamped into r.
func (r Rect) SplitX(x float64) (low, high Rect) {
	x = math.Min(math.Max(x, r.xmin), r.xmax)
	low, high = r, r
	low.xmax = x
	high.xmin = x
	return
}

// SplitY cuts r with the horizontal line through y and returns the bottom and top halves.
// Both halves include the line. y is clamped into r.
func (r Rect) SplitY(y float64) (low, high Rect) {
	y = math.Min(math.Max(y, r.ymin), r.ymax)
	low, high = r, r
	low.ymax = y
	high.ymin = y
	return
}

func (r Rect) String() string {
	return "[" + format(r.xmin) + ", " + format(r.xmax) + "] x [" + format(r.ymin) + ", " + format(r.ymax) + "]"
}
