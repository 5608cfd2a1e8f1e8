// Package geometry provides the small amount of 2-D vector math the
// landmark pipeline needs: distances, centroids and normalized boxes.
package geometry

import "math"

// Point is a 2-D point in normalized frame coordinates ([0,1] per axis
// when produced by the detector, though nothing here assumes bounds).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Centroid returns the mean of the given points, or the zero Point for an
// empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Box is an axis-aligned bounding box in the same coordinate space as the
// points it encloses.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Area returns the area of the box. Degenerate boxes report 0.
func (b Box) Area() float64 {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Center returns the center of the box.
func (b Box) Center() Point {
	return Midpoint(b.Min, b.Max)
}

// Size returns the larger of the box's normalized width and height. It is
// the "face size" used for gating detections that are too small or large.
func (b Box) Size() float64 {
	return math.Max(b.Width(), b.Height())
}

// Intersect returns the overlapping region of a and b. The result has zero
// Area when the boxes do not overlap.
func (a Box) Intersect(b Box) Box {
	return Box{
		Min: Point{X: math.Max(a.Min.X, b.Min.X), Y: math.Max(a.Min.Y, b.Min.Y)},
		Max: Point{X: math.Min(a.Max.X, b.Max.X), Y: math.Min(a.Max.Y, b.Max.Y)},
	}
}

// IoU returns the intersection-over-union of a and b in [0,1].
func IoU(a, b Box) float64 {
	inter := a.Intersect(b).Area()
	union := a.Area() + b.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// BoundingBox returns the tightest box enclosing all points. An empty
// slice yields the zero Box.
func BoundingBox(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio returns num/den, or 0 when den is zero or negative. Landmark
// ratios divide by measured widths that can legitimately collapse to zero
// on degenerate detections.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
