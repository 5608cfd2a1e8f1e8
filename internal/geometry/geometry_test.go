package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	if d != 5 {
		t.Errorf("got %f, want 5", d)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 3}})
	if c.X != 1 || c.Y != 1 {
		t.Errorf("got (%f,%f), want (1,1)", c.X, c.Y)
	}
}

func TestCentroid_Empty(t *testing.T) {
	c := Centroid(nil)
	if c != (Point{}) {
		t.Errorf("got %+v, want zero point", c)
	}
}

func TestBoundingBox(t *testing.T) {
	b := BoundingBox([]Point{{X: 0.2, Y: 0.3}, {X: 0.6, Y: 0.1}, {X: 0.4, Y: 0.5}})
	if b.Min.X != 0.2 || b.Min.Y != 0.1 || b.Max.X != 0.6 || b.Max.Y != 0.5 {
		t.Errorf("unexpected box: %+v", b)
	}
	if math.Abs(b.Size()-0.4) > 1e-9 {
		t.Errorf("got size %f, want 0.4", b.Size())
	}
}

func TestIoU_Disjoint(t *testing.T) {
	a := Box{Min: Point{0, 0}, Max: Point{0.1, 0.1}}
	b := Box{Min: Point{0.5, 0.5}, Max: Point{0.6, 0.6}}
	if got := IoU(a, b); got != 0 {
		t.Errorf("got %f, want 0", got)
	}
}

func TestIoU_Identical(t *testing.T) {
	a := Box{Min: Point{0.1, 0.1}, Max: Point{0.3, 0.3}}
	if got := IoU(a, a); math.Abs(got-1) > 1e-9 {
		t.Errorf("got %f, want 1", got)
	}
}

func TestIoU_Partial(t *testing.T) {
	a := Box{Min: Point{0, 0}, Max: Point{0.2, 0.2}}
	b := Box{Min: Point{0.1, 0}, Max: Point{0.3, 0.2}}
	// Intersection 0.1*0.2 = 0.02, union 0.04+0.04-0.02 = 0.06.
	if got := IoU(a, b); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("got %f, want 1/3", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("got %f, want 1", got)
	}
	if got := Clamp(-0.2, 0, 1); got != 0 {
		t.Errorf("got %f, want 0", got)
	}
	if got := Clamp(0.4, 0, 1); got != 0.4 {
		t.Errorf("got %f, want 0.4", got)
	}
}

func TestRatio_ZeroDenominator(t *testing.T) {
	if got := Ratio(1, 0); got != 0 {
		t.Errorf("got %f, want 0", got)
	}
}
