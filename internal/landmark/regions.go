package landmark

import "github.com/abhisek/vigil/internal/geometry"

// Landmark index sets for the 468-point face mesh topology the reference
// detector emits. Only the subsets the classifier evaluates are listed.
var (
	// LeftEye and RightEye are the eye contour rings.
	LeftEye  = []int{33, 7, 163, 144, 145, 153, 154, 155, 133, 173, 157, 158, 159, 160, 161, 246}
	RightEye = []int{362, 382, 381, 380, 374, 373, 390, 249, 263, 466, 388, 387, 386, 385, 384, 398}
)

// Individual landmark indices used as anchors.
const (
	NoseTip        = 1
	UpperLipBottom = 12 // bottom edge of the upper lip (inner)
	LowerLipTop    = 15 // top edge of the lower lip (inner)
	LowerLipBottom = 17
	MouthLeft      = 61
	MouthRight     = 291
)

// PointAt returns the landmark at index i and whether it exists. Detections
// with truncated landmark sets report ok=false rather than panicking, so a
// malformed face is skipped for the tick instead of failing it.
func (f Face) PointAt(i int) (geometry.Point, bool) {
	if i < 0 || i >= len(f.Points) {
		return geometry.Point{}, false
	}
	return f.Points[i], true
}

// RegionCentroid returns the centroid of the landmarks at the given indices.
// ok is false if any index is missing from the face's landmark set.
func (f Face) RegionCentroid(indices []int) (geometry.Point, bool) {
	pts := make([]geometry.Point, 0, len(indices))
	for _, i := range indices {
		p, ok := f.PointAt(i)
		if !ok {
			return geometry.Point{}, false
		}
		pts = append(pts, p)
	}
	if len(pts) == 0 {
		return geometry.Point{}, false
	}
	return geometry.Centroid(pts), true
}
