package brief

import "slices"

// FilterBorder removes keypoints whose sampling footprint would leave the
// image, preserving the order of the survivors.
//
// Filtering happens in place: the returned slice shares kps' backing array,
// like slices.DeleteFunc. A keypoint survives when its rounded centre lies in
// [margin, width-margin) horizontally and [margin, height-margin) vertically.
// If either dimension is at most 2*margin no keypoint can survive and the
// result is empty.
func FilterBorder(kps []Keypoint, width, height, margin int) []Keypoint {
	if margin <= 0 {
		return kps
	}
	if width <= 2*margin || height <= 2*margin {
		clear(kps)
		return kps[:0]
	}
	return slices.DeleteFunc(kps, func(kp Keypoint) bool {
		x, y := kp.Center()
		return x < margin || x >= width-margin || y < margin || y >= height-margin
	})
}
