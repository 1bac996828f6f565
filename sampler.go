package brief

// boxSum returns the sum of the source pixels in the (2k+1)×(2k+1) window
// centred at (x, y), read from four corners of the prefix sum.
//
// There are no bounds checks. Callers guarantee k <= x, k <= y,
// x+k < Width and y+k < Height. Violations read unrelated cells or panic.
func boxSum(ps *PrefixSum, x, y, k int) int32 {
	top := (y - k) * ps.Stride
	bottom := (y + k + 1) * ps.Stride
	return ps.Data[bottom+x+k+1] - ps.Data[bottom+x-k] -
		ps.Data[top+x+k+1] + ps.Data[top+x-k]
}

// BoxSum returns the sum of the (2·halfKernel+1)² window centred at the
// rounded keypoint position displaced by o. It panics when the window leaves
// the image; FilterBorder prevents that for admitted keypoints.
func BoxSum(ps *PrefixSum, kp Keypoint, o Offset, halfKernel int) int32 {
	x, y := kp.Center()
	return boxSum(ps, x+o.DX, y+o.DY, halfKernel)
}
