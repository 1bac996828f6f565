package brief

// Job is one descriptor evaluation: a prefix sum, the keypoints that survived
// border filtering, and a zeroed output buffer with one row per keypoint.
//
// A Job is read-only during evaluation except for Out, and every row of Out
// is owned by exactly one keypoint. Backends may evaluate rows in any order
// and from any number of goroutines.
type Job struct {
	Sum       *PrefixSum
	Keypoints []Keypoint
	Pattern   Pattern

	// Tests is the number of pattern pairs evaluated per keypoint (8 per byte).
	Tests int

	// HalfKernel is ⌊KernelSize/2⌋.
	HalfKernel int

	// RotationBound clamps rotated offsets when UseOrientation is set.
	RotationBound int

	UseOrientation bool

	// Out holds len(Keypoints) rows of Tests/8 bytes.
	Out []byte
}

// RowSize returns the descriptor length in bytes.
func (j *Job) RowSize() int { return j.Tests / 8 }

// Row returns the output row of keypoint i.
func (j *Job) Row(i int) []byte {
	n := j.RowSize()
	return j.Out[i*n : (i+1)*n : (i+1)*n]
}

// Center returns the rounded centre of keypoint i.
func (j *Job) Center(i int) (x, y int) {
	return j.Keypoints[i].Center()
}

// Rotation returns the rotation applied to keypoint i's offsets.
func (j *Job) Rotation(i int) Rotation {
	if !j.UseOrientation {
		return IdentityRotation
	}
	return j.Keypoints[i].Rotation()
}

// Pair returns test t for keypoint i with rotation applied when enabled.
func (j *Job) Pair(i, t int) TestPair {
	tp := j.Pattern.Pair(t)
	if !j.UseOrientation {
		return tp
	}
	return j.Keypoints[i].Rotation().ApplyPair(tp, j.RotationBound)
}

// SetBit records that test t of keypoint i passed.
// Bits are packed most significant first within each byte.
func (j *Job) SetBit(i, t int) {
	j.Out[i*j.RowSize()+t>>3] |= 0x80 >> uint(t&7)
}

// EvaluateRow computes all tests of keypoint i into its row.
func (j *Job) EvaluateRow(i int) {
	cx, cy := j.Center(i)
	row := j.Row(i)
	k := j.HalfKernel

	rot := j.Rotation(i)
	identity := !j.UseOrientation
	for t := 0; t < j.Tests; t++ {
		tp := j.Pattern.Pair(t)
		if !identity {
			tp = rot.ApplyPair(tp, j.RotationBound)
		}
		a := boxSum(j.Sum, cx+tp.A.DX, cy+tp.A.DY, k)
		b := boxSum(j.Sum, cx+tp.B.DX, cy+tp.B.DY, k)
		if a > b {
			row[t>>3] |= 0x80 >> uint(t&7)
		}
	}
}

// EvaluateRange computes rows [start, end).
func (j *Job) EvaluateRange(start, end int) {
	for i := start; i < end; i++ {
		j.EvaluateRow(i)
	}
}
