package brief

import (
	"bytes"

	"github.com/steakknife/hamming"
)

// Descriptors holds one row per surviving keypoint.
type Descriptors struct {
	// Keypoints are the inputs that passed border filtering, in input order.
	Keypoints []Keypoint

	// Data is row-major, Size bytes per keypoint.
	Data []byte

	// Size is the row length in bytes.
	Size int
}

// Rows returns the number of descriptors.
func (d *Descriptors) Rows() int {
	if d.Size == 0 {
		return 0
	}
	return len(d.Data) / d.Size
}

// Row returns descriptor i. The slice aliases Data.
func (d *Descriptors) Row(i int) []byte {
	return d.Data[i*d.Size : (i+1)*d.Size : (i+1)*d.Size]
}

// Bit reports test t of descriptor i.
func (d *Descriptors) Bit(i, t int) bool {
	return d.Data[i*d.Size+t>>3]&(0x80>>uint(t&7)) != 0
}

// Equal reports whether both sets hold the same bytes.
func (d *Descriptors) Equal(other *Descriptors) bool {
	return d.Size == other.Size && bytes.Equal(d.Data, other.Data)
}

// FirstDifference returns the first differing (row, byte) position, or
// (-1, -1) when the buffers are identical. Buffers of different length
// differ at the end of the shorter one.
func (d *Descriptors) FirstDifference(other *Descriptors) (row, col int) {
	n := min(len(d.Data), len(other.Data))
	for i := 0; i < n; i++ {
		if d.Data[i] != other.Data[i] {
			return i / d.Size, i % d.Size
		}
	}
	if len(d.Data) != len(other.Data) && d.Size > 0 {
		return n / d.Size, n % d.Size
	}
	return -1, -1
}

// Distance returns the Hamming distance between two descriptor rows of equal
// length.
func Distance(a, b []byte) int {
	dist := 0
	for i := range a {
		dist += hamming.CountBitsInt(int(a[i] ^ b[i]))
	}
	return dist
}
