package brief

import "image"

// PrefixSum is the integral image of a grayscale image.
//
// It is one cell larger than the source in each dimension. Cell (r, c) holds
// the sum of all source pixels with row < r and column < c, so row 0 and
// column 0 are zero:
//
//	S[r][c] = S[r-1][c] + S[r][c-1] - S[r-1][c-1] + src[r-1][c-1]
//
// Values are int32 and wrap on overflow. Four-corner box sums remain exact
// under wrapping because the true box sum always fits in int32.
type PrefixSum struct {
	// Width and Height are the source image dimensions.
	Width, Height int

	// Stride is the row length of Data, Width+1.
	Stride int

	// Data holds (Width+1)*(Height+1) cells, row-major.
	Data []int32
}

// NewPrefixSum builds the integral image of img. It honours img.Rect.Min and
// img.Stride; the result is indexed from the image's top-left pixel.
func NewPrefixSum(img *image.Gray) *PrefixSum {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	stride := w + 1
	ps := &PrefixSum{
		Width:  w,
		Height: h,
		Stride: stride,
		Data:   make([]int32, stride*(h+1)),
	}

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w]
		above := ps.Data[y*stride : (y+1)*stride]
		row := ps.Data[(y+1)*stride : (y+2)*stride]
		var run int32
		for x, v := range src {
			run += int32(v)
			row[x+1] = above[x+1] + run
		}
	}
	return ps
}

// At returns cell (r, c).
func (ps *PrefixSum) At(r, c int) int32 {
	return ps.Data[r*ps.Stride+c]
}

// Equal reports whether two prefix sums hold identical grids.
func (ps *PrefixSum) Equal(other *PrefixSum) bool {
	if ps.Width != other.Width || ps.Height != other.Height || len(ps.Data) != len(other.Data) {
		return false
	}
	for i := range ps.Data {
		if ps.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}
