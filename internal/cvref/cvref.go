//go:build opencv

package cvref

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/gogpu/brief"
)

// grayMat copies img into a single-channel 8-bit Mat. The caller closes it.
func grayMat(img *image.Gray) (gocv.Mat, error) {
	g := brief.ToGray(img)
	w, h := g.Rect.Dx(), g.Rect.Dy()
	pix := g.Pix
	if g.Stride != w {
		pix = make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(pix[y*w:(y+1)*w], g.Pix[y*g.Stride:])
		}
	}
	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("cvref: wrap image: %w", err)
	}
	return mat, nil
}

// PrefixSum computes the integral image with cv::integral.
func PrefixSum(img *image.Gray) (*brief.PrefixSum, error) {
	src, err := grayMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sum := gocv.NewMat()
	defer sum.Close()
	sqsum := gocv.NewMat()
	defer sqsum.Close()
	tilted := gocv.NewMat()
	defer tilted.Close()
	gocv.Integral(src, &sum, &sqsum, &tilted)

	w, h := src.Cols(), src.Rows()
	if sum.Rows() != h+1 || sum.Cols() != w+1 {
		return nil, fmt.Errorf("cvref: integral is %dx%d, want %dx%d", sum.Cols(), sum.Rows(), w+1, h+1)
	}
	ps := &brief.PrefixSum{
		Width:  w,
		Height: h,
		Stride: w + 1,
		Data:   make([]int32, (w+1)*(h+1)),
	}
	for r := 0; r <= h; r++ {
		for c := 0; c <= w; c++ {
			ps.Data[r*ps.Stride+c] = sum.GetIntAt(r, c)
		}
	}
	return ps, nil
}

// FAST detects corners with OpenCV's FAST-9/16 detector. OpenCV does not
// orient FAST corners, so every keypoint carries Angle -1.
func FAST(img *image.Gray) ([]brief.Keypoint, error) {
	src, err := grayMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fast := gocv.NewFastFeatureDetector()
	defer fast.Close()

	cvKps := fast.Detect(src)
	kps := make([]brief.Keypoint, len(cvKps))
	for i, kp := range cvKps {
		kps[i] = brief.Keypoint{
			X:        float32(kp.X),
			Y:        float32(kp.Y),
			Size:     float32(kp.Size),
			Angle:    -1,
			Response: float32(kp.Response),
		}
	}
	return kps, nil
}
