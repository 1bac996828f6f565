//go:build opencv

package cvref

import (
	"fmt"
	"image"
	"slices"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"github.com/gogpu/brief"
)

// BRIEF describes kps with cv::xfeatures2d::BriefDescriptorExtractor. The
// result has the layout of brief.Compute: rows follow the keypoints that
// survive the border filter, in input order. Keypoints must lie on integer
// coordinates, where OpenCV's border rule and brief.FilterBorder agree.
func BRIEF(img *image.Gray, kps []brief.Keypoint, size int, oriented bool) (*brief.Descriptors, error) {
	src, err := grayMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	cvKps := make([]gocv.KeyPoint, len(kps))
	for i, kp := range kps {
		cvKps[i] = gocv.KeyPoint{
			X:        float64(kp.X),
			Y:        float64(kp.Y),
			Size:     float64(kp.Size),
			Angle:    float64(kp.Angle),
			Response: float64(kp.Response),
			ClassID:  -1,
		}
	}

	extractor := contrib.NewBriefDescriptorExtractorWithParams(size, oriented)
	defer extractor.Close()

	desc := gocv.NewMat()
	defer desc.Close()
	extractor.Compute(cvKps, src, &desc)

	o := brief.DefaultOptions()
	kept := brief.FilterBorder(slices.Clone(kps), src.Cols(), src.Rows(), o.Margin())
	if desc.Rows() != len(kept) || (len(kept) > 0 && desc.Cols() != size) {
		return nil, fmt.Errorf("cvref: OpenCV returned %dx%d descriptors, want %dx%d",
			desc.Rows(), desc.Cols(), len(kept), size)
	}

	out := &brief.Descriptors{Keypoints: kept, Size: size, Data: []byte{}}
	if len(kept) > 0 {
		out.Data = slices.Clone(desc.ToBytes())
	}
	return out, nil
}
