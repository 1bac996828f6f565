//go:build opencv

package cvref

import (
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/brief"
	"github.com/gogpu/brief/internal/detect"
)

func noise(w, h int) *image.Gray {
	rng := rand.New(rand.NewPCG(5, 6))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return img
}

func TestPrefixSumMatchesOpenCV(t *testing.T) {
	img := noise(97, 61)
	got, err := PrefixSum(img)
	require.NoError(t, err)
	assert.True(t, got.Equal(brief.NewPrefixSum(img)), "integral images differ")
}

func TestPrefixSumSubImage(t *testing.T) {
	img := noise(80, 80).SubImage(image.Rect(7, 9, 70, 50)).(*image.Gray)
	got, err := PrefixSum(img)
	require.NoError(t, err)
	assert.True(t, got.Equal(brief.NewPrefixSum(img)), "integral images of a sub-image differ")
}

func TestDescriptorsFromOpenCVCorners(t *testing.T) {
	img := noise(320, 240)
	kps, err := FAST(img)
	require.NoError(t, err)
	require.NotEmpty(t, kps)

	d, err := brief.Compute(img, kps, brief.WithBackend(brief.BackendSequential))
	require.NoError(t, err)
	assert.Equal(t, d.Rows()*d.Size, len(d.Data))
}

func TestFASTAgreesWithOpenCV(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 30; y < 50; y++ {
		for x := 40; x < 60; x++ {
			img.Pix[y*img.Stride+x] = 255
		}
	}
	cv, err := FAST(img)
	require.NoError(t, err)

	cfg := detect.DefaultFASTConfig()
	cfg.Oriented = false
	ours := detect.FAST(img, cfg)

	// Both find a corner near every corner of the square.
	for _, c := range []image.Point{{40, 30}, {59, 30}, {40, 49}, {59, 49}} {
		assert.True(t, near(cv, c), "OpenCV missed corner %v", c)
		assert.True(t, near(ours, c), "detect missed corner %v", c)
	}
}

func near(kps []brief.Keypoint, p image.Point) bool {
	for _, kp := range kps {
		dx, dy := int(kp.X)-p.X, int(kp.Y)-p.Y
		if dx*dx+dy*dy <= 9 {
			return true
		}
	}
	return false
}

// TestBRIEFMatchesOpenCV compares descriptors against OpenCV's extractor.
// OpenCV's tables are not vendored: point BRIEF_OPENCV_PATTERN_DIR at a
// directory holding generated_16.i, generated_32.i and generated_64.i from
// opencv_contrib/modules/xfeatures2d/src.
func TestBRIEFMatchesOpenCV(t *testing.T) {
	dir := os.Getenv("BRIEF_OPENCV_PATTERN_DIR")
	if dir == "" {
		t.Skip("BRIEF_OPENCV_PATTERN_DIR not set")
	}

	img := noise(320, 240)
	kps, err := FAST(img)
	require.NoError(t, err)
	require.NotEmpty(t, kps)

	for _, size := range []int{16, 32, 64} {
		f, err := os.Open(filepath.Join(dir, fmt.Sprintf("generated_%d.i", size)))
		require.NoError(t, err)
		pat, err := brief.ParseOpenCVPattern(f)
		f.Close()
		require.NoError(t, err)
		require.Equal(t, size*8, pat.Len())

		want, err := BRIEF(img, kps, size, false)
		require.NoError(t, err)
		got, err := brief.Compute(img, slices.Clone(kps),
			brief.WithPattern(pat),
			brief.WithDescriptorSize(size),
			brief.WithBackend(brief.BackendSequential),
		)
		require.NoError(t, err)
		require.Equal(t, want.Keypoints, got.Keypoints)
		r, c := want.FirstDifference(got)
		assert.Equal(t, -1, r, "%d bytes: differs from OpenCV at descriptor %d byte %d", size, r, c)
	}
}
