package brief

import (
	"bytes"
	"image"
	"math/rand/v2"
	"testing"
)

// noiseImage returns a deterministic pseudo-random grayscale image.
func noiseImage(w, h int, seed uint64) *image.Gray {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return img
}

// randomKeypoints scatters n keypoints over a w×h image, including some that
// the border filter must drop. Unoriented keypoints get Angle -1.
func randomKeypoints(n, w, h int, seed uint64, oriented bool) []Keypoint {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	kps := make([]Keypoint, n)
	for i := range kps {
		kps[i] = Keypoint{
			X:     rng.Float32() * float32(w),
			Y:     rng.Float32() * float32(h),
			Size:  7,
			Angle: -1,
		}
		if oriented {
			kps[i].Angle = rng.Float32() * 360
		}
	}
	return kps
}

// newTestJob builds a zeroed job the way the extractor does.
func newTestJob(t *testing.T, img *image.Gray, kps []Keypoint, o Options) *Job {
	t.Helper()
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	sum := NewPrefixSum(img)
	kept := FilterBorder(kps, sum.Width, sum.Height, o.Margin())
	return &Job{
		Sum:            sum,
		Keypoints:      kept,
		Pattern:        DefaultPattern(),
		Tests:          o.Tests(),
		HalfKernel:     o.HalfKernel(),
		RotationBound:  o.RotationBound(),
		UseOrientation: o.UseOrientation,
		Out:            make([]byte, len(kept)*o.DescriptorSize),
	}
}

// referenceRows evaluates job on a private buffer and returns the result.
func referenceRows(job *Job) []byte {
	ref := *job
	ref.Out = make([]byte, len(job.Out))
	ref.EvaluateRange(0, len(ref.Keypoints))
	return ref.Out
}

func assertRows(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("output length = %d, want %d", len(got), len(want))
	}
	if !bytes.Equal(got, want) {
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("output differs at byte %d: got %#02x, want %#02x", i, got[i], want[i])
			}
		}
	}
}
