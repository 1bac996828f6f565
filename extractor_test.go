package brief

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

// blockImage is black except for a white 9×9 block centred at (x, y).
func blockImage(w, h, x, y int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for yy := y - 4; yy <= y+4; yy++ {
		for xx := x - 4; xx <= x+4; xx++ {
			img.SetGray(xx, yy, color.Gray{Y: 255})
		}
	}
	return img
}

func TestComputeSingleTest(t *testing.T) {
	tp := DefaultPattern().Pair(0)
	kp := Keypoint{X: 50, Y: 50, Angle: -1}

	bright := blockImage(100, 100, 50+tp.A.DX, 50+tp.A.DY)
	d, err := Compute(bright, []Keypoint{kp}, WithBackend(BackendSequential))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	if d.Rows() != 1 {
		t.Fatalf("Rows() = %d, want 1", d.Rows())
	}
	if !d.Bit(0, 0) {
		t.Error("bit 0 clear with a bright A sample")
	}
	if d.Data[0]&0x80 == 0 {
		t.Errorf("byte 0 = %#02x, want MSB set", d.Data[0])
	}

	// Brightening B instead flips the test.
	swapped := blockImage(100, 100, 50+tp.B.DX, 50+tp.B.DY)
	d, err = Compute(swapped, []Keypoint{kp}, WithBackend(BackendSequential))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	if d.Bit(0, 0) {
		t.Error("bit 0 set with a bright B sample")
	}
}

func TestComputeUniformImageIsZero(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 80, 80))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	// Equal sums never set a bit: the comparison is strict.
	d, err := Compute(img, []Keypoint{{X: 40, Y: 40, Angle: 33}}, WithOrientation(true))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	for i, b := range d.Data {
		if b != 0 {
			t.Fatalf("byte %d = %#02x on a uniform image, want 0", i, b)
		}
	}
}

func TestComputeRowCount(t *testing.T) {
	img := noiseImage(200, 150, 12)
	for _, size := range []int{16, 32, 64} {
		kps := randomKeypoints(300, 200, 150, 13, false)
		d, err := Compute(img, kps, WithDescriptorSize(size))
		if err != nil {
			t.Fatalf("Compute(size %d) = %v", size, err)
		}
		if d.Size != size {
			t.Errorf("Size = %d, want %d", d.Size, size)
		}
		if len(d.Data) != len(d.Keypoints)*size {
			t.Errorf("len(Data) = %d, want %d rows of %d", len(d.Data), len(d.Keypoints), size)
		}
		for _, kp := range d.Keypoints {
			x, y := kp.Center()
			if x < 28 || x >= 172 || y < 28 || y >= 122 {
				t.Fatalf("keypoint %+v survived the border filter", kp)
			}
		}
	}
}

func TestComputeShorterDescriptorsArePrefixes(t *testing.T) {
	img := noiseImage(160, 160, 14)
	kps := randomKeypoints(100, 160, 160, 15, true)

	full, err := Compute(img, append([]Keypoint(nil), kps...), WithDescriptorSize(64), WithOrientation(true))
	if err != nil {
		t.Fatalf("Compute(64) = %v", err)
	}
	for _, size := range []int{16, 32} {
		d, err := Compute(img, append([]Keypoint(nil), kps...), WithDescriptorSize(size), WithOrientation(true))
		if err != nil {
			t.Fatalf("Compute(%d) = %v", size, err)
		}
		for i := 0; i < d.Rows(); i++ {
			if !bytes.Equal(d.Row(i), full.Row(i)[:size]) {
				t.Fatalf("row %d of %d-byte descriptors is not a prefix of the 64-byte row", i, size)
			}
		}
	}
}

func TestComputeOrientationNoOp(t *testing.T) {
	img := noiseImage(150, 150, 16)
	kps := randomKeypoints(200, 150, 150, 17, false)

	plain, err := Compute(img, append([]Keypoint(nil), kps...))
	if err != nil {
		t.Fatal(err)
	}
	// Unoriented keypoints ignore the orientation switch.
	unoriented, err := Compute(img, append([]Keypoint(nil), kps...), WithOrientation(true))
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Equal(unoriented) {
		t.Error("orientation changed descriptors of unoriented keypoints")
	}

	// So does a zero angle.
	zero := append([]Keypoint(nil), kps...)
	for i := range zero {
		zero[i].Angle = 0
	}
	rotated, err := Compute(img, zero, WithOrientation(true))
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Equal(rotated) {
		t.Error("a zero angle changed descriptors")
	}
}

func TestComputeOrientationChangesOutput(t *testing.T) {
	img := noiseImage(150, 150, 18)
	kps := randomKeypoints(100, 150, 150, 19, true)

	plain, err := Compute(img, append([]Keypoint(nil), kps...))
	if err != nil {
		t.Fatal(err)
	}
	oriented, err := Compute(img, append([]Keypoint(nil), kps...), WithOrientation(true))
	if err != nil {
		t.Fatal(err)
	}
	if plain.Rows() == 0 {
		t.Fatal("no keypoints survived")
	}
	if plain.Equal(oriented) {
		t.Error("orientation had no effect on randomly oriented keypoints")
	}
}

func TestComputeDeterministic(t *testing.T) {
	img := noiseImage(180, 120, 20)
	kps := randomKeypoints(250, 180, 120, 21, true)

	ext, err := NewExtractor(WithOrientation(true))
	if err != nil {
		t.Fatal(err)
	}
	defer ext.Close()

	first, err := ext.Compute(img, append([]Keypoint(nil), kps...))
	if err != nil {
		t.Fatal(err)
	}
	for run := 0; run < 5; run++ {
		again, err := ext.Compute(img, append([]Keypoint(nil), kps...))
		if err != nil {
			t.Fatal(err)
		}
		if r, c := first.FirstDifference(again); r >= 0 {
			t.Fatalf("run %d differs at row %d byte %d", run, r, c)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	ext, err := NewExtractor(WithBackend(BackendSequential))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ext.Compute(nil, nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("Compute(nil) error = %v, want ErrNilImage", err)
	}
	if _, err := ext.ComputeImage(nil, nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("ComputeImage(nil) error = %v, want ErrNilImage", err)
	}
	if _, err := ext.ComputePrefixSum(nil, nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("ComputePrefixSum(nil) error = %v, want ErrNilImage", err)
	}

	ext.Close()
	if _, err := ext.Compute(noiseImage(64, 64, 1), nil); !errors.Is(err, ErrExtractorClosed) {
		t.Errorf("Compute after Close error = %v, want ErrExtractorClosed", err)
	}
}

func TestComputeNoSurvivors(t *testing.T) {
	d, err := Compute(noiseImage(50, 50, 2), []Keypoint{{X: 25, Y: 25}})
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	if d.Rows() != 0 || len(d.Keypoints) != 0 {
		t.Errorf("got %d rows and %d keypoints, want none", d.Rows(), len(d.Keypoints))
	}
}

func TestComputeImageConvertsColor(t *testing.T) {
	gray := noiseImage(100, 100, 22)
	rgba := image.NewRGBA(gray.Bounds())
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			v := gray.GrayAt(x, y).Y
			rgba.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	kps := randomKeypoints(50, 100, 100, 23, false)

	ext, err := NewExtractor()
	if err != nil {
		t.Fatal(err)
	}
	defer ext.Close()

	want, err := ext.Compute(gray, append([]Keypoint(nil), kps...))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ext.ComputeImage(rgba, append([]Keypoint(nil), kps...))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("ComputeImage on an RGBA copy differs from Compute on the gray image")
	}
}

func TestComputeFallbackToCPU(t *testing.T) {
	img := noiseImage(120, 120, 24)
	kps := randomKeypoints(80, 120, 120, 25, true)

	want, err := Compute(img, append([]Keypoint(nil), kps...), WithOrientation(true), WithBackend(BackendSequential))
	if err != nil {
		t.Fatal(err)
	}

	mock := &mockBackend{
		name:     "flaky",
		evalErr:  fmt.Errorf("shader unavailable: %w", ErrFallbackToCPU),
		scribble: true,
	}
	got, err := Compute(img, append([]Keypoint(nil), kps...), WithOrientation(true), WithBackendInstance(mock))
	if err != nil {
		t.Fatalf("Compute() with fallback = %v", err)
	}
	if !got.Equal(want) {
		t.Error("fallback output differs from the sequential backend")
	}
	if mock.evals != 1 {
		t.Errorf("backend Evaluate called %d times, want 1", mock.evals)
	}
}

func TestComputeBackendError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Compute(noiseImage(100, 100, 1), []Keypoint{{X: 50, Y: 50}},
		WithBackendInstance(&mockBackend{name: "broken", evalErr: boom}))
	if !errors.Is(err, boom) {
		t.Errorf("Compute() error = %v, want wrapped boom", err)
	}
}

func TestComputeSkipsBackendWithoutSurvivors(t *testing.T) {
	mock := &mockBackend{name: "idle"}
	if _, err := Compute(noiseImage(40, 40, 1), []Keypoint{{X: 20, Y: 20}}, WithBackendInstance(mock)); err != nil {
		t.Fatal(err)
	}
	if mock.evals != 0 {
		t.Errorf("Evaluate called %d times with no keypoints, want 0", mock.evals)
	}
}

func BenchmarkExtractor(b *testing.B) {
	img := noiseImage(640, 480, 1)
	kps := randomKeypoints(2000, 640, 480, 2, true)
	for _, name := range []string{BackendSequential, BackendParallel} {
		b.Run(name, func(b *testing.B) {
			ext, err := NewExtractor(WithBackend(name), WithOrientation(true))
			if err != nil {
				b.Fatal(err)
			}
			defer ext.Close()
			sum := NewPrefixSum(img)
			buf := make([]Keypoint, len(kps))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, kps)
				if _, err := ext.ComputePrefixSum(sum, buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
