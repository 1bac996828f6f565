package brief

import (
	"image"
	"testing"
)

func bruteBox(img *image.Gray, x, y, k int) int32 {
	var s int32
	for yy := y - k; yy <= y+k; yy++ {
		for xx := x - k; xx <= x+k; xx++ {
			s += int32(img.GrayAt(xx, yy).Y)
		}
	}
	return s
}

func TestBoxSumMatchesBruteForce(t *testing.T) {
	img := noiseImage(50, 40, 9)
	ps := NewPrefixSum(img)

	for _, k := range []int{0, 1, 4, 7} {
		for y := k; y+k < 40; y += 3 {
			for x := k; x+k < 50; x += 3 {
				if got, want := boxSum(ps, x, y, k), bruteBox(img, x, y, k); got != want {
					t.Fatalf("boxSum(%d, %d, k=%d) = %d, want %d", x, y, k, got, want)
				}
			}
		}
	}
}

func TestBoxSumConstantImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 30, 30))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	ps := NewPrefixSum(img)
	if got := boxSum(ps, 15, 15, 4); got != 81*200 {
		t.Errorf("boxSum = %d, want %d", got, 81*200)
	}
	// Window touching the top-left corner.
	if got := boxSum(ps, 4, 4, 4); got != 81*200 {
		t.Errorf("boxSum at corner = %d, want %d", got, 81*200)
	}
}

func TestBoxSumKeypointRounding(t *testing.T) {
	img := noiseImage(60, 60, 10)
	ps := NewPrefixSum(img)

	tests := []struct {
		kp     Keypoint
		cx, cy int
	}{
		{Keypoint{X: 30, Y: 30}, 30, 30},
		{Keypoint{X: 30.49, Y: 30.5}, 30, 31},
		{Keypoint{X: 29.5, Y: 29.51}, 30, 30},
	}
	o := Offset{DX: 3, DY: -2}
	for _, tt := range tests {
		got := BoxSum(ps, tt.kp, o, 4)
		want := bruteBox(img, tt.cx+3, tt.cy-2, 4)
		if got != want {
			t.Errorf("BoxSum(%+v) = %d, want %d (centre %d,%d)", tt.kp, got, want, tt.cx, tt.cy)
		}
	}
}

func BenchmarkBoxSum(b *testing.B) {
	ps := NewPrefixSum(noiseImage(256, 256, 1))
	var sink int32
	for b.Loop() {
		for x := 4; x < 252; x++ {
			sink += boxSum(ps, x, 128, 4)
		}
	}
	_ = sink
}
