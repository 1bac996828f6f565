// Package detect finds FAST corners to feed the descriptor extractor.
//
// FAST: Rosten and Drummond, "Fusing points and lines for high performance
// tracking", ICCV 2005. A pixel is a corner when at least N contiguous
// pixels of the radius-3 Bresenham circle around it are all brighter than
// centre+threshold or all darker than centre-threshold.
package detect

import (
	"cmp"
	"image"
	"slices"

	"github.com/chewxy/math32"

	"github.com/gogpu/brief"
)

// FASTConfig holds the parameters of the FAST detector.
type FASTConfig struct {
	// NMatchesCircle is the minimum run of contiguous circle pixels (of 16).
	NMatchesCircle int `json:"n_matches"`

	// NMSWinSize is the half-width of the non-maximum suppression window.
	NMSWinSize int `json:"nms_win_size"`

	// Threshold is the intensity difference a circle pixel needs to count.
	Threshold int `json:"threshold"`

	// Oriented estimates keypoint orientation by intensity centroid.
	Oriented bool `json:"oriented"`

	// Radius of the orientation patch.
	Radius int `json:"radius"`

	// MaxKeypoints keeps only the strongest responses. Zero keeps all.
	MaxKeypoints int `json:"max_keypoints"`
}

// DefaultFASTConfig returns FAST-9 with threshold 20.
func DefaultFASTConfig() FASTConfig {
	return FASTConfig{
		NMatchesCircle: 9,
		NMSWinSize:     2,
		Threshold:      20,
		Oriented:       true,
		Radius:         15,
	}
}

// circle holds the 16 offsets of the radius-3 Bresenham circle, clockwise
// from the top.
var circle = [16]image.Point{
	{0, -3}, {1, -3}, {2, -2}, {3, -1},
	{3, 0}, {3, 1}, {2, 2}, {1, 3},
	{0, 3}, {-1, 3}, {-2, 2}, {-3, 1},
	{-3, 0}, {-3, -1}, {-2, -2}, {-1, -3},
}

// circleDiameter is the keypoint Size reported for FAST corners.
const circleDiameter = 7

// FAST detects corners in img. Keypoints are returned in raster order, or
// by decreasing response when MaxKeypoints truncates the result. Unoriented
// keypoints carry Angle -1.
func FAST(img *image.Gray, cfg FASTConfig) []brief.Keypoint {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 7 || h < 7 {
		return nil
	}
	n := cfg.NMatchesCircle
	if n <= 0 || n > len(circle) {
		n = 9
	}

	// Score grid; zero means "not a corner".
	scores := make([]float32, w*h)
	var candidates []image.Point
	for y := 3; y < h-3; y++ {
		for x := 3; x < w-3; x++ {
			if s := cornerScore(img, x, y, n, cfg.Threshold); s > 0 {
				scores[y*w+x] = s
				candidates = append(candidates, image.Point{X: x, Y: y})
			}
		}
	}

	kps := make([]brief.Keypoint, 0, len(candidates))
	for _, p := range candidates {
		s := scores[p.Y*w+p.X]
		if suppressed(scores, w, h, p, s, cfg.NMSWinSize) {
			continue
		}
		kp := brief.Keypoint{
			X:        float32(p.X),
			Y:        float32(p.Y),
			Size:     circleDiameter,
			Angle:    -1,
			Response: s,
		}
		if cfg.Oriented {
			kp.Angle = centroidAngle(img, p, cfg.Radius)
		}
		kps = append(kps, kp)
	}

	if cfg.MaxKeypoints > 0 && len(kps) > cfg.MaxKeypoints {
		slices.SortStableFunc(kps, func(a, b brief.Keypoint) int {
			return cmp.Compare(b.Response, a.Response)
		})
		kps = kps[:cfg.MaxKeypoints]
	}
	return kps
}

// cornerScore returns the sum of absolute differences over the circle in the
// direction of the segment test, or 0 when (x, y) is not a corner.
func cornerScore(img *image.Gray, x, y, n, threshold int) float32 {
	b := img.Bounds()
	p := int(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
	var diff [16]int
	for i, o := range circle {
		diff[i] = int(img.GrayAt(b.Min.X+x+o.X, b.Min.Y+y+o.Y).Y) - p
	}

	brighter := longestRun(&diff, func(d int) bool { return d > threshold }) >= n
	darker := !brighter && longestRun(&diff, func(d int) bool { return d < -threshold }) >= n
	if !brighter && !darker {
		return 0
	}

	var s int
	for _, d := range diff {
		if brighter && d > 0 {
			s += d
		} else if darker && d < 0 {
			s -= d
		}
	}
	return float32(s)
}

// longestRun returns the longest circular run of entries satisfying pass.
func longestRun(diff *[16]int, pass func(int) bool) int {
	best, run := 0, 0
	for i := 0; i < 2*len(diff); i++ {
		if pass(diff[i%len(diff)]) {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}
	return min(best, len(diff))
}

// suppressed reports whether a stronger corner lies in the window. Equal
// scores are resolved in raster order: the earliest corner survives.
func suppressed(scores []float32, w, h int, p image.Point, s float32, win int) bool {
	at := p.Y*w + p.X
	for dy := -win; dy <= win; dy++ {
		y := p.Y + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -win; dx <= win; dx++ {
			x := p.X + dx
			if x < 0 || x >= w {
				continue
			}
			q := y*w + x
			if scores[q] > s || (scores[q] == s && q < at) {
				return true
			}
		}
	}
	return false
}

// centroidAngle returns the direction from p to the intensity centroid of
// the disc of the given radius, in degrees in [0, 360).
func centroidAngle(img *image.Gray, p image.Point, radius int) float32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var m10, m01 int
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := p.Y + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := p.X + dx
			if x < 0 || x >= w || dx*dx+dy*dy > r2 {
				continue
			}
			v := int(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			m10 += dx * v
			m01 += dy * v
		}
	}
	deg := math32.Atan2(float32(m01), float32(m10)) * (180 / math32.Pi)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
