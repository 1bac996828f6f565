package brief

import "fmt"

// Offset is an integer displacement from a keypoint centre.
type Offset struct {
	DX, DY int
}

// TestPair defines one pixel test: the bit is set when the box sum at A is
// greater than the box sum at B.
type TestPair struct {
	A, B Offset
}

// MaxTests is the number of pairs in the built-in table (64-byte descriptors).
const MaxTests = len(patternTable)

// Pattern is an immutable table of test pairs shared by every backend.
// A descriptor with n tests uses the first n pairs. The zero Pattern is
// empty.
type Pattern struct {
	pairs *[]TestPair
}

var defaultPattern = func() Pattern {
	pairs := patternTable[:]
	return Pattern{pairs: &pairs}
}()

// DefaultPattern returns the built-in test pattern.
func DefaultPattern() Pattern { return defaultPattern }

// NewPattern copies pairs into an immutable pattern. The number of pairs
// must be a positive multiple of 8.
func NewPattern(pairs []TestPair) (Pattern, error) {
	if len(pairs) == 0 || len(pairs)%8 != 0 {
		return Pattern{}, fmt.Errorf("%w: %d pairs is not a positive multiple of 8", ErrInvalidPattern, len(pairs))
	}
	cp := make([]TestPair, len(pairs))
	copy(cp, pairs)
	return Pattern{pairs: &cp}, nil
}

func (p Pattern) table() []TestPair {
	if p.pairs == nil {
		return nil
	}
	return *p.pairs
}

// Len returns the number of pairs in the table.
func (p Pattern) Len() int { return len(p.table()) }

// Pair returns test pair t.
func (p Pattern) Pair(t int) TestPair { return p.table()[t] }

// Pairs returns a copy of the first n pairs.
func (p Pattern) Pairs(n int) []TestPair {
	out := make([]TestPair, n)
	copy(out, p.table()[:n])
	return out
}

// Extent returns the largest absolute offset component among the first n pairs.
func (p Pattern) Extent(n int) int {
	ext := 0
	for _, tp := range p.table()[:n] {
		for _, v := range [4]int{tp.A.DX, tp.A.DY, tp.B.DX, tp.B.DY} {
			if v < 0 {
				v = -v
			}
			ext = max(ext, v)
		}
	}
	return ext
}

// patternTable holds the built-in test pairs as {A, B}.
// Offsets were drawn once from an isotropic Gaussian (σ = 48/5) and limited
// to ±20 so that a 9×9 box around any sample stays within ±24 of the centre.
// The table must never change: stored descriptors depend on it. Load
// OpenCV's generated tables with ParseOpenCVPattern for descriptors that
// match cv::xfeatures2d::BriefDescriptorExtractor.
var patternTable = [512]TestPair{
	{Offset{-2, 1}, Offset{-4, 16}}, {Offset{-6, 10}, Offset{1, -4}}, {Offset{-6, 18}, Offset{7, 14}}, {Offset{10, 1}, Offset{-1, 9}},
	{Offset{15, 3}, Offset{-10, 2}}, {Offset{-2, -4}, Offset{-7, 19}}, {Offset{2, 4}, Offset{-3, -3}}, {Offset{-2, -7}, Offset{-14, -16}},
	{Offset{-1, -7}, Offset{5, 2}}, {Offset{-8, -15}, Offset{-9, 15}}, {Offset{4, 1}, Offset{-14, 4}}, {Offset{-14, 3}, Offset{-7, -17}},
	{Offset{-9, 8}, Offset{-10, -6}}, {Offset{-4, 17}, Offset{-15, 7}}, {Offset{7, 14}, Offset{0, -13}}, {Offset{-9, 11}, Offset{-13, -17}},
	{Offset{9, -11}, Offset{1, 7}}, {Offset{-9, 0}, Offset{-5, -7}}, {Offset{-5, -7}, Offset{-12, 8}}, {Offset{-1, 6}, Offset{9, -9}},
	{Offset{2, -7}, Offset{10, -4}}, {Offset{-14, 4}, Offset{10, 7}}, {Offset{9, 5}, Offset{-7, 7}}, {Offset{0, -12}, Offset{5, -5}},
	{Offset{19, -8}, Offset{-11, 3}}, {Offset{8, -7}, Offset{6, 2}}, {Offset{5, -3}, Offset{-4, 4}}, {Offset{-6, -6}, Offset{-11, 5}},
	{Offset{0, -10}, Offset{-3, -1}}, {Offset{2, -10}, Offset{-16, 11}}, {Offset{8, 8}, Offset{-1, -2}}, {Offset{6, 10}, Offset{2, 7}},
	{Offset{-16, -4}, Offset{-10, 6}}, {Offset{10, 5}, Offset{7, -1}}, {Offset{-11, -7}, Offset{-4, 2}}, {Offset{9, 3}, Offset{-7, 2}},
	{Offset{-8, 5}, Offset{14, -4}}, {Offset{5, 5}, Offset{-5, -6}}, {Offset{-7, 0}, Offset{-4, -10}}, {Offset{5, 5}, Offset{11, 3}},
	{Offset{8, 5}, Offset{1, -5}}, {Offset{-6, 17}, Offset{2, -1}}, {Offset{9, -1}, Offset{-10, 8}}, {Offset{-4, -5}, Offset{-1, -12}},
	{Offset{4, -13}, Offset{-10, 3}}, {Offset{11, -3}, Offset{10, 1}}, {Offset{-5, 4}, Offset{-5, -5}}, {Offset{-6, 0}, Offset{2, 4}},
	{Offset{15, 0}, Offset{14, -13}}, {Offset{-3, 2}, Offset{-5, -4}}, {Offset{10, 6}, Offset{0, -13}}, {Offset{-11, 6}, Offset{-15, 6}},
	{Offset{7, 1}, Offset{11, -6}}, {Offset{-2, -10}, Offset{6, -4}}, {Offset{-17, 0}, Offset{17, 13}}, {Offset{-6, -4}, Offset{-10, 14}},
	{Offset{-3, -13}, Offset{4, 10}}, {Offset{-12, 2}, Offset{2, -19}}, {Offset{8, -9}, Offset{-1, -3}}, {Offset{-16, -2}, Offset{19, 6}},
	{Offset{-14, -14}, Offset{-2, -6}}, {Offset{-12, -5}, Offset{-9, -8}}, {Offset{15, -11}, Offset{-12, 3}}, {Offset{-1, 8}, Offset{6, -16}},
	{Offset{6, 5}, Offset{-8, -9}}, {Offset{2, 11}, Offset{-1, -1}}, {Offset{-1, 2}, Offset{-16, 6}}, {Offset{2, 2}, Offset{-1, -16}},
	{Offset{6, -13}, Offset{5, 9}}, {Offset{-14, -2}, Offset{8, -1}}, {Offset{-2, 2}, Offset{-9, 10}}, {Offset{7, -11}, Offset{-7, -7}},
	{Offset{1, 7}, Offset{10, -1}}, {Offset{-13, -7}, Offset{8, 7}}, {Offset{2, -6}, Offset{14, -1}}, {Offset{-1, 16}, Offset{7, 0}},
	{Offset{1, -16}, Offset{3, -6}}, {Offset{1, 1}, Offset{8, 5}}, {Offset{6, -13}, Offset{15, 2}}, {Offset{2, -7}, Offset{-2, -2}},
	{Offset{-16, 0}, Offset{-7, 5}}, {Offset{1, -5}, Offset{-1, -2}}, {Offset{4, 1}, Offset{10, -4}}, {Offset{14, 9}, Offset{-1, 3}},
	{Offset{8, -9}, Offset{5, 15}}, {Offset{1, 0}, Offset{-7, -2}}, {Offset{6, 6}, Offset{2, 13}}, {Offset{1, 2}, Offset{12, -3}},
	{Offset{-4, -6}, Offset{9, 8}}, {Offset{-4, 2}, Offset{-3, 0}}, {Offset{-8, 8}, Offset{5, -14}}, {Offset{-18, -4}, Offset{-1, -9}},
	{Offset{3, -7}, Offset{-5, -1}}, {Offset{-1, -7}, Offset{-4, 14}}, {Offset{-20, -1}, Offset{1, 0}}, {Offset{10, 0}, Offset{1, -5}},
	{Offset{-3, -6}, Offset{1, 14}}, {Offset{-4, -7}, Offset{-3, -2}}, {Offset{3, 12}, Offset{-3, 12}}, {Offset{8, -10}, Offset{-9, 4}},
	{Offset{7, -11}, Offset{0, -6}}, {Offset{3, -3}, Offset{-16, 7}}, {Offset{9, 5}, Offset{-12, -1}}, {Offset{5, 2}, Offset{-4, 6}},
	{Offset{-6, 10}, Offset{-14, -16}}, {Offset{-5, -3}, Offset{17, -16}}, {Offset{-5, -8}, Offset{14, 2}}, {Offset{-6, -4}, Offset{17, -13}},
	{Offset{2, 0}, Offset{8, -2}}, {Offset{-12, 10}, Offset{10, 20}}, {Offset{-2, -10}, Offset{8, -1}}, {Offset{-4, -12}, Offset{1, -12}},
	{Offset{9, -3}, Offset{-8, -2}}, {Offset{6, -15}, Offset{-12, -6}}, {Offset{4, -9}, Offset{15, 2}}, {Offset{-14, -11}, Offset{3, 0}},
	{Offset{5, 1}, Offset{6, 4}}, {Offset{11, 12}, Offset{1, 1}}, {Offset{-7, 8}, Offset{11, 9}}, {Offset{-13, -7}, Offset{14, 12}},
	{Offset{-2, -4}, Offset{3, 2}}, {Offset{-8, -11}, Offset{-8, -4}}, {Offset{-6, 1}, Offset{-11, 1}}, {Offset{17, 9}, Offset{-12, -1}},
	{Offset{8, 12}, Offset{19, 1}}, {Offset{9, -1}, Offset{-4, -11}}, {Offset{-1, 5}, Offset{-10, -5}}, {Offset{-3, -7}, Offset{3, -7}},
	{Offset{0, 4}, Offset{-10, 13}}, {Offset{-1, -6}, Offset{13, -10}}, {Offset{-2, 9}, Offset{-14, 6}}, {Offset{-13, -18}, Offset{3, -17}},
	{Offset{-9, -12}, Offset{-15, 5}}, {Offset{-4, -1}, Offset{-3, -4}}, {Offset{-10, 7}, Offset{5, 8}}, {Offset{9, 5}, Offset{-3, -1}},
	{Offset{-6, 9}, Offset{-16, 3}}, {Offset{2, -6}, Offset{-4, 9}}, {Offset{10, 3}, Offset{-12, -12}}, {Offset{8, -6}, Offset{-5, -1}},
	{Offset{14, -13}, Offset{0, 8}}, {Offset{-7, -9}, Offset{2, -4}}, {Offset{6, 2}, Offset{-6, 8}}, {Offset{-2, 13}, Offset{3, 1}},
	{Offset{11, 4}, Offset{8, 1}}, {Offset{-1, 16}, Offset{11, 17}}, {Offset{2, -5}, Offset{-9, 0}}, {Offset{-5, 11}, Offset{-11, 10}},
	{Offset{3, -2}, Offset{-4, 5}}, {Offset{-10, 7}, Offset{10, 16}}, {Offset{-6, 0}, Offset{-12, -4}}, {Offset{-1, -5}, Offset{7, -5}},
	{Offset{20, -11}, Offset{4, -2}}, {Offset{-6, 13}, Offset{-18, -16}}, {Offset{1, -9}, Offset{-8, 6}}, {Offset{1, -11}, Offset{19, 13}},
	{Offset{-12, 12}, Offset{13, -6}}, {Offset{-6, 4}, Offset{2, -6}}, {Offset{6, 5}, Offset{-12, 9}}, {Offset{-5, 3}, Offset{-1, 2}},
	{Offset{-9, 5}, Offset{-4, -7}}, {Offset{-6, -16}, Offset{-10, 14}}, {Offset{-17, -1}, Offset{-6, 5}}, {Offset{10, -11}, Offset{-5, 5}},
	{Offset{9, 11}, Offset{3, 8}}, {Offset{1, 7}, Offset{-3, -18}}, {Offset{1, 3}, Offset{-14, -9}}, {Offset{3, 5}, Offset{5, 0}},
	{Offset{-10, -11}, Offset{13, -3}}, {Offset{-2, -1}, Offset{11, -8}}, {Offset{-3, -7}, Offset{12, -3}}, {Offset{4, 18}, Offset{-6, 2}},
	{Offset{8, 3}, Offset{-2, -17}}, {Offset{14, 0}, Offset{-8, 3}}, {Offset{2, -3}, Offset{3, -10}}, {Offset{-14, 18}, Offset{-8, -2}},
	{Offset{-5, -11}, Offset{6, 5}}, {Offset{6, 3}, Offset{-4, 15}}, {Offset{0, 6}, Offset{-2, -10}}, {Offset{7, -6}, Offset{5, -6}},
	{Offset{2, 9}, Offset{8, 3}}, {Offset{5, 9}, Offset{10, 11}}, {Offset{-10, 9}, Offset{9, -4}}, {Offset{-3, -19}, Offset{11, 1}},
	{Offset{-3, 10}, Offset{-1, -8}}, {Offset{15, -3}, Offset{-11, 1}}, {Offset{4, -11}, Offset{-9, -12}}, {Offset{3, -3}, Offset{-5, 5}},
	{Offset{3, 7}, Offset{6, -8}}, {Offset{-5, -4}, Offset{2, 8}}, {Offset{-16, 7}, Offset{-2, 4}}, {Offset{-5, -12}, Offset{9, -19}},
	{Offset{1, -7}, Offset{-7, 8}}, {Offset{-8, 10}, Offset{7, 13}}, {Offset{-11, -6}, Offset{0, -4}}, {Offset{-12, 10}, Offset{13, 12}},
	{Offset{-5, -3}, Offset{15, -11}}, {Offset{4, -11}, Offset{2, 5}}, {Offset{-20, 9}, Offset{-13, -10}}, {Offset{-15, -9}, Offset{-2, -8}},
	{Offset{5, 7}, Offset{-5, 8}}, {Offset{-7, 13}, Offset{-4, -1}}, {Offset{3, -3}, Offset{15, 4}}, {Offset{-8, 13}, Offset{-5, -2}},
	{Offset{-9, -2}, Offset{-6, -19}}, {Offset{-7, -11}, Offset{-5, 0}}, {Offset{-1, -11}, Offset{-6, -18}}, {Offset{6, 20}, Offset{4, -13}},
	{Offset{-3, 15}, Offset{-4, -17}}, {Offset{-3, 0}, Offset{-6, 5}}, {Offset{-5, -4}, Offset{-11, -5}}, {Offset{-5, 3}, Offset{-3, 1}},
	{Offset{13, 4}, Offset{8, -7}}, {Offset{-8, -3}, Offset{5, 1}}, {Offset{2, 16}, Offset{-18, 6}}, {Offset{3, -7}, Offset{2, 13}},
	{Offset{-6, -12}, Offset{-16, -8}}, {Offset{-6, -13}, Offset{15, 13}}, {Offset{9, -9}, Offset{-10, 9}}, {Offset{-12, 10}, Offset{9, -18}},
	{Offset{6, -6}, Offset{-6, -7}}, {Offset{12, 6}, Offset{-11, 4}}, {Offset{1, 1}, Offset{1, 8}}, {Offset{-1, 11}, Offset{-14, -2}},
	{Offset{5, 2}, Offset{-1, 12}}, {Offset{1, -11}, Offset{-8, 7}}, {Offset{-9, -10}, Offset{1, 1}}, {Offset{0, -2}, Offset{11, -1}},
	{Offset{7, -9}, Offset{18, -8}}, {Offset{13, 7}, Offset{-5, -7}}, {Offset{-10, -3}, Offset{-11, 0}}, {Offset{1, -20}, Offset{2, -1}},
	{Offset{-14, -7}, Offset{-5, -11}}, {Offset{-11, 9}, Offset{17, -2}}, {Offset{8, -1}, Offset{-15, 1}}, {Offset{-11, -1}, Offset{0, 5}},
	{Offset{1, 8}, Offset{-3, -3}}, {Offset{-9, -5}, Offset{-2, 10}}, {Offset{9, 14}, Offset{3, -16}}, {Offset{-9, 6}, Offset{13, -2}},
	{Offset{9, -10}, Offset{-2, 5}}, {Offset{-3, 4}, Offset{4, -8}}, {Offset{-6, 1}, Offset{3, -5}}, {Offset{17, 10}, Offset{-10, 0}},
	{Offset{-8, -9}, Offset{10, 6}}, {Offset{8, -6}, Offset{5, 7}}, {Offset{8, 2}, Offset{3, 8}}, {Offset{-5, -8}, Offset{-17, 13}},
	{Offset{-12, -2}, Offset{-1, 0}}, {Offset{-9, 0}, Offset{4, 15}}, {Offset{-10, 5}, Offset{12, -7}}, {Offset{1, 2}, Offset{-5, 8}},
	{Offset{8, -4}, Offset{9, -10}}, {Offset{-5, -8}, Offset{5, -5}}, {Offset{16, -17}, Offset{6, -10}}, {Offset{-4, 4}, Offset{-8, -7}},
	{Offset{2, 0}, Offset{-1, 9}}, {Offset{12, 11}, Offset{8, -16}}, {Offset{-17, -2}, Offset{6, -4}}, {Offset{2, -10}, Offset{2, 4}},
	{Offset{1, 8}, Offset{-16, -8}}, {Offset{9, -13}, Offset{-3, -6}}, {Offset{-11, -13}, Offset{4, 12}}, {Offset{4, -9}, Offset{6, -3}},
	{Offset{9, 0}, Offset{-4, -17}}, {Offset{-4, 4}, Offset{-2, 0}}, {Offset{-1, -6}, Offset{10, 12}}, {Offset{-1, -10}, Offset{8, -2}},
	{Offset{5, 8}, Offset{10, -16}}, {Offset{-19, 16}, Offset{13, 18}}, {Offset{3, -3}, Offset{-11, 0}}, {Offset{0, -10}, Offset{18, -3}},
	{Offset{-3, 14}, Offset{-5, 2}}, {Offset{-6, 0}, Offset{2, 20}}, {Offset{-16, 7}, Offset{-19, 5}}, {Offset{-12, 9}, Offset{1, 4}},
	{Offset{7, 4}, Offset{6, -18}}, {Offset{10, 2}, Offset{0, -8}}, {Offset{-2, 6}, Offset{0, 5}}, {Offset{7, -1}, Offset{-2, 9}},
	{Offset{3, 8}, Offset{0, -2}}, {Offset{0, 0}, Offset{5, -9}}, {Offset{-13, 0}, Offset{-9, 6}}, {Offset{14, 6}, Offset{-18, 1}},
	{Offset{-4, -10}, Offset{8, 13}}, {Offset{14, 9}, Offset{-1, -4}}, {Offset{11, 4}, Offset{-7, -4}}, {Offset{-3, 0}, Offset{-12, 7}},
	{Offset{-16, -1}, Offset{-2, -1}}, {Offset{-6, -3}, Offset{-13, -7}}, {Offset{-17, 12}, Offset{-1, 7}}, {Offset{7, -10}, Offset{5, 4}},
	{Offset{-1, 4}, Offset{1, -8}}, {Offset{-8, 16}, Offset{0, -1}}, {Offset{5, -6}, Offset{9, -10}}, {Offset{14, 16}, Offset{0, 5}},
	{Offset{3, 10}, Offset{6, -4}}, {Offset{10, 0}, Offset{-10, 2}}, {Offset{-2, -5}, Offset{-2, -1}}, {Offset{1, -10}, Offset{12, -1}},
	{Offset{-13, 14}, Offset{7, 0}}, {Offset{12, 3}, Offset{-1, 4}}, {Offset{6, 1}, Offset{-1, 6}}, {Offset{2, 8}, Offset{-6, -4}},
	{Offset{-15, 16}, Offset{-8, -4}}, {Offset{6, 6}, Offset{4, -2}}, {Offset{-7, -9}, Offset{-3, 1}}, {Offset{-2, -17}, Offset{-14, 8}},
	{Offset{0, 0}, Offset{-2, -17}}, {Offset{7, 5}, Offset{5, -4}}, {Offset{-6, -5}, Offset{-5, -1}}, {Offset{-9, 8}, Offset{16, 2}},
	{Offset{17, 9}, Offset{1, 7}}, {Offset{1, -8}, Offset{-5, -10}}, {Offset{-8, 11}, Offset{18, 7}}, {Offset{11, 11}, Offset{6, 11}},
	{Offset{-5, 5}, Offset{1, 9}}, {Offset{-4, 3}, Offset{1, -14}}, {Offset{3, -6}, Offset{-1, -9}}, {Offset{-9, -7}, Offset{-6, -15}},
	{Offset{7, -1}, Offset{14, 11}}, {Offset{-2, -5}, Offset{10, 11}}, {Offset{16, 4}, Offset{-13, 11}}, {Offset{2, -18}, Offset{-4, 4}},
	{Offset{-6, -2}, Offset{12, 9}}, {Offset{9, 16}, Offset{5, -17}}, {Offset{20, 13}, Offset{7, -6}}, {Offset{7, -9}, Offset{-9, -4}},
	{Offset{-6, -10}, Offset{-7, 0}}, {Offset{-3, -5}, Offset{-5, -5}}, {Offset{11, 6}, Offset{-10, 10}}, {Offset{-1, -6}, Offset{2, -4}},
	{Offset{5, 14}, Offset{-1, 0}}, {Offset{14, 2}, Offset{-3, -5}}, {Offset{-5, 17}, Offset{10, 12}}, {Offset{7, 5}, Offset{-5, -3}},
	{Offset{-5, -13}, Offset{-19, 2}}, {Offset{10, 11}, Offset{10, -3}}, {Offset{7, -14}, Offset{-10, -2}}, {Offset{8, -8}, Offset{8, -1}},
	{Offset{-14, -7}, Offset{-9, 1}}, {Offset{-2, 12}, Offset{4, 11}}, {Offset{0, 0}, Offset{2, 6}}, {Offset{-11, -3}, Offset{4, 7}},
	{Offset{-1, -1}, Offset{6, -13}}, {Offset{-20, 2}, Offset{6, -6}}, {Offset{-12, 0}, Offset{-6, 11}}, {Offset{10, -15}, Offset{1, 7}},
	{Offset{-20, -4}, Offset{9, -3}}, {Offset{-11, -11}, Offset{-18, 10}}, {Offset{4, 20}, Offset{-5, -12}}, {Offset{-16, 6}, Offset{-11, -8}},
	{Offset{12, 0}, Offset{10, -18}}, {Offset{16, 10}, Offset{2, -4}}, {Offset{-5, -10}, Offset{9, -3}}, {Offset{-6, -19}, Offset{1, 9}},
	{Offset{5, 12}, Offset{8, 0}}, {Offset{11, 4}, Offset{4, -5}}, {Offset{3, -8}, Offset{4, -17}}, {Offset{-16, -16}, Offset{7, -11}},
	{Offset{-1, 10}, Offset{-6, -1}}, {Offset{9, 10}, Offset{-20, -11}}, {Offset{-13, 6}, Offset{-9, 6}}, {Offset{0, 6}, Offset{-2, -14}},
	{Offset{1, -13}, Offset{-18, 2}}, {Offset{-13, -8}, Offset{7, 15}}, {Offset{3, -2}, Offset{0, -7}}, {Offset{3, -2}, Offset{7, -6}},
	{Offset{-3, 6}, Offset{-5, 10}}, {Offset{-2, 3}, Offset{-2, 8}}, {Offset{1, -3}, Offset{-15, -9}}, {Offset{7, -2}, Offset{-12, 1}},
	{Offset{4, 6}, Offset{-20, 8}}, {Offset{10, 10}, Offset{-10, 7}}, {Offset{-6, 0}, Offset{-2, 1}}, {Offset{14, -18}, Offset{-1, 11}},
	{Offset{-11, 1}, Offset{4, -4}}, {Offset{-5, 5}, Offset{5, -8}}, {Offset{9, 2}, Offset{16, -6}}, {Offset{8, -17}, Offset{-11, -3}},
	{Offset{16, -5}, Offset{-6, 8}}, {Offset{15, 16}, Offset{-8, 9}}, {Offset{-8, 6}, Offset{11, 13}}, {Offset{0, -8}, Offset{1, -9}},
	{Offset{2, -6}, Offset{-8, 7}}, {Offset{-7, -13}, Offset{1, -1}}, {Offset{-2, -10}, Offset{-14, -10}}, {Offset{2, 9}, Offset{16, -11}},
	{Offset{-3, -8}, Offset{-1, -6}}, {Offset{-20, -1}, Offset{2, -9}}, {Offset{-4, 0}, Offset{4, -1}}, {Offset{20, -20}, Offset{-4, 3}},
	{Offset{-10, 1}, Offset{13, -10}}, {Offset{-4, -6}, Offset{2, -13}}, {Offset{-7, -2}, Offset{0, -7}}, {Offset{-10, 9}, Offset{-5, 5}},
	{Offset{0, 12}, Offset{9, 15}}, {Offset{-3, 7}, Offset{-2, 2}}, {Offset{-12, 6}, Offset{4, 0}}, {Offset{15, -1}, Offset{4, 2}},
	{Offset{0, 1}, Offset{-7, 9}}, {Offset{-16, 3}, Offset{5, 0}}, {Offset{-5, 2}, Offset{-7, 10}}, {Offset{9, -5}, Offset{-12, -3}},
	{Offset{-1, -2}, Offset{3, -9}}, {Offset{0, -8}, Offset{7, 1}}, {Offset{-5, 10}, Offset{-3, -13}}, {Offset{-6, 6}, Offset{-9, 7}},
	{Offset{-15, -13}, Offset{0, 10}}, {Offset{1, -3}, Offset{5, 3}}, {Offset{-2, -11}, Offset{-19, -8}}, {Offset{8, -6}, Offset{-2, 13}},
	{Offset{20, 6}, Offset{-5, -12}}, {Offset{10, 11}, Offset{2, -7}}, {Offset{0, -5}, Offset{2, -18}}, {Offset{-10, -3}, Offset{11, 17}},
	{Offset{-4, -4}, Offset{-7, 6}}, {Offset{4, -1}, Offset{-9, 2}}, {Offset{-4, 8}, Offset{5, 3}}, {Offset{15, -4}, Offset{-5, 1}},
	{Offset{-4, 7}, Offset{9, 4}}, {Offset{14, 4}, Offset{-4, -9}}, {Offset{-3, -19}, Offset{15, 8}}, {Offset{-6, -18}, Offset{4, 1}},
	{Offset{-9, -4}, Offset{19, 5}}, {Offset{12, -9}, Offset{-5, -4}}, {Offset{-8, 6}, Offset{-5, -5}}, {Offset{6, -7}, Offset{-14, -11}},
	{Offset{-2, -8}, Offset{4, 10}}, {Offset{10, 15}, Offset{0, -15}}, {Offset{-8, 2}, Offset{8, 13}}, {Offset{3, -13}, Offset{3, 5}},
	{Offset{2, 2}, Offset{5, 1}}, {Offset{1, -16}, Offset{0, 2}}, {Offset{3, 6}, Offset{4, -6}}, {Offset{-9, -9}, Offset{7, -6}},
	{Offset{8, 3}, Offset{0, 1}}, {Offset{-12, -3}, Offset{-16, -11}}, {Offset{-1, 2}, Offset{-4, -2}}, {Offset{13, -10}, Offset{-6, -1}},
	{Offset{3, -2}, Offset{-8, 3}}, {Offset{1, 5}, Offset{9, 18}}, {Offset{8, 4}, Offset{5, 9}}, {Offset{0, -7}, Offset{-19, 0}},
	{Offset{-8, 2}, Offset{2, -4}}, {Offset{0, 5}, Offset{6, -1}}, {Offset{-9, -8}, Offset{-13, -5}}, {Offset{-16, 3}, Offset{3, 9}},
	{Offset{3, -7}, Offset{2, -4}}, {Offset{2, 16}, Offset{-15, -11}}, {Offset{-1, 7}, Offset{6, -8}}, {Offset{4, -9}, Offset{10, 13}},
	{Offset{-9, -6}, Offset{2, -1}}, {Offset{5, 1}, Offset{-1, 2}}, {Offset{0, 2}, Offset{-8, -5}}, {Offset{-1, 10}, Offset{-18, -5}},
	{Offset{-8, 8}, Offset{-1, -2}}, {Offset{-5, -8}, Offset{14, -3}}, {Offset{-10, -1}, Offset{1, -4}}, {Offset{1, 5}, Offset{-4, -13}},
	{Offset{-7, -15}, Offset{-10, 12}}, {Offset{0, 5}, Offset{5, -5}}, {Offset{-11, -5}, Offset{-7, -13}}, {Offset{-19, 7}, Offset{1, 14}},
	{Offset{10, -3}, Offset{7, -3}}, {Offset{-9, -1}, Offset{-9, 6}}, {Offset{11, 8}, Offset{10, -12}}, {Offset{-9, 16}, Offset{3, -15}},
	{Offset{15, 4}, Offset{6, -14}}, {Offset{2, 9}, Offset{10, 8}}, {Offset{-2, -1}, Offset{-9, -12}}, {Offset{1, 19}, Offset{-16, 5}},
	{Offset{-5, -14}, Offset{-7, 7}}, {Offset{12, -5}, Offset{-5, -8}}, {Offset{-12, 0}, Offset{1, -5}}, {Offset{0, 3}, Offset{13, 2}},
	{Offset{1, 7}, Offset{17, 5}}, {Offset{3, -9}, Offset{3, -3}}, {Offset{4, 12}, Offset{-9, -11}}, {Offset{-7, -5}, Offset{8, 0}},
	{Offset{-2, 4}, Offset{0, 7}}, {Offset{-5, -17}, Offset{3, 11}}, {Offset{3, 12}, Offset{-1, 6}}, {Offset{-1, 7}, Offset{3, -9}},
	{Offset{16, 4}, Offset{-14, 16}}, {Offset{0, -4}, Offset{-2, 5}}, {Offset{-8, -16}, Offset{12, 16}}, {Offset{-9, -4}, Offset{-2, -10}},
	{Offset{-1, -4}, Offset{17, -1}}, {Offset{-1, -3}, Offset{9, -9}}, {Offset{4, -6}, Offset{-11, -3}}, {Offset{-11, -8}, Offset{5, 7}},
	{Offset{-4, -14}, Offset{2, -3}}, {Offset{-10, 9}, Offset{-8, 15}}, {Offset{-4, -9}, Offset{4, 13}}, {Offset{-1, 4}, Offset{-8, 9}},
	{Offset{0, -9}, Offset{2, 7}}, {Offset{5, 5}, Offset{1, -2}}, {Offset{-9, -14}, Offset{16, 1}}, {Offset{7, 3}, Offset{2, -10}},
	{Offset{-5, -1}, Offset{4, 3}}, {Offset{-12, -12}, Offset{0, -6}}, {Offset{3, -1}, Offset{-8, -19}}, {Offset{-6, -1}, Offset{7, -8}},
	{Offset{13, -12}, Offset{2, 4}}, {Offset{2, 8}, Offset{-10, -2}}, {Offset{10, 6}, Offset{13, -18}}, {Offset{5, -1}, Offset{12, 13}},
	{Offset{-4, -6}, Offset{1, -2}}, {Offset{-3, -13}, Offset{-4, -1}}, {Offset{-2, 8}, Offset{3, -1}}, {Offset{3, 10}, Offset{-9, -4}},
}
