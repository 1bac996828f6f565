package brief

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// opencvTerm matches the byte assignments and pixel tests of OpenCV's
// generated_16.i, generated_32.i and generated_64.i:
//
//	desc[0] = (uchar)(((SMOOTHED(-2, -1) < SMOOTHED(7, -1)) << 7) +
var opencvTerm = regexp.MustCompile(
	`desc\[(\d+)\]` +
		`|SMOOTHED\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)\s*<\s*SMOOTHED\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)\s*\)\s*<<\s*(\d+)`)

// ParseOpenCVPattern reads a test table in the format of OpenCV's generated
// BRIEF sources. SMOOTHED takes (y, x) and OpenCV sets a bit when the first
// sum is smaller, so each test becomes A = second point, B = first point.
// Bit positions come from the desc index and shift of every term, which
// keeps the MSB-first order of the source.
func ParseOpenCVPattern(r io.Reader) (Pattern, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	tests := make(map[int]TestPair)
	row := -1
	for _, m := range opencvTerm.FindAllSubmatch(src, -1) {
		if m[1] != nil {
			row = atoi(m[1])
			continue
		}
		if row < 0 {
			return Pattern{}, fmt.Errorf("%w: pixel test before the first desc[] assignment", ErrInvalidPattern)
		}
		shift := atoi(m[6])
		if shift > 7 {
			return Pattern{}, fmt.Errorf("%w: desc[%d] shift %d", ErrInvalidPattern, row, shift)
		}
		t := row*8 + 7 - shift
		if _, dup := tests[t]; dup {
			return Pattern{}, fmt.Errorf("%w: test %d defined twice", ErrInvalidPattern, t)
		}
		y1, x1, y2, x2 := atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5])
		tests[t] = TestPair{A: Offset{DX: x2, DY: y2}, B: Offset{DX: x1, DY: y1}}
	}

	pairs := make([]TestPair, len(tests))
	for t, tp := range tests {
		if t >= len(pairs) {
			return Pattern{}, fmt.Errorf("%w: %d tests are not numbered contiguously", ErrInvalidPattern, len(pairs))
		}
		pairs[t] = tp
	}
	return NewPattern(pairs)
}

// atoi parses a regexp capture that is known to be a decimal integer.
func atoi(b []byte) int {
	n, _ := strconv.Atoi(string(b))
	return n
}
