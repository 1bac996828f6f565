//go:build !nogpu

package gpu

import (
	"encoding/binary"

	"github.com/gogpu/brief"
)

// paramsSize is the size of the shader's Params uniform.
const paramsSize = 32

// jobBuffers holds the host-side inputs of one job in the layout the shader
// reads. Centres and rotated offsets are computed by the shared Go code, so
// the shader only samples and compares.
type jobBuffers struct {
	sum     []byte // i32 per prefix-sum cell
	centers []byte // vec2<i32> per keypoint
	offsets []byte // vec4<i32> (A.dx, A.dy, B.dx, B.dy) per test, per keypoint when rotated

	keypoints   int
	tests       int
	stride      int
	halfKernel  int
	perKeypoint bool
}

func packJob(job *brief.Job) *jobBuffers {
	n := len(job.Keypoints)
	b := &jobBuffers{
		sum:         make([]byte, len(job.Sum.Data)*4),
		centers:     make([]byte, n*8),
		keypoints:   n,
		tests:       job.Tests,
		stride:      job.Sum.Stride,
		halfKernel:  job.HalfKernel,
		perKeypoint: job.UseOrientation,
	}

	for i, v := range job.Sum.Data {
		binary.LittleEndian.PutUint32(b.sum[i*4:], uint32(v)) //nolint:gosec // bit pattern preserved
	}
	for i := 0; i < n; i++ {
		x, y := job.Center(i)
		putInt32(b.centers[i*8:], x)
		putInt32(b.centers[i*8+4:], y)
	}

	if !b.perKeypoint {
		b.offsets = make([]byte, job.Tests*16)
		for t := 0; t < job.Tests; t++ {
			putPair(b.offsets[t*16:], job.Pattern.Pair(t))
		}
		return b
	}
	b.offsets = make([]byte, n*job.Tests*16)
	for i := 0; i < n; i++ {
		base := i * job.Tests
		for t := 0; t < job.Tests; t++ {
			putPair(b.offsets[(base+t)*16:], job.Pair(i, t))
		}
	}
	return b
}

// bitsSize is the size of the result buffer: one u32 per (keypoint, test).
func (b *jobBuffers) bitsSize() uint64 {
	return uint64(b.keypoints) * uint64(b.tests) * 4 //nolint:gosec // counts are non-negative
}

// largestBinding returns the size of the biggest storage binding.
func (b *jobBuffers) largestBinding() uint64 {
	return max(uint64(len(b.sum)), uint64(len(b.centers)), uint64(len(b.offsets)), b.bitsSize())
}

// params serializes the uniform for keypoints [base, base+count).
func (b *jobBuffers) params(base, count int) []byte {
	out := make([]byte, paramsSize)
	binary.LittleEndian.PutUint32(out[0:], uint32(b.stride)) //nolint:gosec // image dimensions fit uint32
	binary.LittleEndian.PutUint32(out[4:], uint32(count))    //nolint:gosec // chunk size fits uint32
	binary.LittleEndian.PutUint32(out[8:], uint32(base))     //nolint:gosec // keypoint index fits uint32
	binary.LittleEndian.PutUint32(out[12:], uint32(b.tests)) //nolint:gosec // at most 512 tests
	if b.perKeypoint {
		binary.LittleEndian.PutUint32(out[16:], 1)
	}
	putInt32(out[20:], b.halfKernel)
	return out
}

// unpackBits sets job bits from the shader's per-test results.
func unpackBits(readback []byte, job *brief.Job) {
	n := len(job.Keypoints)
	for i := 0; i < n; i++ {
		base := i * job.Tests
		for t := 0; t < job.Tests; t++ {
			if binary.LittleEndian.Uint32(readback[(base+t)*4:]) != 0 {
				job.SetBit(i, t)
			}
		}
	}
}

func putPair(dst []byte, tp brief.TestPair) {
	putInt32(dst[0:], tp.A.DX)
	putInt32(dst[4:], tp.A.DY)
	putInt32(dst[8:], tp.B.DX)
	putInt32(dst[12:], tp.B.DY)
}

func putInt32(dst []byte, v int) {
	binary.LittleEndian.PutUint32(dst, uint32(int32(v))) //nolint:gosec // two's complement on purpose
}
