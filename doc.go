// Package brief computes BRIEF binary descriptors for image keypoints.
//
// # Overview
//
// A BRIEF descriptor is a fixed-length bit string. Each bit is the outcome of
// one intensity comparison between two smoothed samples taken at fixed offsets
// around the keypoint. Smoothing is a box sum read in O(1) from a prefix-sum
// (integral) image. The offsets come from a process-wide test pattern shared by
// every backend, so a descriptor does not depend on where it was computed.
//
// # Quick Start
//
//	import "github.com/gogpu/brief"
//
//	ext, err := brief.NewExtractor()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ext.Close()
//
//	desc, err := ext.Compute(gray, keypoints)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i := 0; i < desc.Rows(); i++ {
//		fmt.Printf("%v -> %x\n", desc.Keypoints[i], desc.Row(i))
//	}
//
// Compute filters keypoints that sit too close to the image border before it
// allocates the output. The returned Descriptors.Keypoints shares the backing
// array of the input slice, and row i always belongs to Keypoints[i].
//
// # Backends
//
// The evaluation step is pluggable:
//   - "sequential": one goroutine, keypoint-major order. Reference output.
//   - "parallel": persistent worker pool, one disjoint row range per task.
//   - "gpu": WGSL compute shader on wgpu/hal.
//
// The GPU backend is enabled by a blank import:
//
//	import _ "github.com/gogpu/brief/gpu"
//
// Every backend produces byte-identical output for the same input. The GPU
// backend falls back to the parallel CPU backend when no adapter is present.
//
// # Bit Layout
//
// Test t is stored in byte t/8 of the row, most significant bit first: test 0
// is bit 7 of byte 0, test 7 is bit 0 of byte 0. A bit is 1 when the box sum
// at offset A is strictly greater than the box sum at offset B.
//
// # Orientation
//
// WithOrientation(true) rotates every test offset by the keypoint angle
// (degrees, OpenCV convention; negative means unoriented) and clamps the result
// to half the patch size. Rotation is computed once on the host, so all
// backends sample identical offsets.
package brief
