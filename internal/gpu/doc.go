//go:build !nogpu

// Package gpu evaluates BRIEF descriptor jobs with a wgpu/hal compute shader.
//
// The host does everything that depends on floating point or rounding:
// keypoint centres and rotated test offsets come from the same Go code the
// CPU backends use. The shader only reads four corners of the integral image
// per sample and compares two box sums, so GPU output is byte-identical to
// the sequential backend.
//
// Each (keypoint, test) pair is one invocation writing one u32 result;
// the host packs results into descriptor bits. Keypoints are dispatched in
// chunks of at most 65535, each with its own uniform buffer and bind group.
//
// When no Vulkan device is available the Evaluator keeps working on a
// parallel CPU backend. Jobs too large for a storage binding return an
// error wrapping brief.ErrFallbackToCPU.
package gpu
