//go:build !nogpu

// Package gpu registers the GPU descriptor backend.
//
// Import this package to make brief.BackendGPU available. DefaultBackend
// then prefers it over the CPU backends. The backend evaluates pixel tests
// with wgpu/hal compute shaders and produces exactly the bytes the
// sequential backend does.
//
// If GPU initialization fails (no Vulkan device available), the backend
// logs a warning and evaluates on the parallel CPU backend instead.
//
// Usage:
//
//	import _ "github.com/gogpu/brief/gpu" // enable GPU evaluation
package gpu

import (
	"github.com/gogpu/brief"
	gpuimpl "github.com/gogpu/brief/internal/gpu"
	"github.com/gogpu/gpucontext"
)

func init() {
	brief.RegisterBackend(brief.BackendGPU, func() brief.Backend {
		return gpuimpl.NewEvaluator()
	})
}

// SetDeviceProvider makes GPU backends created from now on share the device
// of an external provider (e.g., gogpu) instead of opening their own.
//
// The provider must also expose HalDevice() any and HalQueue() any for
// direct HAL access. Pass nil to go back to private devices.
func SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	return gpuimpl.SetSharedDevice(provider)
}
