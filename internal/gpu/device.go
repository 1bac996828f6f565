//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"
)

// shared holds a device owned by the host application. Evaluators created
// after SetSharedDevice use it instead of opening their own.
var shared struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
}

// SetSharedDevice makes evaluators initialized from now on use the device
// and queue exposed by provider. Passing nil restores per-evaluator devices.
func SetSharedDevice(provider any) error {
	if provider == nil {
		shared.mu.Lock()
		shared.device, shared.queue = nil, nil
		shared.mu.Unlock()
		return nil
	}
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return err
	}
	shared.mu.Lock()
	shared.device, shared.queue = device, queue
	shared.mu.Unlock()
	return nil
}

func sharedDevice() (hal.Device, hal.Queue, bool) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return shared.device, shared.queue, shared.device != nil
}

// halFromProvider extracts HAL handles from a provider implementing
// HalDevice() any and HalQueue() any.
func halFromProvider(provider any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("brief/gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("brief/gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("brief/gpu: provider HalQueue is not hal.Queue")
	}
	return device, queue, nil
}
