//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/brief"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

const (
	// workgroupSize matches @workgroup_size in the shader.
	workgroupSize = 64

	// maxChunkKeypoints keeps the Y dispatch dimension within the
	// guaranteed 65535 workgroups.
	maxChunkKeypoints = 65535

	// maxBindingBytes is the largest storage binding the evaluator
	// creates. Larger jobs go back to the CPU.
	maxBindingBytes = 128 << 20

	fenceTimeout = 5 * time.Second
)

// errTooLarge is wrapped with brief.ErrFallbackToCPU for oversized jobs.
var errTooLarge = errors.New("job exceeds GPU binding limit")

// Evaluator runs descriptor jobs as a wgpu/hal compute pass. It implements
// brief.Backend.
//
// When no GPU can be opened, Init still succeeds and Evaluate runs on a
// parallel CPU backend, so the output never depends on hardware.
type Evaluator struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	cpuFallback    *brief.ParallelBackend
	gpuReady       bool
	externalDevice bool // true when using shared device (don't destroy on Close)
	adapterName    string
}

var _ brief.Backend = (*Evaluator)(nil)

// NewEvaluator creates an uninitialized GPU evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{cpuFallback: brief.NewParallelBackend(0)}
}

// Name returns brief.BackendGPU.
func (e *Evaluator) Name() string { return brief.BackendGPU }

// Init opens a GPU device, or the shared device set with SetSharedDevice,
// and builds the compute pipeline. GPU failures are logged and leave the
// evaluator on its CPU fallback.
func (e *Evaluator) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.cpuFallback.Init(); err != nil {
		return err
	}
	if device, queue, ok := sharedDevice(); ok {
		if err := e.useDeviceLocked(device, queue); err != nil {
			logger().Warn("brief/gpu: shared device unusable, using CPU fallback", "err", err)
		}
		return nil
	}
	if err := e.initGPU(); err != nil {
		logger().Warn("brief/gpu: GPU init failed, using CPU fallback", "err", err)
	}
	return nil
}

// Close releases GPU resources. Shared devices are left alone.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseLocked()
	e.cpuFallback.Close()
}

func (e *Evaluator) releaseLocked() {
	e.destroyPipeline()
	if !e.externalDevice {
		if e.device != nil {
			e.device.Destroy()
		}
		if e.instance != nil {
			e.instance.Destroy()
		}
	}
	e.device = nil
	e.instance = nil
	e.queue = nil
	e.gpuReady = false
	e.externalDevice = false
	e.adapterName = ""
}

// SetLogger receives the logger from brief.SetLogger.
func (e *Evaluator) SetLogger(l *slog.Logger) {
	useLogger(l)
}

// Ready reports whether jobs run on the GPU rather than the CPU fallback.
func (e *Evaluator) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gpuReady
}

// SetDeviceProvider switches the evaluator to a device owned by provider.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func (e *Evaluator) SetDeviceProvider(provider any) error {
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.releaseLocked()
	if err := e.useDeviceLocked(device, queue); err != nil {
		return fmt.Errorf("brief/gpu: create pipeline with shared device: %w", err)
	}
	logger().Info("brief/gpu: switched to shared GPU device")
	return nil
}

func (e *Evaluator) useDeviceLocked(device hal.Device, queue hal.Queue) error {
	e.device = device
	e.queue = queue
	e.externalDevice = true
	if err := e.createPipeline(); err != nil {
		e.gpuReady = false
		return err
	}
	e.gpuReady = true
	return nil
}

// Evaluate fills job.Out. It returns an error wrapping
// brief.ErrFallbackToCPU when the GPU cannot run the job.
func (e *Evaluator) Evaluate(job *brief.Job) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(job.Keypoints) == 0 {
		return nil
	}
	if !e.gpuReady {
		return e.cpuFallback.Evaluate(job)
	}

	bufs := packJob(job)
	if size := bufs.largestBinding(); size > maxBindingBytes {
		return fmt.Errorf("brief/gpu: %w (%d bytes): %w", errTooLarge, size, brief.ErrFallbackToCPU)
	}
	if err := e.dispatch(job, bufs); err != nil {
		logger().Warn("brief/gpu: dispatch failed", "keypoints", bufs.keypoints, "err", err)
		return fmt.Errorf("brief/gpu: %w: %w", err, brief.ErrFallbackToCPU)
	}
	logger().Debug("brief/gpu: evaluated job",
		"keypoints", bufs.keypoints,
		"tests", bufs.tests,
		"rotated", bufs.perKeypoint,
	)
	return nil
}

// dispatch uploads the job, runs one compute pass per keypoint chunk and
// reads the results back. One submit and one fence wait per job.
func (e *Evaluator) dispatch(job *brief.Job, bufs *jobBuffers) error {
	sumBuf, err := e.uploadStorage("brief_sum", bufs.sum)
	if err != nil {
		return err
	}
	defer e.device.DestroyBuffer(sumBuf)

	centersBuf, err := e.uploadStorage("brief_centers", bufs.centers)
	if err != nil {
		return err
	}
	defer e.device.DestroyBuffer(centersBuf)

	offsetsBuf, err := e.uploadStorage("brief_offsets", bufs.offsets)
	if err != nil {
		return err
	}
	defer e.device.DestroyBuffer(offsetsBuf)

	bitsSize := bufs.bitsSize()
	bitsBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "brief_bits", Size: bitsSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create bits buffer: %w", err)
	}
	defer e.device.DestroyBuffer(bitsBuf)

	stagingBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "brief_staging", Size: bitsSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer e.device.DestroyBuffer(stagingBuf)

	storage := [4]bindingBuffer{
		{sumBuf, uint64(len(bufs.sum))},
		{centersBuf, uint64(len(bufs.centers))},
		{offsetsBuf, uint64(len(bufs.offsets))},
		{bitsBuf, bitsSize},
	}
	chunks, err := e.createChunkBindings(bufs, storage)
	defer e.cleanupChunks(chunks)
	if err != nil {
		return err
	}

	if err := e.encodeAndWait(chunks, bufs.tests, bitsBuf, stagingBuf, bitsSize); err != nil {
		return err
	}

	readback := make([]byte, bitsSize)
	if err := e.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	unpackBits(readback, job)
	return nil
}

type bindingBuffer struct {
	buf  hal.Buffer
	size uint64
}

// chunkBinding is the uniform and bind group of one keypoint chunk.
type chunkBinding struct {
	uniform hal.Buffer
	group   hal.BindGroup
	count   int
}

func (e *Evaluator) uploadStorage(label string, data []byte) (hal.Buffer, error) {
	buf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label, Size: uint64(len(data)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s buffer: %w", label, err)
	}
	e.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// createChunkBindings creates one uniform buffer and bind group per chunk of
// at most maxChunkKeypoints keypoints. All chunks share the storage buffers.
func (e *Evaluator) createChunkBindings(bufs *jobBuffers, storage [4]bindingBuffer) ([]chunkBinding, error) {
	var chunks []chunkBinding
	for base := 0; base < bufs.keypoints; base += maxChunkKeypoints {
		count := min(maxChunkKeypoints, bufs.keypoints-base)

		ub, err := e.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "brief_params", Size: paramsSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return chunks, fmt.Errorf("create uniform buffer at keypoint %d: %w", base, err)
		}
		e.queue.WriteBuffer(ub, 0, bufs.params(base, count))
		chunk := chunkBinding{uniform: ub, count: count}

		entries := []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: paramsSize}},
		}
		for i, sb := range storage {
			entries = append(entries, gputypes.BindGroupEntry{
				Binding:  uint32(i + 1), //nolint:gosec // binding index is small
				Resource: gputypes.BufferBinding{Buffer: sb.buf.NativeHandle(), Offset: 0, Size: sb.size},
			})
		}
		bg, err := e.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label: "brief_bind", Layout: e.bindLayout, Entries: entries,
		})
		if err != nil {
			chunks = append(chunks, chunk)
			return chunks, fmt.Errorf("create bind group at keypoint %d: %w", base, err)
		}
		chunk.group = bg
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

func (e *Evaluator) cleanupChunks(chunks []chunkBinding) {
	for _, c := range chunks {
		if c.group != nil {
			e.device.DestroyBindGroup(c.group)
		}
		if c.uniform != nil {
			e.device.DestroyBuffer(c.uniform)
		}
	}
}

func (e *Evaluator) encodeAndWait(chunks []chunkBinding, tests int, bitsBuf, stagingBuf hal.Buffer, bitsSize uint64) error {
	encoder, err := e.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "brief_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("brief_tests"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	groupsX := uint32((tests + workgroupSize - 1) / workgroupSize) //nolint:gosec // at most 512 tests
	for _, c := range chunks {
		pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "brief_pass"})
		pass.SetPipeline(e.pipeline)
		pass.SetBindGroup(0, c.group, nil)
		pass.Dispatch(groupsX, uint32(c.count), 1) //nolint:gosec // chunk size <= 65535
		pass.End()
	}

	encoder.CopyBufferToBuffer(bitsBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: bitsSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	fence, err := e.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer e.device.DestroyFence(fence)
	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := e.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

func (e *Evaluator) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	e.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	e.device = openDev.Device
	e.queue = openDev.Queue
	if err := e.createPipeline(); err != nil {
		e.device.Destroy()
		e.device = nil
		e.queue = nil
		return fmt.Errorf("create pipeline: %w", err)
	}
	e.gpuReady = true
	e.adapterName = selected.Info.Name
	logger().Info("brief/gpu: GPU evaluator initialized", "adapter", selected.Info.Name)
	return nil
}

func (e *Evaluator) createPipeline() error {
	spirv, err := compiledShader()
	if err != nil {
		return err
	}
	shader, err := createShaderModule(e.device, "brief_tests", spirv)
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	e.shader = shader

	entry := func(binding uint32, t gputypes.BufferBindingType) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding: binding, Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{Type: t},
		}
	}
	bindLayout, err := e.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "brief_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			entry(0, gputypes.BufferBindingTypeUniform),
			entry(1, gputypes.BufferBindingTypeReadOnlyStorage),
			entry(2, gputypes.BufferBindingTypeReadOnlyStorage),
			entry(3, gputypes.BufferBindingTypeReadOnlyStorage),
			entry(4, gputypes.BufferBindingTypeStorage),
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	e.bindLayout = bindLayout

	pipeLayout, err := e.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "brief_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{e.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	e.pipeLayout = pipeLayout

	pipeline, err := e.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "brief_pipeline", Layout: e.pipeLayout,
		Compute: hal.ComputeState{Module: e.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	e.pipeline = pipeline
	return nil
}

func (e *Evaluator) destroyPipeline() {
	if e.device == nil {
		return
	}
	if e.pipeline != nil {
		e.device.DestroyComputePipeline(e.pipeline)
		e.pipeline = nil
	}
	if e.pipeLayout != nil {
		e.device.DestroyPipelineLayout(e.pipeLayout)
		e.pipeLayout = nil
	}
	if e.bindLayout != nil {
		e.device.DestroyBindGroupLayout(e.bindLayout)
		e.bindLayout = nil
	}
	if e.shader != nil {
		e.device.DestroyShaderModule(e.shader)
		e.shader = nil
	}
}
