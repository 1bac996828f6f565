package brief

import (
	"fmt"
	"slices"
	"sync"
)

// Backend name constants.
const (
	// BackendSequential evaluates on the calling goroutine. Reference output.
	BackendSequential = "sequential"
	// BackendParallel evaluates on a persistent goroutine pool.
	BackendParallel = "parallel"
	// BackendGPU evaluates with a wgpu compute shader. Registered by
	// importing github.com/gogpu/brief/gpu.
	BackendGPU = "gpu"
)

// Backend evaluates descriptor jobs.
//
// Every implementation computes the same function: for the same Job it must
// leave byte-identical contents in Job.Out. Backends are registered with
// RegisterBackend and selected by name or via DefaultBackend.
type Backend interface {
	// Name returns the backend identifier (e.g. "sequential", "gpu").
	Name() string

	// Init acquires backend resources. Called once before the first Evaluate.
	Init() error

	// Close releases backend resources.
	Close()

	// Evaluate fills job.Out, which arrives zeroed. It returns only after
	// every row is written. ErrFallbackToCPU asks the caller to rerun the
	// job on a CPU backend.
	Evaluate(job *Job) error
}

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for DefaultBackend (first registered wins).
	backendPriority = []string{BackendGPU, BackendParallel, BackendSequential}
)

// RegisterBackend registers a backend factory under name, replacing any
// previous registration. Typically called from init().
func RegisterBackend(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// UnregisterBackend removes a backend from the registry.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// AvailableBackends returns the registered backend names, sorted.
func AvailableBackends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewBackend creates an uninitialized backend instance by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// DefaultBackend returns a new instance of the highest-priority registered
// backend: gpu, then parallel, then sequential.
func DefaultBackend() (Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b, nil
			}
		}
	}
	// Fallback: any registered backend, in name order for stability.
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if b := backends[name](); b != nil {
			return b, nil
		}
	}
	return nil, ErrBackendNotAvailable
}
