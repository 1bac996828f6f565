package brief

import "errors"

// Common errors.
var (
	// ErrNilImage is returned when Compute is called without an image.
	ErrNilImage = errors.New("brief: nil image")

	// ErrInvalidOptions is returned by NewExtractor when Options.Validate fails.
	ErrInvalidOptions = errors.New("brief: invalid options")

	// ErrDescriptorSize is returned for descriptor lengths other than 16, 32 or 64 bytes.
	ErrDescriptorSize = errors.New("brief: unsupported descriptor size")

	// ErrUnknownBackend is returned when a backend name is not registered.
	ErrUnknownBackend = errors.New("brief: unknown backend")

	// ErrBackendNotAvailable is returned when no backend is registered at all.
	ErrBackendNotAvailable = errors.New("brief: no backend available")

	// ErrExtractorClosed is returned by Compute after Close.
	ErrExtractorClosed = errors.New("brief: extractor closed")

	// ErrInvalidPattern indicates a test pattern that cannot be used or parsed.
	ErrInvalidPattern = errors.New("brief: invalid test pattern")

	// ErrFallbackToCPU indicates an accelerator could not evaluate a job.
	// The extractor transparently reruns the job on a CPU backend.
	ErrFallbackToCPU = errors.New("brief: falling back to CPU evaluation")
)
