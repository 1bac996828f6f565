package brief

import "fmt"

// Reference configuration.
const (
	// DefaultPatchSize is the diameter of the sampling window around a keypoint.
	DefaultPatchSize = 48

	// DefaultKernelSize is the side of the square box-sum window.
	DefaultKernelSize = 9

	// DefaultDescriptorSize is the descriptor length in bytes (256 tests).
	DefaultDescriptorSize = 32
)

// Options holds the extractor configuration.
type Options struct {
	// PatchSize is the sampling window diameter. Half of it, plus half the
	// kernel, is the border margin. Half of it is also the clamp bound for
	// rotated offsets.
	PatchSize int

	// KernelSize is the side of the box-sum window. Must be odd.
	KernelSize int

	// DescriptorSize is the descriptor length in bytes: 16, 32 or 64.
	DescriptorSize int

	// UseOrientation rotates test offsets by each keypoint's angle.
	UseOrientation bool

	// Backend names a registered backend. Empty selects DefaultBackend.
	Backend string

	backend Backend
	pattern Pattern
}

// Option configures an Extractor during creation.
//
// Example:
//
//	ext, err := brief.NewExtractor(
//		brief.WithOrientation(true),
//		brief.WithBackend(brief.BackendParallel),
//	)
type Option func(*Options)

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		PatchSize:      DefaultPatchSize,
		KernelSize:     DefaultKernelSize,
		DescriptorSize: DefaultDescriptorSize,
	}
}

// WithPatchSize sets the sampling window diameter.
func WithPatchSize(n int) Option {
	return func(o *Options) {
		o.PatchSize = n
	}
}

// WithKernelSize sets the box-sum window side.
func WithKernelSize(n int) Option {
	return func(o *Options) {
		o.KernelSize = n
	}
}

// WithDescriptorSize sets the descriptor length in bytes.
func WithDescriptorSize(n int) Option {
	return func(o *Options) {
		o.DescriptorSize = n
	}
}

// WithOrientation toggles orientation-aware sampling.
func WithOrientation(enabled bool) Option {
	return func(o *Options) {
		o.UseOrientation = enabled
	}
}

// WithBackend selects a registered backend by name.
func WithBackend(name string) Option {
	return func(o *Options) {
		o.Backend = name
	}
}

// WithBackendInstance injects a backend directly, bypassing the registry.
// The extractor takes ownership and closes it on Close.
func WithBackendInstance(b Backend) Option {
	return func(o *Options) {
		o.backend = b
	}
}

// WithPattern replaces the built-in test pattern, e.g. with one read by
// ParseOpenCVPattern. The pattern must hold at least 8·DescriptorSize pairs.
func WithPattern(p Pattern) Option {
	return func(o *Options) {
		o.pattern = p
	}
}

// TestPattern returns the configured pattern, or DefaultPattern when none
// was set.
func (o Options) TestPattern() Pattern {
	if o.pattern.Len() == 0 {
		return DefaultPattern()
	}
	return o.pattern
}

// HalfKernel returns ⌊KernelSize/2⌋.
func (o Options) HalfKernel() int { return o.KernelSize / 2 }

// Margin returns the border margin a keypoint must keep from every edge.
func (o Options) Margin() int { return o.PatchSize/2 + o.KernelSize/2 }

// RotationBound returns the clamp applied to rotated offsets.
func (o Options) RotationBound() int { return o.PatchSize / 2 }

// Tests returns the number of pixel tests per descriptor.
func (o Options) Tests() int { return o.DescriptorSize * 8 }

// Validate reports whether the configuration can be sampled safely.
func (o Options) Validate() error {
	if o.KernelSize < 1 || o.KernelSize%2 == 0 {
		return fmt.Errorf("%w: kernel size %d must be odd and positive", ErrInvalidOptions, o.KernelSize)
	}
	if o.PatchSize < 2 {
		return fmt.Errorf("%w: patch size %d too small", ErrInvalidOptions, o.PatchSize)
	}
	switch o.DescriptorSize {
	case 16, 32, 64:
	default:
		return fmt.Errorf("%w: %d bytes", ErrDescriptorSize, o.DescriptorSize)
	}
	pat := o.TestPattern()
	if pat.Len() < o.Tests() {
		return fmt.Errorf("%w: pattern has %d pairs, %d-byte descriptors need %d",
			ErrInvalidOptions, pat.Len(), o.DescriptorSize, o.Tests())
	}
	// Unrotated offsets must stay inside the margin as well. OpenCV's
	// tables reach ±24, exactly half the reference patch.
	if ext := pat.Extent(o.Tests()); o.RotationBound() < ext {
		return fmt.Errorf("%w: patch size %d cannot hold pattern extent %d", ErrInvalidOptions, o.PatchSize, ext)
	}
	return nil
}
