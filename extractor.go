package brief

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// Extractor computes BRIEF descriptors with a fixed configuration and backend.
//
// An Extractor is safe for concurrent use as long as its backend is; the
// built-in backends are.
type Extractor struct {
	opts    Options
	pattern Pattern

	mu      sync.Mutex
	backend Backend
	closed  bool
}

// NewExtractor creates an extractor from the reference configuration
// modified by opts. The backend is chosen in this order: an instance passed
// with WithBackendInstance, a name passed with WithBackend, DefaultBackend.
func NewExtractor(opts ...Option) (*Extractor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	b, err := selectBackend(o)
	if err != nil {
		return nil, err
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("brief: init %s backend: %w", b.Name(), err)
	}
	trackBackend(b)

	Logger().Debug("brief: extractor created",
		"backend", b.Name(),
		"descriptor_size", o.DescriptorSize,
		"orientation", o.UseOrientation,
	)
	return &Extractor{opts: o, pattern: o.TestPattern(), backend: b}, nil
}

func selectBackend(o Options) (Backend, error) {
	switch {
	case o.backend != nil:
		return o.backend, nil
	case o.Backend != "":
		return NewBackend(o.Backend)
	default:
		return DefaultBackend()
	}
}

// Options returns the extractor configuration.
func (e *Extractor) Options() Options {
	o := e.opts
	o.backend = nil
	return o
}

// BackendName returns the name of the backend in use.
func (e *Extractor) BackendName() string {
	return e.backend.Name()
}

// Compute filters keypoints against the image border and returns one
// descriptor per survivor, in input order.
//
// The keypoints slice is reused for the survivors, as with FilterBorder.
// Pass a copy to keep the original.
func (e *Extractor) Compute(img *image.Gray, keypoints []Keypoint) (*Descriptors, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return e.ComputePrefixSum(NewPrefixSum(img), keypoints)
}

// ComputeImage converts img to grayscale and calls Compute.
func (e *Extractor) ComputeImage(img image.Image, keypoints []Keypoint) (*Descriptors, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return e.Compute(ToGray(img), keypoints)
}

// ComputePrefixSum is Compute for a prebuilt integral image. Callers that
// describe several keypoint sets on one image build the prefix sum once.
func (e *Extractor) ComputePrefixSum(sum *PrefixSum, keypoints []Keypoint) (*Descriptors, error) {
	if sum == nil {
		return nil, ErrNilImage
	}

	e.mu.Lock()
	b, closed := e.backend, e.closed
	e.mu.Unlock()
	if closed {
		return nil, ErrExtractorClosed
	}

	in := len(keypoints)
	kept := FilterBorder(keypoints, sum.Width, sum.Height, e.opts.Margin())
	size := e.opts.DescriptorSize

	job := &Job{
		Sum:            sum,
		Keypoints:      kept,
		Pattern:        e.pattern,
		Tests:          e.opts.Tests(),
		HalfKernel:     e.opts.HalfKernel(),
		RotationBound:  e.opts.RotationBound(),
		UseOrientation: e.opts.UseOrientation,
		Out:            make([]byte, len(kept)*size),
	}

	if len(kept) > 0 {
		if err := e.evaluate(b, job); err != nil {
			return nil, err
		}
	}

	Logger().Debug("brief: computed descriptors",
		"backend", b.Name(),
		"keypoints", in,
		"kept", len(kept),
		"width", sum.Width,
		"height", sum.Height,
	)
	return &Descriptors{Keypoints: kept, Data: job.Out, Size: size}, nil
}

func (e *Extractor) evaluate(b Backend, job *Job) error {
	err := b.Evaluate(job)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrFallbackToCPU) {
		return fmt.Errorf("brief: %s backend: %w", b.Name(), err)
	}

	Logger().Warn("brief: backend fell back to CPU", "backend", b.Name(), "err", err)
	clear(job.Out)
	return NewSequentialBackend().Evaluate(job)
}

// Close releases the backend. Compute returns ErrExtractorClosed afterwards.
// Close is safe to call multiple times.
func (e *Extractor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	b := e.backend
	e.mu.Unlock()

	untrackBackend(b)
	b.Close()
}

// Compute describes keypoints on img with a one-off extractor built from
// opts. Use an Extractor to amortize backend setup over many images.
func Compute(img *image.Gray, keypoints []Keypoint, opts ...Option) (*Descriptors, error) {
	ext, err := NewExtractor(opts...)
	if err != nil {
		return nil, err
	}
	defer ext.Close()
	return ext.Compute(img, keypoints)
}
