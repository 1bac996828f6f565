package brief

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("DefaultOptions().Validate() = %v", err)
	}

	checks := []struct {
		name      string
		got, want int
	}{
		{"HalfKernel", o.HalfKernel(), 4},
		{"Margin", o.Margin(), 28},
		{"RotationBound", o.RotationBound(), 24},
		{"Tests", o.Tests(), 256},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s() = %d, want %d", c.name, c.got, c.want)
		}
	}
	if o.UseOrientation {
		t.Error("orientation should be disabled by default")
	}
}

func TestOptionsValidate(t *testing.T) {
	reach24 := constantPattern(t, 256, TestPair{A: Offset{DX: 24}, B: Offset{DY: -24}})
	reach25 := constantPattern(t, 256, TestPair{A: Offset{DX: 25}, B: Offset{DY: -1}})
	short := constantPattern(t, 128, TestPair{A: Offset{DX: 1}, B: Offset{DY: 1}})

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"default", nil, nil},
		{"16 bytes", []Option{WithDescriptorSize(16)}, nil},
		{"64 bytes", []Option{WithDescriptorSize(64)}, nil},
		{"oriented", []Option{WithOrientation(true)}, nil},
		{"kernel 5", []Option{WithKernelSize(5)}, nil},
		{"larger patch", []Option{WithPatchSize(64)}, nil},
		{"descriptor 8", []Option{WithDescriptorSize(8)}, ErrDescriptorSize},
		{"descriptor 33", []Option{WithDescriptorSize(33)}, ErrDescriptorSize},
		{"even kernel", []Option{WithKernelSize(8)}, ErrInvalidOptions},
		{"zero kernel", []Option{WithKernelSize(0)}, ErrInvalidOptions},
		{"tiny patch", []Option{WithPatchSize(1)}, ErrInvalidOptions},
		{"patch smaller than pattern", []Option{WithPatchSize(30)}, ErrInvalidOptions},
		{"pattern reaching the patch edge", []Option{WithPattern(reach24)}, nil},
		{"pattern beyond the patch", []Option{WithPattern(reach25)}, ErrInvalidOptions},
		{"pattern shorter than descriptor", []Option{WithPattern(short)}, ErrInvalidOptions},
		{"short pattern, short descriptor", []Option{WithPattern(short), WithDescriptorSize(16)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			err := o.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewExtractorRejectsInvalidOptions(t *testing.T) {
	mock := &mockBackend{name: "never-used"}
	_, err := NewExtractor(WithDescriptorSize(7), WithBackendInstance(mock))
	if !errors.Is(err, ErrDescriptorSize) {
		t.Fatalf("NewExtractor() error = %v, want ErrDescriptorSize", err)
	}
	if mock.inits != 0 {
		t.Error("backend was initialized despite invalid options")
	}
}

func TestWithBackend(t *testing.T) {
	ext, err := NewExtractor(WithBackend(BackendSequential))
	if err != nil {
		t.Fatalf("NewExtractor() = %v", err)
	}
	defer ext.Close()

	if ext.BackendName() != BackendSequential {
		t.Errorf("BackendName() = %q, want %q", ext.BackendName(), BackendSequential)
	}

	_, err = NewExtractor(WithBackend("missing"))
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewExtractor(missing) error = %v, want ErrUnknownBackend", err)
	}
}

func TestWithBackendInstance(t *testing.T) {
	mock := &mockBackend{name: "injected"}
	ext, err := NewExtractor(WithBackendInstance(mock), WithBackend(BackendSequential))
	if err != nil {
		t.Fatalf("NewExtractor() = %v", err)
	}

	// The injected instance wins over the name.
	if ext.BackendName() != "injected" {
		t.Errorf("BackendName() = %q, want injected", ext.BackendName())
	}
	if mock.inits != 1 {
		t.Errorf("Init called %d times, want 1", mock.inits)
	}

	ext.Close()
	ext.Close()
	if mock.closes != 1 {
		t.Errorf("Close called %d times on backend, want 1", mock.closes)
	}
}

func TestNewExtractorInitError(t *testing.T) {
	initErr := errors.New("device lost")
	_, err := NewExtractor(WithBackendInstance(&mockBackend{name: "broken", initErr: initErr}))
	if !errors.Is(err, initErr) {
		t.Errorf("NewExtractor() error = %v, want wrapped %v", err, initErr)
	}
}
