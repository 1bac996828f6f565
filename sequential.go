package brief

// SequentialBackend evaluates keypoints one after another on the calling
// goroutine, tests in order within each keypoint. It is the ground truth the
// other backends are checked against.
type SequentialBackend struct{}

func init() {
	RegisterBackend(BackendSequential, func() Backend {
		return &SequentialBackend{}
	})
}

// NewSequentialBackend creates a sequential backend.
func NewSequentialBackend() *SequentialBackend {
	return &SequentialBackend{}
}

// Name returns the backend identifier.
func (*SequentialBackend) Name() string { return BackendSequential }

// Init is a no-op.
func (*SequentialBackend) Init() error { return nil }

// Close is a no-op.
func (*SequentialBackend) Close() {}

// Evaluate fills every row of job.Out.
func (*SequentialBackend) Evaluate(job *Job) error {
	job.EvaluateRange(0, len(job.Keypoints))
	return nil
}
