package numtheory

import "fmt"

// InvalidArgumentError reports a precondition violation on one of the public
// operations (negative exponent, non-positive modulus, zero rounds, ...).
// It is returned before any computation begins; no retries make sense, the
// caller passed a value the contract forbids.
type InvalidArgumentError struct {
	// Arg is the name of the offending argument.
	Arg string
	// Reason explains why the value was rejected.
	Reason string
}

// Error returns a formatted message describing the rejected argument.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// WorkerError reports that a worker of the concurrent primality tester
// terminated abnormally. A missing worker result is never interpreted as a
// pass; the whole call aborts with this error instead.
type WorkerError struct {
	// Worker is the index of the failed worker.
	Worker int
	// Cause is the underlying error reported by the worker.
	Cause error
}

// Error returns a formatted message including the worker index and cause.
func (e WorkerError) Error() string {
	return fmt.Sprintf("primality worker %d failed: %v", e.Worker, e.Cause)
}

// Unwrap returns the underlying cause, supporting errors.Is and errors.As.
func (e WorkerError) Unwrap() error { return e.Cause }
