// Package apperrors defines structured application error types for the
// rcrypt CLI, allowing for a clear distinction between error classes
// (configuration, computation, timeout) and for carrying the underlying
// cause. Domain errors of the number-theory library itself live in the
// numtheory package.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All wrapping error types implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors
