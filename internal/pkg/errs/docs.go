// Package errs provides the standardized error types used across the courier
// dispatch application.
//
// Every error follows the same pattern:
//   - a sentinel variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() back to the sentinel
//
// Transport adapters map the sentinels to response codes (not found, bad
// request, conflict) without inspecting individual error structs.
package errs
