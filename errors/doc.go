// Package errors provides standardized error handling patterns for RingKit components.
//
// # Overview
//
// The errors package implements a three-class error classification system: Transient
// (temporary, the caller may retry), Invalid (bad input or arguments, do not retry),
// and Fatal (unrecoverable, stop processing).
//
// For a container library almost every failure is a caller error, so the standard
// error variables exported here all classify as Invalid. The full three-class
// machinery is kept because the observability layer produces Transient and Fatal
// conditions (metric registration against a shared Prometheus registry can fail
// transiently during reconfiguration or fatally on programmer error), and because
// it integrates with Go's standard error handling via errors.Is(), errors.As(),
// and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if r.IsFull() {
//	    return errors.ErrBufferFull
//	}
//
// Wrap errors with context for debugging:
//
//	if err := reg.RegisterCounter(name, "pushes", counter); err != nil {
//	    return errors.Wrap(err, "Ring", "New", "metrics registration")
//	}
//
// Check classification at the call site:
//
//	if err := r.PushBack(v); err != nil {
//	    if errors.IsInvalid(err) {
//	        // caller bug or full buffer: drain or resize, do not retry blindly
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() adds context without attaching a class.
//
// # Standard Error Variables
//
// Capacity and size validation:
//
//	ErrInvalidCapacity  // requested capacity is negative
//	ErrInvalidSize      // resize target is negative or exceeds capacity
//
// Access:
//
//	ErrIndexOutOfRange  // logical index or range outside the live element range
//
// Occupancy:
//
//	ErrBufferFull   // insertion attempted on a full buffer
//	ErrBufferEmpty  // removal or front/back access attempted on an empty buffer
//
// Observability:
//
//	ErrDuplicateMetric  // metric name already registered for this owner
//
// All sentinels survive wrapping, so callers can always test with errors.Is:
//
//	if errors.Is(err, errors.ErrBufferFull) { ... }
package errors
