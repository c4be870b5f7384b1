// Package errors provides standardized error handling for the fifo module.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, clears as the queue drains or fills), Invalid
// (bad input, non-retryable), and Fatal (unrecoverable, stop processing).
//
// This classification lets embedding hosts make informed decisions about
// backpressure, retries, and failure escalation without hardcoded error
// string matching.
//
// # Error Classification
//
// Errors are classified by identity, never by message content:
//
//   - Transient: ErrFull, ErrEmpty. The condition clears as soon as the
//     opposite side of the queue makes progress.
//   - Invalid: ErrInvalidCapacity, ErrStorageMismatch, ErrNilVisitor.
//     Caller bugs; retrying the same call cannot succeed.
//   - Fatal: never produced by the queue itself; reserved for explicitly
//     classified errors from embedding hosts.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Hot-path failures come back as bare sentinels:
//
//	if err := q.Push(handle); errors.Is(err, errors.ErrFull) {
//	    // shed load or drain before retrying
//	}
//
// Check classification when the error source is not known statically:
//
//	if err := operation(); err != nil {
//	    if errors.IsTransient(err) {
//	        // safe to retry once the queue has moved
//	    } else if errors.IsInvalid(err) {
//	        // fix the call site; retrying cannot help
//	    }
//	}
//
// # Error Wrapping Pattern
//
// Construction-time failures are wrapped with context following the
// standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() adds context without forcing a class, preserving the
// original error's classification through the chain.
//
// # Standard Error Variables
//
// Use the pre-defined variables instead of creating custom messages:
//
//	// Good - uses standard variable
//	if depth == 0 {
//	    return errors.ErrEmpty
//	}
//
//	// Avoid - custom error message
//	if depth == 0 {
//	    return errors.New("queue empty")
//	}
//
// Sentinels are returned bare from Push/Pop/Peek so a failed operation
// allocates nothing; only constructor failures pay for wrapping.
//
// # Foreign Errors
//
// Traversal relays visitor errors verbatim, so arbitrary caller errors
// flow through queue APIs. Classification deliberately refuses to guess
// at their content: an unrecognized error defaults to transient, and no
// substring matching is applied. Hosts that need finer classes should
// wrap their visitor errors with the Wrap family before returning them.
//
// # Integration with errors.As/Is
//
//	// Check error classification and context
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	// Classification is preserved through error chains
//	wrapped := errors.WrapInvalid(errors.ErrInvalidCapacity, "Queue", "NewRingBuffer", "validate capacity")
//	errors.IsInvalid(wrapped) // true
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error
// variables are immutable and safe for concurrent access. ClassifiedError
// is safe to share across goroutines after creation.
//
// # Design Philosophy
//
//   - Classification over string matching: errors are classified by
//     identity, not content
//   - Wrapping over replacement: preserve original errors, add context
//   - Standards over invention: use Go's error idioms (Is/As/Unwrap)
//   - Simplicity over completeness: three classes cover every condition
//     this module produces
package errors
