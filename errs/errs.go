// Package errs defines the package-level sentinel errors for the solver's
// error taxonomy (spec §7): input-validation, resource, numeric, and I/O
// errors. Callers match with errors.Is/errors.As rather than string
// comparison; context is attached with fmt.Errorf("...: %w", ErrX) at the
// boundary that detects it.
package errs

import "errors"

// Input-validation errors.
var (
	// ErrMissingSource is returned when no node was designated as source.
	ErrMissingSource = errors.New("parahpf: missing source node")

	// ErrMissingSink is returned when no node was designated as sink.
	ErrMissingSink = errors.New("parahpf: missing sink node")

	// ErrDuplicateSource is returned when more than one 'n i s' line is seen.
	ErrDuplicateSource = errors.New("parahpf: duplicate source designation")

	// ErrDuplicateSink is returned when more than one 'n i t' line is seen.
	ErrDuplicateSink = errors.New("parahpf: duplicate sink designation")

	// ErrSourceEqualsSink is returned when s == t.
	ErrSourceEqualsSink = errors.New("parahpf: source equals sink")

	// ErrNodeOutOfRange is returned when a node index falls outside [0, N).
	ErrNodeOutOfRange = errors.New("parahpf: node index out of range")

	// ErrSelfLoop is returned when an arc has from == to.
	ErrSelfLoop = errors.New("parahpf: self-loop arc")

	// ErrSignViolation is returned when an arc's multiplier violates the
	// monotonicity rule for its endpoint (spec §3).
	ErrSignViolation = errors.New("parahpf: arc multiplier sign violation")

	// ErrArcCountMismatch is returned when the declared arc count does not
	// match the number of arcs actually read after dropping arcs incident
	// into source or out of sink.
	ErrArcCountMismatch = errors.New("parahpf: arc count mismatch")

	// ErrMalformedHeader is returned when a 'p' header line is malformed.
	ErrMalformedHeader = errors.New("parahpf: malformed header line")

	// ErrMalformedLine is returned for any other structurally invalid line.
	ErrMalformedLine = errors.New("parahpf: malformed input line")
)

// Resource errors.
var (
	// ErrAllocation is returned when a required allocation cannot be made
	// (in practice: a size/shape invariant was violated before allocating).
	ErrAllocation = errors.New("parahpf: allocation failure")
)

// Numeric errors.
var (
	// ErrNegativeCapacity is returned when an evaluated arc capacity is
	// negative, the rounding flag is unset, and the value exceeds the
	// tolerance band around zero (spec §3, §7).
	ErrNegativeCapacity = errors.New("parahpf: negative evaluated capacity")
)

// I/O errors.
var (
	// ErrIO wraps an underlying I/O failure (open/read/write).
	ErrIO = errors.New("parahpf: I/O failure")
)
