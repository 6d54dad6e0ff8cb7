package fixture

import "fmt"

// DiagKind classifies a recoverable geometry/selection issue.
type DiagKind int

const (
	// DiagDegradedGeometry: no outline primitives were found and board
	// extents were derived from component bounding boxes instead.
	DiagDegradedGeometry DiagKind = iota

	// DiagDimensionMismatch: component-derived extents disagree with the
	// outline-derived dimensions beyond tolerance, or the dimensions fall
	// outside plausible board sizes.
	DiagDimensionMismatch
)

func (k DiagKind) String() string {
	switch k {
	case DiagDegradedGeometry:
		return "degraded-geometry"
	case DiagDimensionMismatch:
		return "dimension-mismatch"
	default:
		return "unknown"
	}
}

// Severity of a diagnostic. None abort generation on their own.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a non-fatal issue attached to a generation run.
type Diagnostic struct {
	Kind     DiagKind
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%s): %s", d.Kind, d.Severity, d.Message)
}

// NoTestPointsError is returned when selection yields zero qualifying
// pads. Running the geometry tool with an empty point array is
// meaningless, so the caller must abort before parameter assembly.
type NoTestPointsError struct {
	Mode Mode
}

func (e *NoTestPointsError) Error() string {
	if e.Mode == ModeBoth {
		return "no test points found on either side: verify the board has probe-accessible pads or use the force layer override"
	}
	return fmt.Sprintf("no test points found on the %s side: verify the board has probe-accessible pads or use the force layer override", e.Mode)
}

// InvalidConfigError is returned when a required hardware dimension is
// missing or non-numeric. It is surfaced before any parameter assembly.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
