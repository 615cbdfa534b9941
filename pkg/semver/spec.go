// SPDX-License-Identifier: MPL-2.0

package semver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
// ErrInvalidConstraint is the sentinel error wrapped by InvalidConstraintError.
var (
	ErrInvalidVersion    = errors.New("invalid semantic version")
	ErrInvalidConstraint = errors.New("invalid version constraint")
)

type (
	// InvalidVersionError is returned when a string does not match the
	// expected semantic version format.
	InvalidVersionError struct {
		Value string
	}

	// InvalidConstraintError is returned when a string does not match the
	// expected version constraint format.
	InvalidConstraintError struct {
		Value string
	}

	// Spec is a requirement over versions: either "any version" or a
	// conjunction of constraints (e.g. ">=0.2.0 <1.0.0"). The zero value is
	// not valid; use Any or ParseSpec. Having an explicit "any" form means
	// callers never encode "unconstrained" as an empty expression string.
	Spec struct {
		any         bool
		constraints []*Constraint
		original    string
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid semantic version %q", e.Value)
}

// Unwrap returns ErrInvalidVersion so callers can use errors.Is for programmatic detection.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// Error implements the error interface.
func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid version constraint %q", e.Value)
}

// Unwrap returns ErrInvalidConstraint so callers can use errors.Is for programmatic detection.
func (e *InvalidConstraintError) Unwrap() error { return ErrInvalidConstraint }

// Any returns the spec that every version satisfies.
func Any() Spec {
	return Spec{any: true}
}

// ParseSpec parses a requirement expression of whitespace-separated
// constraints. An empty expression is malformed input, not "any version":
// callers that mean "unconstrained" must use Any explicitly.
func ParseSpec(expr string) (Spec, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Spec{}, &InvalidConstraintError{Value: expr}
	}

	var constraints []*Constraint
	for _, part := range strings.Fields(trimmed) {
		c, err := ParseConstraint(part)
		if err != nil {
			return Spec{}, err
		}
		constraints = append(constraints, c)
	}

	return Spec{constraints: constraints, original: trimmed}, nil
}

// IsAny reports whether the spec admits every version.
func (s Spec) IsAny() bool { return s.any }

// String returns the original requirement expression, or "*" for Any.
func (s Spec) String() string {
	if s.any {
		return "*"
	}
	return s.original
}

// Satisfies reports whether the given version string meets the spec.
// A version string that does not parse as a semantic version never
// satisfies a constrained spec; it is a mismatch, not an error.
func (s Spec) Satisfies(version string) bool {
	if s.any {
		return true
	}

	v, err := ParseVersion(version)
	if err != nil {
		return false
	}

	for _, c := range s.constraints {
		if !c.Matches(v) {
			return false
		}
	}
	return true
}
