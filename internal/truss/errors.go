package truss

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is
var (
	ErrInvalidGeometry = errors.New("truss: invalid geometry")
	ErrNotDeterminate  = errors.New("truss: not statically determinate")
	ErrUnstable        = errors.New("truss: structurally unstable")
)

// InvalidGeometryError reports a degenerate or inconsistent truss description
type InvalidGeometryError struct {
	Item   string // e.g. "member 3", "support 1"
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s: %s", e.Item, e.Reason)
}

func (e *InvalidGeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// DeterminacyError reports that m + r != 2n
type DeterminacyError struct {
	Joints    int // n
	Members   int // m
	Reactions int // r
}

// Kind describes which way the count test failed
func (e *DeterminacyError) Kind() string {
	if e.Members+e.Reactions < 2*e.Joints {
		return "under-constrained"
	}
	return "over-constrained"
}

func (e *DeterminacyError) Error() string {
	return fmt.Sprintf("truss is not statically determinate (%s): m + r = %d + %d = %d, 2n = %d",
		e.Kind(), e.Members, e.Reactions, e.Members+e.Reactions, 2*e.Joints)
}

func (e *DeterminacyError) Is(target error) bool {
	return target == ErrNotDeterminate
}

// StructuralInstabilityError reports a singular or ill-conditioned equilibrium system
type StructuralInstabilityError struct {
	Condition float64 // estimated condition number of the coefficient matrix
	Limit     float64
}

func (e *StructuralInstabilityError) Error() string {
	return fmt.Sprintf("truss is structurally unstable: condition number %.3g exceeds limit %.3g (mechanism or collinear members)",
		e.Condition, e.Limit)
}

func (e *StructuralInstabilityError) Is(target error) bool {
	return target == ErrUnstable
}
