package truss

// Options tunes the solve
type Options struct {
	// ConditionLimit above which the system is reported unstable.
	// Zero or negative selects DefaultConditionLimit.
	ConditionLimit float64
}

// DefaultOptions returns the options used by the CLI when no flags are given
func DefaultOptions() Options {
	return Options{ConditionLimit: DefaultConditionLimit}
}

// Solve computes member forces and support reactions by the method of joints.
//
// The pipeline is validate → determinacy → assemble → solve → map. On failure
// the result is nil and the error is an *InvalidGeometryError, *DeterminacyError
// or *StructuralInstabilityError. Solve does not modify t.
func Solve(t *Truss, opts Options) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := t.CheckDeterminacy(); err != nil {
		return nil, err
	}

	sys := Assemble(t)
	x, err := SolveSystem(sys, opts.ConditionLimit)
	if err != nil {
		return nil, err
	}

	return mapResult(sys, x), nil
}
