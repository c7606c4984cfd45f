package truss

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultConditionLimit is the largest condition number accepted before
// the equilibrium system is treated as singular
const DefaultConditionLimit = 1e12

// SolveSystem solves the square system A·x = B by LU factorization.
// A singular or ill-conditioned A yields a StructuralInstabilityError;
// no least-squares fallback is attempted.
func SolveSystem(sys *EquilibriumSystem, conditionLimit float64) (*mat.VecDense, error) {
	if conditionLimit <= 0 {
		conditionLimit = DefaultConditionLimit
	}

	r, c := sys.A.Dims()
	if r != c {
		return nil, fmt.Errorf("equilibrium system is not square (%d x %d)", r, c)
	}

	var lu mat.LU
	lu.Factorize(sys.A)

	cond := lu.Cond()
	if math.IsNaN(cond) || math.IsInf(cond, 1) || cond > conditionLimit {
		return nil, &StructuralInstabilityError{Condition: cond, Limit: conditionLimit}
	}

	x := mat.NewVecDense(c, nil)
	if err := lu.SolveVecTo(x, false, sys.B); err != nil {
		var ce mat.Condition
		if errors.As(err, &ce) {
			return nil, &StructuralInstabilityError{Condition: float64(ce), Limit: conditionLimit}
		}
		return nil, err
	}

	return x, nil
}
