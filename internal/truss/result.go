package truss

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds the solved member forces and reactions
type Result struct {
	// Axial force per member in input order (positive = tension)
	Forces []float64

	// Reaction components in column order
	Reactions []Reaction
}

// mapResult scatters the solution vector onto members and reactions by column index
func mapResult(sys *EquilibriumSystem, x *mat.VecDense) *Result {
	res := &Result{
		Forces:    make([]float64, sys.Members),
		Reactions: make([]Reaction, len(sys.Reactions)),
	}
	for k := range res.Forces {
		res.Forces[k] = x.AtVec(k)
	}
	for k, r := range sys.Reactions {
		r.Value = x.AtVec(sys.Members + k)
		res.Reactions[k] = r
	}
	return res
}

// State classifies a member force as tension, compression or zero
func State(force, tol float64) string {
	switch {
	case force > tol:
		return "tension"
	case force < -tol:
		return "compression"
	}
	return "zero"
}

// MaxAbsForce returns the largest magnitude among member forces and reactions
func (r *Result) MaxAbsForce() float64 {
	m := 0.0
	for _, f := range r.Forces {
		m = max(m, math.Abs(f))
	}
	for _, re := range r.Reactions {
		m = max(m, math.Abs(re.Value))
	}
	return m
}

// Residuals returns the force imbalance at every joint, laid out like the
// equation rows: index 2i is Σx at joint i, 2i+1 is Σy.
// For a solved truss every entry is zero within round-off.
func (r *Result) Residuals(t *Truss) []float64 {
	res := make([]float64, 2*len(t.Joints))
	for k, m := range t.Members {
		c, s := t.DirectionCosines(m)
		f := r.Forces[k]
		res[2*m.I] += f * c
		res[2*m.I+1] += f * s
		res[2*m.J] -= f * c
		res[2*m.J+1] -= f * s
	}
	for _, re := range r.Reactions {
		res[row(re.Joint, re.Axis)] += re.Value
	}
	for _, l := range t.Loads {
		fx, fy := l.Components()
		res[2*l.Joint] += fx
		res[2*l.Joint+1] += fy
	}
	return res
}
