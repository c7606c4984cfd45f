package truss

import "gonum.org/v1/gonum/mat"

// EquilibriumSystem holds the method-of-joints equations A·x = B.
//
// Rows: 2i is the x-equilibrium of joint i, 2i+1 its y-equilibrium.
// Columns: one per member in input order, then one per reaction unknown
// in the order returned by Truss.ReactionUnknowns.
type EquilibriumSystem struct {
	A *mat.Dense
	B *mat.VecDense

	Members   int        // number of member columns
	Reactions []Reaction // unknowns for the remaining columns, values unset
}

// Assemble builds the equilibrium system for a validated truss.
// The system is square only when the truss passes the determinacy check.
func Assemble(t *Truss) *EquilibriumSystem {
	reactions := t.ReactionUnknowns()
	rows := 2 * len(t.Joints)
	cols := len(t.Members) + len(reactions)

	sys := &EquilibriumSystem{
		A:         mat.NewDense(rows, cols, nil),
		B:         mat.NewVecDense(rows, nil),
		Members:   len(t.Members),
		Reactions: reactions,
	}

	// Tension pulls joint I toward J and joint J toward I
	for k, m := range t.Members {
		c, s := t.DirectionCosines(m)
		i, j := 2*int(m.I), 2*int(m.J)
		addTo(sys.A, i, k, c)
		addTo(sys.A, i+1, k, s)
		addTo(sys.A, j, k, -c)
		addTo(sys.A, j+1, k, -s)
	}

	for k, r := range reactions {
		sys.A.Set(row(r.Joint, r.Axis), sys.Members+k, 1)
	}

	// Loads move to the right-hand side
	for _, l := range t.Loads {
		fx, fy := l.Components()
		i := 2 * int(l.Joint)
		sys.B.SetVec(i, sys.B.AtVec(i)-fx)
		sys.B.SetVec(i+1, sys.B.AtVec(i+1)-fy)
	}

	return sys
}

// Unknowns returns the number of columns of the system
func (s *EquilibriumSystem) Unknowns() int {
	return s.Members + len(s.Reactions)
}

func row(j JointID, a Axis) int {
	if a == AxisX {
		return 2 * int(j)
	}
	return 2*int(j) + 1
}

func addTo(m *mat.Dense, i, j int, v float64) {
	m.Set(i, j, m.At(i, j)+v)
}
