package truss

import (
	"fmt"
	"math"
)

// Validate checks the truss description for degenerate geometry and dangling handles
func (t *Truss) Validate() error {
	if len(t.Joints) == 0 {
		return &InvalidGeometryError{Item: "truss", Reason: "no joints defined"}
	}

	for i, j := range t.Joints {
		if !finite(j.X) || !finite(j.Y) {
			return &InvalidGeometryError{Item: fmt.Sprintf("joint %d", i), Reason: "coordinates must be finite"}
		}
	}

	for k, m := range t.Members {
		item := fmt.Sprintf("member %d", k)
		if !t.valid(m.I) || !t.valid(m.J) {
			return &InvalidGeometryError{Item: item, Reason: fmt.Sprintf("joint index out of range (%d, %d)", m.I, m.J)}
		}
		if m.I == m.J {
			return &InvalidGeometryError{Item: item, Reason: "connects a joint to itself"}
		}
		if t.Length(m) == 0 {
			return &InvalidGeometryError{Item: item, Reason: fmt.Sprintf("zero length (joints %s and %s coincide)",
				t.Joints[m.I].Name, t.Joints[m.J].Name)}
		}
	}

	seen := make(map[JointID]bool, len(t.Supports))
	for k, s := range t.Supports {
		item := fmt.Sprintf("support %d", k)
		if !t.valid(s.Joint) {
			return &InvalidGeometryError{Item: item, Reason: fmt.Sprintf("joint index %d out of range", s.Joint)}
		}
		if s.Kind != Pin && s.Kind != Roller {
			return &InvalidGeometryError{Item: item, Reason: fmt.Sprintf("unsupported kind %v", s.Kind)}
		}
		if seen[s.Joint] {
			return &InvalidGeometryError{Item: item, Reason: fmt.Sprintf("joint %s already supported", t.Joints[s.Joint].Name)}
		}
		seen[s.Joint] = true
	}

	for k, l := range t.Loads {
		item := fmt.Sprintf("load %d", k)
		if !t.valid(l.Joint) {
			return &InvalidGeometryError{Item: item, Reason: fmt.Sprintf("joint index %d out of range", l.Joint)}
		}
		fx, fy := l.Components()
		if !finite(fx) || !finite(fy) {
			return &InvalidGeometryError{Item: item, Reason: "force components must be finite"}
		}
	}

	return nil
}

func (t *Truss) valid(id JointID) bool {
	return id >= 0 && int(id) < len(t.Joints)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
