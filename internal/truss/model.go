package truss

import (
	"fmt"
	"math"
)

// JointID is a stable handle into Truss.Joints
type JointID int

// Joint represents a pin connection point in the plane
type Joint struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (j Joint) String() string {
	return fmt.Sprintf("Joint %s at (%g, %g)", j.Name, j.X, j.Y)
}

// Member represents a two-force element between joints I and J.
// A positive axial force means tension.
type Member struct {
	I JointID `json:"i"`
	J JointID `json:"j"`
}

// SupportKind selects the reaction unknowns a support contributes
type SupportKind int

const (
	Pin    SupportKind = iota // restrains x and y
	Roller                    // restrains y only
)

// Unknowns returns the number of reaction components the support adds
func (k SupportKind) Unknowns() int {
	switch k {
	case Pin:
		return 2
	case Roller:
		return 1
	}
	return 0
}

func (k SupportKind) String() string {
	switch k {
	case Pin:
		return "pin"
	case Roller:
		return "roller"
	}
	return fmt.Sprintf("SupportKind(%d)", int(k))
}

// ParseSupportKind converts "pin" or "roller" to a SupportKind
func ParseSupportKind(s string) (SupportKind, error) {
	switch s {
	case "pin", "Pin", "PIN":
		return Pin, nil
	case "roller", "Roller", "ROLLER":
		return Roller, nil
	}
	return 0, fmt.Errorf("unknown support kind %q (want pin or roller)", s)
}

// Support is a boundary condition at a joint
type Support struct {
	Joint JointID     `json:"joint"`
	Kind  SupportKind `json:"kind"`
}

// ForceKind tags how a load's force vector was given
type ForceKind int

const (
	Cartesian    ForceKind = iota // Fx, Fy
	PolarDegrees                  // Magnitude, Angle (degrees from +x, counter-clockwise)
)

// Load is an external force applied at a joint
type Load struct {
	Joint JointID
	Kind  ForceKind

	// Cartesian components
	Fx float64
	Fy float64

	// Polar form
	Magnitude float64
	Angle     float64 // degrees

	// Optional NSCP load case tag (D, L, Lr, W, E, R)
	Case string
}

// CartesianLoad builds a load from its components
func CartesianLoad(j JointID, fx, fy float64) Load {
	return Load{Joint: j, Kind: Cartesian, Fx: fx, Fy: fy}
}

// PolarLoad builds a load from a magnitude and an angle in degrees
func PolarLoad(j JointID, magnitude, angleDeg float64) Load {
	return Load{Joint: j, Kind: PolarDegrees, Magnitude: magnitude, Angle: angleDeg}
}

// Components returns the canonical (fx, fy) form of the load
func (l Load) Components() (fx, fy float64) {
	if l.Kind == PolarDegrees {
		rad := l.Angle * math.Pi / 180
		return l.Magnitude * math.Cos(rad), l.Magnitude * math.Sin(rad)
	}
	return l.Fx, l.Fy
}

// Scaled returns a Cartesian copy of the load multiplied by factor
func (l Load) Scaled(factor float64) Load {
	fx, fy := l.Components()
	return Load{Joint: l.Joint, Kind: Cartesian, Fx: fx * factor, Fy: fy * factor, Case: l.Case}
}

// Axis identifies the direction of a reaction component
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Reaction is one solved reaction component at a supported joint
type Reaction struct {
	Joint JointID `json:"joint"`
	Axis  Axis    `json:"axis"`
	Value float64 `json:"value"`
}

// Truss owns the joints; members, supports and loads refer to them by handle
type Truss struct {
	Joints   []Joint
	Members  []Member
	Supports []Support
	Loads    []Load
}

// Delta returns the vector from joint I to joint J of member m
func (t *Truss) Delta(m Member) (dx, dy float64) {
	a, b := t.Joints[m.I], t.Joints[m.J]
	return b.X - a.X, b.Y - a.Y
}

// Length returns the member length
func (t *Truss) Length(m Member) float64 {
	dx, dy := t.Delta(m)
	return math.Hypot(dx, dy)
}

// Angle returns the member orientation in degrees, measured from joint I to joint J
func (t *Truss) Angle(m Member) float64 {
	dx, dy := t.Delta(m)
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// DirectionCosines returns (cosθ, sinθ) of the member from joint I to joint J
func (t *Truss) DirectionCosines(m Member) (c, s float64) {
	dx, dy := t.Delta(m)
	l := math.Hypot(dx, dy)
	return dx / l, dy / l
}

// MemberName labels a member by its joint names, e.g. "AB"
func (t *Truss) MemberName(k int) string {
	m := t.Members[k]
	return t.Joints[m.I].Name + t.Joints[m.J].Name
}

// ReactionUnknowns returns the reaction components in column order.
// Each support's components are contiguous; a pin yields x before y.
func (t *Truss) ReactionUnknowns() []Reaction {
	var rs []Reaction
	for _, s := range t.Supports {
		switch s.Kind {
		case Pin:
			rs = append(rs, Reaction{Joint: s.Joint, Axis: AxisX}, Reaction{Joint: s.Joint, Axis: AxisY})
		case Roller:
			rs = append(rs, Reaction{Joint: s.Joint, Axis: AxisY})
		}
	}
	return rs
}

// ReactionCount sums the reaction unknowns over all supports
func (t *Truss) ReactionCount() int {
	r := 0
	for _, s := range t.Supports {
		r += s.Kind.Unknowns()
	}
	return r
}
