package truss

import (
	"math"
	"testing"
)

func TestAssembleLayout(t *testing.T) {
	tr := warren()
	sys := Assemble(tr)

	r, c := sys.A.Dims()
	if r != 10 || c != 10 {
		t.Fatalf("dims = %dx%d, want 10x10", r, c)
	}
	if sys.Members != 7 || sys.Unknowns() != 10 {
		t.Errorf("members = %d, unknowns = %d, want 7 and 10", sys.Members, sys.Unknowns())
	}

	// Member AB (column 0) runs from A(0,0) to B(1,1)
	h := 1 / math.Sqrt2
	checks := []struct {
		row, col int
		want     float64
	}{
		{0, 0, h},  // A x
		{1, 0, h},  // A y
		{2, 0, -h}, // B x
		{3, 0, -h}, // B y
		{4, 0, 0},  // C x untouched
		{0, 1, 1},  // AC along +x at A
		{4, 1, -1}, // AC at C
		{0, 7, 1},  // Ax reaction
		{1, 8, 1},  // Ay reaction
		{9, 9, 1},  // Ey reaction
		{8, 9, 0},  // roller has no x component
	}
	for _, ch := range checks {
		if got := sys.A.At(ch.row, ch.col); math.Abs(got-ch.want) > 1e-12 {
			t.Errorf("A[%d][%d] = %v, want %v", ch.row, ch.col, got, ch.want)
		}
	}

	// Load (0, -100) at C lands in row 5 with the sign flipped
	for i := 0; i < 10; i++ {
		want := 0.0
		if i == 5 {
			want = 100
		}
		if got := sys.B.AtVec(i); got != want {
			t.Errorf("B[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestReactionUnknownOrder(t *testing.T) {
	tr := &Truss{
		Joints: []Joint{{Name: "A"}, {Name: "B", X: 1}, {Name: "C", X: 2}},
		Supports: []Support{
			{Joint: 2, Kind: Roller},
			{Joint: 0, Kind: Pin},
		},
	}
	got := tr.ReactionUnknowns()
	want := []Reaction{
		{Joint: 2, Axis: AxisY},
		{Joint: 0, Axis: AxisX},
		{Joint: 0, Axis: AxisY},
	}
	if len(got) != len(want) {
		t.Fatalf("unknowns = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unknown %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if tr.ReactionCount() != 3 {
		t.Errorf("ReactionCount = %d, want 3", tr.ReactionCount())
	}
}

func TestMemberGeometry(t *testing.T) {
	tr := warren()
	ab := tr.Members[0]
	if l := tr.Length(ab); math.Abs(l-math.Sqrt2) > 1e-12 {
		t.Errorf("length AB = %v, want √2", l)
	}
	if a := tr.Angle(ab); math.Abs(a-45) > 1e-12 {
		t.Errorf("angle AB = %v, want 45", a)
	}
	if a := tr.Angle(tr.Members[6]); math.Abs(a+45) > 1e-12 {
		t.Errorf("angle DE = %v, want -45", a)
	}
	if name := tr.MemberName(3); name != "BD" {
		t.Errorf("MemberName(3) = %q, want BD", name)
	}
}

func TestLoadComponents(t *testing.T) {
	tests := []struct {
		name   string
		load   Load
		fx, fy float64
	}{
		{"cartesian", CartesianLoad(0, 3, -4), 3, -4},
		{"polar up", PolarLoad(0, 10, 90), 0, 10},
		{"polar 30", PolarLoad(0, 2, 30), math.Sqrt(3), 1},
		{"polar down", PolarLoad(0, 100, 270), 0, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, fy := tt.load.Components()
			if math.Abs(fx-tt.fx) > 1e-9 || math.Abs(fy-tt.fy) > 1e-9 {
				t.Errorf("Components() = (%v, %v), want (%v, %v)", fx, fy, tt.fx, tt.fy)
			}
		})
	}
}

func TestParseSupportKind(t *testing.T) {
	if k, err := ParseSupportKind("pin"); err != nil || k != Pin {
		t.Errorf("ParseSupportKind(pin) = %v, %v", k, err)
	}
	if k, err := ParseSupportKind("Roller"); err != nil || k != Roller {
		t.Errorf("ParseSupportKind(Roller) = %v, %v", k, err)
	}
	if _, err := ParseSupportKind("fixed"); err == nil {
		t.Error("ParseSupportKind(fixed) should fail")
	}
}
