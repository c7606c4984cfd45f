package nscp

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"gonum.org/v1/gonum/floats"
)

// triangle is a symmetric three-joint truss with a dead and a wind load at the apex
func triangle() *truss.Truss {
	dead := truss.CartesianLoad(1, 0, -10)
	dead.Case = CaseDead
	wind := truss.CartesianLoad(1, 4, 0)
	wind.Case = CaseWind
	return &truss.Truss{
		Joints: []truss.Joint{
			{Name: "A", X: 0, Y: 0},
			{Name: "B", X: 2, Y: 2},
			{Name: "C", X: 4, Y: 0},
		},
		Members: []truss.Member{{I: 0, J: 1}, {I: 1, J: 2}, {I: 0, J: 2}},
		Supports: []truss.Support{
			{Joint: 0, Kind: truss.Pin},
			{Joint: 2, Kind: truss.Roller},
		},
		Loads: []truss.Load{dead, wind},
	}
}

func TestFactorFor(t *testing.T) {
	lc, err := GetCombination("4", LoadCombinations)
	if err != nil {
		t.Fatalf("GetCombination failed: %v", err)
	}
	tests := []struct {
		loadCase string
		want     float64
	}{
		{"", 1},
		{"D", 1.2},
		{"d", 1.2},
		{"L", 1.0},
		{"Lr", 0.5},
		{"LR", 0.5},
		{"W", 1.0},
		{"E", 0},
		{"R", 0.5},
	}
	for _, tt := range tests {
		got, err := lc.FactorFor(tt.loadCase)
		if err != nil {
			t.Errorf("FactorFor(%q) failed: %v", tt.loadCase, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FactorFor(%q) = %v, want %v", tt.loadCase, got, tt.want)
		}
	}

	if _, err := lc.FactorFor("snow"); err == nil {
		t.Error("FactorFor(snow) should fail")
	}
}

func TestGetCombinationUnknown(t *testing.T) {
	if _, err := GetCombination("99", LoadCombinations); err == nil {
		t.Error("GetCombination(99) should fail")
	}
}

func TestFactorScalesForcesLinearly(t *testing.T) {
	tr := triangle()
	tr.Loads = tr.Loads[:1] // dead only

	base, err := truss.Solve(tr, truss.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	lc, _ := GetCombination("1", LoadCombinations)
	ft, err := Factor(tr, lc)
	if err != nil {
		t.Fatalf("Factor failed: %v", err)
	}
	if _, fy := ft.Loads[0].Components(); math.Abs(fy+14) > 1e-12 {
		t.Errorf("factored Fy = %v, want -14", fy)
	}
	if tr.Loads[0].Fy != -10 {
		t.Error("Factor modified the input truss")
	}

	factored, err := truss.Solve(ft, truss.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	want := make([]float64, len(base.Forces))
	floats.ScaleTo(want, 1.4, base.Forces)
	if !floats.EqualApprox(factored.Forces, want, 1e-9) {
		t.Errorf("factored forces = %v, want %v", factored.Forces, want)
	}
}

func TestFactorDropsZeroFactorLoads(t *testing.T) {
	lc, _ := GetCombination("1", LoadCombinations)
	ft, err := Factor(triangle(), lc)
	if err != nil {
		t.Fatalf("Factor failed: %v", err)
	}
	if len(ft.Loads) != 1 {
		t.Errorf("loads = %d, want 1 (wind has no factor in 1.4D)", len(ft.Loads))
	}
}

func TestFactorUnknownCase(t *testing.T) {
	tr := triangle()
	tr.Loads[0].Case = "snow"
	if _, err := Factor(tr, LoadCombinations[0]); err == nil {
		t.Error("Factor with unknown case should fail")
	}
}

func TestComputeEnvelope(t *testing.T) {
	tr := triangle()
	env, err := ComputeEnvelope(tr, LoadCombinations, truss.DefaultOptions())
	if err != nil {
		t.Fatalf("ComputeEnvelope failed: %v", err)
	}

	if len(env.Results) != len(LoadCombinations) {
		t.Fatalf("results = %d, want %d", len(env.Results), len(LoadCombinations))
	}

	for k := range tr.Members {
		m := env.Members[k]
		for i, res := range env.Results {
			f := res.Forces[k]
			if f > m.MaxTension+1e-12 || f < m.MaxCompression-1e-12 {
				t.Errorf("member %d combo %s force %v outside envelope [%v, %v]",
					k, LoadCombinations[i].ID, f, m.MaxCompression, m.MaxTension)
			}
		}
	}

	// Bottom chord AC is always in tension; its worst case is one of the 1.2D+W combinations or 1.4D
	ac := env.Members[2]
	if ac.MaxTension <= 0 || ac.TensionCombo == "" {
		t.Errorf("AC envelope = %+v, want positive tension with a governing combination", ac)
	}
	if ac.MaxCompression != 0 || ac.CompressionCombo != "" {
		t.Errorf("AC should never be in compression: %+v", ac)
	}
}

func TestComputeEnvelopePropagatesErrors(t *testing.T) {
	tr := triangle()
	tr.Members = tr.Members[:2]
	_, err := ComputeEnvelope(tr, SimplifiedCombinations, truss.DefaultOptions())
	if !errors.Is(err, truss.ErrNotDeterminate) {
		t.Errorf("error = %v, want ErrNotDeterminate", err)
	}
}
