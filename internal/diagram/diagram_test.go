package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

func solvedTriangle(t *testing.T) (*truss.Truss, *truss.Result) {
	t.Helper()
	tr := &truss.Truss{
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
		Loads: []truss.Load{truss.CartesianLoad(1, 0, -10)},
	}
	res, err := truss.Solve(tr, truss.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return tr, res
}

func TestNewTrussDiagramData(t *testing.T) {
	tr, res := solvedTriangle(t)
	data := NewTrussDiagramData(tr, res)

	if !data.Solved {
		t.Error("Solved = false, want true")
	}
	if len(data.Joints) != 3 || len(data.Members) != 3 || len(data.Loads) != 1 || len(data.Reactions) != 3 {
		t.Fatalf("counts = %d joints, %d members, %d loads, %d reactions",
			len(data.Joints), len(data.Members), len(data.Loads), len(data.Reactions))
	}
	if data.Joints[0].Support != "pin" || data.Joints[1].Support != "" || data.Joints[2].Support != "roller" {
		t.Errorf("supports = %q %q %q", data.Joints[0].Support, data.Joints[1].Support, data.Joints[2].Support)
	}
	if data.Members[2].Name != "AC" || data.Members[2].Force != res.Forces[2] {
		t.Errorf("member 2 = %+v, want AC with force %v", data.Members[2], res.Forces[2])
	}
	if data.Reactions[0].Fy != 0 || data.Reactions[1].Fx != 0 {
		t.Errorf("reaction arrows should be axis aligned: %+v %+v", data.Reactions[0], data.Reactions[1])
	}

	unsolved := NewTrussDiagramData(tr, nil)
	if unsolved.Solved || len(unsolved.Reactions) != 0 {
		t.Errorf("unsolved data = %+v, want no reactions", unsolved)
	}
}

func TestDrawForceBars(t *testing.T) {
	tr, res := solvedTriangle(t)
	out := DrawForceBars(NewTrussDiagramData(tr, res))

	for _, want := range []string{"MEMBER FORCE DIAGRAM", "AB", "BC", "AC", "Tension", "Compression"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// AB and BC are struts, AC is a tie
	lines := strings.Split(out, "\n")
	for _, l := range lines {
		fields := strings.Fields(l)
		if len(fields) < 3 {
			continue
		}
		switch fields[0] {
		case "AB", "BC":
			if fields[2] != "C" {
				t.Errorf("%s tagged %s, want C", fields[0], fields[2])
			}
		case "AC":
			if fields[2] != "T" {
				t.Errorf("AC tagged %s, want T", fields[2])
			}
		}
	}
}

func TestDrawASCIITruss(t *testing.T) {
	tr, res := solvedTriangle(t)
	out := DrawASCIITruss(NewTrussDiagramData(tr, res))

	for _, want := range []string{"A", "B", "C", "^", "o", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("sketch missing %q:\n%s", want, out)
		}
	}
}

func TestDrawSummaryBox(t *testing.T) {
	body := []string{"Ay = 5.00", "Cy = 5.00"}
	out := DrawSummaryBox("RESULT", body)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, body, bottom border
	if want := 4 + len(body); len(lines) != want {
		t.Fatalf("lines = %d, want %d:\n%s", len(lines), want, out)
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if n := len([]rune(l)); n != width {
			t.Errorf("line %d width = %d, want %d", i, n, width)
		}
	}
}

func TestExportTrussDiagram(t *testing.T) {
	tr, res := solvedTriangle(t)
	data := NewTrussDiagramData(tr, res)

	dir := t.TempDir()
	for _, name := range []string{"truss.png", "truss.svg"} {
		path := filepath.Join(dir, "plots", name)
		if err := ExportTrussDiagram(data, path); err != nil {
			t.Fatalf("ExportTrussDiagram(%s) failed: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	// No extension falls back to png
	base := filepath.Join(dir, "plain")
	if err := ExportTrussDiagram(NewTrussDiagramData(tr, nil), base); err != nil {
		t.Fatalf("ExportTrussDiagram without extension failed: %v", err)
	}
	if _, err := os.Stat(base + ".png"); err != nil {
		t.Errorf("expected %s.png: %v", base, err)
	}
}
