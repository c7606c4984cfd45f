package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

// ZeroForceTolerance below which a member is drawn as unloaded
const ZeroForceTolerance = 1e-9

// JointData is a joint as drawn on a diagram
type JointData struct {
	Name    string
	X, Y    float64
	Support string // "", "pin" or "roller"
}

// MemberData is a member with its solved axial force
type MemberData struct {
	Name           string
	X1, Y1, X2, Y2 float64
	Force          float64 // positive = tension
}

// ArrowData is a force vector applied at a point
type ArrowData struct {
	X, Y   float64
	Fx, Fy float64
	Label  string
}

// TrussDiagramData holds everything needed to draw a truss and its results
type TrussDiagramData struct {
	Title string

	Joints  []JointData
	Members []MemberData

	Loads     []ArrowData
	Reactions []ArrowData // empty when the truss has not been solved

	Solved bool
}

// NewTrussDiagramData collects geometry, loads and (if res is non-nil) results for drawing
func NewTrussDiagramData(t *truss.Truss, res *truss.Result) TrussDiagramData {
	data := TrussDiagramData{Title: "Truss Structure", Solved: res != nil}

	supports := make(map[truss.JointID]string, len(t.Supports))
	for _, s := range t.Supports {
		supports[s.Joint] = s.Kind.String()
	}
	for i, j := range t.Joints {
		data.Joints = append(data.Joints, JointData{Name: j.Name, X: j.X, Y: j.Y, Support: supports[truss.JointID(i)]})
	}

	for k, m := range t.Members {
		a, b := t.Joints[m.I], t.Joints[m.J]
		md := MemberData{Name: t.MemberName(k), X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
		if res != nil {
			md.Force = res.Forces[k]
		}
		data.Members = append(data.Members, md)
	}

	for _, l := range t.Loads {
		fx, fy := l.Components()
		j := t.Joints[l.Joint]
		data.Loads = append(data.Loads, ArrowData{X: j.X, Y: j.Y, Fx: fx, Fy: fy,
			Label: fmt.Sprintf("%.2f", math.Hypot(fx, fy))})
	}

	if res != nil {
		for _, r := range res.Reactions {
			j := t.Joints[r.Joint]
			a := ArrowData{X: j.X, Y: j.Y, Label: fmt.Sprintf("R%s=%.2f", r.Axis, r.Value)}
			if r.Axis == truss.AxisX {
				a.Fx = r.Value
			} else {
				a.Fy = r.Value
			}
			data.Reactions = append(data.Reactions, a)
		}
	}

	return data
}

// maxForce returns the largest magnitude among member forces, loads and reactions
func (d TrussDiagramData) maxForce() float64 {
	m := 0.0
	for _, mb := range d.Members {
		m = math.Max(m, math.Abs(mb.Force))
	}
	for _, a := range d.Loads {
		m = math.Max(m, math.Hypot(a.Fx, a.Fy))
	}
	for _, a := range d.Reactions {
		m = math.Max(m, math.Hypot(a.Fx, a.Fy))
	}
	return m
}

// bounds returns the bounding box of all joints
func (d TrussDiagramData) bounds() (minX, maxX, minY, maxY float64) {
	if len(d.Joints) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = d.Joints[0].X, d.Joints[0].X
	minY, maxY = d.Joints[0].Y, d.Joints[0].Y
	for _, j := range d.Joints {
		minX = math.Min(minX, j.X)
		maxX = math.Max(maxX, j.X)
		minY = math.Min(minY, j.Y)
		maxY = math.Max(maxY, j.Y)
	}
	return minX, maxX, minY, maxY
}

// DrawASCIITruss rasterizes the truss geometry onto a character grid.
// Joints print as their name's first letter, pins as ^ and rollers as o below the joint.
func DrawASCIITruss(data TrussDiagramData) string {
	const widthChars, heightChars = 60, 16

	minX, maxX, minY, maxY := data.bounds()
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	// Keep the aspect ratio; a character is about twice as tall as it is wide
	scale := math.Min(float64(widthChars-1)/spanX, 2*float64(heightChars-1)/spanY)
	col := func(x float64) int { return int(math.Round((x - minX) * scale)) }
	row := func(y float64) int { return heightChars - 1 - int(math.Round((y-minY)*scale/2)) }

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}
	set := func(r, c int, ch rune) {
		if r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) {
			grid[r][c] = ch
		}
	}

	for _, m := range data.Members {
		c1, r1, c2, r2 := col(m.X1), row(m.Y1), col(m.X2), row(m.Y2)
		steps := max(abs(c2-c1), abs(r2-r1))
		ch := memberRune(c2-c1, r2-r1)
		for s := 1; s < steps; s++ {
			f := float64(s) / float64(steps)
			set(int(math.Round(float64(r1)+f*float64(r2-r1))), int(math.Round(float64(c1)+f*float64(c2-c1))), ch)
		}
	}

	for _, j := range data.Joints {
		r, c := row(j.Y), col(j.X)
		name := []rune(j.Name)
		if len(name) == 0 {
			name = []rune{'*'}
		}
		set(r, c, name[0])
		switch j.Support {
		case "pin":
			set(r+1, c, '^')
		case "roller":
			set(r+1, c, 'o')
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(data.Title)))))
	for _, line := range grid {
		s := strings.TrimRight(string(line), " ")
		sb.WriteString("  " + s + "\n")
	}
	sb.WriteString("\n  Legend: ^ = pin support, o = roller support\n")
	return sb.String()
}

func memberRune(dc, dr int) rune {
	switch {
	case dr == 0:
		return '─'
	case dc == 0:
		return '│'
	case (dc > 0) == (dr > 0):
		return '\\'
	}
	return '/'
}

// DrawForceBars creates an ASCII bar chart of member forces
func DrawForceBars(data TrussDiagramData) string {
	var sb strings.Builder

	const width = 30
	maxF := 0.0
	nameWidth := 6
	for _, m := range data.Members {
		maxF = math.Max(maxF, math.Abs(m.Force))
		nameWidth = max(nameWidth, len(m.Name)+2)
	}

	sb.WriteString("\n")
	sb.WriteString("  MEMBER FORCE DIAGRAM\n")
	sb.WriteString("  ────────────────────\n\n")

	for _, m := range data.Members {
		barLen := 0
		if maxF > 0 {
			barLen = int(math.Round(math.Abs(m.Force) / maxF * width))
		}

		var bar, tag string
		switch truss.State(m.Force, ZeroForceTolerance*math.Max(1, maxF)) {
		case "tension":
			bar, tag = strings.Repeat("█", barLen), "T"
		case "compression":
			bar, tag = strings.Repeat("▒", barLen), "C"
		default:
			bar, tag = "", "0"
		}
		sb.WriteString(fmt.Sprintf("  %-*s %10.2f %s │%s\n", nameWidth, m.Name, m.Force, tag, bar))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ███ = Tension (T)\n")
	sb.WriteString("  ▒▒▒ = Compression (C)\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
