package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	tensionColor     = color.RGBA{R: 0, G: 0, B: 200, A: 255}
	compressionColor = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	zeroColor        = color.Gray{Y: 150}
	loadColor        = color.RGBA{R: 0, G: 150, B: 0, A: 255}
	reactionColor    = color.RGBA{R: 200, G: 0, B: 200, A: 255}
)

// ExportTrussDiagram exports the truss with member forces, supports, loads
// and reactions to an image file. The extension selects png, svg or pdf.
func ExportTrussDiagram(data TrussDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	minX, maxX, minY, maxY := data.bounds()
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	maxF := data.maxForce()
	tol := ZeroForceTolerance * math.Max(1, maxF)

	// Members, coloured by state
	for _, m := range data.Members {
		line, err := plotter.NewLine(plotter.XYs{{X: m.X1, Y: m.Y1}, {X: m.X2, Y: m.Y2}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		switch {
		case !data.Solved:
			line.LineStyle.Color = color.Black
		case m.Force > tol:
			line.LineStyle.Color = tensionColor
		case m.Force < -tol:
			line.LineStyle.Color = compressionColor
		default:
			line.LineStyle.Color = zeroColor
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(line)
	}

	if data.Solved {
		xys := make(plotter.XYs, len(data.Members))
		labels := make([]string, len(data.Members))
		for i, m := range data.Members {
			xys[i] = plotter.XY{X: (m.X1 + m.X2) / 2, Y: (m.Y1 + m.Y2) / 2}
			labels[i] = fmt.Sprintf("%.2f", m.Force)
		}
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	// Joints
	jointXYs := make(plotter.XYs, len(data.Joints))
	jointNames := make([]string, len(data.Joints))
	for i, j := range data.Joints {
		jointXYs[i] = plotter.XY{X: j.X, Y: j.Y}
		jointNames[i] = " " + j.Name
	}
	joints, err := plotter.NewScatter(jointXYs)
	if err != nil {
		return err
	}
	joints.GlyphStyle.Color = color.Black
	joints.GlyphStyle.Radius = vg.Points(3)
	joints.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(joints)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: jointXYs, Labels: jointNames})
	if err != nil {
		return err
	}
	p.Add(names)

	// Supports
	for _, kind := range []string{"pin", "roller"} {
		var xys plotter.XYs
		for _, j := range data.Joints {
			if j.Support == kind {
				xys = append(xys, plotter.XY{X: j.X, Y: j.Y})
			}
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Radius = vg.Points(7)
		if kind == "pin" {
			s.GlyphStyle.Shape = draw.TriangleGlyph{}
			s.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
		} else {
			s.GlyphStyle.Shape = draw.RingGlyph{}
			s.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		}
		p.Add(s)
	}

	// Loads and reactions point at their joint
	arrowLen := 0.25 * span
	if err := addArrows(p, data.Loads, maxF, arrowLen, loadColor); err != nil {
		return err
	}
	if err := addArrows(p, data.Reactions, maxF, arrowLen, reactionColor); err != nil {
		return err
	}

	pad := 0.35 * span
	p.X.Min, p.X.Max = minX-pad, maxX+pad
	p.Y.Min, p.Y.Max = minY-pad, maxY+pad

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// addArrows draws each force as a shaft ending at its point of application with
// a two-stroke head; lengths are proportional to magnitude relative to maxF
func addArrows(p *plot.Plot, arrows []ArrowData, maxF, maxLen float64, c color.Color) error {
	for _, a := range arrows {
		mag := math.Hypot(a.Fx, a.Fy)
		if mag == 0 || maxF == 0 {
			continue
		}
		length := maxLen * math.Max(mag/maxF, 0.3)
		ux, uy := a.Fx/mag, a.Fy/mag
		tailX, tailY := a.X-ux*length, a.Y-uy*length

		head := 0.25 * length
		// Head strokes are the reversed direction rotated by ±30°
		const ang = math.Pi / 6
		lx := a.X + head*(-ux*math.Cos(ang)-uy*math.Sin(ang))
		ly := a.Y + head*(-uy*math.Cos(ang)+ux*math.Sin(ang))
		rx := a.X + head*(-ux*math.Cos(ang)+uy*math.Sin(ang))
		ry := a.Y + head*(-uy*math.Cos(ang)-ux*math.Sin(ang))

		shaft, err := plotter.NewLine(plotter.XYs{{X: tailX, Y: tailY}, {X: a.X, Y: a.Y}, {X: lx, Y: ly}, {X: a.X, Y: a.Y}, {X: rx, Y: ry}})
		if err != nil {
			return err
		}
		shaft.LineStyle.Width = vg.Points(1.5)
		shaft.LineStyle.Color = c
		p.Add(shaft)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: tailX, Y: tailY}},
			Labels: []string{a.Label},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}
	return nil
}
