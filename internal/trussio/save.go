package trussio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

// StateTolerance below which a member force is reported as "zero"
const StateTolerance = 1e-9

// CalculatedValues is the document written by Save
type CalculatedValues struct {
	Nodes       []truss.Joint   `json:"nodes"`
	Connections []ConnectionOut `json:"connections"`
	Supports    []SupportOut    `json:"supports"`
	Loads       []LoadOut       `json:"loads"`
	Reactions   []ReactionOut   `json:"reactions"`
}

type ConnectionOut struct {
	Name   string  `json:"name"`
	Node1  string  `json:"node1"`
	Node2  string  `json:"node2"`
	Length float64 `json:"length"`
	Angle  float64 `json:"angle_degrees"`
	Force  float64 `json:"force"`
	State  string  `json:"state"`
}

type SupportOut struct {
	Node string `json:"node"`
	Type string `json:"type"`
}

type LoadOut struct {
	Node   string  `json:"node"`
	ForceX float64 `json:"force_x"`
	ForceY float64 `json:"force_y"`
	Case   string  `json:"case,omitempty"`
}

type ReactionOut struct {
	Node      string  `json:"node"`
	Direction string  `json:"direction"`
	Magnitude float64 `json:"magnitude"`
}

// NewCalculatedValues collects the solved truss into an exportable document
func NewCalculatedValues(t *truss.Truss, res *truss.Result) *CalculatedValues {
	cv := &CalculatedValues{Nodes: t.Joints}

	for k, m := range t.Members {
		f := res.Forces[k]
		cv.Connections = append(cv.Connections, ConnectionOut{
			Name:   t.MemberName(k),
			Node1:  t.Joints[m.I].Name,
			Node2:  t.Joints[m.J].Name,
			Length: t.Length(m),
			Angle:  t.Angle(m),
			Force:  f,
			State:  truss.State(f, StateTolerance),
		})
	}

	for _, s := range t.Supports {
		cv.Supports = append(cv.Supports, SupportOut{Node: t.Joints[s.Joint].Name, Type: s.Kind.String()})
	}

	for _, l := range t.Loads {
		fx, fy := l.Components()
		cv.Loads = append(cv.Loads, LoadOut{Node: t.Joints[l.Joint].Name, ForceX: fx, ForceY: fy, Case: l.Case})
	}

	for _, r := range res.Reactions {
		cv.Reactions = append(cv.Reactions, ReactionOut{
			Node:      t.Joints[r.Joint].Name,
			Direction: r.Axis.String(),
			Magnitude: r.Value,
		})
	}

	return cv
}

// Save writes the calculated values of a solved truss as indented JSON
func Save(path string, t *truss.Truss, res *truss.Result) error {
	if res == nil {
		return fmt.Errorf("no solved result to save")
	}

	data, err := json.MarshalIndent(NewCalculatedValues(t, res), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding calculated values: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing calculated values: %w", err)
	}
	return nil
}
