// Package trussio decodes truss descriptions from JSON or YAML files and
// writes calculated values back out.
package trussio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"gopkg.in/yaml.v3"
)

// Load formats accepted in Document.LoadFormat
const (
	FormatCartesian = "cartesian"
	FormatPolar     = "polar"
)

// Document is the on-disk truss description.
//
//	{
//	  "nodes":       [[0, 0], [1, 1], [2, 0]],
//	  "names":       ["A", "B", "C"],
//	  "connections": [[0, 1], [1, 2], [0, 2]],
//	  "supports":    {"0": "pin", "2": "roller"},
//	  "loads":       [[1, 0, -100, "D"]],
//	  "load_format": "cartesian"
//	}
//
// A load is [joint, fx, fy] or, with load_format "polar", [joint, magnitude, angle_degrees].
// An optional fourth element tags the NSCP load case.
type Document struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes       [][2]float64      `json:"nodes" yaml:"nodes"`
	Names       []string          `json:"names,omitempty" yaml:"names,omitempty"`
	Connections [][2]int          `json:"connections" yaml:"connections"`
	Supports    map[string]string `json:"supports" yaml:"supports"`
	Loads       [][]any           `json:"loads" yaml:"loads"`
	LoadFormat  string            `json:"load_format,omitempty" yaml:"load_format,omitempty"`
}

// Load reads a truss description from a file. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func Load(path string) (*truss.Truss, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading truss file: %w", err)
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing truss YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing truss JSON: %w", err)
		}
	}

	t, err := doc.Truss()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// Truss converts the document into the solver's model
func (d *Document) Truss() (*truss.Truss, error) {
	if len(d.Names) > 0 && len(d.Names) != len(d.Nodes) {
		return nil, fmt.Errorf("names has %d entries for %d nodes", len(d.Names), len(d.Nodes))
	}

	t := &truss.Truss{}
	for i, n := range d.Nodes {
		name := JointName(i)
		if len(d.Names) > 0 {
			name = d.Names[i]
		}
		t.Joints = append(t.Joints, truss.Joint{Name: name, X: n[0], Y: n[1]})
	}

	for _, c := range d.Connections {
		t.Members = append(t.Members, truss.Member{I: truss.JointID(c[0]), J: truss.JointID(c[1])})
	}

	supports, err := d.supports()
	if err != nil {
		return nil, err
	}
	t.Supports = supports

	polar := false
	switch strings.ToLower(d.LoadFormat) {
	case "", FormatCartesian:
	case FormatPolar:
		polar = true
	default:
		return nil, fmt.Errorf("unknown load_format %q (want %s or %s)", d.LoadFormat, FormatCartesian, FormatPolar)
	}

	for i, raw := range d.Loads {
		l, err := decodeLoad(raw, polar)
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", i, err)
		}
		t.Loads = append(t.Loads, l)
	}

	return t, nil
}

// supports are returned sorted by joint index so the reaction columns are stable
func (d *Document) supports() ([]truss.Support, error) {
	out := make([]truss.Support, 0, len(d.Supports))
	for key, kind := range d.Supports {
		idx, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("support key %q is not a node index", key)
		}
		k, err := truss.ParseSupportKind(kind)
		if err != nil {
			return nil, fmt.Errorf("support at node %d: %w", idx, err)
		}
		out = append(out, truss.Support{Joint: truss.JointID(idx), Kind: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Joint < out[j].Joint })
	return out, nil
}

func decodeLoad(raw []any, polar bool) (truss.Load, error) {
	if len(raw) != 3 && len(raw) != 4 {
		return truss.Load{}, fmt.Errorf("want [node, a, b] or [node, a, b, case], got %d elements", len(raw))
	}

	idx, err := number(raw[0])
	if err != nil {
		return truss.Load{}, fmt.Errorf("node: %w", err)
	}
	if idx != float64(int(idx)) {
		return truss.Load{}, fmt.Errorf("node index %v is not an integer", idx)
	}
	a, err := number(raw[1])
	if err != nil {
		return truss.Load{}, err
	}
	b, err := number(raw[2])
	if err != nil {
		return truss.Load{}, err
	}

	var l truss.Load
	if polar {
		l = truss.PolarLoad(truss.JointID(idx), a, b)
	} else {
		l = truss.CartesianLoad(truss.JointID(idx), a, b)
	}

	if len(raw) == 4 {
		c, ok := raw[3].(string)
		if !ok {
			return truss.Load{}, fmt.Errorf("load case must be a string, got %T", raw[3])
		}
		l.Case = c
	}
	return l, nil
}

// number accepts the numeric types produced by encoding/json and yaml.v3
func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

// JointName returns spreadsheet-style names: A..Z, AA, AB, ...
func JointName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
