package nscp

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gotruss/internal/truss"
)

// Load case tags carried by truss.Load.Case
const (
	CaseDead       = "D"
	CaseLive       = "L"
	CaseRoof       = "Lr"
	CaseWind       = "W"
	CaseEarthquake = "E"
	CaseRain       = "R"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers gravity-only trusses
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// GetCombination looks up a combination by ID
func GetCombination(id string, combinations []LoadCombination) (LoadCombination, error) {
	for _, c := range combinations {
		if c.ID == id {
			return c, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}

// FactorFor returns the load factor applied to a load case.
// An untagged load is taken as already factored.
func (lc LoadCombination) FactorFor(loadCase string) (float64, error) {
	switch {
	case loadCase == "":
		return 1, nil
	case strings.EqualFold(loadCase, CaseRoof):
		return lc.Roof, nil
	case strings.EqualFold(loadCase, CaseDead):
		return lc.Dead, nil
	case strings.EqualFold(loadCase, CaseLive):
		return lc.Live, nil
	case strings.EqualFold(loadCase, CaseWind):
		return lc.Wind, nil
	case strings.EqualFold(loadCase, CaseEarthquake):
		return lc.Earthquake, nil
	case strings.EqualFold(loadCase, CaseRain):
		return lc.Rain, nil
	}
	return 0, fmt.Errorf("unknown load case %q (want D, L, Lr, W, E or R)", loadCase)
}

// Factor returns a copy of t with every load scaled by the combination.
// Geometry and supports are shared with t; loads with a zero factor are dropped.
func Factor(t *truss.Truss, lc LoadCombination) (*truss.Truss, error) {
	out := &truss.Truss{
		Joints:   t.Joints,
		Members:  t.Members,
		Supports: t.Supports,
		Loads:    make([]truss.Load, 0, len(t.Loads)),
	}
	for i, l := range t.Loads {
		f, err := lc.FactorFor(l.Case)
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", i, err)
		}
		if f == 0 {
			continue
		}
		out.Loads = append(out.Loads, l.Scaled(f))
	}
	return out, nil
}
