package nscp

import (
	"fmt"

	"github.com/alexiusacademia/gotruss/internal/truss"
	"golang.org/x/sync/errgroup"
)

// MemberEnvelope holds the governing forces of one member across combinations
type MemberEnvelope struct {
	MaxTension       float64 // largest positive force, 0 if never in tension
	TensionCombo     string
	MaxCompression   float64 // most negative force, 0 if never in compression
	CompressionCombo string
}

// Envelope collects per-member extremes over a set of load combinations
type Envelope struct {
	Combinations []LoadCombination
	Results      []*truss.Result // one per combination, same order
	Members      []MemberEnvelope
}

// ComputeEnvelope solves the truss once per combination and keeps the
// governing tension and compression of every member.
// Each combination is solved on its own factored copy, so the solves run concurrently.
func ComputeEnvelope(t *truss.Truss, combinations []LoadCombination, opts truss.Options) (*Envelope, error) {
	env := &Envelope{
		Combinations: combinations,
		Results:      make([]*truss.Result, len(combinations)),
		Members:      make([]MemberEnvelope, len(t.Members)),
	}

	var g errgroup.Group
	for i, lc := range combinations {
		i, lc := i, lc
		g.Go(func() error {
			ft, err := Factor(t, lc)
			if err != nil {
				return fmt.Errorf("combination %s: %w", lc.ID, err)
			}
			res, err := truss.Solve(ft, opts)
			if err != nil {
				return fmt.Errorf("combination %s: %w", lc.ID, err)
			}
			env.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, res := range env.Results {
		id := combinations[i].ID
		for k, f := range res.Forces {
			m := &env.Members[k]
			if f > m.MaxTension {
				m.MaxTension, m.TensionCombo = f, id
			}
			if f < m.MaxCompression {
				m.MaxCompression, m.CompressionCombo = f, id
			}
		}
	}

	return env, nil
}
