package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/nscp"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/alexiusacademia/gotruss/internal/trussio"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

// loadTruss reads the truss file and, when comboID is set, factors its loads
func loadTruss(path, comboID string, simplified bool) (*truss.Truss, *nscp.LoadCombination, error) {
	logger.Debug("loading truss", "file", path)
	t, err := trussio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("truss loaded", "joints", len(t.Joints), "members", len(t.Members),
		"supports", len(t.Supports), "loads", len(t.Loads))

	if comboID == "" {
		return t, nil, nil
	}

	lc, err := nscp.GetCombination(comboID, combinationSet(simplified))
	if err != nil {
		return nil, nil, err
	}
	ft, err := nscp.Factor(t, lc)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loads factored", "combination", lc.ID, "description", lc.Description, "loads", len(ft.Loads))
	return ft, &lc, nil
}

func combinationSet(simplified bool) []nscp.LoadCombination {
	if simplified {
		return nscp.SimplifiedCombinations
	}
	return nscp.LoadCombinations
}

func printInput(t *truss.Truss) {
	printSection("JOINTS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint\tX\tY\tSupport\n")
	fmt.Fprintf(w, "  ─────\t─\t─\t───────\n")
	supports := make(map[truss.JointID]string)
	for _, s := range t.Supports {
		supports[s.Joint] = s.Kind.String()
	}
	for i, j := range t.Joints {
		s := supports[truss.JointID(i)]
		if s == "" {
			s = "-"
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%s\n", j.Name, j.X, j.Y, s)
	}
	w.Flush()
	fmt.Println()

	printSection("LOADS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint\tFx\tFy\tCase\n")
	fmt.Fprintf(w, "  ─────\t──\t──\t────\n")
	for _, l := range t.Loads {
		fx, fy := l.Components()
		c := l.Case
		if c == "" {
			c = "-"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\n", t.Joints[l.Joint].Name, fx, fy, c)
	}
	w.Flush()
	fmt.Println()
}

func printMemberForces(t *truss.Truss, res *truss.Result) {
	printSection("MEMBER FORCES (positive = tension):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tLength\tAngle (°)\tForce\tState\n")
	fmt.Fprintf(w, "  ──────\t──────\t─────────\t─────\t─────\n")
	tol := trussio.StateTolerance * max(1, res.MaxAbsForce())
	for k, m := range t.Members {
		f := res.Forces[k]
		fmt.Fprintf(w, "  %s\t%.3f\t%.2f\t%.2f\t%s\n", t.MemberName(k), t.Length(m), t.Angle(m), f, truss.State(f, tol))
	}
	w.Flush()
	fmt.Println()
}

func printReactions(t *truss.Truss, res *truss.Result) {
	printSection("SUPPORT REACTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range res.Reactions {
		fmt.Fprintf(w, "  R%s at %s:\t%.2f\n", r.Axis, t.Joints[r.Joint].Name, r.Value)
	}
	w.Flush()
	fmt.Println()
}

// describeFailure turns a solve error into the advice shown to the user
func describeFailure(err error) string {
	var de *truss.DeterminacyError
	var se *truss.StructuralInstabilityError
	var ge *truss.InvalidGeometryError
	switch {
	case errors.As(err, &de):
		if de.Kind() == "under-constrained" {
			return "Add members or supports until m + r = 2n."
		}
		return "Remove redundant members or supports until m + r = 2n."
	case errors.As(err, &se):
		return "The count test passes but the truss is a mechanism. Check for collinear or missing members and supports."
	case errors.As(err, &ge):
		return "Correct the truss description and try again."
	}
	return ""
}
