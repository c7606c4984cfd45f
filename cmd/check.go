package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/trussio"
	"github.com/spf13/cobra"
)

var (
	checkFile        string
	checkShowDiagram bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check static determinacy without solving",
	Long: `Count joints (n), members (m) and reaction unknowns (r) and check
that m + r = 2n.

Passing the count test is necessary but not sufficient: an unstable
arrangement (e.g. collinear members) is only detected by 'gotruss solve'.

Examples:
  gotruss check --file warren.json
  gotruss check -f warren.yaml --diagram`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to truss JSON/YAML file [required]")
	checkCmd.MarkFlagRequired("file")
	checkCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show ASCII truss sketch")
}

func runCheck(cmd *cobra.Command, args []string) error {
	t, err := trussio.Load(checkFile)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	n, m, r := len(t.Joints), len(t.Members), t.ReactionCount()

	printHeader("STATIC DETERMINACY CHECK")

	printSection("COUNTS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joints (n):\t%d\n", n)
	fmt.Fprintf(w, "  Members (m):\t%d\n", m)
	fmt.Fprintf(w, "  Reaction unknowns (r):\t%d\n", r)
	fmt.Fprintf(w, "  Unknowns (m + r):\t%d\n", m+r)
	fmt.Fprintf(w, "  Equations (2n):\t%d\n", 2*n)
	w.Flush()
	fmt.Println()

	if checkShowDiagram {
		fmt.Println(diagram.DrawASCIITruss(diagram.NewTrussDiagramData(t, nil)))
	}

	if err := t.CheckDeterminacy(); err != nil {
		logger.Warn("determinacy check failed", "file", checkFile, "error", err)
		fmt.Println("STATUS:")
		fmt.Println(rule)
		fmt.Printf("  ✗ %v\n", err)
		fmt.Printf("  %s\n", describeFailure(err))
		fmt.Println()
		return err
	}

	fmt.Println("STATUS:")
	fmt.Println(rule)
	fmt.Println("  ✓ Statically determinate by count (m + r = 2n)")
	fmt.Println()
	return nil
}
