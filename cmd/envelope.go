package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/nscp"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/alexiusacademia/gotruss/internal/trussio"
	"github.com/spf13/cobra"
)

var (
	envelopeFile       string
	envelopeSimplified bool
	envelopeShowAll    bool
	envelopeCondLimit  float64
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Governing member forces over NSCP load combinations",
	Long: `Solve the truss for every NSCP 2015 load combination and report the
maximum tension and compression of each member with the combination
that produces it.

Loads are tagged with their case in the truss file (D, L, Lr, W, E, R).
Untagged loads are treated as already factored.

Examples:
  gotruss envelope --file roof.json
  gotruss envelope -f roof.yaml --simplified --all`,
	RunE: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	envelopeCmd.Flags().StringVarP(&envelopeFile, "file", "f", "", "Path to truss JSON/YAML file [required]")
	envelopeCmd.MarkFlagRequired("file")
	envelopeCmd.Flags().BoolVarP(&envelopeSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	envelopeCmd.Flags().BoolVarP(&envelopeShowAll, "all", "a", false, "Show member forces for every combination")
	envelopeCmd.Flags().Float64Var(&envelopeCondLimit, "cond-limit", truss.DefaultConditionLimit, "Condition number above which the truss is reported unstable")
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	t, err := trussio.Load(envelopeFile)
	if err != nil {
		return err
	}

	combinations := combinationSet(envelopeSimplified)
	logger.Debug("computing envelope", "combinations", len(combinations))

	env, err := nscp.ComputeEnvelope(t, combinations, truss.Options{ConditionLimit: envelopeCondLimit})
	if err != nil {
		logger.Error("envelope failed", "error", err)
		if hint := describeFailure(err); hint != "" {
			fmt.Printf("  %s\n", hint)
		}
		return err
	}

	printHeader("MEMBER FORCE ENVELOPE - NSCP 2015 LOAD COMBINATIONS")

	if envelopeShowAll {
		printSection("MEMBER FORCES PER COMBINATION:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Member")
		for _, lc := range env.Combinations {
			fmt.Fprintf(w, "\t%s", lc.ID)
		}
		fmt.Fprintln(w)
		for k := range t.Members {
			fmt.Fprintf(w, "  %s", t.MemberName(k))
			for _, res := range env.Results {
				fmt.Fprintf(w, "\t%.2f", res.Forces[k])
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
	}

	printSection("GOVERNING FORCES:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tMax Tension\tCombo\tMax Compression\tCombo\n")
	fmt.Fprintf(w, "  ──────\t───────────\t─────\t───────────────\t─────\n")
	for k, m := range env.Members {
		fmt.Fprintf(w, "  %s\t%.2f\t%s\t%.2f\t%s\n", t.MemberName(k),
			m.MaxTension, orDash(m.TensionCombo), m.MaxCompression, orDash(m.CompressionCombo))
	}
	w.Flush()
	fmt.Println()

	printSection("COMBINATIONS:")
	for _, lc := range env.Combinations {
		fmt.Printf("  %s: %s\n", lc.ID, lc.Description)
	}
	fmt.Println()
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
