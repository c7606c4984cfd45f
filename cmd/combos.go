package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var combosSimplified bool

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List NSCP load combinations",
	Long: `List the NSCP 2015 Section 203.3.1 load combinations and their
load factors.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  gotruss combos
  gotruss combos --simplified`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().BoolVarP(&combosSimplified, "simplified", "s", false, "Show simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runCombos(cmd *cobra.Command, args []string) {
	printHeader("NSCP 2015 LOAD COMBINATIONS (Section 203.3)")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tD\tL\tLr\tW\tE\tR\n")
	fmt.Fprintf(w, "  ─\t───────────\t─\t─\t──\t─\t─\t─\n")
	for _, c := range combinationSet(combosSimplified) {
		fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			c.ID, c.Description, c.Dead, c.Live, c.Roof, c.Wind, c.Earthquake, c.Rain)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Untagged loads in a truss file are applied with factor 1.0.")
	fmt.Println()
}
