package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/alexiusacademia/gotruss/internal/trussio"
	"github.com/spf13/cobra"
)

var (
	solveFile        string
	solveCombo       string
	solveSimplified  bool
	solveShowDiagram bool
	solveExportFile  string
	solveSaveFile    string
	solveCondLimit   float64
	solveVerify      bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve member forces and support reactions",
	Long: `Solve a statically determinate planar truss by the method of joints.

Two equilibrium equations are written per joint (ΣFx = 0, ΣFy = 0) and
solved for the member axial forces and the support reactions. A pin
support contributes two reactions (x, y), a roller one (y).

Examples:
  gotruss solve --file warren.json
  gotruss solve -f warren.yaml --diagram -o warren.png
  gotruss solve -f roof.json --combo 2 --save roof_results.json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Path to truss JSON/YAML file [required]")
	solveCmd.MarkFlagRequired("file")

	// Load combination options
	solveCmd.Flags().StringVarP(&solveCombo, "combo", "c", "", "Factor loads with NSCP load combination ID (see 'gotruss combos')")
	solveCmd.Flags().BoolVarP(&solveSimplified, "simplified", "s", false, "Look up --combo in the simplified gravity combinations")

	// Solver options
	solveCmd.Flags().Float64Var(&solveCondLimit, "cond-limit", truss.DefaultConditionLimit, "Condition number above which the truss is reported unstable")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "Check joint equilibrium of the solution")

	// Output options
	solveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show ASCII truss sketch and member force bars")
	solveCmd.Flags().StringVarP(&solveExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	solveCmd.Flags().StringVar(&solveSaveFile, "save", "", "Save calculated values to a JSON file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	t, combo, err := loadTruss(solveFile, solveCombo, solveSimplified)
	if err != nil {
		logger.Error("loading truss failed", "file", solveFile, "error", err)
		return err
	}

	logger.Debug("solving", "cond_limit", solveCondLimit)
	res, err := truss.Solve(t, truss.Options{ConditionLimit: solveCondLimit})
	if err != nil {
		logger.Error("solve failed", "error", err)
		if hint := describeFailure(err); hint != "" {
			fmt.Printf("  %s\n", hint)
		}
		return err
	}
	logger.Debug("solved", "members", len(res.Forces), "reactions", len(res.Reactions))

	printHeader("PLANAR TRUSS ANALYSIS - METHOD OF JOINTS")

	if combo != nil {
		fmt.Printf("  Load Combination: %s (%s)\n", combo.ID, combo.Description)
		fmt.Println()
	}

	printInput(t)
	printMemberForces(t, res)
	printReactions(t, res)

	data := diagram.NewTrussDiagramData(t, res)
	if solveShowDiagram {
		fmt.Println(diagram.DrawASCIITruss(data))
		fmt.Println(diagram.DrawForceBars(data))
	}

	n, m, r := len(t.Joints), len(t.Members), t.ReactionCount()
	lines := []string{
		fmt.Sprintf("Joints n = %d, members m = %d, reactions r = %d", n, m, r),
		fmt.Sprintf("m + r = %d = 2n (statically determinate)", m+r),
	}
	if solveVerify {
		worst := 0.0
		for _, v := range res.Residuals(t) {
			worst = math.Max(worst, math.Abs(v))
		}
		lines = append(lines, fmt.Sprintf("Max joint residual = %.3e", worst))
	}
	fmt.Print(diagram.DrawSummaryBox("STATUS: SOLVED", lines))
	fmt.Println()

	if solveExportFile != "" {
		if err := diagram.ExportTrussDiagram(data, solveExportFile); err != nil {
			logger.Error("diagram export failed", "file", solveExportFile, "error", err)
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", solveExportFile)
	}

	if solveSaveFile != "" {
		if err := trussio.Save(solveSaveFile, t, res); err != nil {
			logger.Error("saving results failed", "file", solveSaveFile, "error", err)
			return fmt.Errorf("saving calculated values: %w", err)
		}
		fmt.Printf("Calculated values saved to: %s\n", solveSaveFile)
	}
	return nil
}
