package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gotruss/internal/logging"
	"github.com/alexiusacademia/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Planar Truss Analysis Tool",
	Long: `gotruss - Go Planar Truss Analyzer

A CLI tool for the analysis of pin-jointed, statically determinate
planar trusses by the method of joints.

This tool helps structural engineers:
  - Check static determinacy (m + r = 2n)
  - Solve member axial forces (tension positive) and support reactions
  - Factor loads with NSCP 2015 load combinations
  - Find governing member forces over all combinations
  - Export truss diagrams (png, svg, pdf) and calculated values (JSON)

Truss descriptions are read from JSON or YAML files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotruss v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Planar Truss Analyzer                                ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the analysis of statically determinate")
		fmt.Println("  planar trusses by the method of joints.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Static determinacy check")
		fmt.Println("    • Member forces and support reactions")
		fmt.Println("    • NSCP load combinations and force envelopes")
		fmt.Println("    • Truss diagrams with force overlays")
		fmt.Println()
		fmt.Println("  Use 'gotruss --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline stages to stderr (debug level)")
}
