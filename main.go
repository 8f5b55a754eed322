package main

import (
	"fmt"
	"os"
	"path/filepath"

	"showcase/app"
	"showcase/bench"
	"showcase/config"
	"showcase/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "1.0.0"

	itemsFlag int
	seedFlag  int64
	naiveFlag bool
	plainFlag bool

	scenariosFlag     string
	initScenariosFlag string

	rootCmd = &cobra.Command{
		Use:   "showcase",
		Short: "Windowed list rendering demo over a generated product catalog",
		Long: `showcase renders a 10,000 row product catalog in the terminal two ways:
through a memoized, windowed pipeline, and naively with every row rebuilt on
every interaction. The status bar counts recomputes, cache hits and
materialized rows while you filter, sort and navigate, so the difference is
visible instead of theoretical. Press v inside the app to switch modes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("showcase must be run from a terminal")
			}
			if plainFlag {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			cfg := config.LoadConfig()
			if cmd.Flags().Changed("items") {
				cfg.ItemCount = itemsFlag
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seedFlag
			}
			if naiveFlag {
				cfg.NaiveDefault = true
			}

			return app.Run(cmd.Context(), cfg)
		},
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Measure the naive and optimized render paths headlessly",
		Long: `bench drives both render paths through scripted workloads without a
terminal and reports frame times, recompute counts and rows built. Workloads
come from a TOML scenario file; without one a default set covering the demo's
catalog sizes is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			if initScenariosFlag != "" {
				if err := bench.WriteDefaultScenarios(initScenariosFlag); err != nil {
					return err
				}
				fmt.Printf("wrote default scenarios to %s\n", initScenariosFlag)
				return nil
			}

			scenarios, err := bench.LoadScenarios(scenariosFlag)
			if err != nil {
				return err
			}
			return bench.Run(os.Stdout, scenarios)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of showcase",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("showcase version %s\n", version)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Remove saved state so first-run help screens show again",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := log.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			for _, name := range []string{config.StateFileName, config.LockFileName} {
				path := filepath.Join(configDir, name)
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove %s: %w", path, err)
				}
			}
			fmt.Println("state reset")
			return nil
		},
	}
)

func init() {
	rootCmd.Flags().IntVar(&itemsFlag, "items", 0, "Number of catalog items to generate (overrides config)")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "Generator seed (overrides config)")
	rootCmd.Flags().BoolVar(&naiveFlag, "naive", false, "Start in naive full-render mode")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Disable colors and styling")

	benchCmd.Flags().StringVar(&scenariosFlag, "scenarios", "", "Path to a TOML scenario file")
	benchCmd.Flags().StringVar(&initScenariosFlag, "init", "", "Write the default scenario set to this path and exit")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
