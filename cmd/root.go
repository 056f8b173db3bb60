package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gotruss/internal/settings"
	"github.com/alexiusacademia/gotruss/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
	unitsFlag  string
	verbose    bool

	// cfg is loaded before any subcommand runs
	cfg *settings.Settings
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Plane truss topology checker",
	Long: `gotruss - Go Plane Truss Topology Checker

A CLI tool for editing-time checks on 2D pin-jointed trusses.

For a bar starting at a chosen joint it lists the joints that may be
used as the other end, rejecting candidates that:
  - are shorter or longer than the allowed bar length
  - would pass through another joint
  - would overlap an existing bar along the same line

Trusses are described in JSON files; limits and tolerances can be
set in a TOML settings file or through GOTRUSS_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		s, err := settings.Load(configFile, envFile)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		if unitsFlag != "" {
			if err := s.OverrideUnits(unitsFlag); err != nil {
				return err
			}
		}
		cfg = s
		slog.Debug("settings loaded",
			"units", cfg.Units,
			"min_bar_length", cfg.Limits.Min,
			"max_bar_length", cfg.Limits.Max,
			"tolerance", cfg.Tol().Small)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gotruss v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Plane Truss Topology Checker                         ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Connectable joints for new and edited bars")
		fmt.Fprintln(out, "    • Rejection reasons for every candidate joint")
		fmt.Fprintln(out, "    • Model-wide audit of existing bars")
		fmt.Fprintln(out, "    • ASCII and png/svg/pdf topology diagrams")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gotruss --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
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

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (TOML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file with GOTRUSS_* overrides")
	rootCmd.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "", "Unit system (m, cm, mm, ft, in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log rejected candidates")
}
