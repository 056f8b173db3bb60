package cmd

import (
	"github.com/spf13/cobra"
)

var trussCmd = &cobra.Command{
	Use:   "truss",
	Short: "Inspect and check a truss model",
	Long: `Inspect and check a truss described in a JSON file.

Subcommands:
  info   - List joints and bars
  check  - Re-check every bar against the placement rules

Example JSON file structure:
{
  "name": "Pratt truss",
  "units": "m",
  "joints": [
    {"x": 0, "y": 0, "supported": true},
    {"x": 4, "y": 0},
    {"x": 8, "y": 0, "supported": true},
    {"x": 4, "y": 3}
  ],
  "bars": [
    {"first": 1, "second": 2, "area": 0.0025, "modulus": 2e11},
    {"first": 2, "second": 3},
    {"first": 1, "second": 4},
    {"first": 4, "second": 3},
    {"first": 2, "second": 4}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(trussCmd)
}
