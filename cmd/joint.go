package cmd

import (
	"github.com/spf13/cobra"
)

var jointCmd = &cobra.Command{
	Use:   "joint",
	Short: "Queries about a single joint",
	Long: `Queries that start from one joint of a truss.

Joints and bars are numbered from 1 in the order they appear in the
truss file.

Subcommands:
  connectable  - List joints that may be the other end of a bar`,
}

func init() {
	rootCmd.AddCommand(jointCmd)
}
