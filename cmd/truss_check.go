package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var checkFile string

var trussCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-check every bar against the placement rules",
	Long: `Re-check every bar of a truss as if it were being edited: its
length must be within the limits, it must not pass through a joint and
it must not overlap another bar along the same line.

Trusses drawn in gotruss always pass; imported or hand-written files
may not. The command fails when any bar is rejected.

Examples:
  gotruss truss check --file pratt.json
  gotruss truss check -f pratt.json --units mm`,
	RunE: runTrussCheck,
}

func init() {
	trussCmd.AddCommand(trussCheckCmd)

	trussCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to truss JSON file [required]")
	trussCheckCmd.MarkFlagRequired("file")
}

func runTrussCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ws, err := openTruss(checkFile)
	if err != nil {
		return fmt.Errorf("loading truss: %w", err)
	}
	topo := ws.topo

	violations, err := ws.engine.AuditBars(topo)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     BAR PLACEMENT CHECK")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if topo.Name != "" {
		fmt.Fprintf(out, "  Truss: %s\n", topo.Name)
	}
	fmt.Fprintf(out, "  Bars checked: %d\n", topo.BarLen())
	fmt.Fprintln(out)

	if len(violations) == 0 {
		fmt.Fprintln(out, "STATUS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		fmt.Fprintln(out, "  ✓ All bars satisfy the placement rules")
		fmt.Fprintln(out)
		return nil
	}

	fmt.Fprintln(out, "VIOLATIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tJoints\tProblem\n")
	fmt.Fprintf(w, "  ───\t──────\t───────\n")
	for _, v := range violations {
		b, _ := topo.Bar(v.Bar)
		fmt.Fprintf(w, "  %d\t%d-%d\t%s\n", barNumber(topo, v.Bar),
			topo.Position(b.First), topo.Position(b.Second), ws.describe(v.Verdict))
	}
	w.Flush()
	fmt.Fprintln(out)

	return fmt.Errorf("%d of %d bars violate the placement rules", len(violations), topo.BarLen())
}
