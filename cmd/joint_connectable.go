package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/admissibility"
	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/spf13/cobra"
)

var (
	connectableFile       string
	connectableFrom       int
	connectableEditBar    int
	connectableExplain    bool
	connectableDiagram    bool
	connectableExportFile string
)

var jointConnectableCmd = &cobra.Command{
	Use:   "connectable",
	Short: "List joints that may be the other end of a bar",
	Long: `List the joints that may be chosen as the second endpoint of a bar
starting at the given joint.

A candidate is rejected when the bar would be too short or too long,
would pass through another joint, or would overlap an existing bar
lying on the same line. Joints already connected to the first joint
are skipped.

With --edit-bar the query is made for changing an existing bar: its
current far end stays selectable and the bar itself is ignored by the
overlap check.

Examples:
  gotruss joint connectable --file pratt.json --from 1
  gotruss joint connectable -f pratt.json --from 2 --edit-bar 5 --explain
  gotruss joint connectable -f pratt.json --from 2 -o candidates.png`,
	RunE: runJointConnectable,
}

func init() {
	jointCmd.AddCommand(jointConnectableCmd)

	jointConnectableCmd.Flags().StringVarP(&connectableFile, "file", "f", "", "Path to truss JSON file [required]")
	jointConnectableCmd.Flags().IntVar(&connectableFrom, "from", 0, "Number of the first joint [required]")
	jointConnectableCmd.Flags().IntVar(&connectableEditBar, "edit-bar", 0, "Number of the bar being edited")
	jointConnectableCmd.MarkFlagRequired("file")
	jointConnectableCmd.MarkFlagRequired("from")

	// Output options
	jointConnectableCmd.Flags().BoolVar(&connectableExplain, "explain", false, "Show why each other joint was rejected")
	jointConnectableCmd.Flags().BoolVar(&connectableDiagram, "diagram", false, "Show ASCII topology diagram")
	jointConnectableCmd.Flags().StringVarP(&connectableExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runJointConnectable(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ws, err := openTruss(connectableFile)
	if err != nil {
		return fmt.Errorf("loading truss: %w", err)
	}
	topo := ws.topo

	first, ok := topo.JointAt(connectableFrom)
	if !ok {
		return fmt.Errorf("joint %d does not exist (truss has %d joints)", connectableFrom, topo.Len())
	}

	var opts []admissibility.Option
	var edited truss.BarID
	if connectableEditBar != 0 {
		bar, ok := topo.BarAt(connectableEditBar)
		if !ok {
			return fmt.Errorf("bar %d does not exist (truss has %d bars)", connectableEditBar, topo.BarLen())
		}
		if bar.First != first.ID && bar.Second != first.ID {
			return fmt.Errorf("bar %d does not end at joint %d", connectableEditBar, connectableFrom)
		}
		edited = bar.ID
		opts = append(opts, admissibility.ExcludeBar(bar.ID))
	}

	verdicts, err := ws.engine.EvaluateAll(topo, first.ID, opts...)
	if err != nil {
		return err
	}

	var candidates []truss.JointID
	for _, v := range verdicts {
		if v.OK() {
			candidates = append(candidates, v.Candidate)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	if edited != 0 {
		fmt.Fprintf(out, "     CONNECTABLE JOINTS - EDIT BAR %d FROM JOINT %d\n", connectableEditBar, connectableFrom)
	} else {
		fmt.Fprintf(out, "     CONNECTABLE JOINTS - NEW BAR FROM JOINT %d\n", connectableFrom)
	}
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if topo.Name != "" {
		fmt.Fprintf(out, "  Truss: %s\n", topo.Name)
	}
	label := ws.coord.Label
	fmt.Fprintf(out, "  First joint: %d at (%g, %g) %s\n", connectableFrom, first.X, first.Y, label)
	fmt.Fprintf(out, "  Bar length limits: %g < L < %g %s\n", ws.limits.Min, ws.limits.Max, label)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "CONNECTABLE:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if len(candidates) == 0 {
		fmt.Fprintln(out, "  No joint can be connected.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tJoint\tX\tY\tLength (%s)\n", label)
		fmt.Fprintf(w, "  ─\t─────\t─\t─\t──────────\n")
		n := 0
		for _, v := range verdicts {
			if !v.OK() {
				continue
			}
			n++
			j, _ := topo.Joint(v.Candidate)
			fmt.Fprintf(w, "  %d\t%d\t%g\t%g\t%.4f\n", n, topo.Position(j.ID), j.X, j.Y, v.Length)
		}
		w.Flush()
	}
	fmt.Fprintln(out)

	if connectableExplain {
		fmt.Fprintln(out, "REJECTED:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Joint\tReason\n")
		fmt.Fprintf(w, "  ─────\t──────\n")
		for _, v := range verdicts {
			if v.OK() || v.Reason == admissibility.SameJoint {
				continue
			}
			fmt.Fprintf(w, "  %d\t%s\n", topo.Position(v.Candidate), ws.describe(v))
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	data := diagramData(topo, fmt.Sprintf("Connectable from joint %d", connectableFrom), first.ID, candidates, edited)

	if connectableDiagram {
		fmt.Fprintln(out, diagram.DrawASCIITruss(data))
	}

	if connectableExportFile != "" {
		if err := diagram.ExportTruss(data, connectableExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", connectableExportFile)
	}
	return nil
}
