package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/geometry"
	"github.com/spf13/cobra"
)

var (
	infoFile    string
	infoDiagram bool
)

var trussInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "List the joints and bars of a truss",
	Long: `List the joints and bars of a truss with their numbering,
adjacency and member properties.

Examples:
  gotruss truss info --file pratt.json
  gotruss truss info -f pratt.json --diagram`,
	RunE: runTrussInfo,
}

func init() {
	trussCmd.AddCommand(trussInfoCmd)

	trussInfoCmd.Flags().StringVarP(&infoFile, "file", "f", "", "Path to truss JSON file [required]")
	trussInfoCmd.MarkFlagRequired("file")
	trussInfoCmd.Flags().BoolVar(&infoDiagram, "diagram", false, "Show ASCII topology diagram")
}

func runTrussInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ws, err := openTruss(infoFile)
	if err != nil {
		return fmt.Errorf("loading truss: %w", err)
	}
	topo := ws.topo
	label := ws.coord.Label

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     TRUSS TOPOLOGY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if topo.Name != "" {
		fmt.Fprintf(out, "  Truss: %s\n", topo.Name)
	}
	fmt.Fprintf(out, "  Units: %s\n", ws.coord.Name)
	fmt.Fprintf(out, "  Bar length limits: %g < L < %g %s\n", ws.limits.Min, ws.limits.Max, label)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "JOINTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint\tX (%s)\tY (%s)\tSupport\tConnected to\n", label, label)
	fmt.Fprintf(w, "  ─────\t──────\t──────\t───────\t────────────\n")
	for i, j := range topo.Joints() {
		support := ""
		if j.Supported {
			support = "yes"
		}
		var conn []string
		for _, c := range j.ConnectedJoints() {
			conn = append(conn, strconv.Itoa(topo.Position(c)))
		}
		fmt.Fprintf(w, "  %d\t%g\t%g\t%s\t%s\n", i+1, j.X, j.Y, support, strings.Join(conn, ", "))
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BARS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tJoints\tLength (%s)\tArea\tModulus\tFactor\tUnit weight\n", label)
	fmt.Fprintf(w, "  ───\t──────\t──────\t────\t───────\t──────\t───────────\n")
	for i, b := range topo.Bars() {
		j1, _ := topo.Joint(b.First)
		j2, _ := topo.Joint(b.Second)
		length := geometry.Distance(j1.Point(), j2.Point())
		fmt.Fprintf(w, "  %d\t%d-%d\t%.4f\t%g\t%g\t%g\t%g\n", i+1,
			topo.Position(b.First), topo.Position(b.Second), length,
			b.Area, b.Modulus, b.Factor, b.UnitWeight)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("SUMMARY", []string{
		fmt.Sprintf("Joints: %d", topo.Len()),
		fmt.Sprintf("Bars: %d", topo.BarLen()),
		fmt.Sprintf("Supported joints: %d", countSupported(topo.Joints())),
	}))
	fmt.Fprintln(out)

	if infoDiagram {
		fmt.Fprintln(out, diagram.DrawASCIITruss(diagramData(topo, topo.Name, 0, nil, 0)))
	}
	return nil
}
