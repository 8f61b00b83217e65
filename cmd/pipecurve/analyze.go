package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tubelab/geom"
	"github.com/tubelab/geom/curvature"
	"github.com/tubelab/geom/layers"
	"github.com/tubelab/geom/pointsource"
	"github.com/tubelab/geom/scene"
	"github.com/ungerik/go3d/float64/vec3"
)

func runAnalyze(cmd *cobra.Command, opts *rootOptions) error {
	format, err := outputFormat(opts.Output)
	if err != nil {
		return err
	}
	points, err := loadPoints(cmd.Context(), cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}
	snap := scene.Build(points, scene.OptionsFrom(configFrom(cmd.Context())))
	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), snap)
	}
	return writeSummary(cmd.OutOrStdout(), snap)
}

// loadPoints returns nil if no source is given, which selects the default
// centerline.
func loadPoints(ctx context.Context, stdin io.Reader, opts *rootOptions) ([]vec3.T, error) {
	switch {
	case opts.Input != "" && opts.URL != "":
		return nil, ErrConflictingSources
	case opts.Input == "-":
		return pointsource.Decode(stdin)
	case opts.Input != "":
		return pointsource.ReadFile(opts.Input)
	case opts.URL != "":
		ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
		return pointsource.Fetch(ctx, nil, opts.URL)
	}
	tracer().Infof("no control points given, using default centerline")
	return nil, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(w io.Writer, snap *scene.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "knots\t%d\n", len(snap.Knots))
	fmt.Fprintf(tw, "kind\t%s\n", snap.Curve.Kind())
	fmt.Fprintf(tw, "tension\t%g\n", snap.Curve.Tension())
	fmt.Fprintf(tw, "length\t%.2f\n", snap.Length)
	fmt.Fprintf(tw, "degree\t%.3f\n", snap.Degree)
	sum := snap.Summary()
	fmt.Fprintf(tw, "critical points\t%d (high %d, medium %d, low %d)\n", len(snap.CriticalPoints),
		sum[curvature.High], sum[curvature.Medium], sum[curvature.Low])
	fmt.Fprintf(tw, "risk footprint\t%.1f\n", snap.FootprintArea)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "t\ttype\tseverity\tcurvature\tangle\tposition")
	for _, cp := range snap.CriticalPoints {
		fmt.Fprintf(tw, "%.3f\t%s\t%s\t%.5f\t%.1f°\t%s\n", cp.T, cp.Type, cp.Severity,
			cp.Curvature, cp.Angle, geom.VString(geom.ZapV(cp.Position)))
	}
	return tw.Flush()
}

func newLayersCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "Print the material table of the pipe wall layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(opts.Output)
			if err != nil {
				return err
			}
			table := layers.Table()
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), table)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "layer\tmaterial\touter ⌀\tinner ⌀\tpsi\t°F\tGPM")
			for _, m := range table {
				fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%g\t%g\t%g\n", m.Layer, m.Material,
					m.OuterDiameter, m.InnerDiameter, m.Pressure, m.Temperature, m.FlowRate)
			}
			return tw.Flush()
		},
	}
}
