package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TrevorS/voxtree"
)

// --- Global Command Variables ---
var (
	verbose     bool
	showMetrics bool
	sliceAxis   string
	sliceLevel  int
	traceFrom   []float64
	traceTo     []float64

	rootCmd = &cobra.Command{
		Use:          "voxscan",
		Short:        "Build voxel scenes into octrees and inspect their surfaces",
		SilenceUsage: true,
	}

	statsCmd = &cobra.Command{
		Use:   "stats [scene.yaml]",
		Short: "Count the faces of a scene and report store and cache sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	sliceCmd = &cobra.Command{
		Use:   "slice [scene.yaml]",
		Short: "Draw one interior plane of a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runSlice,
	}

	traceCmd = &cobra.Command{
		Use:   "trace [scene.yaml]",
		Short: "List the faces crossed by a segment through a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity at debug level")

	statsCmd.Flags().BoolVar(&showMetrics, "metrics", false, "also print the Prometheus counters")

	sliceCmd.Flags().StringVar(&sliceAxis, "axis", "y", "axis perpendicular to the plane (x, y or z)")
	sliceCmd.Flags().IntVar(&sliceLevel, "level", 0, "plane between cells level and level+1")

	traceCmd.Flags().Float64SliceVar(&traceFrom, "from", nil, "start point x,y,z")
	traceCmd.Flags().Float64SliceVar(&traceTo, "to", nil, "end point x,y,z")
	_ = traceCmd.MarkFlagRequired("from")
	_ = traceCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(statsCmd, sliceCmd, traceCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openWorld(cmd *cobra.Command, path string) (*world, error) {
	logger, err := newLogger(verbose)
	if err != nil {
		return nil, errors.Wrap(err, "creating logger")
	}
	sc, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	return newWorld(cmd.Context(), sc, logger)
}

func runStats(cmd *cobra.Command, args []string) error {
	w, err := openWorld(cmd, args[0])
	if err != nil {
		return err
	}
	defer w.logger.Sync() //nolint:errcheck

	fmt.Fprintln(cmd.OutOrStdout(), w.summarize())
	if !showMetrics {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(voxtree.NewCollector("voxscan", w.stats)); err != nil {
		return errors.Wrap(err, "registering collector")
	}
	out, err := renderMetrics(reg)
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	axis, err := parseAxis(sliceAxis)
	if err != nil {
		return err
	}
	w, err := openWorld(cmd, args[0])
	if err != nil {
		return err
	}
	defer w.logger.Sync() //nolint:errcheck

	if last := w.volume.Node().Size() - 2; sliceLevel < 0 || sliceLevel > last {
		return errors.Errorf("level must be between 0 and %d, got %d", last, sliceLevel)
	}
	plane := voxtree.SliceShape[string, face](w.volume, w.surfacer, axis, sliceLevel, face{})
	fmt.Fprint(cmd.OutOrStdout(), renderPlane(plane))
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	from, err := parseVec(traceFrom)
	if err != nil {
		return errors.Wrap(err, "--from")
	}
	to, err := parseVec(traceTo)
	if err != nil {
		return errors.Wrap(err, "--to")
	}
	w, err := openWorld(cmd, args[0])
	if err != nil {
		return err
	}
	defer w.logger.Sync() //nolint:errcheck

	hits := voxtree.TraceRay[face](w.surface(), from, to, face{})
	fmt.Fprintln(cmd.OutOrStdout(), renderTrace(hits))
	return nil
}

func parseAxis(s string) (voxtree.Axis, error) {
	for _, a := range voxtree.Axes(voxtree.MaxDimension) {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown axis %q (want x, y or z)", s)
}

func parseVec(v []float64) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, errors.Errorf("want 3 coordinates, got %d", len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
