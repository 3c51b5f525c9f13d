// Command splineinfo builds a monotone cubic spline and prints its slopes and
// sampled values.
//
// Usage:
//
//	splineinfo [flags]
//
// Knots and values come either from -knots/-values or from a YAML file with
// "knots" and "values" lists.
//
// Examples:
//
//	splineinfo -knots 0,1,2,2.1,4,5 -values 0,0.5,0.75,1.76,3,4
//	splineinfo -file curve.yaml -samples 50
//	splineinfo -file curve.yaml -from -1 -to 6 -slopes
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spline/spline"
)

// curveFile is the on-disk form accepted by -file.
type curveFile struct {
	Knots  []float64 `yaml:"knots"`
	Values []float64 `yaml:"values"`
}

type options struct {
	knots   string
	values  string
	file    string
	samples int
	from    float64
	to      float64
	slopes  bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("splineinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.knots, "knots", "", "comma-separated knot positions")
	fs.StringVar(&opts.values, "values", "", "comma-separated values, one per knot")
	fs.StringVar(&opts.file, "file", "", "YAML file with knots and values lists")
	fs.IntVar(&opts.samples, "samples", 11, "number of evenly spaced sample points")
	fs.Float64Var(&opts.from, "from", math.NaN(), "first sample position (default: first knot)")
	fs.Float64Var(&opts.to, "to", math.NaN(), "last sample position (default: last knot)")
	fs.BoolVar(&opts.slopes, "slopes", false, "print per-knot slopes")
	fs.BoolVar(&opts.verbose, "v", false, "log diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: splineinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Builds a monotone cubic spline and prints sampled values.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  splineinfo -knots 0,1,2 -values 0,1,4\n")
		fmt.Fprintf(stderr, "  splineinfo -file curve.yaml -samples 50 -slopes\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	knots, values, err := loadInput(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Debug("input loaded", "knots", len(knots), "values", len(values), "file", opts.file)

	c, err := spline.New(knots, values)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if opts.samples < 1 {
		fmt.Fprintf(stderr, "error: samples must be >= 1: %d\n", opts.samples)
		return 1
	}

	lo, hi := c.Domain()
	if !math.IsNaN(opts.from) {
		lo = opts.from
	}
	if !math.IsNaN(opts.to) {
		hi = opts.to
	}
	logger.Debug("sampling", "from", lo, "to", hi, "samples", opts.samples)

	if opts.slopes {
		if err := printSlopes(stdout, c); err != nil {
			fmt.Fprintf(stderr, "error: failed to write slopes: %v\n", err)
			return 1
		}
	}
	if err := printSamples(stdout, c, sampleGrid(lo, hi, opts.samples)); err != nil {
		fmt.Fprintf(stderr, "error: failed to write samples: %v\n", err)
		return 1
	}
	return 0
}

func loadInput(opts options) (knots, values []float64, err error) {
	if opts.file != "" {
		if opts.knots != "" || opts.values != "" {
			return nil, nil, errors.New("use either -file or -knots/-values, not both")
		}
		return readCurveFile(opts.file)
	}
	if opts.knots == "" || opts.values == "" {
		return nil, nil, errors.New("both -knots and -values are required")
	}

	if knots, err = parseList(opts.knots); err != nil {
		return nil, nil, fmt.Errorf("knots: %w", err)
	}
	if values, err = parseList(opts.values); err != nil {
		return nil, nil, fmt.Errorf("values: %w", err)
	}
	return knots, values, nil
}

func readCurveFile(path string) (knots, values []float64, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read curve file: %w", err)
	}

	var cf curveFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, nil, fmt.Errorf("failed to parse curve file %s: %w", path, err)
	}
	return cf.Knots, cf.Values, nil
}

func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func sampleGrid(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + step*float64(i)
	}
	xs[n-1] = hi
	return xs
}

func printSlopes(w io.Writer, c *spline.Curve) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Knot\tValue\tSlope\n----\t-----\t-----\n"); err != nil {
		return err
	}
	knots, values, slopes := c.Knots(), c.Values(), c.Slopes()
	for i := range knots {
		if _, err := fmt.Fprintf(tw, "%g\t%g\t%.6f\n", knots[i], values[i], slopes[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func printSamples(w io.Writer, c *spline.Curve, xs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "x\ty\n-\t-\n"); err != nil {
		return err
	}
	for i, y := range c.EvalMany(xs) {
		if _, err := fmt.Fprintf(tw, "%.6f\t%.6f\n", xs[i], y); err != nil {
			return err
		}
	}
	return tw.Flush()
}
