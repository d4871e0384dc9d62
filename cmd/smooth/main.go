// Command smooth filters a stream of samples read from stdin.
//
// Usage:
//
//	smooth [flags] < samples.txt > filtered.txt
//
// Input is one number per line. Blank lines and lines starting with '#' are
// skipped. Output is one filtered number per input sample.
//
// Examples:
//
//	smooth -filter oneeuro -dt 0.01 -cutoff 1 -beta 0.007 < imu.txt
//	smooth -filter median -window 5 < spikes.txt
//	smooth -filter lowpass -cutoff 2 -response
//	smooth -filter eva -rate 200 < samples.txt
//	smooth -list
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter"
	"github.com/cwbudde/algo-smooth/dsp/filter/registry"
	"github.com/cwbudde/algo-smooth/measure/response"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	kind     string
	dt       float64
	rate     float64
	cutoff   float64
	beta     float64
	dcutoff  float64
	window   int
	size     int
	response bool
	list     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("smooth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.kind, "filter", "oneeuro", "filter kind (see -list)")
	fs.Float64Var(&opts.dt, "dt", core.DefaultSamplingConfig().DeltaTime, "sampling interval in seconds")
	fs.Float64Var(&opts.rate, "rate", 0, "sample rate in Hz; overrides -dt when set")
	fs.Float64Var(&opts.cutoff, "cutoff", 1, "lowpass cutoff / oneeuro minimum cutoff in Hz")
	fs.Float64Var(&opts.beta, "beta", math.NaN(), "oneeuro speed coefficient or eva weight (default per filter)")
	fs.Float64Var(&opts.dcutoff, "dcutoff", 1, "oneeuro derivative cutoff in Hz")
	fs.IntVar(&opts.window, "window", 5, "average/median window length")
	fs.IntVar(&opts.size, "size", 1024, "impulse response length for -response")
	fs.BoolVar(&opts.response, "response", false, "print the magnitude response instead of filtering")
	fs.BoolVar(&opts.list, "list", false, "list available filter kinds")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: smooth [flags] < samples > filtered\n\n")
		fmt.Fprintf(stderr, "Filters one sample per line from stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.list {
		for _, k := range registry.Kinds() {
			fmt.Fprintln(stdout, k)
		}
		return 0
	}

	cfg, err := samplingConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	opts.dt = cfg.DeltaTime

	spec, err := buildSpec(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	f, err := registry.New(spec)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if opts.response {
		if err := printResponse(stdout, f, opts.size, cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := filterStream(stdin, stdout, f); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// samplingConfig resolves -dt and -rate. A set -rate wins.
func samplingConfig(opts options) (core.SamplingConfig, error) {
	if !(opts.dt > 0) || !core.IsFinite(opts.dt) {
		return core.SamplingConfig{}, fmt.Errorf("-dt must be > 0 and finite: %g", opts.dt)
	}

	if opts.rate < 0 || !core.IsFinite(opts.rate) {
		return core.SamplingConfig{}, fmt.Errorf("-rate must be > 0 and finite: %g", opts.rate)
	}

	return core.ApplySamplingOptions(
		core.WithDeltaTime(opts.dt),
		core.WithSampleRate(opts.rate),
	), nil
}

func buildSpec(opts options) (registry.Spec, error) {
	kind, err := registry.ParseKind(opts.kind)
	if err != nil {
		return registry.Spec{}, err
	}

	spec := registry.DefaultSpec(kind)
	spec.DeltaTime = opts.dt
	spec.CutoffHz = opts.cutoff
	spec.DerivativeCutoffHz = opts.dcutoff
	spec.Window = opts.window
	if !math.IsNaN(opts.beta) {
		spec.Beta = opts.beta
	}

	return spec, nil
}

func filterStream(r io.Reader, w io.Writer, f filter.Filter[float64]) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			_ = bw.Flush()
			return fmt.Errorf("line %d: invalid sample %q", line, text)
		}

		if _, err := bw.WriteString(strconv.FormatFloat(f.Update(x), 'g', -1, 64) + "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if err := sc.Err(); err != nil {
		_ = bw.Flush()
		return fmt.Errorf("read input: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func printResponse(w io.Writer, f filter.Filter[float64], size int, cfg core.SamplingConfig) error {
	freqs, mags, err := response.Magnitude(f, size, cfg.SampleRate())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\t|H|\t|H| [dB]\n"); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t---\t--------\n"); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	// Log-spaced rows keep the table short for large sizes.
	next := 0
	for k := range freqs {
		if k != next && k != len(freqs)-1 {
			continue
		}
		next = max(k+1, int(float64(k)*1.25))

		if _, err := fmt.Fprintf(tw, "%.4f\t%.6f\t%.2f\n", freqs[k], mags[k], core.LinearToDB(mags[k])); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}

	return tw.Flush()
}
