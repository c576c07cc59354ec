// Command curve-eval evaluates a keyframe track file and prints its values.
//
// Usage:
//
//	curve-eval -track fade.toml -at 1.25s          # Single query
//	curve-eval -track fade.yaml -from 0 -to 2s     # Table at 60 fps
//	curve-eval -track fade.yaml -stats -rate 144   # Per-channel statistics
//	curve-eval -demo                               # Built-in track
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	keyframe "github.com/tphakala/go-keyframe"
	"github.com/tphakala/go-keyframe/internal/trackfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	track    string
	at       time.Duration
	hasAt    bool
	from     time.Duration
	to       time.Duration
	rate     float64
	channels int
	stats    bool
	parallel bool
	demo     bool
	verbose  bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("curve-eval", flag.ContinueOnError)

	var o options
	fs.StringVar(&o.track, "track", "", "Track file (.toml, .yaml or .yml)")
	fs.DurationVar(&o.at, "at", 0, "Evaluate at a single time")
	fs.DurationVar(&o.from, "from", 0, "Table start time")
	fs.DurationVar(&o.to, "to", 0, "Table end time (default: one loop of the track)")
	fs.Float64Var(&o.rate, "rate", defaultRate, "Rows or samples per second")
	fs.IntVar(&o.channels, "channels", 0, "Channels to print (default: all)")
	fs.BoolVar(&o.stats, "stats", false, "Print per-channel statistics instead of values")
	fs.BoolVar(&o.parallel, "parallel", true, "Sample on all CPUs for -stats")
	fs.BoolVar(&o.demo, "demo", false, "Use a built-in demo track")
	fs.BoolVar(&o.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "at" {
			o.hasAt = true
		}
	})

	if o.track == "" && !o.demo {
		return nil, fmt.Errorf("either -track or -demo is required")
	}
	if o.rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %g", o.rate)
	}

	return &o, nil
}

func run(args []string, w io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	track, err := loadTrack(o)
	if err != nil {
		return err
	}

	channels := track.Channels
	if o.channels > 0 {
		channels = min(o.channels, track.Channels)
	}

	if o.verbose {
		log.Printf("Track: %d points, %d channels, span %v", track.Len(), track.Channels, track.Span())
	}

	switch {
	case o.hasAt:
		v := track.At(o.at)
		_, err = fmt.Fprintf(w, "%v\t%s\n", o.at, formatValue(v[:channels]))
		return err

	case o.stats:
		return printStats(w, track, o, channels)

	default:
		return printTable(w, track, o, channels)
	}
}

func loadTrack(o *options) (keyframe.Track[float64], error) {
	if o.demo {
		return demoTrack()
	}
	return trackfile.Load(o.track)
}

// demoTrack returns a two-channel track using every curve kind.
func demoTrack() (keyframe.Track[float64], error) {
	bez := keyframe.Tangent{
		Out: keyframe.H(demoStep/2, 0),
		In:  keyframe.H(demoStep/2, 0),
	}
	return keyframe.NewTrack(demoChannels,
		keyframe.Key(0, keyframe.Step(), 0.0, 1.0),
		keyframe.Key(demoStep, keyframe.Linear(), 0.25, 0.75),
		keyframe.Key(2*demoStep, keyframe.Slow(), 0.5, 0.5),
		keyframe.Key(3*demoStep, keyframe.Fast(), 1.0, 0.0),
		keyframe.Key(4*demoStep, keyframe.Smooth(), 0.0, 1.0),
		keyframe.Key(5*demoStep, keyframe.Bezier(bez, bez), 1.0, 0.0),
		keyframe.Key(demoLength, keyframe.Linear(), 0.0, 1.0),
	)
}

func printTable(w io.Writer, track keyframe.Track[float64], o *options, channels int) error {
	to := o.to
	if to == 0 {
		to = o.from + track.Span()
	}
	if to < o.from {
		return fmt.Errorf("-to %v is before -from %v", to, o.from)
	}

	step := time.Duration(float64(time.Second) / o.rate)
	if step <= 0 {
		return fmt.Errorf("rate %g is too high", o.rate)
	}

	for at := o.from; at <= to; at += step {
		v := track.At(at)
		if _, err := fmt.Fprintf(w, "%v\t%s\n", at, formatValue(v[:channels])); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', valuePrecision, 64)
	}
	return strings.Join(parts, "\t")
}
