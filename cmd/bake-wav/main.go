// Command bake-wav renders a keyframe track to a PCM WAV file, one audio
// channel per track channel. Track values are clamped to [-1.0, 1.0] unless
// -normalize is given.
//
// Usage:
//
//	bake-wav fade.toml fade.wav
//	bake-wav -rate 8000 -bits 24 envelope.yaml envelope.wav
//	bake-wav -length 10s -normalize lfo.yaml lfo.wav    # Loop the track for 10s
//	bake-wav -fast -parallel=false fade.toml fade.wav   # float32, single goroutine
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	keyframe "github.com/tphakala/go-keyframe"
	"github.com/tphakala/go-keyframe/internal/simdops"
	"github.com/tphakala/go-keyframe/internal/trackfile"
)

const (
	// Frames written per encoder call
	bufferSize = 65536

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultRate     = 48000
	defaultBits     = bitsPerSample16
	minRequiredArgs = 2
	percentScale    = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type bakeOptions struct {
	rate      int
	bitDepth  int
	start     time.Duration
	length    time.Duration
	normalize bool
	parallel  bool
	verbose   bool
}

type bakeStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int
	peak     float64
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz")
	bits := flag.Int("bits", defaultBits, "Bits per sample: 16, 24 or 32")
	start := flag.Duration("start", 0, "Track time of the first sample")
	length := flag.Duration("length", 0, "Rendered duration (default: one loop of the track)")
	normalize := flag.Bool("normalize", false, "Scale the output so the peak sample is full scale")
	fast := flag.Bool("fast", false, "Sample in float32 precision")
	parallel := flag.Bool("parallel", true, "Sample on all CPUs")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] track.toml output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	trackPath := args[0]
	outputPath := args[1]

	track, err := trackfile.Load(trackPath)
	if err != nil {
		return err
	}

	opts := bakeOptions{
		rate:      *rate,
		bitDepth:  *bits,
		start:     *start,
		length:    *length,
		normalize: *normalize,
		parallel:  *parallel,
		verbose:   *verbose,
	}

	if *verbose {
		log.Printf("Track: %s (%d points, %d channels, span %v)", trackPath, track.Len(), track.Channels, track.Span())
		log.Printf("Output: %s", outputPath)
		log.Printf("Format: %d Hz, %d-bit", opts.rate, opts.bitDepth)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64 (high precision)")
		}
	}

	begin := time.Now()
	var stats *bakeStats
	if *fast {
		stats, err = bakeWAV[float32](track, outputPath, opts)
	} else {
		stats, err = bakeWAV[float64](track, outputPath, opts)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(begin)

	if *verbose {
		info, err := readWAVInfo(outputPath)
		if err != nil {
			return err
		}
		log.Printf("Written: %d Hz, %d channels, %d-bit, %v", info.rate, info.channels, info.bitDepth, info.duration)
	}

	fmt.Printf("Baked %s -> %s\n", filepath.Base(trackPath), filepath.Base(outputPath))
	fmt.Printf("  %d frames at %d Hz (%d channels, %d-bit)\n", stats.frames, stats.rate, stats.channels, stats.bitDepth)
	if opts.normalize {
		fmt.Printf("  Normalized from peak %.6f\n", stats.peak)
	}
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

// bakeWAV samples track and writes it to outputPath.
func bakeWAV[F simdops.Float](track keyframe.Track[float64], outputPath string, opts bakeOptions) (stats *bakeStats, err error) {
	maxVal := getMaxValue(opts.bitDepth)
	if maxVal == 0 {
		return nil, fmt.Errorf("unsupported bit depth %d", opts.bitDepth)
	}

	// 1. Sample the track
	samples, err := keyframe.SampleTrack[F](track, keyframe.SampleConfig{
		Rate:           float64(opts.rate),
		Start:          opts.start,
		Length:         opts.length,
		EnableParallel: opts.parallel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sample track: %w", err)
	}

	stats = &bakeStats{
		rate:     opts.rate,
		channels: len(samples.Data),
		bitDepth: opts.bitDepth,
		frames:   samples.Len(),
	}

	if opts.normalize {
		stats.peak = float64(samples.Normalize())
	}

	// 2. Create output writer
	output, err := createWAVOutput(outputPath, opts.rate, opts.bitDepth, stats.channels)
	if err != nil {
		return nil, err
	}
	// Close errors matter here: the encoder writes the final header sizes.
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	// 3. Convert and write in chunks
	interleaved := samples.Interleave()
	chunk := make([]int, bufferSize*stats.channels)
	progress := newProgressTracker(len(interleaved), opts.verbose)

	for pos := 0; pos < len(interleaved); {
		n := interleaveInto(interleaved[pos:], chunk, maxVal)
		if err := output.WriteSamples(chunk[:n]); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		pos += n
		progress.reportIfNeeded(pos)
	}

	return stats, nil
}
