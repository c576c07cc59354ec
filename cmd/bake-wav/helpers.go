package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-keyframe/internal/simdops"
)

// wavOutputWriter wraps the output file and its PCM encoder.
type wavOutputWriter struct {
	file     *os.File
	encoder  *wav.Encoder
	format   *audio.Format
	bitDepth int
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	if getMaxValue(bitDepth) == 0 {
		return nil, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		bitDepth: bitDepth,
	}, nil
}

// WriteSamples writes interleaved integer samples.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	return w.encoder.Write(&audio.IntBuffer{
		Format:         w.format,
		Data:           samples,
		SourceBitDepth: w.bitDepth,
	})
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return w.file.Close()
}

// wavInfo describes a written WAV file.
type wavInfo struct {
	rate     int
	channels int
	bitDepth int
	duration time.Duration
}

// readWAVInfo opens a WAV file and reads its format.
func readWAVInfo(path string) (*wavInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	duration, err := decoder.Duration()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV duration: %w", err)
	}

	return &wavInfo{
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		duration: duration,
	}, nil
}

// getMaxValue returns the maximum sample value for the given bit depth,
// or 0 if the depth is unsupported.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return 0
	}
}

// interleaveInto converts interleaved float samples into integer PCM,
// clamping to [-1.0, 1.0]. Returns the number of elements written.
func interleaveInto[F simdops.Float](src []F, dst []int, maxVal float64) int {
	n := min(len(src), len(dst))
	for i := range n {
		sample := min(max(float64(src[i]), -1.0), 1.0)
		dst[i] = int(sample * maxVal)
	}
	return n
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalFrames int, verbose bool) *progressTracker {
	return &progressTracker{
		totalFrames: totalFrames,
		verbose:     verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int) {
	if !p.verbose || p.totalFrames == 0 {
		return
	}

	progress := currentFrames * percentScale / p.totalFrames
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
