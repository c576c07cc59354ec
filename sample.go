package keyframe

import (
	"cmp"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/tphakala/go-keyframe/internal/simdops"
)

// SampleConfig describes how a track is baked into fixed-rate samples.
type SampleConfig struct {
	// Rate is the number of samples per second.
	Rate float64

	// Start is the time of the first sample. Any value is accepted since
	// evaluation loops.
	Start time.Duration

	// Length is the sampled duration. Zero samples one loop of the track.
	Length time.Duration

	// Channels limits the sampled channels. Zero uses the track's count.
	Channels int

	// EnableParallel splits the sample range across goroutines.
	// Output is identical to sequential sampling.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *SampleConfig) Validate() error {
	if c.Rate <= 0 || math.IsNaN(c.Rate) || math.IsInf(c.Rate, 0) {
		return fmt.Errorf("%w: rate must be positive", ErrInvalidConfig)
	}

	if c.Rate > maxSampleRate {
		return fmt.Errorf("%w: rate too high (max %d)", ErrInvalidConfig, maxSampleRate)
	}

	if c.Length < 0 {
		return fmt.Errorf("%w: length must not be negative", ErrInvalidConfig)
	}

	if c.Channels < 0 || c.Channels > MaxChannels {
		return fmt.Errorf("%w: channels must be 0-%d", ErrInvalidConfig, MaxChannels)
	}

	return nil
}

// Samples holds a baked track in planar layout, one slice per channel.
type Samples[F simdops.Float] struct {
	// Rate is the number of samples per second.
	Rate float64

	// Start is the time of sample 0.
	Start time.Duration

	// Data holds one slice per channel, all of equal length.
	Data [][]F
}

// ChannelStats summarises one sampled channel.
type ChannelStats[F simdops.Float] struct {
	Min  F
	Max  F
	Mean F
	RMS  F
}

// SampleTrack evaluates track at cfg.Rate samples per second.
func SampleTrack[F simdops.Float, V Scalar](track Track[V], cfg SampleConfig) (*Samples[F], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if track.Channels < 1 || track.Channels > MaxChannels {
		return nil, fmt.Errorf("%w: track has %d channels", ErrInvalidTrack, track.Channels)
	}

	channels := cmp.Or(cfg.Channels, track.Channels)
	if channels > track.Channels {
		return nil, fmt.Errorf("%w: %d channels requested from a %d channel track",
			ErrInvalidConfig, channels, track.Channels)
	}

	length := cfg.Length
	if length == 0 {
		length = track.Span()
	}

	n := math.Ceil(length.Seconds() * cfg.Rate)
	if n > maxSampleCount {
		return nil, fmt.Errorf("%w: %.0f samples exceeds the limit of %d", ErrInvalidConfig, n, maxSampleCount)
	}
	count := max(int(n), 1)

	s := &Samples[F]{
		Rate:  cfg.Rate,
		Start: cfg.Start,
		Data:  make([][]F, channels),
	}
	for ch := range channels {
		s.Data[ch] = make([]F, count)
	}

	workers := 1
	if cfg.EnableParallel {
		workers = min(runtime.GOMAXPROCS(0), (count+minWorkerSamples-1)/minWorkerSamples)
	}

	if workers <= 1 {
		fillSamples(s, track, 0, count)
		return s, nil
	}

	chunk := (count + workers - 1) / workers
	var wg sync.WaitGroup
	for from := 0; from < count; from += chunk {
		to := min(from+chunk, count)
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			fillSamples(s, track, from, to)
		}(from, to)
	}
	wg.Wait()

	return s, nil
}

// fillSamples evaluates samples [from, to). Workers write disjoint index ranges.
func fillSamples[F simdops.Float, V Scalar](s *Samples[F], track Track[V], from, to int) {
	channels := len(s.Data)
	for i := from; i < to; i++ {
		v := Eval(track.Points, s.Time(i), channels)
		for ch := range channels {
			s.Data[ch][i] = F(scalarToFloat(v[ch]))
		}
	}
}

// scalarToFloat converts a channel value to float64. Fixed values are
// converted by value, not by their raw bits.
func scalarToFloat[V Scalar](v V) float64 {
	if q, ok := any(v).(Fixed); ok {
		return q.Float64()
	}
	return float64(v)
}

// Len returns the number of samples per channel.
func (s *Samples[F]) Len() int {
	if len(s.Data) == 0 {
		return 0
	}
	return len(s.Data[0])
}

// Time returns the track time of sample i.
func (s *Samples[F]) Time(i int) time.Duration {
	return s.Start + time.Duration(math.Round(float64(i)*float64(time.Second)/s.Rate))
}

// Stats returns min, max, mean and RMS of channel ch.
func (s *Samples[F]) Stats(ch int) (ChannelStats[F], error) {
	if ch < 0 || ch >= len(s.Data) {
		return ChannelStats[F]{}, fmt.Errorf("%w: %d (have %d)", ErrInvalidChannel, ch, len(s.Data))
	}

	data := s.Data[ch]
	if len(data) == 0 {
		return ChannelStats[F]{}, nil
	}

	ops := simdops.For[F]()
	n := F(len(data))

	st := ChannelStats[F]{
		Min:  data[0],
		Max:  data[0],
		Mean: ops.Sum(data) / n,
		RMS:  F(math.Sqrt(float64(ops.DotProductUnsafe(data, data) / n))),
	}
	for _, v := range data[1:] {
		st.Min = min(st.Min, v)
		st.Max = max(st.Max, v)
	}

	return st, nil
}

// Peak returns the largest absolute sample over all channels.
func (s *Samples[F]) Peak() F {
	var peak F
	for _, data := range s.Data {
		for _, v := range data {
			peak = max(peak, v, -v)
		}
	}
	return peak
}

// Normalize scales every channel so the peak absolute sample becomes 1 and
// returns the previous peak. Silent samples are left unchanged.
func (s *Samples[F]) Normalize() F {
	peak := s.Peak()
	if peak == 0 {
		return 0
	}

	ops := simdops.For[F]()
	for _, data := range s.Data {
		ops.Scale(data, data, 1/peak)
	}

	return peak
}

// Interleave returns the samples frame by frame: ch0, ch1, ..., ch0, ...
func (s *Samples[F]) Interleave() []F {
	channels := len(s.Data)
	n := s.Len()
	out := make([]F, n*channels)

	if channels == stereoChannels {
		simdops.For[F]().Interleave2(out, s.Data[0], s.Data[1])
		return out
	}

	for ch, data := range s.Data {
		for i, v := range data {
			out[i*channels+ch] = v
		}
	}

	return out
}

// Float64 returns a float64 copy of channel ch.
func (s *Samples[F]) Float64(ch int) ([]float64, error) {
	if ch < 0 || ch >= len(s.Data) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrInvalidChannel, ch, len(s.Data))
	}

	out := make([]float64, len(s.Data[ch]))
	for i, v := range s.Data[ch] {
		out[i] = float64(v)
	}
	return out, nil
}
