package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	keyframe "github.com/tphakala/go-keyframe"
)

// channelSummary extends the sampled channel stats with distribution figures.
type channelSummary struct {
	keyframe.ChannelStats[float64]

	StdDev float64
	Median float64
	P95    float64
	MinAt  time.Duration
	MaxAt  time.Duration
}

func summarize(s *keyframe.Samples[float64], ch int) (channelSummary, error) {
	st, err := s.Stats(ch)
	if err != nil {
		return channelSummary{}, err
	}

	data, err := s.Float64(ch)
	if err != nil {
		return channelSummary{}, err
	}

	sum := channelSummary{ChannelStats: st}
	if len(data) == 0 {
		return sum, nil
	}

	_, sum.StdDev = stat.MeanStdDev(data, nil)
	sum.MinAt = s.Time(floats.MinIdx(data))
	sum.MaxAt = s.Time(floats.MaxIdx(data))

	slices.Sort(data)
	sum.Median = stat.Quantile(medianQuantile, stat.Empirical, data, nil)
	sum.P95 = stat.Quantile(upperQuantile, stat.Empirical, data, nil)

	return sum, nil
}

func printStats(w io.Writer, track keyframe.Track[float64], o *options, channels int) error {
	length := o.to - o.from
	if o.to == 0 {
		length = 0
	}
	if length < 0 {
		return fmt.Errorf("-to %v is before -from %v", o.to, o.from)
	}

	s, err := keyframe.SampleTrack[float64](track, keyframe.SampleConfig{
		Rate:           o.rate,
		Start:          o.from,
		Length:         length,
		Channels:       channels,
		EnableParallel: o.parallel,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d samples at %g/s from %v\n", s.Len(), s.Rate, s.Start)
	for ch := range channels {
		sum, err := summarize(s, ch)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "channel %d:\n", ch)
		fmt.Fprintf(w, "  min %.*f at %v, max %.*f at %v\n",
			valuePrecision, sum.Min, sum.MinAt, valuePrecision, sum.Max, sum.MaxAt)
		fmt.Fprintf(w, "  mean %.*f, stddev %.*f, rms %.*f\n",
			valuePrecision, sum.Mean, valuePrecision, sum.StdDev, valuePrecision, sum.RMS)
		fmt.Fprintf(w, "  median %.*f, p95 %.*f\n",
			valuePrecision, sum.Median, valuePrecision, sum.P95)
	}

	return nil
}
