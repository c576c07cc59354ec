package keyframe

import (
	"testing"
	"time"
)

// benchTrack returns a looping track mixing every curve kind.
func benchTrack(channels int) Track[float64] {
	bez := make([]Tangent, channels)
	for c := range bez {
		bez[c] = Tangent{
			Out: H(100*time.Millisecond, 0.5),
			In:  H(200*time.Millisecond, -0.25),
		}
	}

	vals := func(base float64) []float64 {
		v := make([]float64, channels)
		for c := range v {
			v[c] = base * float64(c+1)
		}
		return v
	}

	return Track[float64]{
		Channels: channels,
		Points: []Point[float64]{
			Key(0, Linear(), vals(0)...),
			Key(250*time.Millisecond, Smooth(), vals(1)...),
			Key(500*time.Millisecond, Bezier(bez...), vals(-1)...),
			Key(750*time.Millisecond, Fast(), vals(0.5)...),
			Key(900*time.Millisecond, Step(), vals(2)...),
			Key(time.Second, Linear(), vals(0)...),
		},
	}
}

// TestSampleTrackParallel tests that parallel sampling produces identical results.
func TestSampleTrackParallel(t *testing.T) {
	const (
		rate     = 48000.0
		channels = 3
	)

	track := benchTrack(channels)

	seq, err := SampleTrack[float64](track, SampleConfig{Rate: rate})
	if err != nil {
		t.Fatalf("Sequential SampleTrack failed: %v", err)
	}

	par, err := SampleTrack[float64](track, SampleConfig{Rate: rate, EnableParallel: true})
	if err != nil {
		t.Fatalf("Parallel SampleTrack failed: %v", err)
	}

	if len(seq.Data) != len(par.Data) {
		t.Fatalf("Channel count mismatch: seq=%d, par=%d", len(seq.Data), len(par.Data))
	}

	for ch := range channels {
		if len(seq.Data[ch]) != len(par.Data[ch]) {
			t.Fatalf("Channel %d length mismatch: seq=%d, par=%d",
				ch, len(seq.Data[ch]), len(par.Data[ch]))
		}

		for i := range seq.Data[ch] {
			if seq.Data[ch][i] != par.Data[ch][i] {
				t.Errorf("Channel %d sample %d mismatch: seq=%v, par=%v",
					ch, i, seq.Data[ch][i], par.Data[ch][i])
				break
			}
		}
	}
}

// TestSampleTrackChannelIndependence verifies channels are sampled independently.
func TestSampleTrackChannelIndependence(t *testing.T) {
	track := Track[float64]{
		Channels: 2,
		Points: []Point[float64]{
			Key(0, Linear(), 0.0, 0.0),
			Key(time.Second, Linear(), 0.0, 1.0),
		},
	}

	s, err := SampleTrack[float64](track, SampleConfig{Rate: 44100, EnableParallel: true})
	if err != nil {
		t.Fatalf("SampleTrack failed: %v", err)
	}

	for i, v := range s.Data[0] {
		if v != 0 {
			t.Fatalf("Silent channel has non-zero sample %d: %v", i, v)
		}
	}

	if peak := s.Peak(); peak < 0.99 {
		t.Errorf("Ramp channel has too low peak: %v", peak)
	}
}

// TestSampleTrackSmallParallel verifies short bakes fall back to one worker.
func TestSampleTrackSmallParallel(t *testing.T) {
	track := benchTrack(1)

	s, err := SampleTrack[float32](track, SampleConfig{Rate: RateDisplay, EnableParallel: true})
	if err != nil {
		t.Fatalf("SampleTrack failed: %v", err)
	}

	if s.Len() != RateDisplay {
		t.Errorf("Unexpected sample count: got=%d, want=%d", s.Len(), RateDisplay)
	}
}
