package keyframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackValidate(t *testing.T) {
	backwards := Bezier(Tangent{Out: H(-time.Millisecond, 0)})

	tests := []struct {
		name    string
		track   Track[float64]
		wantErr bool
	}{
		{
			name:  "Valid",
			track: Track[float64]{Channels: 1, Points: rampTrack(Linear())},
		},
		{
			name:  "Empty",
			track: Track[float64]{Channels: 2},
		},
		{
			name:  "Stacked points",
			track: Track[float64]{Channels: 1, Points: []Point[float64]{Key(0, Linear(), 1.0), Key(0, Linear(), 2.0)}},
		},
		{
			name:    "Zero channels",
			track:   Track[float64]{Channels: 0, Points: rampTrack(Linear())},
			wantErr: true,
		},
		{
			name:    "Too many channels",
			track:   Track[float64]{Channels: MaxChannels + 1},
			wantErr: true,
		},
		{
			name:    "Negative time",
			track:   Track[float64]{Channels: 1, Points: []Point[float64]{Key(-time.Second, Linear(), 1.0)}},
			wantErr: true,
		},
		{
			name: "Unsorted",
			track: Track[float64]{Channels: 1, Points: []Point[float64]{
				Key(time.Second, Linear(), 1.0),
				Key(0, Linear(), 2.0),
			}},
			wantErr: true,
		},
		{
			name:    "Unknown curve",
			track:   Track[float64]{Channels: 1, Points: []Point[float64]{{Curve: Curve{Kind: CurveBezier + 1}}}},
			wantErr: true,
		},
		{
			name:    "Backwards tangent",
			track:   Track[float64]{Channels: 1, Points: []Point[float64]{Key(0, backwards, 1.0)}},
			wantErr: true,
		},
		{
			name:  "Backwards tangent on unused channel",
			track: Track[float64]{Channels: 1, Points: []Point[float64]{Key(0, Bezier(Tangent{}, Tangent{In: H(-time.Second, 0)}), 1.0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.track.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTrack)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewTrack(t *testing.T) {
	_, err := NewTrack(1, Key(time.Second, Linear(), 1.0), Key(0, Linear(), 2.0))
	require.ErrorIs(t, err, ErrInvalidTrack)

	track, err := NewTrack(2, Key(0, Smooth(), 1.0, 2.0))
	require.NoError(t, err)
	assert.Equal(t, 2, track.Channels)
	assert.Equal(t, time.Duration(0), track.Span())
}

func TestTrackSpan(t *testing.T) {
	track := Track[float64]{Channels: 1, Points: []Point[float64]{
		Key(2*time.Second, Linear(), 0.0),
		Key(2*time.Second, Linear(), 0.0),
		Key(5*time.Second, Linear(), 0.0),
	}}
	assert.Equal(t, 3*time.Second, track.Span())
	assert.Equal(t, 3, track.Len())
}

func TestParseCurveKind(t *testing.T) {
	for k := CurveStep; k <= CurveBezier; k++ {
		got, err := ParseCurveKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseCurveKind("  Smooth ")
	require.NoError(t, err)
	assert.Equal(t, CurveSmooth, got)

	_, err = ParseCurveKind("elastic")
	require.ErrorIs(t, err, ErrInvalidTrack)

	assert.Equal(t, "CurveKind(42)", CurveKind(42).String())
}

func TestKey(t *testing.T) {
	p := Key(time.Second, Fast(), 1.0, 2.0)
	assert.Equal(t, time.Second, p.Time)
	assert.Equal(t, Value[float64]{1, 2, 0, 0}, p.Value)
	assert.Equal(t, CurveFast, p.Curve.Kind)
}

func TestBezierTangents(t *testing.T) {
	a := Tangent{Out: H(time.Millisecond, 1)}
	c := Bezier(a)

	assert.Equal(t, CurveBezier, c.Kind)
	assert.Equal(t, a, c.Tangents[0])
	assert.Equal(t, Tangent{}, c.Tangents[1])
	assert.Equal(t, FixedFromFloat(1), c.Tangents[0].Out.Value)
}
