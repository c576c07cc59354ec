// Package trackfile loads keyframe tracks from TOML and YAML documents.
//
// A track file lists its channel count and points in time order:
//
//	channels = 2
//
//	[[points]]
//	time = "0s"
//	values = [0.0, 1.0]
//	curve = "bezier"
//	tangents = [
//	  { out_time = "250ms", out_value = 0.5, in_time = "250ms", in_value = -0.5 },
//	  { out_time = "100ms", out_value = 0.0, in_time = "100ms", in_value = 0.0 },
//	]
//
//	[[points]]
//	time = "1s"
//	values = [10.0, 0.0]
//
// The YAML form uses the same keys. Times are Go duration strings and curve
// names are those accepted by keyframe.ParseCurveKind; a missing curve is
// linear.
package trackfile

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-keyframe"
	"github.com/tphakala/go-keyframe/internal/fixed"
)

// Format is a track file encoding.
type Format int

const (
	// FormatTOML is a TOML document.
	FormatTOML Format = iota

	// FormatYAML is a YAML document.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

var (
	// ErrUnknownFormat indicates a file extension or format value that
	// maps to no decoder.
	ErrUnknownFormat = errors.New("unknown track file format")

	// ErrInvalidFile indicates a document that does not describe a track.
	ErrInvalidFile = errors.New("invalid track file")
)

type fileTrack struct {
	Channels int         `toml:"channels" yaml:"channels"`
	Points   []filePoint `toml:"points" yaml:"points"`
}

type filePoint struct {
	Time     string        `toml:"time" yaml:"time"`
	Values   []float64     `toml:"values" yaml:"values"`
	Curve    string        `toml:"curve" yaml:"curve"`
	Tangents []fileTangent `toml:"tangents" yaml:"tangents"`
}

type fileTangent struct {
	OutTime  string  `toml:"out_time" yaml:"out_time"`
	OutValue float64 `toml:"out_value" yaml:"out_value"`
	InTime   string  `toml:"in_time" yaml:"in_time"`
	InValue  float64 `toml:"in_value" yaml:"in_value"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}
}

// Load reads and decodes the track file at path.
func Load(path string) (keyframe.Track[float64], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return keyframe.Track[float64]{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return keyframe.Track[float64]{}, fmt.Errorf("failed to read track file: %w", err)
	}

	track, err := Decode(data, format)
	if err != nil {
		return keyframe.Track[float64]{}, fmt.Errorf("%s: %w", path, err)
	}
	return track, nil
}

// Decode parses a track document. Unknown keys are rejected and the result
// is validated.
func Decode(data []byte, format Format) (keyframe.Track[float64], error) {
	var ft fileTrack

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &ft)
		if err != nil {
			return keyframe.Track[float64]{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return keyframe.Track[float64]{}, fmt.Errorf("%w: unknown key %q", ErrInvalidFile, undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ft); err != nil {
			return keyframe.Track[float64]{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
	default:
		return keyframe.Track[float64]{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	return ft.track()
}

func (ft *fileTrack) track() (keyframe.Track[float64], error) {
	if ft.Channels < 1 || ft.Channels > keyframe.MaxChannels {
		return keyframe.Track[float64]{}, fmt.Errorf("%w: channels must be 1-%d, got %d",
			keyframe.ErrInvalidTrack, keyframe.MaxChannels, ft.Channels)
	}

	t := keyframe.Track[float64]{
		Channels: ft.Channels,
		Points:   make([]keyframe.Point[float64], len(ft.Points)),
	}

	for i := range ft.Points {
		p, err := ft.Points[i].point(ft.Channels)
		if err != nil {
			return keyframe.Track[float64]{}, fmt.Errorf("%w: point %d: %w", ErrInvalidFile, i, err)
		}
		t.Points[i] = p
	}

	if err := t.Validate(); err != nil {
		return keyframe.Track[float64]{}, err
	}
	return t, nil
}

func (fp *filePoint) point(channels int) (keyframe.Point[float64], error) {
	var p keyframe.Point[float64]

	at, err := parseTime(fp.Time)
	if err != nil {
		return p, err
	}
	p.Time = at

	if len(fp.Values) != channels {
		return p, fmt.Errorf("has %d values for %d channels", len(fp.Values), channels)
	}
	for c, v := range fp.Values {
		if !fixed.IsFinite(v) {
			return p, fmt.Errorf("value %d (%g) is out of range", c, v)
		}
		p.Value[c] = v
	}

	p.Curve.Kind = keyframe.CurveLinear
	if fp.Curve != "" {
		if p.Curve.Kind, err = keyframe.ParseCurveKind(fp.Curve); err != nil {
			return p, err
		}
	}

	if len(fp.Tangents) > 0 && p.Curve.Kind != keyframe.CurveBezier {
		return p, fmt.Errorf("tangents given for %v curve", p.Curve.Kind)
	}
	if len(fp.Tangents) > channels {
		return p, fmt.Errorf("has %d tangents for %d channels", len(fp.Tangents), channels)
	}
	for c := range fp.Tangents {
		if p.Curve.Tangents[c], err = fp.Tangents[c].tangent(); err != nil {
			return p, fmt.Errorf("tangent %d: %w", c, err)
		}
	}

	return p, nil
}

func (ft *fileTangent) tangent() (keyframe.Tangent, error) {
	out, err := parseTime(cmp.Or(ft.OutTime, "0s"))
	if err != nil {
		return keyframe.Tangent{}, err
	}
	in, err := parseTime(cmp.Or(ft.InTime, "0s"))
	if err != nil {
		return keyframe.Tangent{}, err
	}
	if !fixed.IsFinite(ft.OutValue) || !fixed.IsFinite(ft.InValue) {
		return keyframe.Tangent{}, errors.New("handle value is out of range")
	}

	return keyframe.Tangent{
		Out: keyframe.H(out, ft.OutValue),
		In:  keyframe.H(in, ft.InValue),
	}, nil
}

func parseTime(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("missing time")
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", s, err)
	}
	return d, nil
}
