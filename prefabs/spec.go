package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/disintegrate/content"
	"gopkg.in/yaml.v3"
)

// EffectSpec is the yaml form of an effect configuration. Omitted fields keep
// the effect package defaults.
type EffectSpec struct {
	Name              string         `yaml:"name"`
	Rows              int            `yaml:"rows"`
	Cols              int            `yaml:"cols"`
	DurationMs        int            `yaml:"duration_ms"`
	SplitDurationMs   int            `yaml:"split_duration_ms"`
	GapPx             *int           `yaml:"gap_px"`
	MinParticleSizePx *int           `yaml:"min_particle_size_px"`
	SpeedRange        []float64      `yaml:"speed_range"`
	AngleRangeDeg     []float64      `yaml:"angle_range_deg"`
	WaveWidth         *float64       `yaml:"wave_width"`
	Seed              uint64         `yaml:"seed"`
	Motion            MotionSpec     `yaml:"motion"`
	Compositor        CompositorSpec `yaml:"compositor"`
	Card              CardSpec       `yaml:"card"`
}

type MotionSpec struct {
	Variant      string   `yaml:"variant"`
	Activation   string   `yaml:"activation"`
	MoveCurve    string   `yaml:"move_curve"`
	FadeCurve    string   `yaml:"fade_curve"`
	FadeStart    *float64 `yaml:"fade_start"`
	RestingAlpha *int     `yaml:"resting_alpha"`
}

type CompositorSpec struct {
	Mode            string     `yaml:"mode"`
	TransitionWidth *float64   `yaml:"transition_width"`
	Stops           []StopSpec `yaml:"stops"`
}

type StopSpec struct {
	Offset float64 `yaml:"offset"`
	Alpha  float64 `yaml:"alpha"`
}

// CardSpec describes the demo content card.
type CardSpec struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	Body       string     `yaml:"body"`
	Background *YAMLColor `yaml:"background"`
	Foreground *YAMLColor `yaml:"foreground"`
	Accent     *YAMLColor `yaml:"accent"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadEffectSpec(filename string) (*EffectSpec, error) {
	if filename == "" {
		filename = DefaultEffect
	}
	spec, err := LoadSpec[EffectSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Card converts c into a content card. Unset fields fall back to the
// default card.
func (c CardSpec) Card() content.Card {
	card := content.DefaultCard()
	if c.Width > 0 {
		card.Width = c.Width
	}
	if c.Height > 0 {
		card.Height = c.Height
	}
	if c.Title != "" {
		card.Title = c.Title
	}
	if c.Body != "" {
		card.Body = c.Body
	}
	if c.Background != nil {
		card.Background = c.Background.Color
	}
	if c.Foreground != nil {
		card.Foreground = c.Foreground.Color
	}
	if c.Accent != nil {
		card.Accent = c.Accent.Color
	}
	return card
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("prefabs: color must be a string (line %d)", value.Line)
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("prefabs: invalid color %q (line %d)", value.Value, value.Line)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("prefabs: invalid color %q: %w", value.Value, err)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
