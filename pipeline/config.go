package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/welltie/survey"
)

// Config is the full description of one dataset build.
type Config struct {
	Geometry survey.Geometry `json:"geometry"`

	// Cube is the raw float32 volume on disk.
	Cube CubeConfig `json:"cube"`

	// IndexTop is the sample index at which the cube was cut out of the
	// full survey; SampleInterval is the time per sample in ms.
	IndexTop       int     `json:"indexTop"`
	SampleInterval float64 `json:"sampleInterval"`

	Wells  WellsConfig  `json:"wells"`
	Curves CurvesConfig `json:"curves"`

	Width        int  `json:"width"`
	Step         int  `json:"step"`
	WithVelocity bool `json:"withVelocity"`
	Workers      int  `json:"workers"`

	// DropMissingLabels removes windows whose label or features are NaN.
	DropMissingLabels bool `json:"dropMissingLabels"`
}

// CubeConfig locates and shapes the cube file.
type CubeConfig struct {
	Path      string   `json:"path"`
	NY        int      `json:"ny"`
	NX        int      `json:"nx"`
	NT        int      `json:"nt"`
	BigEndian bool     `json:"bigEndian"`
	Null      *float32 `json:"null,omitempty"`
}

// WellsConfig locates the three marker tables.
type WellsConfig struct {
	Coords        string `json:"coords"`
	Tops          string `json:"tops"`
	TopsName      string `json:"topsName"`
	TopsColumn    string `json:"topsColumn"`
	Bottoms       string `json:"bottoms"`
	BottomsName   string `json:"bottomsName"`
	BottomsColumn string `json:"bottomsColumn"`
	BottomsTabbed bool   `json:"bottomsTabbed"`
}

// CurvesConfig locates the per-well curve files.
type CurvesConfig struct {
	Dir         string `json:"dir"`
	Signal      string `json:"signal"`
	IndexColumn string `json:"indexColumn"`
	DropMissing bool   `json:"dropMissing"`
}

// Default returns built-in defaults: the J1-3 survey grid cut at samples
// 900..1300 with 2 ms sampling, 11-sample windows, GK signal.
func Default() Config {
	return Config{
		Geometry:       survey.OmskGeometry(),
		IndexTop:       900,
		SampleInterval: 2,
		Wells: WellsConfig{
			TopsName:      "Well",
			TopsColumn:    "TWT",
			BottomsName:   "Well identifier",
			BottomsColumn: "Bot, ms",
			BottomsTabbed: true,
		},
		Curves:            CurvesConfig{Signal: "GK", IndexColumn: "DEPT"},
		Width:             11,
		Step:              1,
		Workers:           1,
		DropMissingLabels: true,
	}
}

// Load reads a JSON configuration over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width %d: %w", c.Width, ErrConfig)
	case c.Step <= 0:
		return fmt.Errorf("step %d: %w", c.Step, ErrConfig)
	case c.Workers <= 0:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrConfig)
	case !(c.SampleInterval > 0):
		return fmt.Errorf("sampleInterval %g: %w", c.SampleInterval, ErrConfig)
	}

	return nil
}
