package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ericgi231/MTU-Graphics-OpenGL-InfiniCity/internal/city"
)

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraSettings struct {
	Height float64 `yaml:"height"`
	Dist   float64 `yaml:"dist"`
	Angle  float64 `yaml:"angle"`
	Slide  float64 `yaml:"slide"`
}

// Settings is the process-wide configuration, read once at startup.
type Settings struct {
	Window WindowSettings `yaml:"window"`
	Camera CameraSettings `yaml:"camera"`

	// TravelSpeed is viewer travel in lattice units per second while a
	// travel key is held.
	TravelSpeed float64 `yaml:"travel_speed"`

	// HardSeed optionally overrides the lattice seed vector; must hold
	// exactly two values when set.
	HardSeed []float64 `yaml:"hard_seed,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Window:      WindowSettings{Width: 512, Height: 512, Title: "InfiniCity"},
		Camera:      CameraSettings{Height: 3, Dist: -0.5, Angle: -7, Slide: 0},
		TravelSpeed: 3.0,
	}
}

// LoadSettings returns the defaults, overlaid with the YAML file at
// path when one is given.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d invalid", s.Window.Width, s.Window.Height)
	}
	if s.TravelSpeed <= 0 {
		return fmt.Errorf("travel speed must be positive")
	}
	if n := len(s.HardSeed); n != 0 && n != 2 {
		return fmt.Errorf("hard_seed needs exactly 2 values, got %d", n)
	}
	return nil
}

// CityParams builds the generation parameters for these settings.
func (s *Settings) CityParams() city.Params {
	p := city.DefaultParams()
	if len(s.HardSeed) == 2 {
		p.HardSeed = [2]float64{s.HardSeed[0], s.HardSeed[1]}
	}
	return p
}
