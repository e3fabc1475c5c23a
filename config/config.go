// Package config provides configuration loading and access for the
// simulation. Defaults are compiled into the binary; a user file overlays
// them.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/model"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Vision     VisionConfig     `yaml:"vision"`
	Contact    ContactConfig    `yaml:"contact"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Scenario   ScenarioConfig   `yaml:"scenario"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT             float64 `yaml:"dt"`
	RelaxationTime float64 `yaml:"relaxation_time"`
}

// VisionConfig holds the field-of-view parameters.
type VisionConfig struct {
	HalfAngleDeg      float64 `yaml:"half_angle_deg"`
	Horizon           float64 `yaml:"horizon"`
	AngularResolution float64 `yaml:"angular_resolution"`
}

// ContactConfig holds the penalty-force parameters.
type ContactConfig struct {
	Stiffness float64 `yaml:"stiffness"`
}

// WorldConfig holds the domain dimensions in metres.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PopulationConfig holds the initial population size.
type PopulationConfig struct {
	Count int `yaml:"count"`
}

// ScenarioConfig selects and parameterizes the built-in scenarios.
type ScenarioConfig struct {
	Name      string  `yaml:"name"`
	DoorWidth float64 `yaml:"door_width"`
}

// TelemetryConfig holds observation output parameters.
type TelemetryConfig struct {
	SampleEvery   int     `yaml:"sample_every"`
	WindowSeconds float64 `yaml:"window_seconds"`
}

// Default returns the compiled-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return &cfg, nil
}

// Load returns the defaults overlaid with the given yaml file. An empty
// path loads plain defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the core must not accept.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Population.Count < 0 {
		return fmt.Errorf("population count must be non-negative, got %d", c.Population.Count)
	}
	if c.Telemetry.SampleEvery < 1 {
		return fmt.Errorf("telemetry sample_every must be at least 1, got %d", c.Telemetry.SampleEvery)
	}
	return nil
}

// Params converts the configuration to the runtime parameter snapshot.
func (c *Config) Params() model.Params {
	return model.Params{
		Tau:               c.Physics.RelaxationTime,
		TimeStep:          c.Physics.DT,
		VisionHalfAngle:   c.Vision.HalfAngleDeg * math.Pi / 180,
		HorizonDistance:   c.Vision.Horizon,
		AngularResolution: c.Vision.AngularResolution,
		ContactStiffness:  c.Contact.Stiffness,
	}
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
