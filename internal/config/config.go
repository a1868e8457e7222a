package config

import (
	"fmt"
	"os"
	"time"

	"WhyInvesting/internal/cycle"
	"WhyInvesting/internal/model"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr" env:"HTTP_ADDR"`
	} `yaml:"server"`
	Animation struct {
		InitialSpeed float64 `yaml:"initial_speed" env:"INITIAL_SPEED"`
		MinSpeed     float64 `yaml:"min_speed"`
		MaxSpeed     float64 `yaml:"max_speed"`
		SpeedStep    float64 `yaml:"speed_step"`
		BaseDwellMS  struct {
			Collect    int `yaml:"collect"`
			Deploy     int `yaml:"deploy"`
			Distribute int `yaml:"distribute"`
		} `yaml:"base_dwell_ms"`
	} `yaml:"animation"`
	Dataset struct {
		Path string `yaml:"path" env:"DATASET_PATH"`
	} `yaml:"dataset"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	} `yaml:"database"`
	Schedule struct {
		StatsCron string `yaml:"stats_cron" env:"STATS_CRON"`
	} `yaml:"schedule"`
	Log struct {
		Level       string `yaml:"level" env:"LOG_LEVEL"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults fill whatever is unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Animation.InitialSpeed == 0 {
		cfg.Animation.InitialSpeed = 1.1
	}
	if cfg.Animation.MinSpeed == 0 {
		cfg.Animation.MinSpeed = 0.65
	}
	if cfg.Animation.MaxSpeed == 0 {
		cfg.Animation.MaxSpeed = 2.5
	}
	if cfg.Animation.SpeedStep == 0 {
		cfg.Animation.SpeedStep = 0.05
	}
	if cfg.Animation.BaseDwellMS.Collect == 0 {
		cfg.Animation.BaseDwellMS.Collect = 6200
	}
	if cfg.Animation.BaseDwellMS.Deploy == 0 {
		cfg.Animation.BaseDwellMS.Deploy = 6200
	}
	if cfg.Animation.BaseDwellMS.Distribute == 0 {
		cfg.Animation.BaseDwellMS.Distribute = 6200
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/why_investing.db"
	}
	if cfg.Schedule.StatsCron == "" {
		cfg.Schedule.StatsCron = "@every 1m"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the animation range and schedule are usable.
func (c *Config) Validate() error {
	a := c.Animation
	if a.MinSpeed <= 0 {
		return fmt.Errorf("animation.min_speed must be positive")
	}
	if a.MaxSpeed < a.MinSpeed {
		return fmt.Errorf("animation.max_speed must not be below min_speed")
	}
	if a.InitialSpeed < a.MinSpeed || a.InitialSpeed > a.MaxSpeed {
		return fmt.Errorf("animation.initial_speed %.2f outside [%.2f, %.2f]", a.InitialSpeed, a.MinSpeed, a.MaxSpeed)
	}
	if a.SpeedStep <= 0 {
		return fmt.Errorf("animation.speed_step must be positive")
	}
	if a.BaseDwellMS.Collect <= 0 || a.BaseDwellMS.Deploy <= 0 || a.BaseDwellMS.Distribute <= 0 {
		return fmt.Errorf("animation.base_dwell_ms must be positive for every phase")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Schedule.StatsCron == "" {
		return fmt.Errorf("schedule.stats_cron is required")
	}
	return nil
}

// DriverOptions converts the animation section into phase driver options.
func (c *Config) DriverOptions() cycle.Options {
	a := c.Animation
	return cycle.Options{
		BaseDwell: map[model.Phase]time.Duration{
			model.PhaseCollect:    time.Duration(a.BaseDwellMS.Collect) * time.Millisecond,
			model.PhaseDeploy:     time.Duration(a.BaseDwellMS.Deploy) * time.Millisecond,
			model.PhaseDistribute: time.Duration(a.BaseDwellMS.Distribute) * time.Millisecond,
		},
		InitialSpeed: a.InitialSpeed,
		MinSpeed:     a.MinSpeed,
		MaxSpeed:     a.MaxSpeed,
		SpeedStep:    a.SpeedStep,
	}
}
