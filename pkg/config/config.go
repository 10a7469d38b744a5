package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Clock       ClockConfig
	Compass     CompassConfig
	Speedometer SpeedometerConfig
	Sound       SoundConfig
	Window      WindowConfig
}

type ClockConfig struct {
	Interval time.Duration
	Location string // IANA zone name, "local" or empty for the system zone
}

type CompassConfig struct {
	Interval time.Duration
	Seed     uint64 // zero seeds from the runtime
}

type SpeedometerConfig struct {
	ScaleMax float64 `mapstructure:"scale_max"`
	MaxSpeed float64 `mapstructure:"max_speed"`
	Limiter  bool
}

type SoundConfig struct {
	Enabled bool
	Volume  float64
}

type WindowConfig struct {
	Width  float32
	Height float32
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("clock.interval", time.Second)
	v.SetDefault("clock.location", "local")
	v.SetDefault("compass.interval", time.Second)
	v.SetDefault("compass.seed", 0)
	v.SetDefault("speedometer.scale_max", 320)
	v.SetDefault("speedometer.max_speed", 130)
	v.SetDefault("speedometer.limiter", false)
	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.volume", 0.3)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 640)
}

// Load reads configuration from file and env. The file is $TXGAUGES_CONFIG
// or ~/.config/txgauges/config.toml; env overrides use prefix TXGAUGES_.
func Load() (Config, error) {
	return LoadFile(os.Getenv("TXGAUGES_CONFIG"))
}

// LoadFile is Load with an explicit file. An empty name falls back to the
// default location. A missing file is not an error.
func LoadFile(cfgPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "txgauges"))
		} else {
			log.Printf("config: %v, using defaults", err)
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TXGAUGES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Clock.Interval <= 0 {
		return fmt.Errorf("clock.interval must be positive, got %s", c.Clock.Interval)
	}
	if c.Compass.Interval <= 0 {
		return fmt.Errorf("compass.interval must be positive, got %s", c.Compass.Interval)
	}
	if c.Speedometer.ScaleMax <= 0 {
		return fmt.Errorf("speedometer.scale_max must be positive, got %v", c.Speedometer.ScaleMax)
	}
	return nil
}
