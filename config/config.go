// Package config loads runtime settings for the simulation hosts.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is looked up in the config directory; it is optional.
const FileName = "fireteam"

// Settings are the runtime knobs shared by the ebiten host and the
// headless runner. Game data lives in prefabs, not here. A zero Seed or
// empty Difficulty leaves the scenario's own value in place.
type Settings struct {
	LogLevel   string  `mapstructure:"logLevel"`
	AssetDir   string  `mapstructure:"assetDir"`
	TickRate   int     `mapstructure:"tickRate"`
	Seed       int64   `mapstructure:"seed"`
	Difficulty string  `mapstructure:"difficulty"`
	Ticks      int     `mapstructure:"ticks"`
	HotReload  bool    `mapstructure:"hotReload"`
	TimeScale  float64 `mapstructure:"timeScale"`
}

// DT is the fixed tick length in seconds.
func (s Settings) DT() float64 {
	if s.TickRate <= 0 {
		return 1.0 / 60.0
	}
	scale := s.TimeScale
	if scale <= 0 {
		scale = 1
	}
	return scale / float64(s.TickRate)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("assetDir", "prefabs")
	v.SetDefault("tickRate", 60)
	v.SetDefault("seed", 0)
	v.SetDefault("difficulty", "")
	v.SetDefault("ticks", 600)
	v.SetDefault("hotReload", true)
	v.SetDefault("timeScale", 1.0)
}

// New returns a viper instance with defaults and FIRETEAM_* env overrides.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("FIRETEAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads fireteam.{yaml,json,toml} from configDir when present. A
// missing file is not an error; defaults and env still apply.
func Load(v *viper.Viper, configDir string) (Settings, error) {
	if configDir != "" {
		v.SetConfigName(FileName)
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("config: read %s: %w", configDir, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	return s, nil
}
