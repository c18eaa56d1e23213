// Package config reads pong.properties, PONG_* environment variables and
// command line flags into a Config.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

const (
	configName = "pong"
	configType = "properties"
	envPrefix  = "PONG"
)

type Config struct {
	Backend      string
	FPS          int
	MusicFile    string
	MusicVolume  float64
	MusicEnabled bool
	KeyHold      time.Duration // terminal only
	Log          Log
}

// Log configures the rotating log file.
type Log struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Level      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendTerminal)
	v.SetDefault("fps", 60)
	v.SetDefault("musicFile", "background_music.mp3")
	v.SetDefault("musicVolume", 0.3)
	v.SetDefault("musicEnabled", true)
	v.SetDefault("keyHoldMs", 150)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.String("config", "", "path to a properties file (default ./pong.properties)")
	fs.String("backend", BackendTerminal, "display backend: terminal or window")
	fs.Int("fps", 60, "target frames per second")
	fs.String("music", "background_music.mp3", "background music file (mp3 or wav)")
	fs.Float64("volume", 0.3, "music volume between 0 and 1")
	fs.Bool("mute", false, "do not play background music")
	return fs
}

// Load resolves the configuration. Precedence: flags, environment,
// properties file, defaults. A missing ./pong.properties is fine; a file
// named with --config must exist.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	binds := map[string]string{
		"backend": "backend",
		"fps":     "fps",
		"music":   "musicFile",
		"volume":  "musicVolume",
	}
	for flag, key := range binds {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	path, _ := fs.GetString("config")
	if err := readProperties(v, path); err != nil {
		return nil, err
	}

	cfg := &Config{
		Backend:      cast.ToString(v.Get("backend")),
		FPS:          cast.ToInt(v.Get("fps")),
		MusicFile:    cast.ToString(v.Get("musicFile")),
		MusicVolume:  clamp01(cast.ToFloat64(v.Get("musicVolume"))),
		MusicEnabled: cast.ToBool(v.Get("musicEnabled")),
		KeyHold:      time.Duration(cast.ToInt(v.Get("keyHoldMs"))) * time.Millisecond,
		Log: Log{
			Filename:   cast.ToString(v.Get("logFilename")),
			MaxSize:    cast.ToInt(v.Get("maxSize")),
			MaxBackups: cast.ToInt(v.Get("maxBackups")),
			MaxAge:     cast.ToInt(v.Get("maxAge")),
			Compress:   cast.ToBool(v.Get("compress")),
			Level:      cast.ToString(v.Get("level")),
		},
	}
	if mute, _ := fs.GetBool("mute"); mute {
		cfg.MusicEnabled = false
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readProperties(v *viper.Viper, path string) error {
	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath("./")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.KeyHold < 0 {
		return fmt.Errorf("keyHoldMs must not be negative")
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
