package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/einherij/tellopilot/pkg/tello"
)

const (
	EnvHandlerURL = "HANDLER_HOST_URL"
	EnvLogLevel   = "TELLO_LOG_LEVEL"
)

var ErrUnknownFormat = errors.New("unknown config format")

// Duration reads "10s"-style values from both YAML and TOML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config.Duration: failed to parse: %w", err)
	}
	*d = Duration(duration)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Settings  Settings  `yaml:"settings" toml:"settings"`
	Drone     Drone     `yaml:"drone" toml:"drone"`
	Handler   Handler   `yaml:"handler" toml:"handler"`
	FlightLog FlightLog `yaml:"flightLog" toml:"flight_log"`
	Route     Route     `yaml:"route" toml:"route"`
}

type Settings struct {
	LogLevel string `yaml:"logLevel" toml:"log_level"`
}

type Drone struct {
	Addr        string   `yaml:"addr" toml:"addr"`
	CommandAddr string   `yaml:"commandAddr" toml:"command_addr"`
	StateAddr   string   `yaml:"stateAddr" toml:"state_addr"`
	AckTimeout  Duration `yaml:"ackTimeout" toml:"ack_timeout"`
}

type Handler struct {
	URL string `yaml:"url" toml:"url"`
}

// FlightLog is disabled when Path is empty.
type FlightLog struct {
	Path     string   `yaml:"path" toml:"path"`
	Interval Duration `yaml:"interval" toml:"interval"`
}

// Route is where recorded waypoints are kept between flights. Disabled when
// Path is empty.
type Route struct {
	Path string `yaml:"path" toml:"path"`
}

func Default() Config {
	opts := tello.DefaultOptions()
	return Config{
		Settings: Settings{LogLevel: logrus.InfoLevel.String()},
		Drone: Drone{
			Addr:        opts.DroneAddr,
			CommandAddr: opts.CommandAddr,
			StateAddr:   opts.StateAddr,
			AckTimeout:  Duration(opts.AckTimeout),
		},
		FlightLog: FlightLog{Interval: Duration(time.Second)},
	}
}

// Load reads path over the defaults, picking the format by extension, then
// applies environment overrides. An empty path yields defaults plus env.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if url, ok := os.LookupEnv(EnvHandlerURL); ok {
		cfg.Handler.URL = url
	}
	if level, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Settings.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, out *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if err = yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, out); err != nil {
			return fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Settings.LogLevel); err != nil {
		return fmt.Errorf("config settings.logLevel: %w", err)
	}
	if c.Drone.AckTimeout <= 0 {
		return fmt.Errorf("config drone.ackTimeout must be positive, got %s", c.Drone.AckTimeout.Std())
	}
	if c.FlightLog.Path != "" && c.FlightLog.Interval <= 0 {
		return fmt.Errorf("config flightLog.interval must be positive, got %s", c.FlightLog.Interval.Std())
	}
	return nil
}

// LogLevel is valid once Load succeeded.
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Settings.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) TelloOptions() tello.Options {
	return tello.Options{
		DroneAddr:   c.Drone.Addr,
		CommandAddr: c.Drone.CommandAddr,
		StateAddr:   c.Drone.StateAddr,
		AckTimeout:  c.Drone.AckTimeout.Std(),
	}
}
