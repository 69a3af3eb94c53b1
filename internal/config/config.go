package config

import (
	"fmt"
	"path/filepath"

	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"

	"povdash/internal/apperr"
	"povdash/internal/dashboard"
	"povdash/internal/engine"
	"povdash/internal/logging"
)

const (
	DefaultPort           = 8501
	DefaultDataDir        = "data"
	DefaultIndicatorFile  = "PovStatsData.csv"
	DefaultInequalityFile = "poverty.csv"
)

// Config is the complete runtime configuration. The zero value is not
// usable; start from Default.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Preset string
	Log    string
}

type ServerConfig struct {
	Host string
	Port int
}

type DataConfig struct {
	Dir            string
	IndicatorFile  string
	InequalityFile string
	GiniIndicator  string
}

// Default reproduces the fixed behaviour of the original dashboard.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: DefaultPort},
		Data: DataConfig{
			Dir:            DefaultDataDir,
			IndicatorFile:  DefaultIndicatorFile,
			InequalityFile: DefaultInequalityFile,
			GiniIndicator:  engine.DefaultGiniColumn,
		},
		Preset: string(dashboard.PresetFull),
		Log:    "info",
	}
}

// BindFlags registers every setting on fs with c's current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Server.Host, "host", c.Server.Host, "interface to listen on (empty for all)")
	fs.IntVar(&c.Server.Port, "port", c.Server.Port, "HTTP port")
	fs.StringVar(&c.Data.Dir, "data-dir", c.Data.Dir, "directory holding the CSV files")
	fs.StringVar(&c.Data.IndicatorFile, "indicator-file", c.Data.IndicatorFile, "indicator CSV, relative to --data-dir")
	fs.StringVar(&c.Data.InequalityFile, "inequality-file", c.Data.InequalityFile, "poverty CSV, relative to --data-dir")
	fs.StringVar(&c.Data.GiniIndicator, "gini-indicator", c.Data.GiniIndicator, "inequality column of the poverty CSV")
	fs.StringVar(&c.Preset, "preset", c.Preset, "page variant: basic, combined or full")
	fs.StringVar(&c.Log, "log-level", c.Log, "debug, info, warn, error or off")
}

// Validate checks c and returns the parsed preset and log level.
func (c Config) Validate() (dashboard.Preset, log.Lvl, error) {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return "", 0, apperr.ConfigInvalid(fmt.Sprintf("port %d out of range", c.Server.Port))
	}
	if c.Data.IndicatorFile == "" {
		return "", 0, apperr.ConfigInvalid("indicator file is required")
	}
	preset, err := dashboard.ParsePreset(c.Preset)
	if err != nil {
		return "", 0, err
	}
	if preset.NeedsInequality() && (c.Data.InequalityFile == "" || c.Data.GiniIndicator == "") {
		return "", 0, apperr.ConfigInvalid(fmt.Sprintf("preset %q needs --inequality-file and --gini-indicator", preset))
	}
	lvl, ok := logging.ParseLevel(c.Log)
	if !ok {
		return "", 0, apperr.ConfigInvalid(fmt.Sprintf("unknown log level %q", c.Log))
	}
	return preset, lvl, nil
}

// Address is the listen address for echo.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Sources resolves the data files for preset. The inequality file is left
// out when the preset does not show it.
func (c Config) Sources(preset dashboard.Preset) engine.Sources {
	src := engine.Sources{
		IndicatorPath:    filepath.Join(c.Data.Dir, c.Data.IndicatorFile),
		InequalityColumn: c.Data.GiniIndicator,
	}
	if preset.NeedsInequality() {
		src.InequalityPath = filepath.Join(c.Data.Dir, c.Data.InequalityFile)
	}
	return src
}
