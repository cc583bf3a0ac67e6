package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitlab.com/nunet/gputemp/models"
	"gitlab.com/nunet/gputemp/sensor"
)

const configFile = "gputemp_config.json"

var errConfigNotFound = errors.New("file not found in any of the paths")

// flagKeys maps command line flags onto their configuration keys.
var flagKeys = map[string]string{
	"db-file":        "store.db_file",
	"limit":          "query.limit",
	"interval":       "monitor.interval",
	"duration":       "monitor.duration",
	"sensor":         "sensor.source",
	"sensor-command": "sensor.command",
	"sensor-timeout": "sensor.timeout",
	"debug":          "general.debug",
}

func configPaths() []string {
	paths := []string{"."} // config file reading order starts with current working directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".gputemp")) // then home directory
	}
	return append(paths, "/etc/gputemp") // finally /etc/gputemp
}

func setDefaultConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("general.debug", false)
	v.SetDefault("store.db_file", "gpu_temperatures.db")
	v.SetDefault("query.limit", 10)
	v.SetDefault("monitor.interval", 1000)
	v.SetDefault("monitor.duration", 60)
	v.SetDefault("sensor.source", sensor.SourceNvidiaSMI)
	v.SetDefault("sensor.command", "nvidia-smi")
	v.SetDefault("sensor.timeout", 10*time.Second)
	return v
}

// RegisterFlags declares the configurable flags on fs. Their defaults mirror setDefaultConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("db-file", "gpu_temperatures.db", "path to the SQLite database file")
	fs.Int("limit", 10, "number of recent readings to display when querying")
	fs.Int("interval", 1000, "time between measurements in milliseconds")
	fs.Int("duration", 60, "total monitoring duration in seconds")
	fs.String("sensor", sensor.SourceNvidiaSMI, "temperature source: nvidia-smi or nvml")
	fs.String("sensor-command", "nvidia-smi", "path of the nvidia-smi binary")
	fs.Duration("sensor-timeout", 10*time.Second, "maximum time a single sensor query may take")
	fs.Bool("debug", false, "enable debug logging")
}

// Load builds the configuration from defaults, a config file and the flags changed on the
// command line, in increasing order of precedence. When explicitPath is empty the config file
// is searched in the default locations and is optional.
func Load(fs afero.Fs, flags *pflag.FlagSet, explicitPath string) (*Config, error) {
	v := setDefaultConfig()

	var (
		data []byte
		err  error
	)
	if explicitPath != "" {
		data, err = afero.ReadFile(fs, explicitPath)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to read config file %s: %v", models.ErrInvalidArgument, explicitPath, err)
		}
	} else {
		data, err = findConfig(fs, configPaths(), configFile)
		if err != nil && !errors.Is(err, errConfigNotFound) {
			return nil, err
		}
	}

	if data != nil {
		// Viper only reads buffer, keeping comments in original config
		if err := v.ReadConfig(bytes.NewBuffer(removeComments(data))); err != nil {
			return nil, fmt.Errorf("%w: unable to parse config file: %v", models.ErrInvalidArgument, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}

	return &cfg, nil
}

func findConfig(fs afero.Fs, paths []string, filename string) ([]byte, error) {
	for _, path := range paths {
		fullPath := filepath.Join(path, filename)
		if _, err := fs.Stat(fullPath); err != nil {
			continue
		}

		config, err := afero.ReadFile(fs, fullPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", fullPath, err)
		}
		return config, nil
	}

	return nil, errConfigNotFound
}

func removeComments(configBytes []byte) []byte {
	re := regexp.MustCompile(`(?m)^\s*//.*$`) // match whole-line '//' comments
	return re.ReplaceAll(configBytes, nil)
}
