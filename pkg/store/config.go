package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the record store and media files.
type Config interface {
	BasePath() string
	MediaPath() string
	// WeekStartsOn is the first day of the week for charts and week views.
	WeekStartsOn() time.Weekday
}

// LoadConfig reads .moodlog.yaml from MOODLOG_CONFIG_PATH or the working
// directory. Every key can be overridden with a MOODLOG_ prefixed variable.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.moodlog.db")
	viper.SetDefault("media", "~/.moodlog.media")
	viper.SetDefault("weekStartsOn", "sunday")
	viper.SetConfigName(".moodlog") // .yaml is implicit
	viper.SetEnvPrefix("MOODLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	media, err := homedir.Expand(viper.GetString("media"))
	if err != nil {
		return nil, fmt.Errorf("store: expand media path: %w", err)
	}
	weekday, err := ParseWeekday(viper.GetString("weekStartsOn"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, Media: media, Weekday: weekday}, nil
}

// NewConfig returns a fixed Config, used by tests and embedders.
func NewConfig(path, media string, weekStartsOn time.Weekday) Config {
	return &fileConfig{Path: path, Media: media, Weekday: weekStartsOn}
}

type fileConfig struct {
	Path    string       `json:"path"`
	Media   string       `json:"media"`
	Weekday time.Weekday `json:"weekStartsOn"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) MediaPath() string {
	return f.Media
}

func (f *fileConfig) WeekStartsOn() time.Weekday {
	return f.Weekday
}

// ParseWeekday accepts a weekday name, its three letter prefix, or 0-6.
func ParseWeekday(raw string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] || v == fmt.Sprint(int(d)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("store: unknown weekday %q", raw)
}
