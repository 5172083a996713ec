/*
Package config holds the configuration of bidivis: where to find the Unicode
data files, how large lookup caches may grow, the default paragraph direction
and the trace level.

Configuration is read from YAML:

    data:
      dir: /usr/local/share/bidivis
      unicodedata: UnicodeData.txt
      index: UnicodeData.idx
      mirroring: BidiMirroring.dat
    cache:
      size: 4096
    direction: auto
    trace: error
    http:
      addr: ":5080"

Environment variables BIDIVIS_DATA_DIR, BIDIVIS_CACHE_SIZE, BIDIVIS_DIRECTION,
BIDIVIS_TRACE and BIDIVIS_HTTP_ADDR override values from the file.
*/
package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v2"
)

// Environment variables overriding configuration values.
const (
	EnvDataDir   = "BIDIVIS_DATA_DIR"
	EnvCacheSize = "BIDIVIS_CACHE_SIZE"
	EnvDirection = "BIDIVIS_DIRECTION"
	EnvTrace     = "BIDIVIS_TRACE"
	EnvHTTPAddr  = "BIDIVIS_HTTP_ADDR"
)

// Default file names of the data files.
const (
	DefaultUnicodeData = "UnicodeData.txt"
	DefaultIndex       = "UnicodeData.idx"
	DefaultMirroring   = "BidiMirroring.dat"
	DefaultCacheSize   = 4096
	DefaultHTTPAddr    = ":5080"
)

// Configuration is the configuration of bidivis.
type Configuration struct {
	Data      Data       `yaml:"data"`
	Cache     Cache      `yaml:"cache"`
	Direction Direction  `yaml:"direction"`
	Trace     TraceLevel `yaml:"trace"`
	HTTP      HTTP       `yaml:"http"`
}

// Data locates the data files. Relative file names are taken relative to Dir.
type Data struct {
	Dir         string `yaml:"dir"`
	UnicodeData string `yaml:"unicodedata"`
	Index       string `yaml:"index"`
	Mirroring   string `yaml:"mirroring"`
}

// Cache configures the lookup caches. Size is the number of entries per
// store, 0 disables caching.
type Cache struct {
	Size int `yaml:"size"`
}

// HTTP configures the server started by 'bidivis serve'.
type HTTP struct {
	// Addr is the address the server listens on, in the form accepted by
	// net.Listen.
	Addr string `yaml:"addr"`
}

// Direction is the default paragraph direction: auto, ltr or rtl.
type Direction string

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// Unmarshals a string into a Direction, lowercasing the string and validating it.
func (d *Direction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dir, err := parseDirection(s)
	if err != nil {
		return err
	}
	*d = dir
	return nil
}

func parseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto", "ltr", "rtl":
		return Direction(s), nil
	case "":
		return Direction("auto"), nil
	}
	return "", fmt.Errorf("invalid direction %q, must be one of [auto, ltr, rtl]", s)
}

// TraceLevel is the level at which operations are traced.
// This can be error, info or debug.
type TraceLevel string

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// Unmarshals a string into a TraceLevel, lowercasing the string and validating it.
func (l *TraceLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	level, err := parseTraceLevel(s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func parseTraceLevel(s string) (TraceLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "error", "info", "debug":
		return TraceLevel(s), nil
	case "":
		return TraceLevel("error"), nil
	}
	return "", fmt.Errorf("invalid trace level %q, must be one of [error, info, debug]", s)
}

// Level translates the trace level for the tracer.
func (l TraceLevel) Level() tracing.TraceLevel {
	switch l {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// Default returns a configuration usable without a configuration file.
// Data files are expected in the working directory.
func Default() *Configuration {
	return &Configuration{
		Data: Data{
			Dir:         ".",
			UnicodeData: DefaultUnicodeData,
			Index:       DefaultIndex,
			Mirroring:   DefaultMirroring,
		},
		Cache:     Cache{Size: DefaultCacheSize},
		Direction: "auto",
		Trace:     "error",
		HTTP:      HTTP{Addr: DefaultHTTPAddr},
	}
}

// Parse parses a YAML configuration document. Values missing from the
// document keep their defaults, environment variables override both.
func Parse(rd io.Reader) (*Configuration, error) {
	in, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	conf := Default()
	if err = yaml.UnmarshalStrict(in, conf); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err = conf.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return conf, conf.validate()
}

// Load reads the configuration file at path. An empty path yields the
// default configuration with environment overrides applied.
func Load(path string) (*Configuration, error) {
	if path == "" {
		conf := Default()
		if err := conf.applyEnv(os.LookupEnv); err != nil {
			return nil, err
		}
		return conf, conf.validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (conf *Configuration) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataDir); ok {
		conf.Data.Dir = v
	}
	if v, ok := lookup(EnvCacheSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvCacheSize, err)
		}
		conf.Cache.Size = n
	}
	if v, ok := lookup(EnvDirection); ok {
		d, err := parseDirection(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvDirection, err)
		}
		conf.Direction = d
	}
	if v, ok := lookup(EnvTrace); ok {
		l, err := parseTraceLevel(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTrace, err)
		}
		conf.Trace = l
	}
	if v, ok := lookup(EnvHTTPAddr); ok {
		conf.HTTP.Addr = v
	}
	return nil
}

func (conf *Configuration) validate() error {
	if conf.Cache.Size < 0 {
		return fmt.Errorf("config: negative cache size %d", conf.Cache.Size)
	}
	if conf.HTTP.Addr == "" {
		return fmt.Errorf("config: empty http address")
	}
	return nil
}

// UnicodeDataPath is the path of the property data file.
func (conf *Configuration) UnicodeDataPath() string {
	return conf.path(conf.Data.UnicodeData)
}

// IndexPath is the path of the property index file.
func (conf *Configuration) IndexPath() string {
	return conf.path(conf.Data.Index)
}

// MirroringPath is the path of the mirroring data file.
func (conf *Configuration) MirroringPath() string {
	return conf.path(conf.Data.Mirroring)
}

func (conf *Configuration) path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(conf.Data.Dir, name)
}
