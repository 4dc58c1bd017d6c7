// Package config loads facade settings from YAML or JSON files.
//
// A file sets the global level, the console output format and colour, and
// per-logger levels:
//
//	level: info
//	format: text
//	color: auto
//	loggers:
//	  db: debug
//	  http: warn
//
// Unknown level names are ignored, leaving the current level in place.
package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/formatter"
	"github.com/philipp01105/levelog/handler/consolehandler"
	"github.com/philipp01105/levelog/logger"
)

var (
	// ErrUnsupportedFormat is returned for data formats other than YAML and JSON
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrUnknownOutput is returned for output formats other than text and json
	ErrUnknownOutput = errors.New("unknown output format")
	// ErrUnknownColor is returned for colour modes other than auto, always and never
	ErrUnknownColor = errors.New("unknown color mode")
)

// stdout and stderr are variables to allow overriding them in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// File is the decoded configuration file
type File struct {
	Level   string            `yaml:"level" json:"level"`
	Format  string            `yaml:"format" json:"format"`
	Color   string            `yaml:"color" json:"color"`
	Loggers map[string]string `yaml:"loggers" json:"loggers"`
}

// Load reads the file at path. The extension selects the decoder: .yaml
// and .yml for YAML, .json for JSON.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := Parse(data, ext)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return f, nil
}

// Parse decodes data in the given format ("yaml", "yml" or "json")
func Parse(data []byte, format string) (*File, error) {
	var f File
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML")
		}
	case "json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "failed to parse JSON")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return &f, nil
}

// Validate checks the output format and colour mode. Level names are not
// validated.
func (f *File) Validate() error {
	if _, err := f.formatter(); err != nil {
		return err
	}
	if _, err := f.colorMode(); err != nil {
		return err
	}
	return nil
}

// Apply configures fa: the global level (cascaded to every named logger),
// then a console handler, then the per-logger levels in name order.
func (f *File) Apply(fa *logger.Facade) error {
	fm, err := f.formatter()
	if err != nil {
		return err
	}
	mode, err := f.colorMode()
	if err != nil {
		return err
	}

	if level, ok := core.ParseLevel(f.Level); ok {
		fa.SetLevel(level)
	}

	console := consolehandler.NewStdConsole(consolehandler.StdConfig{
		Out:       stdout,
		Err:       stderr,
		Formatter: fm,
		Color:     mode,
	})
	fa.SetHandler(fa.CreateDefaultHandler(logger.Options{Console: console}))

	names := make([]string, 0, len(f.Loggers))
	for name := range f.Loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if level, ok := core.ParseLevel(f.Loggers[name]); ok {
			fa.Get(name).SetLevel(level)
		}
	}
	return nil
}

func (f *File) formatter() (formatter.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(f.Format)) {
	case "", "text":
		return formatter.NewTextFormatter(formatter.Config{}), nil
	case "json":
		return formatter.NewJSONFormatter(formatter.Config{}), nil
	default:
		return nil, errors.Wrapf(ErrUnknownOutput, "%q", f.Format)
	}
}

func (f *File) colorMode() (consolehandler.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(f.Color)) {
	case "", "auto":
		return consolehandler.ColorAuto, nil
	case "always":
		return consolehandler.ColorAlways, nil
	case "never":
		return consolehandler.ColorNever, nil
	default:
		return consolehandler.ColorAuto, errors.Wrapf(ErrUnknownColor, "%q", f.Color)
	}
}
