// Package config loads the global rendering defaults: embedded TOML,
// then an optional per-project config file, then CLREPORT_* environment
// variables, each layer overriding the previous one.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nelyj/command-line-reporter/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix namespaces the environment override layer
const envPrefix = "CLREPORT_"

// candidate per-project config file names, tried in order
var configFiles = []string{".clreport.toml", "clreport.toml", ".clreport.yaml"}

// Defaults holds the global rendering defaults consumed by the reporter
type Defaults struct {
	Width     int    `koanf:"width" toml:"width"`
	Align     string `koanf:"align" toml:"align"`
	Formatter string `koanf:"formatter" toml:"formatter"`
	Encoding  string `koanf:"encoding" toml:"encoding"`
}

// Load layers the built-in defaults, an optional config file found in
// dir (the working directory when dir is empty), and CLREPORT_* env vars
func Load(dir string) (Defaults, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return Defaults{}, errors.Wrap(err, errors.ErrConfigParse, "parsing built-in defaults")
	}

	if dir == "" {
		dir = "."
	}
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(name)); err != nil {
			return Defaults{}, errors.Wrapf(err, errors.ErrConfigLoad, "loading config from %s", path)
		}
		break
	}

	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Defaults{}, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var defaults Defaults
	if err := k.Unmarshal("", &defaults); err != nil {
		return Defaults{}, errors.Wrap(err, errors.ErrConfigParse, "decoding defaults")
	}

	if err := defaults.Validate(); err != nil {
		return Defaults{}, err
	}
	return defaults, nil
}

// Builtin returns the compiled-in defaults without file or env layers
func Builtin() Defaults {
	return Defaults{
		Width:     100,
		Align:     "left",
		Formatter: "nested",
		Encoding:  "unicode",
	}
}

// Validate rejects defaults a reporter could not render with
func (d Defaults) Validate() error {
	if d.Width <= 0 {
		return errors.Newf(errors.ErrConfigValid, "width must be a positive integer, got %d", d.Width)
	}
	switch d.Align {
	case "left", "right", "center":
	default:
		return errors.Newf(errors.ErrConfigValid, "align must be left, right or center, got %q", d.Align)
	}
	switch d.Encoding {
	case "unicode", "ascii":
	default:
		return errors.Newf(errors.ErrConfigValid, "encoding must be unicode or ascii, got %q", d.Encoding)
	}
	if d.Formatter == "" {
		return errors.New(errors.ErrConfigValid, "formatter cannot be empty")
	}
	return nil
}

// parserFor picks the koanf parser matching the config file extension
func parserFor(name string) koanf.Parser {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return koanfyaml.Parser()
	}
	return koanftoml.Parser()
}

// rawBytesProvider implements the koanf provider interface for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not implement Read")
}
