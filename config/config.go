// Package config reads the assembler's TOML configuration file.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/shyasm/translate"
)

var f = translate.From

var (
	ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))
)

// ErrUnknownKey reports keys in the configuration file that are not used.
type ErrUnknownKey []string

func (err ErrUnknownKey) Error() string {
	return f("unknown configuration keys: %v", strings.Join(err, ", "))
}

// Config holds the assembler settings.
type Config struct {
	Output  string            `toml:"output"`  // Image output path.
	Symbols string            `toml:"symbols"` // Symbol map output path, if any.
	Trim    bool              `toml:"trim"`    // Trim trailing zero words from the image.
	Verbose bool              `toml:"verbose"` // Log assembler actions.
	Locale  string            `toml:"locale"`  // Message locale; the host locale if empty.
	Define  map[string]string `toml:"define"`  // Predefined macros.
}

// Default is the configuration used when no file is given.
func Default() (conf *Config) {
	conf = &Config{
		Output: "out.sfs",
		Define: map[string]string{},
	}
	return
}

// Parse reads a configuration over the defaults.
func Parse(text string) (conf *Config, err error) {
	conf = Default()

	meta, err := toml.Decode(text, conf)
	if err != nil {
		conf = nil
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		conf = nil
		err = ErrUnknownKey(keys)
		return
	}

	if conf.Define == nil {
		conf.Define = map[string]string{}
	}

	for name, value := range conf.Define {
		if len(name) == 0 || len(value) == 0 {
			conf = nil
			err = ErrDefineSyntax
			return
		}
	}

	return
}

// Load reads a configuration file over the defaults.
func Load(filesys fs.FS, name string) (conf *Config, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	conf, err = Parse(string(data))
	return
}

// AddDefine adds a NAME=VALUE define, replacing any earlier value.
func (conf *Config) AddDefine(define string) (err error) {
	name, value, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 || len(value) == 0 {
		err = ErrDefineSyntax
		return
	}

	if conf.Define == nil {
		conf.Define = map[string]string{}
	}
	conf.Define[name] = value
	return
}

// Defines returns the define names in order.
func (conf *Config) Defines() []string {
	return slices.Sorted(maps.Keys(conf.Define))
}
