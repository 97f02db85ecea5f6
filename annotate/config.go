package annotate

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for annotator configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Prototypes  string
	Boilerplate string
}

// Config holds CLI flag values for annotator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewAnnotator] to create an
// [Annotator].
type Config struct {
	Flags       Flags
	Prototypes  bool
	Boilerplate string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Prototypes:  "prototypes",
		Boilerplate: "boilerplate",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds annotator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&c.Prototypes, c.Flags.Prototypes, "p", false,
		"only emit function comments and prototypes")
	flags.StringVarP(&c.Boilerplate, c.Flags.Boilerplate, "b", "",
		"text file injected into every file-header comment")
}

// NewAnnotator creates an [Annotator] from this Config plus any extra
// options.
func (c *Config) NewAnnotator(extra ...Option) (*Annotator, error) {
	opts := []Option{WithPrototypesOnly(c.Prototypes)}

	if c.Boilerplate != "" {
		opts = append(opts, WithBoilerplateFile(c.Boilerplate))
	}

	return New(append(opts, extra...)...)
}

// FileConfig is the YAML configuration file surface. Pointer fields
// distinguish "unset" from zero values so explicit CLI flags can take
// precedence.
type FileConfig struct {
	Prototypes  *bool   `json:"prototypes,omitempty"  yaml:"prototypes,omitempty"`
	Boilerplate *string `json:"boilerplate,omitempty" yaml:"boilerplate,omitempty"`
}

// LoadFileConfig reads and parses a YAML configuration file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	var fc FileConfig

	err = yaml.Unmarshal(data, &fc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOption, path, err)
	}

	return &fc, nil
}

// ApplyFile overlays file-config values onto c. A value is skipped when
// the corresponding CLI flag was set explicitly, so flags always win over
// the file.
func (c *Config) ApplyFile(fc *FileConfig, flags *pflag.FlagSet) {
	if fc == nil {
		return
	}

	if fc.Prototypes != nil && !changed(flags, c.Flags.Prototypes) {
		c.Prototypes = *fc.Prototypes
	}

	if fc.Boilerplate != nil && !changed(flags, c.Flags.Boilerplate) {
		c.Boilerplate = *fc.Boilerplate
	}
}

func changed(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}

	f := flags.Lookup(name)
	if f == nil {
		slog.Debug("config overlay: unknown flag", slog.String("flag", name))

		return false
	}

	return f.Changed
}
