package config

import (
	"fmt"
	"strings"
)

// Config is the raw content of a configuration file. Unset attributes are
// nil so that Apply can tell them apart from explicit zero values.
type Config struct {
	NoColor        *bool      `hcl:"no_color,optional"`
	Verbose        *bool      `hcl:"verbose,optional"`
	SignalExitCode *int       `hcl:"signal_exit_code,optional"`
	Show           *ShowBlock `hcl:"show,block"`
}

// ShowBlock holds defaults for the show command
type ShowBlock struct {
	Format   *string `hcl:"format,optional"`
	Template *string `hcl:"template,optional"`
}

// Output formats understood by the show command
const (
	FormatEnv      = "env"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatHCL      = "hcl"
	FormatTemplate = "template"
)

// Formats lists every supported show format
var Formats = []string{FormatEnv, FormatJSON, FormatYAML, FormatHCL, FormatTemplate}

// Settings are the effective options after defaults, the configuration file
// and command-line flags have been combined.
type Settings struct {
	NoColor        bool
	Verbose        bool
	SignalExitCode int
	ShowFormat     string
	ShowTemplate   string
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		SignalExitCode: 1,
		ShowFormat:     FormatEnv,
	}
}

// Apply overlays the values set in cfg onto s
func (s *Settings) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.NoColor != nil {
		s.NoColor = *cfg.NoColor
	}
	if cfg.Verbose != nil {
		s.Verbose = *cfg.Verbose
	}
	if cfg.SignalExitCode != nil {
		s.SignalExitCode = *cfg.SignalExitCode
	}
	if cfg.Show != nil {
		if cfg.Show.Format != nil {
			s.ShowFormat = strings.ToLower(*cfg.Show.Format)
		}
		if cfg.Show.Template != nil {
			s.ShowTemplate = *cfg.Show.Template
		}
	}
}

// Validate checks that the settings are usable
func (s Settings) Validate() error {
	if s.SignalExitCode < 1 || s.SignalExitCode > 255 {
		return fmt.Errorf("signal_exit_code must be between 1 and 255, got %d", s.SignalExitCode)
	}
	if !IsFormat(s.ShowFormat) {
		return fmt.Errorf("unsupported format: %s (supported: %s)", s.ShowFormat, strings.Join(Formats, ", "))
	}
	if s.ShowFormat == FormatTemplate && s.ShowTemplate == "" {
		return fmt.Errorf("format %q requires a template", FormatTemplate)
	}
	return nil
}

// IsFormat reports whether name is a supported show format
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
