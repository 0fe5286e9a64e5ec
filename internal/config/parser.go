package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "WITH_CLEAN_ENV_CONFIG"

// Parser handles parsing HCL configuration files
type Parser struct {
	parser  *hclparse.Parser
	baseDir string // directory containing the file being parsed
}

// NewParser creates a new HCL parser
func NewParser() *Parser {
	return &Parser{
		parser: hclparse.NewParser(),
	}
}

// ParseFile parses a configuration file
func (p *Parser) ParseFile(filename string) (*Config, hcl.Diagnostics) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to read file",
			Detail:   err.Error(),
		}}
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to resolve file path",
			Detail:   err.Error(),
		}}
	}

	return p.Parse(src, absPath)
}

// Parse parses configuration source. filename is used in diagnostics and
// as the base for relative paths passed to file().
func (p *Parser) Parse(src []byte, filename string) (*Config, hcl.Diagnostics) {
	p.baseDir = filepath.Dir(filename)

	file, diags := p.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var cfg Config
	diags = append(diags, gohcl.DecodeBody(file.Body, p.buildEvalContext(), &cfg)...)
	if diags.HasErrors() {
		return nil, diags
	}

	return &cfg, diags
}

// buildEvalContext creates the evaluation context for HCL expressions
func (p *Parser) buildEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: standardFunctions(p.baseDir),
	}
}

// DefaultPath returns the per-user configuration file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "with-clean-env", "config.hcl"), nil
}

// FindConfigFile resolves which configuration file to load. An explicit
// path, then $WITH_CLEAN_ENV_CONFIG, must exist. The default location is
// optional: found is false when it does not exist.
func FindConfigFile(path string) (string, bool, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", false, fmt.Errorf("cannot access %s: %w", path, err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("%s is a directory", path)
		}
		return path, true, nil
	}

	path, err := DefaultPath()
	if err != nil {
		return "", false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", false, nil
	}
	return path, true, nil
}

// Load finds and parses the configuration file and returns the resulting
// settings. Without a configuration file the defaults are returned.
func Load(path string) (Settings, string, error) {
	settings := DefaultSettings()

	path, found, err := FindConfigFile(path)
	if err != nil {
		return settings, "", err
	}
	if !found {
		return settings, "", nil
	}

	cfg, diags := NewParser().ParseFile(path)
	if diags.HasErrors() {
		return settings, path, diags
	}

	settings.Apply(cfg)
	if err := settings.Validate(); err != nil {
		return settings, path, fmt.Errorf("%s: %w", path, err)
	}

	return settings, path, nil
}
