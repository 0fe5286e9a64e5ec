package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/z0mbix/withcleanenv/internal/cleanenv"
	"github.com/z0mbix/withcleanenv/internal/config"
	"github.com/z0mbix/withcleanenv/internal/envblock"
)

var (
	showFormat   string
	showTemplate string
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the clean environment",
		Long: `The show command prints the clean environment without running
anything, in the order the operating system reported it.

Formats:
  env       NAME=VALUE lines
  json      an array of {"name", "value"} objects
  yaml      a mapping of names to values
  hcl       an "env" object attribute
  template  a Go template with sprig functions, see --template.
            The template receives .Entries (a list with .Name and .Value)
            and .Vars (a map of names to values).`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showFormat, "format", "f", "",
		"Output format: "+strings.Join(config.Formats, ", ")+" (default env)")
	cmd.Flags().StringVarP(&showTemplate, "template", "t", "",
		"Template text; implies --format template")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("template") {
		settings.ShowTemplate = showTemplate
		settings.ShowFormat = config.FormatTemplate
	}
	if cmd.Flags().Changed("format") {
		settings.ShowFormat = strings.ToLower(showFormat)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	env, err := cleanEnvironment(newLogger(stderr, useColors(settings.NoColor, stderr), settings.Verbose))
	if err != nil {
		return err
	}

	return writeEnvironment(cmd.OutOrStdout(), env, settings.ShowFormat, settings.ShowTemplate)
}

// writeEnvironment renders env to out in the given format
func writeEnvironment(out io.Writer, env cleanenv.Environment, format, tmpl string) error {
	switch format {
	case config.FormatEnv:
		return outputEnv(out, env)
	case config.FormatJSON:
		return outputJSON(out, env)
	case config.FormatYAML:
		return outputYAML(out, env)
	case config.FormatHCL:
		return outputHCL(out, env)
	case config.FormatTemplate:
		return outputTemplate(out, env, tmpl)
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(config.Formats, ", "))
	}
}

func outputEnv(out io.Writer, env cleanenv.Environment) error {
	for _, e := range env.Entries() {
		if _, err := fmt.Fprintln(out, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// variableOutput is a structured representation of a variable for serialization
type variableOutput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func outputJSON(out io.Writer, env cleanenv.Environment) error {
	vars := make([]variableOutput, 0, env.Len())
	for _, e := range env.Entries() {
		vars = append(vars, variableOutput{Name: e.Name, Value: e.Value})
	}
	data, err := json.MarshalIndent(vars, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// outputYAML writes a mapping node so that block order is preserved
func outputYAML(out io.Writer, env cleanenv.Environment) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range env.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(node); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err := out.Write(buf.Bytes())
	return err
}

func outputHCL(out io.Writer, env cleanenv.Environment) error {
	vals := make(map[string]cty.Value, env.Len())
	for name, value := range env.Map() {
		vals[name] = cty.StringVal(value)
	}

	f := hclwrite.NewEmptyFile()
	f.Body().SetAttributeValue("env", cty.ObjectVal(vals))
	_, err := out.Write(hclwrite.Format(f.Bytes()))
	return err
}

// templateData is the value passed to show templates
type templateData struct {
	Entries []envblock.Entry
	Vars    map[string]string
}

func outputTemplate(out io.Writer, env cleanenv.Environment, text string) error {
	tmpl, err := template.New("show").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := templateData{
		Entries: env.Entries(),
		Vars:    env.Map(),
	}
	if err := tmpl.Execute(out, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
