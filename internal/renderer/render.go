// Where: cli/internal/renderer/render.go
// What: Render translated resources configs as JSON, YAML, or platform sources.
// Why: One output surface for the convert command.
package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/amplify-config-bridge/cli/internal/outputs"
	"sigs.k8s.io/yaml"
)

// Supported output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatDart  = "dart"
	FormatSwift = "swift"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Render serializes the resources config in the requested format.
func Render(cfg outputs.ResourcesConfig, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		payload, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal resources config: %w", err)
		}
		return append(payload, '\n'), nil
	case FormatYAML:
		payload, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshal resources config: %w", err)
		}
		return payload, nil
	case FormatDart, FormatSwift:
		return renderPlatform(cfg, format)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DefaultFileName returns the conventional output file name for a format.
func DefaultFileName(format string) string {
	switch format {
	case FormatYAML:
		return "amplify_outputs.yaml"
	case FormatDart:
		return "amplify_outputs.dart"
	case FormatSwift:
		return "AmplifyOutputs.swift"
	default:
		return "amplify_outputs.json"
	}
}

type platformTemplateData struct {
	JSON string
}

func renderPlatform(cfg outputs.ResourcesConfig, format string) ([]byte, error) {
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resources config: %w", err)
	}

	rendered, err := renderTemplate(format+".tmpl", platformTemplateData{JSON: string(payload)})
	if err != nil {
		return nil, err
	}
	return []byte(rendered), nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		return cached.(*template.Template), nil
	}

	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
