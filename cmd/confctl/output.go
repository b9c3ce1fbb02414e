package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

// formatTree renders tree as canonical JSON or as YAML.
func formatTree(tree models.Tree, output string) ([]byte, error) {
	switch output {
	case outputJSON:
		return append(utils.EncodeJSON(tree), '\n'), nil
	case outputYAML:
		out, err := yaml.Marshal(printable(tree))
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w %q (use json or yaml)", errUnknownOutput, output)
	}
}

// formatValue renders a single value: strings verbatim, anything else as
// JSON.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return string(utils.EncodeJSON(v))
}

// printable replaces configure hooks, which have no textual form, with a
// placeholder.
func printable(v any) any {
	switch val := v.(type) {
	case models.Tree:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = printable(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = printable(child)
		}
		return out
	case models.Configurable:
		return fmt.Sprintf("<hook %T>", val)
	default:
		return val
	}
}
