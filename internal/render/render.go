// Package render turns project metadata into its textual representations.
// Every renderer is a pure function of project.Metadata.
package render

import (
	"fmt"
	"strings"

	"github.com/cinemahdplus/cinemahdplus/internal/project"
)

// Format names an output representation.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOON     Format = "toon"
)

// Formats lists the supported formats in dispatch priority order.
var Formats = []Format{FormatPlain, FormatMarkdown, FormatJSON, FormatYAML, FormatTOON}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %q", s)
}

// Render dispatches to the renderer for f.
func Render(f Format, m project.Metadata) (string, error) {
	switch f {
	case FormatPlain:
		return Plain(m), nil
	case FormatMarkdown:
		return Markdown(m), nil
	case FormatJSON:
		return JSON(m), nil
	case FormatYAML:
		return YAML(m)
	case FormatTOON:
		return TOON(m)
	default:
		return "", fmt.Errorf("unknown format: %q", string(f))
	}
}
