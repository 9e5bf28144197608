package render

import (
	"bytes"

	"github.com/cinemahdplus/cinemahdplus/internal/project"
	"gopkg.in/yaml.v3"
)

// YAML renders m with two-space indentation, keeping the JSON field order.
func YAML(m project.Metadata) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		_ = enc.Close()
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return string(out), nil
}
