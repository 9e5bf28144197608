package render

import (
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/cinemahdplus/cinemahdplus/internal/project"
)

// TOON renders m as Token-Oriented Object Notation.
func TOON(m project.Metadata) (string, error) {
	out, err := gotoon.Encode(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode Toon: %w", err)
	}
	return string(out), nil
}
