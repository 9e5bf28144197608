package render

import (
	"strings"

	"github.com/cinemahdplus/cinemahdplus/internal/project"
)

// Plain renders m as unadorned text.
func Plain(m project.Metadata) string {
	var sb strings.Builder
	sb.WriteString(m.Project + " — " + m.Domain + "\n")
	sb.WriteString(m.Tagline + "\n\n")
	sb.WriteString("Author: " + m.Author.Name + " (" + m.Author.Role + ")\n")
	sb.WriteString("Email: " + m.Author.Email + "\n")
	sb.WriteString("Keywords: " + strings.Join(m.Keywords, ", ") + "\n")
	sb.WriteString("Disclaimer: " + m.Disclaimer + "\n")
	sb.WriteString("© " + m.Year + " " + m.Domain + "\n")
	return sb.String()
}
