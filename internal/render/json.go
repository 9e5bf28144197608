package render

import (
	"fmt"
	"strings"

	"github.com/cinemahdplus/cinemahdplus/internal/project"
)

// JSON renders m as a two-space indented object with a fixed field order.
// The keyword array stays on one line. There is no trailing newline.
func JSON(m project.Metadata) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	writeField(&sb, "  ", "project", m.Project, true)
	writeField(&sb, "  ", "domain", m.Domain, true)
	writeField(&sb, "  ", "tagline", m.Tagline, true)
	sb.WriteString("  \"author\": {\n")
	writeField(&sb, "    ", "name", m.Author.Name, true)
	writeField(&sb, "    ", "role", m.Author.Role, true)
	writeField(&sb, "    ", "email", m.Author.Email, false)
	sb.WriteString("  },\n")
	sb.WriteString("  \"keywords\": [")
	for i, k := range m.Keywords {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(quote(k))
	}
	sb.WriteString("],\n")
	writeField(&sb, "  ", "version", m.Version, true)
	writeField(&sb, "  ", "year", m.Year, true)
	writeField(&sb, "  ", "disclaimer", m.Disclaimer, false)
	sb.WriteString("}")
	return sb.String()
}

func writeField(sb *strings.Builder, indent, key, value string, more bool) {
	sb.WriteString(indent + quote(key) + ": " + quote(value))
	if more {
		sb.WriteByte(',')
	}
	sb.WriteByte('\n')
}

func quote(s string) string {
	return `"` + Escape(s) + `"`
}

// Escape returns s escaped for use inside a JSON string literal. Backslash,
// double quote and newline become \\, \" and \n. Any other control
// character is escaped too so the result is always valid JSON.
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
