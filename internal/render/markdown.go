package render

import (
	"strings"

	"github.com/cinemahdplus/cinemahdplus/internal/project"
)

// The markdown page words its disclaimer differently from the plain and JSON
// outputs.
const markdownDisclaimer = "CinemaHDPlus is not affiliated with the original Cinema HD developers or any streaming service. " +
	"All content is for educational/informational purposes only. Users are responsible for compliance with local laws."

var markdownFeatures = []string{
	"Official & verified info for Cinema HD APK",
	"Installation guides for Firestick, Android TV, Smart TV",
	"Safety notes and best practices",
	"SEO-optimized blog posts & FAQs",
	"Multi-language support",
}

// Markdown renders m as a README-style page.
func Markdown(m project.Metadata) string {
	var sb strings.Builder
	sb.WriteString("# 🎬 " + m.Project + " — Official Website\n\n")
	sb.WriteString("**" + m.Domain + "** — " + m.Tagline + "\n\n")

	sb.WriteString("## Author\n")
	sb.WriteString("- **" + m.Author.Name + "** — " + m.Author.Role + "\n")
	sb.WriteString("- 📧 [" + m.Author.Email + "](mailto:" + m.Author.Email + ")\n\n")

	sb.WriteString("## Features\n")
	for _, f := range markdownFeatures {
		sb.WriteString("- " + f + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Keywords\n")
	sb.WriteString("`" + strings.Join(m.Keywords, "` • `") + "`\n\n")

	sb.WriteString("> **Disclaimer:** " + markdownDisclaimer + "\n\n")
	sb.WriteString("**© " + m.Year + " " + m.Domain + " — All Rights Reserved.**\n")
	return sb.String()
}
