// Package project holds the static CinemaHDPlus site metadata shared by every
// renderer.
package project

import (
	"slices"

	"github.com/cinemahdplus/cinemahdplus/internal/buildinfo"
)

// Author identifies the site maintainer.
type Author struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Email string `json:"email" yaml:"email"`
}

// Metadata describes the project. Field order matches the JSON and YAML
// output order.
type Metadata struct {
	Project    string   `json:"project" yaml:"project"`
	Domain     string   `json:"domain" yaml:"domain"`
	Tagline    string   `json:"tagline" yaml:"tagline"`
	Author     Author   `json:"author" yaml:"author"`
	Keywords   []string `json:"keywords" yaml:"keywords"`
	Version    string   `json:"version" yaml:"version"`
	Year       string   `json:"year" yaml:"year"`
	Disclaimer string   `json:"disclaimer" yaml:"disclaimer"`
}

const (
	name        = "CinemaHDPlus"
	domain      = "https://cinemahdplus.com"
	tagline     = "Official website for guides, updates, and safe info about Cinema HD APK."
	authorName  = "Andrew Urquhart"
	authorRole  = "Staff Software Engineer at FieldView"
	authorEmail = "cinemahdplusapp@gmail.com"
	year        = "2025"
	disclaimer  = "CinemaHDPlus is not affiliated with the original Cinema HD developers or any streaming service. " +
		"All content is for educational/informational purposes only. Users are responsible for local law compliance."
)

var keywords = []string{
	"cinema hd apk",
	"cinema hd firestick",
	"cinema hd v3",
	"cinema app download",
	"cinema hd plus",
}

// Default returns the site metadata. Every call returns a fresh copy.
func Default() Metadata {
	return Metadata{
		Project: name,
		Domain:  domain,
		Tagline: tagline,
		Author: Author{
			Name:  authorName,
			Role:  authorRole,
			Email: authorEmail,
		},
		Keywords:   slices.Clone(keywords),
		Version:    buildinfo.ResolvedVersion(),
		Year:       year,
		Disclaimer: disclaimer,
	}
}
