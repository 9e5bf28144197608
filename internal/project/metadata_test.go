package project

import (
	"strings"
	"testing"

	"github.com/cinemahdplus/cinemahdplus/internal/buildinfo"
)

func TestDefault_Fields(t *testing.T) {
	m := Default()
	if m.Project != "CinemaHDPlus" || m.Domain != "https://cinemahdplus.com" {
		t.Fatalf("unexpected identity: %q %q", m.Project, m.Domain)
	}
	if m.Author.Email != "cinemahdplusapp@gmail.com" {
		t.Fatalf("unexpected email: %q", m.Author.Email)
	}
	if m.Version != buildinfo.ResolvedVersion() {
		t.Fatalf("version not taken from buildinfo: %q", m.Version)
	}
	want := "cinema hd apk,cinema hd firestick,cinema hd v3,cinema app download,cinema hd plus"
	if got := strings.Join(m.Keywords, ","); got != want {
		t.Fatalf("unexpected keywords: %q", got)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Keywords[0] = "mutated"
	a.Project = "mutated"
	b := Default()
	if b.Keywords[0] != "cinema hd apk" || b.Project != "CinemaHDPlus" {
		t.Fatalf("shared metadata was mutated: %+v", b)
	}
}

func TestValidate_Default(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default metadata rejected: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Metadata){
		"empty tagline":    func(m *Metadata) { m.Tagline = "" },
		"empty role":       func(m *Metadata) { m.Author.Role = "" },
		"bad email":        func(m *Metadata) { m.Author.Email = "nobody" },
		"http domain":      func(m *Metadata) { m.Domain = "http://cinemahdplus.com" },
		"short year":       func(m *Metadata) { m.Year = "25" },
		"no keywords":      func(m *Metadata) { m.Keywords = nil },
		"empty keyword":    func(m *Metadata) { m.Keywords = []string{"ok", ""} },
		"empty version":    func(m *Metadata) { m.Version = "" },
		"empty disclaimer": func(m *Metadata) { m.Disclaimer = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := Default()
			mutate(&m)
			err := Validate(m)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.HasPrefix(err.Error(), "invalid metadata: ") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
