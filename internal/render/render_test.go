package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinemahdplus/cinemahdplus/internal/project"
	"github.com/google/go-cmp/cmp"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(b)
}

func TestRenderers_Golden(t *testing.T) {
	m := project.Default()
	cases := []struct {
		format Format
		golden string
	}{
		{FormatPlain, "plain.golden"},
		{FormatMarkdown, "markdown.golden"},
		{FormatJSON, "json.golden"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			got, err := Render(tc.format, m)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(readGolden(t, tc.golden), got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderers_Deterministic(t *testing.T) {
	m := project.Default()
	for _, f := range Formats {
		a, err := Render(f, m)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		b, err := Render(f, m)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if a != b {
			t.Fatalf("%s output not deterministic", f)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"plain", "Markdown", " JSON ", "yaml", "TOON"} {
		if _, err := ParseFormat(in); err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := Render(Format("xml"), project.Default()); err == nil {
		t.Fatalf("expected error rendering unknown format")
	}
}
