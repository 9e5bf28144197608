package cli

// Version and Date may be injected by external release scripts, e.g.:
//
//	-ldflags "-X 'github.com/cinemahdplus/cinemahdplus/cli.Version=1.0.1' -X 'github.com/cinemahdplus/cinemahdplus/cli.Date=2025-06-01'"
//
// internal/buildinfo prefers its own variables and falls back to these.
var (
	Version string
	Date    string
)
