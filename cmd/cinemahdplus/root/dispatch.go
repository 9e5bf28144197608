package root

import (
	"strings"

	"github.com/cinemahdplus/cinemahdplus/internal/render"
)

// ActionKind is the single thing one invocation does.
type ActionKind int

const (
	ActionRender ActionKind = iota
	ActionVersion
	ActionCheck
	ActionMissingPath
	ActionHelp
)

// Action is the outcome of argument selection.
type Action struct {
	Kind   ActionKind
	Format render.Format
	Path   string
}

const (
	flagVersion = "--version"
	flagCheck   = "--check"
)

// Select picks the action for args. Flags match case-insensitively anywhere
// in args and are checked in priority order: the render formats, --version,
// --check, then help. Flags never combine.
func Select(args []string) Action {
	if len(args) == 0 {
		return Action{Kind: ActionRender, Format: render.FormatMarkdown}
	}
	for _, f := range render.Formats {
		if indexOf(args, "--"+string(f)) >= 0 {
			return Action{Kind: ActionRender, Format: f}
		}
	}
	if indexOf(args, flagVersion) >= 0 {
		return Action{Kind: ActionVersion}
	}
	if i := indexOf(args, flagCheck); i >= 0 {
		if i+1 >= len(args) {
			return Action{Kind: ActionMissingPath}
		}
		return Action{Kind: ActionCheck, Path: args[i+1]}
	}
	return Action{Kind: ActionHelp}
}

func indexOf(args []string, flag string) int {
	for i, a := range args {
		if strings.EqualFold(a, flag) {
			return i
		}
	}
	return -1
}
