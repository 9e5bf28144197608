package root

import (
	"fmt"
	"io"

	"github.com/cinemahdplus/cinemahdplus/internal/buildinfo"
	"github.com/cinemahdplus/cinemahdplus/internal/checksum"
	"github.com/cinemahdplus/cinemahdplus/internal/project"
	"github.com/cinemahdplus/cinemahdplus/internal/render"
	"github.com/spf13/cobra"
)

const commandName = "cinemahdplus"

// stdinPath hashes standard input instead of a file.
const stdinPath = "-"

// NewRootCmd creates the root command for cinemahdplus.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   commandName,
		Short: "CLI: project info and APK checksums for cinemahdplus.com",
		Args:  cobra.ArbitraryArgs,
		// Flags are matched case-insensitively by Select, so cobra must not
		// reject or reorder them.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	m := project.Default()
	if err := project.Validate(m); err != nil {
		return failure(err.Error())
	}
	out := cmd.OutOrStdout()

	action := Select(args)
	switch action.Kind {
	case ActionRender:
		s, err := render.Render(action.Format, m)
		if err != nil {
			return failure(err.Error())
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case ActionVersion:
		_, err := fmt.Fprintln(out, buildinfo.ResolvedVersion())
		return err
	case ActionCheck:
		res, err := checksumOf(cmd, action.Path)
		if err != nil {
			return failure(msgChecksumFailed + err.Error())
		}
		_, err = fmt.Fprintln(out, res)
		return err
	case ActionMissingPath:
		return usageError(msgMissingCheckPath)
	default:
		if err := writeHelp(out); err != nil {
			return err
		}
		return usageError("")
	}
}

func checksumOf(cmd *cobra.Command, path string) (checksum.Result, error) {
	if path == stdinPath {
		return checksum.Reader(stdinPath, cmd.InOrStdin())
	}
	return checksum.File(path)
}

func writeHelp(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\n"+
		"Usage:\n"+
		"  %[1]s [--plain|--markdown|--json|--yaml|--toon]\n"+
		"  %[1]s --check <filePath>\n"+
		"  %[1]s --version\n",
		commandName, buildinfo.Summary())
	return err
}
