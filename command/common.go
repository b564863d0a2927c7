package command

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/frantjc/workshopsync"
	"github.com/spf13/cobra"
)

func newSlogHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewTextHandler(w, opts)
}

// SetCommon applies the flags and behavior shared
// by every command, such as logging and versioning.
func SetCommon(cmd *cobra.Command, version string) *cobra.Command {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Flags().BoolP("help", "h", false, "Help for "+cmd.Name())
	cmd.Flags().Bool("version", false, "Version for "+cmd.Name())
	cmd.Version = version
	cmd.SetVersionTemplate("{{ .Name }}{{ .Version }} " + runtime.Version() + "\n")

	slogLeveler := new(SlogLeveler)
	slogLeveler.AddFlags(cmd.Flags())
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		handler := newSlogHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slogLeveler,
		})
		cmd.SetContext(workshopsync.WithLogger(cmd.Context(), slog.New(handler)))
	}

	return cmd
}
