// Package cli wires the gca command line to the commit flow.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gca.dev/gca/internal/actions/commit"
	"gca.dev/gca/internal/config"
	gcaerrors "gca.dev/gca/internal/errors"
	"gca.dev/gca/internal/git"
	"gca.dev/gca/internal/runtime"
	"gca.dev/gca/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commitSHA, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gca",
		Short: "Stage, describe, commit and push your changes in one guided pass",
		Long: `gca is a small git commit assistant.

Run it inside a git work tree with pending changes. It offers a guided commit
(pick a conventional commit type and a template) or a custom message whose type
is detected from its words, asks before staging and committing everything, and
asks again before pushing.`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commitSHA, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	return rootCmd
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	splog, err := tui.NewSplogWithConfig(out, cfg.LogFilePath())
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	tui.ConfigureColors()

	ctx := runtime.NewContext(
		cmd.Context(),
		git.NewRealRunner("", out, cmd.ErrOrStderr()),
		tui.NewPrompter(cmd.InOrStdin(), out),
		splog,
		cfg,
	)
	return commit.Action(ctx, commit.DefaultOptions(ctx))
}

// ReportError prints the error that ended a run. Operator cancels are not failures.
// When git already streamed its own output, only the failed step is named.
func ReportError(w io.Writer, err error) {
	if errors.Is(err, gcaerrors.ErrCanceled) {
		_, _ = fmt.Fprintln(w, "Canceled")
		return
	}

	var gitErr *gcaerrors.GitCommandError
	if errors.As(err, &gitErr) && gitErr.Streamed {
		_, _ = fmt.Fprintf(w, "❌ %s\n", streamedFailure(err, gitErr))
		return
	}
	_, _ = fmt.Fprintf(w, "❌ %v\n", err)
}

// streamedFailure strips the git details from err, keeping the wrapping context
// ("failed to push") and any interruption cause.
func streamedFailure(err error, gitErr *gcaerrors.GitCommandError) string {
	msg := strings.TrimSuffix(err.Error(), ": "+gitErr.Error())
	if msg == err.Error() {
		msg = "git command failed"
		if len(gitErr.Args) > 0 {
			msg = fmt.Sprintf("git %s failed", gitErr.Args[0])
		}
	}
	if errors.Is(gitErr, context.Canceled) || errors.Is(gitErr, context.DeadlineExceeded) {
		msg += ": " + gitErr.Err.Error()
	}
	return msg
}
