package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gca.dev/gca/internal/cli"
	"gca.dev/gca/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, commit, date)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.ReportError(rootCmd.ErrOrStderr(), err)
		os.Exit(errors.ExitCode(err))
	}
}
