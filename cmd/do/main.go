package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/templui/folio/cmd/do/cmd"
	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)

	rootCmd := &cobra.Command{
		Use:           "do",
		Short:         "Content and component tools for folio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cmd.CheckCmd(cfg))
	rootCmd.AddCommand(cmd.PreviewCmd(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		rootCmd.PrintErrln("error:", err)
		stop()
		os.Exit(1)
	}
}
