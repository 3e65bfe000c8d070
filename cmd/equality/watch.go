package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/equality"
	lcadapter "github.com/aretw0/equality/pkg/adapters/lifecycle"
	"github.com/aretw0/equality/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the dataset whenever a record file changes",
	Long: `Build once, then rebuild on every change to the record files.
A failed rebuild is reported and the last good dataset is kept.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService(cmd, equality.WithWatcherErrorHandler(func(err error) {
			slog.Warn("watcher error", "error", err)
		}))
		if err != nil {
			fatal("Error initializing compiler", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		results, err := svc.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		source := lcadapter.NewSource(results)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting rebuild loop", err)
		}

		for e := range source.Events() {
			r, ok := e.(core.BuildResult)
			if !ok {
				continue
			}
			if r.Err != nil {
				slog.Error("build failed", "result", r.String())
				continue
			}
			slog.Info("build succeeded", "result", r.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
