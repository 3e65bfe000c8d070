package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the records and write the dataset",
	Long: `Compile every record file into the dataset.
Nothing is written when a record is invalid or a phrase is listed twice.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService(cmd)
		if err != nil {
			fatal("Error initializing compiler", err)
		}

		patterns, err := svc.Build(context.Background())
		if err != nil {
			compileFailed(err)
		}

		fmt.Printf("Compiled %d patterns\n", len(patterns))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
