package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the records without writing the dataset",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService(cmd)
		if err != nil {
			fatal("Error initializing compiler", err)
		}

		patterns, err := svc.Check(context.Background())
		if err != nil {
			compileFailed(err)
		}

		fmt.Printf("OK: %d patterns\n", len(patterns))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
