package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/equality"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of equality",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("equality version %s\n", strings.TrimSpace(equality.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
