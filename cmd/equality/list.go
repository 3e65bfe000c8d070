package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/equality/pkg/adapters/fs"
	"github.com/aretw0/equality/pkg/core"
)

var (
	listJSON       bool
	filterCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the compiled patterns",
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

		// Filter
		var filtered []core.Pattern
		for _, p := range patterns {
			if filterCategory != "" && !hasCategory(p, filterCategory) {
				continue
			}
			filtered = append(filtered, p)
		}

		if listJSON {
			data, err := fs.NewJSONSerializer(false).Serialize(filtered)
			if err != nil {
				fatal("Error encoding JSON", err)
			}
			os.Stdout.Write(data)
			return
		}

		for _, p := range filtered {
			fmt.Printf("%s\t%s\n", p.ID, strings.Join(p.Inconsiderate.Keys(), ", "))
		}
	},
}

func hasCategory(p core.Pattern, category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterCategory, "category", "", "Only list patterns with this category")
}
