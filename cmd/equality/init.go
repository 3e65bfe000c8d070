package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configTemplate = `# equality project configuration.
# Relative paths are resolved against this file's directory.
data: script
output: lib/patterns.json
patterns:
  - "**/*.yml"
nfc: false
`

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .equality.yml project file",
	Long:  `Write a .equality.yml in the current directory, marking it as the project root.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		path := filepath.Join(cwd, ".equality.yml")
		if _, err := os.Stat(path); err == nil {
			fatal("Failed to initialize project", errors.New(".equality.yml already exists"))
		}

		if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
			fatal("Failed to write .equality.yml", err)
		}

		fmt.Println("Initialized equality project in", cwd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
