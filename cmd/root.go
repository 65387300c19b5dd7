package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "publishpr",
	Short: "A CLI tool for publishing file changes to Azure DevOps as pull requests",
	Long: `publishpr pushes a single-file change to an Azure DevOps repository on a
working branch and opens a pull request against the base branch.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
