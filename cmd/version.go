package cmd

import (
	"fmt"
	"strings"

	"github.com/azdoops/publishpr/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:\t%s\n", orFallback(version.Version, "dev"))
			fmt.Fprintf(out, "Commit:\t%s\n", orFallback(version.CommitHash, "unknown"))
			fmt.Fprintf(out, "Built:\t%s\n", orFallback(version.BuildDate, "unknown"))
			return nil
		},
	}
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
