package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListProjectsCmd creates the list-projects command
func NewListProjectsCmd(c *container) *cobra.Command {
	return &cobra.Command{
		Use:   "list-projects",
		Short: "List the projects of the organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			azdoRepo, err := c.azdoRepository()
			if err != nil {
				return err
			}
			projects, err := azdoRepo.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range projects {
				fmt.Fprintf(out, "%s\t%s\t%s\n", p.ID, p.Name, p.State)
			}
			return nil
		},
	}
}
