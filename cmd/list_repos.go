package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListReposCmd creates the list-repos command
func NewListReposCmd(c *container) *cobra.Command {
	var listReposProject string
	cmd := &cobra.Command{
		Use:   "list-repos",
		Short: "List the Git repositories of a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			azdoRepo, err := c.azdoRepository()
			if err != nil {
				return err
			}
			project := firstNonEmpty(listReposProject, c.cfg.Project)
			if project == "" {
				return fmt.Errorf("project is required (set --project or AZDO_PROJECT)")
			}
			repos, err := azdoRepo.ListRepositories(cmd.Context(), project)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range repos {
				fmt.Fprintf(out, "%s\t%s\t%s\n", r.ID, r.Name, r.DefaultBranch)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listReposProject, "project", "", "Project name (defaults to config or origin remote)")
	return cmd
}
