package main

import (
	"fmt"

	"github.com/korhvimtv/code-collab/internal/views"

	"github.com/spf13/cobra"
)

func searchCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search projects by title or users by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewSearch(a.log, a.repo)
			switch kind {
			case "users":
				view.SetKind(views.SearchUsers)
			case "projects":
				view.SetKind(views.SearchProjects)
			default:
				return fmt.Errorf("unknown kind %q, want projects or users", kind)
			}

			view.SetQuery(args[0])
			if err := view.Submit(cmd.Context()); err != nil {
				return err
			}

			results := view.Results()
			if len(results) == 0 {
				fmt.Println("no results")
				return nil
			}
			for _, r := range results {
				switch r.Target.Kind {
				case views.SearchUsers:
					fmt.Printf("  user     %-24s %s\n", r.Title, r.Subtitle)
				default:
					fmt.Printf("  project  #%-4d %-24s %s\n", r.Target.ProjectID, r.Title, r.Subtitle)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "projects", "what to search: projects or users")
	return cmd
}
