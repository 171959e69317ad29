package main

import (
	"fmt"

	"github.com/korhvimtv/code-collab/internal/views"

	"github.com/spf13/cobra"
)

func usersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse users",
	}
	cmd.AddCommand(usersListCmd(a), usersShowCmd(a))
	return cmd
}

func usersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := a.repo.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Printf("  #%-4d @%-16s %s <%s>\n", u.ID, u.Username, u.Name, u.Email)
			}
			return nil
		},
	}
}

func usersShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [username]",
		Short: "Show a user profile and their projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := views.NewUserDetail(a.log, a.repo, args[0])
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("%s @%s <%s> (id %d)\n", view.User.Name, view.User.Username, view.User.Email, view.User.ID)
			fmt.Printf("projects (%d):\n", len(view.Projects))
			for _, p := range view.Projects {
				fmt.Printf("  #%-4d %-24s members=%d\n", p.ID, p.Title, len(p.Members))
			}
			return nil
		},
	}
}
