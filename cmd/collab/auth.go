package main

import (
	"fmt"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/views"

	"github.com/spf13/cobra"
)

func registerCmd(a *app) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register [username]",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.repo.Register(cmd.Context(), entities.User{
				Username: args[0],
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Printf("registered %s (id %d), now run: collab login %s\n", user.Username, user.ID, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Sign in and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.repo.Login(cmd.Context(), args[0], password); err != nil {
				return err
			}
			fmt.Printf("signed in as %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.repo.Logout()
			fmt.Println("signed out")
			return nil
		},
	}
}

func meCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in account and its projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := views.NewAccount(a.log, a.repo)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("%s <%s> @%s (id %d)\n", view.Me.Name, view.Me.Email, view.Me.Username, view.Me.ID)
			fmt.Printf("projects (%d):\n", len(view.Projects))
			for _, p := range view.Projects {
				fmt.Printf("  #%-4d %-24s members=%d\n", p.ID, p.Title, len(p.Members))
			}
			return nil
		},
	}
}

func accountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Update or delete the signed-in account",
	}
	cmd.AddCommand(accountUpdateCmd(a), accountDeleteCmd(a))
	return cmd
}

func accountUpdateCmd(a *app) *cobra.Command {
	var name, username, email, password string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := views.NewAccount(a.log, a.repo)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			var update entities.UserUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("username") {
				update.Username = &username
			}
			if cmd.Flags().Changed("email") {
				update.Email = &email
			}
			if cmd.Flags().Changed("password") {
				update.Password = &password
			}

			if err := view.SaveProfile(cmd.Context(), update); err != nil {
				return err
			}
			fmt.Printf("profile saved: %s @%s <%s>\n", view.Me.Name, view.Me.Username, view.Me.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	return cmd
}

func accountDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := views.NewAccount(a.log, a.repo)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			deleted, err := view.DeleteAccount(cmd.Context(), terminalConfirm())
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("kept the account")
				return nil
			}
			fmt.Println("account deleted")
			return nil
		},
	}
}
