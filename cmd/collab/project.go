package main

import (
	"fmt"
	"strconv"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/views"

	"github.com/spf13/cobra"
)

func projectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Browse and manage projects",
	}
	cmd.AddCommand(
		projectListCmd(a),
		projectShowCmd(a),
		projectCreateCmd(a),
		projectInviteCmd(a),
		projectUpdateCmd(a),
		projectDeleteCmd(a),
	)
	return cmd
}

func projectListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List my projects and the public catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := views.NewProjectList(a.log, a.repo)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("mine (%d):\n", len(view.Mine))
			for i := range view.Mine {
				p := &view.Mine[i]
				role := "member"
				if view.CreatorOf(p) {
					role = "creator"
				}
				fmt.Printf("  #%-4d %-24s %s\n", p.ID, p.Title, role)
			}

			fmt.Printf("all (%d):\n", len(view.All))
			for i := range view.All {
				p := &view.All[i]
				fmt.Printf("  #%-4d %-24s members=%d\n", p.ID, p.Title, len(p.Members))
			}
			return nil
		},
	}
}

func projectShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show one project with members, tasks and my capabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			view := views.NewProjectDetail(a.log, a.repo, id)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			p := view.Project
			fmt.Printf("#%d %s\n%s\n", p.ID, p.Title, p.Description)

			fmt.Printf("members (%d):\n", len(p.Members))
			for _, m := range p.Members {
				role := "member"
				if m.IsCreator {
					role = "owner"
				}
				fmt.Printf("  %-8s %s (id %d)\n", role, m.Username, m.UserID)
			}

			if view.Gates.ViewTasks {
				fmt.Printf("tasks (%d):\n", len(view.Tasks))
				for _, t := range view.Tasks {
					mark := " "
					if t.Completed {
						mark = "x"
					}
					fmt.Printf("  [%s] #%-4d %-24s due %s\n", mark, t.ID, t.Title, t.Deadline.Format("2006-01-02 15:04"))
				}
			} else {
				fmt.Println("tasks: only project members can view tasks")
			}

			fmt.Printf("can: invite=%t edit=%t delete=%t create-task=%t delete-task=%t\n",
				view.Gates.Invite, view.Gates.EditProject, view.Gates.DeleteProject,
				view.Gates.CreateTask, view.Gates.DeleteTask)
			return nil
		},
	}
}

func projectCreateCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a project owned by me",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.repo.CreateProject(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			fmt.Printf("created project #%d %s\n", p.ID, p.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "project description")
	return cmd
}

func projectInviteCmd(a *app) *cobra.Command {
	var creator bool

	cmd := &cobra.Command{
		Use:   "invite [project-id] [user-id]",
		Short: "Invite a user to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			userID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[1])
			}

			view := views.NewProjectDetail(a.log, a.repo, projectID)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := view.Invite(cmd.Context(), userID, creator); err != nil {
				return err
			}
			fmt.Printf("invited user %d, project now has %d members\n", userID, len(view.Project.Members))
			return nil
		},
	}

	cmd.Flags().BoolVar(&creator, "creator", false, "grant the creator role")
	return cmd
}

func projectUpdateCmd(a *app) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Change project settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			var update entities.ProjectUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}

			view := views.NewProjectDetail(a.log, a.repo, id)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := view.SaveSettings(cmd.Context(), update); err != nil {
				return err
			}
			fmt.Printf("saved project #%d %s\n", view.Project.ID, view.Project.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	return cmd
}

func projectDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project-id]",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			view := views.NewProjectDetail(a.log, a.repo, id)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			deleted, err := view.DeleteProject(cmd.Context(), terminalConfirm())
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("kept the project")
				return nil
			}
			fmt.Printf("deleted project #%d\n", id)
			return nil
		},
	}
}
