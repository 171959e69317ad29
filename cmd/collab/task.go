package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/korhvimtv/code-collab/internal/views"

	"github.com/spf13/cobra"
)

func taskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Browse and manage tasks",
	}
	cmd.AddCommand(
		taskShowCmd(a),
		taskCreateCmd(a),
		taskToggleCmd(a),
		taskInviteCmd(a),
		taskDeleteCmd(a),
	)
	return cmd
}

func taskShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			t, err := a.repo.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] #%d %s\n%s\n", mark, t.ID, t.Title, t.Description)
			fmt.Printf("project: #%d %s\n", t.Project.ProjectID, t.Project.ProjectTitle)
			fmt.Printf("due: %s\n", t.Deadline.Format(time.RFC3339))
			fmt.Print("assignees:")
			for _, m := range t.Members {
				fmt.Printf(" %s(%d)", m.Username, m.UserID)
			}
			fmt.Println()
			return nil
		},
	}
}

func taskCreateCmd(a *app) *cobra.Command {
	var description, deadline string
	var assignee int

	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a task in a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			due, err := time.Parse(time.RFC3339, deadline)
			if err != nil {
				return fmt.Errorf("invalid deadline %q, want RFC 3339", deadline)
			}

			view := views.NewProjectDetail(a.log, a.repo, projectID)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := view.CreateTask(cmd.Context(), assignee, args[1], description, due); err != nil {
				return err
			}
			fmt.Printf("created task in project #%d, %d tasks total\n", projectID, len(view.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline, RFC 3339")
	cmd.Flags().IntVar(&assignee, "assignee", 0, "assignee user id")
	_ = cmd.MarkFlagRequired("deadline")
	_ = cmd.MarkFlagRequired("assignee")
	return cmd
}

func taskToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [project-id] [task-id]",
		Short: "Flip a task's completed flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			taskID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[1])
			}

			view := views.NewProjectDetail(a.log, a.repo, projectID)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := view.ToggleTask(cmd.Context(), taskID); err != nil {
				return err
			}
			fmt.Printf("toggled task #%d\n", taskID)
			return nil
		},
	}
}

func taskInviteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invite [task-id] [project-id] [user-id]",
		Short: "Add an assignee to a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 3)
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid id %q", arg)
				}
				ids[i] = n
			}

			if err := a.repo.InviteToTask(cmd.Context(), ids[0], ids[1], ids[2]); err != nil {
				return err
			}
			fmt.Printf("assigned user %d to task #%d\n", ids[2], ids[0])
			return nil
		},
	}
}

func taskDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project-id] [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			taskID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[1])
			}

			view := views.NewProjectDetail(a.log, a.repo, projectID)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}
			if err := view.DeleteTask(cmd.Context(), taskID, terminalConfirm()); err != nil {
				return err
			}
			fmt.Printf("project #%d now has %d tasks\n", projectID, len(view.Tasks))
			return nil
		},
	}
}
