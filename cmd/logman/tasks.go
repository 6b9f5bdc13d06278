package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task operations (add, toggle, delete)",
	}

	var description string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.svc.AddTask(args[0], description, optionalFlag(cmd, "due"))
			if err != nil {
				return err
			}
			if c.short() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), formatTask(t))
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
	add.Flags().StringVar(&description, "description", "", "longer description")
	add.Flags().String("due", "", `due date, "YYYY-MM-DD HH:MM:SS" (ignored if unparsable)`)

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between open and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed, err := c.svc.ToggleTask(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), completed)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.svc.DeleteTask(args[0])
		},
	}

	cmd.AddCommand(add, toggle, del)
	return cmd
}
