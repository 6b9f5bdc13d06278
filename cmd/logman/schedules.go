package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule operations (add, delete)",
	}

	var (
		description string
		start       string
		reminder    bool
	)
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event or reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.svc.AddSchedule(args[0], description, start, optionalFlag(cmd, "end"), reminder)
			if err != nil {
				return err
			}
			if c.short() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), formatSchedule(s))
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}
	add.Flags().StringVar(&description, "description", "", "longer description")
	add.Flags().StringVar(&start, "start", "", `start time, "YYYY-MM-DD HH:MM:SS"`)
	add.Flags().String("end", "", `end time, "YYYY-MM-DD HH:MM:SS" (ignored if unparsable)`)
	add.Flags().BoolVar(&reminder, "reminder", false, "a point-in-time reminder rather than an event")
	_ = add.MarkFlagRequired("start")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a schedule entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.svc.DeleteSchedule(args[0])
		},
	}

	cmd.AddCommand(add, del)
	return cmd
}
