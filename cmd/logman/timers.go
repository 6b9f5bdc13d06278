package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"log-manager/pkg/timer"
)

func (c *cli) timerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Timer operations (create, start, stop, reset, advance, delete)",
	}

	var (
		seconds  uint32
		pomodoro bool
	)
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a stopped timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := seconds
			if pomodoro && !cmd.Flags().Changed("seconds") {
				d = timer.PomodoroFocus
			}
			t, err := c.svc.CreateTimer(args[0], d, pomodoro)
			if err != nil {
				return err
			}
			return c.printTimer(cmd, t)
		},
	}
	create.Flags().Uint32Var(&seconds, "seconds", 600, "target length in seconds")
	create.Flags().BoolVar(&pomodoro, "pomodoro", false, "Pomodoro timer (defaults to a 25 minute focus)")

	advance := &cobra.Command{
		Use:   "advance <id> <seconds>",
		Short: "Record elapsed seconds on a timer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[1], err)
			}
			t, err := c.svc.AdvanceTimer(args[0], uint32(n))
			if err != nil {
				return err
			}
			return c.printTimer(cmd, t)
		},
	}

	cmd.AddCommand(
		create,
		idCommand("start <id>", "Start a timer", func(id string) error { return c.svc.StartTimer(id) }),
		idCommand("stop <id>", "Stop a timer", func(id string) error { return c.svc.StopTimer(id) }),
		idCommand("reset <id>", "Clear elapsed time and stop", func(id string) error { return c.svc.ResetTimer(id) }),
		idCommand("delete <id>", "Delete a timer", func(id string) error { return c.svc.DeleteTimer(id) }),
		advance,
	)
	return cmd
}

func (c *cli) printTimer(cmd *cobra.Command, t timer.Timer) error {
	if c.short() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), formatTimer(t))
		return err
	}
	return printJSON(cmd.OutOrStdout(), t)
}

// idCommand builds a subcommand that takes a single id and prints nothing on success.
func idCommand(use, short string, fn func(id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return fn(args[0])
		},
	}
}
