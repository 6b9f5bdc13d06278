package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"log-manager/internal/api"
	"log-manager/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "logman: %v\n", err)
		os.Exit(1)
	}
}

type cli struct {
	dataFile string
	format   string
	svc      *api.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "logman",
		Short: "Manage log-manager tasks, schedules and timers from the shell",
		Long: `logman reads and edits the same app_data.json document the desktop
app uses. Every command that changes something rewrites the document.

Timestamps are given as "YYYY-MM-DD HH:MM:SS".`,
		PersistentPreRunE: c.open,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.PersistentFlags().StringVar(&c.dataFile, "data-file", "", "path to app_data.json (default: per-user config dir)")
	root.PersistentFlags().StringVar(&c.format, "format", "json", "output format: json or short")

	root.AddCommand(c.stateCmd())
	root.AddCommand(c.taskCmd())
	root.AddCommand(c.scheduleCmd())
	root.AddCommand(c.timerCmd())
	return root
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if c.format != "json" && c.format != "short" {
		return fmt.Errorf("unknown --format %q", c.format)
	}
	svc, _, err := app.Open(app.Options{DataFile: c.dataFile})
	if err != nil {
		return err
	}
	c.svc = svc
	return nil
}

func (c *cli) short() bool {
	return c.format == "short"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// optionalFlag returns the flag's value only when the user set it.
func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
