package cmd

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an event interactively",
	Long: `Add an event to the diary.

You are asked for a title, date, time, an optional location and an optional
repeat interval in days, then shown the event for confirmation. Enter the
quit word (default "q") at any prompt to stop without saving.`,
	Example: `  diary add`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newEngine(cmd).Add()
		return err
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
