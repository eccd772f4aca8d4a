package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <days>",
	Short: "Delete the events in a window of days",
	Long: `Delete the stored events that fall in the same window "diary <days>" shows.

Repeat occurrences are not candidates: a repeating event is only deleted
through its stored entry. For each repeating event being deleted you are asked
whether it should keep repeating after the window. The whole deletion needs a
final confirmation, and the previous diary is kept as a .bak file.`,
	Example: `  diary delete 0
  diary delete -1
  diary delete 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDays(args[0])
		if err != nil {
			return err
		}
		_, err = newEngine(cmd).Delete(days)
		return err
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
