package cmd

import (
	"github.com/chris-regnier/diary/internal/snapshot"
	"github.com/spf13/cobra"
)

var saveFormat string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Export the diary to a new file",
	Long: `Export every stored event to a file in the data directory.

The file is named after save_file; if it already exists a number is appended
(saved_diary1, saved_diary2, ...). An existing file is never overwritten.`,
	Example: `  diary save
  diary save --format ics
  diary save --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := snapshot.ParseFormat(saveFormat)
		if err != nil {
			return err
		}
		_, err = newEngine(cmd).Save(format, appConfig.SavePath())
		return err
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveFormat, "format", "text", "export format (text|ics|yaml)")
	rootCmd.AddCommand(saveCmd)
}
