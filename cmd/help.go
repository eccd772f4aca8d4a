package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/chris-regnier/diary/internal/config"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed usage.md
var usageText string

// usageHelp prints the long-form usage for the root command, rendered as
// markdown on a terminal. Subcommands keep cobra's generated help.
func usageHelp(defaultHelp func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		out := cmd.OutOrStdout()
		if plainOutput || out != os.Stdout || !isTerminal(os.Stdout) {
			fmt.Fprint(out, usageText)
			return
		}
		themeCfg := config.ThemeConfig{}
		if appConfig != nil {
			themeCfg = appConfig.Theme
		}
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width > 100 {
			width = 100
		}
		fmt.Fprintln(out, ui.RenderMarkdown(usageText, width, ui.ResolveTheme(themeCfg).MarkdownStyle))
	}
}

func init() {
	rootCmd.SetHelpFunc(usageHelp(rootCmd.HelpFunc()))
}
