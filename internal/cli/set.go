// ABOUTME: Set command for applying a font selection
// ABOUTME: Resolves three aliases, renders the rule file and writes it
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/fontsel/internal/alias"
	"github.com/harper/fontsel/internal/config"
	"github.com/harper/fontsel/internal/fontconf"
	"github.com/harper/fontsel/internal/logging"
)

var (
	setSystem    bool
	setStrict    bool
	setNoHistory bool
)

// outputDir is swapped in tests to keep them out of /etc.
var outputDir = config.OutputDir

var setCmd = &cobra.Command{
	Use:   "set <sans-alias> <serif-alias> <monospace-alias>",
	Short: "Apply a font selection",
	Long: `Resolve the three aliases and write the fontconfig rule file.

The file is written to $XDG_CONFIG_HOME/fontconfig/conf.d (or
~/.config/fontconfig/conf.d), or to /etc/fonts/conf.d with --sys.

A failure to write the file is reported but does not fail the command
unless --strict is given.`,
	Args: exactAliases,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		aliasDir, err := resolveAliasDir(settings)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sel, err := alias.Resolve(aliasDir, args[0], args[1], args[2], func(c alias.Category, name string) {
			fmt.Fprintf(out, "%10s font: %s\n", c, name)
		})
		if err != nil {
			return describeLookupError(err)
		}

		// an explicit flag, including --sys=false, overrides the settings file
		system := settings.System
		if cmd.Flags().Changed("sys") {
			system = setSystem
		}
		strict := settings.Strict
		if cmd.Flags().Changed("strict") {
			strict = setStrict
		}

		document := fontconf.GenerateXML(sel.Sans, sel.Serif, sel.Monospace)
		path, err := fontconf.WriteConfig(outputDir(system), document)
		if err != nil {
			if strict {
				return fmt.Errorf("error while writing font configuration: %w", err)
			}
			warnf(cmd, "error while writing font configuration: %v", err)
		} else if historyDir := config.HistoryDir(); historyDir != "" && settings.History && !setNoHistory {
			entry := logging.NewEntry(sel, path, system)
			if err := logging.WriteHistory(historyDir, settings.HistoryFormat, entry); err != nil {
				warnf(cmd, "failed to record history: %v", err)
			}
		}

		_, _ = color.New(color.FgGreen).Fprintln(out, "successfully set fonts.")
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&setSystem, "sys", false, "Write the system-wide rule file in /etc/fonts/conf.d")
	setCmd.Flags().BoolVar(&setStrict, "strict", false, "Fail when the rule file cannot be written")
	setCmd.Flags().BoolVar(&setNoHistory, "no-history", false, "Do not record this selection in the history log")
	rootCmd.AddCommand(setCmd)
}
