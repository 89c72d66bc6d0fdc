// ABOUTME: Preview command for rendering a selection without writing it
// ABOUTME: Prints the fontconfig rule file to stdout
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/fontsel/internal/alias"
	"github.com/harper/fontsel/internal/fontconf"
)

var previewCmd = &cobra.Command{
	Use:   "preview <sans-alias> <serif-alias> <monospace-alias>",
	Short: "Print the rule file a selection would produce",
	Args:  exactAliases,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		aliasDir, err := resolveAliasDir(settings)
		if err != nil {
			return err
		}

		sel, err := alias.Resolve(aliasDir, args[0], args[1], args[2], nil)
		if err != nil {
			return describeLookupError(err)
		}

		fmt.Fprint(cmd.OutOrStdout(), fontconf.GenerateXML(sel.Sans, sel.Serif, sel.Monospace))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
