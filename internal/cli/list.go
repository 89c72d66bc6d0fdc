// ABOUTME: List command for displaying known aliases
// ABOUTME: Supports category selection, glob filtering and JSON output
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/fontsel/internal/alias"
)

var (
	listMatch      string
	listJSONOutput bool
)

type listedAlias struct {
	Category alias.Category `json:"category"`
	Alias    string         `json:"alias"`
	Family   string         `json:"family"`
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List available aliases",
	Long:  `List the aliases available for each category (sans, serif, monospace) and the font family each one selects.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		aliasDir, err := resolveAliasDir(settings)
		if err != nil {
			return err
		}

		categories := alias.Categories
		if len(args) > 0 {
			c, err := alias.ParseCategory(args[0])
			if err != nil {
				return err
			}
			categories = []alias.Category{c}
		}

		var listed []listedAlias
		for _, c := range categories {
			names, err := alias.List(aliasDir, c, listMatch)
			if err != nil {
				return err
			}
			for _, name := range names {
				family, err := alias.ReadFontName(aliasDir, c, name)
				if err != nil {
					warnf(cmd, "%v", describeLookupError(err))
					continue
				}
				listed = append(listed, listedAlias{Category: c, Alias: name, Family: family})
			}
		}

		out := cmd.OutOrStdout()
		if listJSONOutput {
			data, err := json.MarshalIndent(listed, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, "Category\tAlias\t\tFamily")
		fmt.Fprintln(out, "--------\t-----\t\t------")
		for _, l := range listed {
			fmt.Fprintf(out, "%s\t%s\t\t%s\n", l.Category, l.Alias, l.Family)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "Only show aliases matching a glob pattern")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
