// ABOUTME: History command for showing applied selections
// ABOUTME: Supports date filtering, limits and JSON output
package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/harper/fontsel/internal/config"
	"github.com/harper/fontsel/internal/logging"
)

var (
	historySince      string
	historyLimit      int
	historyJSONOutput bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously applied selections",
	Long: `Show selections recorded by set, newest first.

Only selections recorded with history_format = "json" (the default) are shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var since time.Time
		if historySince != "" {
			parsed, err := dateparse.ParseAny(historySince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			since = parsed
		}

		var entries []logging.Entry
		if historyDir := config.HistoryDir(); historyDir != "" {
			var err error
			entries, err = logging.ReadHistory(historyDir, since, historyLimit, func(path string, line int, err error) {
				warnf(cmd, "skipping unreadable history entry %s:%d: %v", path, line, err)
			})
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		if historyJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, "Timestamp\t\tSans\tSerif\tMonospace\tOutput")
		fmt.Fprintln(out, "---------\t\t----\t-----\t---------\t------")
		for _, e := range entries {
			timestamp := e.Timestamp.Local().Format("2006-01-02 15:04:05")
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", timestamp, e.SansAlias, e.SerifAlias, e.MonospaceAlias, e.OutputPath)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historySince, "since", "", "Start date (natural language or ISO)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&historyJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}
