// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags, settings loading and default command routing
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harper/fontsel/internal/alias"
	"github.com/harper/fontsel/internal/config"
)

const (
	defaultCommand = "set"
	aliasDirEnv    = "FONTSEL_ALIAS_DIR"
)

var (
	aliasDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fontsel",
	Short: "Select CJK fonts for the generic font families",
	Long: `fontsel picks the fonts used for the serif, sans-serif and monospace generic
families by writing a fontconfig rule file.

Fonts are chosen by alias. Each alias is a file under the aliases directory
next to the fontsel binary (aliases/sans, aliases/serif, aliases/monospace)
whose content is the font family name.

An alias named like a subcommand (set, list, preview, history, help) must
be given through the explicit form: fontsel set <sans> <serif> <monospace>.

Examples:
  fontsel noto ipa takao
  fontsel --sys noto ipa takao
  fontsel set list ipa takao
  fontsel list sans`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	os.Args = append([]string{os.Args[0]}, withDefaultCommand(os.Args[1:])...)
	return rootCmd.Execute()
}

// withDefaultCommand injects "set" when the first non-flag argument is
// not a known subcommand, so `fontsel a b c` works. Without any
// positional argument "set" is injected too, so a missing alias is a
// usage error rather than the help screen; -h/--help is left alone.
func withDefaultCommand(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-h" || arg == "--help" {
			return args
		}
		if strings.HasPrefix(arg, "-") {
			if flagTakesValue(arg) {
				i++
			}
			continue
		}
		if isCommand(arg) {
			return args
		}
		break
	}
	return append([]string{defaultCommand}, args...)
}

// flagTakesValue reports whether arg is a root or set flag whose value
// is the next argument, as in "--aliases DIR".
func flagTakesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = rootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = setCmd.Flags().Lookup(name)
		}
	} else if len(arg) == 2 {
		f = rootCmd.PersistentFlags().ShorthandLookup(arg[1:])
		if f == nil {
			f = setCmd.Flags().ShorthandLookup(arg[1:])
		}
	}

	return f != nil && f.NoOptDefVal == ""
}

func isCommand(name string) bool {
	if name == "help" {
		return true
	}
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return false
}

func loadSettings() (*config.Settings, error) {
	path := config.SettingsPath()
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings %s: %w", path, err)
	}
	return settings, nil
}

// resolveAliasDir picks the aliases directory: flag, then environment,
// then settings, then the directory next to the executable.
func resolveAliasDir(settings *config.Settings) (string, error) {
	if aliasDirFlag != "" {
		return aliasDirFlag, nil
	}
	if dir := os.Getenv(aliasDirEnv); dir != "" {
		return dir, nil
	}
	if settings.AliasDir != "" {
		return settings.AliasDir, nil
	}
	return config.AliasDir()
}

// describeLookupError names the failing category and its underlying cause.
func describeLookupError(err error) error {
	var lerr *alias.LookupError
	if !errors.As(err, &lerr) {
		return err
	}
	return fmt.Errorf("failed reading %s font: %w (caused by: %v)", lerr.Category, lerr, lerr.Err)
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	_, _ = color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "Warning: "+format+"\n", args...)
}

func exactAliases(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("the number of arguments is incorrect: expected 3 but %d supplied", len(args))
	}
	return nil
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&aliasDirFlag, "aliases", "", "Aliases directory (default: aliases/ next to the binary)")
}
