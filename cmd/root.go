package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apperrors "github.com/trunkit/trunkit/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "trunkit",
	Short: "A CLI tool for trunk based git workflows",
	Long: `trunkit automates a trunk based branching workflow: short-lived branches
forked from a trunk branch, kept in sync by rebase, merged back when done and
released as annotated version tags. Configuration lives in the repository's
own git config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("repo-path", ".", "Path to the repository to operate on")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("debug", false, "Development logging and full error output")

	viper.SetEnvPrefix("TRUNKIT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cobra.CheckErr(viper.BindPFlag("repo-path", flags.Lookup("repo-path")))
	cobra.CheckErr(viper.BindPFlag("log-level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("debug", flags.Lookup("debug")))
}

// Execute runs the root command and returns the process exit code.
// Recoverable conditions (configuration problems, violated workflow
// preconditions) print a single line and exit zero; with --debug they
// propagate like fatal errors, with the full chain.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if apperrors.Recoverable(err) && !viper.GetBool("debug") {
		fmt.Fprintln(os.Stderr, err)
		return 0
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
