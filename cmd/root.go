package cmd

import (
	"github.com/spf13/cobra"

	"srcinit/internal/logger"
)

// verbose indicates whether verbose logging should be enabled.
// It can be toggled via the global `--verbose` / `-v` command-line flag.
var verbose bool

// rootCmd is the base command for the CLI tool `srcinit`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:     "srcinit",                          // The name of the CLI tool
	Short:   "Simplified source code generator", // Short description shown in help output
	Version: "1.1.0",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the verbose flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},
}

// Execute registers global flags and starts command execution.
// It's the entry point for the CLI when invoked by the user.
// Subcommands register themselves with rootCmd in their files' init functions.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Toggle verbose information")

	// Execute runs the appropriate subcommand or displays help if none is provided.
	// Errors are ignored here with `_ =` since Cobra handles them internally by default.
	_ = rootCmd.Execute()
}
