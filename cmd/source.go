package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"srcinit/internal/logger"
	"srcinit/internal/sources"
)

// sourceAddCmd registers a new remote source in the registry.
// The URL is validated and the name checked for uniqueness before the
// registry file is touched, so a failed add never mutates it.
var sourceAddCmd = &cobra.Command{
	Use:   "source-add <source> <url>",
	Short: "Add a new source",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		source, url := args[0], args[1]
		if err := sources.DefaultStore().Add(source, url); err != nil {
			logger.Error("Failed to add new source: %q (%v)\n", source, err)
			return
		}
		fmt.Printf("Added new source: %q = %q\n", source, url)
	},
}

// sourceEditCmd overwrites the URL of an existing source in place.
var sourceEditCmd = &cobra.Command{
	Use:   "source-edit <source> <new_url>",
	Short: "Edit an existing source",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		source, newURL := args[0], args[1]
		if err := sources.DefaultStore().Edit(source, newURL); err != nil {
			logger.Error("Failed to edit existing source: %q (%v)\n", source, err)
			return
		}
		fmt.Printf("Changed existing source: %q = %q\n", source, newURL)
	},
}

// sourceRemoveCmd deletes a source from the registry. The reserved local
// entry is refused. The synced bundle of a removed source is left on disk;
// reset wipes it along with everything else.
var sourceRemoveCmd = &cobra.Command{
	Use:   "source-remove <source>",
	Short: "Remove an existing source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := args[0]
		if err := sources.DefaultStore().Remove(source); err != nil {
			logger.Error("Failed to remove existing source: %q (%v)\n", source, err)
			return
		}
		fmt.Printf("Removed existing source: %q\n", source)
	},
}

// init registers the source management commands with the root command.
func init() {
	rootCmd.AddCommand(sourceAddCmd)
	rootCmd.AddCommand(sourceEditCmd)
	rootCmd.AddCommand(sourceRemoveCmd)
}
