package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"srcinit/internal/logger"
	"srcinit/internal/templates"
)

// importCmd brings a template into the local store from an archive file or a
// plain directory. The template takes the base name of the imported file.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import local template from file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, err := templates.DefaultStore().Import(args[0])
		if err != nil {
			logger.Error("Failed to import template: %q (%v)\n", args[0], err)
			return
		}
		fmt.Printf("Imported template: %q\n", name)
	},
}

// exportCmd packs a local-store template into <output>/<template>.zip.
var exportCmd = &cobra.Command{
	Use:   "export <template> <output>",
	Short: "Export template from local source to file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		template, output := args[0], args[1]
		dest, err := templates.DefaultStore().Export(template, output)
		if err != nil {
			logger.Error("Failed to export template: %q (%v)\n", template, err)
			return
		}
		fmt.Printf("Exported template: %q -> %q\n", template, dest)
	},
}

// removeCmd deletes a template from the local store. Templates inside synced
// bundles are not touched; they come back on the next sync anyway.
var removeCmd = &cobra.Command{
	Use:   "remove <template>",
	Short: "Remove existing template from local source",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		template := args[0]
		if err := templates.DefaultStore().Remove(template); err != nil {
			logger.Error("Failed to remove template: %q (%v)\n", template, err)
			return
		}
		fmt.Printf("Removed template: %q\n", template)
	},
}

// init registers the local template store commands with the root command.
func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(removeCmd)
}
