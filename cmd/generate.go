package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"srcinit/internal/logger"
	"srcinit/internal/sources"
	"srcinit/internal/templates"
)

// generateOutput is the output directory for generated code, defaulting to
// the current working directory.
var generateOutput string

// generateCmd materializes a template into the output directory. The local
// store takes precedence; synced bundles are searched in registry order.
var generateCmd = &cobra.Command{
	Use:   "generate <template>",
	Short: "Generate source code using a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(sources.DefaultStore(), templates.DefaultStore(), templates.DefaultSyncer(), args[0], generateOutput)
	},
}

// runGenerate unpacks the named template into output and reports the elapsed
// time, or a not-found error if no source provides the template.
func runGenerate(store sources.Store, tstore templates.Store, sy templates.Syncer, template, output string) {
	started := time.Now()

	if output == "" {
		cwd, err := os.Getwd()
		if err != nil {
			logger.Error("Failed to resolve working directory: %v\n", err)
			return
		}
		output = cwd
	}

	if tstore.Has(template) {
		if err := tstore.CopyTo(template, output); err != nil {
			logger.Error("An error occurred while generating from %q: %v\n", template, err)
			return
		}
		fmt.Printf("Finished in %.2f seconds\n", time.Since(started).Seconds())
		return
	}

	reg, err := store.LoadOrFresh()
	if err != nil {
		logger.Error("An error occurred while loading sources: %v\n", err)
		return
	}
	for _, src := range reg.Names() {
		if src == sources.LocalName || !sy.HasBundle(src) {
			continue
		}
		found, err := templates.ExtractBundleTemplate(sy.BundlePath(src), template, output)
		if err != nil {
			logger.Error("An error occurred while generating from %q: %v\n", template, err)
			return
		}
		if found {
			fmt.Printf("Finished in %.2f seconds\n", time.Since(started).Seconds())
			return
		}
	}

	logger.Error("%q not found\n", template)
}

// init registers the generate command and its flags with the root command.
func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Specify output directory")
	rootCmd.AddCommand(generateCmd)
}
