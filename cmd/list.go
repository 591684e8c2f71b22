package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"srcinit/internal/logger"
	"srcinit/internal/sources"
	"srcinit/internal/templates"
)

// listLocalOnly limits the listing to templates in the local store.
var listLocalOnly bool

// listCmd prints every template srcinit can generate from: entries of the
// local store first, then the contents of each source's synced bundle.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates from sources",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runList(sources.DefaultStore(), templates.DefaultStore(), templates.DefaultSyncer(), listLocalOnly)
	},
}

// runList prints one line per template, tagged with the source it comes
// from. Local store entries show their template.yaml description when the
// template carries one.
func runList(store sources.Store, tstore templates.Store, sy templates.Syncer, localOnly bool) {
	count := 0

	names, err := tstore.List()
	if err != nil {
		logger.Error("An error occurred while listing local templates: %v\n", err)
		return
	}
	for _, name := range names {
		if m, ok := templates.ReadManifest(tstore.Path(name)); ok && m.Description != "" {
			fmt.Printf("%s (local): %s\n", name, m.Description)
		} else {
			fmt.Printf("%s (local)\n", name)
		}
		count++
	}

	if !localOnly {
		reg, err := store.LoadOrFresh()
		if err != nil {
			logger.Error("An error occurred while loading sources: %v\n", err)
			return
		}
		for _, src := range reg.Names() {
			if src == sources.LocalName {
				continue
			}
			if !sy.HasBundle(src) {
				logger.Debug("source %q has no synced bundle\n", src)
				continue
			}
			bundleNames, err := templates.BundleTemplates(sy.BundlePath(src))
			if err != nil {
				logger.Error("Failed to read bundle of %q: %v\n", src, err)
				continue
			}
			for _, name := range bundleNames {
				fmt.Printf("%s (%s)\n", name, src)
				count++
			}
		}
	}

	if count == 0 {
		fmt.Println("No entries to list, a proper sync might be required")
	}
}

// init registers the list command and its flags with the root command.
func init() {
	listCmd.Flags().BoolVarP(&listLocalOnly, "local", "l", false, "Only include templates from local source")
	rootCmd.AddCommand(listCmd)
}
