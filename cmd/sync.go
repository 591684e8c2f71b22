package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"srcinit/internal/appdir"
	"srcinit/internal/logger"
	"srcinit/internal/sources"
	"srcinit/internal/templates"
)

// syncRollback replaces the current bundles with the previous sync instead
// of downloading, when set via --rollback / -r.
var syncRollback bool

// syncCmd downloads the template bundle of every remote source into the
// data directory, keeping each source's previous bundle for rollback.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync other sources to latest changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSync(sources.DefaultStore(), templates.DefaultSyncer(), appdir.StatePath(), syncRollback)
	},
}

// runSync drives a sync (or rollback) across all remote sources. Sources are
// processed independently: one failed download is reported and the loop
// continues with the rest.
func runSync(store sources.Store, sy templates.Syncer, statePath string, rollback bool) {
	reg, err := store.LoadOrFresh()
	if err != nil {
		logger.Error("An error occurred while loading sources: %v\n", err)
		return
	}

	if rollback {
		// Ask one more time before the user can change their minds.
		confirmed, err := confirm("Do you really want to rollback to the previous sync?")
		if err != nil {
			logger.Error("Failed to read confirmation: %v\n", err)
			return
		}
		if !confirmed {
			fmt.Println("Rollback aborted.")
			return
		}
		for _, name := range reg.Names() {
			if name == sources.LocalName {
				continue
			}
			if err := sy.Rollback(name); err != nil {
				if errors.Is(err, templates.ErrNoPreviousSync) {
					fmt.Printf("Skipped: %q (no previous sync)\n", name)
				} else {
					logger.Error("Rollback failed: %q (%v)\n", name, err)
				}
				continue
			}
			fmt.Printf("Rolled back: %q\n", name)
		}
		return
	}

	st := templates.LoadState(statePath)
	for _, name := range reg.Names() {
		if name == sources.LocalName {
			continue
		}
		url := reg.URL(name)
		logger.Debug("syncing %q from %q\n", name, url)
		if err := sy.Sync(name, url); err != nil {
			logger.Error("An error occurred while synchronizing %q: %v\n", name, err)
			continue
		}
		st.Sources[name] = templates.SourceSync{URL: url, SyncedAt: time.Now()}
		fmt.Printf("Synced: %q\n", name)
	}
	templates.SaveState(statePath, st)
	fmt.Println("Finished syncing templates from remote to local")
}

// init registers the sync command and its flags with the root command.
func init() {
	syncCmd.Flags().BoolVarP(&syncRollback, "rollback", "r", false, "Replace with previous sync if available")
	rootCmd.AddCommand(syncCmd)
}
