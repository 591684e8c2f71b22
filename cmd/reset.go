package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"srcinit/internal/appdir"
	"srcinit/internal/logger"
)

// confirm asks the invoking user a yes/no question before a destructive
// operation runs. It is a package variable so tests can substitute a
// deterministic answer instead of blocking on a real terminal.
var confirm = func(title string) (bool, error) {
	var ok bool
	if err := huh.NewConfirm().Title(title).Value(&ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// resetForce skips the interactive confirmation when set via --force / -f.
var resetForce bool

// resetCmd wipes everything srcinit keeps on disk: the source registry in
// the config directory and the synced bundles plus local store in the data
// directory.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all sources & delete everything",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReset(resetForce, []string{appdir.ConfigDir(), appdir.DataDir()})
	},
}

// runReset performs the reset against the given target directories.
// If force isn't set we must confirm the user really wants to wipe
// everything; declining aborts with no side effects. Each directory is then
// processed independently: an absent one is reported as already wiped and a
// deletion failure does not block the remaining targets.
func runReset(force bool, dirs []string) {
	if !force {
		confirmed, err := confirm("Perform a reset operation?")
		if err != nil {
			logger.Error("Failed to read confirmation: %v\n", err)
			return
		}
		if !confirmed {
			// abort operation if user said no
			return
		}
	}

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			fmt.Printf("Skipped: %q (already wiped)\n", dir)
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			logger.Error("Wipe failed: %q (%v)\n", dir, err)
			continue
		}
		fmt.Printf("Wiped: %q\n", dir)
	}
}

// init registers the reset command and its flags with the root command.
func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Forcefully perform operation")
	rootCmd.AddCommand(resetCmd)
}
