package main

import (
	"srcinit/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// srcinit is a simplified source code generator that:
//   - Keeps a registry of named template sources (the reserved local source plus
//     remote URLs) in an INI file under the platform config directory
//   - Syncs template bundles from remote sources into the platform data directory,
//     parking the previous bundle so a bad sync can be rolled back
//   - Generates project skeletons by unpacking a template from the local store
//     or a synced bundle into an output directory
//   - Imports, exports, and removes templates in the local store, accepting
//     zip, tar.gz, tar.bz2, tar.xz, and 7z archives
//
// Error handling strategy:
//   - Validation problems (malformed URLs, duplicate or missing names) are
//     detected and reported before anything is mutated, so a failed command
//     leaves the registry file untouched
//   - Destructive operations (reset, sync rollback) ask for confirmation unless
//     forced, and process each target independently so one failure does not
//     block the rest
func main() {
	cmd.Execute()
}
