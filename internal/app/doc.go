// Package app is the composition root for bookfinder.
//
// Run performs these steps in order:
//
//  1. Load config from ~/.config/bookfinder/config.toml (defaults when missing)
//  2. Apply flag overrides (log level, metrics address)
//  3. Open the JSON log file through zap
//  4. Load preferences for the theme
//  5. Build the Open Library client, Session, QueryStore, and Workflow
//  6. Start the optional metrics listener and the TUI under one errgroup
//
// Startup failures (bad config, unwritable log, invalid search URL) are
// returned before the terminal is taken over. Once the UI runs, search
// failures are shown in the UI and never end the program. Quitting the UI
// stops the metrics listener; a metrics listener failure quits the UI.
package app
