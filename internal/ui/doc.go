// Package ui provides the terminal user interface for bookfinder.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the state.Session through a
// search.Workflow and re-reads a Snapshot after every mutation. Searches run
// as tea.Cmds: Enter calls Workflow.Begin on the update loop, the network
// call runs in a command, and the searchResultMsg it returns is applied back
// on the update loop. Nothing drops a stale result, so when searches overlap
// the one that finishes last is shown.
//
// # Layout
//
//   - Header: title and the search status (spinner, result count, or error)
//   - Input: the query text box
//   - Results: one row per book with title, authors, and cover link
//   - Footer: key hints for the focused pane
//
// Overlays (detail, help, log) are drawn centered over the main view. Only
// one is open at a time.
//
// # Key Bindings
//
//   - Tab: Toggle focus between input and results
//   - Enter: Search (input) or open details (results)
//   - j/k, g/G: Move the results cursor
//   - /: Return to the input
//   - Esc: Close the overlay (closing details clears the selection)
//   - ctrl+t: Cycle theme (saved to prefs)
//   - ctrl+l: Show the log file tail
//   - F1: Help
//   - ctrl+c: Quit
//
// # Startup Replay
//
// New loads the remembered query into the input. Init then submits it
// without remembering it again.
package ui
