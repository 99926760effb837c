// Package state holds the bookfinder application state.
//
// # Overview
//
// A Session is the single owned state object for one running front end. It
// holds the live query text, the bounded result set, the search Status, and
// the item selected for the detail overlay. The UI model owns one *Session
// and mutates it only through the methods here. The search workflow drives
// Begin, Succeed, and Fail.
//
// # Status
//
// Status is a closed set of phases: Idle, Loading, Succeeded, Failed. Values
// come only from the Idle, Loading, Succeeded, and Failed constructors, and
// only Failed carries a message. A Loading status never shows the message of
// the previous cycle.
//
//	Idle ──Begin──> Loading ──Succeed──> Succeeded
//	  │                │
//	  └──Fail──┐       └──Fail──> Failed(message)
//	           └────────────────> Failed(message)
//
// Validation failures go straight from any phase to Failed without passing
// through Loading.
//
// # Invariants
//
//   - len(Results) <= MaxResults (20); Succeed truncates, keeping source order.
//   - Selected is always a copy of a doc that was in Results when Select ran.
//   - Selected survives later searches; only Dismiss clears it.
//
// # Concurrency
//
// Session guards its fields with a sync.RWMutex. Snapshot returns copies of
// the result slice and selection, so a caller may keep reading a Snapshot
// while another goroutine applies a newer search result. When two searches
// are in flight, the one applied last wins. Nothing here drops stale results.
package state
