// Package overlay implements the text-decoration engine: visual
// annotations anchored to byte ranges of a buffer, collected in a
// priority-ordered store and served to a renderer by position or range.
//
// An Overlay is plain data: a half-open byte range, an appearance
// (Face), a z-order priority, and optional id and tooltip message. The
// Store keeps overlays sorted ascending by priority so queries return
// them in paint order (low first, higher drawing over).
//
// # Ownership
//
// The Store owns its overlays and never removes one on its own
// initiative. Producers (diagnostics, selection, search) insert
// overlays and must retract them with RemoveByID, RemoveInRange, or
// Clear as the condition they represent disappears or its range is
// invalidated by an edit; the Store holds no reference to the buffer
// and does not adjust ranges when it changes.
//
// # Concurrency
//
// The Store is single-threaded by design: one logical owner per
// buffer, mutation and rendering on the same loop. Hosts sharing a
// Store across goroutines must serialize access externally.
package overlay
