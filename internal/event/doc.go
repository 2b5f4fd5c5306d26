// Package event provides a synchronous publish/subscribe bus for editor
// state changes.
//
// Producers publish typed payloads under a Topic; handlers subscribed to
// that topic run in registration order on the publishing goroutine. The
// bus carries no queue and no workers: delivery has completed when
// Publish returns, which lets subscribers that maintain derived state
// (decorations, search results) observe every edit before the next one
// is applied.
package event
