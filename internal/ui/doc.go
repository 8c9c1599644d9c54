// Package ui contains the Bubble Tea program that drives the review
// overlay. The Model focuses on message orchestration; dedicated helpers
// own key routing, the search form, rendering, and backend sync.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function.
//   - Key presses walk a fixed priority chain (navigation.go): the search
//     form when open, then grid selection, then the slot cursor, then
//     review navigation, then the global time controls. A key is consumed
//     by the first layer that claims it.
//   - Every utterance goes through the speech.Transcript sink; Update
//     flushes it once per frame, which is when queued lines become audible.
//
// State ownership:
//   - The review cursor lives in internal/review/nav.State; the slot cursor
//     in internal/slot.Cursor; grid selection in internal/review/grid.Model.
//   - Host data flows backend.Watcher → dispatcher → internal/state stores.
//     reviewContext() rebuilds a read-only host.Handle from the stores
//     before every navigation operation.
//   - Activations return opaque host.Command tokens; internal/ui/command
//     executes them asynchronously and reports ActionResult messages back.
package ui
