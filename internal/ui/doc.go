// Package ui contains the Bubble Tea program that renders the record picker.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, input, rendering, and loader updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Each tea.Msg is routed through a typed handler registry so it is handled
//     by a focused function (key presses, mouse wheel, window size, loader
//     events).
//   - Navigation helpers (navigation.go) open and close the dropdown, move the
//     cursor and ask for the next batch when the cursor nears the end.
//     Filter helpers (input.go) keep text entry isolated from the event loop.
//
// State ownership:
//   - The dropdown's presentation state lives in internal/ui/state.Level,
//     which tracks filter text, cursor and viewport.
//   - Which rows exist at all is decided by internal/batch.Controller. The
//     model subscribes to it and renders the latest snapshot.
//
// Backend interactions:
//   - A backend.Loader fetches the record list once. Update waits on its
//     event channel and hands each result to applyLoaderEvent, which either
//     replaces the record set or records the failure so ctrl+r can retry.
package ui
