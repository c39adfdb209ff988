// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI shows three panes side by side:
//  1. [GenrePane] : Browse the catalog genres
//  2. [SongPane] : Songs of the selected genre
//  3. [QueuePane] : The play queue, one row per queue entry
//
// The [Model] never reads the database itself. Key presses run controller operations as [tea.Cmd]s, and the
// controllers publish their results to a [Presenter]. The Presenter forwards each published value through a channel
// as a [Msg], so the model is only ever mutated inside Update.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, tab, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
