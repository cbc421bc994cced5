// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the four screens of the movie browser:
//  1. [HomeView] : Featured hero movie plus per-genre samples
//  2. [GenreView] : Paginated movie list for one genre
//  3. [SearchView] : Text search with year and genre filters
//  4. [DetailsView] : Full record with credits and the best trailer
//
// Each view is a page controller owning one in-flight request at a time with
// the lifecycle idle → loading → success|error. Requests carry a per-view
// sequence number captured at issue time; a response whose sequence is no
// longer current is discarded, so rapid navigation cannot surface stale
// data. Failures render a static message with a manual retry binding — there
// is no automatic retry.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
