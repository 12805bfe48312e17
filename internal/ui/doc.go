package ui

// Package ui contains the Fyne-based desktop user interface. It wires file
// selection to the removal service, reports batch progress, shows the result
// gallery with previews and opens the output folder. All UI strings are
// localized via Localization.
