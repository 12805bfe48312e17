package removal

// Package removal implements the batch pipeline: size validation of selected
// inputs, the per-file background removal worker and the bounded parallel
// dispatcher that reports completion counts back to the UI.
