package model

// Package model defines domain data structures used across the app: input
// image references, removal tasks, batches and progress counters. Structures
// are plain values meant for direct display in the UI.
