package platform

// Package platform contains OS integration glue: filesystem helpers, image
// file recognition, the append-only process log and OS open/reveal.
