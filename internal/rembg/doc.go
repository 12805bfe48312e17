package rembg

// Package rembg adapts the external rembg background-removal engine. The
// engine is opaque: raw image bytes go in, PNG bytes with a transparent
// background come out. It is reached over the rembg HTTP server or by running
// the rembg CLI.
