// Package assets bundles the starting grid that ships with the binaries.
package assets

import _ "embed"

// SampleName labels the embedded grid in error messages.
const SampleName = "assets/sample.grid"

// Sample is a Gosper glider gun with a blinker and a block, in the 0/1 grid
// format understood by life.Decode.
//
//go:embed sample.grid
var Sample string
