// Package internal defines constants shared across the module's
// executables.
package internal

// Version is the current version of the merkle-go library and tools.
const Version = "0.1.0"
