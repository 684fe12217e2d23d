// Package application provides the executable-facing layer around the
// core tree packages: TOML configuration, structured logging, and the
// serialized form of proofs. The core packages stay free of I/O and
// logging; everything operational lives here.
package application
