// Package app wires the command line run: it builds the logger, loads the
// tree and the build profile, runs every selected build over the shared
// graph and writes the results.
package app
