// Package cli parses command line arguments and TREEOPT_* environment
// variables into an app.Config and maps failures to process exit codes.
package cli
