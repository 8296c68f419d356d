// Package cli wires the branch and commit helpers to cobra commands
// and maps their outcome to process exit codes.
package cli
