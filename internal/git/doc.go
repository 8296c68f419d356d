// Package git provides the version-control operations used by the helpers.
//
// It covers:
//   - Repository detection in the working directory
//   - Reading the current branch name
//   - Composing and executing git commands as argument lists
//
// This package should be the only place where git commands are executed.
package git
