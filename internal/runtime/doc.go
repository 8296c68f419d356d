// Package runtime provides the per-invocation context shared by the actions.
//
// A Context bundles:
//   - The naming convention
//   - The git runner bound to the working directory
//   - The prompter for user input
//   - The Splog for console and file output
package runtime
