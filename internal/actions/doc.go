// Package actions provides the branch and commit helpers' business logic.
//
// Each action walks a fixed sequence: collect a value, validate it, move on.
// The first failed validation ends the run before any git command executes.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Git, Prompter, Splog and the convention
//   - Prepare* functions are side-effect free apart from prompting
//   - The composed command runs only after the user confirms
package actions
