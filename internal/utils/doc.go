// Package utils provides the validators and formatters behind the naming convention.
//
// These are pure functions used by both helpers:
//   - Ticket id extraction from user input and branch names
//   - Branch and commit type validation
//   - Description and commit message normalization
//   - Branch name and commit message composition
package utils
