// Package errors provides sentinel errors and custom error types for the webchan helpers.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryNotFound indicates that the working directory is not a git repository
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrTicketIDInvalid indicates that a ticket id contained no digits
	ErrTicketIDInvalid = errors.New("invalid ticket id")

	// ErrTicketIDMissing indicates that the branch name carries no ticket marker
	ErrTicketIDMissing = errors.New("ticket id missing")

	// ErrTypeNotAllowed indicates a branch or commit type outside the allowed set
	ErrTypeNotAllowed = errors.New("type not allowed")

	// ErrEmptyText indicates an empty description or commit message
	ErrEmptyText = errors.New("empty text")

	// ErrCanceled indicates that the user canceled at the confirmation step.
	// It is never reported as an error.
	ErrCanceled = errors.New("canceled")

	// ErrAborted indicates that the user interrupted a field prompt
	ErrAborted = errors.New("aborted")
)

// RepositoryNotFoundError is returned when no repository marker exists in Dir
type RepositoryNotFoundError struct {
	Dir string
}

func (e *RepositoryNotFoundError) Error() string {
	return "Not a valid Git repository."
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

// NewRepositoryNotFoundError creates a new RepositoryNotFoundError
func NewRepositoryNotFoundError(dir string) *RepositoryNotFoundError {
	return &RepositoryNotFoundError{Dir: dir}
}

// TicketIDInvalidError is returned when user input contains no digits
type TicketIDInvalidError struct {
	Prefix string
	Input  string
}

func (e *TicketIDInvalidError) Error() string {
	return fmt.Sprintf("Invalid %s ID. Only numbers are allowed.", e.Prefix)
}

// Is returns true if the target error is ErrTicketIDInvalid
func (e *TicketIDInvalidError) Is(target error) bool {
	return target == ErrTicketIDInvalid
}

// NewTicketIDInvalidError creates a new TicketIDInvalidError
func NewTicketIDInvalidError(prefix, input string) *TicketIDInvalidError {
	return &TicketIDInvalidError{Prefix: prefix, Input: input}
}

// TicketIDMissingError is returned when a branch name has no ticket marker,
// or the marker is not followed by any digits.
type TicketIDMissingError struct {
	Prefix string
	Branch string
}

func (e *TicketIDMissingError) Error() string {
	return fmt.Sprintf("No %s found in branch name. Switch to correct branch or create one.", e.Prefix)
}

// Is returns true if the target error is ErrTicketIDMissing
func (e *TicketIDMissingError) Is(target error) bool {
	return target == ErrTicketIDMissing
}

// NewTicketIDMissingError creates a new TicketIDMissingError
func NewTicketIDMissingError(prefix, branch string) *TicketIDMissingError {
	return &TicketIDMissingError{Prefix: prefix, Branch: branch}
}

// TypeNotAllowedError is returned when a branch or commit type is not in its allowed set.
// Kind is "Branch" or "Commit".
type TypeNotAllowedError struct {
	Kind    string
	Value   string
	Allowed []string
}

func (e *TypeNotAllowedError) Error() string {
	return fmt.Sprintf("%s type is not allowed.\nAllowed: %s", e.Kind, strings.Join(e.Allowed, ", "))
}

// Is returns true if the target error is ErrTypeNotAllowed
func (e *TypeNotAllowedError) Is(target error) bool {
	return target == ErrTypeNotAllowed
}

// NewTypeNotAllowedError creates a new TypeNotAllowedError.
// The allowed slice is copied.
func NewTypeNotAllowedError(kind, value string, allowed []string) *TypeNotAllowedError {
	return &TypeNotAllowedError{
		Kind:    kind,
		Value:   value,
		Allowed: append([]string(nil), allowed...),
	}
}

// EmptyTextError is returned when a description or commit message is empty
// after normalization. Field is the human name, e.g. "Description".
type EmptyTextError struct {
	Field string
}

func (e *EmptyTextError) Error() string {
	return fmt.Sprintf("%s cannot be empty.", e.Field)
}

// Is returns true if the target error is ErrEmptyText
func (e *EmptyTextError) Is(target error) bool {
	return target == ErrEmptyText
}

// NewEmptyTextError creates a new EmptyTextError
func NewEmptyTextError(field string) *EmptyTextError {
	return &EmptyTextError{Field: field}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stderr:  stderr,
		Err:     err,
	}
}

// IsValidation reports whether err is one of the validation failures that end a run
// before any command is executed.
func IsValidation(err error) bool {
	return errors.Is(err, ErrRepositoryNotFound) ||
		errors.Is(err, ErrTicketIDInvalid) ||
		errors.Is(err, ErrTicketIDMissing) ||
		errors.Is(err, ErrTypeNotAllowed) ||
		errors.Is(err, ErrEmptyText)
}
