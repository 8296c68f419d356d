package utils

import (
	"slices"
	"strings"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
)

// Field names used in EmptyTextError messages
const (
	FieldDescription   = "Description"
	FieldCommitMessage = "Commit message"
)

// ExtractDigits keeps the ASCII decimal digits of s, in order
func ExtractDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidateTicketID reduces raw user input to its digits.
// Input without any digit is rejected.
func ValidateTicketID(conv config.Convention, raw string) (string, error) {
	id := ExtractDigits(raw)
	if id == "" {
		return "", wcerrors.NewTicketIDInvalidError(conv.TicketPrefix(), raw)
	}
	return id, nil
}

// NormalizeType trims and lowercases a type label
func NormalizeType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ValidateBranchType normalizes value and checks it against the allowed branch types
func ValidateBranchType(conv config.Convention, value string) (string, error) {
	return validateType("Branch", value, conv.BranchTypes())
}

// ValidateCommitType normalizes value and checks it against the allowed commit types
func ValidateCommitType(conv config.Convention, value string) (string, error) {
	return validateType("Commit", value, conv.CommitTypes())
}

func validateType(kind, value string, allowed []string) (string, error) {
	normalized := NormalizeType(value)
	if !slices.Contains(allowed, normalized) {
		return "", wcerrors.NewTypeNotAllowedError(kind, normalized, allowed)
	}
	return normalized, nil
}

// NormalizeText trims and lowercases free text
func NormalizeText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ValidateText normalizes value and rejects it when nothing is left.
// field names the value in the error, e.g. FieldDescription.
func ValidateText(field, value string) (string, error) {
	normalized := NormalizeText(value)
	if normalized == "" {
		return "", wcerrors.NewEmptyTextError(field)
	}
	return normalized, nil
}
