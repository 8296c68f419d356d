package utils

import (
	"strings"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
)

// FormatDescription normalizes a branch description: trimmed, lowercased,
// with every space replaced by a hyphen. Already formatted input is returned unchanged.
func FormatDescription(description string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(description)), " ", "-")
}

// BranchName composes "<type>/<PREFIX>-<id>-<description>"
func BranchName(conv config.Convention, ticketID, branchType, description string) string {
	return branchType + "/" + conv.TicketKey(ticketID) + "-" + FormatDescription(description)
}

// TicketIDFromBranch extracts the ticket id embedded in a branch name.
// The marker (e.g. "/webchan-") is matched case-insensitively; the segment after it
// runs up to the next "/" and its digits form the id.
func TicketIDFromBranch(conv config.Convention, branch string) (string, error) {
	lower := strings.ToLower(branch)
	marker := conv.TicketMarker()

	idx := strings.Index(lower, marker)
	if idx < 0 {
		return "", wcerrors.NewTicketIDMissingError(conv.TicketPrefix(), branch)
	}

	segment := lower[idx+len(marker):]
	if slash := strings.Index(segment, "/"); slash >= 0 {
		segment = segment[:slash]
	}

	id := ExtractDigits(segment)
	if id == "" {
		return "", wcerrors.NewTicketIDMissingError(conv.TicketPrefix(), branch)
	}
	return id, nil
}
