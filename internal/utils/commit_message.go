package utils

import "webchan.dev/wcgit/internal/config"

// CommitMessage composes "<type>(<PREFIX>-<id>): <message>"
func CommitMessage(conv config.Convention, commitType, ticketID, message string) string {
	return commitType + "(" + conv.TicketKey(ticketID) + "): " + message
}
