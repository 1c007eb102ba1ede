package parser

import "strings"

// prosettings.net lists some people under a team even though they no longer
// compete; the team cell then carries one of these labels.
var inactiveMarkers = []string{"free agent", "retired", "content creator"}

// IsInactive reports whether a team/status cell marks the player as not competing
func IsInactive(status string) bool {
	status = strings.ToLower(status)
	for _, marker := range inactiveMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}
