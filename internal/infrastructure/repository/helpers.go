package repository

import "strings"

// containsAny reports whether s contains at least one of the substrings.
// Used to pick the offending column out of driver-specific duplicate key
// messages (MySQL names the index, SQLite names the column).
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
