package knowledge

import "strings"

// minTokenLen excludes short stopword-like tokens from relevance matching.
const minTokenLen = 3

// IsRelevant reports whether an attraction name is relevant to the query.
// The query is split on whitespace and lowercased; a record matches when any
// token longer than three characters is a substring of the name, or the
// whole name is a substring of the query. An empty name never matches.
func IsRelevant(query, attractionName string) bool {
	if attractionName == "" {
		return false
	}

	name := strings.ToLower(attractionName)
	lowered := strings.ToLower(query)

	for _, token := range strings.Fields(lowered) {
		if len(token) <= minTokenLen {
			continue
		}
		if strings.Contains(name, token) {
			return true
		}
	}

	return strings.Contains(lowered, name)
}
