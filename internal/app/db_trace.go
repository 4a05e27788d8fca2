package app

import (
	"regexp"
	"strings"
)

// Queries land on spans via otelsql's WithQueryFormatter hook. A bulk
// lineup-slot insert repeats its VALUES tuple per assignment, so the
// statement is collapsed and capped before it is recorded.
const tracedQueryLimit = 512

var whitespaceRun = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flattened := whitespaceRun.ReplaceAllString(query, " ")
	if len(flattened) <= tracedQueryLimit {
		return flattened
	}

	return flattened[:tracedQueryLimit] + "..."
}
