package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL applies the DB_DISABLE_PREPARED_BINARY_RESULT toggle to
// the DB_URL connection string. Some pgbouncer deployments choke on
// binary result sets from prepared statements; lib/pq turns them off
// when the URL carries disable_prepared_binary_result=yes. An explicit
// value already present in the URL wins over the toggle.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// dbNameFromURL extracts the database name for the db.name span
// attribute. DB_URL is accepted in both postgres://host/name URL form
// and key=value DSN form, so both spellings are handled; unparseable
// input yields "".
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		value, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}
