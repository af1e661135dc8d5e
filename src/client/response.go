package client

import (
	"github.com/jackwink/weather/src/format"
)

// CheckResponse inspects the "response" envelope of a report. The API
// answers with HTTP 200 both for lookup failures (response.error) and for
// ambiguous locations (response.results); those come back as LookupError and
// AmbiguousLocationError so callers can show them before printing anything.
func CheckResponse(data format.Record) error {
	envelope, err := format.LookupRecord(data, "response")
	if err != nil {
		return err
	}

	if apiErr, ok := envelope["error"].(map[string]any); ok {
		return &LookupError{
			Type:        format.String(apiErr["type"]),
			Description: format.String(apiErr["description"]),
		}
	}

	if results, ok := envelope["results"].([]any); ok {
		matches := make([]Match, 0, len(results))
		for _, r := range results {
			m, ok := r.(map[string]any)
			if !ok {
				continue
			}
			matches = append(matches, Match{
				Name:    format.String(m["name"]),
				State:   format.String(m["state"]),
				Country: format.String(m["country_name"]),
			})
		}
		return &AmbiguousLocationError{Matches: matches}
	}
	return nil
}
