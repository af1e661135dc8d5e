package client

import (
	"fmt"
	"net/http"
	"strings"
)

// ConnectionError reports a request that never got a response.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// StatusError reports an HTTP error status from the API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	switch {
	case e.Unauthorized():
		return "authentication failed - check the api_key in your weatherrc"
	case e.Code == http.StatusNotFound:
		return "resource not found"
	case e.Message != "":
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Code)
}

// Unauthorized reports a 401 or 403 status.
func (e *StatusError) Unauthorized() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// NotFound reports a 404 status.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// LookupError is the API's own error payload, e.g. an unknown location or an
// invalid key. The description is meant to be shown to the user verbatim.
type LookupError struct {
	Type        string
	Description string
}

func (e *LookupError) Error() string {
	return e.Description
}

// Match is one candidate location returned when a query is ambiguous.
type Match struct {
	Name    string
	State   string
	Country string
}

func (m Match) String() string {
	return fmt.Sprintf("%s, %s %s", m.Name, m.State, m.Country)
}

// AmbiguousLocationError is returned when more than one city matched.
type AmbiguousLocationError struct {
	Matches []Match
}

func (e *AmbiguousLocationError) Error() string {
	return "More than 1 city matched your query, try being more specific"
}

// Details returns one line per candidate location.
func (e *AmbiguousLocationError) Details() string {
	lines := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}
