// Package client talks to the API server.
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// HTTP+JSON. Every call is a POST carrying a JSON body, optional URL query
// parameters, and yields the decoded JSON response.
//
// # Error Handling
//
// Transport failures and non-JSON responses are reported as ErrUnavailable,
// which callers can match with errors.Is. Application errors travel inside
// the response as {"error": "..."} and are not Go errors.
package client
