// Package client contains the WordTrail backend client and the local store
// bootstrap used by the CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the learning goal, user detail and wordbook endpoints.
//  2. A REST implementation (see HTTPClient) that sends the bearer token on
//     each call, tags requests with an X-Request-ID and maps HTTP statuses to
//     sentinel errors. It never retries; timeouts come from the injected
//     *http.Client.
//  3. Local persistence bootstrap utilities (InitDatabase, InitStore,
//     RunMigrations) that open the SQLite store and apply the embedded goose
//     migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrUnexpectedStatus and
// ErrInvalidResponse. Non-2xx responses are returned as *StatusError, which
// carries the HTTP status code.
package client
