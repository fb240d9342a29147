// Package client is the terminal client's side of the qwik2do wire API.
//
// GRPCClient holds the connection and the current token pair. Every call
// carries the access token in metadata; when the server answers
// Unauthenticated("token expired") the client rotates the pair with the
// refresh token and retries the call once. Rotation and rejection are
// reported to a TokenObserver so the session can be persisted or dropped.
//
// gRPC status codes are mapped back to the sentinel errors in errors.go.
//
// InitDatabase and RunMigrations bootstrap the local SQLite database that
// holds the persisted session.
package client
