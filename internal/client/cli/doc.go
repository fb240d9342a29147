// Package cli is the interactive qwik2do terminal client.
//
// It wires configuration, the local session database, the gRPC client and the
// services, then alternates between two screens: a line-oriented sign-in
// prompt (register, login) and the full-screen dashboard. A stored session is
// resumed on start, so a returning user lands on the dashboard directly.
// Signing out, or a session the server no longer accepts, brings the sign-in
// prompt back.
//
// Logs go to the configured log file because the dashboard owns the terminal.
package cli
