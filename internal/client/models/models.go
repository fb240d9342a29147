// Package models defines the client-side data the dashboard works with.
package models

import "time"

// Identity is the signed-in user. It exists from a successful sign-in,
// sign-up or session restore until sign-out or session expiry.
type Identity struct {
	ID    string
	Email string
}

// Task is a single todo item owned by one user. ID and CreatedAt are
// assigned by the server.
type Task struct {
	ID        string
	OwnerID   string
	Text      string
	Completed bool
	CreatedAt time.Time
}

type Weather struct {
	Description  string
	TemperatureC float64
}

type Location struct {
	Latitude  float64
	Longitude float64
}
