package models

import "time"

// Task is one to-do item. ID and CreatedAt are assigned by the database;
// OwnerID never changes after insert.
type Task struct {
	ID        string
	OwnerID   string
	Text      string
	Completed bool
	CreatedAt time.Time
}
