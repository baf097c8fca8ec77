package models

import (
	"time"
)

// Election lifecycle. The status set is closed; transitions only move
// forward (scheduled -> active -> closed, with scheduled -> closed allowed
// for cancelled events).
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusClosed    = "closed"
)

type Election struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"uniqueIndex;size:120;not null" json:"title"`
	Date        time.Time `json:"date"`
	Status      string    `gorm:"size:20;default:'scheduled';not null" json:"status"`
	Description string    `gorm:"type:text" json:"description"` // markdown
	CreatedAt   time.Time `json:"created_at"`
}

var statusTransitions = map[string][]string{
	StatusScheduled: {StatusActive, StatusClosed},
	StatusActive:    {StatusClosed},
	StatusClosed:    {},
}

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether an election may move from one status to
// another. Closed is terminal.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from the given one.
func NextStatuses(from string) []string {
	return statusTransitions[from]
}
