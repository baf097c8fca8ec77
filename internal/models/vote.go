package models

import (
	"time"
)

// Vote is one ballot: one voter, one candidate, one election. The unique
// index on (election_id, user_id) enforces single-ballot-per-election at
// the storage layer. Votes are never updated or deleted.
type Vote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ElectionID  uint      `gorm:"not null;uniqueIndex:idx_one_vote_per_election" json:"election_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_one_vote_per_election" json:"user_id"`
	CandidateID uint      `gorm:"not null;index" json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}
