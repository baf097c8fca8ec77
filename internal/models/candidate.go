package models

import (
	"time"
)

// Candidate records one user standing in one election. The composite
// unique index is what actually guarantees a user registers at most once
// per election, even under concurrent requests.
type Candidate struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	ElectionID uint     `gorm:"not null;uniqueIndex:idx_candidate_per_election" json:"election_id"`
	Election   Election `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID     uint     `gorm:"not null;uniqueIndex:idx_candidate_per_election" json:"user_id"`
	User       User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
