package models

import (
	"time"
)

// Roles a user account can hold.
const (
	RoleAdmin     = "admin"
	RoleVoter     = "voter"
	RoleCandidate = "candidate"
)

// Minimum ages checked once at registration time.
const (
	MinVoterAge     = 18
	MinCandidateAge = 25
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20;not null" json:"role"` // admin, voter, candidate
	Email        string    `gorm:"size:120;not null" json:"email"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	CreatedAt    time.Time `json:"created_at"`
}

// Age returns the user's age in whole years at the given instant.
func (u *User) Age(now time.Time) int {
	years := now.Year() - u.DateOfBirth.Year()
	if now.YearDay() < u.DateOfBirth.YearDay() {
		years--
	}
	return years
}

// MinAgeForRole returns the registration age floor for a role,
// or 0 for roles without one.
func MinAgeForRole(role string) int {
	switch role {
	case RoleVoter:
		return MinVoterAge
	case RoleCandidate:
		return MinCandidateAge
	default:
		return 0
	}
}
