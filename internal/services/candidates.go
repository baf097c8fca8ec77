package services

import (
	"errors"

	"ballotbox/internal/db"
	"ballotbox/internal/models"

	"gorm.io/gorm"
)

// CandidateInfo is the display shape for candidate listings and the
// /candidates/:id JSON endpoint.
type CandidateInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListCandidates returns the candidates of one election with their
// usernames, ordered by candidate id so output is deterministic.
func ListCandidates(electionID uint) ([]CandidateInfo, error) {
	var candidates []CandidateInfo
	err := db.DB.Table("candidates").
		Select("candidates.id, users.username AS name").
		Joins("JOIN users ON users.id = candidates.user_id").
		Where("candidates.election_id = ?", electionID).
		Order("candidates.id ASC").
		Scan(&candidates).Error
	return candidates, err
}

// RegisterCandidate enrolls a user as a candidate in an election. The
// insert runs in a transaction after the election check, and the unique
// index on (election_id, user_id) backstops concurrent duplicates.
func RegisterCandidate(electionID, userID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var election models.Election
		if err := tx.First(&election, electionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrElectionNotFound
			}
			return err
		}
		if election.Status == models.StatusClosed {
			return ErrElectionClosed
		}

		candidate := models.Candidate{ElectionID: electionID, UserID: userID}
		if err := tx.Create(&candidate).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCandidate
			}
			return err
		}
		return nil
	})
	if err == nil {
		InvalidateStatistics()
	}
	return err
}
