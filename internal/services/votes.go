package services

import (
	"errors"

	"ballotbox/internal/db"
	"ballotbox/internal/models"

	"gorm.io/gorm"
)

// CastVote records one ballot. The candidate must belong to the named
// election (a ballot cannot reference a candidate from another election),
// the election must not be closed, and the unique index on
// (election_id, user_id) makes double voting impossible even when two
// requests race past the checks.
func CastVote(electionID, userID, candidateID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var candidate models.Candidate
		if err := tx.First(&candidate, candidateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCandidateNotFound
			}
			return err
		}
		if candidate.ElectionID != electionID {
			return ErrWrongElection
		}

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

		vote := models.Vote{
			ElectionID:  electionID,
			UserID:      userID,
			CandidateID: candidateID,
		}
		if err := tx.Create(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyVoted
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
