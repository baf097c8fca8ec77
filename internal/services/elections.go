package services

import (
	"errors"
	"time"

	"ballotbox/internal/db"
	"ballotbox/internal/models"

	"gorm.io/gorm"
)

// CreateElection creates a new election in the scheduled state.
func CreateElection(title string, date time.Time, description string) (*models.Election, error) {
	election := models.Election{
		Title:       title,
		Date:        date,
		Status:      models.StatusScheduled,
		Description: description,
	}
	if err := db.DB.Create(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	InvalidateStatistics()
	return &election, nil
}

// ListScheduledElections returns elections still open for candidate
// registration and voting, ordered by date.
func ListScheduledElections() ([]models.Election, error) {
	var elections []models.Election
	err := db.DB.Where("status = ?", models.StatusScheduled).
		Order("date ASC").
		Find(&elections).Error
	return elections, err
}

// ListElections returns every election, newest first, for the admin view.
func ListElections() ([]models.Election, error) {
	var elections []models.Election
	err := db.DB.Order("created_at DESC").Find(&elections).Error
	return elections, err
}

// GetElection looks up one election by id.
func GetElection(id uint) (*models.Election, error) {
	var election models.Election
	if err := db.DB.First(&election, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrElectionNotFound
		}
		return nil, err
	}
	return &election, nil
}

// SetElectionStatus moves an election to a new status. The status set is
// closed and transitions are validated; closed is terminal.
func SetElectionStatus(id uint, newStatus string) error {
	if !models.ValidStatus(newStatus) {
		return ErrInvalidStatus
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var election models.Election
		if err := tx.First(&election, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrElectionNotFound
			}
			return err
		}
		if !models.CanTransition(election.Status, newStatus) {
			return ErrBadTransition
		}
		return tx.Model(&election).Update("status", newStatus).Error
	})
}
