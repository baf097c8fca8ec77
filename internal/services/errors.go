package services

import (
	"errors"
)

// Business-rule errors. Handlers match on these to produce specific flash
// messages; anything else coming out of the service layer is an infra
// failure and gets a generic message plus a log entry.
var (
	ErrElectionNotFound  = errors.New("election not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrDuplicateTitle    = errors.New("an election with this title already exists")
	ErrInvalidStatus     = errors.New("invalid election status")
	ErrBadTransition     = errors.New("illegal election status transition")
	ErrElectionClosed    = errors.New("election is closed")
	ErrAlreadyCandidate  = errors.New("already registered as a candidate for this election")
	ErrAlreadyVoted      = errors.New("already voted in this election")
	ErrWrongElection     = errors.New("candidate does not belong to this election")
)
