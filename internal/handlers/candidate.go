package handlers

import (
	"errors"
	"net/http"

	"ballotbox/internal/middleware"
	"ballotbox/internal/services"
	"ballotbox/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CandidateHandler struct{}

func NewCandidateHandler() *CandidateHandler {
	return &CandidateHandler{}
}

// ListJSON serves /candidates/:id for the vote page's candidate picker.
func (h *CandidateHandler) ListJSON(c *gin.Context) {
	electionID := utils.StringToUint(c.Param("id"))

	election, err := services.GetElection(electionID)
	if err != nil {
		if errors.Is(err, services.ErrElectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "election not found"})
			return
		}
		logrus.WithError(err).Error("election lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	candidates, err := services.ListCandidates(electionID)
	if err != nil {
		logrus.WithError(err).Error("candidate listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if candidates == nil {
		candidates = []services.CandidateInfo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"candidates":     candidates,
		"election_title": election.Title,
	})
}

func (h *CandidateHandler) ShowRegister(c *gin.Context) {
	elections, err := services.ListScheduledElections()
	if err != nil {
		logrus.WithError(err).Error("election listing failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while loading elections.")
		return
	}
	Render(c, http.StatusOK, "candidate/register.html", gin.H{
		"Elections": elections,
	})
}

func (h *CandidateHandler) Register(c *gin.Context) {
	user := middleware.CurrentUser(c)
	electionID := utils.StringToUint(c.PostForm("election_id"))

	if electionID == 0 {
		RedirectWithFlash(c, "/candidate/register", "danger", "Please choose an election.")
		return
	}

	switch err := services.RegisterCandidate(electionID, user.ID); {
	case err == nil:
		RedirectWithFlash(c, "/dashboard", "success", "Candidate registered successfully!")
	case errors.Is(err, services.ErrAlreadyCandidate):
		RedirectWithFlash(c, "/dashboard", "danger",
			"You are already registered as a candidate for this election.")
	case errors.Is(err, services.ErrElectionNotFound):
		RedirectWithFlash(c, "/candidate/register", "danger", "Election not found.")
	case errors.Is(err, services.ErrElectionClosed):
		RedirectWithFlash(c, "/candidate/register", "danger", "This election is closed.")
	default:
		logrus.WithError(err).Error("candidate registration failed")
		RedirectWithFlash(c, "/dashboard", "danger",
			"An error occurred while registering the candidate.")
	}
}
