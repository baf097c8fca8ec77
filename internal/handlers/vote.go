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

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

func (h *VoteHandler) ShowVote(c *gin.Context) {
	elections, err := services.ListScheduledElections()
	if err != nil {
		logrus.WithError(err).Error("election listing failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while loading elections.")
		return
	}
	Render(c, http.StatusOK, "vote/index.html", gin.H{
		"Elections": elections,
	})
}

func (h *VoteHandler) CastVote(c *gin.Context) {
	user := middleware.CurrentUser(c)
	electionID := utils.StringToUint(c.PostForm("election_id"))
	candidateID := utils.StringToUint(c.PostForm("candidate_id"))

	if electionID == 0 || candidateID == 0 {
		RedirectWithFlash(c, "/vote", "danger", "Please choose an election and a candidate.")
		return
	}

	switch err := services.CastVote(electionID, user.ID, candidateID); {
	case err == nil:
		RedirectWithFlash(c, "/dashboard", "success", "Vote cast successfully!")
	case errors.Is(err, services.ErrAlreadyVoted):
		RedirectWithFlash(c, "/dashboard", "danger", "You have already voted in this election.")
	case errors.Is(err, services.ErrCandidateNotFound):
		RedirectWithFlash(c, "/vote", "danger", "Candidate not found.")
	case errors.Is(err, services.ErrWrongElection):
		RedirectWithFlash(c, "/vote", "danger",
			"That candidate is not standing in the chosen election.")
	case errors.Is(err, services.ErrElectionNotFound):
		RedirectWithFlash(c, "/vote", "danger", "Election not found.")
	case errors.Is(err, services.ErrElectionClosed):
		RedirectWithFlash(c, "/vote", "danger", "This election is closed.")
	default:
		logrus.WithError(err).Error("vote casting failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while casting your vote.")
	}
}
