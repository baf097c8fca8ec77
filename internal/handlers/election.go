package handlers

import (
	"errors"
	"net/http"
	"time"

	"ballotbox/internal/services"
	"ballotbox/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ElectionHandler covers the admin-side election management pages.
type ElectionHandler struct{}

func NewElectionHandler() *ElectionHandler {
	return &ElectionHandler{}
}

func (h *ElectionHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "election/create.html", nil)
}

func (h *ElectionHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	dateStr := c.PostForm("date")
	description := c.PostForm("description")

	if title == "" {
		RedirectWithFlash(c, "/admin/create_election", "danger", "The title field is required.")
		return
	}
	if dateStr == "" {
		RedirectWithFlash(c, "/admin/create_election", "danger", "The date field is required.")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		RedirectWithFlash(c, "/admin/create_election", "danger", "Date must be in YYYY-MM-DD format.")
		return
	}

	if _, err := services.CreateElection(title, date, description); err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) {
			RedirectWithFlash(c, "/admin/create_election", "danger", "An election with this title already exists.")
			return
		}
		logrus.WithError(err).Error("election creation failed")
		RedirectWithFlash(c, "/admin/create_election", "danger", "An error occurred while creating the election.")
		return
	}

	RedirectWithFlash(c, "/dashboard", "success", "Election created successfully!")
}

func (h *ElectionHandler) ShowUpdateStatus(c *gin.Context) {
	elections, err := services.ListElections()
	if err != nil {
		logrus.WithError(err).Error("election listing failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while retrieving elections.")
		return
	}
	Render(c, http.StatusOK, "election/update_status.html", gin.H{
		"Elections": elections,
	})
}

func (h *ElectionHandler) UpdateStatus(c *gin.Context) {
	electionID := utils.StringToUint(c.PostForm("election_id"))
	newStatus := c.PostForm("new_status")

	if electionID == 0 || newStatus == "" {
		RedirectWithFlash(c, "/admin/update_election_status", "danger", "Election and new status are required.")
		return
	}

	switch err := services.SetElectionStatus(electionID, newStatus); {
	case err == nil:
		RedirectWithFlash(c, "/dashboard", "success", "Election status updated successfully!")
	case errors.Is(err, services.ErrElectionNotFound):
		RedirectWithFlash(c, "/admin/update_election_status", "danger", "Election not found.")
	case errors.Is(err, services.ErrInvalidStatus):
		RedirectWithFlash(c, "/admin/update_election_status", "danger",
			"Status must be one of scheduled, active, closed.")
	case errors.Is(err, services.ErrBadTransition):
		RedirectWithFlash(c, "/admin/update_election_status", "danger",
			"That status change is not allowed.")
	default:
		logrus.WithError(err).Error("status update failed")
		RedirectWithFlash(c, "/admin/update_election_status", "danger",
			"An error occurred while updating the election status.")
	}
}

func (h *ElectionHandler) ViewElections(c *gin.Context) {
	elections, err := services.ListElections()
	if err != nil {
		logrus.WithError(err).Error("election listing failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while retrieving elections.")
		return
	}

	descriptions := make(map[uint]interface{}, len(elections))
	for _, e := range elections {
		if e.Description != "" {
			descriptions[e.ID] = utils.RenderMarkdown(e.Description)
		}
	}

	Render(c, http.StatusOK, "election/list.html", gin.H{
		"Elections":    elections,
		"Descriptions": descriptions,
	})
}
