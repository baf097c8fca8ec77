package handlers

import (
	"net/http"

	"ballotbox/internal/middleware"
	"ballotbox/internal/models"
	"ballotbox/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Home sends visitors to their dashboard, or to login when anonymous.
func (h *DashboardHandler) Home(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/auth/login")
}

// Dashboard renders the role-conditional overview: admins see the vote
// tallies, voters and candidates see the scheduled elections they can act
// on.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if user.Role == models.RoleAdmin {
		stats, err := services.ComputeStatistics()
		if err != nil {
			logrus.WithError(err).Error("statistics query failed")
			Render(c, http.StatusInternalServerError, "dashboard/index.html", gin.H{
				"Role":  user.Role,
				"Error": "An error occurred while loading statistics.",
			})
			return
		}
		Render(c, http.StatusOK, "dashboard/index.html", gin.H{
			"Role":       user.Role,
			"Statistics": stats,
		})
		return
	}

	elections, err := services.ListScheduledElections()
	if err != nil {
		logrus.WithError(err).Error("election listing failed")
		Render(c, http.StatusInternalServerError, "dashboard/index.html", gin.H{
			"Role":  user.Role,
			"Error": "An error occurred while loading elections.",
		})
		return
	}
	Render(c, http.StatusOK, "dashboard/index.html", gin.H{
		"Role":      user.Role,
		"Elections": elections,
	})
}
