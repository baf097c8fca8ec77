package handlers

import (
	"net/http"

	"ballotbox/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves the PDF statistics downloads.
type StatsHandler struct{}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

func sendPDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// DownloadStatistics renders one election's tallies, addressed by title.
func (h *StatsHandler) DownloadStatistics(c *gin.Context) {
	title := c.Param("title")

	stats, err := services.ComputeStatistics()
	if err != nil {
		logrus.WithError(err).Error("statistics query failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while loading statistics.")
		return
	}

	electionStats, ok := services.FindElectionStats(stats, title)
	if !ok {
		RedirectWithFlash(c, "/dashboard", "danger", "No statistics found for this election.")
		return
	}

	pdf, err := services.RenderStatisticsPDF(electionStats)
	if err != nil {
		logrus.WithError(err).Error("pdf rendering failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while generating the report.")
		return
	}

	sendPDF(c, title+"_statistics.pdf", pdf)
}

// DownloadAllStatistics renders every election's tallies in one document.
func (h *StatsHandler) DownloadAllStatistics(c *gin.Context) {
	stats, err := services.ComputeStatistics()
	if err != nil {
		logrus.WithError(err).Error("statistics query failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while loading statistics.")
		return
	}

	pdf, err := services.RenderAllStatisticsPDF(stats)
	if err != nil {
		logrus.WithError(err).Error("pdf rendering failed")
		RedirectWithFlash(c, "/dashboard", "danger", "An error occurred while generating the report.")
		return
	}

	sendPDF(c, "all_elections_statistics.pdf", pdf)
}
