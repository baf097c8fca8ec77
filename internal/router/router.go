package router

import (
	"ballotbox/internal/handlers"
	"ballotbox/internal/middleware"
	"ballotbox/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	dashboardHandler := handlers.NewDashboardHandler()
	electionHandler := handlers.NewElectionHandler()
	candidateHandler := handlers.NewCandidateHandler()
	voteHandler := handlers.NewVoteHandler()
	statsHandler := handlers.NewStatsHandler()

	// Public routes
	r.GET("/", dashboardHandler.Home)
	r.GET("/auth/login", authHandler.ShowLogin)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/register", authHandler.ShowRegister)
	r.POST("/auth/register", authHandler.Register)
	r.GET("/auth/logout", authHandler.Logout)

	// Any signed-in role
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/dashboard", dashboardHandler.Dashboard)
		authorized.GET("/candidates/:id", candidateHandler.ListJSON)
	}

	// Admin-only election management and reports
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/create_election", electionHandler.ShowCreate)
		admin.POST("/create_election", electionHandler.Create)
		admin.GET("/update_election_status", electionHandler.ShowUpdateStatus)
		admin.POST("/update_election_status", electionHandler.UpdateStatus)
		admin.GET("/view_elections", electionHandler.ViewElections)
		admin.GET("/download_statistics/:title", statsHandler.DownloadStatistics)
		admin.GET("/download_all_statistics", statsHandler.DownloadAllStatistics)
	}

	// Candidate self-registration
	candidate := r.Group("/candidate")
	candidate.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCandidate))
	{
		candidate.GET("/register", candidateHandler.ShowRegister)
		candidate.POST("/register", candidateHandler.Register)
	}

	// Voting
	vote := r.Group("/vote")
	vote.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleVoter))
	{
		vote.GET("", voteHandler.ShowVote)
		vote.POST("", voteHandler.CastVote)
	}
}
