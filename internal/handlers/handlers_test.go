package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"ballotbox/internal/db"
	"ballotbox/internal/middleware"
	"ballotbox/internal/models"
	"ballotbox/internal/services"
	"ballotbox/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires a full engine against a fresh in-memory database. Routes
// are registered the same way the server does it, minus the HTML renderer:
// these tests exercise the redirect, JSON and download paths. An extra
// /test/flashes route exposes queued flash messages for assertions.
func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to access test connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Election{},
		&models.Candidate{},
		&models.Vote{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.DB = gdb
	services.InvalidateStatistics()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("ballotbox_session", store))
	r.Use(middleware.LoadUser())

	registerTestRoutes(r)
	r.GET("/test/flashes", func(c *gin.Context) {
		messages := []string{}
		for _, flash := range popFlashes(c) {
			messages = append(messages, flash.Message)
		}
		c.JSON(http.StatusOK, messages)
	})
	return r
}

// registerTestRoutes mirrors router.RegisterRoutes; duplicated here rather
// than imported to avoid an import cycle with the router package.
func registerTestRoutes(r *gin.Engine) {
	authHandler := NewAuthHandler()
	dashboardHandler := NewDashboardHandler()
	electionHandler := NewElectionHandler()
	candidateHandler := NewCandidateHandler()
	voteHandler := NewVoteHandler()
	statsHandler := NewStatsHandler()

	r.GET("/", dashboardHandler.Home)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)
	r.GET("/auth/logout", authHandler.Logout)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/candidates/:id", candidateHandler.ListJSON)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/create_election", electionHandler.Create)
		admin.POST("/update_election_status", electionHandler.UpdateStatus)
		admin.GET("/download_statistics/:title", statsHandler.DownloadStatistics)
		admin.GET("/download_all_statistics", statsHandler.DownloadAllStatistics)
	}

	candidate := r.Group("/candidate")
	candidate.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCandidate))
	{
		candidate.POST("/register", candidateHandler.Register)
	}

	vote := r.Group("/vote")
	vote.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleVoter))
	{
		vote.POST("", voteHandler.CastVote)
	}
}

// client keeps session cookies across requests, like a browser would.
type client struct {
	t       *testing.T
	app     *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, app *gin.Engine) *client {
	return &client{t: t, app: app}
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.app.ServeHTTP(w, req)

	// Replace cookies by name, keeping the latest value, the way a
	// browser does. A handler may Save the session more than once per
	// request, producing several Set-Cookie headers; the last one wins.
	for _, set := range w.Result().Cookies() {
		replaced := false
		for i, existing := range c.cookies {
			if existing.Name == set.Name {
				c.cookies[i] = set
				replaced = true
				break
			}
		}
		if !replaced {
			c.cookies = append(c.cookies, set)
		}
	}
	return w
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, form)
}

// flashes pops the messages queued for the next page render.
func (c *client) flashes() string {
	c.t.Helper()
	w := c.get("/test/flashes")
	return w.Body.String()
}

func seedUser(t *testing.T, username, password, role string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Email:        username + "@example.com",
		DateOfBirth:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
	return user
}

func (c *client) login(t *testing.T, username, password string) {
	t.Helper()
	w := c.post("/auth/login", url.Values{
		"username": {username},
		"password": {password},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("Login as %s failed: status %d, location %s", username, w.Code, w.Header().Get("Location"))
	}
	c.flashes() // drain the login flash
}

func dob(age int) string {
	return time.Now().AddDate(-age, 0, -1).Format("2006-01-02")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
