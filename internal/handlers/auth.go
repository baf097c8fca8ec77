package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"ballotbox/internal/db"
	"ballotbox/internal/models"
	"ballotbox/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		RedirectWithFlash(c, "/auth/login", "danger", "Username and password are required.")
		return
	}

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Error("login lookup failed")
			RedirectWithFlash(c, "/auth/login", "danger", "An error occurred while logging in.")
			return
		}
		RedirectWithFlash(c, "/auth/login", "danger", "Invalid username or password.")
		return
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		RedirectWithFlash(c, "/auth/login", "danger", "Invalid username or password.")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	RedirectWithFlash(c, "/dashboard", "success", "Login successful!")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	role := c.PostForm("role")
	email := c.PostForm("email")
	dobStr := c.PostForm("dob")

	required := []struct{ field, value string }{
		{"username", username},
		{"password", password},
		{"role", role},
		{"email", email},
		{"dob", dobStr},
	}
	for _, r := range required {
		if r.value == "" {
			RedirectWithFlash(c, "/auth/register", "danger", "The "+r.field+" field is required.")
			return
		}
	}

	// Only voter and candidate accounts self-register; the admin account
	// is seeded from configuration at startup.
	if role != models.RoleVoter && role != models.RoleCandidate {
		RedirectWithFlash(c, "/auth/register", "danger", "Role must be voter or candidate.")
		return
	}

	dob, err := time.Parse("2006-01-02", dobStr)
	if err != nil {
		RedirectWithFlash(c, "/auth/register", "danger", "Date of birth must be in YYYY-MM-DD format.")
		return
	}

	user := models.User{
		Username:    username,
		Role:        role,
		Email:       email,
		DateOfBirth: dob,
	}
	if minAge := models.MinAgeForRole(role); user.Age(time.Now()) < minAge {
		RedirectWithFlash(c, "/auth/register", "danger",
			fmt.Sprintf("You must be at least %d years old to register as a %s.", minAge, role))
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("password hashing failed")
		RedirectWithFlash(c, "/auth/register", "danger", "An error occurred while registering.")
		return
	}
	user.PasswordHash = hash

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			RedirectWithFlash(c, "/auth/register", "danger", "Username is already taken.")
			return
		}
		logrus.WithError(err).Error("user creation failed")
		RedirectWithFlash(c, "/auth/register", "danger", "An error occurred while registering.")
		return
	}

	RedirectWithFlash(c, "/auth/login", "success", "Registration successful! You can log in now.")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	RedirectWithFlash(c, "/auth/login", "success", "You have been logged out.")
}
