package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"ballotbox/internal/db"
	"ballotbox/internal/models"
)

func TestRegisterAgeRules(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		role         string
		age          int
		wantLocation string
		wantRow      bool
		wantMessage  string
	}{
		{"voter of 20 accepted", "alice", "voter", 20, "/auth/login", true, "Registration successful"},
		{"candidate of 20 rejected", "bob", "candidate", 20, "/auth/register", false, "at least 25 years old"},
		{"voter of 17 rejected", "carol", "voter", 17, "/auth/register", false, "at least 18 years old"},
		{"candidate of 30 accepted", "dan", "candidate", 30, "/auth/login", true, "Registration successful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			c := newClient(t, app)

			w := c.post("/auth/register", url.Values{
				"username": {tt.username},
				"password": {"hunter22"},
				"role":     {tt.role},
				"email":    {tt.username + "@example.com"},
				"dob":      {dob(tt.age)},
			})
			if w.Code != http.StatusFound {
				t.Fatalf("Expected redirect, got %d", w.Code)
			}
			if got := w.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Expected redirect to %s, got %s", tt.wantLocation, got)
			}
			if msgs := c.flashes(); !strings.Contains(msgs, tt.wantMessage) {
				t.Errorf("Expected flash containing %q, got %s", tt.wantMessage, msgs)
			}

			var count int64
			db.DB.Model(&models.User{}).Where("username = ?", tt.username).Count(&count)
			if tt.wantRow && count != 1 {
				t.Errorf("Expected user row for %s, found %d", tt.username, count)
			}
			if !tt.wantRow && count != 0 {
				t.Errorf("Expected no user row for %s, found %d", tt.username, count)
			}
		})
	}
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	w := c.post("/auth/register", url.Values{
		"username": {"alice"},
		"password": {"hunter22"},
		// role, email, dob missing
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/auth/register" {
		t.Fatalf("Expected redirect back to the form, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if msgs := c.flashes(); !strings.Contains(msgs, "field is required") {
		t.Errorf("Expected a field-specific flash, got %s", msgs)
	}
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	c.post("/auth/register", url.Values{
		"username": {"mallory"},
		"password": {"hunter22"},
		"role":     {"admin"},
		"email":    {"mallory@example.com"},
		"dob":      {dob(40)},
	})

	var count int64
	db.DB.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("Admin self-registration must not create a row, found %d", count)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	c := newClient(t, app)

	form := url.Values{
		"username": {"alice"},
		"password": {"hunter22"},
		"role":     {"voter"},
		"email":    {"alice@example.com"},
		"dob":      {dob(20)},
	}
	c.post("/auth/register", form)
	c.flashes()
	c.post("/auth/register", form)
	if msgs := c.flashes(); !strings.Contains(msgs, "already taken") {
		t.Errorf("Expected duplicate-username flash, got %s", msgs)
	}

	var count int64
	db.DB.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 alice row, got %d", count)
	}
}

func TestLoginSeededAdmin(t *testing.T) {
	app := newTestApp(t)
	seedUser(t, "root", "s3cret-admin", models.RoleAdmin)

	// The admin row exists only because it was seeded from configuration;
	// it logs in through the same database path as everyone else.
	c := newClient(t, app)
	c.login(t, "root", "s3cret-admin")

	w := c.get("/admin/download_all_statistics")
	if w.Code != http.StatusOK {
		t.Errorf("Seeded admin should reach admin routes, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	seedUser(t, "alice", "correct-horse", models.RoleVoter)

	c := newClient(t, app)
	w := c.post("/auth/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/auth/login" {
		t.Fatalf("Expected redirect back to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
	if msgs := c.flashes(); !strings.Contains(msgs, "Invalid username or password") {
		t.Errorf("Expected invalid-credentials flash, got %s", msgs)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp(t)
	seedUser(t, "alice", "correct-horse", models.RoleVoter)

	c := newClient(t, app)
	c.login(t, "alice", "correct-horse")

	c.get("/auth/logout")

	w := c.get("/candidates/1")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/auth/login" {
		t.Errorf("Expected redirect to login after logout, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestHomeRedirect(t *testing.T) {
	app := newTestApp(t)
	seedUser(t, "alice", "correct-horse", models.RoleVoter)

	c := newClient(t, app)
	w := c.get("/")
	if w.Header().Get("Location") != "/auth/login" {
		t.Errorf("Anonymous visit should land on login, got %s", w.Header().Get("Location"))
	}

	c.login(t, "alice", "correct-horse")
	w = c.get("/")
	if w.Header().Get("Location") != "/dashboard" {
		t.Errorf("Signed-in visit should land on dashboard, got %s", w.Header().Get("Location"))
	}
}
