package handlers

import (
	"net/http"
	"strings"

	"ballotbox/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const flashKey = "flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string // "success" or "danger"
	Message string
}

// SetFlash queues a flash message in the session.
func SetFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(kind+"|"+message, flashKey)
	session.Save()
}

// RedirectWithFlash is the standard post-action response: queue a message,
// send the browser elsewhere.
func RedirectWithFlash(c *gin.Context, path, kind, message string) {
	SetFlash(c, kind, message)
	c.Redirect(http.StatusFound, path)
}

func popFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	session.Save() // Flashes() consumes, Save persists the removal

	flashes := make([]Flash, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		kind, message, found := strings.Cut(s, "|")
		if !found {
			kind, message = "success", s
		}
		flashes = append(flashes, Flash{Kind: kind, Message: message})
	}
	return flashes
}

// Render injects the current user and pending flash messages into every
// page.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	if user := middleware.CurrentUser(c); user != nil {
		obj["CurrentUser"] = user
	}
	if flashes := popFlashes(c); len(flashes) > 0 {
		obj["Flashes"] = flashes
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}
