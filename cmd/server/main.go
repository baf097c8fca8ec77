package main

import (
	"html/template"
	"path/filepath"
	"time"

	"ballotbox/internal/config"
	"ballotbox/internal/db"
	"ballotbox/internal/middleware"
	"ballotbox/internal/models"
	"ballotbox/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Configuration error: %v", err)
	}

	// Initialize Database
	db.Init(cfg)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("ballotbox_session", store))

	// Load Templates
	r.HTMLRender = loadTemplates("./web/templates")

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	logrus.Infof("Ballotbox server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"formatDate": func(t interface{}) string {
			if v, ok := t.(time.Time); ok {
				return v.Format("2006-01-02")
			}
			return ""
		},
		"nextStatuses": models.NextStatuses,
		"safeHTML": func(h interface{}) template.HTML {
			switch v := h.(type) {
			case template.HTML:
				return v
			case string:
				return template.HTML(v)
			default:
				return ""
			}
		},
	}

	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Dashboard
	r.AddFromFilesFuncs("dashboard/index.html", funcMap, assemble(templatesDir+"/views/dashboard/index.html")...)

	// Election management
	r.AddFromFilesFuncs("election/create.html", funcMap, assemble(templatesDir+"/views/election/create.html")...)
	r.AddFromFilesFuncs("election/update_status.html", funcMap, assemble(templatesDir+"/views/election/update_status.html")...)
	r.AddFromFilesFuncs("election/list.html", funcMap, assemble(templatesDir+"/views/election/list.html")...)

	// Candidate + voting
	r.AddFromFilesFuncs("candidate/register.html", funcMap, assemble(templatesDir+"/views/candidate/register.html")...)
	r.AddFromFilesFuncs("vote/index.html", funcMap, assemble(templatesDir+"/views/vote/index.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
