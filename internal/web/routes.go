package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Kamar-Folarin/commit-history-app/docs"
)

// @title Commit History App API
// @version 1.0
// @description JSON endpoints behind the commit-history and signup pages
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1

// SetupRouter configures the page routes, the JSON API and the middleware
func SetupRouter(h *Handler, logger *logrus.Logger) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), h.Credentials())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/commit-history")
	})
	r.GET("/healthz", h.Health)

	// Pages
	r.GET("/commit-history", h.CommitHistoryPage)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.SubmitSignup)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/commit-history", h.GetCommitHistory)
		v1.POST("/signup", h.CreateAccount)
	}

	return r, nil
}

// RequestLogger logs every handled request through logrus
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("Request completed with errors")
			return
		}
		entry.Info("Handled request")
	}
}
