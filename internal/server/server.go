// Package server provides the HTTP surface of the scheduler backend.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Deepak6204/schedular-server/internal/auth"
	"github.com/Deepak6204/schedular-server/internal/config"
	"github.com/Deepak6204/schedular-server/internal/mailer"
	"github.com/Deepak6204/schedular-server/internal/storage/sqlite"
	"github.com/Deepak6204/schedular-server/internal/validate"
)

// Server provides HTTP handlers for the scheduler backend.
type Server struct {
	engine *gin.Engine
	store  *sqlite.Store
	logger *slog.Logger
	tokens *auth.TokenIssuer
	mail   mailer.Mailer
	cfg    config.Config
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *sqlite.Store, logger *slog.Logger, cfg config.Config, mail mailer.Mailer) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if mail == nil {
		mail = &mailer.LogMailer{Logger: logger}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api/healthz"))
	router.Use(corsMiddleware(cfg.AllowedOrigins))

	srv := &Server{
		engine: router,
		store:  store,
		logger: logger,
		tokens: auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL),
		mail:   mail,
		cfg:    cfg,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		authGroup := api.Group("/auth")
		{
			limited := authGroup.Group("", s.rateLimit())
			limited.POST("/signup", s.handleSignup)
			limited.POST("/login", s.handleLogin)

			authGroup.POST("/logout", s.handleLogout)
			authGroup.POST("/forgot-password", s.handleForgotPassword)
			authGroup.POST("/reset-password", s.handleResetPassword)

			profile := authGroup.Group("", s.authRequired())
			profile.GET("/profile", s.handleGetProfile)
			profile.PUT("/profile", s.handleUpdateProfile)
		}

		tasks := api.Group("/tasks", s.authRequired())
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.PUT(":taskId", s.handleUpdateTask)
			tasks.DELETE(":taskId", s.handleDeleteTask)
		}
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization")
	if len(origins) == 1 && origins[0] == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
		conf.AllowCredentials = true
	}
	return cors.New(conf)
}

// respondData wraps a payload in the success envelope.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondMessage is respondData with a human-readable message attached.
func respondMessage(c *gin.Context, status int, data any, message string) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError returns the uniform error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondValidation returns 400 with the full violation list.
func respondValidation(c *gin.Context, err error) {
	var verrs *validate.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation failed",
			"details": verrs.Fields,
		})
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}

// respondStorageError logs the raw failure and returns a user-safe message.
// Raw detail reaches the client only in debug mode.
func (s *Server) respondStorageError(c *gin.Context, err error) {
	s.logger.Error("storage failure",
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))

	message := "an unexpected error occurred"
	if s.cfg.Debug {
		message = err.Error()
	}
	respondError(c, http.StatusInternalServerError, message)
}
