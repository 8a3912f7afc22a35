// Package httpapi exposes the bookmark service over HTTP/JSON using gin.
// It owns transport concerns only: routing, request validation, bearer-token
// extraction, and the mapping of service errors onto status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/bookmarkd/internal/logging"
	"github.com/dmitrijs2005/bookmarkd/internal/server/config"
	"github.com/dmitrijs2005/bookmarkd/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	router    *gin.Engine
	auth      *services.AuthService
	users     *services.UserService
	bookmarks *services.BookmarkService
	jwtSecret []byte
}

func NewServer(cfg *config.Config, l logging.Logger, as *services.AuthService, us *services.UserService, bs *services.BookmarkService) *Server {
	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		address:   cfg.EndpointAddr,
		logger:    l.With("module", "http_server"),
		auth:      as,
		users:     us,
		bookmarks: bs,
		jwtSecret: []byte(cfg.SecretKey),
	}
	s.router = s.buildRouter(cfg)

	return s
}

func (s *Server) buildRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID())
	router.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", s.handleSignup)
		authRoutes.POST("/signin", s.handleSignin)
	}

	protected := router.Group("")
	protected.Use(s.requireToken())
	{
		protected.GET("/users/me", s.handleGetMe)
		protected.PATCH("/users", s.handleEditUser)

		protected.GET("/bookmarks", s.handleListBookmarks)
		protected.GET("/bookmarks/:id", s.handleGetBookmark)
		protected.POST("/bookmarks", s.handleCreateBookmark)
		protected.PATCH("/bookmarks/:id", s.handleEditBookmark)
		protected.DELETE("/bookmarks/:id", s.handleDeleteBookmark)
	}

	return router
}

// Router exposes the configured handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bookmarkd"})
}
