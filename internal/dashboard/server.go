// Package dashboard runs the local web dashboard: a gin server that renders
// role-appropriate JSON views of the CruiseBase API for the logged-in user.
// Every data call goes through the authenticated request gateway; every
// navigation goes through the route authorization gate.
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/cache"
	"github.com/cruisebase/cruisebase/internal/config"
	"github.com/cruisebase/cruisebase/internal/routes"
	"github.com/cruisebase/cruisebase/internal/session"
)

// Server is the local dashboard HTTP server.
type Server struct {
	router *gin.Engine
	client *api.Client
	store  *session.Store
	cache  *cache.Store
	table  *routes.Table
	cron   *cron.Cron
	config *config.Config
	logger zerolog.Logger
}

// New creates a dashboard server wired to the given session store and API
// client.
func New(cfg *config.Config, client *api.Client, store *session.Store, cacheStore *cache.Store, zlog zerolog.Logger) (*Server, error) {
	table := routes.DefaultTable()
	if cfg.Dashboard.RouteTable != "" {
		loaded, err := routes.LoadTable(cfg.Dashboard.RouteTable)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	s := &Server{
		client: client,
		store:  store,
		cache:  cacheStore,
		table:  table,
		config: cfg,
		logger: zlog,
	}

	s.setupRouter()
	if err := s.setupSyncJob(); err != nil {
		return nil, err
	}

	return s, nil
}

// setupRouter configures the gin router with routes and middleware.
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router.GET("/health", s.healthCheck)

	// Public entry points
	s.router.POST(routes.PathLogin, s.login)
	s.router.GET(routes.PathUnauthorized, s.unauthorized)

	// Everything else consults the gate on each navigation
	guarded := s.router.Group("")
	guarded.Use(s.gateMiddleware())
	{
		guarded.POST("/logout", s.logout)
		guarded.GET("/session", s.currentSession)
		guarded.GET("/profile", s.profile)

		guarded.GET("/dashboard/driver", s.driverDashboard)
		guarded.GET("/dashboard/owner", s.ownerDashboard)
		guarded.GET("/dashboard/admin", s.adminDashboard)

		guarded.GET("/fleet", s.fleet)
		guarded.POST("/fleet", s.addVehicle)
		guarded.GET("/wallet", s.wallet)
		guarded.POST("/wallet/withdraw", s.withdraw)
		guarded.POST("/contracts/new", s.createContract)
	}
}

// setupSyncJob schedules the periodic cache refresh.
func (s *Server) setupSyncJob() error {
	if s.cache == nil {
		return nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.config.Dashboard.SyncSchedule, s.syncCache); err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", s.config.Dashboard.SyncSchedule, err)
	}
	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    s.config.Dashboard.ListenAddress,
		Handler: s.router,
	}

	if s.cron != nil {
		s.cron.Start()
		defer s.cron.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info().Str("address", s.config.Dashboard.ListenAddress).Msg("Dashboard listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("dashboard server failed: %w", err)
	case <-quit:
	}

	s.logger.Info().Msg("Shutting down dashboard...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
