package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cruisebase/cruisebase/internal/routes"
)

// gateMiddleware applies the route authorization gate to every navigation.
// The gate itself is a pure predicate over the current session snapshot; this
// middleware only translates its decision into HTTP responses. It never
// performs I/O or triggers a token refresh.
func (s *Server) gateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := s.table.Lookup(c.FullPath())
		decision := routes.Decide(s.store.Snapshot(), route)

		switch decision.Verdict {
		case routes.Allow:
			c.Next()
		case routes.RedirectLogin:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "authentication required",
				"redirect": decision.Redirect,
			})
			c.Abort()
		case routes.RedirectUnauthorized:
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "role not permitted",
				"redirect": decision.Redirect,
			})
			c.Abort()
		}
	}
}

// loggingMiddleware logs each request with zerolog.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
