package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/routes"
)

// LoginRequest is the dashboard login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// login bootstraps a session against the remote API and reports the
// role-appropriate landing page.
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.client.BootstrapSession(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Tokens may already be stored when only identity resolution failed;
		// the session stays usable and the profile can be refetched.
		s.respondAPIError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"redirect": routes.HomeFor(user.Role),
	})
}

// logout clears the local session. Server-side invalidation is not part of
// the backend's contract; this is a pure local reset.
func (s *Server) logout(c *gin.Context) {
	s.store.Logout()
	c.JSON(http.StatusOK, gin.H{"redirect": routes.PathLogin})
}

// unauthorized is the terminal view role-mismatch navigations land on.
func (s *Server) unauthorized(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized Access"})
}

// currentSession reports the session snapshot minus the tokens.
func (s *Server) currentSession(c *gin.Context) {
	snap := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"authenticated": snap.IsAuthenticated,
		"user":          snap.User,
	})
}

func (s *Server) profile(c *gin.Context) {
	details, err := s.client.UserDetails(c.Request.Context())
	if err != nil {
		s.respondAPIError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, details)
}

// driverDashboard summarizes the driver's vehicle, repayment progress and
// wallet.
func (s *Server) driverDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	vehicles, err := s.client.Vehicles(ctx)
	if err != nil {
		s.respondAPIError(c, err, "Failed to load vehicles")
		return
	}

	var progress *api.ContractProgress
	if len(vehicles) > 0 {
		if p, err := s.client.DriverProgress(ctx, vehicles[0].ID); err == nil {
			progress = p
		}
	}

	wallet, err := s.client.WalletBalance(ctx)
	if err != nil {
		s.respondAPIError(c, err, "Failed to load wallet")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles": vehicles,
		"progress": progress,
		"wallet":   wallet,
	})
}

// ownerDashboard summarizes the owner's fleet with per-vehicle progress.
func (s *Server) ownerDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	vehicles, err := s.client.Vehicles(ctx)
	if err != nil {
		s.respondAPIError(c, err, "Failed to load fleet")
		return
	}

	progress := make(map[string]*api.ContractProgress, len(vehicles))
	for _, v := range vehicles {
		if !v.IsActive {
			continue
		}
		if p, err := s.client.OwnerProgress(ctx, v.ID); err == nil {
			progress[v.ID] = p
		}
	}

	wallet, err := s.client.WalletBalance(ctx)
	if err != nil {
		s.respondAPIError(c, err, "Failed to load wallet")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fleet":    vehicles,
		"progress": progress,
		"wallet":   wallet,
	})
}

// adminDashboard summarizes the whole platform fleet.
func (s *Server) adminDashboard(c *gin.Context) {
	vehicles, err := s.client.Vehicles(c.Request.Context())
	if err != nil {
		s.respondAPIError(c, err, "Failed to load vehicles")
		return
	}

	active := 0
	for _, v := range vehicles {
		if v.IsActive {
			active++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles":      vehicles,
		"totalVehicles": len(vehicles),
		"activeCount":   active,
	})
}

func (s *Server) fleet(c *gin.Context) {
	vehicles, err := s.client.Vehicles(c.Request.Context())
	if err != nil {
		s.respondAPIError(c, err, "Failed to load fleet")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (s *Server) addVehicle(c *gin.Context) {
	var req api.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := s.client.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		s.respondAPIError(c, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (s *Server) wallet(c *gin.Context) {
	ctx := c.Request.Context()

	balance, err := s.client.WalletBalance(ctx)
	if err != nil {
		s.respondAPIError(c, err, "Failed to load wallet")
		return
	}

	history, err := s.client.TransactionHistory(ctx, 1, 10)
	if err != nil {
		s.respondAPIError(c, err, "Failed to load transaction history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet":       balance,
		"transactions": history.Transactions,
		"total":        history.Total,
	})
}

func (s *Server) withdraw(c *gin.Context) {
	var req api.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.client.Withdraw(c.Request.Context(), req); err != nil {
		s.respondAPIError(c, err, "Withdrawal failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "submitted"})
}

func (s *Server) createContract(c *gin.Context) {
	var req api.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.client.CreateContract(c.Request.Context(), req); err != nil {
		s.respondAPIError(c, err, "Failed to create contract")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// respondAPIError maps gateway failures onto dashboard responses. A 401 that
// survived the refresh protocol means the session was cleared; the UI is told
// to navigate to login.
func (s *Server) respondAPIError(c *gin.Context, err error, message string) {
	if api.IsUnauthorized(err) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    message,
			"redirect": routes.PathLogin,
		})
		return
	}

	s.logger.Warn().Err(err).Msg(message)
	c.JSON(http.StatusBadGateway, gin.H{"error": message})
}
